// Package victory is the data backbone for a charting stack: it turns
// arbitrary caller-supplied datasets into a uniform, render-ready
// representation with deterministic ordering and bounded point counts.
//
// 🚀 What is victory?
//
//	A pure, synchronous, side-effect-free library that brings together:
//		• Accessors: function, key, path or index specs resolved once into
//		  uniform datum accessors
//		• Categorical mapping: stable string→integer surrogates shared per axis
//		• Formatting: per-key accessor application, fallbacks, field merging
//		• Scale-aware cleaning: drop values that are illegal under log scales
//		• Stable sorting with legacy key aliasing ("x" → "_x")
//		• Synthetic series generation over a domain
//		• Flicker-free downsampling anchored to global indices
//
// ✨ Why choose victory?
//
//   - Deterministic – identical input and configuration always produce
//     byte-identical output
//   - Error-avoidant – missing keys, absent maps and empty domains resolve
//     to documented fallbacks, never panics
//   - Pure Go – no I/O, no hidden state between calls
//   - Composable – each stage is an independent, testable function
//
// Everything is organized under four subpackages:
//
//	accessor/  — key-spec tagged union and accessor resolution
//	chartdata/ — the normalization pipeline: string maps, formatting,
//	             sorting, cleaning, generation, downsampling, event keys
//	immutable/ — external immutable-container contract and conversion
//	scale/     — scale types and domains consumed by the pipeline
//	sample/    — deterministic demo series for tests and benchmarks
//
// Quick example:
//
//	cfg := chartdata.Config{Data: []any{
//	    map[string]any{"x": "Mon", "y": 12},
//	    map[string]any{"x": "Tue", "y": 7},
//	}}
//	out, err := chartdata.GetData(cfg)
//
// See each package's doc.go for contracts, invariants and edge cases.
//
//	go get github.com/jlismore/victory/chartdata
package victory
