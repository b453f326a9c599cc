// Package chartdata normalizes and reduces chart datasets for
// github.com/jlismore/victory.
//
// It converts arbitrary caller-supplied datasets — field maps, structs,
// primitives, or immutable containers — into a uniform sequence of Datum
// records carrying the semantic fields "_x", "_y" and optionally "_y0",
// while enforcing numeric-scale validity, deterministic ordering and
// point-count bounds for interactive zoom/pan rendering.
//
// Pipeline (GetData):
//
//	generate (if no data) → string maps → format → sort → clean → event keys
//
// Downsample is invoked separately by zoom/pan-aware callers on an
// already-sorted window plus its absolute offset into the full series.
//
// Guarantees:
//   - Determinism: identical (data, config) yields identical output.
//   - Purity: caller data is never mutated; every stage returns fresh
//     sequences and records, safe to share across concurrent readers.
//   - Error avoidance: missing accessors, paths, maps and domains resolve
//     to documented fallbacks. The only reported error is ErrInvalidDomain
//     from synthetic generation.
//
// See SortData, CleanData, Downsample and StringMap for the individual
// stage contracts.
package chartdata
