// Package sample produces deterministic demo datasets for
// github.com/jlismore/victory: small, reproducible series emitted in the
// raw {x,y} shape the chartdata pipeline consumes.
//
// Intended for examples, fixtures and benchmarks — the same (n, seed,
// options) triple always yields the same series, which keeps golden tests
// and downsampling benchmarks stable.
//
// Generators:
//   - Wave — sinusoid with optional linear trend and Gaussian noise.
//   - Walk — cumulative random walk.
//
// Options are functional and validate at construction (panic on
// meaningless values, per the option-constructor policy); the generators
// themselves never panic.
package sample
