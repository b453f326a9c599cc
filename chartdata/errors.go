// SPDX-License-Identifier: MIT
// Package: victory/chartdata
//
// errors.go — sentinel errors for the chartdata package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with %w wrapping; sentinels stay bare.
//   • The pipeline is error-avoidant: missing accessors, absent string
//     maps, non-sequence input and empty datasets all resolve to fallback
//     values or empty results, never errors. Only a malformed generation
//     domain surfaces as an error.

package chartdata

import "errors"

// ErrInvalidDomain indicates that synthetic generation was asked to step
// over a malformed domain: a negative sample count, a non-finite bound,
// or a zero-length interval with more than one sample (a finite step
// cannot be produced).
// Usage: if errors.Is(err, ErrInvalidDomain) { /* fix domain/samples */ }.
var ErrInvalidDomain = errors.New("chartdata: domain produces no finite step")
