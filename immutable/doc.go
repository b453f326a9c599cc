// Package immutable defines the external immutable-container contract
// understood by the chartdata pipeline of github.com/jlismore/victory,
// plus reference implementations and the shallow-conversion helper.
//
// The pipeline itself never mutates caller data; this package exists so
// callers who keep their datasets in an immutable container can hand them
// over transparently. A container satisfies Record (keyed fields) or
// Iterable (positional entries); ToPlain converts a Record to a plain
// field map one level deep, while whitelisted fields (such as errorX and
// errorY) are carried through untouched as opaque references so their own
// immutable structure survives for specialized downstream consumers.
package immutable
