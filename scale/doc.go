// Package scale defines the scale-type and domain vocabulary consumed by
// the chartdata pipeline of github.com/jlismore/victory.
//
// The pipeline never constructs scales or infers domains itself; it only
// needs to know the resolved numeric transform per axis (Linear, Log, ...)
// and, for synthetic generation, a fallback base domain. Both live here so
// that the core and its collaborators share one vocabulary without import
// cycles.
package scale
