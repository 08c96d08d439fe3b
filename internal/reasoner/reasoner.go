// Package reasoner defines the opaque reasoner-adapter contract and a
// reference implementation, GraphReasoner, backed by internal/ontograph.
// Production deployments are expected to supply their own adapter over a
// real OWL reasoner satisfying the same interface.
package reasoner

import "github.com/SaraFlht/owlexplain/internal/owl"

// Reasoner is the opaque adapter contract. Any operation may fail
// internally; callers are expected to treat a failure (or an empty
// result where one could plausibly exist) as "no information" and fall
// back to pattern matching rather than treating it as fatal.
type Reasoner interface {
	// IsConsistent reports whether the prepared knowledge base is
	// consistent.
	IsConsistent() bool

	// UnsatisfiableClasses returns every class equivalent to owl:Nothing.
	UnsatisfiableClasses() []owl.Entity

	// Entails reports whether a is entailed by the knowledge base,
	// asserted or not.
	Entails(a owl.Axiom) bool

	// Types returns the classes ind is a member of. direct restricts the
	// result to classes with no strict subclass also satisfied by ind.
	Types(ind owl.Entity, direct bool) []owl.Entity

	// PropertyValues returns the values of ind.prop entailed by the
	// knowledge base, not just those directly asserted.
	PropertyValues(ind, prop owl.Entity) []owl.Entity

	// SuperClasses returns the classes subsuming cls. direct restricts
	// the result to the immediate parents.
	SuperClasses(cls owl.Entity, direct bool) []owl.Entity

	// Justifications returns up to max minimal sets of asserted axioms
	// each independently sufficient to entail a. An empty result means
	// the adapter could not produce one, not that none exists; callers
	// fall back to pattern-based explanation in that case.
	Justifications(a owl.Axiom, max int) [][]owl.Axiom
}
