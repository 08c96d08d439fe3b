// Package triple implements the canonical triple and query forms shared
// by the inference enumerator, the global deduplication register, and the
// output sink.
package triple

import (
	"strings"

	"github.com/SaraFlht/owlexplain/internal/owl"
)

// Synthetic predicate IRIs for the two relation families that are not
// object properties.
const (
	RDFType        = "<http://www.w3.org/1999/02/22-rdf-syntax-ns#type>"
	RDFSSubClassOf = "<http://www.w3.org/2000/01/rdf-schema#subClassOf>"
)

// keySep separates the three components of a canonical triple key. It
// must not appear inside a bracketed IRI.
const keySep = "|"

// Triple is a (subject, predicate, object) where predicate is either an
// object-property entity or one of the two synthetic predicates above.
type Triple struct {
	Subject   owl.Entity
	Predicate string // full IRI, bracketed; may be RDFType or RDFSSubClassOf
	Object    owl.Entity
}

// NewPropertyTriple builds a Triple for an object-property assertion.
func NewPropertyTriple(s, p, o owl.Entity) Triple {
	return Triple{Subject: s, Predicate: p.FullIRI(), Object: o}
}

// NewTypeTriple builds a Triple for a class-membership inference.
func NewTypeTriple(ind, cls owl.Entity) Triple {
	return Triple{Subject: ind, Predicate: RDFType, Object: cls}
}

// NewSubClassTriple builds a Triple for a subsumption inference.
func NewSubClassTriple(sub, sup owl.Entity) Triple {
	return Triple{Subject: sub, Predicate: RDFSSubClassOf, Object: sup}
}

// Key returns the canonical triple key: the concatenation of the full
// IRIs of subject, predicate, and object with a fixed separator. Two
// triples referring to the same logical relation always produce the same
// key.
func (t Triple) Key() string {
	var b strings.Builder
	b.Grow(len(t.Subject.FullIRI()) + len(t.Predicate) + len(t.Object.FullIRI()) + 2)
	b.WriteString(t.Subject.FullIRI())
	b.WriteString(keySep)
	b.WriteString(t.Predicate)
	b.WriteString(keySep)
	b.WriteString(t.Object.FullIRI())
	return b.String()
}
