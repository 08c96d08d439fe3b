package owl

import "fmt"

// Ontology is a set of asserted axioms plus a base IRI.
type Ontology struct {
	Base   string
	Axioms []Axiom

	// index accelerates Contains lookups; keyed by indexKey, which uses
	// full IRIs so that entities whose display names collide stay distinct.
	index map[string]bool
}

// indexKey identifies an axiom by its kind and the full IRIs (and literal)
// of its operands; the Asserted flag is not part of the key.
func indexKey(a Axiom) string {
	return fmt.Sprint(a.Kind, " ", a.Subject, " ", a.Property, " ", a.Object, " ", a.Classes, " ", a.Properties, " ", a.Literal)
}

// NewOntology returns an Ontology over axioms with the given base IRI.
func NewOntology(base string, axioms []Axiom) *Ontology {
	o := &Ontology{Base: base, Axioms: axioms}
	o.reindex()
	return o
}

// Add appends axioms to the ontology's asserted set.
func (o *Ontology) Add(axioms ...Axiom) {
	o.Axioms = append(o.Axioms, axioms...)
	for _, a := range axioms {
		if o.index == nil {
			o.index = make(map[string]bool)
		}
		o.index[indexKey(a)] = true
	}
}

func (o *Ontology) reindex() {
	o.index = make(map[string]bool, len(o.Axioms))
	for _, a := range o.Axioms {
		o.index[indexKey(a)] = true
	}
}

// Contains reports whether an axiom logically identical to a is an
// explicit, asserted axiom of the ontology.
func (o *Ontology) Contains(a Axiom) bool {
	if o.index == nil {
		o.reindex()
	}
	return o.index[indexKey(a)]
}

// ContainsPropertyAssertion reports whether `s p o` is explicitly asserted.
func (o *Ontology) ContainsPropertyAssertion(s, p, obj Entity) bool {
	return o.Contains(NewObjectPropertyAssertion(s, p, obj, true))
}

// ContainsClassAssertion reports whether `ind rdf:type cls` is explicitly asserted.
func (o *Ontology) ContainsClassAssertion(ind, cls Entity) bool {
	return o.Contains(NewClassAssertion(ind, cls, true))
}

// ContainsSubClassOf reports whether `sub rdfs:subClassOf sup` is explicitly asserted.
func (o *Ontology) ContainsSubClassOf(sub, sup Entity) bool {
	return o.Contains(NewSubClassOf(sub, sup, true))
}

// AxiomsOfKind returns the subset of asserted axioms with the given kind.
func (o *Ontology) AxiomsOfKind(k AxiomKind) []Axiom {
	var out []Axiom
	for _, a := range o.Axioms {
		if a.Kind == k {
			out = append(out, a)
		}
	}
	return out
}

// tboxKinds are the schema-level (terminological) axiom kinds.
var tboxKinds = map[AxiomKind]bool{
	SubClassOf:                 true,
	EquivalentClasses:          true,
	SubObjectPropertyOf:        true,
	SubPropertyChain:           true,
	ObjectPropertyDomain:       true,
	ObjectPropertyRange:        true,
	TransitiveObjectProperty:   true,
	SymmetricObjectProperty:    true,
	FunctionalObjectProperty:   true,
	InverseObjectProperties:    true,
	EquivalentObjectProperties: true,
	DisjointClasses:            true,
}

// Individuals returns the distinct entities that appear as an
// individual: the subject of a class assertion, either endpoint of an
// object-property assertion, or the subject of a data-property assertion.
func (o *Ontology) Individuals() []Entity {
	seen := make(map[string]bool)
	var out []Entity
	add := func(e Entity) {
		if !e.IsZero() && !seen[e.FullIRI()] {
			seen[e.FullIRI()] = true
			out = append(out, e)
		}
	}
	for _, a := range o.Axioms {
		switch a.Kind {
		case ClassAssertion:
			add(a.Subject)
		case ObjectPropertyAssertion:
			add(a.Subject)
			add(a.Object)
		case DataPropertyAssertion:
			add(a.Subject)
		}
	}
	return out
}

// ObjectProperties returns the distinct entities used as an object
// property anywhere in the ontology's asserted axioms.
func (o *Ontology) ObjectProperties() []Entity {
	seen := make(map[string]bool)
	var out []Entity
	add := func(e Entity) {
		if !e.IsZero() && !seen[e.FullIRI()] {
			seen[e.FullIRI()] = true
			out = append(out, e)
		}
	}
	for _, a := range o.Axioms {
		switch a.Kind {
		case ObjectPropertyAssertion, ObjectPropertyDomain, ObjectPropertyRange,
			TransitiveObjectProperty, SymmetricObjectProperty, FunctionalObjectProperty:
			add(a.Property)
		case SubObjectPropertyOf:
			add(a.Subject)
			add(a.Object)
		case SubPropertyChain:
			add(a.Object)
			for _, p := range a.Properties {
				add(p)
			}
		case InverseObjectProperties, EquivalentObjectProperties:
			for _, p := range a.Properties {
				add(p)
			}
		}
	}
	return out
}

// Classes returns the distinct entities used as a class anywhere in the
// ontology's asserted axioms, excluding owl:Thing and owl:Nothing.
func (o *Ontology) Classes() []Entity {
	seen := make(map[string]bool)
	var out []Entity
	add := func(e Entity) {
		if e.IsZero() || e.FullIRI() == Thing.FullIRI() || e.FullIRI() == Nothing.FullIRI() {
			return
		}
		if !seen[e.FullIRI()] {
			seen[e.FullIRI()] = true
			out = append(out, e)
		}
	}
	for _, a := range o.Axioms {
		switch a.Kind {
		case ClassAssertion:
			add(a.Object)
		case SubClassOf:
			add(a.Subject)
			add(a.Object)
		case EquivalentClasses:
			for _, c := range a.Classes {
				add(c)
			}
		case ObjectPropertyDomain, ObjectPropertyRange:
			add(a.Object)
		}
	}
	return out
}

// TBoxABoxCounts classifies the ontology's asserted axioms into
// terminological (schema-level) and assertional (individual-level) counts
// per the standard axiom-kind classification.
func (o *Ontology) TBoxABoxCounts() (tbox, abox int) {
	for _, a := range o.Axioms {
		if tboxKinds[a.Kind] {
			tbox++
		} else {
			abox++
		}
	}
	return tbox, abox
}
