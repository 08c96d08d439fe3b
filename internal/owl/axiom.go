package owl

// AxiomKind tags the variant held by an Axiom. Only the structural shape
// matters for this package; the pretty-printer (Render) maps each variant
// to a one-line canonical form.
type AxiomKind int

const (
	ClassAssertion AxiomKind = iota
	ObjectPropertyAssertion
	DataPropertyAssertion
	SubClassOf
	EquivalentClasses
	SubObjectPropertyOf
	SubPropertyChain
	ObjectPropertyDomain
	ObjectPropertyRange
	TransitiveObjectProperty
	SymmetricObjectProperty
	FunctionalObjectProperty
	InverseObjectProperties
	EquivalentObjectProperties

	// DisjointClasses and NegativeObjectPropertyAssertion are not part of
	// the reasoner's entailment vocabulary; they are produced only by
	// internal/augment's negation-injection transform and rendered for
	// inspection, never asserted by a loaded ontology.
	DisjointClasses
	NegativeObjectPropertyAssertion
)

// Axiom is a tagged variant over the reasoner's entailment-relevant
// axiom shapes plus the two augmentation-only synthetic kinds. Only the
// fields relevant to Kind are populated; the remainder are the zero
// Entity.
type Axiom struct {
	Kind AxiomKind

	// Asserted reports whether this axiom was read directly from an
	// ontology's asserted axiom set, as opposed to an axiom built
	// internally (e.g. the goal axiom handed to the reasoner's
	// justification service).
	Asserted bool

	Subject  Entity // individual (class/property assertion), or sub-class/sub-property
	Property Entity // the object or data property involved
	Object   Entity // individual object (property assertion), or super-class/super-property/range class

	// Classes holds the n-ary operands of an EquivalentClasses axiom.
	Classes []Entity

	// Properties holds the n-ary operands of EquivalentObjectProperties,
	// the pair for InverseObjectProperties, or the ordered factors of a
	// SubPropertyChain (Object holds the chain's super-property).
	Properties []Entity

	// Literal holds the object value of a DataPropertyAssertion.
	Literal string
}

// NewClassAssertion builds `ind rdf:type cls`.
func NewClassAssertion(ind, cls Entity, asserted bool) Axiom {
	return Axiom{Kind: ClassAssertion, Subject: ind, Object: cls, Asserted: asserted}
}

// NewObjectPropertyAssertion builds `s p o`.
func NewObjectPropertyAssertion(s, p, o Entity, asserted bool) Axiom {
	return Axiom{Kind: ObjectPropertyAssertion, Subject: s, Property: p, Object: o, Asserted: asserted}
}

// NewDataPropertyAssertion builds `s p "literal"`.
func NewDataPropertyAssertion(s, p Entity, literal string, asserted bool) Axiom {
	return Axiom{Kind: DataPropertyAssertion, Subject: s, Property: p, Literal: literal, Asserted: asserted}
}

// NewSubClassOf builds `sub rdfs:subClassOf sup`.
func NewSubClassOf(sub, sup Entity, asserted bool) Axiom {
	return Axiom{Kind: SubClassOf, Subject: sub, Object: sup, Asserted: asserted}
}

// NewEquivalentClasses builds an n-ary owl:equivalentClass axiom.
func NewEquivalentClasses(classes []Entity, asserted bool) Axiom {
	return Axiom{Kind: EquivalentClasses, Classes: classes, Asserted: asserted}
}

// NewSubObjectPropertyOf builds `sub rdfs:subPropertyOf sup`.
func NewSubObjectPropertyOf(sub, sup Entity, asserted bool) Axiom {
	return Axiom{Kind: SubObjectPropertyOf, Subject: sub, Object: sup, Asserted: asserted}
}

// NewSubPropertyChain builds `p1 o ... o pn rdfs:subPropertyOf sup`.
func NewSubPropertyChain(chain []Entity, sup Entity, asserted bool) Axiom {
	return Axiom{Kind: SubPropertyChain, Properties: chain, Object: sup, Asserted: asserted}
}

// NewObjectPropertyDomain builds `domain(p) = cls`.
func NewObjectPropertyDomain(p, cls Entity, asserted bool) Axiom {
	return Axiom{Kind: ObjectPropertyDomain, Property: p, Object: cls, Asserted: asserted}
}

// NewObjectPropertyRange builds `range(p) = cls`.
func NewObjectPropertyRange(p, cls Entity, asserted bool) Axiom {
	return Axiom{Kind: ObjectPropertyRange, Property: p, Object: cls, Asserted: asserted}
}

// NewTransitiveObjectProperty builds `TransitiveObjectProperty(p)`.
func NewTransitiveObjectProperty(p Entity, asserted bool) Axiom {
	return Axiom{Kind: TransitiveObjectProperty, Property: p, Asserted: asserted}
}

// NewSymmetricObjectProperty builds `SymmetricObjectProperty(p)`.
func NewSymmetricObjectProperty(p Entity, asserted bool) Axiom {
	return Axiom{Kind: SymmetricObjectProperty, Property: p, Asserted: asserted}
}

// NewFunctionalObjectProperty builds `FunctionalObjectProperty(p)`.
func NewFunctionalObjectProperty(p Entity, asserted bool) Axiom {
	return Axiom{Kind: FunctionalObjectProperty, Property: p, Asserted: asserted}
}

// NewInverseObjectProperties builds `p owl:inverseOf q`.
func NewInverseObjectProperties(p, q Entity, asserted bool) Axiom {
	return Axiom{Kind: InverseObjectProperties, Properties: []Entity{p, q}, Asserted: asserted}
}

// NewEquivalentObjectProperties builds an n-ary owl:equivalentProperty axiom.
func NewEquivalentObjectProperties(properties []Entity, asserted bool) Axiom {
	return Axiom{Kind: EquivalentObjectProperties, Properties: properties, Asserted: asserted}
}

// NewDisjointClasses builds `a owl:disjointWith b`.
func NewDisjointClasses(a, b Entity) Axiom {
	return Axiom{Kind: DisjointClasses, Subject: a, Object: b, Asserted: false}
}

// NewNegativeObjectPropertyAssertion builds `NOT s p o`.
func NewNegativeObjectPropertyAssertion(s, p, o Entity) Axiom {
	return Axiom{Kind: NegativeObjectPropertyAssertion, Subject: s, Property: p, Object: o, Asserted: false}
}
