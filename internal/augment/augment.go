// Package augment implements the ontology-augmentation utilities:
// pure, one-shot transforms over an asserted axiom set that sit outside
// the enumeration hot path. Each transform takes an explicit *rand.Rand
// rather than drawing from a hidden global source, so a run is
// reproducible given a seed.
package augment

import (
	"math/rand"

	"github.com/SaraFlht/owlexplain/internal/ontograph"
	"github.com/SaraFlht/owlexplain/internal/owl"
)

// InjectNoise returns axioms plus additional, schema-consistent but
// semantically arbitrary property and type assertions, added at rate
// (expected fraction of len(axioms) new axioms). It draws its new
// subjects, properties, and objects from the entities already present in
// axioms, so every injected axiom uses vocabulary the ontology declares.
func InjectNoise(axioms []owl.Axiom, rate float64, src *rand.Rand) []owl.Axiom {
	individuals, properties, classes := vocabulary(axioms)
	out := append([]owl.Axiom(nil), axioms...)
	n := int(rate * float64(len(axioms)))
	for i := 0; i < n; i++ {
		if len(individuals) == 0 {
			break
		}
		if len(properties) > 0 && src.Intn(2) == 0 {
			s := individuals[src.Intn(len(individuals))]
			p := properties[src.Intn(len(properties))]
			o := individuals[src.Intn(len(individuals))]
			out = append(out, owl.NewObjectPropertyAssertion(s, p, o, true))
			continue
		}
		if len(classes) == 0 {
			continue
		}
		ind := individuals[src.Intn(len(individuals))]
		cls := classes[src.Intn(len(classes))]
		out = append(out, owl.NewClassAssertion(ind, cls, true))
	}
	return out
}

// InjectNegation returns axioms plus additional owl:disjointWith-shaped
// class axioms and negative property-assertion-shaped axioms, added at
// rate (expected fraction of len(axioms) new axioms).
func InjectNegation(axioms []owl.Axiom, rate float64, src *rand.Rand) []owl.Axiom {
	individuals, properties, classes := vocabulary(axioms)
	out := append([]owl.Axiom(nil), axioms...)
	n := int(rate * float64(len(axioms)))
	for i := 0; i < n; i++ {
		if len(classes) >= 2 && (len(properties) == 0 || src.Intn(2) == 0) {
			a := classes[src.Intn(len(classes))]
			b := classes[src.Intn(len(classes))]
			if a.FullIRI() == b.FullIRI() {
				continue
			}
			out = append(out, owl.NewDisjointClasses(a, b))
			continue
		}
		if len(individuals) == 0 || len(properties) == 0 {
			continue
		}
		s := individuals[src.Intn(len(individuals))]
		p := properties[src.Intn(len(properties))]
		o := individuals[src.Intn(len(individuals))]
		out = append(out, owl.NewNegativeObjectPropertyAssertion(s, p, o))
	}
	return out
}

// vocabulary collects the distinct individuals, object properties, and
// classes mentioned across axioms, deduplicated by full IRI.
func vocabulary(axioms []owl.Axiom) (individuals, properties, classes []owl.Entity) {
	seenInd := make(map[string]bool)
	seenProp := make(map[string]bool)
	seenCls := make(map[string]bool)
	addInd := func(e owl.Entity) {
		if !e.IsZero() && !seenInd[e.FullIRI()] {
			seenInd[e.FullIRI()] = true
			individuals = append(individuals, e)
		}
	}
	addProp := func(e owl.Entity) {
		if !e.IsZero() && !seenProp[e.FullIRI()] {
			seenProp[e.FullIRI()] = true
			properties = append(properties, e)
		}
	}
	addCls := func(e owl.Entity) {
		if !e.IsZero() && !seenCls[e.FullIRI()] {
			seenCls[e.FullIRI()] = true
			classes = append(classes, e)
		}
	}
	for _, a := range axioms {
		switch a.Kind {
		case owl.ClassAssertion:
			addInd(a.Subject)
			addCls(a.Object)
		case owl.ObjectPropertyAssertion:
			addInd(a.Subject)
			addInd(a.Object)
			addProp(a.Property)
		case owl.SubClassOf:
			addCls(a.Subject)
			addCls(a.Object)
		case owl.ObjectPropertyDomain, owl.ObjectPropertyRange:
			addProp(a.Property)
			addCls(a.Object)
		}
	}
	return individuals, properties, classes
}

// SubOntology returns the induced sub-ontology of the individuals within
// hops object-property-assertion edges of center (edges treated as
// undirected, center included): property assertions are kept only when
// both endpoints are retained, class assertions are kept when their
// individual is retained, and every other axiom is kept only if it
// directly names a retained entity. hops <= 0 means unbounded (the full
// connected component).
func SubOntology(axioms []owl.Axiom, center owl.Entity, hops int) []owl.Axiom {
	g := ontograph.New()
	for _, a := range axioms {
		if a.Kind == owl.ObjectPropertyAssertion {
			g.AddPropertyValue(a.Subject, a.Property, a.Object)
		}
	}

	keep := map[string]bool{center.FullIRI(): true}
	for _, e := range g.NeighborsWithin(center, hops) {
		keep[e.FullIRI()] = true
	}

	var out []owl.Axiom
	for _, a := range axioms {
		if axiomRetained(a, keep) {
			out = append(out, a)
		}
	}
	return out
}

func axiomRetained(a owl.Axiom, keep map[string]bool) bool {
	switch a.Kind {
	case owl.ClassAssertion:
		return keep[a.Subject.FullIRI()]
	case owl.ObjectPropertyAssertion, owl.NegativeObjectPropertyAssertion:
		return keep[a.Subject.FullIRI()] && keep[a.Object.FullIRI()]
	default:
		for _, e := range []owl.Entity{a.Subject, a.Property, a.Object} {
			if !e.IsZero() && keep[e.FullIRI()] {
				return true
			}
		}
		for _, e := range a.Classes {
			if keep[e.FullIRI()] {
				return true
			}
		}
		for _, e := range a.Properties {
			if keep[e.FullIRI()] {
				return true
			}
		}
		return false
	}
}
