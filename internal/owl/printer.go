package owl

import "strings"

// Render maps a single Axiom to a one-line human-readable form using
// display names. Render is deterministic: structurally equal axioms (same
// kind, same operands in the same order) produce byte-identical strings.
// The operands of n-ary axioms are rendered in their stored order, so two
// axioms listing the same members in a different order render differently.
func Render(a Axiom) string {
	switch a.Kind {
	case ClassAssertion:
		return a.Subject.Display() + " rdf:type " + a.Object.Display()
	case ObjectPropertyAssertion:
		return a.Subject.Display() + " " + a.Property.Display() + " " + a.Object.Display()
	case DataPropertyAssertion:
		return a.Subject.Display() + " " + a.Property.Display() + " \"" + a.Literal + "\""
	case SubClassOf:
		return a.Subject.Display() + " rdfs:subClassOf " + a.Object.Display()
	case EquivalentClasses:
		return joinDisplay(a.Classes, " owl:equivalentClass ")
	case SubObjectPropertyOf:
		return a.Subject.Display() + " rdfs:subPropertyOf " + a.Object.Display()
	case SubPropertyChain:
		return joinDisplay(a.Properties, " o ") + " rdfs:subPropertyOf " + a.Object.Display()
	case ObjectPropertyDomain:
		return "domain(" + a.Property.Display() + ") = " + a.Object.Display()
	case ObjectPropertyRange:
		return "range(" + a.Property.Display() + ") = " + a.Object.Display()
	case TransitiveObjectProperty:
		return "TransitiveObjectProperty(" + a.Property.Display() + ")"
	case SymmetricObjectProperty:
		return "SymmetricObjectProperty(" + a.Property.Display() + ")"
	case FunctionalObjectProperty:
		return "FunctionalObjectProperty(" + a.Property.Display() + ")"
	case InverseObjectProperties:
		return joinDisplay(a.Properties, " owl:inverseOf ")
	case EquivalentObjectProperties:
		return joinDisplay(a.Properties, " owl:equivalentProperty ")
	case DisjointClasses:
		return a.Subject.Display() + " owl:disjointWith " + a.Object.Display()
	case NegativeObjectPropertyAssertion:
		return "NOT " + a.Subject.Display() + " " + a.Property.Display() + " " + a.Object.Display()
	default:
		return "<unrenderable axiom>"
	}
}

func joinDisplay(es []Entity, sep string) string {
	names := make([]string, len(es))
	for i, e := range es {
		names[i] = e.Display()
	}
	return strings.Join(names, sep)
}
