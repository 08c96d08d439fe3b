package triple

import "github.com/SaraFlht/owlexplain/internal/owl"

// AskQuery renders the binary SPARQL-shaped ASK query for a fully-ground
// triple, in the canonical form required by the output interfaces: full
// IRIs in angle brackets, a single space between tokens, no trailing
// whitespace.
func AskQuery(s owl.Entity, predicate string, o owl.Entity) string {
	return "ASK WHERE { " + s.FullIRI() + " " + predicate + " " + o.FullIRI() + " }"
}

// SelectPropertyQuery renders the multi-choice SELECT query for the
// object position of a binary object-property relation.
func SelectPropertyQuery(s, p owl.Entity) string {
	return "SELECT ?object WHERE { " + s.FullIRI() + " " + p.FullIRI() + " ?object }"
}

// SelectTypeQuery renders the multi-choice SELECT query for the class
// position of a class-membership relation.
func SelectTypeQuery(ind owl.Entity) string {
	return "SELECT ?class WHERE { " + ind.FullIRI() + " " + RDFType + " ?class }"
}
