// Package owl holds the ontology data model shared by the inference
// enumerator and the explanation service: entities, the axiom sum type,
// the deterministic axiom pretty-printer, an Ontology container with
// TBox/ABox classification, and a reference OWL/XML decoder used to
// build an Ontology for tests and the default CLI wiring.
//
// The decoder here is not a general-purpose OWL parser. Ontology loading
// is an external collaborator in production: any loader that can
// populate an Ontology's asserted axiom set is sufficient.
package owl
