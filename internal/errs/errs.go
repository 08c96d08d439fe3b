// Package errs collects the sentinel errors shared across the
// inference-enumeration and explanation engine.
package errs

import "errors"

var (
	// ErrMalformedIRI marks a programming error in entity-resolver usage:
	// an input that is neither bracketed, an absolute URI, nor a legal
	// fragment relative to a known base.
	ErrMalformedIRI = errors.New("owl: malformed IRI")

	// ErrUnknownEntity marks a reference to an entity absent from the
	// ontology currently being processed.
	ErrUnknownEntity = errors.New("owl: unknown entity")

	// ErrInconsistentOntology is raised by the reasoner adapter when the
	// loaded ontology is logically inconsistent. Enumeration continues;
	// any entailment from an inconsistent ontology holds trivially.
	ErrInconsistentOntology = errors.New("reasoner: inconsistent ontology")

	// ErrReasonerInternal marks a per-call reasoner failure. Callers treat
	// the answer as empty and fall back to pattern-based explanation.
	ErrReasonerInternal = errors.New("reasoner: internal error")

	// ErrJustificationUnavailable marks that the reasoner's justification
	// service produced nothing for a goal; the explanation service falls
	// back to structural pattern matching.
	ErrJustificationUnavailable = errors.New("reasoner: justification unavailable")
)
