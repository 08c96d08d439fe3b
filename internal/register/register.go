// Package register implements the process-wide, append-only
// deduplication register: a pair of sets — canonical triple keys and
// canonical query strings — shared across every ontology processed in a
// run. There is no per-file reset and no removal operation.
package register

import "sync"

// Register is a concurrent, append-only pair of sets. The zero value is
// ready to use. A Register must not be copied after first use.
type Register struct {
	triples sync.Map // string -> struct{}
	queries sync.Map // string -> struct{}

	triplesN int64
	queriesN int64
	mu       sync.Mutex // guards the two counters only
}

// New returns an empty Register.
func New() *Register {
	return &Register{}
}

// AdmitTriple atomically inserts key into the triple set and reports
// whether it was not already present. Safe for concurrent use by any
// number of goroutines; exactly one caller observes true for a given key.
func (r *Register) AdmitTriple(key string) bool {
	_, loaded := r.triples.LoadOrStore(key, struct{}{})
	if !loaded {
		r.mu.Lock()
		r.triplesN++
		r.mu.Unlock()
	}
	return !loaded
}

// AdmitQuery atomically inserts q into the query set and reports whether
// it was not already present.
func (r *Register) AdmitQuery(q string) bool {
	_, loaded := r.queries.LoadOrStore(q, struct{}{})
	if !loaded {
		r.mu.Lock()
		r.queriesN++
		r.mu.Unlock()
	}
	return !loaded
}

// Stats holds a point-in-time snapshot of register sizes.
type Stats struct {
	Triples int64
	Queries int64
}

// Snapshot returns the current sizes of the two sets. The counts are
// monotonically non-decreasing over the life of the Register.
func (r *Register) Snapshot() Stats {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Stats{Triples: r.triplesN, Queries: r.queriesN}
}
