// Package explain implements the explanation service: a
// reasoner-justification path tried first, and an ordered structural
// pattern-matching fallback tried second, exactly as laid out for each of
// the three goal families (property relationship, class membership,
// subsumption).
package explain

import (
	"sort"
	"strings"
	"sync/atomic"

	"github.com/SaraFlht/owlexplain/internal/owl"
	"github.com/SaraFlht/owlexplain/internal/reasoner"
)

const (
	defaultMaxJustifications = 5
	defaultMaxDepth          = 8
)

// Service answers explanation requests for one ontology at a time.
type Service struct {
	reasoner          reasoner.Reasoner
	ont               *owl.Ontology
	schema            *schema
	maxJustifications int
	maxDepth          int

	reasonerHits int64
	patternHits  int64
}

// Stats is a point-in-time count of how many explanation requests were
// answered from the reasoner's own justification service versus the
// structural pattern fallback.
type Stats struct {
	ReasonerExplained int64
	PatternExplained  int64
}

// Stats returns the current counts.
func (e *Service) Stats() Stats {
	return Stats{
		ReasonerExplained: atomic.LoadInt64(&e.reasonerHits),
		PatternExplained:  atomic.LoadInt64(&e.patternHits),
	}
}

// New builds a Service over ont, using r for the justification path.
// maxJustifications caps the number of distinct proof blocks kept per
// inference; maxDepth bounds pattern-fallback recursion. Non-positive
// values fall back to small defaults.
func New(r reasoner.Reasoner, ont *owl.Ontology, maxJustifications, maxDepth int) *Service {
	if maxJustifications <= 0 {
		maxJustifications = defaultMaxJustifications
	}
	if maxDepth <= 0 {
		maxDepth = defaultMaxDepth
	}
	return &Service{
		reasoner:          r,
		ont:               ont,
		schema:            buildSchema(ont),
		maxJustifications: maxJustifications,
		maxDepth:          maxDepth,
	}
}

// ExplainPropertyRelationship explains why subj prop obj holds.
func (e *Service) ExplainPropertyRelationship(subj, prop, obj owl.Entity) (string, int) {
	axiom := owl.NewObjectPropertyAssertion(subj, prop, obj, false)
	blocks := e.reasoner.Justifications(axiom, e.maxJustifications)
	if len(blocks) == 0 {
		blocks = e.propertyPatterns(subj, prop, obj, e.maxDepth, map[string]bool{})
		atomic.AddInt64(&e.patternHits, 1)
	} else {
		atomic.AddInt64(&e.reasonerHits, 1)
	}
	return e.finish(blocks)
}

// ExplainTypeInference explains why ind is a member of cls.
func (e *Service) ExplainTypeInference(ind, cls owl.Entity) (string, int) {
	axiom := owl.NewClassAssertion(ind, cls, false)
	blocks := e.reasoner.Justifications(axiom, e.maxJustifications)
	if len(blocks) == 0 {
		blocks = e.typePatterns(ind, cls, e.maxDepth, map[string]bool{})
		atomic.AddInt64(&e.patternHits, 1)
	} else {
		atomic.AddInt64(&e.reasonerHits, 1)
	}
	return e.finish(blocks)
}

// ExplainClassRelationship explains why sub is a subclass of sup.
func (e *Service) ExplainClassRelationship(sub, sup owl.Entity) (string, int) {
	axiom := owl.NewSubClassOf(sub, sup, false)
	blocks := e.reasoner.Justifications(axiom, e.maxJustifications)
	if len(blocks) == 0 {
		blocks = e.subClassPatterns(sub, sup, e.maxDepth, map[string]bool{})
		atomic.AddInt64(&e.patternHits, 1)
	} else {
		atomic.AddInt64(&e.reasonerHits, 1)
	}
	return e.finish(blocks)
}

func (e *Service) finish(blocks [][]owl.Axiom) (string, int) {
	blocks = dedupBlocks(blocks)
	if len(blocks) > e.maxJustifications {
		blocks = blocks[:e.maxJustifications]
	}
	text := renderBlocks(blocks)
	return text, ExplanationSize(text)
}

func renderBlocks(blocks [][]owl.Axiom) string {
	parts := make([]string, 0, len(blocks))
	for _, b := range blocks {
		lines := make([]string, len(b))
		for i, a := range b {
			lines[i] = owl.Render(a)
		}
		parts = append(parts, strings.Join(lines, "\n"))
	}
	return strings.Join(parts, "\n\n")
}

// dedupBlocks removes blocks whose rendered premises form the same
// multiset as one already kept, preserving first-seen order.
func dedupBlocks(blocks [][]owl.Axiom) [][]owl.Axiom {
	seen := make(map[string]bool, len(blocks))
	out := make([][]owl.Axiom, 0, len(blocks))
	for _, b := range blocks {
		if len(b) == 0 {
			continue
		}
		lines := make([]string, len(b))
		for i, a := range b {
			lines[i] = owl.Render(a)
		}
		sorted := append([]string{}, lines...)
		sort.Strings(sorted)
		key := strings.Join(sorted, "\x1f")
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, b)
	}
	return out
}

// ExplanationSize counts the distinct rendered premise lines across an
// explanation's blocks.
func ExplanationSize(text string) int {
	if text == "" {
		return 0
	}
	seen := make(map[string]bool)
	for _, line := range strings.Split(text, "\n") {
		if line == "" {
			continue
		}
		seen[line] = true
	}
	return len(seen)
}
