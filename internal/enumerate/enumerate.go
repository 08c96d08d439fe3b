// Package enumerate implements the inference enumerator: three
// data-parallel sub-procedures — property-assertion, class-membership,
// and subsumption enumeration — sharing one ontology, reasoner,
// explanation service, and global register.
package enumerate

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/SaraFlht/owlexplain/internal/explain"
	"github.com/SaraFlht/owlexplain/internal/owl"
	"github.com/SaraFlht/owlexplain/internal/reasoner"
	"github.com/SaraFlht/owlexplain/internal/register"
	"github.com/SaraFlht/owlexplain/internal/triple"
)

// Sink is the subset of internal/sink.Sink's API the enumerator depends
// on, kept narrow so tests can substitute a recording fake.
type Sink interface {
	WriteBinary(family, queryText, predicateDisplay string, answer bool, explanation string, size int) error
	WriteGroupedMultiChoice(family, queryText, predicateDisplay string, answers []string, explanationsByAnswer map[string]string, sizesByAnswer map[string]int) error
}

// Enumerator runs the three enumeration sub-procedures over one ontology.
type Enumerator struct {
	ont         *owl.Ontology
	reasoner    reasoner.Reasoner
	explainer   *explain.Service
	reg         *register.Register
	sink        Sink
	concurrency int
}

// New builds an Enumerator. concurrency <= 0 is treated as 1.
func New(ont *owl.Ontology, r reasoner.Reasoner, e *explain.Service, reg *register.Register, s Sink, concurrency int) *Enumerator {
	if concurrency <= 0 {
		concurrency = 1
	}
	return &Enumerator{ont: ont, reasoner: r, explainer: e, reg: reg, sink: s, concurrency: concurrency}
}

// Run executes the three sub-procedures in turn, each internally
// data-parallel, stopping at the first error (including context
// cancellation from a per-ontology timeout).
func (en *Enumerator) Run(ctx context.Context) error {
	if err := en.EnumerateProperties(ctx); err != nil {
		return err
	}
	if err := en.EnumerateMembership(ctx); err != nil {
		return err
	}
	return en.EnumerateSubsumption(ctx)
}

// explainOrAssert returns the "Directly asserted" shortcut when asserted
// is true, and otherwise defers to the explanation service.
func explainOrAssert(asserted bool, compute func() (string, int)) (string, int) {
	if asserted {
		return "Directly asserted", 1
	}
	return compute()
}

// EnumerateProperties runs the property-assertion sub-procedure,
// data-parallel over individuals.
func (en *Enumerator) EnumerateProperties(ctx context.Context) error {
	individuals := en.ont.Individuals()
	properties := en.ont.ObjectProperties()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(en.concurrency)
	for _, s := range individuals {
		s := s
		g.Go(func() error {
			for _, p := range properties {
				if err := gctx.Err(); err != nil {
					return err
				}
				if err := en.enumeratePropertyFor(s, p); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return g.Wait()
}

func (en *Enumerator) enumeratePropertyFor(s, p owl.Entity) error {
	values := en.reasoner.PropertyValues(s, p)
	if len(values) == 0 {
		return nil
	}

	selectQuery := triple.SelectPropertyQuery(s, p)
	en.reg.AdmitQuery(selectQuery)

	var answers []string
	explanations := make(map[string]string)
	sizes := make(map[string]int)

	for _, o := range values {
		if o.FullIRI() == s.FullIRI() {
			continue
		}
		t := triple.NewPropertyTriple(s, p, o)
		if !en.reg.AdmitTriple(t.Key()) {
			continue
		}

		asserted := en.ont.ContainsPropertyAssertion(s, p, o)
		text, size := explainOrAssert(asserted, func() (string, int) {
			return en.explainer.ExplainPropertyRelationship(s, p, o)
		})

		askQuery := triple.AskQuery(s, p.FullIRI(), o)
		if en.reg.AdmitQuery(askQuery) {
			if err := en.sink.WriteBinary("property", askQuery, p.FullIRI(), true, text, size); err != nil {
				return err
			}
		}

		answers = append(answers, o.FullIRI())
		explanations[o.FullIRI()] = text
		sizes[o.FullIRI()] = size
	}

	if len(answers) == 0 {
		return nil
	}
	return en.sink.WriteGroupedMultiChoice("property", selectQuery, p.FullIRI(), answers, explanations, sizes)
}

// EnumerateMembership runs the class-membership sub-procedure,
// data-parallel over individuals.
func (en *Enumerator) EnumerateMembership(ctx context.Context) error {
	individuals := en.ont.Individuals()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(en.concurrency)
	for _, ind := range individuals {
		ind := ind
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return en.enumerateMembershipFor(ind)
		})
	}
	return g.Wait()
}

func (en *Enumerator) enumerateMembershipFor(ind owl.Entity) error {
	types := en.reasoner.Types(ind, false)

	selectQuery := triple.SelectTypeQuery(ind)
	en.reg.AdmitQuery(selectQuery)

	var answers []string
	explanations := make(map[string]string)
	sizes := make(map[string]int)

	for _, cls := range types {
		if cls.FullIRI() == owl.Thing.FullIRI() || cls.FullIRI() == owl.Nothing.FullIRI() {
			continue
		}
		t := triple.NewTypeTriple(ind, cls)
		if !en.reg.AdmitTriple(t.Key()) {
			continue
		}

		asserted := en.ont.ContainsClassAssertion(ind, cls)
		text, size := explainOrAssert(asserted, func() (string, int) {
			return en.explainer.ExplainTypeInference(ind, cls)
		})

		askQuery := triple.AskQuery(ind, triple.RDFType, cls)
		if en.reg.AdmitQuery(askQuery) {
			if err := en.sink.WriteBinary("membership", askQuery, triple.RDFType, true, text, size); err != nil {
				return err
			}
		}

		answers = append(answers, cls.FullIRI())
		explanations[cls.FullIRI()] = text
		sizes[cls.FullIRI()] = size
	}

	if len(answers) == 0 {
		return nil
	}
	return en.sink.WriteGroupedMultiChoice("membership", selectQuery, triple.RDFType, answers, explanations, sizes)
}

// EnumerateSubsumption runs the subsumption sub-procedure, data-parallel
// over classes. It has no multi-choice form.
func (en *Enumerator) EnumerateSubsumption(ctx context.Context) error {
	classes := en.ont.Classes()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(en.concurrency)
	for _, a := range classes {
		a := a
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return en.enumerateSubsumptionFor(a)
		})
	}
	return g.Wait()
}

func (en *Enumerator) enumerateSubsumptionFor(a owl.Entity) error {
	supers := en.reasoner.SuperClasses(a, false)
	for _, b := range supers {
		if b.FullIRI() == owl.Thing.FullIRI() || b.FullIRI() == owl.Nothing.FullIRI() || b.FullIRI() == a.FullIRI() {
			continue
		}
		t := triple.NewSubClassTriple(a, b)
		if !en.reg.AdmitTriple(t.Key()) {
			continue
		}

		asserted := en.ont.ContainsSubClassOf(a, b)
		text, size := explainOrAssert(asserted, func() (string, int) {
			return en.explainer.ExplainClassRelationship(a, b)
		})

		askQuery := triple.AskQuery(a, triple.RDFSSubClassOf, b)
		if en.reg.AdmitQuery(askQuery) {
			if err := en.sink.WriteBinary("subsumption", askQuery, triple.RDFSSubClassOf, true, text, size); err != nil {
				return err
			}
		}
	}
	return nil
}
