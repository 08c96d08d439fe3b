package reasoner

import (
	"github.com/SaraFlht/owlexplain/internal/ontograph"
	"github.com/SaraFlht/owlexplain/internal/owl"
)

// maxCollectDepth bounds the worklist iterations used to close transitive
// property chains, guarding against cycles in malformed ontologies.
const maxCollectDepth = 64

// chainAxiom is a flattened owl.SubPropertyChain: factors composed in
// order entail sup.
type chainAxiom struct {
	factors []owl.Entity
	sup     owl.Entity
}

// Option configures a GraphReasoner at construction time.
type Option func(*GraphReasoner)

// WithBoundedHierarchy caps class-hierarchy traversals (Types and
// SuperClasses) at maxDepth edges, trading completeness for bounded memory
// and latency on pathologically deep or cyclic ontologies. Property-value
// closure is not affected; it stays bounded by maxCollectDepth. The
// default (maxDepth == 0) is the eager, fully-materialised variant.
func WithBoundedHierarchy(maxDepth int) Option {
	return func(r *GraphReasoner) { r.maxDepth = maxDepth }
}

// GraphReasoner is the reference Reasoner implementation: it materialises
// one ontology's asserted axioms into an internal/ontograph.Graph and a
// handful of small property-characteristic indexes, then answers every
// Reasoner operation by graph traversal. It does not implement a real
// justification service; Justifications always reports unavailable so
// that callers fall back to pattern-based explanation, which this
// reference adapter is itself built from.
type GraphReasoner struct {
	ont *owl.Ontology
	g   *ontograph.Graph

	maxDepth int

	transitive map[string]bool
	symmetric  map[string]bool
	functional map[string]bool

	subPropOf  map[string][]owl.Entity
	equivProps map[string][]owl.Entity
	inverseOf  map[string][]owl.Entity
	domainOf   map[string]owl.Entity
	rangeOf    map[string]owl.Entity
	chains     []chainAxiom

	classes map[string]owl.Entity
}

var _ Reasoner = (*GraphReasoner)(nil)

// New builds a GraphReasoner over ont's asserted axioms.
func New(ont *owl.Ontology, opts ...Option) *GraphReasoner {
	r := &GraphReasoner{
		ont:        ont,
		g:          ontograph.New(),
		transitive: make(map[string]bool),
		symmetric:  make(map[string]bool),
		functional: make(map[string]bool),
		subPropOf:  make(map[string][]owl.Entity),
		equivProps: make(map[string][]owl.Entity),
		inverseOf:  make(map[string][]owl.Entity),
		domainOf:   make(map[string]owl.Entity),
		rangeOf:    make(map[string]owl.Entity),
		classes:    make(map[string]owl.Entity),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.build()
	return r
}

func (r *GraphReasoner) rememberClass(e owl.Entity) {
	if !e.IsZero() {
		r.classes[e.FullIRI()] = e
	}
}

func (r *GraphReasoner) build() {
	for _, a := range r.ont.Axioms {
		switch a.Kind {
		case owl.ClassAssertion:
			r.g.AddType(a.Subject, a.Object)
			r.rememberClass(a.Object)

		case owl.ObjectPropertyAssertion:
			r.g.AddPropertyValue(a.Subject, a.Property, a.Object)

		case owl.SubClassOf:
			r.g.AddSubClassOf(a.Subject, a.Object)
			r.rememberClass(a.Subject)
			r.rememberClass(a.Object)

		case owl.EquivalentClasses:
			for _, c := range a.Classes {
				r.rememberClass(c)
			}
			for i := range a.Classes {
				for j := range a.Classes {
					if i == j {
						continue
					}
					r.g.AddSubClassOf(a.Classes[i], a.Classes[j])
				}
			}

		case owl.SubObjectPropertyOf:
			r.subPropOf[a.Subject.FullIRI()] = append(r.subPropOf[a.Subject.FullIRI()], a.Object)

		case owl.SubPropertyChain:
			r.chains = append(r.chains, chainAxiom{factors: a.Properties, sup: a.Object})

		case owl.ObjectPropertyDomain:
			r.domainOf[a.Property.FullIRI()] = a.Object
			r.rememberClass(a.Object)

		case owl.ObjectPropertyRange:
			r.rangeOf[a.Property.FullIRI()] = a.Object
			r.rememberClass(a.Object)

		case owl.TransitiveObjectProperty:
			r.transitive[a.Property.FullIRI()] = true

		case owl.SymmetricObjectProperty:
			r.symmetric[a.Property.FullIRI()] = true

		case owl.FunctionalObjectProperty:
			r.functional[a.Property.FullIRI()] = true

		case owl.InverseObjectProperties:
			p, q := a.Properties[0], a.Properties[1]
			r.inverseOf[p.FullIRI()] = append(r.inverseOf[p.FullIRI()], q)
			r.inverseOf[q.FullIRI()] = append(r.inverseOf[q.FullIRI()], p)

		case owl.EquivalentObjectProperties:
			for i := range a.Properties {
				for j := range a.Properties {
					if i == j {
						continue
					}
					iri := a.Properties[i].FullIRI()
					r.equivProps[iri] = append(r.equivProps[iri], a.Properties[j])
				}
			}
		}
	}
}

// IsConsistent reports false iff some individual is an asserted, direct
// member of a class this adapter can prove unsatisfiable.
func (r *GraphReasoner) IsConsistent() bool {
	unsat := make(map[string]bool)
	for _, c := range r.UnsatisfiableClasses() {
		unsat[c.FullIRI()] = true
	}
	if len(unsat) == 0 {
		return true
	}
	for _, a := range r.ont.Axioms {
		if a.Kind == owl.ClassAssertion && unsat[a.Object.FullIRI()] {
			return false
		}
	}
	return true
}

// UnsatisfiableClasses returns every known class that is a subclass of,
// or equivalent to, owl:Nothing under the asserted hierarchy.
func (r *GraphReasoner) UnsatisfiableClasses() []owl.Entity {
	var out []owl.Entity
	for _, c := range r.classes {
		if c.FullIRI() == owl.Nothing.FullIRI() {
			continue
		}
		if ok, _ := r.g.IsDescendantOf(c, owl.Nothing); ok {
			out = append(out, c)
		}
	}
	return out
}

// Entails dispatches on the axiom kind of a; kinds outside the three
// entailment-bearing families fall back to asserted-axiom membership.
func (r *GraphReasoner) Entails(a owl.Axiom) bool {
	switch a.Kind {
	case owl.ClassAssertion:
		return containsEntity(r.Types(a.Subject, false), a.Object)
	case owl.ObjectPropertyAssertion:
		return containsEntity(r.PropertyValues(a.Subject, a.Property), a.Object)
	case owl.SubClassOf:
		if a.Subject.FullIRI() == a.Object.FullIRI() {
			return true
		}
		return containsEntity(r.SuperClasses(a.Subject, false), a.Object)
	default:
		return r.ont.Contains(a)
	}
}

func containsEntity(set []owl.Entity, e owl.Entity) bool {
	for _, x := range set {
		if x.FullIRI() == e.FullIRI() {
			return true
		}
	}
	return false
}

// Types returns the classes ind is a member of, per the class-membership
// closure over asserted rdf:type facts and the subClassOf hierarchy
// (equivalence is represented as a pair of subClassOf edges, so it is
// already reflected in the hierarchy walk). With direct set, an asserted
// type that strictly subsumes another asserted type of ind is dropped.
func (r *GraphReasoner) Types(ind owl.Entity, direct bool) []owl.Entity {
	direct0 := r.g.DirectTypes(ind)
	if direct {
		types := dedupEntities(direct0)
		var out []owl.Entity
		for _, t := range types {
			redundant := false
			for _, u := range types {
				if u.FullIRI() != t.FullIRI() &&
					containsEntity(r.g.TransitiveSuperClassesBounded(u, r.maxDepth), t) &&
					!containsEntity(r.g.TransitiveSuperClassesBounded(t, r.maxDepth), u) {
					redundant = true
				}
			}
			if !redundant {
				out = append(out, t)
			}
		}
		return out
	}
	result := append([]owl.Entity{}, direct0...)
	for _, d := range direct0 {
		result = append(result, r.g.TransitiveSuperClassesBounded(d, r.maxDepth)...)
	}
	return dedupEntities(result)
}

// SuperClasses returns the classes subsuming cls.
func (r *GraphReasoner) SuperClasses(cls owl.Entity, direct bool) []owl.Entity {
	if direct {
		return dedupEntities(r.g.DirectSuperClasses(cls))
	}
	return dedupEntities(r.g.TransitiveSuperClassesBounded(cls, r.maxDepth))
}

// PropertyValues returns every value of ind.prop entailed through direct
// assertion, inverse properties, symmetry, sub-properties, equivalent
// properties, property chains, and (if prop is transitive) closure over
// those same rules.
func (r *GraphReasoner) PropertyValues(ind, prop owl.Entity) []owl.Entity {
	seen := make(map[string]owl.Entity)
	r.collectOneHop(ind, prop, seen, make(map[string]bool))
	r.closeTransitively(ind, prop, seen)

	out := make([]owl.Entity, 0, len(seen))
	for iri, e := range seen {
		if iri != ind.FullIRI() {
			out = append(out, e)
		}
	}
	return out
}

// collectOneHop adds every value reachable from ind via prop without
// following transitivity, guarding against cycles through equivalent
// properties with visitedProps.
func (r *GraphReasoner) collectOneHop(ind, prop owl.Entity, seen map[string]owl.Entity, visitedProps map[string]bool) {
	key := prop.FullIRI()
	if visitedProps[key] {
		return
	}
	visitedProps[key] = true

	add := func(e owl.Entity) {
		if _, ok := seen[e.FullIRI()]; !ok {
			seen[e.FullIRI()] = e
		}
	}

	for _, o := range r.g.DirectPropertyValues(ind, prop) {
		add(o)
	}
	for _, q := range r.inverseOf[key] {
		for _, s := range r.g.DirectPropertySubjects(ind, q) {
			add(s)
		}
	}
	if r.symmetric[key] {
		for _, s := range r.g.DirectPropertySubjects(ind, prop) {
			add(s)
		}
	}
	for _, q := range r.subPropertiesOf(key) {
		for _, o := range r.g.DirectPropertyValues(ind, q) {
			add(o)
		}
	}
	for _, q := range r.equivProps[key] {
		r.collectOneHop(ind, q, seen, visitedProps)
	}
	for _, ch := range r.chains {
		if ch.sup.FullIRI() != key {
			continue
		}
		cur := []owl.Entity{ind}
		for _, factor := range ch.factors {
			next := make(map[string]owl.Entity)
			for _, x := range cur {
				for _, y := range r.g.DirectPropertyValues(x, factor) {
					next[y.FullIRI()] = y
				}
			}
			cur = cur[:0]
			for _, y := range next {
				cur = append(cur, y)
			}
			if len(cur) == 0 {
				break
			}
		}
		for _, e := range cur {
			add(e)
		}
	}
}

func (r *GraphReasoner) closeTransitively(ind, prop owl.Entity, seen map[string]owl.Entity) {
	if !r.transitive[prop.FullIRI()] {
		return
	}
	frontier := make([]owl.Entity, 0, len(seen))
	for _, e := range seen {
		frontier = append(frontier, e)
	}
	for steps := 0; len(frontier) > 0 && steps < maxCollectDepth; steps++ {
		var next []owl.Entity
		for _, m := range frontier {
			if m.FullIRI() == ind.FullIRI() {
				continue
			}
			hop := make(map[string]owl.Entity)
			r.collectOneHop(m, prop, hop, make(map[string]bool))
			for iri, o := range hop {
				if _, ok := seen[iri]; !ok {
					seen[iri] = o
					next = append(next, o)
				}
			}
		}
		frontier = next
	}
}

// subPropertiesOf returns every property transitively asserted to be a
// rdfs:subPropertyOf propIRI.
func (r *GraphReasoner) subPropertiesOf(propIRI string) []owl.Entity {
	visited := map[string]bool{propIRI: true}
	queue := []string{propIRI}
	var out []owl.Entity
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for subIRI, supers := range r.subPropOf {
			if visited[subIRI] {
				continue
			}
			for _, sup := range supers {
				if sup.FullIRI() == cur {
					visited[subIRI] = true
					out = append(out, owl.MustEntity(subIRI, ""))
					queue = append(queue, subIRI)
					break
				}
			}
		}
	}
	return out
}

// Justifications always reports unavailable: this reference adapter has
// no independent justification service, and is itself built from the
// same structural patterns the explanation service falls back to.
func (r *GraphReasoner) Justifications(a owl.Axiom, max int) [][]owl.Axiom {
	return nil
}

func dedupEntities(in []owl.Entity) []owl.Entity {
	seen := make(map[string]bool, len(in))
	out := make([]owl.Entity, 0, len(in))
	for _, e := range in {
		if !seen[e.FullIRI()] {
			seen[e.FullIRI()] = true
			out = append(out, e)
		}
	}
	return out
}
