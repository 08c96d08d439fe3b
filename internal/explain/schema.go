package explain

import "github.com/SaraFlht/owlexplain/internal/owl"

// chainAxiom is a flattened owl.SubPropertyChain.
type chainAxiom struct {
	factors []owl.Entity
	sup     owl.Entity
}

// schema indexes an ontology's TBox facts for the pattern-based fallback.
// Unlike reasoner.GraphReasoner, it never merges equivalence into the
// subclass hierarchy: each relation is kept distinct so a pattern can
// name exactly which asserted axiom it is using as a premise.
type schema struct {
	subClassOf   map[string][]owl.Entity // asserted sub -> direct supers
	equivClasses map[string][]owl.Entity // class -> other members of its equivalence group

	subPropOf  map[string][]owl.Entity // asserted sub-property -> direct super-properties
	equivProps map[string][]owl.Entity
	inverseOf  map[string][]owl.Entity
	symmetric  map[string]bool
	transitive map[string]bool
	chains     []chainAxiom
	domainOf   map[string]owl.Entity
	rangeOf    map[string]owl.Entity
}

func buildSchema(ont *owl.Ontology) *schema {
	s := &schema{
		subClassOf:   make(map[string][]owl.Entity),
		equivClasses: make(map[string][]owl.Entity),
		subPropOf:    make(map[string][]owl.Entity),
		equivProps:   make(map[string][]owl.Entity),
		inverseOf:    make(map[string][]owl.Entity),
		symmetric:    make(map[string]bool),
		transitive:   make(map[string]bool),
		domainOf:     make(map[string]owl.Entity),
		rangeOf:      make(map[string]owl.Entity),
	}
	for _, a := range ont.Axioms {
		switch a.Kind {
		case owl.SubClassOf:
			s.subClassOf[a.Subject.FullIRI()] = append(s.subClassOf[a.Subject.FullIRI()], a.Object)
		case owl.EquivalentClasses:
			for i := range a.Classes {
				for j := range a.Classes {
					if i != j {
						iri := a.Classes[i].FullIRI()
						s.equivClasses[iri] = append(s.equivClasses[iri], a.Classes[j])
					}
				}
			}
		case owl.SubObjectPropertyOf:
			s.subPropOf[a.Subject.FullIRI()] = append(s.subPropOf[a.Subject.FullIRI()], a.Object)
		case owl.SubPropertyChain:
			s.chains = append(s.chains, chainAxiom{factors: a.Properties, sup: a.Object})
		case owl.ObjectPropertyDomain:
			s.domainOf[a.Property.FullIRI()] = a.Object
		case owl.ObjectPropertyRange:
			s.rangeOf[a.Property.FullIRI()] = a.Object
		case owl.TransitiveObjectProperty:
			s.transitive[a.Property.FullIRI()] = true
		case owl.SymmetricObjectProperty:
			s.symmetric[a.Property.FullIRI()] = true
		case owl.InverseObjectProperties:
			p, q := a.Properties[0], a.Properties[1]
			s.inverseOf[p.FullIRI()] = append(s.inverseOf[p.FullIRI()], q)
			s.inverseOf[q.FullIRI()] = append(s.inverseOf[q.FullIRI()], p)
		case owl.EquivalentObjectProperties:
			for i := range a.Properties {
				for j := range a.Properties {
					if i != j {
						iri := a.Properties[i].FullIRI()
						s.equivProps[iri] = append(s.equivProps[iri], a.Properties[j])
					}
				}
			}
		}
	}
	return s
}

// subClassPath performs a bounded DFS over the asserted subClassOf
// adjacency from sub looking for sup, returning the ordered chain of
// SubClassOf axioms forming one witnessing path, or nil if none is found
// within maxDepth hops.
func (s *schema) subClassPath(sub, sup owl.Entity, maxDepth int) []owl.Axiom {
	return s.pathSearch(sub, sup, s.subClassOf, owl.NewSubClassOf, maxDepth, map[string]bool{})
}

// subPropertyPath is subClassPath's analogue over the asserted
// subPropertyOf adjacency.
func (s *schema) subPropertyPath(sub, sup owl.Entity, maxDepth int) []owl.Axiom {
	return s.pathSearch(sub, sup, s.subPropOf, owl.NewSubObjectPropertyOf, maxDepth, map[string]bool{})
}

func (s *schema) pathSearch(
	from, to owl.Entity,
	adj map[string][]owl.Entity,
	mk func(a, b owl.Entity, asserted bool) owl.Axiom,
	maxDepth int,
	visited map[string]bool,
) []owl.Axiom {
	if from.FullIRI() == to.FullIRI() {
		return []owl.Axiom{}
	}
	if maxDepth <= 0 || visited[from.FullIRI()] {
		return nil
	}
	visited[from.FullIRI()] = true
	defer delete(visited, from.FullIRI())

	for _, next := range adj[from.FullIRI()] {
		if next.FullIRI() == to.FullIRI() {
			return []owl.Axiom{mk(from, to, true)}
		}
		if rest := s.pathSearch(next, to, adj, mk, maxDepth-1, visited); rest != nil {
			return append([]owl.Axiom{mk(from, next, true)}, rest...)
		}
	}
	return nil
}

// subPropertiesInto returns every q asserted (transitively) to be a
// rdfs:subPropertyOf p, each paired with the chain of SubObjectPropertyOf
// axioms from q up to p.
func (s *schema) subPropertiesInto(p owl.Entity, maxDepth int) map[string][]owl.Axiom {
	out := make(map[string][]owl.Axiom)
	var walk func(cur owl.Entity, path []owl.Axiom, depth int)
	walk = func(cur owl.Entity, path []owl.Axiom, depth int) {
		if depth <= 0 {
			return
		}
		for subIRI, supers := range s.subPropOf {
			for _, sup := range supers {
				if sup.FullIRI() != cur.FullIRI() {
					continue
				}
				sub := owl.MustEntity(subIRI, "")
				axiom := owl.NewSubObjectPropertyOf(sub, cur, true)
				fullPath := append(append([]owl.Axiom{}, path...), axiom)
				if _, ok := out[subIRI]; !ok {
					out[subIRI] = fullPath
				}
				walk(sub, fullPath, depth-1)
			}
		}
	}
	walk(p, nil, maxDepth)
	return out
}
