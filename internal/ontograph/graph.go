// Package ontograph holds the in-memory representation of one ontology's
// asserted axiom graph: a gogo.Graph-backed multigraph over class
// hierarchy, class-membership, and object-property-assertion edges. The
// reference reasoner adapter builds one Graph per ontology for its
// traversals, and the n-hop sub-ontology extractor builds one over
// property assertions. Reset empties a Graph so it can be filled again.
package ontograph

import (
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/formats/rdf"
	"gonum.org/v1/gonum/graph/traverse"

	"github.com/kortschak/gogo"

	"github.com/SaraFlht/owlexplain/internal/owl"
)

// Graph is a directed multigraph of one ontology's asserted subClassOf,
// rdf:type, and object-property-assertion edges.
type Graph struct {
	g *gogo.Graph
}

// New returns an empty Graph.
func New() *Graph {
	return &Graph{g: gogo.NewGraph()}
}

// Reset discards all edges, returning the Graph to empty so it can be
// reused for the next ontology file.
func (g *Graph) Reset() {
	g.g = gogo.NewGraph()
}

func term(e owl.Entity) rdf.Term {
	return rdf.Term{Value: e.FullIRI()}
}

// AddSubClassOf adds the edge `sub -rdfs:subClassOf-> sup`.
func (g *Graph) AddSubClassOf(sub, sup owl.Entity) {
	g.g.AddStatement(&rdf.Statement{
		Subject:   term(sub),
		Predicate: rdf.Term{Value: subClassOfPredicate},
		Object:    term(sup),
	})
}

// AddType adds the edge `ind -rdf:type-> cls`.
func (g *Graph) AddType(ind, cls owl.Entity) {
	g.g.AddStatement(&rdf.Statement{
		Subject:   term(ind),
		Predicate: rdf.Term{Value: typePredicate},
		Object:    term(cls),
	})
}

// AddPropertyValue adds the edge `s -p-> o` for an object-property
// assertion.
func (g *Graph) AddPropertyValue(s, p, o owl.Entity) {
	g.g.AddStatement(&rdf.Statement{
		Subject:   term(s),
		Predicate: term(p),
		Object:    term(o),
	})
}

const (
	subClassOfPredicate = "<http://www.w3.org/2000/01/rdf-schema#subClassOf>"
	typePredicate       = "<http://www.w3.org/1999/02/22-rdf-syntax-ns#type>"
)

// DirectSuperClasses returns the classes cls is directly asserted to be a
// subclass of.
func (g *Graph) DirectSuperClasses(cls owl.Entity) []owl.Entity {
	return g.directVia(cls, subClassOfPredicate, true)
}

// DirectSubClasses returns the classes directly asserted to be a subclass
// of cls.
func (g *Graph) DirectSubClasses(cls owl.Entity) []owl.Entity {
	return g.directVia(cls, subClassOfPredicate, false)
}

// DirectTypes returns the classes ind is directly asserted to be a member
// of.
func (g *Graph) DirectTypes(ind owl.Entity) []owl.Entity {
	return g.directVia(ind, typePredicate, true)
}

// DirectPropertyValues returns the values ind.p is directly asserted to
// hold, for an arbitrary object property p.
func (g *Graph) DirectPropertyValues(ind, p owl.Entity) []owl.Entity {
	return g.directVia(ind, p.FullIRI(), true)
}

// DirectPropertySubjects returns the subjects directly asserted to hold
// o as a value of object property p (the inverse direction of
// DirectPropertyValues).
func (g *Graph) DirectPropertySubjects(o, p owl.Entity) []owl.Entity {
	return g.directVia(o, p.FullIRI(), false)
}

func (g *Graph) directVia(from owl.Entity, predicate string, out bool) []owl.Entity {
	n, ok := g.g.TermFor(from.FullIRI())
	if !ok {
		return nil
	}
	q := g.g.Query(n)
	filter := func(s *rdf.Statement) bool { return s.Predicate.Value == predicate }
	var terms []rdf.Term
	if out {
		terms = q.Out(filter).Unique().Result()
	} else {
		terms = q.In(filter).Unique().Result()
	}
	out2 := make([]owl.Entity, 0, len(terms))
	for _, t := range terms {
		e, err := owl.NewEntity(t.Value, "")
		if err != nil {
			continue
		}
		out2 = append(out2, e)
	}
	return out2
}

// TransitiveSuperClasses returns every class reachable from cls by one or
// more subClassOf edges (cls excluded).
func (g *Graph) TransitiveSuperClasses(cls owl.Entity) []owl.Entity {
	return g.bfs(cls, subClassOfPredicate, true, 0)
}

// TransitiveSuperClassesBounded is TransitiveSuperClasses restricted to
// paths of at most maxDepth edges. maxDepth <= 0 means unbounded.
func (g *Graph) TransitiveSuperClassesBounded(cls owl.Entity, maxDepth int) []owl.Entity {
	return g.bfs(cls, subClassOfPredicate, true, maxDepth)
}

// TransitiveSubClasses returns every class that can reach cls by one or
// more subClassOf edges (cls excluded).
func (g *Graph) TransitiveSubClasses(cls owl.Entity) []owl.Entity {
	return g.bfs(cls, subClassOfPredicate, false, 0)
}

// TransitivePropertyClosure returns every value reachable from ind by one
// or more p edges, for a property p known by the caller to be transitive
// (ind excluded).
func (g *Graph) TransitivePropertyClosure(ind, p owl.Entity) []owl.Entity {
	return g.bfs(ind, p.FullIRI(), true, 0)
}

func (g *Graph) bfs(from owl.Entity, predicate string, out bool, maxDepth int) []owl.Entity {
	start, ok := g.g.TermFor(from.FullIRI())
	if !ok {
		return nil
	}
	filter := func(e graph.Edge) bool {
		return gogo.ConnectedByAny(e, func(s *rdf.Statement) bool {
			return s.Predicate.Value == predicate
		})
	}
	var target graph.Graph = g.g
	if !out {
		target = reverse{g.g}
	}
	bf := traverse.BreadthFirst{Traverse: filter}
	var result []owl.Entity
	bf.Walk(target, start, func(n graph.Node, d int) bool {
		if d == 0 {
			return false
		}
		if maxDepth > 0 && d > maxDepth {
			return false
		}
		t := n.(rdf.Term)
		e, err := owl.NewEntity(t.Value, "")
		if err != nil {
			return false
		}
		result = append(result, e)
		return false
	})
	return result
}

// NeighborsWithin returns every entity reachable from center within
// maxHops edges of any predicate, treating edges as undirected (used by
// the n-hop sub-ontology extractor). maxHops <= 0 means unbounded. center
// itself is excluded.
func (g *Graph) NeighborsWithin(center owl.Entity, maxHops int) []owl.Entity {
	start, ok := g.g.TermFor(center.FullIRI())
	if !ok {
		return nil
	}
	seen := make(map[string]bool)
	var result []owl.Entity
	record := func(n graph.Node, d int) bool {
		if d == 0 {
			return false
		}
		if maxHops > 0 && d > maxHops {
			return false
		}
		t := n.(rdf.Term)
		if seen[t.Value] {
			return false
		}
		seen[t.Value] = true
		e, err := owl.NewEntity(t.Value, "")
		if err != nil {
			return false
		}
		result = append(result, e)
		return false
	}
	var bfOut, bfIn traverse.BreadthFirst
	bfOut.Walk(g.g, start, record)
	bfIn.Walk(reverse{g.g}, start, record)
	return result
}

// IsDescendantOf reports whether b is reachable from a by one or more
// subClassOf edges, and if so, the BFS depth at which it was found.
func (g *Graph) IsDescendantOf(a, b owl.Entity) (bool, int) {
	at, ok := g.g.TermFor(a.FullIRI())
	if !ok {
		return false, 0
	}
	bt, ok := g.g.TermFor(b.FullIRI())
	if !ok {
		return false, 0
	}
	return g.g.IsDescendantOf(at, bt)
}

// reverse implements traverse.Graph, reversing edge direction, used to
// walk a directed graph against its edges.
type reverse struct {
	*gogo.Graph
}

func (g reverse) From(id int64) graph.Nodes     { return g.Graph.To(id) }
func (g reverse) Edge(uid, vid int64) graph.Edge { return g.Graph.Edge(vid, uid) }
