package reasoner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SaraFlht/owlexplain/internal/owl"
)

const base = "http://example.org/onto#"

func ent(t *testing.T, frag string) owl.Entity {
	t.Helper()
	e, err := owl.NewEntity(frag, base)
	require.NoError(t, err)
	return e
}

func TestTypesTransitiveClosure(t *testing.T) {
	alice, student, person := ent(t, "alice"), ent(t, "Student"), ent(t, "Person")
	ont := owl.NewOntology(base, []owl.Axiom{
		owl.NewClassAssertion(alice, student, true),
		owl.NewSubClassOf(student, person, true),
	})
	r := New(ont)

	direct := r.Types(alice, true)
	require.Len(t, direct, 1)
	assert.Equal(t, student.FullIRI(), direct[0].FullIRI())

	all := r.Types(alice, false)
	assert.True(t, containsEntity(all, student))
	assert.True(t, containsEntity(all, person))
}

func TestSymmetricPropertyValues(t *testing.T) {
	alice, bob, knows := ent(t, "alice"), ent(t, "bob"), ent(t, "knows")
	ont := owl.NewOntology(base, []owl.Axiom{
		owl.NewObjectPropertyAssertion(alice, knows, bob, true),
		owl.NewSymmetricObjectProperty(knows, true),
	})
	r := New(ont)

	assert.True(t, containsEntity(r.PropertyValues(bob, knows), alice))
}

func TestInversePropertyValues(t *testing.T) {
	alice, course, teaches, taughtBy := ent(t, "alice"), ent(t, "course"), ent(t, "teaches"), ent(t, "taughtBy")
	ont := owl.NewOntology(base, []owl.Axiom{
		owl.NewObjectPropertyAssertion(alice, teaches, course, true),
		owl.NewInverseObjectProperties(teaches, taughtBy, true),
	})
	r := New(ont)

	assert.True(t, containsEntity(r.PropertyValues(course, taughtBy), alice))
}

func TestTransitivePropertyClosure(t *testing.T) {
	a, b, c, partOf := ent(t, "a"), ent(t, "b"), ent(t, "c"), ent(t, "partOf")
	ont := owl.NewOntology(base, []owl.Axiom{
		owl.NewObjectPropertyAssertion(a, partOf, b, true),
		owl.NewObjectPropertyAssertion(b, partOf, c, true),
		owl.NewTransitiveObjectProperty(partOf, true),
	})
	r := New(ont)

	assert.True(t, containsEntity(r.PropertyValues(a, partOf), c))
}

func TestSubPropertyValues(t *testing.T) {
	alice, bob, hasParent, hasFather := ent(t, "alice"), ent(t, "bob"), ent(t, "hasParent"), ent(t, "hasFather")
	ont := owl.NewOntology(base, []owl.Axiom{
		owl.NewObjectPropertyAssertion(alice, hasFather, bob, true),
		owl.NewSubObjectPropertyOf(hasFather, hasParent, true),
	})
	r := New(ont)

	assert.True(t, containsEntity(r.PropertyValues(alice, hasParent), bob))
}

func TestPropertyChainValues(t *testing.T) {
	a, b, c, hasParent, hasBrother, hasUncle := ent(t, "a"), ent(t, "b"), ent(t, "c"),
		ent(t, "hasParent"), ent(t, "hasBrother"), ent(t, "hasUncle")
	ont := owl.NewOntology(base, []owl.Axiom{
		owl.NewObjectPropertyAssertion(a, hasParent, b, true),
		owl.NewObjectPropertyAssertion(b, hasBrother, c, true),
		owl.NewSubPropertyChain([]owl.Entity{hasParent, hasBrother}, hasUncle, true),
	})
	r := New(ont)

	assert.True(t, containsEntity(r.PropertyValues(a, hasUncle), c))
}

func TestUnsatisfiableClassesAndConsistency(t *testing.T) {
	bottomClass, top := ent(t, "Bottom"), ent(t, "alice")
	ont := owl.NewOntology(base, []owl.Axiom{
		owl.NewSubClassOf(bottomClass, owl.Nothing, true),
		owl.NewClassAssertion(top, bottomClass, true),
	})
	r := New(ont)

	unsat := r.UnsatisfiableClasses()
	require.Len(t, unsat, 1)
	assert.Equal(t, bottomClass.FullIRI(), unsat[0].FullIRI())
	assert.False(t, r.IsConsistent())
}

func TestBoundedHierarchyLimitsDepth(t *testing.T) {
	a, b, c := ent(t, "A"), ent(t, "B"), ent(t, "C")
	ont := owl.NewOntology(base, []owl.Axiom{
		owl.NewSubClassOf(a, b, true),
		owl.NewSubClassOf(b, c, true),
	})
	r := New(ont, WithBoundedHierarchy(1))

	supers := r.SuperClasses(a, false)
	require.Len(t, supers, 1)
	assert.Equal(t, b.FullIRI(), supers[0].FullIRI())
}

func TestJustificationsUnavailable(t *testing.T) {
	ont := owl.NewOntology(base, nil)
	r := New(ont)
	assert.Nil(t, r.Justifications(owl.Axiom{}, 3))
}
