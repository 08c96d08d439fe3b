package augment

import (
	"math/rand"
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

func sampleAxioms(t *testing.T) []owl.Axiom {
	t.Helper()
	alice, bob, carol := ent(t, "alice"), ent(t, "bob"), ent(t, "carol")
	knows := ent(t, "knows")
	person, student := ent(t, "Person"), ent(t, "Student")
	return []owl.Axiom{
		owl.NewClassAssertion(alice, student, true),
		owl.NewClassAssertion(bob, person, true),
		owl.NewObjectPropertyAssertion(alice, knows, bob, true),
		owl.NewObjectPropertyAssertion(bob, knows, carol, true),
		owl.NewSubClassOf(student, person, true),
	}
}

func TestInjectNoiseAddsProportionalAxioms(t *testing.T) {
	axioms := sampleAxioms(t)
	src := rand.New(rand.NewSource(1))

	out := InjectNoise(axioms, 1.0, src)
	assert.Len(t, out, len(axioms)+len(axioms))
	assert.Equal(t, axioms, out[:len(axioms)])
}

func TestInjectNoiseZeroRateIsIdentity(t *testing.T) {
	axioms := sampleAxioms(t)
	out := InjectNoise(axioms, 0, rand.New(rand.NewSource(1)))
	assert.Equal(t, axioms, out)
}

func TestInjectNegationProducesUnassertedAxioms(t *testing.T) {
	axioms := sampleAxioms(t)
	src := rand.New(rand.NewSource(2))

	out := InjectNegation(axioms, 1.0, src)
	require.Greater(t, len(out), len(axioms))
	for _, a := range out[len(axioms):] {
		assert.False(t, a.Asserted)
		assert.Contains(t, []owl.AxiomKind{owl.DisjointClasses, owl.NegativeObjectPropertyAssertion}, a.Kind)
	}
}

func TestSubOntologyOneHopKeepsDirectNeighborOnly(t *testing.T) {
	axioms := sampleAxioms(t)
	alice := ent(t, "alice")

	sub := SubOntology(axioms, alice, 1)

	var renders []string
	for _, a := range sub {
		renders = append(renders, owl.Render(a))
	}
	assert.Contains(t, renders, "alice knows bob")
	assert.NotContains(t, renders, "bob knows carol")
}

func TestSubOntologyUnboundedKeepsFullComponent(t *testing.T) {
	axioms := sampleAxioms(t)
	alice := ent(t, "alice")

	sub := SubOntology(axioms, alice, 0)

	var renders []string
	for _, a := range sub {
		renders = append(renders, owl.Render(a))
	}
	assert.Contains(t, renders, "bob knows carol")
}
