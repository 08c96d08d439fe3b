package explain

import (
	"bytes"
	"testing"

	"github.com/pkg/diff"
	"github.com/pkg/diff/write"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SaraFlht/owlexplain/internal/owl"
	"github.com/SaraFlht/owlexplain/internal/reasoner"
)

const base = "http://example.org/onto#"

func ent(t *testing.T, frag string) owl.Entity {
	t.Helper()
	e, err := owl.NewEntity(frag, base)
	require.NoError(t, err)
	return e
}

func assertGolden(t *testing.T, got, want string) {
	t.Helper()
	if got == want {
		return
	}
	var buf bytes.Buffer
	if err := diff.Text("got", "want", got, want, &buf, write.TerminalColor()); err != nil {
		t.Fatalf("diff failed: %v", err)
	}
	t.Fatalf("unexpected explanation text:\n%s", &buf)
}

func TestExplainDirectAssertion(t *testing.T) {
	alice, bob, knows := ent(t, "alice"), ent(t, "bob"), ent(t, "knows")
	ont := owl.NewOntology(base, []owl.Axiom{
		owl.NewObjectPropertyAssertion(alice, knows, bob, true),
	})
	svc := New(reasoner.New(ont), ont, 0, 0)

	text, size := svc.ExplainPropertyRelationship(alice, knows, bob)
	assertGolden(t, text, "alice knows bob")
	assert.Equal(t, 1, size)
}

func TestExplainSubsumptionLift(t *testing.T) {
	alice, student, person := ent(t, "alice"), ent(t, "Student"), ent(t, "Person")
	ont := owl.NewOntology(base, []owl.Axiom{
		owl.NewClassAssertion(alice, student, true),
		owl.NewSubClassOf(student, person, true),
	})
	svc := New(reasoner.New(ont), ont, 0, 0)

	text, size := svc.ExplainTypeInference(alice, person)
	assertGolden(t, text, "alice rdf:type Student\nStudent rdfs:subClassOf Person")
	assert.Equal(t, 2, size)
}

func TestExplainTransitiveSubClassChain(t *testing.T) {
	a, b, c := ent(t, "A"), ent(t, "B"), ent(t, "C")
	ont := owl.NewOntology(base, []owl.Axiom{
		owl.NewSubClassOf(a, b, true),
		owl.NewSubClassOf(b, c, true),
	})
	svc := New(reasoner.New(ont), ont, 0, 0)

	text, size := svc.ExplainClassRelationship(a, c)
	assertGolden(t, text, "A rdfs:subClassOf B\nB rdfs:subClassOf C")
	assert.Equal(t, 2, size)
}

func TestExplainSymmetryPattern(t *testing.T) {
	alice, bob, knows := ent(t, "alice"), ent(t, "bob"), ent(t, "knows")
	ont := owl.NewOntology(base, []owl.Axiom{
		owl.NewObjectPropertyAssertion(bob, knows, alice, true),
		owl.NewSymmetricObjectProperty(knows, true),
	})
	svc := New(reasoner.New(ont), ont, 0, 0)

	text, _ := svc.ExplainPropertyRelationship(alice, knows, bob)
	assertGolden(t, text, "SymmetricObjectProperty(knows)\nbob knows alice")
}

func TestExplainTransitivePropertyPattern(t *testing.T) {
	a, b, c, p := ent(t, "a"), ent(t, "b"), ent(t, "c"), ent(t, "p")
	ont := owl.NewOntology(base, []owl.Axiom{
		owl.NewObjectPropertyAssertion(a, p, b, true),
		owl.NewObjectPropertyAssertion(b, p, c, true),
		owl.NewTransitiveObjectProperty(p, true),
	})
	svc := New(reasoner.New(ont), ont, 0, 0)

	text, size := svc.ExplainPropertyRelationship(a, p, c)
	assertGolden(t, text, "TransitiveObjectProperty(p)\na p b\nb p c")
	assert.Equal(t, 3, size)
}

func TestExplainUnreachableGoalIsEmpty(t *testing.T) {
	a, b := ent(t, "A"), ent(t, "B")
	ont := owl.NewOntology(base, nil)
	svc := New(reasoner.New(ont), ont, 0, 0)

	text, size := svc.ExplainClassRelationship(a, b)
	assert.Equal(t, "", text)
	assert.Equal(t, 0, size)
}

func TestExplanationSizeDedupsRepeatedPremises(t *testing.T) {
	text := "a rdf:type B\n\na rdf:type B\nB rdfs:subClassOf C"
	assert.Equal(t, 2, ExplanationSize(text))
}

func TestStatsCountsPatternFallbackHits(t *testing.T) {
	a, b, c := ent(t, "A"), ent(t, "B"), ent(t, "C")
	ont := owl.NewOntology(base, []owl.Axiom{
		owl.NewSubClassOf(a, b, true),
		owl.NewSubClassOf(b, c, true),
	})
	svc := New(reasoner.New(ont), ont, 0, 0)

	svc.ExplainClassRelationship(a, c)
	stats := svc.Stats()
	assert.Equal(t, int64(1), stats.PatternExplained)
	assert.Equal(t, int64(0), stats.ReasonerExplained)
}
