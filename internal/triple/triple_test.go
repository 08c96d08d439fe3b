package triple

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SaraFlht/owlexplain/internal/owl"
)

func ent(t *testing.T, frag string) owl.Entity {
	t.Helper()
	e, err := owl.NewEntity(frag, "http://example.org/onto#")
	require.NoError(t, err)
	return e
}

func TestTripleKeyStable(t *testing.T) {
	a, b, p := ent(t, "a"), ent(t, "b"), ent(t, "p")
	t1 := NewPropertyTriple(a, p, b)
	t2 := NewPropertyTriple(a, p, b)
	assert.Equal(t, t1.Key(), t2.Key())

	t3 := NewPropertyTriple(b, p, a)
	assert.NotEqual(t, t1.Key(), t3.Key())
}

func TestTypeAndSubClassKeysUseSyntheticPredicates(t *testing.T) {
	alice, teacher := ent(t, "alice"), ent(t, "Teacher")
	tt := NewTypeTriple(alice, teacher)
	assert.Contains(t, tt.Key(), RDFType)

	a, b := ent(t, "A"), ent(t, "B")
	st := NewSubClassTriple(a, b)
	assert.Contains(t, st.Key(), RDFSSubClassOf)
}

func TestAskQueryCanonicalForm(t *testing.T) {
	a, b, p := ent(t, "a"), ent(t, "b"), ent(t, "p")
	q := AskQuery(a, p.FullIRI(), b)
	assert.Equal(t, "ASK WHERE { <http://example.org/onto#a> <http://example.org/onto#p> <http://example.org/onto#b> }", q)
}

func TestSelectQueriesCanonicalForm(t *testing.T) {
	a, p := ent(t, "a"), ent(t, "p")
	assert.Equal(t, "SELECT ?object WHERE { <http://example.org/onto#a> <http://example.org/onto#p> ?object }", SelectPropertyQuery(a, p))
	assert.Equal(t, "SELECT ?class WHERE { <http://example.org/onto#a> "+RDFType+" ?class }", SelectTypeQuery(a))
}
