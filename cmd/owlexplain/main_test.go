package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureOntology = `<?xml version="1.0"?>
<Ontology ontologyIRI="http://example.org/onto">
  <ClassAssertion>
    <Class IRI="Teacher"/>
    <NamedIndividual IRI="alice"/>
  </ClassAssertion>
  <ObjectPropertyAssertion>
    <ObjectProperty IRI="teaches"/>
    <NamedIndividual IRI="alice"/>
    <NamedIndividual IRI="cs101"/>
  </ObjectPropertyAssertion>
</Ontology>`

func writeFixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "school.owl")
	require.NoError(t, os.WriteFile(path, []byte(fixtureOntology), 0o644))
	return path
}

func TestLoadAxiomsReadsBaseAndAxioms(t *testing.T) {
	axioms, base, err := loadAxioms(writeFixture(t))
	require.NoError(t, err)
	assert.Equal(t, "http://example.org/onto", base)
	assert.Len(t, axioms, 2)
}

func TestLoadAxiomsRejectsMalformedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.owl")
	require.NoError(t, os.WriteFile(path, []byte("<Ontology><ClassAssertion>"), 0o644))

	_, _, err := loadAxioms(path)
	assert.Error(t, err)
}

func TestWriteRenderedWritesOneLinePerAxiom(t *testing.T) {
	axioms, _, err := loadAxioms(writeFixture(t))
	require.NoError(t, err)

	dir := t.TempDir()
	outPath := filepath.Join(dir, "out.txt")
	require.NoError(t, writeRendered(axioms, outPath))

	b, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(b), "alice teaches cs101")
	assert.Contains(t, string(b), "alice rdf:type Teacher")
}
