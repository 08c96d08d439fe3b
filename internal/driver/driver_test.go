package driver

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SaraFlht/owlexplain/internal/config"
	"github.com/SaraFlht/owlexplain/internal/logging"
	"github.com/SaraFlht/owlexplain/internal/sink"
)

const goodOntology = `<?xml version="1.0"?>
<Ontology ontologyIRI="http://example.org/onto">
  <Declaration><Class IRI="http://example.org/onto#Teacher"/></Declaration>
  <ClassAssertion>
    <Class IRI="Teacher"/>
    <NamedIndividual IRI="alice"/>
  </ClassAssertion>
  <ObjectPropertyAssertion>
    <ObjectProperty IRI="teaches"/>
    <NamedIndividual IRI="alice"/>
    <NamedIndividual IRI="cs101"/>
  </ObjectPropertyAssertion>
  <SubClassOf>
    <Class IRI="Teacher"/>
    <Class IRI="Person"/>
  </SubClassOf>
</Ontology>`

const malformedOntology = `<?xml version="1.0"?>
<Ontology ontologyIRI="http://example.org/broken">
  <ClassAssertion>
    <Class IRI="Teacher"/>
`

func newTestDriver(t *testing.T, ontologyDir, outputDir string) *Driver {
	t.Helper()
	cfg := config.Default()
	cfg.OntologyDir = ontologyDir
	cfg.OutputDir = outputDir
	cfg.OntologyTimeout = 5 * time.Second
	cfg.StatsInterval = time.Minute
	cfg.Concurrency = 2

	log := logging.New(os.Stderr, "error", "text")

	s, err := sink.New(filepath.Join(outputDir, "records.csv"), filepath.Join(outputDir, "records.jsonl"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	return New(cfg, log, s)
}

func TestRunProcessesOntologyAndWritesSummary(t *testing.T) {
	ontologyDir := t.TempDir()
	outputDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(ontologyDir, "school.owl"), []byte(goodOntology), 0o644))

	d := newTestDriver(t, ontologyDir, outputDir)
	summary, err := d.Run(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, summary.RunID)
	assert.Equal(t, 1, summary.OntologiesProcessed)
	assert.Equal(t, 0, summary.OntologiesFailed)
	assert.Empty(t, summary.FailedFiles)
	assert.Greater(t, summary.RegisterTriples, int64(0))

	b, err := os.ReadFile(filepath.Join(outputDir, "summary.json"))
	require.NoError(t, err)
	var onDisk RunSummary
	require.NoError(t, json.Unmarshal(b, &onDisk))
	assert.Equal(t, summary.OntologiesProcessed, onDisk.OntologiesProcessed)
	assert.Equal(t, summary.RegisterTriples, onDisk.RegisterTriples)
}

func TestRunRecordsFailedFileAndContinues(t *testing.T) {
	ontologyDir := t.TempDir()
	outputDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(ontologyDir, "a_broken.owl"), []byte(malformedOntology), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(ontologyDir, "b_good.owl"), []byte(goodOntology), 0o644))

	d := newTestDriver(t, ontologyDir, outputDir)
	summary, err := d.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, summary.OntologiesProcessed)
	assert.Equal(t, 1, summary.OntologiesFailed)
	require.Len(t, summary.FailedFiles, 1)
	assert.Contains(t, summary.FailedFiles[0], "a_broken.owl")
}

func TestRunWithNoOntologiesProducesEmptySummary(t *testing.T) {
	ontologyDir := t.TempDir()
	outputDir := t.TempDir()

	d := newTestDriver(t, ontologyDir, outputDir)
	summary, err := d.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, summary.OntologiesProcessed)
	assert.Equal(t, 0, summary.OntologiesFailed)
	assert.Equal(t, int64(0), summary.RegisterTriples)
}

func TestListOntologyFilesFiltersByExtensionAndSorts(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.owl", "a.owx", "c.txt", "d.xml"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}

	files, err := listOntologyFiles(dir)
	require.NoError(t, err)

	var names []string
	for _, f := range files {
		names = append(names, filepath.Base(f))
	}
	assert.Equal(t, []string{"a.owx", "b.owl", "d.xml"}, names)
}

func TestEverySchedule(t *testing.T) {
	assert.Equal(t, "@every 1m0s", everySchedule(time.Minute))
	assert.Equal(t, "@every 30s", everySchedule(0))
}

func TestFileDurationBounds(t *testing.T) {
	min, max := fileDurationBounds([]float64{0.5, 0.1, 0.9, 0.3})
	assert.Equal(t, 0.1, min)
	assert.Equal(t, 0.9, max)

	min, max = fileDurationBounds(nil)
	assert.Equal(t, 0.0, min)
	assert.Equal(t, 0.0, max)
}
