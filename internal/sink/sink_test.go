package sink

import (
	"bufio"
	"encoding/csv"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSink(t *testing.T) (*Sink, string, string) {
	t.Helper()
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "out.csv")
	jsonPath := filepath.Join(dir, "out.jsonl")
	s, err := New(csvPath, jsonPath)
	require.NoError(t, err)
	return s, csvPath, jsonPath
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func countLines(t *testing.T, path string) int {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	n := 0
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		n++
	}
	return n
}

func TestWriteBinaryProducesOneCSVRowAndOneJSONLine(t *testing.T) {
	s, csvPath, jsonPath := newTestSink(t)
	s.SetOntology("Example", 2, 3)

	require.NoError(t, s.WriteBinary("property", "ASK WHERE { <a> <p> <b> }", "<p>", true, "Directly asserted", 1))
	require.NoError(t, s.Close())

	rows := readCSV(t, csvPath)
	require.Len(t, rows, 2)
	assert.Equal(t, csvHeader, rows[0])
	assert.Equal(t, []string{"property", "ASK WHERE { <a> <p> <b> }", "<p>", "true", "1", "Example", "2", "3"}, rows[1])

	assert.Equal(t, 1, countLines(t, jsonPath))
}

func TestWriteGroupedMultiChoiceJoinsAnswers(t *testing.T) {
	s, csvPath, _ := newTestSink(t)
	s.SetOntology("Example", 0, 0)

	require.NoError(t, s.WriteGroupedMultiChoice(
		"type", "SELECT ?class WHERE { <a> rdf:type ?class }", "rdf:type",
		[]string{"<c1>", "<c2>"},
		map[string]string{"<c1>": "e1", "<c2>": "e2"},
		map[string]int{"<c1>": 1, "<c2>": 2},
	))
	require.NoError(t, s.Close())

	rows := readCSV(t, csvPath)
	require.Len(t, rows, 2)
	assert.Equal(t, "<c1>; <c2>", rows[1][3])
	assert.Equal(t, "1; 2", rows[1][4])
}

func TestSinkIsSafeForConcurrentWrites(t *testing.T) {
	s, csvPath, _ := newTestSink(t)
	s.SetOntology("Example", 0, 0)

	const workers = 32
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_ = s.WriteBinary("property", "ASK WHERE { <a> <p> <b> }", "<p>", true, "x", 1)
		}()
	}
	wg.Wait()
	require.NoError(t, s.Close())

	rows := readCSV(t, csvPath)
	assert.Len(t, rows, workers+1)
}
