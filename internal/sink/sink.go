// Package sink implements the streaming output sink: one append-only
// CSV stream and one line-delimited JSON stream per run, safe for
// concurrent use by every enumeration worker.
package sink

import (
	"encoding/csv"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/bytedance/sonic"
)

// answerSeparator joins multiple answers (and their paired sizes) into a
// single CSV field for grouped multi-choice rows.
const answerSeparator = "; "

var csvHeader = []string{
	"task_type", "query", "predicate", "answer", "explanation_size",
	"root_entity", "tbox_size", "abox_size",
}

// Sink writes binary and multi-choice inference records to a CSV file and
// a line-delimited JSON file. The zero value is not usable; construct
// with New. A Sink must be closed to flush buffered output.
type Sink struct {
	mu   sync.Mutex
	csvw *csv.Writer
	csvf *os.File
	jsf  *os.File

	rootEntity string
	tboxSize   int
	aboxSize   int
}

// New creates (or truncates) csvPath and jsonPath and writes the CSV
// header row.
func New(csvPath, jsonPath string) (*Sink, error) {
	csvf, err := os.Create(csvPath)
	if err != nil {
		return nil, err
	}
	jsf, err := os.Create(jsonPath)
	if err != nil {
		csvf.Close()
		return nil, err
	}
	w := csv.NewWriter(csvf)
	if err := w.Write(csvHeader); err != nil {
		csvf.Close()
		jsf.Close()
		return nil, err
	}
	return &Sink{csvw: w, csvf: csvf, jsf: jsf}, nil
}

// SetOntology sets the current-ontology state (root-entity label and
// TBox/ABox axiom counts) attached to every record written until the next
// call. The driver calls this once before enumerating each ontology.
func (s *Sink) SetOntology(rootEntity string, tboxSize, aboxSize int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rootEntity = rootEntity
	s.tboxSize = tboxSize
	s.aboxSize = aboxSize
}

// answerRecord is one entry of a JSON record's answers array.
type answerRecord struct {
	Answer      string `json:"answer"`
	Explanation string `json:"explanation"`
	Size        int    `json:"size"`
}

// jsonRecord is the line-delimited JSON shape shared by every record kind.
// A binary result carries a single-element Answers array; a grouped
// multi-choice result carries N.
type jsonRecord struct {
	TaskType   string         `json:"task_type"`
	Query      string         `json:"query"`
	RootEntity string         `json:"root_entity"`
	TBoxSize   int            `json:"tbox_size"`
	ABoxSize   int            `json:"abox_size"`
	Answers    []answerRecord `json:"answers"`
}

// WriteBinary appends one binary (ASK-query) record.
func (s *Sink) WriteBinary(family, queryText, predicateDisplay string, answer bool, explanation string, size int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	answerText := strconv.FormatBool(answer)
	if err := s.writeJSON(jsonRecord{
		TaskType: family, Query: queryText, RootEntity: s.rootEntity,
		TBoxSize: s.tboxSize, ABoxSize: s.aboxSize,
		Answers: []answerRecord{{Answer: answerText, Explanation: explanation, Size: size}},
	}); err != nil {
		return err
	}
	return s.writeRow(family, queryText, predicateDisplay, answerText, strconv.Itoa(size))
}

// WriteMultiChoice appends one per-answer (SELECT-query) record.
func (s *Sink) WriteMultiChoice(family, queryText, predicateDisplay, answerShort, explanation string, size int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.writeJSON(jsonRecord{
		TaskType: family, Query: queryText, RootEntity: s.rootEntity,
		TBoxSize: s.tboxSize, ABoxSize: s.aboxSize,
		Answers: []answerRecord{{Answer: answerShort, Explanation: explanation, Size: size}},
	}); err != nil {
		return err
	}
	return s.writeRow(family, queryText, predicateDisplay, answerShort, strconv.Itoa(size))
}

// WriteGroupedMultiChoice appends a single record grouping every answer
// collected for one multi-choice query.
func (s *Sink) WriteGroupedMultiChoice(family, queryText, predicateDisplay string, answers []string, explanationsByAnswer map[string]string, sizesByAnswer map[string]int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := make([]answerRecord, 0, len(answers))
	sizeText := make([]string, 0, len(answers))
	for _, a := range answers {
		records = append(records, answerRecord{Answer: a, Explanation: explanationsByAnswer[a], Size: sizesByAnswer[a]})
		sizeText = append(sizeText, strconv.Itoa(sizesByAnswer[a]))
	}

	if err := s.writeJSON(jsonRecord{
		TaskType: family, Query: queryText, RootEntity: s.rootEntity,
		TBoxSize: s.tboxSize, ABoxSize: s.aboxSize,
		Answers: records,
	}); err != nil {
		return err
	}
	return s.writeRow(family, queryText, predicateDisplay, strings.Join(answers, answerSeparator), strings.Join(sizeText, answerSeparator))
}

func (s *Sink) writeRow(family, queryText, predicateDisplay, answer, explanationSize string) error {
	return s.csvw.Write([]string{
		family, queryText, predicateDisplay, answer, explanationSize,
		s.rootEntity, strconv.Itoa(s.tboxSize), strconv.Itoa(s.aboxSize),
	})
}

func (s *Sink) writeJSON(v any) error {
	b, err := sonic.Marshal(v)
	if err != nil {
		return err
	}
	b = append(b, '\n')
	_, err = s.jsf.Write(b)
	return err
}

// Close flushes and closes both underlying streams.
func (s *Sink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.csvw.Flush()
	if err := s.csvw.Error(); err != nil {
		s.csvf.Close()
		s.jsf.Close()
		return err
	}
	if err := s.csvf.Close(); err != nil {
		s.jsf.Close()
		return err
	}
	return s.jsf.Close()
}
