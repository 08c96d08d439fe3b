// Package driver implements the per-run driver: sequential
// iteration over an ontology directory, a per-file processing timeout,
// periodic stats logging on an in-process cron schedule, and a final
// RunSummary emitted both to the log and to a summary.json file.
package driver

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/SaraFlht/owlexplain/internal/config"
	"github.com/SaraFlht/owlexplain/internal/enumerate"
	"github.com/SaraFlht/owlexplain/internal/explain"
	"github.com/SaraFlht/owlexplain/internal/logging"
	"github.com/SaraFlht/owlexplain/internal/ontograph"
	"github.com/SaraFlht/owlexplain/internal/owl"
	"github.com/SaraFlht/owlexplain/internal/reasoner"
	"github.com/SaraFlht/owlexplain/internal/register"
	"github.com/SaraFlht/owlexplain/internal/sink"
)

// RunSummary reports what a run accomplished, emitted both to the log
// and as summary.json.
type RunSummary struct {
	RunID string `json:"run_id"`

	OntologiesProcessed int      `json:"ontologies_processed"`
	OntologiesFailed    int      `json:"ontologies_failed"`
	FailedFiles         []string `json:"failed_files,omitempty"`

	RegisterTriples int64 `json:"register_triples"`
	RegisterQueries int64 `json:"register_queries"`

	ReasonerExplained int64 `json:"reasoner_explained"`
	PatternExplained  int64 `json:"pattern_explained"`

	MeanFileSeconds   float64       `json:"mean_file_seconds"`
	StdDevFileSeconds float64       `json:"stddev_file_seconds"`
	MinFileSeconds    float64       `json:"min_file_seconds"`
	MaxFileSeconds    float64       `json:"max_file_seconds"`
	Duration          time.Duration `json:"duration"`
}

// Driver runs the enumeration pipeline sequentially over every ontology
// file in a directory.
type Driver struct {
	cfg   config.Config
	log   *logging.Logger
	reg   *register.Register
	sink  *sink.Sink
	graph *ontograph.Graph
}

// New builds a Driver. sink must already be open; the caller is
// responsible for closing it after Run returns.
func New(cfg config.Config, log *logging.Logger, s *sink.Sink) *Driver {
	return &Driver{cfg: cfg, log: log, reg: register.New(), sink: s, graph: ontograph.New()}
}

// Run processes every ontology file under d.cfg.OntologyDir in
// lexicographic order, sequentially, and returns the completed
// RunSummary. It writes summary.json and a register-growth chart
// (register_growth.png) into d.cfg.OutputDir.
func (d *Driver) Run(ctx context.Context) (*RunSummary, error) {
	start := time.Now()
	runID := uuid.New().String()
	d.log.Info("run starting", "run_id", runID)

	files, err := listOntologyFiles(d.cfg.OntologyDir)
	if err != nil {
		return nil, fmt.Errorf("driver: listing ontology files: %w", err)
	}

	c := cron.New()
	entryID, err := c.AddFunc(everySchedule(d.cfg.StatsInterval), func() {
		stats := d.reg.Snapshot()
		d.log.Info("register stats", "triples", stats.Triples, "queries", stats.Queries)
	})
	if err != nil {
		return nil, fmt.Errorf("driver: scheduling stats job: %w", err)
	}
	c.Start()
	defer func() {
		c.Remove(entryID)
		<-c.Stop().Done()
	}()

	summary := &RunSummary{RunID: runID}
	var durations []float64
	var growth []float64

	var svc *explain.Service
	for _, path := range files {
		fileStart := time.Now()
		fileLog := d.log.ForFile(path)

		err := d.processFile(ctx, path, fileLog, &svc)
		elapsed := time.Since(fileStart)
		durations = append(durations, elapsed.Seconds())
		if svc != nil {
			s := svc.Stats()
			summary.ReasonerExplained += s.ReasonerExplained
			summary.PatternExplained += s.PatternExplained
			svc = nil
		}

		if err != nil {
			summary.OntologiesFailed++
			summary.FailedFiles = append(summary.FailedFiles, path)
			fileLog.Error("ontology processing failed", "error", err)
			continue
		}
		summary.OntologiesProcessed++
		growth = append(growth, float64(d.reg.Snapshot().Triples))
	}

	if len(durations) > 0 {
		summary.MeanFileSeconds, summary.StdDevFileSeconds = stat.MeanStdDev(durations, nil)
		summary.MinFileSeconds, summary.MaxFileSeconds = fileDurationBounds(durations)
	}
	regStats := d.reg.Snapshot()
	summary.RegisterTriples = regStats.Triples
	summary.RegisterQueries = regStats.Queries
	summary.Duration = time.Since(start)

	if err := d.writeSummary(summary); err != nil {
		return summary, err
	}
	if err := plotRegisterGrowth(growth, filepath.Join(d.cfg.OutputDir, "register_growth.png")); err != nil {
		d.log.Warn("could not render register growth chart", "error", err)
	}

	d.log.Info("run complete",
		"processed", summary.OntologiesProcessed,
		"failed", summary.OntologiesFailed,
		"register_triples", summary.RegisterTriples,
		"duration", summary.Duration)

	return summary, nil
}

func (d *Driver) processFile(ctx context.Context, path string, fileLog *logging.Logger, svc **explain.Service) error {
	fctx, cancel := context.WithTimeout(ctx, d.cfg.OntologyTimeout)
	defer cancel()

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	dec := owl.NewDecoder(f)
	var axioms []owl.Axiom
	for {
		a, err := dec.Unmarshal()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("decoding %s: %w", path, err)
		}
		axioms = append(axioms, a)
	}
	ont := owl.NewOntology(dec.Base(), axioms)

	d.graph.Reset()
	r := reasoner.New(ont)
	explainer := explain.New(r, ont, d.cfg.MaxExplanationsPerInference, d.cfg.ExplanationDepthBound)
	*svc = explainer

	tbox, abox := ont.TBoxABoxCounts()
	d.sink.SetOntology(rootEntityLabel(ont, path), tbox, abox)

	en := enumerate.New(ont, r, explainer, d.reg, d.sink, d.cfg.Concurrency)

	fileLog.Info("processing ontology", "tbox", tbox, "abox", abox)
	return en.Run(fctx)
}

func rootEntityLabel(ont *owl.Ontology, path string) string {
	if ont.Base != "" {
		return ont.Base
	}
	return filepath.Base(path)
}

func (d *Driver) writeSummary(s *RunSummary) error {
	if err := os.MkdirAll(d.cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("driver: creating output dir: %w", err)
	}
	b, err := sonic.Marshal(s)
	if err != nil {
		return fmt.Errorf("driver: marshalling summary: %w", err)
	}
	return os.WriteFile(filepath.Join(d.cfg.OutputDir, "summary.json"), b, 0o644)
}

// listOntologyFiles returns the ontology files (.owl, .owx, .xml) under
// dir in lexicographic order.
func listOntologyFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch filepath.Ext(e.Name()) {
		case ".owl", ".owx", ".xml":
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

// everySchedule renders d as a robfig/cron "@every" schedule expression.
func everySchedule(d time.Duration) string {
	if d <= 0 {
		d = 30 * time.Second
	}
	return "@every " + d.String()
}

func plotRegisterGrowth(growth []float64, outPath string) error {
	if len(growth) == 0 {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}

	xys := make(plotter.XYs, len(growth))
	for i, v := range growth {
		xys[i] = plotter.XY{X: float64(i + 1), Y: v}
	}

	p := plot.New()
	p.Title.Text = "Register Growth"
	p.X.Label.Text = "ontologies processed"
	p.Y.Label.Text = "distinct triples"

	line, err := plotter.NewLine(xys)
	if err != nil {
		return err
	}
	line.Color = color.RGBA{B: 255, A: 255}
	p.Add(line)

	return p.Save(18*vg.Centimeter, 12*vg.Centimeter, outPath)
}

// fileDurationBounds reports the fastest and slowest per-file processing
// times observed.
func fileDurationBounds(durations []float64) (min, max float64) {
	if len(durations) == 0 {
		return 0, 0
	}
	return floats.Min(durations), floats.Max(durations)
}
