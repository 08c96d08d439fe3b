// Package main provides the CLI entry point for owlexplain, a tool that
// enumerates a reasoner's inferences over a directory of OWL ontologies
// and writes per-inference explanations and summary statistics.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SaraFlht/owlexplain/internal/augment"
	"github.com/SaraFlht/owlexplain/internal/config"
	"github.com/SaraFlht/owlexplain/internal/driver"
	"github.com/SaraFlht/owlexplain/internal/logging"
	"github.com/SaraFlht/owlexplain/internal/owl"
	"github.com/SaraFlht/owlexplain/internal/sink"
)

func main() {
	log.Println("owlexplain", strings.Join(os.Args[1:], " "))
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "owlexplain",
		Short:         "Enumerate and explain a reasoner's inferences over OWL ontologies",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.PersistentFlags().String("config", "", "path to a TOML configuration file")
	root.AddCommand(runCmd(), augmentCmd(), subOntologyCmd())
	return root
}

func runCmd() *cobra.Command {
	cfg := config.Default()
	fl := config.DefaultFlags()

	cmd := &cobra.Command{
		Use:   "run [ontologies-dir] [output-dir]",
		Short: "Process every ontology file under ontologies-dir and write explained inferences",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			configPath, _ := c.Flags().GetString("config")
			return runRun(configPath, fl, &cfg, c, args)
		},
	}
	config.RegisterFlags(cmd.Flags(), fl, &cfg)
	return cmd
}

func runRun(configPath string, fl config.Flags, cfg *config.Config, c *cobra.Command, positional []string) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if !c.Flags().Changed(fl.OntologyDir) {
		cfg.OntologyDir = loaded.OntologyDir
	}
	if !c.Flags().Changed(fl.OutputDir) {
		cfg.OutputDir = loaded.OutputDir
	}
	if !c.Flags().Changed(fl.MaxExpl) {
		cfg.MaxExplanationsPerInference = loaded.MaxExplanationsPerInference
	}
	if !c.Flags().Changed(fl.DepthBound) {
		cfg.ExplanationDepthBound = loaded.ExplanationDepthBound
	}
	if !c.Flags().Changed(fl.Timeout) {
		cfg.OntologyTimeout = loaded.OntologyTimeout
	}
	if !c.Flags().Changed(fl.StatsEvery) {
		cfg.StatsInterval = loaded.StatsInterval
	}
	if !c.Flags().Changed(fl.Concurrency) {
		cfg.Concurrency = loaded.Concurrency
	}
	if !c.Flags().Changed(fl.LogLevel) {
		cfg.LogLevel = loaded.LogLevel
	}
	if !c.Flags().Changed(fl.LogFormat) {
		cfg.LogFormat = loaded.LogFormat
	}

	// Positional [ontologies-dir] [output-dir] take precedence over both
	// the config file and flag defaults.
	if len(positional) > 0 {
		cfg.OntologyDir = positional[0]
	}
	if len(positional) > 1 {
		cfg.OutputDir = positional[1]
	}

	runLog := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	s, err := sink.New(filepath.Join(cfg.OutputDir, "inferences.csv"), filepath.Join(cfg.OutputDir, "inferences.jsonl"))
	if err != nil {
		return fmt.Errorf("opening output sink: %w", err)
	}
	defer s.Close()

	d := driver.New(*cfg, runLog, s)
	summary, err := d.Run(c.Context())
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}
	runLog.Info("summary written",
		"run_id", summary.RunID,
		"processed", summary.OntologiesProcessed,
		"failed", summary.OntologiesFailed)
	return nil
}

func augmentCmd() *cobra.Command {
	var outPath string
	var seed int64

	cmd := &cobra.Command{
		Use:   "augment",
		Short: "Apply a one-shot augmentation transform to an ontology file and write rendered axioms",
	}
	cmd.PersistentFlags().StringVar(&outPath, "out", "-", "output path for the rendered axiom set (- for stdout)")
	cmd.PersistentFlags().Int64Var(&seed, "seed", 1, "seed for the transform's random source")

	noiseCmd := &cobra.Command{
		Use:   "noise <ontology-file> <rate>",
		Short: "Inject schema-consistent but arbitrary property and type assertions",
		Args:  cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			return runAugment(args[0], args[1], outPath, seed, augment.InjectNoise)
		},
	}

	negateCmd := &cobra.Command{
		Use:   "negate <ontology-file> <rate>",
		Short: "Inject disjointness and negative property-assertion axioms",
		Args:  cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			return runAugment(args[0], args[1], outPath, seed, augment.InjectNegation)
		},
	}

	cmd.AddCommand(noiseCmd, negateCmd)
	return cmd
}

func subOntologyCmd() *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "subontology <ontology-file> <center-entity> <hops>",
		Short: "Extract the induced sub-ontology within N object-property hops of an entity",
		Args:  cobra.ExactArgs(3),
		RunE: func(c *cobra.Command, args []string) error {
			return runSubOntology(args[0], args[1], args[2], outPath)
		},
	}
	cmd.Flags().StringVar(&outPath, "out", "-", "output path for the rendered axiom set (- for stdout)")
	return cmd
}

func runAugment(ontPath, rateArg, outPath string, seed int64, transform func([]owl.Axiom, float64, *rand.Rand) []owl.Axiom) error {
	var rate float64
	if _, err := fmt.Sscanf(rateArg, "%g", &rate); err != nil {
		return fmt.Errorf("parsing rate %q: %w", rateArg, err)
	}
	axioms, _, err := loadAxioms(ontPath)
	if err != nil {
		return err
	}
	out := transform(axioms, rate, rand.New(rand.NewSource(seed)))
	return writeRendered(out, outPath)
}

func runSubOntology(ontPath, centerArg, hopsArg, outPath string) error {
	axioms, base, err := loadAxioms(ontPath)
	if err != nil {
		return err
	}
	center, err := owl.NewEntity(centerArg, base)
	if err != nil {
		return fmt.Errorf("parsing center entity %q: %w", centerArg, err)
	}
	var hops int
	if _, err := fmt.Sscanf(hopsArg, "%d", &hops); err != nil {
		return fmt.Errorf("parsing hops %q: %w", hopsArg, err)
	}
	out := augment.SubOntology(axioms, center, hops)
	return writeRendered(out, outPath)
}

func loadAxioms(path string) ([]owl.Axiom, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("opening %s: %w", path, err)
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
			return nil, "", fmt.Errorf("decoding %s: %w", path, err)
		}
		axioms = append(axioms, a)
	}
	return axioms, dec.Base(), nil
}

// writeRendered writes one canonical rendering per axiom, one per line.
// The decoder in internal/owl is a reference reader with no matching
// OWL/XML writer, so augmentation output is the same pretty-printed form
// the explanation service already emits for justifications rather than a
// re-encoded ontology document.
func writeRendered(axioms []owl.Axiom, outPath string) error {
	var b strings.Builder
	for _, a := range axioms {
		b.WriteString(owl.Render(a))
		b.WriteByte('\n')
	}
	if outPath == "" || outPath == "-" {
		_, err := os.Stdout.WriteString(b.String())
		return err
	}
	return os.WriteFile(outPath, []byte(b.String()), 0o644)
}
