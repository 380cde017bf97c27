// Command tb2fst turns column-aligned Toolbox corpora into an SFST
// grammar that maps one annotation tier onto another.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/glottolab/tbfst"
	"github.com/glottolab/tbfst/internal/config"
	"github.com/glottolab/tbfst/internal/discover"
	"github.com/glottolab/tbfst/internal/status"
)

// Populated at build time via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	outputPath string
	cutoff     int
	ignoreCase bool
	skipIdent  bool
	window     int
	splitters  []string
	separator  string
	markers    []string
	saveTable  string
	loadTable  string
	configPath string
	watchMode  bool
	verbose    bool

	rootCmd = &cobra.Command{
		Use:   "tb2fst SOURCE_MARKER TARGET_MARKER [FILE|DIR ...]",
		Short: "Generate an SFST grammar from aligned Toolbox tiers",
		Long: `tb2fst reads Toolbox interlinear text, pairs the tokens of two
column-aligned tiers, and emits an SFST grammar rewriting the source
tier as the target tier, one disjunction branch per attested pair.

With no file or directory arguments the corpus is read from stdin.
Directory arguments expand to their immediate .txt files. Files ending
in .gz or .bz2 are decompressed on the fly.

The grammar goes to stdout unless --output is given. Compile it with
fst-compiler-utf8 from the SFST toolchain.`,
		Args:          cobra.MinimumNArgs(2),
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit %s, built %s)", version, commit, date)

	f := rootCmd.Flags()
	f.StringVarP(&outputPath, "output", "o", "", "write the grammar to this file instead of stdout")
	f.IntVarP(&cutoff, "freq-cutoff", "f", 0, "keep only pairs seen strictly more often than this")
	f.BoolVarP(&ignoreCase, "ignore-case", "i", false, "fold case during reduction and emit a case rule")
	f.BoolVarP(&skipIdent, "skip-identicals", "s", false, "drop identity rules, unmatched tokens copy through")
	f.IntVarP(&window, "reduction-window", "w", -1, "context characters kept around differing cores, -1 for whole tokens")
	f.StringArrayVar(&splitters, "split", nil, "split targets at this symbol before counting (repeatable)")
	f.StringVar(&separator, "separator", " ", "joiner between the target tokens of one source token")
	f.StringArrayVar(&markers, "record-marker", nil, "marker starting a new record (repeatable)")
	f.StringVar(&saveTable, "save-table", "", "write the frequency table to this cache file")
	f.StringVar(&loadTable, "load-table", "", "merge a cached frequency table before reading inputs")
	f.StringVar(&configPath, "config", "", "YAML run configuration (default "+config.DefaultName+" when present)")
	f.BoolVar(&watchMode, "watch", false, "regenerate whenever an input changes, requires --output")
	f.BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "tb2fst: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	logger := newLogger(verbose)

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	source, target := args[0], args[1]
	fileArgs := args[2:]
	if watchMode {
		if outputPath == "" {
			return errors.New("--watch requires --output")
		}
		if len(fileArgs) == 0 {
			return errors.New("--watch requires file or directory arguments")
		}
	}

	j := &job{
		source: source,
		target: target,
		args:   fileArgs,
		cfg:    cfg,
		logger: logger,
		status: status.New(os.Stderr),
		output: outputPath,
		save:   saveTable,
		load:   loadTable,
	}

	if err := j.generate(); err != nil {
		return err
	}
	if watchMode {
		return watchAndRegen(cmd.Context(), j, logger)
	}
	return nil
}

// loadConfig layers the run configuration: built-in defaults, then the
// YAML file, then every flag the user actually set.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	var err error
	if configPath != "" {
		cfg, err = config.Load(configPath)
	} else {
		cfg, err = config.LoadDefault()
	}
	if err != nil {
		return config.Config{}, err
	}

	fl := cmd.Flags()
	if fl.Changed("freq-cutoff") {
		cfg.FreqCutoff = cutoff
	}
	if fl.Changed("ignore-case") {
		cfg.IgnoreCase = ignoreCase
	}
	if fl.Changed("skip-identicals") {
		cfg.SkipIdenticals = skipIdent
	}
	if fl.Changed("reduction-window") {
		cfg.ReductionWindow = window
	}
	if fl.Changed("split") {
		cfg.Splitters = splitters
	}
	if fl.Changed("separator") {
		cfg.SegmentSeparator = separator
	}
	if fl.Changed("record-marker") {
		cfg.RecordMarkers = markers
	}
	return cfg, nil
}

// job holds everything one generation run needs, so watch mode can
// repeat the run on changes.
type job struct {
	source, target string
	args           []string
	cfg            config.Config
	logger         *slog.Logger
	status         *status.Line
	output         string
	save, load     string
}

func (j *job) generate() error {
	gen, err := tbfst.New(j.source, j.target,
		tbfst.WithRecordMarkers(j.cfg.RecordMarkers...),
		tbfst.WithSegmentSeparator(j.cfg.SegmentSeparator),
		tbfst.WithLogger(j.logger),
		tbfst.WithProgress(func(meta string, done bool) {
			if done {
				j.status.Donef("processed %s", meta)
			} else {
				j.status.Setf("process %s", meta)
			}
		}),
	)
	if err != nil {
		return err
	}

	if j.load != "" {
		if err := j.loadTable(gen); err != nil {
			return err
		}
	}

	in, err := j.inputs()
	if err != nil {
		return err
	}
	if err := gen.Add(in, j.cfg.Splitters...); err != nil {
		j.logger.Warn("some inputs failed", "error", err)
	}

	if j.save != "" {
		if err := j.saveTable(gen); err != nil {
			return err
		}
	}

	grammar, err := gen.SFST(tbfst.SFSTOptions{
		FreqCutoff:      j.cfg.FreqCutoff,
		IgnoreCase:      j.cfg.IgnoreCase,
		SkipIdenticals:  j.cfg.SkipIdenticals,
		ReductionWindow: j.cfg.ReductionWindow,
	})
	if err != nil {
		return err
	}
	return writeOutput(j.output, grammar)
}

func (j *job) inputs() (tbfst.Input, error) {
	if len(j.args) == 0 {
		return tbfst.StreamInput{R: os.Stdin, Name: "stdin"}, nil
	}
	paths, err := discover.ExpandArgs(j.args)
	if err != nil {
		return nil, err
	}
	in := make(tbfst.MultiInput, len(paths))
	for i, p := range paths {
		in[i] = tbfst.FileInput(p)
	}
	return in, nil
}

func (j *job) loadTable(gen *tbfst.Generator) error {
	f, err := os.Open(j.load)
	if err != nil {
		return fmt.Errorf("loading table: %w", err)
	}
	defer func() { _ = f.Close() }()
	if err := gen.LoadTable(f); err != nil {
		return fmt.Errorf("loading table %s: %w", j.load, err)
	}
	return nil
}

func (j *job) saveTable(gen *tbfst.Generator) error {
	f, err := os.Create(j.save)
	if err != nil {
		return fmt.Errorf("saving table: %w", err)
	}
	if err := gen.SaveTable(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("saving table %s: %w", j.save, err)
	}
	return f.Close()
}

// writeOutput sends the grammar to stdout, or replaces the output file
// in one rename so a half-written grammar is never observable.
func writeOutput(path, grammar string) error {
	if path == "" {
		_, err := io.WriteString(os.Stdout, grammar)
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tb2fst-*")
	if err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	if _, err := tmp.WriteString(grammar); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("writing output: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("writing output: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
