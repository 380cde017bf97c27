// Command tbfreq prints the pair frequency table behind a grammar as
// tab-separated source, target, count rows.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/glottolab/tbfst"
	"github.com/glottolab/tbfst/internal/config"
	"github.com/glottolab/tbfst/internal/discover"
)

// Populated at build time via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	cutoff     int
	splitters  []string
	separator  string
	markers    []string
	saveTable  string
	loadTable  string
	configPath string
	verbose    bool

	rootCmd = &cobra.Command{
		Use:   "tbfreq SOURCE_MARKER TARGET_MARKER [FILE|DIR ...]",
		Short: "Count aligned tier pairs in Toolbox corpora",
		Long: `tbfreq aggregates the same source to target pair counts tb2fst
compiles from, and prints them as TSV rows sorted by descending count.
Useful for picking a frequency cutoff before generating a grammar.`,
		Args:          cobra.MinimumNArgs(2),
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit %s, built %s)", version, commit, date)

	f := rootCmd.Flags()
	f.IntVarP(&cutoff, "freq-cutoff", "f", 0, "print only pairs seen strictly more often than this")
	f.StringArrayVar(&splitters, "split", nil, "split targets at this symbol before counting (repeatable)")
	f.StringVar(&separator, "separator", " ", "joiner between the target tokens of one source token")
	f.StringArrayVar(&markers, "record-marker", nil, "marker starting a new record (repeatable)")
	f.StringVar(&saveTable, "save-table", "", "write the frequency table to this cache file")
	f.StringVar(&loadTable, "load-table", "", "merge a cached frequency table before reading inputs")
	f.StringVar(&configPath, "config", "", "YAML run configuration (default "+config.DefaultName+" when present)")
	f.BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "tbfreq: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	logger := newLogger(verbose)

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	gen, err := tbfst.New(args[0], args[1],
		tbfst.WithRecordMarkers(cfg.RecordMarkers...),
		tbfst.WithSegmentSeparator(cfg.SegmentSeparator),
		tbfst.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	if loadTable != "" {
		f, err := os.Open(loadTable)
		if err != nil {
			return fmt.Errorf("loading table: %w", err)
		}
		err = gen.LoadTable(f)
		_ = f.Close()
		if err != nil {
			return fmt.Errorf("loading table %s: %w", loadTable, err)
		}
	}

	in, err := inputs(args[2:])
	if err != nil {
		return err
	}
	if err := gen.Add(in, cfg.Splitters...); err != nil {
		logger.Warn("some inputs failed", "error", err)
	}

	if saveTable != "" {
		if err := writeTable(gen, saveTable); err != nil {
			return err
		}
	}

	return printPairs(os.Stdout, gen.Pairs(), cfg.FreqCutoff)
}

// printPairs writes pairs above the cutoff as TSV, most frequent
// first, ties broken by source then target. Pairs arrive in source
// then target order, so a stable sort on count keeps that tiebreak.
func printPairs(out io.Writer, pairs []tbfst.PairCount, cutoff int) error {
	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].Count > pairs[j].Count
	})

	w := bufio.NewWriter(out)
	for _, p := range pairs {
		if p.Count <= cutoff {
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%d\n", p.Source, p.Target, p.Count)
	}
	return w.Flush()
}

func inputs(args []string) (tbfst.Input, error) {
	if len(args) == 0 {
		return tbfst.StreamInput{R: os.Stdin, Name: "stdin"}, nil
	}
	paths, err := discover.ExpandArgs(args)
	if err != nil {
		return nil, err
	}
	in := make(tbfst.MultiInput, len(paths))
	for i, p := range paths {
		in[i] = tbfst.FileInput(p)
	}
	return in, nil
}

func writeTable(gen *tbfst.Generator, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("saving table: %w", err)
	}
	if err := gen.SaveTable(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("saving table %s: %w", path, err)
	}
	return f.Close()
}

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

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
