// seqscope browses the length distribution of biological sequence
// records across a directory of FASTA files.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/seqwell/seqscope/internal/catalog"
	"github.com/seqwell/seqscope/internal/config"
	"github.com/seqwell/seqscope/internal/histogram"
	"github.com/seqwell/seqscope/internal/i18n"
	"github.com/seqwell/seqscope/internal/tui"
	"github.com/seqwell/seqscope/internal/tuilog"
	"github.com/seqwell/seqscope/internal/version"
)

// Global flags
var (
	logPath        string
	configPath     string
	watchFlag      bool
	followSymlinks bool
)

// Bins command flags
var (
	binsFile string
	binsMin  int
	binsMax  int
)

var rootCmd = &cobra.Command{
	Use:   "seqscope [dir]",
	Short: "Browse sequence length distributions in the terminal",
	Long: `seqscope summarizes the length distribution of biological sequence
records across a directory of FASTA files.

Running without a subcommand launches the interactive TUI over the
given directory (default: current directory).

Commands:
  tui       Launch interactive browser (default)
  catalog   List discovered sequence files
  bins      Print the length histogram for one file
  version   Show version

Examples:
  seqscope                        # Browse the current directory
  seqscope ~/genomes              # Browse a specific directory
  seqscope catalog ~/genomes      # List files non-interactively
  seqscope bins ~/genomes --file chr1.fasta --min 100 --max 5000`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTUI,
}

var tuiCmd = &cobra.Command{
	Use:   "tui [dir]",
	Short: "Launch interactive browser",
	Long: `Browse discovered sequence files in a terminal interface.

Top pane: discovered files, sorted by path
Bottom left: length histogram of the selected file under the active filter
Bottom right: filter state and key help

Keys: ↑/↓ files, ←/→ records, m/M quick filter presets, i to type a
"min-max" range, enter to apply, esc to cancel, q to quit.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTUI,
}

var catalogCmd = &cobra.Command{
	Use:   "catalog [dir]",
	Short: "List discovered sequence files",
	Long: `Build the catalog for a directory and print one line per file:
path, record count, and the smallest and largest record length.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCatalog,
}

var binsCmd = &cobra.Command{
	Use:   "bins [dir]",
	Short: "Print the length histogram for one file",
	Long: `Print the binned length distribution of a single file, optionally
restricted to an inclusive length range. Uses the same binning engine
as the TUI.

Examples:
  seqscope bins --file chr1.fasta
  seqscope bins ~/genomes --file chr1.fasta --min 100 --max 5000`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBins,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String("seqscope"))
	},
}

func main() {
	rootCmd.PersistentFlags().StringVar(&logPath, "log", "", "write debug log to file")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.seqscope/config.toml)")
	rootCmd.PersistentFlags().BoolVar(&followSymlinks, "follow-symlinks", true, "descend into symlinked directories")

	rootCmd.Flags().BoolVar(&watchFlag, "watch", false, "flag the catalog when files change on disk")
	tuiCmd.Flags().BoolVar(&watchFlag, "watch", false, "flag the catalog when files change on disk")

	binsCmd.Flags().StringVar(&binsFile, "file", "", "file to summarize (path or base name)")
	binsCmd.Flags().IntVar(&binsMin, "min", 0, "minimum record length")
	binsCmd.Flags().IntVar(&binsMax, "max", -1, "maximum record length (-1 = unbounded)")
	binsCmd.MarkFlagRequired("file")

	docsCmd.PersistentFlags().StringVarP(&docsOutputDir, "output", "o", "./docs", "output directory")
	docsCmd.PersistentFlags().BoolVar(&docsEnableAutoGenTag, "enableAutoGenTag", false, "include the generated-by footer")
	docsCmd.AddCommand(docsMarkdownCmd)
	docsCmd.AddCommand(docsManCmd)

	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(binsCmd)
	rootCmd.AddCommand(docsCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup loads config, initializes logging and i18n, and builds the
// catalog. A nil catalog with a nil error means no files matched and
// the caller should exit cleanly.
func setup(cmd *cobra.Command, args []string) (*catalog.Catalog, config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, config.Config{}, fmt.Errorf("load config: %w", err)
	}
	if cmd.Flags().Changed("follow-symlinks") {
		cfg.FollowSymlinks = followSymlinks
	}
	if cmd.Flags().Changed("watch") {
		cfg.Watch = watchFlag
	}
	i18n.Init(cfg.Locale)

	if logPath != "" {
		if err := tuilog.Init(logPath); err != nil {
			return nil, config.Config{}, fmt.Errorf("init logger: %w", err)
		}
	}

	root := "."
	if len(args) > 0 {
		root = args[0]
	}

	tuilog.Log.Info("building catalog", "root", root)
	cat, err := catalog.Build(root, catalog.Options{
		Extensions:     cfg.Extensions,
		FollowSymlinks: cfg.FollowSymlinks,
	})
	if err != nil {
		return nil, config.Config{}, fmt.Errorf("build catalog: %w", err)
	}
	tuilog.Log.Info("catalog built", "files", cat.Len())

	if cat.Len() == 0 {
		fmt.Fprintln(os.Stderr, i18n.T("cli.nofiles", "No sequence files found in directory."))
		return nil, cfg, nil
	}
	return cat, cfg, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	defer tuilog.Log.Close()

	cat, cfg, err := setup(cmd, args)
	if err != nil {
		return err
	}
	if cat == nil {
		return nil
	}

	// Get initial terminal size - try stdout, stdin, stderr in order.
	var opts []tea.ProgramOption
	for _, fd := range []int{int(os.Stdout.Fd()), int(os.Stdin.Fd()), int(os.Stderr.Fd())} {
		if term.IsTerminal(fd) {
			w, h, err := term.GetSize(fd)
			if err == nil && w > 0 && h > 0 {
				opts = append(opts, tea.WithWindowSize(w, h))
				break
			}
		}
	}

	return tui.Run(cat, cfg, opts...)
}

func runCatalog(cmd *cobra.Command, args []string) error {
	defer tuilog.Log.Close()

	cat, _, err := setup(cmd, args)
	if err != nil {
		return err
	}
	if cat == nil {
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PATH\tRECORDS\tMIN\tMAX")
	for i := 0; i < cat.Len(); i++ {
		f := cat.File(i)
		min, max := f.MinMax()
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\n", f.Path(), f.Records(), min, max)
	}
	return w.Flush()
}

func runBins(cmd *cobra.Command, args []string) error {
	defer tuilog.Log.Close()

	cat, _, err := setup(cmd, args)
	if err != nil {
		return err
	}
	if cat == nil {
		return nil
	}

	var selected *catalog.SequenceFile
	for i := 0; i < cat.Len(); i++ {
		f := cat.File(i)
		if f.Path() == binsFile || filepath.Base(f.Path()) == binsFile {
			selected = f
			break
		}
	}
	if selected == nil {
		return fmt.Errorf("file not in catalog: %s", binsFile)
	}

	r := histogram.Range{Min: binsMin, Max: histogram.Unbounded}
	if binsMax >= 0 {
		r.Max = binsMax
	}
	snap := histogram.Compute(selected.Lengths(), r)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "BIN\tCOUNT")
	for _, b := range snap.Bins {
		fmt.Fprintf(w, "%s\t%d\n", b.Label, b.Count)
	}
	return w.Flush()
}
