package cmd

import (
	"context"
	"fmt"
	"log"
	"os"

	"tree-to-text/pkg/config"
	"tree-to-text/pkg/constants"
	"tree-to-text/pkg/core"
	"tree-to-text/pkg/extract"
	"tree-to-text/pkg/filter"
	"tree-to-text/pkg/logger"
	"tree-to-text/pkg/utils"

	"github.com/spf13/cobra"
)

var (
	inputDir     string
	outputFile   string
	extension    string
	excludeWords string
	excludeDirs  string
	separator    bool
	verbose      bool
	showVersion  bool
)

// AppHandler encapsulates application main processing logic
type AppHandler struct {
	config *config.Config
	logger *logger.Logger
}

// NewAppHandler creates an application handler
func NewAppHandler() *AppHandler {
	return &AppHandler{}
}

// Run builds the run configuration, selects the extraction method and
// executes the pipeline
func (h *AppHandler) Run() error {
	if err := h.initialize(); err != nil {
		return err
	}

	selector := extract.NewMethodSelector(h.config, h.logger)
	extractor, method, err := selector.SelectMethod()
	if err != nil {
		return err
	}
	h.logger.Progress("🔍", "Extraction method: %s", method)

	lineFilter := filter.NewWordFilter(h.config.ExcludeWords)
	pipeline := core.NewPipeline(h.config, h.logger, extractor, lineFilter)

	_, err = pipeline.Run(context.Background())
	return err
}

// initialize assembles the configuration from defaults, environment and
// command line flags, then validates it
func (h *AppHandler) initialize() error {
	cfg := config.DefaultConfig()
	cfg.ApplyEnvOverrides()

	cfg.InputDir = inputDir
	cfg.OutputFile = outputFile
	cfg.Extension = utils.NormalizeExtension(extension)
	cfg.ExcludeWords = utils.SplitCSV(excludeWords)
	cfg.MergeExcludeDirs(utils.SplitCSV(excludeDirs))
	cfg.Separator = separator
	if verbose {
		cfg.EnableVerbose = true
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	h.config = cfg
	h.logger = logger.NewLogger(cfg.LogLevel, cfg.EnableVerbose)
	return nil
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   constants.AppName,
	Short: "Flatten a tree of documents into a single plain-text file",
	Long: `Walks a directory tree, collects files matching a target extension,
extracts their plain-text content with the best available tool, and
concatenates the results into one output file.

Extraction methods (probed in order, first available wins):
- pandoc: converts the file to plain text format
- lynx: dumps a rendered plain-text view (link list suppressed)
- passthrough: returns the file contents unchanged

Line filtering:
- Lines containing any excluded word as a whole word are dropped
- Matching is case-sensitive; partial-word hits do not count

Examples:
  tree-to-text                                  # flatten ./*.html into combined.txt
  tree-to-text -i docs -e md -o corpus.txt      # flatten docs/**/*.md
  tree-to-text -e .txt -w draft,TODO            # drop lines containing draft or TODO
  tree-to-text -d node_modules,dist             # prune extra directories (besides .git)
  tree-to-text -s                               # add a source marker after each file
  tree-to-text -i site -v                       # verbose progress output`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		// Handle version flag
		if showVersion {
			fmt.Printf("%s %s\n", constants.AppName, version)
			return
		}

		handler := NewAppHandler()
		if err := handler.Run(); err != nil {
			if appErr, ok := err.(*utils.AppError); ok {
				// Validation failures show usage before exiting
				if appErr.Type == utils.ErrorTypeUsage || appErr.Type == utils.ErrorTypeValidation {
					fmt.Fprintf(os.Stderr, "Error (%s): %s\n", appErr.Type, appErr.Message)
					cmd.Usage()
					os.Exit(1)
				}
				log.Fatalf("Error (%s): %s", appErr.Type, appErr.Message)
			}
			log.Fatalf("Error: %v", err)
		}
	},
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return rootCmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Add flags to root command
	rootCmd.Flags().StringVarP(&inputDir, "input", "i", config.DefaultInputDir,
		"Input directory to walk")
	rootCmd.Flags().StringVarP(&outputFile, "output", "o", constants.DefaultOutputFile,
		"Output file path")
	rootCmd.Flags().StringVarP(&extension, "ext", "e", constants.DefaultExtension,
		"Target file extension (leading dot stripped)")
	rootCmd.Flags().StringVarP(&excludeWords, "exclude-words", "w", "",
		"Comma-separated words; lines containing any of them as a whole word are dropped")
	rootCmd.Flags().StringVarP(&excludeDirs, "exclude-dirs", "d", "",
		fmt.Sprintf("Comma-separated directory names to prune (merged with default %s)", constants.DefaultVCSDirName))
	rootCmd.Flags().BoolVarP(&separator, "separator", "s", false,
		"Insert a source marker block after each file's content")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose output to show progress information")
	rootCmd.Flags().BoolVarP(&showVersion, "version", "V", false,
		"Show version information")

	// Usage and help are diagnostics and terminate with a non-zero status
	rootCmd.SetHelpFunc(func(c *cobra.Command, args []string) {
		if c.Long != "" {
			fmt.Fprintln(os.Stderr, c.Long)
			fmt.Fprintln(os.Stderr)
		}
		fmt.Fprint(os.Stderr, c.UsageString())
		os.Exit(1)
	})
}
