package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"paynotify/internal/report"
	"paynotify/internal/snippets"
)

var (
	// Global flags
	verbose bool

	// Logger. No-op unless --verbose is set; the report on stdout stays
	// byte-identical either way because zap writes to stderr.
	logger = zap.NewNop()
)

var errMissingPath = errors.New("missing required argument: <project-path>")

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "paynotify <project-path>",
	Short: "Print payment-notification boilerplate for a project",
	Long: `paynotify prints the boilerplate needed to wire Stripe payment
notifications into a project: notification type constants, a database
schema fragment, a webhook handler skeleton, and notification helper
functions.

The snippets go to standard output for manual copy-paste. The project
path is required but never read from or written to; it only marks which
project the operator is setting up.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if !verbose {
			return nil
		}
		config := zap.NewDevelopmentConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runSetup,
}

// listCmd lists the snippet bank
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available snippets",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

// showCmd prints a single snippet body
var showCmd = &cobra.Command{
	Use:   "show <snippet>",
	Short: "Print a single snippet body",
	Long: `Prints one snippet without banners or section headers, suitable for
piping into a pager or redirecting to a file.

Example:
  paynotify show schema`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runSetup prints the full setup report. The first argument must be present
// but is otherwise unused; extra arguments are ignored.
func runSetup(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		fmt.Fprintf(cmd.OutOrStdout(), "Usage: %s <project-path>\n", cmd.Root().Name())
		return errMissingPath
	}

	logger.Debug("Rendering setup report",
		zap.String("project", args[0]),
		zap.Int("ignored_args", len(args)-1))

	return report.Render(cmd.OutOrStdout())
}

// runList prints one line per snippet in bank order.
func runList(cmd *cobra.Command, args []string) error {
	for _, sn := range snippets.All() {
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-8s %-32s %s\n", sn.Slug, sn.TargetPath, sn.Title); err != nil {
			return fmt.Errorf("write snippet list: %w", err)
		}
	}
	return nil
}

// runShow prints exactly one snippet body, no banners.
func runShow(cmd *cobra.Command, args []string) error {
	sn, ok := snippets.Lookup(args[0])
	if !ok {
		return fmt.Errorf("unknown snippet %q (expected one of: %s)", args[0], strings.Join(snippets.Slugs(), ", "))
	}

	logger.Debug("Printing snippet", zap.String("slug", sn.Slug))

	if _, err := io.WriteString(cmd.OutOrStdout(), sn.Body); err != nil {
		return fmt.Errorf("write snippet %q: %w", sn.Slug, err)
	}
	return nil
}
