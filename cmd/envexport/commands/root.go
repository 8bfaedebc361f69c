// Package commands implements the CLI commands for envexport.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/envexport/internal/app"
	"go.trai.ch/envexport/internal/build"
)

// CLI represents the command line interface for envexport.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Export(ctx context.Context, opts app.ExportOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	var opts app.ExportOptions

	rootCmd := &cobra.Command{
		Use:   "envexport",
		Short: "Export a minimal, reproducible conda environment file",
		Long: "envexport exports the packages you explicitly requested, pins them to the " +
			"installed versions, adds a python pin and merges your user-site pip packages.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Export(cmd.Context(), opts)
		},
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.Target.Name, "name", "n", "", "Name of the environment to export")
	flags.StringVarP(&opts.Target.Prefix, "prefix", "p", "", "Full path to the environment to export")
	flags.StringVarP(&opts.Output, "output", "o", app.StdoutPath, "Write the environment file to this path")
	flags.BoolVar(&opts.SkipLocal, "no-local", false, "Do not merge packages from pip freeze --user")
	flags.BoolVar(&opts.JSONLog, "json-log", false, "Write logs as JSON")
	rootCmd.MarkFlagsMutuallyExclusive("name", "prefix")

	c.rootCmd = rootCmd
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
