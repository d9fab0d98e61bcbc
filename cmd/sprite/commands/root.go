// Package commands implements the CLI commands for sprite.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/sprite/internal/app"
	"go.trai.ch/sprite/internal/build"
)

// CLI represents the command line interface for sprite.
type CLI struct {
	app     Application
	rootCmd *cobra.Command

	configPath    string
	jsonLogs      bool
	trace         bool
	traceShutdown func(context.Context) error
}

// Application represents the application logic interface.
type Application interface {
	Build(ctx context.Context, opts app.Options) error
	Watch(ctx context.Context, opts app.Options) error
	SetJSONLogs(enable bool)
	EnableTracing() func(context.Context) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:               "sprite",
		Short:             "Merge SVG icons into sprites and keep them in sync",
		SilenceUsage:      true,
		SilenceErrors:     true,
		Version:           build.Version,
		PersistentPreRun:  c.setup,
		PersistentPostRun: c.teardown,
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

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&c.configPath, "config", "c", "", "Path to the config file (default: sprite.yaml in the working directory)")
	flags.BoolVar(&c.jsonLogs, "json", false, "Write logs as JSON")
	flags.BoolVar(&c.trace, "trace", false, "Log a timing line for every engine span")

	c.rootCmd = rootCmd
	rootCmd.AddCommand(c.newBuildCmd())
	rootCmd.AddCommand(c.newWatchCmd())
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

func (c *CLI) options() app.Options {
	return app.Options{ConfigPath: c.configPath}
}

func (c *CLI) setup(_ *cobra.Command, _ []string) {
	if c.jsonLogs {
		c.app.SetJSONLogs(true)
	}
	if c.trace {
		c.traceShutdown = c.app.EnableTracing()
	}
}

// teardown only runs after successful commands; a failing command exits right after.
func (c *CLI) teardown(cmd *cobra.Command, _ []string) {
	if c.traceShutdown != nil {
		_ = c.traceShutdown(context.WithoutCancel(cmd.Context()))
		c.traceShutdown = nil
	}
}
