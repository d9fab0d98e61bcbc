package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Write every sprite, then rewrite them as their sources change",
		Long: `Write every configured sprite, then watch the source roots and rewrite
affected sprites once changes settle. Targets with a reload command have it
run after each rewrite. Stops on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Watch(cmd.Context(), c.options())
		},
	}
}
