package commands

import (
	"github.com/spf13/cobra"

	"github.com/libro-dev/libro/internal/buildinfo"
	"github.com/libro-dev/libro/internal/config"
)

// rootOptions are the persistent flags shared by every subcommand.
type rootOptions struct {
	configPath string
	envFile    string
	debug      bool
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "libro",
		Short:   "Double-entry bookkeeping for a small trading business",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", config.FileName, "config file")
	rootCmd.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "dotenv file with LIBRO_* overrides")
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(
		newAccountsCommand(),
		newPostCommand(opts),
		newRunCommand(opts),
		newReportCommand(opts),
		newCheckCommand(),
		newActivityCommand(),
		newInitConfigCommand(),
	)

	return rootCmd
}
