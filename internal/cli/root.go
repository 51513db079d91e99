// Package cli wires configuration, storage and the HTTP server into the
// assistant's cobra commands.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root cobra command. Running the binary with
// no subcommand starts the server.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "assistant",
		Short: "Personal productivity backend",
		Long: `AI Personal Assistant is the backend for a personal productivity app:
focus sprints with distraction logging, a project list, ritual checklists,
a stub authentication flow and a passthrough to an external MCP tool server.

Configuration is read from environment variables:
  DATABASE_PATH            SQLite database file (default: ./assistant.db)
  HOST, PORT               Listen address (default: 0.0.0.0:8000)
  CORS_ORIGINS             Comma-separated allowed origins
  SECRET_KEY               Token signing secret
  TOKEN_EXPIRE_MINUTES     Access token lifetime (default: 30)
  MCP_SERVER_URL           External tool server (default: http://localhost:3001)
  MCP_AUTH_TOKEN           Optional bearer token for the tool server
  LOG_LEVEL                zap log level (default: info)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}

	root.AddCommand(newServeCommand())
	root.AddCommand(newSeedCommand())
	return root
}
