package cmd

import (
	"github.com/spf13/cobra"

	"github.com/thinkwise-edu/thinkwise/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "thinkwise",
	Short: "AI-generated thinking exercises for elementary students",
	Long: "ThinkWise generates critical-thinking exercises with an LLM, grades student answers " +
		"and serves both over an HTTP API.",
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides THINKWISE_DB and database.path)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default: ./thinkwise.yaml or $XDG_CONFIG_HOME/thinkwise/thinkwise.yaml)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(userCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then database.path from the config, then store.DefaultDBPath.
func resolveDBPath(cmd *cobra.Command, configured string) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if configured != "" {
		return configured, store.EnsureDir(configured)
	}
	return store.DefaultDBPath()
}
