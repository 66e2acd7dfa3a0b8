package main

import (
	"fmt"
	"os"
	"trainer-market-service/internal/config"

	"github.com/joho/godotenv"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:           "marketctl",
	Short:         "Personal trainer market explorer CLI",
	Long:          "Seeds the city table into a SQL store and queries filtered views, recommendations and summaries.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		envErr := godotenv.Load()

		c, err := config.Load()
		if err != nil {
			return eris.Wrap(err, "marketctl: load config")
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return eris.Wrap(err, "marketctl: init logger")
		}

		if envErr != nil {
			zap.L().Debug("no .env file found (using environment variables)")
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
