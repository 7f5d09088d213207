package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ougirez/perdash/internal/pkg/config"
	"github.com/ougirez/perdash/internal/pkg/constants"
	"github.com/ougirez/perdash/internal/pkg/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	configFile string
	dataDir    string
	verbose    bool

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "perdash",
	Short: "IFRC PER data fetcher and dashboard dataset builder",
	Long: `perdash downloads the PER datasets from the IFRC GO API, joins them
and writes the dashboard-ready datasets (map data, component descriptions,
processed assessments, dashboard data).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		v := viper.GetViper()
		if dataDir != "" {
			v.Set(constants.ViperStoreRootKey, dataDir)
		}

		var err error
		cfg, err = config.Load(v, configFile)
		if err != nil {
			return err
		}

		level := cfg.Log.Level
		if verbose {
			level = "debug"
		}
		if err := logger.Init(level, cfg.Log.Format); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (yaml, json or toml)")
	rootCmd.PersistentFlags().StringVarP(&dataDir, "data-dir", "d", "", "dataset directory for the fs store")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	runCmd.Flags().BoolVar(&skipFetch, "skip-fetch", false, "process the datasets already in the store")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 0, "token lifetime (default 24h)")

	rootCmd.AddCommand(fetchCmd, processCmd, runCmd, checkCmd, serveCmd, tokenCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
