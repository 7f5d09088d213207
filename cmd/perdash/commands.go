package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/ougirez/perdash/internal/api"
	"github.com/ougirez/perdash/internal/pkg/logger"
	"github.com/ougirez/perdash/internal/pkg/metrics"
	"github.com/ougirez/perdash/internal/pkg/store"
	"github.com/ougirez/perdash/internal/pkg/utils"
	"github.com/ougirez/perdash/internal/service/fetcher"
	"github.com/ougirez/perdash/internal/service/pipeline"
	"github.com/ougirez/perdash/internal/service/report"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var (
	skipFetch bool
	tokenTTL  time.Duration
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download the PER datasets from the GO API into the store",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := store.Open(ctx, cfg.Store)
		if err != nil {
			return err
		}

		fetchService, closeFn, err := newFetchService(st, metrics.New())
		if err != nil {
			return err
		}
		defer closeFn()

		res, err := fetchService.Fetch(ctx)
		if err != nil {
			return err
		}

		for key, n := range res.Counts {
			logger.Infof(ctx, "%s: %d records", key, n)
		}
		return nil
	},
}

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Build the dashboard datasets from the stored inputs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := store.Open(ctx, cfg.Store)
		if err != nil {
			return err
		}

		_, err = pipeline.NewService(st, nil, metrics.New()).Run(ctx, true)
		return err
	},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Fetch and then process",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := store.Open(ctx, cfg.Store)
		if err != nil {
			return err
		}

		m := metrics.New()
		fetchService, closeFn, err := newFetchService(st, m)
		if err != nil {
			return err
		}
		defer closeFn()

		_, err = pipeline.NewService(st, fetchService, m).Run(ctx, skipFetch)
		return err
	},
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Print a summary of the stored raw and processed datasets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := store.Open(ctx, cfg.Store)
		if err != nil {
			return err
		}

		r, err := report.NewService(st).Build(ctx)
		if err != nil {
			return err
		}

		return r.Render(os.Stdout, storeLocation())
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the datasets over HTTP",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := store.Open(ctx, cfg.Store)
		if err != nil {
			return err
		}

		m := metrics.New()
		fetchService, closeFn, err := newFetchService(st, m)
		if err != nil {
			return err
		}
		defer closeFn()

		svc, err := api.NewAPIService(st, pipeline.NewService(st, fetchService, m), m, cfg.Server.AllowOrigins)
		if err != nil {
			return err
		}

		go svc.Serve(cfg.Server.Addr)
		logger.Infof(ctx, "listening on %s", cfg.Server.Addr)

		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return svc.Shutdown(shutdownCtx)
	},
}

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Print an admin token for the configured server secret",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		wrapper := &utils.AuthTokenWrapper{Secret: cfg.Server.Secret}
		if tokenTTL > 0 {
			wrapper.ExpiresAt = time.Now().Add(tokenTTL).Unix()
		}

		token, err := utils.GenerateAuthToken(wrapper)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
		return err
	},
}

func newFetchService(st store.Store, m *metrics.Metrics) (*fetcher.Service, func(), error) {
	client, err := fetcher.NewClient(cfg.API, m)
	if err != nil {
		return nil, nil, err
	}

	return fetcher.NewService(client, st), client.Close, nil
}

func storeLocation() string {
	if cfg.Store.Driver == string(store.DriverS3) {
		return "s3://" + cfg.Store.S3.Bucket
	}
	if cfg.Store.Driver == string(store.DriverMemory) {
		return "memory"
	}

	return cfg.Store.Root
}
