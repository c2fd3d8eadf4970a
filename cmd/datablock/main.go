// Command datablock runs the data block ingestion service: fetch raw
// documents from the Direct+ API, load them into the relational store, and
// serve the read API.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"

	companyhandler "datablock/internal/company/handler"
	companyservice "datablock/internal/company/service"
	companystore "datablock/internal/company/store"
	"datablock/internal/dnb"
	"datablock/internal/health"
	"datablock/internal/ingest"
	ingesthandler "datablock/internal/ingest/handler"
	ingeststore "datablock/internal/ingest/store"
	"datablock/internal/platform/config"
	"datablock/internal/platform/database"
	"datablock/internal/platform/httpserver"
	"datablock/internal/platform/logger"
	"datablock/internal/platform/metrics"
	httptransport "datablock/internal/transport/http"
	domainerrors "datablock/pkg/domain-errors"
)

func main() {
	root := &cobra.Command{
		Use:           "datablock",
		Short:         "D&B data block fetcher and loader",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCmd(), newLoadCmd(), newFetchCmd(), newMigrateCmd())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		if domainerrors.HasCode(err, domainerrors.CodeValidation) ||
			domainerrors.HasCode(err, domainerrors.CodeBadRequest) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func openDatabase(cfg config.Config) (*sqlx.DB, error) {
	db, err := database.Open(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the ingestion and read API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromEnv()
			log := logger.New(cfg.LogLevel)

			db, err := openDatabase(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			m := metrics.New()
			loader := ingest.NewLoader(ingeststore.New(db), log, m)
			companies := companyservice.New(companystore.New(db))

			router := httptransport.NewRouter(
				ingesthandler.New(loader, log, m),
				companyhandler.New(companies, log, m),
				health.New(db, cfg.HasAPICredentials(), log),
			)
			srv := httpserver.New(cfg.HTTPAddr, router)

			errCh := make(chan error, 1)
			go func() {
				log.Info("starting datablock server", "addr", cfg.HTTPAddr)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
			}()

			select {
			case err := <-errCh:
				return err
			case <-cmd.Context().Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("graceful shutdown failed: %w", err)
			}
			log.Info("server stopped")
			return nil
		},
	}
}

func newLoadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load <file.json>...",
		Short: "Load data block JSON files as one transactional batch",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromEnv()
			log := logger.New(cfg.LogLevel)

			db, err := openDatabase(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			loader := ingest.NewLoader(ingeststore.New(db), log, metrics.New())
			if err := loader.LoadFiles(cmd.Context(), args...); err != nil {
				return err
			}
			log.Info("batch loaded", "files", len(args))
			return nil
		},
	}
}

func newFetchCmd() *cobra.Command {
	var (
		blocks    []string
		tradeUp   string
		reference string
		load      bool
	)

	cmd := &cobra.Command{
		Use:   "fetch <duns>...",
		Short: "Fetch data blocks from the Direct+ API and archive them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromEnv()
			log := logger.New(cfg.LogLevel)

			if !cfg.HasAPICredentials() {
				return domainerrors.New(domainerrors.CodeBadRequest,
					"DNB_API_KEY and DNB_API_SECRET must be set")
			}

			m := metrics.New()
			client := dnb.NewClient(cfg.API, log, m)
			fetcher := dnb.NewFetcher(client, cfg.API.OutputDir, log)

			var paths []string
			var err error
			if len(args) == 1 {
				// Single DUNS keeps tradeUp and reference support.
				var path string
				path, err = fetcher.Fetch(cmd.Context(), dnb.Request{
					DUNS:              args[0],
					BlockIDs:          blocks,
					TradeUp:           tradeUp,
					CustomerReference: reference,
				})
				paths = []string{path}
			} else {
				paths, err = fetcher.FetchMany(cmd.Context(), args, blocks)
			}
			if err != nil {
				return err
			}

			if load {
				db, err := openDatabase(cfg)
				if err != nil {
					return err
				}
				defer db.Close()

				loader := ingest.NewLoader(ingeststore.New(db), log, m)
				if err := loader.LoadFiles(cmd.Context(), paths...); err != nil {
					return err
				}
			}

			for _, p := range paths {
				fmt.Println(p)
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&blocks, "blocks",
		[]string{dnb.BlockIDCompanyInfo, dnb.BlockIDEventFilings, dnb.BlockIDFinancials},
		"Block IDs to request")
	cmd.Flags().StringVar(&tradeUp, "trade-up", "", `Trade up to headquarters ("hq" or "domhq")`)
	cmd.Flags().StringVar(&reference, "reference", "", "Customer reference (up to 240 chars)")
	cmd.Flags().BoolVar(&load, "load", false, "Load fetched documents after archiving")
	return cmd
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromEnv()
			log := logger.New(cfg.LogLevel)

			db, err := openDatabase(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			log.Info("migrations applied", "database", cfg.DatabaseURL)
			return nil
		},
	}
}
