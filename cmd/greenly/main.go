package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Harshchoudhary07/Greenly/internal/api"
	"github.com/Harshchoudhary07/Greenly/internal/cart"
	"github.com/Harshchoudhary07/Greenly/internal/config"
	"github.com/Harshchoudhary07/Greenly/internal/geo"
	"github.com/Harshchoudhary07/Greenly/internal/session"
	"github.com/Harshchoudhary07/Greenly/internal/storage"
)

// app bundles the wired client components for command handlers.
type app struct {
	cfg      config.Config
	store    *storage.SQLiteStore
	session  *session.Manager
	client   *api.Client
	cart     *cart.Store
	location *geo.Service
}

var (
	verbose bool
	baseURL string
	dataDir string

	logger *zap.Logger
	cliApp *app
)

var rootCmd = &cobra.Command{
	Use:   "greenly",
	Short: "Greenly - local marketplace for fresh produce and scrap pickup",
	Long: `greenly is the command-line client for the Greenly marketplace.

It talks to the Greenly backend, keeps your cart and session on this
machine, and finds vendors and scrap collectors near you.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zcfg := zap.NewProductionConfig()
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}

		cliApp, err = buildApp()
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if cliApp != nil && cliApp.store != nil {
			_ = cliApp.store.Close()
		}
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func buildApp() (*app, error) {
	cfg := config.FromEnv()
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	if cfg.DataDir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolve config dir: %w", err)
		}
		cfg.DataDir = filepath.Join(base, "greenly")
	}

	store, err := storage.NewSQLiteStore(filepath.Join(cfg.DataDir, "greenly.db"))
	if err != nil {
		return nil, fmt.Errorf("open local store: %w", err)
	}

	sess := session.NewManager(store, logger)
	client := api.NewClient(cfg, sess,
		api.WithLogger(logger),
		api.WithLoginRequired(func() {
			fmt.Fprintln(os.Stderr, "Session expired. Please run `greenly login` again.")
		}),
	)

	cartStore := cart.NewStore(store, cfg, logger)
	location := geo.NewService(store, client, newEnvProvider(), cfg, logger)

	return &app{
		cfg:      cfg,
		store:    store,
		session:  sess,
		client:   client,
		cart:     cartStore,
		location: location,
	}, nil
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "override the API base URL")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "override the local data directory")

	rootCmd.AddCommand(loginCmd, logoutCmd, meCmd, tokenCmd)
	rootCmd.AddCommand(cartCmd, productsCmd, vendorsCmd, collectorsCmd, ordersCmd, pickupsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
