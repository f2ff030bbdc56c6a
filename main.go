package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/llehouerou/showcase/internal/app"
	"github.com/llehouerou/showcase/internal/catalog"
	"github.com/llehouerou/showcase/internal/config"
	"github.com/llehouerou/showcase/internal/errmsg"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type flags struct {
	config   string
	catalog  string
	database string
	title    string
	debugLog string
}

// opError carries the operation that failed so it can be reported with
// errmsg formatting.
type opError struct {
	op      errmsg.Op
	context string
	err     error
}

func (e *opError) Error() string { return errmsg.FormatWith(e.op, e.context, e.err) }

func (e *opError) Unwrap() error { return e.err }

func newRootCommand() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:           "showcase",
		Short:         "Browse featured products in an endless carousel",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return run(f)
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.Flags().StringVar(&f.config, "config", "", "extra config file, loaded last")
	cmd.Flags().StringVar(&f.catalog, "catalog", "", "TOML catalog with [[products]] tables")
	cmd.Flags().StringVar(&f.database, "db", "", "sqlite catalog database (wins over --catalog)")
	cmd.Flags().StringVar(&f.title, "title", app.DefaultTitle, "header title")
	cmd.Flags().StringVar(&f.debugLog, "debug-log", "", "write debug logs to this file")

	cmd.AddCommand(newSeedCommand())
	return cmd
}

func newSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:           "seed <catalog.toml> <db>",
		Short:         "Replace the featured products in a database with a TOML catalog",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			products, err := catalog.LoadFile(args[0])
			if err != nil {
				return &opError{op: errmsg.OpCatalogLoad, context: args[0], err: err}
			}
			store, err := catalog.Open(args[1])
			if err != nil {
				return &opError{op: errmsg.OpCatalogOpen, context: args[1], err: err}
			}
			defer store.Close()

			if err := store.Replace(products); err != nil {
				return &opError{op: errmsg.OpCatalogSeed, context: args[1], err: err}
			}
			cmd.Printf("%d products written to %s\n", len(products), args[1])
			return nil
		},
	}
}

func run(f flags) error {
	cfg, err := config.Load(f.config)
	if err != nil {
		return &opError{op: errmsg.OpConfigLoad, err: err}
	}
	if f.catalog != "" {
		cfg.Catalog.File = f.catalog
	}
	if f.database != "" {
		cfg.Catalog.Database = f.database
	}

	log, err := newLogger(f.debugLog)
	if err != nil {
		return &opError{op: errmsg.OpLogOpen, context: f.debugLog, err: err}
	}
	defer log.Sync() //nolint:errcheck // nothing to do if the final flush fails

	products, err := catalog.Load(cfg.Catalog.File, cfg.Catalog.Database)
	switch {
	case errors.Is(err, catalog.ErrNoProducts):
		log.Info("catalog is empty", zap.String("database", cfg.Catalog.Database))
	case err != nil:
		return &opError{op: errmsg.OpCatalogLoad, err: err}
	}
	log.Info("starting", zap.Int("products", len(products)), zap.Bool("configured", cfg.HasCatalog()))

	z := zone.New()
	defer z.Close()

	m := app.New(app.Options{
		Title:    f.title,
		Products: products,
		Config:   cfg.GetCarouselConfig(),
		Zone:     z,
		Logger:   log,
	})

	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithReportFocus(),
	)
	if _, err := p.Run(); err != nil {
		return &opError{op: errmsg.OpInitialize, err: err}
	}
	return nil
}
