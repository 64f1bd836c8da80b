package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"wealthview/internal/config"
	"wealthview/internal/database"
	"wealthview/internal/seed"
	"wealthview/internal/services"
	"wealthview/internal/validator"
)

type seedOptions struct {
	file        string
	databaseURL string
}

func newRootCmd() *cobra.Command {
	var opts seedOptions

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed the asset catalog from a JSON file or S3 object",
		Long: "Loads a JSON array of asset records and inserts every asset whose assetId is not\n" +
			"already stored. Running it again with the same data inserts nothing.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := runSeed(cmd.Context(), opts, cmd.OutOrStdout())
			if err != nil {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Seed file path or s3://bucket/key (default: SEED_FILE)")
	cmd.Flags().StringVarP(&opts.databaseURL, "database-url", "d", "", "Database URL, postgres://... or sqlite://path (default: DATABASE_URL)")

	return cmd
}

func runSeed(ctx context.Context, opts seedOptions, out io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if opts.file != "" {
		if err := validator.SeedLocation(opts.file); err != nil {
			return fmt.Errorf("invalid --file: %w", err)
		}
		cfg.SeedFile = opts.file
	}
	if opts.databaseURL != "" {
		cfg.DatabaseURL = opts.databaseURL
	}

	_, _ = fmt.Fprintln(out, "Connecting to database...")
	dbManager, err := database.NewManager(database.NewConfig(cfg))
	if err != nil {
		return err
	}
	defer func() { _ = dbManager.Close() }()

	if err := dbManager.RunMigrations(); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(out, "Loading seed data from: %s\n", cfg.SeedFile)
	svc := services.NewSeedService(dbManager.DB(), services.SeedConfig{
		DefaultLocation: cfg.SeedFile,
		BatchSize:       cfg.SeedBatchSize,
		S3: seed.S3Options{
			Region:    cfg.SeedS3Region,
			Endpoint:  cfg.SeedS3Endpoint,
			PathStyle: cfg.SeedS3PathStyle,
		},
	}, nil)

	res, err := svc.SeedFromSource(ctx, "")
	if err != nil {
		return err
	}

	printSummary(out, res)
	return nil
}

func printSummary(out io.Writer, res *seed.Result) {
	_, _ = fmt.Fprintln(out, "\nSeed completed:")
	_, _ = fmt.Fprintf(out, "  Inserted: %d\n", res.Inserted)
	_, _ = fmt.Fprintf(out, "  Skipped (already exist): %d\n", res.Skipped)
	if len(res.Errors) > 0 {
		_, _ = fmt.Fprintf(out, "  Errors: %d\n", len(res.Errors))
		for _, e := range res.Errors {
			_, _ = fmt.Fprintf(out, "    - %s\n", e)
		}
	}
	_, _ = fmt.Fprintf(out, "\n%s\n", res.Message())
}
