package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"trade-ledger/core/config"
	"trade-ledger/core/logger"
	"trade-ledger/core/storage"

	"github.com/minio/minio-go/v7"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect and publish the card catalog",
}

var catalogLookupCmd = &cobra.Command{
	Use:   "lookup <name>",
	Short: "Resolve a card name against the configured catalog",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := bootstrapCLI()
		if err != nil {
			return err
		}
		defer logg.Sync()

		cat, err := loadCatalog(cmd.Context(), cfg, logg)
		if err != nil {
			return fmt.Errorf("failed to load catalog: %w", err)
		}

		name := strings.Join(args, " ")
		card, ok := cat.Catalog().Lookup(name)
		if !ok {
			return fmt.Errorf("card not found: %q", name)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Name:      %s\n", card.Name())
		fmt.Fprintf(out, "Printings: %s\n", strings.Join(card.Printings(), ", "))
		fmt.Fprintf(out, "Types:     %s\n", strings.Join(card.Types(), ", "))
		return nil
	},
}

var catalogStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Load the configured catalog and report its size",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := bootstrapCLI()
		if err != nil {
			return err
		}
		defer logg.Sync()

		cat, err := loadCatalog(cmd.Context(), cfg, logg)
		if err != nil {
			return fmt.Errorf("failed to load catalog: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Source: %s\nCards:  %d\n", cfg.Catalog.Source, cat.Catalog().Len())
		return nil
	},
}

var catalogUploadCmd = &cobra.Command{
	Use:   "upload <file>",
	Short: "Upload an AtomicCards JSON file to the catalog bucket",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := bootstrapCLI()
		if err != nil {
			return err
		}
		defer logg.Sync()

		object, _ := cmd.Flags().GetString("object")
		if object == "" {
			object = cfg.Catalog.Object
		}
		if object == "" {
			object = filepath.Base(args[0])
		}

		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", args[0], err)
		}
		defer f.Close()
		info, err := f.Stat()
		if err != nil {
			return fmt.Errorf("failed to stat %s: %w", args[0], err)
		}

		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		if err := storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region); err != nil {
			return err
		}

		up, err := client.PutObject(ctx, cfg.Storage.Bucket, object, f, info.Size(),
			minio.PutObjectOptions{ContentType: "application/json"})
		if err != nil {
			return fmt.Errorf("failed to upload catalog: %w", err)
		}

		logg.Info("Catalog uploaded",
			zap.String("bucket", up.Bucket),
			zap.String("object", up.Key),
			zap.Int64("size", up.Size))
		return nil
	},
}

// bootstrapCLI loads configuration and a logger for one-shot commands.
func bootstrapCLI() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to init logger: %w", err)
	}
	return cfg, logg, nil
}

func init() {
	catalogUploadCmd.Flags().String("object", "", "Object name (defaults to the configured catalog object)")

	catalogCmd.AddCommand(catalogLookupCmd, catalogStatsCmd, catalogUploadCmd)
	RootCmd.AddCommand(catalogCmd)
}
