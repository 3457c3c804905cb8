package cmd

import (
	"context"
	"fmt"
	"os"

	"blob-store/core/config"
	"blob-store/core/logger"
	"blob-store/feature/blob"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "blob-store",
	Short: "Blob Store",
	Long: `Blob Store reads and writes objects in S3-compatible and Google Cloud Storage buckets.
It can be used from the command line or run as an HTTP gateway.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with the debug (development) config for readable CLI errors
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

// bootstrap loads the configuration and opens the blob service. The caller
// closes the service and syncs the logger.
func bootstrap(ctx context.Context) (*config.Config, *zap.Logger, *blob.Service, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "failed to load config")
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "failed to create logger")
	}

	svc, err := blob.Open(ctx, blob.Options{
		Storage: cfg.Storage,
		Logger:  logg,
	})
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "failed to create storage client")
	}

	return cfg, logg, svc, nil
}

// objectArgs reads bucket and key from the trailing arguments. A lone key
// uses the bucket from the storage configuration.
func objectArgs(cfg *config.Config, args []string) (string, string, error) {
	if len(args) == 2 {
		return args[0], args[1], nil
	}
	if cfg.Storage.Bucket == "" {
		return "", "", errors.New("no bucket given and STORAGE_BUCKET is not set")
	}
	return cfg.Storage.Bucket, args[0], nil
}
