package cmd

import (
	"blob-store/feature/blob"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	putContentType  string
	putCacheControl bool
)

// putCmd represents the put command
var putCmd = &cobra.Command{
	Use:   "put [bucket] <key> <file>",
	Short: "Upload a local file as an object",
	Long: `Uploads a local file, creating or replacing the object.
The file is read into memory before it is sent.
Without a bucket argument the configured STORAGE_BUCKET is used.`,
	Args: cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		file := args[len(args)-1]

		cfg, logg, svc, err := bootstrap(ctx)
		if err != nil {
			return err
		}
		defer logg.Sync()
		defer svc.Close()

		bucket, key, err := objectArgs(cfg, args[:len(args)-1])
		if err != nil {
			return err
		}

		opts := []blob.WriteOption{blob.WithCacheControl(putCacheControl)}
		if cmd.Flags().Changed("content-type") {
			opts = append(opts, blob.WithContentType(putContentType))
		}

		if err := svc.UploadObject(ctx, bucket, key, file, opts...); err != nil {
			return err
		}

		logg.Info("Object uploaded",
			zap.String("bucket", bucket),
			zap.String("key", key),
			zap.String("file", file),
		)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(putCmd)
	putCmd.Flags().StringVar(&putContentType, "content-type", "", "Content type stored with the object")
	putCmd.Flags().BoolVar(&putCacheControl, "cache-control", false, "Set Cache-Control: "+blob.CacheControlPublic)
}
