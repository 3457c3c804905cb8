package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// statCmd represents the stat command
var statCmd = &cobra.Command{
	Use:   "stat [bucket] <key>",
	Short: "Show an object's size and metadata",
	Long: `Prints an object's size and metadata.
Without a bucket argument the configured STORAGE_BUCKET is used.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, logg, svc, err := bootstrap(ctx)
		if err != nil {
			return err
		}
		defer logg.Sync()
		defer svc.Close()

		bucket, key, err := objectArgs(cfg, args)
		if err != nil {
			return err
		}

		attrs, err := svc.StatObject(ctx, bucket, key)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Bucket:        %s\n", attrs.Bucket)
		fmt.Fprintf(out, "Key:           %s\n", attrs.Key)
		fmt.Fprintf(out, "Size:          %d\n", attrs.Size)
		fmt.Fprintf(out, "Content-Type:  %s\n", attrs.ContentType)
		fmt.Fprintf(out, "Cache-Control: %s\n", attrs.CacheControl)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(statCmd)
}
