package cmd

import (
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var getOutput string

// getCmd represents the get command
var getCmd = &cobra.Command{
	Use:   "get <path> | get [bucket] <key>",
	Short: "Download an object",
	Long: `Reads an object and writes it to stdout or to the file given with --output.
The object is named either by a path such as gs://bucket/dir/file or by bucket
and key. A lone key without a scheme uses the configured STORAGE_BUCKET.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, logg, svc, err := bootstrap(ctx)
		if err != nil {
			return err
		}
		defer logg.Sync()
		defer svc.Close()

		var rc io.ReadCloser
		if len(args) == 1 && strings.Contains(args[0], "://") {
			rc, err = svc.ReadObjectFromPath(ctx, args[0])
		} else {
			bucket, key, aerr := objectArgs(cfg, args)
			if aerr != nil {
				return aerr
			}
			rc, err = svc.ReadObject(ctx, bucket, key)
		}
		if err != nil {
			return err
		}
		defer rc.Close()

		out := io.Writer(cmd.OutOrStdout())
		if getOutput != "" {
			f, err := os.Create(getOutput)
			if err != nil {
				return errors.Wrap(err, "failed to create output file")
			}
			defer f.Close()
			out = f
		}

		n, err := io.Copy(out, rc)
		if err != nil {
			return err
		}
		logg.Debug("Object downloaded", zap.Int64("bytes", n))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(getCmd)
	getCmd.Flags().StringVarP(&getOutput, "output", "o", "", "Write the object to this file instead of stdout")
}
