package blob_test

import (
	"fmt"
	"strings"
	"testing"

	"blob-store/feature/blob"

	"github.com/cockroachdb/datadriven"
)

func TestParseLocation(t *testing.T) {
	datadriven.RunTest(t, "testdata/location", func(t *testing.T, d *datadriven.TestData) string {
		switch d.Cmd {
		case "parse":
			loc, err := blob.ParseLocation(strings.TrimSpace(d.Input))
			if err != nil {
				if blob.IsInvalidArgument(err) {
					return fmt.Sprintf("invalid argument: %v", err)
				}
				return fmt.Sprintf("error: %v", err)
			}
			return fmt.Sprintf("bucket: %s\nkey: %s\nstring: %s", loc.Bucket, loc.Key, loc)

		default:
			t.Fatalf("unknown command: %s", d.Cmd)
			return ""
		}
	})
}
