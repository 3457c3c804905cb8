package blob

import "strings"

// Location names an object by bucket and key.
type Location struct {
	Bucket string
	Key    string
}

// String returns the location as "bucket/key".
func (l Location) String() string {
	return l.Bucket + "/" + l.Key
}

// ParseLocation parses a slash-delimited storage path such as
// "gs://bucket/dir/object". The third segment is the bucket and every segment
// after it, rejoined with "/", is the key. The scheme is not inspected.
func ParseLocation(path string) (Location, error) {
	parts := strings.Split(path, "/")
	if len(parts) < 4 {
		return Location{}, invalidArgumentf("path %q has %d segments, want at least 4", path, len(parts))
	}

	loc := Location{
		Bucket: parts[2],
		Key:    strings.Join(parts[3:], "/"),
	}
	if loc.Bucket == "" {
		return Location{}, invalidArgumentf("path %q has an empty bucket", path)
	}
	if loc.Key == "" {
		return Location{}, invalidArgumentf("path %q has an empty object key", path)
	}
	return loc, nil
}
