package blob

import "github.com/cockroachdb/errors"

// Error classes returned by the Service. Errors are marked rather than
// wrapped, so Error() and the original cause are unchanged; test for a class
// with errors.Is or the Is* helpers.
var (
	ErrConfiguration      = errors.New("configuration error")
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrNotFound           = errors.New("object not found")
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrFileNotFound       = errors.New("file not found")
	ErrIO                 = errors.New("I/O error")
	ErrWriteFailed        = errors.New("write failed")
)

// IsConfiguration reports whether err is marked ErrConfiguration.
func IsConfiguration(err error) bool { return errors.Is(err, ErrConfiguration) }

// IsInvalidArgument reports whether err is marked ErrInvalidArgument.
func IsInvalidArgument(err error) bool { return errors.Is(err, ErrInvalidArgument) }

// IsNotFound reports whether err is marked ErrNotFound.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsStorageUnavailable reports whether err is marked ErrStorageUnavailable.
func IsStorageUnavailable(err error) bool { return errors.Is(err, ErrStorageUnavailable) }

// IsFileNotFound reports whether err is marked ErrFileNotFound.
func IsFileNotFound(err error) bool { return errors.Is(err, ErrFileNotFound) }

// IsIO reports whether err is marked ErrIO.
func IsIO(err error) bool { return errors.Is(err, ErrIO) }

// IsWriteFailed reports whether err is marked ErrWriteFailed.
func IsWriteFailed(err error) bool { return errors.Is(err, ErrWriteFailed) }

func invalidArgumentf(format string, args ...interface{}) error {
	return errors.Mark(errors.Newf(format, args...), ErrInvalidArgument)
}
