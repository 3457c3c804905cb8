package blob

// CacheControlPublic is the Cache-Control value set by WithCacheControl.
const CacheControlPublic = "max-age=3600, public"

// WriteOption sets optional object metadata on a write.
type WriteOption func(*writeOptions)

type writeOptions struct {
	contentType    string
	hasContentType bool
	cacheControl   bool
}

// WithContentType sets the object's content type. Without it the backend
// default applies.
func WithContentType(contentType string) WriteOption {
	return func(o *writeOptions) {
		o.contentType = contentType
		o.hasContentType = true
	}
}

// WithCacheControl sets Cache-Control to CacheControlPublic when enabled.
func WithCacheControl(enabled bool) WriteOption {
	return func(o *writeOptions) {
		o.cacheControl = enabled
	}
}
