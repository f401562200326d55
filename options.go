package wadlevel

// Option configures how an archive is opened.
type Option func(*options)

type options struct {
	strictIdentification bool
	defaultPaths         []string
}

// DefaultPaths are tried in order by OpenDefault and by Open with an empty filename.
var DefaultPaths = []string{"doom1.wad", "DOOM1.WAD"}

func defaultOptions() *options {
	return &options{
		defaultPaths: DefaultPaths,
	}
}

func applyOptions(opts []Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithStrictIdentification rejects archives whose header tag is neither
// "IWAD" nor "PWAD". By default the tag is decoded but not checked.
func WithStrictIdentification() Option {
	return func(o *options) {
		o.strictIdentification = true
	}
}

// WithDefaultPaths replaces the locations OpenDefault searches.
// Empty lists are ignored.
func WithDefaultPaths(paths ...string) Option {
	return func(o *options) {
		if len(paths) > 0 {
			o.defaultPaths = paths
		}
	}
}
