package list

// Config carries the configuration for a list.
type Config struct {
	// Number of elements that the list can hold before needing to grow its
	// node table.
	Capacity int
	// Maximum number of elements in the list, zero means no limit.
	MaxLen int
}

// DefaultConfig constructs a new Config instance initialized with the default
// configuration.
func DefaultConfig() *Config {
	return &Config{}
}

// Apply applies the list of options passed as arguments to c.
func (c *Config) Apply(options ...Option) {
	for _, opt := range options {
		opt.Configure(c)
	}
}

// Option is an interface implemented by options allowing configuration of new
// List instances.
type Option interface {
	Configure(*Config)
}

type option func(*Config)

func (opt option) Configure(config *Config) { opt(config) }

// Capacity is a list configuration option preallocating space for n elements.
//
// Default: 0
func Capacity(n int) Option {
	return option(func(config *Config) { config.Capacity = n })
}

// MaxLen is a list configuration option limiting the number of elements that
// the list can hold. Insertions in a full list fail with ErrNoNodes.
//
// Default: no limit
func MaxLen(n int) Option {
	return option(func(config *Config) { config.MaxLen = n })
}
