package generator

import "time"

// Options configures board generation behavior.
type Options struct {
	Seed    int64         // Seed for reproducible boards (0 = random)
	Timeout time.Duration // Timeout limits one generation run
}

// DefaultOptions returns standard generator options.
func DefaultOptions() *Options {
	return &Options{
		Seed:    0,
		Timeout: 10 * time.Second,
	}
}
