package v1

// Option configures a Client.
type Option func(*clientConfig)

type clientConfig struct {
	scope     string
	storePath string
}

// WithScope forces a specific scope (global or project).
func WithScope(scope string) Option {
	return func(c *clientConfig) {
		c.scope = scope
	}
}

// WithStorePath targets a specific store file, bypassing scope resolution and
// mutation history.
func WithStorePath(path string) Option {
	return func(c *clientConfig) {
		c.storePath = path
	}
}
