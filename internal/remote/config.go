package remote

// Config holds the settings of the planning server client.
type Config struct {
	BaseURL   string
	TimeoutMs int
	LogCalls  bool
}

// DefaultConfig targets the development server on localhost.
func DefaultConfig() Config {
	return Config{
		BaseURL:   "http://localhost:8000",
		TimeoutMs: 10000,
		LogCalls:  false,
	}
}
