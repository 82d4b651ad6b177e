package config

// Exported for tests.
var (
	ResolveToken = resolveToken
	Validate     = validate
)
