package config

// IServiceConfiguration defines a configuration structure which can be
// loaded from the environment and validated.
type IServiceConfiguration interface {
	// Validate validates configuration entries.
	Validate() error
}

// Validator is implemented by any configuration structure able to check itself.
type Validator = IServiceConfiguration
