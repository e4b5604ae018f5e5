package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" || cfg.App.AdminPassword == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.RateLimit.MaxAttempts < 1 || cfg.RateLimit.LockoutWindow <= 0 {
		return ErrInvalidRateLimitConfigs
	}

	if cfg.Storage.Blob.RecordsStore == "" ||
		cfg.Storage.Blob.RateLimitStore == "" ||
		cfg.Storage.Blob.StatsStore == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}
