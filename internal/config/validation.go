package config

import (
	"os"
	"regexp"
	"slices"
)

// appSuffixPattern matches characters allowed in an Angular module name suffix.
var appSuffixPattern = regexp.MustCompile(`^[A-Za-z0-9_$]*$`)

// validLogLevels lists the accepted --log-level values.
var validLogLevels = []string{"debug", "info", "warn", "error"}

// Validate checks the invocation options for correctness.
func (o Options) Validate() error {
	var errs ValidationErrors

	if !appSuffixPattern.MatchString(o.AppSuffix) {
		errs = append(errs, ValidationError{
			Flag:    "app-suffix",
			Message: "may only contain letters, digits, '_' and '$'",
			Value:   o.AppSuffix,
			Wrapped: ErrInvalidAppSuffix,
		})
	}

	if o.LogLevel != "" && !slices.Contains(validLogLevels, o.LogLevel) {
		errs = append(errs, ValidationError{
			Flag:    "log-level",
			Message: "must be one of: debug, info, warn, error",
			Value:   o.LogLevel,
			Wrapped: ErrInvalidLogLevel,
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ApplyEnvOverrides applies environment variable overrides to the options.
// Explicitly set options keep priority over the environment.
func ApplyEnvOverrides(o *Options) {
	if level := os.Getenv("NGFS_LOG_LEVEL"); level != "" && o.LogLevel == "" {
		o.LogLevel = level
	}
	if noColor := os.Getenv("NGFS_NO_COLOR"); noColor == "true" || noColor == "1" {
		o.NoColor = true
	}
	if skip := os.Getenv("NGFS_SKIP_INSTALL"); skip == "true" || skip == "1" {
		o.SkipInstall = true
	}
}
