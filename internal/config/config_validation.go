package config

import (
	"fmt"

	dperrors "github.com/alexisbeaulieu97/datepick/pkg/errors"
)

// ValidateConfig performs structural and cross-field validation on an entire configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return dperrors.NewValidationError("config", "configuration is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	bounds, err := cfg.Bounds()
	if err != nil {
		return dperrors.NewValidationError("min_date", err.Error(), err)
	}
	if bounds.Empty() {
		return dperrors.NewValidationError("max_date", fmt.Sprintf("%s is before min_date %s", cfg.MaxDate, cfg.MinDate), nil)
	}

	return nil
}
