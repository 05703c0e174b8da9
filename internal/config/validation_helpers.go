package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	dperrors "github.com/alexisbeaulieu97/datepick/pkg/errors"
)

// convertValidationError normalizes validator errors into datepick validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		if ve.Param() != "" {
			msg = fmt.Sprintf("%s (%s)", msg, ve.Param())
		}
		return dperrors.NewValidationError(field, msg, err)
	}

	return dperrors.NewValidationError("config", err.Error(), err)
}

// yamlFieldName drops the root struct name from the namespace; the tag
// name func has already mapped each segment to its yaml key.
func yamlFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	for i := 0; i < len(ns); i++ {
		if ns[i] == '.' {
			return ns[i+1:]
		}
	}
	return ns
}
