package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	trelliserrors "github.com/alexisbeaulieu97/trellis/pkg/errors"
)

// convertValidationError normalizes validator errors into trellis validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		if ve.Param() != "" {
			msg = fmt.Sprintf("%s failed validation for tag '%s=%s'", field, ve.Tag(), ve.Param())
		}
		return trelliserrors.NewValidationError(field, msg, err)
	}

	return trelliserrors.NewValidationError("config", err.Error(), err)
}

// yamlishFieldName turns a namespace such as "Config.keymap.up[0]" into
// "keymap.up[0]". Field names come from yaml tags.
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.Namespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		parts[i] = strings.ToLower(part)
	}
	return strings.Join(parts, ".")
}
