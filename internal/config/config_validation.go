package config

import (
	"fmt"

	trelliserrors "github.com/alexisbeaulieu97/trellis/pkg/errors"
)

// ValidateConfig checks struct tags and then rejects keys bound to more than
// one action.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return trelliserrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	return validateKeymapConflicts(cfg.Keymap)
}

// validateKeymapConflicts only considers overridden bindings: the defaults are
// conflict free, and an override may take over a key a default used.
func validateKeymapConflicts(km KeymapConfig) error {
	owners := make(map[string]string)
	for _, b := range km.bindings() {
		for _, k := range b.keys {
			if owner, taken := owners[k]; taken && owner != b.name {
				field := "keymap." + b.name
				msg := fmt.Sprintf("key %q is already bound to %s", k, owner)
				return trelliserrors.NewValidationError(field, msg, nil)
			}
			owners[k] = b.name
		}
	}
	return nil
}
