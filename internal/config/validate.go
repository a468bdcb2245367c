package config

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/rileyhilliard/vitals/internal/errors"
)

var (
	validatorOnce sync.Once
	validatorInst *validator.Validate
)

// structValidator returns the shared validator. Field names in its errors
// are the YAML keys so messages match what the user wrote.
func structValidator() *validator.Validate {
	validatorOnce.Do(func() {
		validatorInst = validator.New(validator.WithRequiredStructEnabled())
		validatorInst.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validatorInst
}

// Validate checks the config for errors and returns a structured CONFIG error
// describing the first problem found.
func Validate(cfg *Config) error {
	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but vitals only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Grab the latest vitals release, or lower 'version' in your config.")
	}

	err := structValidator().Struct(cfg)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !stderrors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return errors.WrapWithCode(err, errors.ErrConfig, "Invalid config", "Check your vitals config file.")
	}

	fe := fieldErrs[0]
	key := yamlKey(fe)
	return errors.WrapWithCode(fieldError(fe), errors.ErrConfig,
		fmt.Sprintf("Invalid value for '%s'", key),
		suggestionFor(key))
}

// yamlKey turns a namespace like "Config.layout.mode" into "layout.mode".
func yamlKey(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func fieldError(fe validator.FieldError) error {
	switch fe.Tag() {
	case "oneof":
		return fmt.Errorf("'%v' is not one of: %s", fe.Value(), strings.ReplaceAll(fe.Param(), " ", ", "))
	case "min", "gte":
		return fmt.Errorf("'%v' is below the minimum of %s", fe.Value(), fe.Param())
	case "max", "lte":
		return fmt.Errorf("'%v' is above the maximum of %s", fe.Value(), fe.Param())
	default:
		return fmt.Errorf("'%v' failed the %s check", fe.Value(), fe.Tag())
	}
}

func suggestionFor(key string) string {
	switch key {
	case "layout.mode":
		return "Set layout.mode to 'adaptive' or 'fixed'."
	case "layout.cpu_group_size":
		return "Set layout.cpu_group_size to a number between 1 and 64."
	case "refresh.interval":
		return fmt.Sprintf("Set refresh.interval to %s or more, e.g. '1s'.", MinInterval)
	case "output.color":
		return "Set output.color to 'auto', 'always' or 'never'."
	default:
		return "Check your vitals config file."
	}
}
