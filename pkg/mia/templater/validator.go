package templater

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	miaerrors "github.com/horsimann/mia/go/miatools/pkg/mia/errors"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()

		// Report json names (namespace, skeleton_dir) instead of Go field names.
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// checkStruct validates s and maps the first failure to a readable error
// wrapping ErrInvalidIdentity or ErrInvalidLayout.
func checkStruct(s interface{}, contextName string) error {
	sentinel := miaerrors.ErrInvalidIdentity
	if _, ok := s.(Layout); ok {
		sentinel = miaerrors.ErrInvalidLayout
	}

	err := getValidator().Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return fmt.Errorf("%w: %s: %v", sentinel, contextName, err)
	}

	first := validationErrors[0]
	switch first.Tag() {
	case "required":
		return fmt.Errorf("%w: %s: %s must not be empty", sentinel, contextName, first.Field())
	case "excludes":
		return fmt.Errorf("%w: %s: %s %q must not contain %q", sentinel, contextName, first.Field(), first.Value(), first.Param())
	default:
		return fmt.Errorf("%w: %s: %s is invalid (%s)", sentinel, contextName, first.Field(), first.Tag())
	}
}
