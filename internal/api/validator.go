package api

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"cloud.google.com/go/civil"
	"github.com/go-playground/validator/v10"

	app_errors "github.com/NotRyken/AdvancedChatLog/internal/errors"
)

var (
	validate *validator.Validate
	once     sync.Once
)

// getInstance lazily builds the shared validator with the custom tags used by
// the request DTOs.
func getInstance() *validator.Validate {
	once.Do(func() {
		validate = validator.New()
		// "timeofday" accepts a local time such as 14:32:07 or 14:32:07.123.
		_ = validate.RegisterValidation("timeofday", func(fl validator.FieldLevel) bool {
			_, err := civil.ParseTime(fl.Field().String())
			return err == nil
		})
	})
	return validate
}

// validateRequest checks payload against its `validate` tags and returns a
// wrapped app_errors.ErrValidation listing every failed field.
func validateRequest(payload interface{}) error {
	v := getInstance()
	err := v.Struct(payload)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: an unexpected error occurred during validation: %s", app_errors.ErrValidation, err.Error())
	}

	var errorMessages []string
	for _, fieldErr := range validationErrors {
		errMsg := fmt.Sprintf("Field '%s' failed on the '%s' tag", fieldErr.Field(), fieldErr.Tag())
		errorMessages = append(errorMessages, errMsg)
	}

	return fmt.Errorf("%w: %s", app_errors.ErrValidation, strings.Join(errorMessages, "; "))
}
