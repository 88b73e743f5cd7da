package http

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// panics only on an invalid tag registration, which is programmer error
	if err := v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// validationMessage flattens the first violation into a client-facing
// sentence.
func validationMessage(err error) string {
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return "invalid payload"
	}

	fe := errs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("field %s is required", fe.Field())
	case "min":
		return fmt.Sprintf("field %s is too short (min %s)", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("field %s is too long (max %s)", fe.Field(), fe.Param())
	case "email":
		return "email is not valid"
	case "eqfield":
		return "passwords do not match"
	case "slug":
		return fmt.Sprintf("field %s is not a valid slug", fe.Field())
	case "oneof":
		return fmt.Sprintf("field %s must be one of: %s", fe.Field(), fe.Param())
	case "gt", "gte":
		return fmt.Sprintf("field %s is out of range", fe.Field())
	default:
		return fmt.Sprintf("field %s is invalid", fe.Field())
	}
}
