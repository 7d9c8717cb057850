package http

import (
	"regexp"

	"crew-safety-backend/internal/domain/branch"

	"github.com/go-playground/validator/v10"
)

// Reusable error payload
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
type ErrorResponse struct {
	Error   string       `json:"error"`
	Details []FieldError `json:"details,omitempty"`
}

var reDate = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

type CustomValidator struct{ v *validator.Validate }

func NewValidator() *CustomValidator {
	v := validator.New()

	// branch/location must resolve to a known branch (any spelling)
	_ = v.RegisterValidation("branchtoken", func(fl validator.FieldLevel) bool {
		return branch.Canonical(fl.Field().String()).IsValid()
	})
	// calendar date in wire form YYYY-MM-DD
	_ = v.RegisterValidation("wiredate", func(fl validator.FieldLevel) bool {
		return reDate.MatchString(fl.Field().String())
	})

	return &CustomValidator{v: v}
}

func (cv *CustomValidator) Validate(i any) error { return cv.v.Struct(i) }

// Map validator.ValidationErrors → []FieldError with readable messages.
func ToFieldErrors(err error) []FieldError {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "_", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(ve))
	for _, e := range ve {
		field := e.Field()
		switch e.Tag() {
		case "required":
			out = append(out, FieldError{Field: field, Message: "is required"})
		case "branchtoken":
			out = append(out, FieldError{Field: field, Message: "is not a known branch"})
		case "wiredate":
			out = append(out, FieldError{Field: field, Message: "must be a date in YYYY-MM-DD form"})
		case "email":
			out = append(out, FieldError{Field: field, Message: "must be a valid email address"})
		case "url":
			out = append(out, FieldError{Field: field, Message: "must be a valid URL"})
		default:
			out = append(out, FieldError{Field: field, Message: e.Tag() + " validation failed"})
		}
	}
	return out
}
