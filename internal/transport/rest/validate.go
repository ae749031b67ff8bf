package rest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	validatorv10 "github.com/go-playground/validator/v10"
)

// ValidationError is a user-correctable input problem, detected before any
// business logic runs.
type ValidationError struct {
	Fields map[string]string
	msg    string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.msg
	}
	parts := make([]string, 0, len(e.Fields))
	for f, m := range e.Fields {
		parts = append(parts, f+": "+m)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func newValidator() *validatorv10.Validate {
	return validatorv10.New(validatorv10.WithRequiredStructEnabled())
}

// bind decodes the JSON body into out and validates it. Unknown fields are
// rejected rather than silently dropped; every operation has an explicit
// input schema.
func bind(r *http.Request, out any, v *validatorv10.Validate) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(out); err != nil {
		return &ValidationError{msg: fmt.Sprintf("invalid request body: %v", err)}
	}

	if err := v.Struct(out); err != nil {
		fields := map[string]string{}
		if ve, ok := err.(validatorv10.ValidationErrors); ok {
			for _, fe := range ve {
				fields[fe.StructNamespace()] = fe.Tag()
			}
		}
		return &ValidationError{Fields: fields, msg: err.Error()}
	}
	return nil
}
