package httpx

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationFields flattens validator errors into a field to message map
// suitable for ValidationProblem.
func ValidationFields(err error) map[string]string {
	fields := make(map[string]string)
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fieldErr := range verrs {
			fields[strings.ToLower(fieldErr.Field())] = "failed '" + fieldErr.Tag() + "' validation"
		}
		return fields
	}
	if err != nil {
		fields["general"] = err.Error()
	}
	return fields
}
