package v1handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"maike/pkg/domain"
	"maike/pkg/logger"
	"maike/pkg/serrors"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// maxJSONBodyBytes caps JSON request bodies.
const maxJSONBodyBytes = 1 << 20

const msgValidation = "Validation Error"

var validate = newValidator() //nolint: gochecknoglobals

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})
	// catalog=<attribute> accepts only the values the form offers
	if err := v.RegisterValidation("catalog", func(fl validator.FieldLevel) bool {
		return domain.InCatalog(fl.Param(), fl.Field().String())
	}); err != nil {
		panic(err)
	}

	return v
}

// lengthMessages are shown when a field breaks its min/max rule.
var lengthMessages = map[string]string{ //nolint: gochecknoglobals
	"username": "Username must be between 2 and 30 characters",
	"password": "Password must be between 6 and 30 characters",
}

func label(field string) string {
	if field == "" {
		return field
	}

	return strings.ToUpper(field[:1]) + field[1:]
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s field is required", label(fe.Field()))
	case "email":
		return "Email is invalid"
	case "min", "max":
		if msg, ok := lengthMessages[fe.Field()]; ok {
			return msg
		}

		return fmt.Sprintf("%s has an invalid length", label(fe.Field()))
	case "catalog":
		return fmt.Sprintf("%s is not a valid option", fe.Field())
	case "uuid":
		return fmt.Sprintf("%s must be a valid id", label(fe.Field()))
	case "http_url":
		return fmt.Sprintf("%s must be an absolute http(s) URL", label(fe.Field()))
	default:
		return fmt.Sprintf("%s is invalid", label(fe.Field()))
	}
}

func validationError(fields map[string]string) error {
	return serrors.With(serrors.ErrBadRequest, msgValidation).WithFields(fields)
}

// validateStruct runs the validate tags of dst and converts failures into a
// BAD_REQUEST error with one message per field.
func validateStruct(dst any) error {
	err := validate.Struct(dst)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("could not validate request: %w", err)
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		if _, seen := fields[fe.Field()]; !seen {
			fields[fe.Field()] = fieldMessage(fe)
		}
	}

	return validationError(fields)
}

// normalizer is implemented by requests that clean up their fields before
// validation.
type normalizer interface {
	normalize()
}

// decodeAndValidate decodes the JSON request body into dst, normalizes and
// validates it. On failure it writes an error response and returns false.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, msgValidation).
			WithFields(map[string]string{"body": "invalid JSON"}))

		return false
	}
	if n, ok := dst.(normalizer); ok {
		n.normalize()
	}
	if err := validateStruct(dst); err != nil {
		writeError(w, r, err)

		return false
	}

	return true
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error(r.Context(), "failed to encode response", zap.Error(err))
	}
}

// pathUUID parses a UUID path parameter.
func pathUUID(r *http.Request, param string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, param))
	if err != nil {
		return uuid.Nil, validationError(map[string]string{param: label(param) + " must be a valid id"})
	}

	return id, nil
}
