package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator"
)

var validate = validator.New()

// DecodeAndValidate decodes the request body into dest (with
// DisallowUnknownFields) and runs struct-tag validation on it. On decode or
// validation failure it writes a 400 JSON error with field-level messages and
// returns false. Callers should return immediately when it returns false.
func DecodeAndValidate(w http.ResponseWriter, r *http.Request, dest any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dest); err != nil {
		WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		return false
	}
	if err := validate.Struct(dest); err != nil {
		WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, validationMessage(err))
		return false
	}
	return true
}

// validationMessage flattens validator errors into "field: rule" messages.
func validationMessage(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", fieldName(fe.Field())))
		case "email":
			msgs = append(msgs, fmt.Sprintf("%s must be a valid email address", fieldName(fe.Field())))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s validation", fieldName(fe.Field()), fe.Tag()))
		}
	}
	return strings.Join(msgs, "; ")
}

// fieldName converts a Go field name to its snake_case JSON form.
func fieldName(name string) string {
	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r - 'A' + 'a')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
