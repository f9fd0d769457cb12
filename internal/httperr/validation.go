package httperr

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// FieldError is one rejected input field. Validation problems are
// accumulated and returned together so the caller can fix them all at once.
type FieldError struct {
	Field string `json:"field"`
	Code  string `json:"code"`
}

type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	codes := make([]string, 0, len(v))
	for _, fe := range v {
		codes = append(codes, fe.Field+":"+fe.Code)
	}
	return strings.Join(codes, ", ")
}

func (v *ValidationErrors) Add(field, code string) {
	*v = append(*v, FieldError{Field: field, Code: code})
}

func (v ValidationErrors) HasErrors() bool {
	return len(v) > 0
}

func IsValidation(err error) (ValidationErrors, bool) {
	var ve ValidationErrors
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

func WriteValidation(c *gin.Context, errs ValidationErrors) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error_code": "validation_failed",
		"fields":     errs,
	})
}
