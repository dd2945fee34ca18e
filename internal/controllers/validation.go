package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/kifvxnorg/sky-pool-restaurant/internal/models"
)

// Report validation errors under the field's json name rather than the
// Go struct field name, so the API speaks the client's vocabulary.
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// bindInput binds the request body into input. On failure it writes a
// 400 response carrying the first violated field only (first-error-wins,
// never an aggregate) and returns false.
func bindInput(ctx *gin.Context, input any) bool {
	err := ctx.ShouldBindJSON(input)
	if err == nil {
		return true
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		first := fieldErrs[0]
		ctx.JSON(http.StatusBadRequest, models.NewValidationError(fieldMessage(first), fieldPath(first)))
		return false
	}

	// Malformed JSON or a type mismatch before validation ran
	ctx.JSON(http.StatusBadRequest, models.APIError{Message: "Invalid request body"})
	return false
}

// fieldPath returns the dotted path of the offending field, relative to
// the input struct.
func fieldPath(fe validator.FieldError) string {
	namespace := fe.Namespace()
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return fe.Field()
}

// fieldMessage renders a single human-readable message for the failed
// validation tag.
func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "url":
		return fmt.Sprintf("%s must be a valid URL", fe.Field())
	case "datetime":
		return fmt.Sprintf("%s must be a date in YYYY-MM-DD format", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), strings.Join(strings.Fields(fe.Param()), ", "))
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
