package handler

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stpnv0/TennisHub/internal/domain"
	"github.com/stpnv0/TennisHub/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

var jsonNamesOnce sync.Once

// useJSONFieldNames makes validation errors report JSON field names instead
// of Go struct field names.
func useJSONFieldNames() {
	jsonNamesOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	var remoteErr *domain.RemoteError
	switch {
	case errors.As(err, &remoteErr):
		label := dto.LabelRemoteUnavailable
		if remoteErr.StatusCode == http.StatusNotFound {
			label = dto.LabelNotFound
		}
		respond(c, remoteErr.StatusCode, label, remoteErr.Error(), nil)

	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrNotMember):
		respond(c, http.StatusNotFound, dto.LabelNotFound, err.Error(), nil)

	case errors.Is(err, domain.ErrAlreadyMember),
		errors.Is(err, domain.ErrCapacityExceeded),
		errors.Is(err, domain.ErrUsernameTaken),
		errors.Is(err, domain.ErrEmailTaken):
		respond(c, http.StatusConflict, dto.LabelConflict, err.Error(), nil)

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidRange):
		respond(c, http.StatusBadRequest, dto.LabelInvalidInput, err.Error(), nil)

	default:
		respond(c, http.StatusInternalServerError, dto.LabelInternal, "internal server error", nil)
	}
}

// bindError answers a request whose body could not be decoded or validated.
func (h *Handler) bindError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		respond(c, http.StatusBadRequest, dto.LabelInvalidInput, "malformed request body: "+err.Error(), nil)
		return
	}

	fields := make(map[string]string, len(vErrs))
	for _, fe := range vErrs {
		fields[fe.Field()] = fieldMessage(fe)
	}
	respond(c, http.StatusBadRequest, dto.LabelInvalidInput, "validation failed", fields)
}

func abortInvalid(c *ginext.Context, msg string) {
	respond(c, http.StatusBadRequest, dto.LabelInvalidInput, msg, nil)
}

func respond(c *ginext.Context, status int, label, msg string, fields map[string]string) {
	c.JSON(status, dto.ErrorResponse{
		Status:  status,
		Error:   label,
		Message: msg,
		Fields:  fields,
	})
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must not exceed %s characters", fe.Param())
		}
		return fmt.Sprintf("must not exceed %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	default:
		return fmt.Sprintf("failed on %q", fe.Tag())
	}
}
