package handler

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/internal/dto"
	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/internal/export"
	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/internal/service"
	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/internal/table"
	apperrors "github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/pkg/errors"
	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/pkg/response"
)

var registerOnce sync.Once

// RegisterFieldNames makes binding errors name fields by their JSON key
func RegisterFieldNames() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return f.Name
			}
			return name
		})
	})
}

// bindError the first failing field of a binding error
func bindError(err error) *apperrors.ValidationError {
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) || len(ves) == 0 {
		return &apperrors.ValidationError{Field: "body", Reason: "malformed request"}
	}
	fe := ves[0]
	field := fe.Namespace()
	// drop the struct name
	if i := strings.IndexByte(field, '.'); i >= 0 {
		field = field[i+1:]
	}
	return &apperrors.ValidationError{Field: field, Reason: reason(fe)}
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return ""
	case "oneof":
		return "must be one of " + fe.Param()
	case "len":
		return fmt.Sprintf("must be %s characters", fe.Param())
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "numeric":
		return "must contain digits only"
	case "email":
		return "must be a valid email address"
	case "datetime":
		return "must be a date formatted " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	default:
		return "is invalid"
	}
}

// formRejected answers a rejected form with the first failing field and the submitted values
func formRejected(c *gin.Context, status, code int, message, field string, form any) {
	response.ErrorWithData(c, status, code, message, dto.FormErrorResponse{Field: field, Values: form})
}

// handleError maps service errors to responses. form, when not nil, is echoed back so
// the UI can keep what the user entered.
func handleError(c *gin.Context, err error, form any) {
	_ = c.Error(err)

	if ve, ok := apperrors.AsValidation(err); ok {
		formRejected(c, http.StatusBadRequest, response.CodeValidation, ve.Error(), ve.Field, form)
		return
	}
	if fe, ok := apperrors.AsFile(err); ok {
		formRejected(c, http.StatusBadRequest, response.CodeFileRejected, fe.Error(), "", form)
		return
	}
	if ue, ok := apperrors.AsUpstream(err); ok {
		handleUpstream(c, ue, form)
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrNoSession):
		response.Unauthorized(c, response.CodeUnauthenticated, "authentication required")
	case errors.Is(err, table.ErrUnknownColumn),
		errors.Is(err, table.ErrNotSearchable),
		errors.Is(err, table.ErrNotFilterable),
		errors.Is(err, table.ErrNotSortable):
		response.BadRequest(c, response.CodeBadRequest, err.Error())
	case errors.Is(err, service.ErrNoPictureField):
		response.BadRequest(c, response.CodeFileRejected, err.Error())
	case errors.Is(err, service.ErrUnknownEntity):
		response.NotFound(c, response.CodeNotFound, err.Error())
	case errors.Is(err, export.ErrEmpty):
		response.Error(c, http.StatusUnprocessableEntity, response.CodeNothingToExport, "no rows to export")
	case errors.Is(err, service.ErrInvalidCredentials):
		response.Unauthorized(c, response.CodeInvalidCredentials, "invalid username or password")
	default:
		response.InternalError(c)
	}
}

func handleUpstream(c *gin.Context, ue *apperrors.UpstreamError, form any) {
	msg := ue.Message
	if msg == "" {
		msg = http.StatusText(ue.Status)
	}
	switch {
	case ue.NotFound():
		response.NotFound(c, response.CodeNotFound, msg)
	case ue.Unauthorized():
		response.Unauthorized(c, response.CodeUnauthenticated, "session expired, please sign in again")
	case ue.Status >= 400 && ue.Status < 500:
		formRejected(c, ue.Status, response.CodeUpstreamRejected, msg, "", form)
	default:
		response.ErrorWithData(c, http.StatusBadGateway, response.CodeUpstream, msg, dto.FormErrorResponse{Values: form})
	}
}
