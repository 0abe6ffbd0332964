package response

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation"
	"go.uber.org/zap"
)

// Err is the body of every error response.
type Err struct {
	Err            error `json:"-"` // low-level runtime error
	HTTPStatusCode int   `json:"-"`

	Timestamp        time.Time         `json:"timestamp"`
	Status           int               `json:"status"`
	StatusText       string            `json:"error"`
	Message          string            `json:"message"`
	Path             string            `json:"path"`
	Success          bool              `json:"success"`
	ValidationErrors map[string]string `json:"validation_errors,omitempty"`
}

func (e *Err) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *Err) Unwrap() error {
	return e.Err
}

func RenderErr(ctx *gin.Context, e *Err) {
	e.Timestamp = time.Now().UTC()
	e.Path = ctx.Request.URL.Path

	if e.HTTPStatusCode >= http.StatusInternalServerError {
		zap.L().Error("request failed",
			zap.String("request_id", requestid.Get(ctx)),
			zap.String("path", e.Path),
			zap.Error(e.Err),
		)
	}

	ctx.AbortWithStatusJSON(e.HTTPStatusCode, e)
}

func newErr(status int, err error, message string) *Err {
	return &Err{
		Err:            err,
		HTTPStatusCode: status,
		Status:         status,
		StatusText:     http.StatusText(status),
		Message:        message,
	}
}

// ErrBadRequest turns ozzo validation errors into field level errors.
func ErrBadRequest(err error) *Err {
	var fields validation.Errors
	if errors.As(err, &fields) {
		return ErrValidation(flatten(fields))
	}

	return newErr(http.StatusBadRequest, err, err.Error())
}

// ErrValidation reports field errors keyed by JSON field name.
func ErrValidation(fields map[string]string) *Err {
	e := newErr(http.StatusBadRequest, errors.New("validation failed"), "Erreurs de validation")
	e.ValidationErrors = fields

	return e
}

func ErrNotFound(resource, key string, value any) *Err {
	msg := fmt.Sprintf("%s with %s=%v not found", resource, key, value)

	return newErr(http.StatusNotFound, errors.New(msg), msg)
}

func ErrConflict(err error) *Err {
	return newErr(http.StatusConflict, err, err.Error())
}

func ErrUnauthorized(err error) *Err {
	return newErr(http.StatusUnauthorized, err, "authentication required")
}

func ErrWrongCredentials(err error) *Err {
	return newErr(http.StatusUnauthorized, err, "email or password is incorrect")
}

func ErrPermissionDenied(err error) *Err {
	return newErr(http.StatusForbidden, err, "permission denied")
}

func ErrTooManyRequests() *Err {
	return newErr(http.StatusTooManyRequests, errors.New("rate limit exceeded"), "too many requests")
}

func ErrTooLarge(limit int64) *Err {
	msg := fmt.Sprintf("request body exceeds %d bytes", limit)

	return newErr(http.StatusRequestEntityTooLarge, errors.New(msg), msg)
}

// ErrServiceUnavailable reports a Google service that is not initialised or
// switched off.
func ErrServiceUnavailable(message string) *Err {
	return newErr(http.StatusBadRequest, errors.New(message), message)
}

// ErrInternalServerError hides the cause from the client. It is logged by RenderErr.
func ErrInternalServerError(err error) *Err {
	return newErr(http.StatusInternalServerError, err, "internal server error")
}

func flatten(fields validation.Errors) map[string]string {
	out := make(map[string]string, len(fields))
	for k, err := range fields {
		var nested validation.Errors
		if errors.As(err, &nested) {
			for nk, nv := range flatten(nested) {
				out[k+"."+nk] = nv
			}
			continue
		}
		out[k] = err.Error()
	}

	return out
}
