package failure

import (
	"context"
	"errors"
	"net/http"
)

// Failure is an error that carries the HTTP status it should be answered with.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var ForbiddenError = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions"}

func (e *Failure) Error() string {
	return e.Message
}

// Is matches any Failure with the same code and message, so sentinel values survive copies.
func (e *Failure) Is(target error) bool {
	var other *Failure
	if !errors.As(target, &other) {
		return false
	}

	return e.Code == other.Code && e.Message == other.Message
}

func New(code int, msg string) error {
	return &Failure{Code: code, Message: msg}
}

func fromError(code int, err error) error {
	if err == nil {
		return nil
	}

	return New(code, err.Error())
}

// BadRequest wraps a validation error. A nil err stays nil.
func BadRequest(err error) error {
	return fromError(http.StatusBadRequest, err)
}

func BadRequestFromString(msg string) error {
	return New(http.StatusBadRequest, msg)
}

func Unauthorized(msg string) error {
	return New(http.StatusUnauthorized, msg)
}

// InternalError exposes err's message with a 500. A nil err stays nil.
func InternalError(err error) error {
	return fromError(http.StatusInternalServerError, err)
}

func NotFound(msg string) error {
	return New(http.StatusNotFound, msg)
}

func Conflict(msg string) error {
	return New(http.StatusConflict, msg)
}

func Forbidden(msg string) error {
	return New(http.StatusForbidden, msg)
}

// BadGateway reports a failed upstream call, e.g. the quote generator.
func BadGateway(msg string) error {
	return New(http.StatusBadGateway, msg)
}

// GetCode is the status for err: its Failure code, 504 for a deadline, 500 otherwise.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return http.StatusGatewayTimeout
	}

	return http.StatusInternalServerError
}
