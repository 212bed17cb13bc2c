package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	"frontdesk/shared/logger"
)

type Data[T any] struct {
	Data *T `json:"data,omitempty"`
}

type Error struct {
	Error *string `json:"error,omitempty"`
}

type Message struct {
	Message *string `json:"message,omitempty"`
}

func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Message{Message: &message})
}

// WithJSON wraps the payload in the data envelope.
func WithJSON(writer http.ResponseWriter, code int, jsonPayload any) {
	response(writer, code, Data[any]{Data: &jsonPayload})
}

// WithBody skips the envelope, e.g. for the public booking API.
func WithBody(writer http.ResponseWriter, code int, payload any) {
	response(writer, code, payload)
}

// WithError answers with the status and message of the failure.Failure inside err.
// Anything else is logged with its stack and reaches the client as a generic message.
func WithError(writer http.ResponseWriter, err error) {
	errMsg := constant.ResponseErrorInternal

	var fail *failure.Failure
	if errors.As(err, &fail) {
		errMsg = fail.Message
	} else {
		logger.ErrorWithStack(err)
	}

	response(writer, failure.GetCode(err), Error{Error: &errMsg})
}

func WithRequestLimitExceeded(writer http.ResponseWriter) {
	unavailable(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

func WithPreparingShutdown(writer http.ResponseWriter) {
	unavailable(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

func WithUnhealthy(writer http.ResponseWriter) {
	unavailable(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

// WithStateLoading answers requests that arrive before the state container is ready.
func WithStateLoading(writer http.ResponseWriter) {
	unavailable(writer, http.StatusServiceUnavailable, constant.ResponseErrorStateLoading)
}

// unavailable writes a canned message that clients and load balancers must not cache.
func unavailable(writer http.ResponseWriter, code int, message string) {
	writer.Header().Set("Cache-Control", "no-store")
	WithMessage(writer, code, message)
}

func response(writer http.ResponseWriter, code int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)
		http.Error(writer, constant.ResponseErrorInternal, http.StatusInternalServerError)

		return
	}

	header := writer.Header()
	header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	header.Set("X-Content-Type-Options", "nosniff")

	writer.WriteHeader(code)

	if _, err = writer.Write(body); err != nil {
		logger.ErrorWithStack(err)
	}
}
