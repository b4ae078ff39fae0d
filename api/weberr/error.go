package weberr

import (
	"net/http"
)

// ErrorResponse is the body of every error the api sends back.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

type RequestError struct {
	Err error
}

func (r *RequestError) Error() string { return r.Err.Error() }

func (e *RequestError) Unwrap() error { return e.Err }

func NewError(err error, msg string, status int, opts ...Opt) error {
	e := &RequestError{Err: err}
	opts = append([]Opt{WithResponse(
		&ErrorResponse{Error: msg},
		status,
	)}, opts...)

	return Wrap(e, opts...)
}

// InvalidField reports a request body field that is missing or malformed.
// The message is returned to the client both as the error and keyed by field.
func InvalidField(err error, field string, msg string, opts ...Opt) error {
	e := &RequestError{Err: err}
	opts = append([]Opt{
		WithResponse(
			&ErrorResponse{Error: msg, Fields: map[string]string{field: msg}},
			http.StatusBadRequest,
		),
		WithFields(map[string]interface{}{"field": field}),
	}, opts...)

	return Wrap(e, opts...)
}

func NotFound(err error, opts ...Opt) error {
	return NewError(
		err,
		"the resource could not be found",
		http.StatusNotFound,
		opts...,
	)
}

func MethodNotAllowed(err error, opts ...Opt) error {
	return NewError(
		err,
		"the method is not supported for this resource",
		http.StatusMethodNotAllowed,
		opts...,
	)
}

func Conflict(err error, opts ...Opt) error {
	return NewError(
		err,
		"the resource already exists",
		http.StatusConflict,
		opts...,
	)
}

func TooManyRequests(err error, opts ...Opt) error {
	return NewError(
		err,
		"rate limit exceeded",
		http.StatusTooManyRequests,
		opts...,
	)
}

func InternalError(err error, opts ...Opt) error {
	return NewError(
		err,
		"the server encountered a problem and could not process your request",
		http.StatusInternalServerError,
		opts...,
	)
}

func BadRequest(err error, opts ...Opt) error {
	return NewError(
		err,
		"bad request",
		http.StatusBadRequest,
		opts...,
	)
}
