// Package weberr attaches client facing responses and log fields to errors
// while keeping the original error reachable through errors.Unwrap.
package weberr

type Opt func(error) error

func Wrap(err error, opts ...Opt) error {
	for _, opt := range opts {
		err = opt(err)
	}
	return err
}

func WithResponse(body interface{}, status int) Opt {
	return func(err error) error {
		return &responseError{error: err, body: body, status: status}
	}
}

// WithMessage overrides the message of the ErrorResponse sent to the client.
// It must be passed after the option that set the response.
func WithMessage(msg string) Opt {
	return func(err error) error {
		body, status, ok := Response(err)
		if !ok {
			return err
		}
		er, ok := body.(*ErrorResponse)
		if !ok {
			return err
		}
		cp := *er
		cp.Error = msg
		return &responseError{error: err, body: &cp, status: status}
	}
}

func WithFields(fields map[string]interface{}) Opt {
	return func(err error) error {
		return &fieldsError{error: err, fields: fields}
	}
}
