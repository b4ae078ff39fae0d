package weberr

import "errors"

type fielder interface {
	Fields() map[string]interface{}
}

// Fields collects the log fields attached anywhere in the error chain.
// Fields closer to the outermost error win on key collisions.
func Fields(err error) (fields map[string]interface{}, ok bool) {
	for err != nil {
		var fe fielder
		if !errors.As(err, &fe) {
			break
		}
		if fields == nil {
			fields = make(map[string]interface{})
		}
		for k, v := range fe.Fields() {
			if _, seen := fields[k]; !seen {
				fields[k] = v
			}
		}
		ok = true

		u, isUnwrapper := fe.(interface{ Unwrap() error })
		if !isUnwrapper {
			break
		}
		err = u.Unwrap()
	}
	return fields, ok
}

type fieldsError struct {
	error
	fields map[string]interface{}
}

func (e *fieldsError) Fields() map[string]interface{} { return e.fields }

func (e *fieldsError) Unwrap() error { return e.error }
