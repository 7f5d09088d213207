package constants

import "net/http"

type CodedError struct {
	msg  string
	code int
}

func NewCodedError(msg string, code int) *CodedError {
	return &CodedError{msg: msg, code: code}
}

func (e *CodedError) Error() string {
	return e.msg
}

func (e *CodedError) Code() int {
	return e.code
}

var (
	ErrNotFound       = NewCodedError("not found", http.StatusNotFound)
	ErrUnauthorized   = NewCodedError("unauthorized", http.StatusUnauthorized)
	ErrBadRequest     = NewCodedError("bad request", http.StatusBadRequest)
	ErrMalformedInput = NewCodedError("malformed input dataset", http.StatusUnprocessableEntity)
	ErrMissingResults = NewCodedError("input dataset has no results list", http.StatusUnprocessableEntity)
)
