package constants

import "net/http"

// CodedError - ошибка с HTTP кодом, разворачивается в api.httpErrorHandler.
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
	ErrDBNotFound        = NewCodedError("not found", http.StatusNotFound)
	ErrUnauthorized      = NewCodedError("unauthorized", http.StatusUnauthorized)
	ErrMissingAuthCookie = NewCodedError("missing auth cookie", http.StatusUnauthorized)
	ErrBadRequest        = NewCodedError("bad request", http.StatusBadRequest)
	ErrPlantConflict     = NewCodedError("plant already exists", http.StatusConflict)
	ErrVirtualPlant      = NewCodedError("virtual plants cannot be managed directly", http.StatusForbidden)
)
