package service

import "net/http"

// RequestError is a client-facing failure with its HTTP status.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	return e.Message
}

func (e *RequestError) StatusCode() int {
	return e.Status
}

func badRequest(msg string) error {
	return &RequestError{Status: http.StatusBadRequest, Message: msg}
}

func notFound(msg string) error {
	return &RequestError{Status: http.StatusNotFound, Message: msg}
}
