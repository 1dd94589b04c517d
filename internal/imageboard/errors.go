package imageboard

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies why a fetch produced no usable payload.
type ErrorKind int

const (
	ErrorUnknown ErrorKind = iota
	// ErrorTransport covers connectivity failures: DNS, refused connections, resets.
	ErrorTransport
	// ErrorRemote is a completed request answered with a non-2xx status.
	ErrorRemote
	// ErrorTimeout means the per-fetch deadline expired.
	ErrorTimeout
	// ErrorCanceled means the caller abandoned the fetch.
	ErrorCanceled
	// ErrorDecode is a successful response whose payload is not what the API promises.
	ErrorDecode
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorTransport:
		return "transport error"
	case ErrorRemote:
		return "remote error"
	case ErrorTimeout:
		return "timeout"
	case ErrorCanceled:
		return "canceled"
	case ErrorDecode:
		return "decode error"
	default:
		return "unknown error"
	}
}

// FetchError is returned by Fetcher implementations and the Decode functions.
type FetchError struct {
	Kind       ErrorKind
	Resource   Resource
	StatusCode int   // Set for ErrorRemote
	Err        error // Underlying cause, may be nil for ErrorRemote
}

// Error returns "<kind>: <detail>".
func (e *FetchError) Error() string {
	return e.Kind.String() + ": " + e.Detail()
}

// Detail is the part of the message after the kind.
func (e *FetchError) Detail() string {
	if e.Kind == ErrorRemote {
		return fmt.Sprintf("%d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "no detail"
}

// Unwrap returns the underlying error.
func (e *FetchError) Unwrap() error {
	return e.Err
}

// Summary is the status-line text for a failed fetch.
func (e *FetchError) Summary() string {
	return fmt.Sprintf("Could not load %s: %s", e.Resource.Name(), e.Error())
}

// KindOf returns the ErrorKind of err, or ErrorUnknown if err is not a FetchError.
func KindOf(err error) ErrorKind {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return ErrorUnknown
}
