package fetcher

import "fmt"

// RequestError reports a transport failure (connection refused, timeout,
// DNS). Not retried by this layer; retry policy is a caller concern
type RequestError struct {
	URL string
	Err error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// HTTPStatusError reports a non-success HTTP response. The body is
// preserved for diagnostic surfacing
type HTTPStatusError struct {
	Status int
	Body   string
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("API request failed with status %d: %s", e.Status, e.Body)
}

// EmptyResponseError reports a zero-length body on a successful response
type EmptyResponseError struct {
	URL string
}

func (e *EmptyResponseError) Error() string {
	return fmt.Sprintf("empty response from %s", e.URL)
}

// MalformedPayloadError reports a body that is not valid JSON
type MalformedPayloadError struct {
	URL string
	Err error
}

func (e *MalformedPayloadError) Error() string {
	return fmt.Sprintf("invalid JSON response from %s: %v", e.URL, e.Err)
}

func (e *MalformedPayloadError) Unwrap() error {
	return e.Err
}
