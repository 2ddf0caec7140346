package services

// UnavailableError signals that the upstream model could not be reached or
// refused the call (network, auth, quota, timeout). The provider detail stays
// in the wrapped error for logs and never reaches the client.
type UnavailableError struct {
	Message string
	Err     error
}

func (e *UnavailableError) Error() string { return e.Message }
func (e *UnavailableError) Unwrap() error { return e.Err }

// FormatError signals that the upstream model answered, but with output that
// could not be normalized into the expected JSON object.
type FormatError struct{ Message string }

func (e *FormatError) Error() string { return e.Message }

type NotFoundError struct{ Message string }

func (e *NotFoundError) Error() string { return e.Message }

type ValidationError struct{ Message string }

func (e *ValidationError) Error() string { return e.Message }
