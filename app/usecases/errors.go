package usecases

// UseCaseError carries the HTTP status a handler should answer with, the
// message for the response body, and the underlying domain error for
// errors.Is checks.
type UseCaseError struct {
	Code    int
	Message string
	Err     error
}

func (e *UseCaseError) Error() string {
	return e.Message
}

func (e *UseCaseError) Unwrap() error {
	return e.Err
}

func newUseCaseError(code int, err error) *UseCaseError {
	return &UseCaseError{Code: code, Message: err.Error(), Err: err}
}
