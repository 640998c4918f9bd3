package repo

import "fmt"

// Domain errors

type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// Predefined domain errors

const (
	CodeInvalidRepositoryData = "INVALID_REPOSITORY_DATA"
	CodeSourceUnavailable     = "SOURCE_UNAVAILABLE"
)

func ErrInvalidRepositoryData(field string, err error) *DomainError {
	return &DomainError{
		Code:    CodeInvalidRepositoryData,
		Message: fmt.Sprintf("invalid %s", field),
		Err:     err,
	}
}

func ErrSourceUnavailable(source string, err error) *DomainError {
	return &DomainError{
		Code:    CodeSourceUnavailable,
		Message: fmt.Sprintf("repository source %s unavailable", source),
		Err:     err,
	}
}
