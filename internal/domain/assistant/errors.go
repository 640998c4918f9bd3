package assistant

import "fmt"

// DomainError is a validation or policy failure of an assistant request
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

const (
	CodeQuestionRequired       = "QUESTION_REQUIRED"
	CodeAlignmentFieldsMissing = "ALIGNMENT_FIELDS_REQUIRED"
	CodeFileRequired           = "FILE_REQUIRED"
	CodeSourceIDRequired       = "SOURCE_ID_REQUIRED"
	CodeUnsupportedFileType    = "UNSUPPORTED_FILE_TYPE"
	CodeFileTooLarge           = "FILE_TOO_LARGE"
)

func ErrQuestionRequired() *DomainError {
	return &DomainError{Code: CodeQuestionRequired, Message: "Question is required"}
}

func ErrAlignmentFieldsRequired() *DomainError {
	return &DomainError{Code: CodeAlignmentFieldsMissing, Message: "Job description and question are required"}
}

func ErrFileRequired() *DomainError {
	return &DomainError{Code: CodeFileRequired, Message: "File is required"}
}

func ErrSourceIDRequired() *DomainError {
	return &DomainError{Code: CodeSourceIDRequired, Message: "Source ID is required"}
}

func ErrUnsupportedFileType(detected string) *DomainError {
	return &DomainError{
		Code:    CodeUnsupportedFileType,
		Message: "Please upload a PDF file only.",
		Err:     fmt.Errorf("detected %s", detected),
	}
}

func ErrFileTooLarge(limit int64) *DomainError {
	return &DomainError{
		Code:    CodeFileTooLarge,
		Message: fmt.Sprintf("File size must be less than %dMB.", limit/(1024*1024)),
	}
}

const (
	CodeAccessDenied    = "ACCESS_DENIED"
	CodeWallDisabled    = "WALL_DISABLED"
	CodeTooManyAttempts = "TOO_MANY_ATTEMPTS"
)

func ErrAccessDenied() *DomainError {
	return &DomainError{Code: CodeAccessDenied, Message: "Incorrect password. Access denied."}
}

func ErrWallDisabled() *DomainError {
	return &DomainError{Code: CodeWallDisabled, Message: "Uploads are disabled on this server."}
}

func ErrTooManyAttempts() *DomainError {
	return &DomainError{Code: CodeTooManyAttempts, Message: "Too many attempts. Please wait a minute and try again."}
}
