package attendance

import "fmt"

type AttendanceError struct {
	Code    string
	Message string
}

func (e *AttendanceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewInvalidDateError(date string) error {
	return &AttendanceError{
		Code:    "invalidDate",
		Message: fmt.Sprintf("date %q is not a valid occurrence date (want YYYY-MM-DD)", date),
	}
}
