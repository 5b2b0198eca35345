package explore

import "fmt"

type ExploreError struct {
	Code    string
	Message string
}

func (e *ExploreError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewNotFoundError(eventID string) error {
	return &ExploreError{
		Code:    "eventNotFound",
		Message: fmt.Sprintf("event %s not found", eventID),
	}
}
