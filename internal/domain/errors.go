package domain

import "fmt"

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Is matches by code so errors.Is works across instances.
func (e *DomainError) Is(target error) bool {
	if t, ok := target.(*DomainError); ok {
		return e.Code == t.Code
	}
	return false
}

var (
	ErrUserExists = &DomainError{
		Code:    "USER_EXISTS",
		Message: "student_id already registered",
	}

	ErrUnauthorized = &DomainError{
		Code:    "UNAUTHORIZED",
		Message: "invalid credentials",
	}

	ErrForbidden = &DomainError{
		Code:    "FORBIDDEN",
		Message: "operation not allowed for this user",
	}

	ErrCourseExists = &DomainError{
		Code:    "COURSE_EXISTS",
		Message: "course code already exists",
	}

	ErrAlreadyEnrolled = &DomainError{
		Code:    "ALREADY_ENROLLED",
		Message: "student is already enrolled in this course",
	}

	ErrTeamFull = &DomainError{
		Code:    "TEAM_FULL",
		Message: "recruitment has reached max_members",
	}

	ErrNotFound = &DomainError{
		Code:    "NOT_FOUND",
		Message: "resource not found",
	}
)

func NewNotFoundError(resource string) *DomainError {
	return &DomainError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s not found", resource),
	}
}

func NewBadRequestError(message string) *DomainError {
	return &DomainError{
		Code:    "BAD_REQUEST",
		Message: message,
	}
}
