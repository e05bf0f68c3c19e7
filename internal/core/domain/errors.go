package domain

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	KindNotFound           ErrorKind = "NOT_FOUND"
	KindAgeNotEligible     ErrorKind = "AGE_NOT_ELIGIBLE"
	KindEmailAlreadyExists ErrorKind = "EMAIL_ALREADY_EXISTS"
	KindInvalidEmailFormat ErrorKind = "INVALID_EMAIL_FORMAT"
	KindInvalidDateRange   ErrorKind = "INVALID_DATE_RANGE"
	KindInvalidPageRequest ErrorKind = "INVALID_PAGE_REQUEST"
	KindInternal           ErrorKind = "INTERNAL"
)

const (
	userWithIDNotFoundMsg  = "User with id %d was not found."
	userNotFoundMsg        = "User %s was not found."
	dateRangeMsg           = "DateFrom MUST BE before dateTo"
	userNotAllowedByAgeMsg = "User must be at least %d years old."
	userWithEmailExistsMsg = "User with Email %s already exists."
	emailNotValidMsg       = "User must be with a valid Email address."
	invalidPageRequestMsg  = "pageNo must be >= 0 and pageSize must be >= 1, got pageNo=%d pageSize=%d"
)

// ErrEmailTaken is returned by storage when the unique email constraint rejects a write.
var ErrEmailTaken = errors.New("email already exists")

// UserServiceError is a classified failure raised by the user service.
type UserServiceError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *UserServiceError) Error() string {
	return e.Message
}

func (e *UserServiceError) Unwrap() error {
	return e.Err
}

// KindOf reports the kind of err, or KindInternal for anything unclassified.
func KindOf(err error) ErrorKind {
	var svcErr *UserServiceError
	if errors.As(err, &svcErr) {
		return svcErr.Kind
	}
	return KindInternal
}

func NewUserIDNotFoundError(id int64) error {
	return &UserServiceError{Kind: KindNotFound, Message: fmt.Sprintf(userWithIDNotFoundMsg, id)}
}

func NewUserNotFoundError(name string) error {
	return &UserServiceError{Kind: KindNotFound, Message: fmt.Sprintf(userNotFoundMsg, name)}
}

func NewAgeNotEligibleError(minimumAge int) error {
	return &UserServiceError{Kind: KindAgeNotEligible, Message: fmt.Sprintf(userNotAllowedByAgeMsg, minimumAge)}
}

func NewEmailAlreadyExistsError(email string, cause error) error {
	return &UserServiceError{
		Kind:    KindEmailAlreadyExists,
		Message: fmt.Sprintf(userWithEmailExistsMsg, email),
		Err:     cause,
	}
}

func NewInvalidEmailFormatError() error {
	return &UserServiceError{Kind: KindInvalidEmailFormat, Message: emailNotValidMsg}
}

func NewInvalidDateRangeError() error {
	return &UserServiceError{Kind: KindInvalidDateRange, Message: dateRangeMsg}
}

func NewInvalidPageRequestError(pageNo, pageSize int) error {
	return &UserServiceError{
		Kind:    KindInvalidPageRequest,
		Message: fmt.Sprintf(invalidPageRequestMsg, pageNo, pageSize),
	}
}
