package auctionerrors

import "errors"

// Error kinds. Every domain error below wraps exactly one of these.
var (
	ErrValidation      = errors.New("validation error")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("not found")
	ErrIllegalState    = errors.New("illegal state")
	ErrEmptyState      = errors.New("empty state")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrForbidden       = errors.New("forbidden")
)

// Client and product field validation errors
var (
	ErrEmptyClientName  = newError(ErrValidation, "You have not entered a full name")
	ErrInvalidEmail     = newError(ErrValidation, "You have entered an invalid email")
	ErrEmptyAddress     = newError(ErrValidation, "You have not entered an address")
	ErrEmptyPassword    = newError(ErrValidation, "You have not entered a password")
	ErrEmptyProductName = newError(ErrValidation, "You have not entered a name")
	ErrEmptyProductType = newError(ErrValidation, "You have not entered a type")
)

// Pricing errors
var (
	ErrNegativeInitialPrice = newError(ErrInvalidArgument, "The initial price must not be negative.")
	ErrBidTooLow            = newError(ErrInvalidArgument, "The new bid price must be higher than the current highest bid")
)

// Registry and lookup errors
var (
	ErrInvalidCredentials = newError(ErrNotFound, "Username or password incorrect")
	ErrNoProducts         = newError(ErrNotFound, "No items found.")
	ErrProductNotFound    = newError(ErrNotFound, "Product not found.")
	ErrNoBids             = newError(ErrEmptyState, "No bids have been placed yet.")
	ErrNotSellable        = newError(ErrIllegalState, "No bids have been placed yet.")
	ErrProductSold        = newError(ErrIllegalState, "The product has already been sold.")
)

// Session errors
var (
	ErrSessionNotFound = newError(ErrUnauthorized, "You are not logged in")
	ErrNotOwner        = newError(ErrForbidden, "The product is not advertised by you")
)

// Error is a domain error carrying an operator-facing message and its kind.
type Error struct {
	kind error
	msg  string
}

func newError(kind error, msg string) *Error {
	return &Error{kind: kind, msg: msg}
}

func (e *Error) Error() string { return e.msg }

// Unwrap exposes the kind so callers can match with errors.Is.
func (e *Error) Unwrap() error { return e.kind }

// Kind returns the error kind.
func (e *Error) Kind() error { return e.kind }

// Message returns the operator-facing text of the innermost domain error in
// err's chain, or err.Error() when the chain holds none.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var de *Error
	if errors.As(err, &de) {
		return de.msg
	}
	return err.Error()
}
