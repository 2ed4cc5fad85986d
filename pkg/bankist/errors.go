package bankist

import (
	"errors"
	"fmt"
)

var (
	ErrNotLoggedIn          = errors.New("no account logged in")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrMalformedInput       = errors.New("input is not a number")
	ErrInvalidAmount        = errors.New("amount must be > 0")
	ErrAccountNotFound      = errors.New("account not found")
	ErrInsufficientFunds    = errors.New("insufficient funds")
	ErrSelfTransfer         = errors.New("cannot transfer to the same account")
	ErrLoanDenied           = errors.New("no deposit of at least 10% of the requested loan")
	ErrConfirmationMismatch = errors.New("confirmation does not match the logged in account")
)

// Action names a user-initiated session action.
type Action string

const (
	ActionLogin    Action = "login"
	ActionTransfer Action = "transfer"
	ActionLoan     Action = "loan"
	ActionClose    Action = "close"
	ActionSort     Action = "sort"
)

// RejectedError reports why an action left the store untouched.
type RejectedError struct {
	Action Action
	Reason error
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("%s rejected: %v", e.Action, e.Reason)
}

func (e *RejectedError) Unwrap() error {
	return e.Reason
}

func reject(action Action, reason error) error {
	return &RejectedError{Action: action, Reason: reason}
}
