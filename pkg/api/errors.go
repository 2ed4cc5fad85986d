package api

import (
	"errors"
	"net/http"

	"bankist.dev/bankist/pkg/bankist"
)

var rejections = []struct {
	err    error
	status int
	reason string
}{
	{bankist.ErrMalformedInput, http.StatusBadRequest, "malformed_input"},
	{bankist.ErrInvalidAmount, http.StatusBadRequest, "invalid_amount"},
	{bankist.ErrSelfTransfer, http.StatusBadRequest, "self_transfer"},
	{bankist.ErrInvalidCredentials, http.StatusUnauthorized, "invalid_credentials"},
	{bankist.ErrNotLoggedIn, http.StatusUnauthorized, "not_logged_in"},
	{bankist.ErrConfirmationMismatch, http.StatusForbidden, "confirmation_mismatch"},
	{bankist.ErrAccountNotFound, http.StatusNotFound, "account_not_found"},
	{bankist.ErrInsufficientFunds, http.StatusConflict, "insufficient_funds"},
	{bankist.ErrLoanDenied, http.StatusConflict, "loan_denied"},
}

// statusFor maps a rejected action to an HTTP status and a reason code.
func statusFor(err error) (int, string) {
	for _, r := range rejections {
		if errors.Is(err, r.err) {
			return r.status, r.reason
		}
	}
	return http.StatusInternalServerError, ""
}
