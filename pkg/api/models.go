package api

import (
	"github.com/dgrijalva/jwt-go"
	"github.com/shopspring/decimal"

	"bankist.dev/bankist/pkg/bankist"
)

// Pins and amounts are strings, exactly as typed into the input fields.

type LoginRequest struct {
	Username string `json:"username"`
	Pin      string `json:"pin"`
}

type LoginResponse struct {
	Token   string          `json:"token"`
	Display bankist.Display `json:"display"`
}

type TransferRequest struct {
	To     string `json:"to"`
	Amount string `json:"amount"`
}

type LoanRequest struct {
	Amount string `json:"amount"`
}

type CloseRequest struct {
	Username string `json:"username"`
	Pin      string `json:"pin"`
}

type StatsResponse struct {
	Accounts     int             `json:"accounts"`
	TotalBalance decimal.Decimal `json:"total_balance"`
}

type ErrorResponse struct {
	Error  string `json:"error"`
	Reason string `json:"reason,omitempty"`
}

type Claims struct {
	Username  string `json:"username"`
	SessionID string `json:"session_id"`
	jwt.StandardClaims
}
