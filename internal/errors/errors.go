package errors

import (
	"fmt"
	"net/http"
)

type ErrorCode string

const (
	InvalidInput              ErrorCode = "invalid_input"
	InvalidDate               ErrorCode = "invalid_date"
	InvalidAmount             ErrorCode = "invalid_amount"
	InvalidRate               ErrorCode = "invalid_rate"
	UnopenedAccountWithdrawal ErrorCode = "unopened_account_withdrawal"
	InsufficientFunds         ErrorCode = "insufficient_funds"
	AccountNotFound           ErrorCode = "account_not_found"
	NoActivity                ErrorCode = "no_activity"
	InternalError             ErrorCode = "internal_error"
)

type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

func (e AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewAppError(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

func NewAppErrorf(code ErrorCode, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

func (e *AppError) WithDetails(details string) *AppError {
	e.Details = details
	return e
}

// HTTPStatus maps an error code to the response status. Every code here is
// recoverable: the caller is expected to correct the input and retry.
func (e *AppError) HTTPStatus() int {
	switch e.Code {
	case InvalidInput, InvalidDate, InvalidAmount, InvalidRate:
		return http.StatusBadRequest
	case AccountNotFound, NoActivity:
		return http.StatusNotFound
	case UnopenedAccountWithdrawal, InsufficientFunds:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// Predefined errors for common cases
var (
	ErrInvalidDate               = NewAppError(InvalidDate, "date must be a valid calendar date in YYYYMMDD format")
	ErrInvalidAmount             = NewAppError(InvalidAmount, "amount must be positive with at most 2 decimal places")
	ErrInvalidRate               = NewAppError(InvalidRate, "rate must be greater than 0 and less than 100")
	ErrUnopenedAccountWithdrawal = NewAppError(UnopenedAccountWithdrawal, "cannot withdraw from unopened account")
	ErrInsufficientFunds         = NewAppError(InsufficientFunds, "withdrawal exceeds available balance")
	ErrAccountNotFound           = NewAppError(AccountNotFound, "account not found")
	ErrNoActivity                = NewAppError(NoActivity, "no transactions in the requested month")
)
