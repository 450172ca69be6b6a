package models

import (
	"errors"
	"fmt"
)

var (
	ErrGeneral             = errors.New("an error occurred on the server during your request")
	ErrAccountNotFound     = errors.New("there is no account matching your query")
	ErrApplicationNotFound = errors.New("there is no leave application matching your query")
	ErrInvalidDateRange    = errors.New("the end date of a leave application must not be before its start date")
	ErrInvalidLeaveType    = errors.New("the specified leave type does not exist")
	ErrInvalidTransition   = errors.New("only pending leave applications can be decided on")
	ErrInsufficientBalance = errors.New("the leave balance is not sufficient")
	ErrForbidden           = errors.New("you are not allowed to perform this action")
	ErrEmailTaken          = errors.New("this email address is already registered")
)

// InsufficientBalanceError is returned when an application asks for more days
// than the account has left. It carries the current balance so that callers
// can tell users how many days they actually have.
type InsufficientBalanceError struct {
	LeaveType LeaveType
	Balance   int
}

func (e InsufficientBalanceError) Error() string {
	return fmt.Sprintf("you only have %d %s leave days left", e.Balance, e.LeaveType)
}

func (e InsufficientBalanceError) Unwrap() error {
	return ErrInsufficientBalance
}

// InvalidTransitionError is returned when a leave application that has
// already been decided on is approved or rejected again. It carries the
// current status.
type InvalidTransitionError struct {
	Status ApplicationStatus
}

func (e InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s, this application is %s", ErrInvalidTransition, e.Status)
}

func (e InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}
