package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrAccountNameNotUnique          = errors.New("the account name must be unique for the owner")
	ErrCategoryNameNotUnique         = errors.New("the category name must be unique for the owner")
	ErrGoalNameNotUnique             = errors.New("the goal name must be unique for the owner")
	ErrAccountKindInvalid            = errors.New("the account kind is invalid")
	ErrTransactionTypeInvalid        = errors.New("the transaction type is invalid")
	ErrGoalTargetNotPositive         = errors.New("goal targets must be larger than zero")
	ErrAllocationAmountNotPositive   = errors.New("allocation amounts must be larger than zero")
	ErrTransactionAmountNegative     = errors.New("transaction amounts must not be negative")
	ErrVirtualAccountNotTransactable = errors.New("the Objectives account is managed automatically and cannot be transacted on directly")
)
