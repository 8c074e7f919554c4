package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// TransactionType conveys the direction of a transaction. Amounts are
// stored as non-negative magnitudes, the type carries the sign.
type TransactionType string

const (
	TransactionTypeOutflow  TransactionType = "despesa"
	TransactionTypeInflow   TransactionType = "receita"
	TransactionTypeTransfer TransactionType = "transferencia"
)

// TransactionTypes are all values a transaction type can have.
func TransactionTypes() []TransactionType {
	return []TransactionType{TransactionTypeOutflow, TransactionTypeInflow, TransactionTypeTransfer}
}

// Transaction represents a ledger entry against an account.
type Transaction struct {
	DefaultModel
	Owner      Owner     `json:"-"`
	OwnerID    uuid.UUID
	Account    Account `json:"-"`
	AccountID  uuid.UUID
	Category   Category `json:"-"`
	CategoryID uuid.UUID
	Type       TransactionType
	Date       time.Time       // Time of day is currently only used for sorting
	Amount     decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // Always a non-negative magnitude
	Note       string
	GoalID     *uuid.UUID // Set when the transaction is goal-related
	Goal       Goal       `json:"-"`
}

func (t Transaction) Self() string {
	return "Transaction"
}

// Signed returns the amount with the sign implied by the type. Transfers
// are excluded from reporting aggregates and return zero.
func (t Transaction) Signed() decimal.Decimal {
	switch t.Type {
	case TransactionTypeInflow:
		return t.Amount
	case TransactionTypeOutflow:
		return t.Amount.Neg()
	default:
		return decimal.Zero
	}
}

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000. Yes, this is different.
//
// We already store them in UTC, but somehow reading
// them from the database returns them as +0000.
func (t *Transaction) AfterFind(tx *gorm.DB) (err error) {
	err = t.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	// Enforce dates to be in UTC
	t.Date = t.Date.In(time.UTC)
	return
}

// BeforeSave
//   - sets the timezone for the Date for UTC
//   - verifies that the type and amount are valid
//   - trims whitespace from string fields
func (t *Transaction) BeforeSave(_ *gorm.DB) (err error) {
	t.Note = strings.TrimSpace(t.Note)

	// Ensure that the Goal ID is nil and not a pointer to a nil UUID
	// when it is set
	if t.GoalID != nil && *t.GoalID == uuid.Nil {
		t.GoalID = nil
	}

	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	if t.Type == "" {
		t.Type = TransactionTypeOutflow
	}

	if !slices.Contains(TransactionTypes(), t.Type) {
		return ErrTransactionTypeInvalid
	}

	if t.Amount.IsNegative() {
		return ErrTransactionAmountNegative
	}

	return
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	_ = t.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Transaction)
	err := tx.First(&Account{}, toSave.AccountID).Error
	if err != nil {
		return err
	}

	return tx.First(&Category{}, toSave.CategoryID).Error
}
