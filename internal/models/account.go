package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// AccountKind describes what kind of money container an account is.
type AccountKind string

const (
	AccountKindChecking   AccountKind = "checking"
	AccountKindSavings    AccountKind = "savings"
	AccountKindCash       AccountKind = "cash"
	AccountKindCreditCard AccountKind = "credit_card"
)

// AccountKinds are all values an account kind can have.
func AccountKinds() []AccountKind {
	return []AccountKind{AccountKindChecking, AccountKindSavings, AccountKindCash, AccountKindCreditCard}
}

// ObjectivesAccountName is the name of the virtual account whose balance
// mirrors the sum of all goal balances for an owner. It is created and
// deleted by the reconciler, never by users.
const ObjectivesAccountName = "Objectives"

// Account represents a named money container, e.g. a bank account.
type Account struct {
	DefaultModel
	Owner          Owner     `json:"-"`
	OwnerID        uuid.UUID `gorm:"uniqueIndex:account_name_owner_id"`
	Name           string    `gorm:"uniqueIndex:account_name_owner_id"`
	Note           string
	Kind           AccountKind
	InitialBalance decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Balance        decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // Denormalized cache, recomputed from transactions
	Archived       bool
}

func (a Account) Self() string {
	return "Account"
}

// IsCreditCard reports whether transactions against this account use the
// credit card sign convention.
func (a Account) IsCreditCard() bool {
	return a.Kind == AccountKindCreditCard
}

// IsObjectives reports whether this is the virtual Objectives account.
func (a Account) IsObjectives() bool {
	return a.Name == ObjectivesAccountName
}

// BeforeSave trims whitespace and defaults the kind to checking.
func (a *Account) BeforeSave(_ *gorm.DB) error {
	a.Name = strings.TrimSpace(a.Name)
	a.Note = strings.TrimSpace(a.Note)

	if a.Kind == "" {
		a.Kind = AccountKindChecking
	}

	if !slices.Contains(AccountKinds(), a.Kind) {
		return ErrAccountKindInvalid
	}

	return nil
}

func (a *Account) BeforeCreate(tx *gorm.DB) error {
	_ = a.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Account)
	return a.checkIntegrity(tx, *toSave)
}

// BeforeUpdate verifies the state of the account before
// committing an update to the database.
func (a *Account) BeforeUpdate(tx *gorm.DB) error {
	if tx.Statement.Changed("OwnerID") {
		toSave := tx.Statement.Dest.(Account)
		return a.checkIntegrity(tx, toSave)
	}

	return nil
}

// checkIntegrity verifies references to other resources
func (a *Account) checkIntegrity(tx *gorm.DB, toSave Account) error {
	return tx.First(&Owner{}, toSave.OwnerID).Error
}

// Transactions returns all transactions for this account.
func (a Account) Transactions(db *gorm.DB) []Transaction {
	var transactions []Transaction

	db.Where(Transaction{AccountID: a.ID}).Find(&transactions)
	return transactions
}
