package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GoalAllocation is an immutable record of one funding event: money moved
// from a source account into a goal.
type GoalAllocation struct {
	DefaultModel
	Goal      Goal      `json:"-"`
	GoalID    uuid.UUID
	Account   Account `json:"-"`
	AccountID uuid.UUID
	Owner     Owner     `json:"-"`
	OwnerID   uuid.UUID
	Amount    decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Date      time.Time
	Note      string
}

func (a GoalAllocation) Self() string {
	return "GoalAllocation"
}

func (a *GoalAllocation) BeforeSave(_ *gorm.DB) error {
	a.Note = strings.TrimSpace(a.Note)

	if a.Date.IsZero() {
		a.Date = time.Now().In(time.UTC)
	} else {
		a.Date = a.Date.In(time.UTC)
	}

	return nil
}

func (a *GoalAllocation) BeforeCreate(tx *gorm.DB) error {
	_ = a.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*GoalAllocation)
	err := tx.First(&Goal{}, toSave.GoalID).Error
	if err != nil {
		return err
	}

	return tx.First(&Account{}, toSave.AccountID).Error
}

func (a *GoalAllocation) AfterSave(_ *gorm.DB) error {
	if !decimal.Decimal.IsPositive(a.Amount) {
		return ErrAllocationAmountNotPositive
	}

	return nil
}

// AfterFind enforces UTC on the date, see DefaultModel.AfterFind.
func (a *GoalAllocation) AfterFind(tx *gorm.DB) error {
	err := a.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	a.Date = a.Date.In(time.UTC)
	return nil
}
