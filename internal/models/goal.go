package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Goal is a savings target that is funded through allocations.
type Goal struct {
	DefaultModel
	Owner           Owner     `json:"-"`
	OwnerID         uuid.UUID `gorm:"uniqueIndex:goal_name_owner_id"`
	Name            string    `gorm:"uniqueIndex:goal_name_owner_id"`
	Note            string
	TargetAmount    decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // The target for the goal
	AccruedAmount   decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // How much has been saved so far
	Deadline        *time.Time
	Archived        bool
	LinkedAccountID *uuid.UUID // Optional account this goal is saved towards
}

func (g Goal) Self() string {
	return "Goal"
}

// Progress returns the completion ratio of the goal. A goal with a zero
// target is never complete.
func (g Goal) Progress() decimal.Decimal {
	if g.TargetAmount.IsZero() {
		return decimal.Zero
	}

	return g.AccruedAmount.Div(g.TargetAmount)
}

// IsComplete reports whether the accrued amount has reached the target.
func (g Goal) IsComplete() bool {
	return g.Progress().GreaterThanOrEqual(decimal.NewFromInt(1))
}

func (g *Goal) BeforeSave(_ *gorm.DB) error {
	g.Name = strings.TrimSpace(g.Name)
	g.Note = strings.TrimSpace(g.Note)

	if g.Deadline != nil {
		utc := g.Deadline.In(time.UTC)
		g.Deadline = &utc
	}

	// Ensure that the linked account ID is nil and not a pointer to a
	// nil UUID when it is unset
	if g.LinkedAccountID != nil && *g.LinkedAccountID == uuid.Nil {
		g.LinkedAccountID = nil
	}

	return nil
}

func (g *Goal) BeforeCreate(tx *gorm.DB) error {
	_ = g.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Goal)
	return g.checkIntegrity(tx, *toSave)
}

func (g *Goal) BeforeUpdate(tx *gorm.DB) error {
	if tx.Statement.Changed("OwnerID") {
		toSave := tx.Statement.Dest.(Goal)
		return g.checkIntegrity(tx, toSave)
	}

	return nil
}

func (g *Goal) AfterSave(_ *gorm.DB) error {
	if !decimal.Decimal.IsPositive(g.TargetAmount) {
		return ErrGoalTargetNotPositive
	}

	return nil
}

// AfterDelete removes the allocations referencing the goal so that no
// orphaned funding records remain.
func (g *Goal) AfterDelete(tx *gorm.DB) error {
	return tx.Where(&GoalAllocation{GoalID: g.ID}).Delete(&GoalAllocation{}).Error
}

// checkIntegrity verifies references to other resources
func (g *Goal) checkIntegrity(tx *gorm.DB, toSave Goal) error {
	return tx.First(&Owner{}, toSave.OwnerID).Error
}
