package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category groups transactions for reporting.
type Category struct {
	DefaultModel
	Owner   Owner     `json:"-"`
	OwnerID uuid.UUID `gorm:"uniqueIndex:category_name_owner_id"`
	Name    string    `gorm:"uniqueIndex:category_name_owner_id"`
	Note    string
	Archived bool
}

func (c Category) Self() string {
	return "Category"
}

func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Note = strings.TrimSpace(c.Note)

	return nil
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	_ = c.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Category)
	return c.checkIntegrity(tx, *toSave)
}

func (c *Category) BeforeUpdate(tx *gorm.DB) error {
	if tx.Statement.Changed("OwnerID") {
		toSave := tx.Statement.Dest.(Category)
		return c.checkIntegrity(tx, toSave)
	}

	return nil
}

// checkIntegrity verifies references to other resources
func (c *Category) checkIntegrity(tx *gorm.DB, toSave Category) error {
	return tx.First(&Owner{}, toSave.OwnerID).Error
}
