package models

import (
	"strings"

	"gorm.io/gorm"
)

// Owner represents a user or a family group.
//
// It is the highest level of organization in Granafy, all other
// resources reference it directly.
type Owner struct {
	DefaultModel
	Name string
	Note string
}

func (o Owner) Self() string {
	return "Owner"
}

func (o *Owner) BeforeSave(_ *gorm.DB) error {
	o.Name = strings.TrimSpace(o.Name)
	o.Note = strings.TrimSpace(o.Note)

	return nil
}
