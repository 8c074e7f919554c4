package models_test

import (
	"github.com/google/uuid"
	"github.com/granafy/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestResourceNotFoundMessage() {
	var goal models.Goal
	err := models.DB.First(&goal, uuid.New()).Error

	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
	assert.Equal(suite.T(), "there is no goal matching your query", err.Error())

	var category models.Category
	err = models.DB.First(&category, uuid.New()).Error

	assert.Equal(suite.T(), "there is no category matching your query", err.Error())
}
