// Package goalfund implements the goal funding engine: allocating money
// from accounts into savings goals, keeping the virtual Objectives account
// in sync with the total goal savings, and notifying owners when a goal is
// reached.
package goalfund

import (
	"context"
	"os"
	"sync"

	"github.com/google/uuid"
	"github.com/granafy/backend/internal/ledger"
	"github.com/granafy/backend/internal/models"
	"github.com/ryanuber/go-glob"
)

// DefaultCategoryPattern matches the category transactions created by the
// engine are booked under.
const DefaultCategoryPattern = "Objectives"

// Config holds the engine configuration. The goal category is configured
// here instead of being guessed per call.
type Config struct {
	// CategoryID is the designated category for goal transactions. When
	// set, it is used for every owner.
	CategoryID uuid.UUID

	// CategoryPattern is a glob pattern matched against the owner's
	// category names when CategoryID is not set.
	CategoryPattern string
}

// ConfigFromEnv reads the engine configuration from the environment.
func ConfigFromEnv() Config {
	config := Config{
		CategoryPattern: DefaultCategoryPattern,
	}

	if id, err := uuid.Parse(os.Getenv("GOAL_CATEGORY_ID")); err == nil {
		config.CategoryID = id
	}

	if pattern, ok := os.LookupEnv("GOAL_CATEGORY_PATTERN"); ok {
		config.CategoryPattern = pattern
	}

	return config
}

// Service executes the funding operations against a ledger store.
type Service struct {
	store    ledger.Store
	notifier Notifier
	config   Config

	mu         sync.Mutex
	categories map[uuid.UUID]uuid.UUID // resolved goal category per owner
}

// New creates a funding service. The goal category is resolved lazily per
// owner and cached for the lifetime of the service.
func New(store ledger.Store, notifier Notifier, config Config) *Service {
	if config.CategoryPattern == "" {
		config.CategoryPattern = DefaultCategoryPattern
	}

	return &Service{
		store:      store,
		notifier:   notifier,
		config:     config,
		categories: make(map[uuid.UUID]uuid.UUID),
	}
}

// goalCategory returns the category to book goal transactions under for an
// owner. Resolution order: the configured category ID, a glob match on the
// owner's category names, creation of a category named after
// ObjectivesAccountName.
//
// The mutex is held for the whole resolution so that concurrent callers for
// the same owner cannot both miss the glob match and race to create the
// category.
func (s *Service) goalCategory(ctx context.Context, ownerID uuid.UUID) (uuid.UUID, error) {
	if s.config.CategoryID != uuid.Nil {
		return s.config.CategoryID, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if id, ok := s.categories[ownerID]; ok {
		return id, nil
	}

	categories, err := s.store.CategoriesByOwner(ctx, ownerID)
	if err != nil {
		return uuid.Nil, err
	}

	for _, category := range categories {
		if glob.Glob(s.config.CategoryPattern, category.Name) {
			s.categories[ownerID] = category.ID
			return category.ID, nil
		}
	}

	category := models.Category{
		OwnerID: ownerID,
		Name:    models.ObjectivesAccountName,
		Note:    "Transactions created by goal funding",
	}
	err = s.store.CreateCategory(ctx, &category)
	if err != nil {
		return uuid.Nil, err
	}

	s.categories[ownerID] = category.ID
	return category.ID, nil
}
