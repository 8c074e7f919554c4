// Package ledger provides record-level access to the relational store for
// the goal funding engine, including the two procedure-style operations the
// engine depends on: account balance recomputation and credit card
// transaction posting.
package ledger

import (
	"context"

	"github.com/google/uuid"
	"github.com/granafy/backend/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Store is the seam between the funding engine and the relational store.
//
// All methods that write a transaction against a real account are expected
// to be followed by a balance recomputation for that account; the engine
// treats recomputation as best-effort.
type Store interface {
	Account(ctx context.Context, id uuid.UUID) (models.Account, error)
	AccountByName(ctx context.Context, ownerID uuid.UUID, name string) (models.Account, error)
	CreateAccount(ctx context.Context, account *models.Account) error
	DeleteAccount(ctx context.Context, id uuid.UUID) error
	SetAccountBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal) error

	Goal(ctx context.Context, id uuid.UUID) (models.Goal, error)
	GoalsByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Goal, error)
	CreateGoal(ctx context.Context, goal *models.Goal) error
	SaveGoal(ctx context.Context, goal *models.Goal) error
	SetGoalAccrued(ctx context.Context, id uuid.UUID, accrued decimal.Decimal) error
	DeleteGoal(ctx context.Context, goal *models.Goal) error

	CategoriesByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Category, error)
	Category(ctx context.Context, id uuid.UUID) (models.Category, error)
	CreateCategory(ctx context.Context, category *models.Category) error

	CreateAllocation(ctx context.Context, allocation *models.GoalAllocation) error
	DeleteAllocation(ctx context.Context, id uuid.UUID) error

	CreateTransaction(ctx context.Context, transaction *models.Transaction) error

	CreateNotification(ctx context.Context, notification *models.Notification) error

	// UpdateAccountBalance recomputes the cached balance of an account
	// from its transaction history. Safe to call redundantly.
	UpdateAccountBalance(ctx context.Context, id uuid.UUID) error

	// PostCreditCardTransaction posts a transaction with the credit card
	// conventions: a non-negative magnitude and an explicit type. The
	// account balance is recomputed as part of the call.
	PostCreditCardTransaction(ctx context.Context, transaction *models.Transaction) error
}

// GormStore implements Store on top of the gorm database.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Account(ctx context.Context, id uuid.UUID) (models.Account, error) {
	var account models.Account
	err := s.db.WithContext(ctx).First(&account, id).Error
	return account, err
}

func (s *GormStore) AccountByName(ctx context.Context, ownerID uuid.UUID, name string) (models.Account, error) {
	var account models.Account
	err := s.db.WithContext(ctx).
		Where(&models.Account{OwnerID: ownerID, Name: name}).
		First(&account).Error
	return account, err
}

func (s *GormStore) CreateAccount(ctx context.Context, account *models.Account) error {
	return s.db.WithContext(ctx).Create(account).Error
}

// DeleteAccount removes an account row entirely. A soft delete would keep
// occupying the owner+name unique index and block the lazy recreation of
// the virtual Objectives account.
func (s *GormStore) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	return s.db.WithContext(ctx).Unscoped().Delete(&models.Account{}, id).Error
}

// SetAccountBalance writes the cached balance directly, skipping the
// account hooks for the same reason as SetGoalAccrued. This is only used
// for the virtual Objectives account, whose balance is defined as the sum
// of goal balances rather than derived from transaction history.
func (s *GormStore) SetAccountBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal) error {
	return s.db.WithContext(ctx).
		Session(&gorm.Session{SkipHooks: true}).
		Model(&models.Account{}).
		Where("id = ?", id).
		Update("balance", balance).Error
}

func (s *GormStore) Goal(ctx context.Context, id uuid.UUID) (models.Goal, error) {
	var goal models.Goal
	err := s.db.WithContext(ctx).First(&goal, id).Error
	return goal, err
}

func (s *GormStore) GoalsByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Goal, error) {
	var goals []models.Goal
	err := s.db.WithContext(ctx).
		Where(&models.Goal{OwnerID: ownerID}).
		Find(&goals).Error
	return goals, err
}

func (s *GormStore) CreateGoal(ctx context.Context, goal *models.Goal) error {
	return s.db.WithContext(ctx).Create(goal).Error
}

func (s *GormStore) SaveGoal(ctx context.Context, goal *models.Goal) error {
	return s.db.WithContext(ctx).Save(goal).Error
}

// SetGoalAccrued writes the accrued amount of a goal directly. The goal
// hooks are skipped: they validate fields that are not part of this
// single-column statement and would reject it on the zero-value model.
func (s *GormStore) SetGoalAccrued(ctx context.Context, id uuid.UUID, accrued decimal.Decimal) error {
	return s.db.WithContext(ctx).
		Session(&gorm.Session{SkipHooks: true}).
		Model(&models.Goal{}).
		Where("id = ?", id).
		Update("accrued_amount", accrued).Error
}

func (s *GormStore) DeleteGoal(ctx context.Context, goal *models.Goal) error {
	return s.db.WithContext(ctx).Delete(goal).Error
}

func (s *GormStore) CategoriesByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Category, error) {
	var categories []models.Category
	err := s.db.WithContext(ctx).
		Where(&models.Category{OwnerID: ownerID}).
		Order("name ASC").
		Find(&categories).Error
	return categories, err
}

func (s *GormStore) Category(ctx context.Context, id uuid.UUID) (models.Category, error) {
	var category models.Category
	err := s.db.WithContext(ctx).First(&category, id).Error
	return category, err
}

func (s *GormStore) CreateCategory(ctx context.Context, category *models.Category) error {
	return s.db.WithContext(ctx).Create(category).Error
}

func (s *GormStore) CreateAllocation(ctx context.Context, allocation *models.GoalAllocation) error {
	return s.db.WithContext(ctx).Create(allocation).Error
}

func (s *GormStore) DeleteAllocation(ctx context.Context, id uuid.UUID) error {
	return s.db.WithContext(ctx).Delete(&models.GoalAllocation{}, id).Error
}

func (s *GormStore) CreateTransaction(ctx context.Context, transaction *models.Transaction) error {
	return s.db.WithContext(ctx).Create(transaction).Error
}

func (s *GormStore) CreateNotification(ctx context.Context, notification *models.Notification) error {
	return s.db.WithContext(ctx).Create(notification).Error
}
