package ledger

import (
	"context"

	"github.com/google/uuid"
	"github.com/granafy/backend/internal/models"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// UpdateAccountBalance recomputes the cached balance of an account from its
// transaction history and persists it.
//
// For regular accounts inflows add and outflows subtract. For credit card
// accounts the convention is flipped: the balance tracks how much is owed,
// so an outflow (a purchase) increases it and an inflow (a payment)
// decreases it. Transfers carry their direction in their own typed rows and
// are skipped here.
func (s *GormStore) UpdateAccountBalance(ctx context.Context, id uuid.UUID) error {
	balance, err := s.AccountBalanceFromHistory(ctx, id)
	if err != nil {
		return err
	}

	return s.SetAccountBalance(ctx, id, balance)
}

// PostCreditCardTransaction posts a transaction against a credit card
// account. The stored magnitude is always non-negative, the direction is
// carried by the explicit type field, and the account balance is recomputed
// in the same call.
func (s *GormStore) PostCreditCardTransaction(ctx context.Context, transaction *models.Transaction) error {
	// Normalize the magnitude, the type carries the direction
	if transaction.Amount.IsNegative() {
		transaction.Amount = transaction.Amount.Abs()
	}

	err := s.CreateTransaction(ctx, transaction)
	if err != nil {
		return err
	}

	// The transaction is committed at this point. A recomputation failure
	// must not make the caller believe the posting failed, it would insert
	// the transaction a second time through the fallback path.
	err = s.UpdateAccountBalance(ctx, transaction.AccountID)
	if err != nil {
		log.Warn().Err(err).Str("account", transaction.AccountID.String()).Msg("balance recomputation after credit card posting failed")
	}

	return nil
}

// AccountBalanceFromHistory returns the balance an account would have based
// purely on its transaction history, without persisting it.
func (s *GormStore) AccountBalanceFromHistory(ctx context.Context, id uuid.UUID) (decimal.Decimal, error) {
	account, err := s.Account(ctx, id)
	if err != nil {
		return decimal.Zero, err
	}

	var transactions []models.Transaction
	err = s.db.WithContext(ctx).
		Where(&models.Transaction{AccountID: id}).
		Find(&transactions).Error
	if err != nil {
		return decimal.Zero, err
	}

	balance := account.InitialBalance
	for _, t := range transactions {
		signed := t.Signed()
		if account.IsCreditCard() {
			signed = signed.Neg()
		}

		balance = balance.Add(signed)
	}

	return balance, nil
}
