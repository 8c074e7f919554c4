package goalfund

import (
	"context"

	"github.com/granafy/backend/internal/models"
	"github.com/rs/zerolog/log"
)

// PostTransaction writes a user-created transaction through the path
// required by the target account, see postTransaction.
func (s *Service) PostTransaction(ctx context.Context, transaction *models.Transaction) (BestEffort, error) {
	var effects BestEffort

	account, err := s.store.Account(ctx, transaction.AccountID)
	if err != nil {
		return effects, err
	}
	if account.OwnerID != transaction.OwnerID {
		return effects, notFound("account")
	}

	err = s.postTransaction(ctx, account, transaction, &effects)
	return effects, err
}

// postTransaction writes a transaction through the path required by the
// target account.
//
// Credit card accounts are posted through the dedicated credit card
// procedure with a non-negative magnitude and an explicit type field; the
// procedure interprets the direction from the type. If the procedure fails,
// the write falls back to a direct insert plus balance recomputation so
// that a procedure outage degrades gracefully instead of losing the
// transaction. All other accounts insert directly and recompute.
//
// Balance recomputation failures are recorded in effects, never escalated:
// the balance self-corrects on the next recomputation for the account.
func (s *Service) postTransaction(ctx context.Context, account models.Account, transaction *models.Transaction, effects *BestEffort) error {
	if account.IsObjectives() {
		return models.ErrVirtualAccountNotTransactable
	}

	transaction.Amount = transaction.Amount.Abs()

	if account.IsCreditCard() {
		err := s.store.PostCreditCardTransaction(ctx, transaction)
		if err == nil {
			return nil
		}

		log.Warn().Err(err).Str("account", account.Name).Msg("credit card procedure failed, falling back to direct insert")
		effects.fail("credit card transaction procedure", err)
	}

	err := s.store.CreateTransaction(ctx, transaction)
	if err != nil {
		return err
	}

	err = s.store.UpdateAccountBalance(ctx, transaction.AccountID)
	if err != nil {
		effects.fail("account balance recomputation", err)
	}

	return nil
}
