package goalfund

import (
	"context"
	"fmt"

	"github.com/granafy/backend/internal/ledger"
	"github.com/granafy/backend/internal/models"
	"github.com/rs/zerolog/log"
)

// Notifier emits owner-facing events. Implementations must be safe to call
// redundantly, the engine treats emission as fire-and-forget.
type Notifier interface {
	GoalAchieved(ctx context.Context, goal models.Goal) error
}

// StoreNotifier writes notifications as rows for the owner.
type StoreNotifier struct {
	store ledger.Store
}

func NewStoreNotifier(store ledger.Store) *StoreNotifier {
	return &StoreNotifier{store: store}
}

func (n *StoreNotifier) GoalAchieved(ctx context.Context, goal models.Goal) error {
	log.Info().Str("goal", goal.Name).Str("owner", goal.OwnerID.String()).Msg("goal achieved")

	return n.store.CreateNotification(ctx, &models.Notification{
		OwnerID: goal.OwnerID,
		Message: fmt.Sprintf("Congratulations! Your goal %q has been achieved.", goal.Name),
		Kind:    models.NotificationKindSuccess,
	})
}

// checkCompletion emits a notification when the goal crossed its target
// with this mutation.
//
// Completeness before the mutation is computed from the state the caller
// read before writing, not re-derived from stored state. This guarantees at
// most one notification per crossing even when a complete goal is touched
// repeatedly.
func (s *Service) checkCompletion(ctx context.Context, goal, previous models.Goal, effects *BestEffort) {
	if !goal.IsComplete() || previous.IsComplete() {
		return
	}

	if err := s.notifier.GoalAchieved(ctx, goal); err != nil {
		effects.fail("goal achieved notification", err)
	}
}
