package goalfund

import (
	"errors"
	"fmt"

	"github.com/granafy/backend/internal/models"
	"github.com/shopspring/decimal"
)

var ErrAmountNotPositive = errors.New("the amount to allocate must be larger than zero")

// GoalAlreadyCompleteError is returned when money is allocated to a goal
// that has already reached its target.
type GoalAlreadyCompleteError struct {
	Name     string
	Progress decimal.Decimal // Completion ratio at the time of the call
}

func (e *GoalAlreadyCompleteError) Error() string {
	return fmt.Sprintf("goal %q is already complete at %s%%, no further allocations are possible", e.Name, e.Progress.Mul(decimal.NewFromInt(100)).StringFixed(0))
}

// notFound mirrors the phrasing of the database error callback so that
// ownership mismatches are indistinguishable from missing resources.
func notFound(resource string) error {
	return fmt.Errorf("%w %s matching your query", models.ErrResourceNotFound, resource)
}
