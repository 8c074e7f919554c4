package goalfund

import (
	"github.com/rs/zerolog/log"
)

// Degradation records one non-critical side effect that failed.
type Degradation struct {
	Op  string `json:"op"`
	Err error  `json:"-"`
}

// BestEffort collects side effects that failed without aborting the
// operation that triggered them. Callers and tests can use it to
// distinguish "succeeded" from "succeeded with degraded side effects".
//
// Every degradation is idempotent and self-heals on the next successful
// pass, e.g. a stale cached balance is fixed by the next recomputation.
type BestEffort struct {
	Degradations []Degradation
}

// OK reports whether all side effects succeeded.
func (b BestEffort) OK() bool {
	return len(b.Degradations) == 0
}

// fail records and logs a degraded side effect.
func (b *BestEffort) fail(op string, err error) {
	b.Degradations = append(b.Degradations, Degradation{Op: op, Err: err})
	log.Warn().Err(err).Str("op", op).Msg("side effect degraded, will self-heal on next pass")
}
