package supervisor

import (
	"time"

	"github.com/triplex-216/warehouse/directions"
	"github.com/triplex-216/warehouse/solve"
)

// defaultPollInterval is the supervisor's fixed polling cadence,
// approximately 100 ms.
const defaultPollInterval = 100 * time.Millisecond

// defaultMemPercent is the default resident-memory ceiling, as a
// percentage of total system memory.
const defaultMemPercent = 80.0

// Options configures one supervised solve.
type Options struct {
	Algorithm solve.Algorithm
	Seed      int64

	// Timeout is the wall-clock budget. A negative value disables the
	// timeout entirely.
	Timeout time.Duration

	// MemPercent is the resident-memory ceiling, 0-100. Zero selects
	// defaultMemPercent.
	MemPercent float64

	// PollInterval overrides the polling cadence; zero selects
	// defaultPollInterval. Exposed mainly for tests.
	PollInterval time.Duration
}

// DefaultOptions returns Options with no timeout, the default memory
// ceiling, and the default poll interval.
func DefaultOptions() Options {
	return Options{Algorithm: solve.Default, Timeout: -1, MemPercent: defaultMemPercent, PollInterval: defaultPollInterval}
}

func (o Options) pollInterval() time.Duration {
	if o.PollInterval <= 0 {
		return defaultPollInterval
	}

	return o.PollInterval
}

func (o Options) memPercent() float64 {
	if o.MemPercent <= 0 {
		return defaultMemPercent
	}

	return o.MemPercent
}

// Result is the supervisor's output: the formatted route and
// instructions, the total cost, and whether the primary solver was
// cancelled in favor of the Nearest-Neighbour fallback.
type Result struct {
	Route            directions.Route
	TotalCost        int
	TimeoutTriggered bool
}
