package core

import (
	"math/rand/v2"
	"slices"
	"sync"

	"github.com/adtools/mediamath/internal/contract"
	"github.com/adtools/mediamath/schema"
)

var (
	goodFeedback = []string{
		"Outperforming the market",
		"Efficient buy",
		"Beating the benchmark",
		"Strong performance",
		"Ahead of the pack",
		"Great value for spend",
		"Top-tier results",
		"Well above industry norms",
	}
	poorFeedback = []string{
		"Room for improvement",
		"Below industry standard",
		"Underperforming the market",
		"Worth a closer look",
		"Trailing the benchmark",
		"Consider optimizing",
		"Costly compared to peers",
		"Needs attention",
	}
	averageFeedback = []string{
		"Right on track",
		"In line with the market",
		"Industry standard",
		"Holding steady",
		"Par for the course",
		"Within the normal range",
		"Comparable to peers",
		"Solid baseline",
	}
)

// FeedbackPool returns a copy of the fixed phrase pool for a status.
func FeedbackPool(status schema.BenchmarkStatus) []string {
	return slices.Clone(feedbackPool(status))
}

func feedbackPool(status schema.BenchmarkStatus) []string {
	switch status {
	case schema.GoodStatus:
		return goodFeedback
	case schema.PoorStatus:
		return poorFeedback
	default:
		return averageFeedback
	}
}

// pickFeedback draws one phrase from the status pool using src.
func pickFeedback(src contract.RandSource, status schema.BenchmarkStatus) string {
	pool := feedbackPool(status)
	i := src.IntN(len(pool))
	if i < 0 || i >= len(pool) {
		i = 0
	}
	return pool[i]
}

// globalRand adapts the math/rand/v2 top-level source to contract.RandSource.
type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// lockedRand serializes access to a seeded generator, which is not safe for
// concurrent use on its own.
type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (l *lockedRand) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.IntN(n)
}

// NewRandSource returns a RandSource that is safe for concurrent use. A zero
// seed uses the process-wide random source; any other seed yields a
// reproducible sequence.
func NewRandSource(seed uint64) contract.RandSource {
	if seed == 0 {
		return globalRand{}
	}
	return &lockedRand{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}
