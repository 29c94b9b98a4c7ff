package visit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hoangnv/visitgate-api/internal/domain/entity"
	"github.com/hoangnv/visitgate-api/internal/domain/visit"
)

func TestCanTransition_PendingDecisions(t *testing.T) {
	assert.True(t, visit.CanTransition(entity.StatusPending, entity.StatusApproved))
	assert.True(t, visit.CanTransition(entity.StatusPending, entity.StatusRejected))
	assert.True(t, visit.CanTransition(entity.StatusPending, entity.StatusReproposed))
	assert.False(t, visit.CanTransition(entity.StatusPending, entity.StatusArrived),
		"arrival requires a prior approval")
}

func TestCanTransition_ApprovedOnlyArrives(t *testing.T) {
	assert.True(t, visit.CanTransition(entity.StatusApproved, entity.StatusArrived))
	assert.False(t, visit.CanTransition(entity.StatusApproved, entity.StatusRejected))
	assert.False(t, visit.CanTransition(entity.StatusApproved, entity.StatusPending))
}

// Terminal states accept nothing, including transitions to themselves.
func TestCanTransition_TerminalStatesAreClosed(t *testing.T) {
	terminals := []string{entity.StatusRejected, entity.StatusReproposed, entity.StatusArrived}
	targets := []string{
		entity.StatusPending, entity.StatusApproved, entity.StatusReproposed,
		entity.StatusRejected, entity.StatusArrived,
	}
	for _, from := range terminals {
		for _, to := range targets {
			assert.False(t, visit.CanTransition(from, to), "%s -> %s must be refused", from, to)
		}
	}
}

func TestCanTransition_UnknownStatus(t *testing.T) {
	assert.False(t, visit.CanTransition("DRAFT", entity.StatusApproved))
	assert.False(t, visit.CanTransition(entity.StatusPending, "CLOSED"))
}

func TestNewCode_FormatAndAlphabet(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		code := visit.NewCode()
		assert.Len(t, code, visit.CodeLength)
		for _, c := range code {
			assert.NotContains(t, "01IO", string(c),
				"ambiguous characters are excluded from the alphabet")
		}
		seen[code] = true
	}
	// 200 draws from a 32^6 space: a collision here means the generator is broken.
	assert.Len(t, seen, 200)
}
