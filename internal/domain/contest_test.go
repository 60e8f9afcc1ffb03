package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSide(t *testing.T) {
	assert.True(t, SideA.IsValid())
	assert.True(t, SideB.IsValid())
	assert.False(t, SideNone.IsValid())
	assert.False(t, Side("C").IsValid())
}

func TestFinishType_IsValid(t *testing.T) {
	for _, f := range []FinishType{FinishNone, FinishDecision, FinishKOTKO, FinishSubmission} {
		assert.True(t, f.IsValid(), "finish %q should be valid", f)
	}
	assert.False(t, FinishType("dq").IsValid())
}

func TestMatch_OddsFor(t *testing.T) {
	m := Match{SideAOdds: -200, SideBOdds: 170}

	assert.Equal(t, -200, m.OddsFor(SideA))
	assert.Equal(t, 170, m.OddsFor(SideB))
	assert.False(t, m.HasResult())

	m.Winner = SideB
	assert.True(t, m.HasResult())
}
