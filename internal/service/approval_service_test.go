package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReferralBonus(t *testing.T) {
	tests := []struct {
		name            string
		amount          float64
		percent         float64
		hasReferrer     bool
		hasPriorDeposit bool
		want            float64
	}{
		{"first deposit with referrer", 1000, 5, true, false, 50},
		{"second deposit pays nothing", 500, 5, true, true, 0},
		{"no referrer", 1000, 5, false, false, 0},
		{"zero rate", 1000, 0, true, false, 0},
		{"negative rate", 1000, -3, true, false, 0},
		{"fractional result stays unrounded", 333.33, 7.5, true, false, 24.99975},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ReferralBonus(tt.amount, tt.percent, tt.hasReferrer, tt.hasPriorDeposit)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestReferralBonusPaid(t *testing.T) {
	// A credit that matched no account means the referrer was deleted;
	// nothing is owed and nothing should be recorded.
	assert.Zero(t, ReferralBonusPaid(50, 0))
	assert.Equal(t, 50.0, ReferralBonusPaid(50, 1))
}

func TestCanApproveWithdrawal(t *testing.T) {
	assert.True(t, CanApproveWithdrawal(100, 100))
	assert.True(t, CanApproveWithdrawal(100.01, 100))
	assert.False(t, CanApproveWithdrawal(99.99, 100))
	assert.False(t, CanApproveWithdrawal(0, 10))
}

func TestInsufficientFundsNote(t *testing.T) {
	// The auto-reject note is part of the admin UI contract.
	assert.Equal(t, "Insufficient funds.", InsufficientFundsNote)
}
