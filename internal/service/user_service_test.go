package service

import (
	"strings"
	"testing"
	"time"

	"github.com/roobux/backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsersCSV(t *testing.T) {
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	users := []*models.User{
		{
			Email:     "a@example.com",
			Balance:   1234.5,
			CreatedAt: created,
			LastLogin: created,
			UserInfo:  &models.UserInfo{IP: "1.2.3.4", Country: "Testland"},
		},
		{
			Email:     "b@example.com",
			Balance:   0,
			CreatedAt: created,
			LastLogin: created,
			IsBanned:  true,
		},
	}

	payload := UsersCSV(users)
	lines := strings.Split(strings.TrimSpace(payload), "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, "Email,Balance,Created At,Last Login,Last IP,Country,Banned", lines[0])
	assert.Contains(t, lines[1], "a@example.com,1234.5,")
	assert.Contains(t, lines[1], "1.2.3.4,Testland,false")
	assert.Contains(t, lines[2], "b@example.com,0,")
	assert.Contains(t, lines[2], "N/A,N/A,true")
}

func TestDashboardStats(t *testing.T) {
	users := newFakeUserRepo()
	deposits := newFakeDepositRepo()
	withdrawals := newFakeWithdrawalRepo()
	svc := NewUserService(users, deposits, withdrawals)

	require.NoError(t, users.SaveUser(&models.User{Email: "one@example.com"}))
	require.NoError(t, users.SaveUser(&models.User{Email: "two@example.com"}))

	require.NoError(t, deposits.SaveDeposit(&models.Deposit{Amount: 1000, Status: models.RequestStatusApproved}))
	require.NoError(t, deposits.SaveDeposit(&models.Deposit{Amount: 500, Status: models.RequestStatusPending}))
	require.NoError(t, withdrawals.SaveWithdrawal(&models.Withdrawal{Amount: 50, Status: models.RequestStatusPending}))

	stats, err := svc.GetDashboardStats()
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.TotalUsers)
	assert.Equal(t, int64(1), stats.PendingDeposits)
	assert.Equal(t, int64(1), stats.PendingWithdrawals)
	assert.Equal(t, 201000.0, stats.TotalVolume, "approved volume plus the display baseline")
}

func TestSetBalanceRejectsNegative(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewUserService(users, newFakeDepositRepo(), newFakeWithdrawalRepo())

	user := &models.User{Email: "neg@example.com"}
	require.NoError(t, users.SaveUser(user))

	assert.Error(t, svc.SetBalance(user.ID.Hex(), -1))
	assert.NoError(t, svc.SetBalance(user.ID.Hex(), 10))
	assert.Equal(t, 10.0, users.users[user.ID].Balance)
}
