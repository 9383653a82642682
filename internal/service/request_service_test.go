package service

import (
	"testing"

	"github.com/roobux/backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRequestService(t *testing.T) (RequestService, *fakeUserRepo, *fakePackageRepo, *models.User) {
	t.Helper()
	users := newFakeUserRepo()
	packages := newFakePackageRepo()
	svc := NewRequestService(newFakeDepositRepo(), newFakeWithdrawalRepo(), packages, users)

	user := &models.User{Email: "req@example.com", Balance: 150}
	require.NoError(t, users.SaveUser(user))
	return svc, users, packages, user
}

func TestCreateDepositGlobalMinimum(t *testing.T) {
	svc, _, _, user := newTestRequestService(t)

	_, err := svc.CreateDeposit(user.ID.Hex(), &DepositRequest{Amount: 99})
	assert.ErrorIs(t, err, ErrAmountOutOfRange)

	deposit, err := svc.CreateDeposit(user.ID.Hex(), &DepositRequest{Amount: 100, TxHash: "0xabc"})
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusPending, deposit.Status)
	assert.Equal(t, user.Email, deposit.UserEmail)
	assert.Equal(t, "0xabc", deposit.TxHash)
}

func TestCreateDepositPackageBounds(t *testing.T) {
	svc, _, packages, user := newTestRequestService(t)

	pkg := &models.Package{Title: "Gold", MinDeposit: 500, MaxDeposit: 2000, DailyReturnPercent: 2, DurationDays: 30, Visible: true}
	require.NoError(t, packages.SavePackage(pkg))

	_, err := svc.CreateDeposit(user.ID.Hex(), &DepositRequest{Amount: 400, PackageID: pkg.ID.Hex()})
	assert.ErrorIs(t, err, ErrAmountOutOfRange)

	deposit, err := svc.CreateDeposit(user.ID.Hex(), &DepositRequest{Amount: 500, PackageID: pkg.ID.Hex()})
	require.NoError(t, err)
	assert.Equal(t, pkg.ID, deposit.PackageID)
}

func TestCreateDepositHiddenPackage(t *testing.T) {
	svc, _, packages, user := newTestRequestService(t)

	pkg := &models.Package{Title: "Hidden", MinDeposit: 100, MaxDeposit: 500, DailyReturnPercent: 1, DurationDays: 10, Visible: false}
	require.NoError(t, packages.SavePackage(pkg))

	_, err := svc.CreateDeposit(user.ID.Hex(), &DepositRequest{Amount: 200, PackageID: pkg.ID.Hex()})
	assert.ErrorIs(t, err, ErrPackageUnavailable)
}

func TestCreateWithdrawalValidation(t *testing.T) {
	svc, _, _, user := newTestRequestService(t)

	_, err := svc.CreateWithdrawal(user.ID.Hex(), &WithdrawalRequest{Amount: 9, Address: "addr"})
	assert.ErrorIs(t, err, ErrAmountOutOfRange)

	_, err = svc.CreateWithdrawal(user.ID.Hex(), &WithdrawalRequest{Amount: 151, Address: "addr"})
	assert.ErrorIs(t, err, ErrInsufficientFunds)

	withdrawal, err := svc.CreateWithdrawal(user.ID.Hex(), &WithdrawalRequest{Amount: 150, Address: "addr"})
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusPending, withdrawal.Status)
}
