package service

import (
	"testing"

	"github.com/roobux/backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeProjection(t *testing.T) {
	projection := ComputeProjection(1000, 1.5, 30)

	assert.Equal(t, 1000.0, projection.Amount)
	assert.Equal(t, 15.0, projection.DailyReturn)
	assert.Equal(t, 450.0, projection.TotalReturn)
	assert.Equal(t, 30, projection.DurationDays)
}

func TestProjectEnforcesPackageBounds(t *testing.T) {
	repo := newFakePackageRepo()
	pkg := &models.Package{
		Title:              "Starter",
		MinDeposit:         100,
		MaxDeposit:         999,
		DailyReturnPercent: 1.2,
		DurationDays:       20,
		Visible:            true,
	}
	require.NoError(t, repo.SavePackage(pkg))

	svc := NewPackageService(repo)

	projection, err := svc.Project(pkg.ID.Hex(), 500)
	require.NoError(t, err)
	assert.Equal(t, 6.0, projection.DailyReturn)
	assert.Equal(t, 120.0, projection.TotalReturn)

	_, err = svc.Project(pkg.ID.Hex(), 50)
	assert.Error(t, err)

	_, err = svc.Project(pkg.ID.Hex(), 5000)
	assert.Error(t, err)
}

func TestCreatePackageValidation(t *testing.T) {
	svc := NewPackageService(newFakePackageRepo())

	err := svc.CreatePackage(&models.Package{Title: "", MinDeposit: 100, MaxDeposit: 500, DailyReturnPercent: 1, DurationDays: 10})
	assert.Error(t, err)

	err = svc.CreatePackage(&models.Package{Title: "Bad bounds", MinDeposit: 500, MaxDeposit: 100, DailyReturnPercent: 1, DurationDays: 10})
	assert.Error(t, err)

	err = svc.CreatePackage(&models.Package{Title: "OK", MinDeposit: 100, MaxDeposit: 500, DailyReturnPercent: 1, DurationDays: 10})
	assert.NoError(t, err)
}
