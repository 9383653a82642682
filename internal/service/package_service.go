package service

import (
	"errors"
	"fmt"

	"github.com/roobux/backend/internal/models"
	"github.com/roobux/backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ROIProjection is the pure arithmetic projection shown by the calculator:
// daily = amount * rate / 100, total = daily * days.
type ROIProjection struct {
	Amount       float64 `json:"amount"`
	DailyReturn  float64 `json:"daily_return"`
	TotalReturn  float64 `json:"total_return"`
	DurationDays int     `json:"duration_days"`
}

type PackageService interface {
	CreatePackage(pkg *models.Package) error
	GetPackage(id string) (*models.Package, error)
	GetVisiblePackages() ([]*models.Package, error)
	GetAllPackages() ([]*models.Package, error)
	UpdatePackage(id string, pkg *models.Package) error
	DeletePackage(id string) error
	Project(id string, amount float64) (*ROIProjection, error)
}

type packageService struct {
	packageRepo repository.PackageRepository
}

func NewPackageService(packageRepo repository.PackageRepository) PackageService {
	return &packageService{packageRepo: packageRepo}
}

// ComputeProjection applies a package's daily rate over its duration.
func ComputeProjection(amount, dailyPercent float64, durationDays int) ROIProjection {
	daily := amount * dailyPercent / 100
	return ROIProjection{
		Amount:       amount,
		DailyReturn:  daily,
		TotalReturn:  daily * float64(durationDays),
		DurationDays: durationDays,
	}
}

func (s *packageService) CreatePackage(pkg *models.Package) error {
	if err := validatePackage(pkg); err != nil {
		return err
	}
	return s.packageRepo.SavePackage(pkg)
}

func validatePackage(pkg *models.Package) error {
	if pkg.Title == "" {
		return errors.New("title is required")
	}
	if pkg.MinDeposit <= 0 || pkg.MaxDeposit < pkg.MinDeposit {
		return errors.New("invalid deposit bounds")
	}
	if pkg.DailyReturnPercent <= 0 {
		return errors.New("daily return percent must be positive")
	}
	if pkg.DurationDays <= 0 {
		return errors.New("duration must be positive")
	}
	return nil
}

func (s *packageService) GetPackage(id string) (*models.Package, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid package ID")
	}
	return s.packageRepo.GetPackageByID(objID)
}

func (s *packageService) GetVisiblePackages() ([]*models.Package, error) {
	return s.packageRepo.GetVisiblePackages()
}

func (s *packageService) GetAllPackages() ([]*models.Package, error) {
	return s.packageRepo.GetAllPackages()
}

func (s *packageService) UpdatePackage(id string, pkg *models.Package) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid package ID")
	}
	if err := validatePackage(pkg); err != nil {
		return err
	}
	return s.packageRepo.UpdatePackage(objID, pkg)
}

func (s *packageService) DeletePackage(id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid package ID")
	}
	return s.packageRepo.DeletePackage(objID)
}

func (s *packageService) Project(id string, amount float64) (*ROIProjection, error) {
	pkg, err := s.GetPackage(id)
	if err != nil {
		return nil, err
	}
	if pkg == nil {
		return nil, errors.New("package not found")
	}
	if amount < pkg.MinDeposit || amount > pkg.MaxDeposit {
		return nil, fmt.Errorf("amount must be between %.2f and %.2f for this package", pkg.MinDeposit, pkg.MaxDeposit)
	}
	projection := ComputeProjection(amount, pkg.DailyReturnPercent, pkg.DurationDays)
	return &projection, nil
}
