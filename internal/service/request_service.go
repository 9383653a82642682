package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/roobux/backend/internal/models"
	"github.com/roobux/backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	// Floors applied when a deposit carries no package, and to every
	// withdrawal request.
	MinDepositAmount    = 100.0
	MinWithdrawalAmount = 10.0
)

var (
	ErrAmountOutOfRange   = errors.New("amount out of range")
	ErrInsufficientFunds  = errors.New("insufficient balance")
	ErrPackageUnavailable = errors.New("package unavailable")
)

type DepositRequest struct {
	Amount    float64 `json:"amount" binding:"required"`
	PackageID string  `json:"package_id,omitempty"`
	TxHash    string  `json:"tx_hash,omitempty"`
	ProofURL  string  `json:"proof_url,omitempty"`
}

type WithdrawalRequest struct {
	Amount  float64 `json:"amount" binding:"required"`
	Address string  `json:"address" binding:"required"`
	Notes   string  `json:"notes,omitempty"`
}

// RequestService records pending deposit and withdrawal requests. All balance
// mutation happens later, at review time, in ApprovalService.
type RequestService interface {
	CreateDeposit(userID string, req *DepositRequest) (*models.Deposit, error)
	GetUserDeposits(userID string) ([]*models.Deposit, error)
	GetAllDeposits() ([]*models.Deposit, error)
	CreateWithdrawal(userID string, req *WithdrawalRequest) (*models.Withdrawal, error)
	GetUserWithdrawals(userID string) ([]*models.Withdrawal, error)
	GetAllWithdrawals() ([]*models.Withdrawal, error)
}

type requestService struct {
	depositRepo    repository.DepositRepository
	withdrawalRepo repository.WithdrawalRepository
	packageRepo    repository.PackageRepository
	userRepo       repository.UserRepository
}

func NewRequestService(depositRepo repository.DepositRepository, withdrawalRepo repository.WithdrawalRepository, packageRepo repository.PackageRepository, userRepo repository.UserRepository) RequestService {
	return &requestService{
		depositRepo:    depositRepo,
		withdrawalRepo: withdrawalRepo,
		packageRepo:    packageRepo,
		userRepo:       userRepo,
	}
}

func (s *requestService) CreateDeposit(userID string, req *DepositRequest) (*models.Deposit, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, errors.New("invalid user ID")
	}
	user, err := s.userRepo.GetUserByID(uid)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	deposit := &models.Deposit{
		UserID:    uid,
		UserEmail: user.Email,
		Amount:    req.Amount,
		TxHash:    req.TxHash,
		ProofURL:  req.ProofURL,
		Status:    models.RequestStatusPending,
		CreatedAt: time.Now().UTC(),
	}

	if req.PackageID != "" {
		pkgID, err := primitive.ObjectIDFromHex(req.PackageID)
		if err != nil {
			return nil, errors.New("invalid package ID")
		}
		pkg, err := s.packageRepo.GetPackageByID(pkgID)
		if err != nil {
			return nil, err
		}
		if pkg == nil || !pkg.Visible {
			return nil, ErrPackageUnavailable
		}
		if req.Amount < pkg.MinDeposit || req.Amount > pkg.MaxDeposit {
			return nil, fmt.Errorf("%w: package accepts %.2f to %.2f", ErrAmountOutOfRange, pkg.MinDeposit, pkg.MaxDeposit)
		}
		deposit.PackageID = pkgID
	} else if req.Amount < MinDepositAmount {
		return nil, fmt.Errorf("%w: minimum deposit is %.0f", ErrAmountOutOfRange, MinDepositAmount)
	}

	if err := s.depositRepo.SaveDeposit(deposit); err != nil {
		return nil, err
	}
	return deposit, nil
}

func (s *requestService) GetUserDeposits(userID string) ([]*models.Deposit, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, errors.New("invalid user ID")
	}
	return s.depositRepo.GetDepositsByUserID(uid)
}

func (s *requestService) GetAllDeposits() ([]*models.Deposit, error) {
	return s.depositRepo.GetAllDeposits()
}

func (s *requestService) CreateWithdrawal(userID string, req *WithdrawalRequest) (*models.Withdrawal, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, errors.New("invalid user ID")
	}
	user, err := s.userRepo.GetUserByID(uid)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if req.Amount < MinWithdrawalAmount {
		return nil, fmt.Errorf("%w: minimum withdrawal is %.0f", ErrAmountOutOfRange, MinWithdrawalAmount)
	}
	// Advisory check only. The authoritative balance check re-runs inside the
	// approval transaction.
	if req.Amount > user.Balance {
		return nil, ErrInsufficientFunds
	}

	withdrawal := &models.Withdrawal{
		UserID:    uid,
		UserEmail: user.Email,
		Amount:    req.Amount,
		Address:   req.Address,
		Notes:     req.Notes,
		Status:    models.RequestStatusPending,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.withdrawalRepo.SaveWithdrawal(withdrawal); err != nil {
		return nil, err
	}
	return withdrawal, nil
}

func (s *requestService) GetUserWithdrawals(userID string) ([]*models.Withdrawal, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, errors.New("invalid user ID")
	}
	return s.withdrawalRepo.GetWithdrawalsByUserID(uid)
}

func (s *requestService) GetAllWithdrawals() ([]*models.Withdrawal, error) {
	return s.withdrawalRepo.GetAllWithdrawals()
}
