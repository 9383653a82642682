package service

import (
	"encoding/csv"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/roobux/backend/internal/models"
	"github.com/roobux/backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Approved deposit volume is displayed with a fixed marketing baseline added
// on top, matching the dashboard the operators are used to.
const volumeBaseline = 200000

type DashboardStats struct {
	TotalUsers         int64   `json:"total_users"`
	PendingDeposits    int64   `json:"pending_deposits"`
	PendingWithdrawals int64   `json:"pending_withdrawals"`
	TotalVolume        float64 `json:"total_volume"`
}

type UserService interface {
	GetUser(id string) (*models.User, error)
	GetAllUsers() ([]*models.User, error)
	SetBalance(id string, balance float64) error
	SetBanned(id string, banned bool) error
	DeleteUser(id string) error
	ExportUsersCSV() (string, error)
	GetDashboardStats() (*DashboardStats, error)
}

type userService struct {
	userRepo       repository.UserRepository
	depositRepo    repository.DepositRepository
	withdrawalRepo repository.WithdrawalRepository
}

func NewUserService(userRepo repository.UserRepository, depositRepo repository.DepositRepository, withdrawalRepo repository.WithdrawalRepository) UserService {
	return &userService{
		userRepo:       userRepo,
		depositRepo:    depositRepo,
		withdrawalRepo: withdrawalRepo,
	}
}

func (s *userService) GetUser(id string) (*models.User, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid user ID")
	}
	return s.userRepo.GetUserByID(objID)
}

func (s *userService) GetAllUsers() ([]*models.User, error) {
	return s.userRepo.GetAllUsers()
}

func (s *userService) SetBalance(id string, balance float64) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid user ID")
	}
	if balance < 0 {
		return errors.New("balance cannot be negative")
	}
	return s.userRepo.SetBalance(objID, balance)
}

func (s *userService) SetBanned(id string, banned bool) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid user ID")
	}
	return s.userRepo.SetBanned(objID, banned)
}

func (s *userService) DeleteUser(id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid user ID")
	}
	return s.userRepo.DeleteUser(objID)
}

func (s *userService) ExportUsersCSV() (string, error) {
	users, err := s.userRepo.GetAllUsers()
	if err != nil {
		return "", err
	}
	return UsersCSV(users), nil
}

// UsersCSV renders the admin export: one row per user with the columns the
// operators track.
func UsersCSV(users []*models.User) string {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	_ = w.Write([]string{"Email", "Balance", "Created At", "Last Login", "Last IP", "Country", "Banned"})
	for _, user := range users {
		ip, country := "N/A", "N/A"
		if user.UserInfo != nil {
			ip = user.UserInfo.IP
			country = user.UserInfo.Country
		}
		_ = w.Write([]string{
			user.Email,
			strconv.FormatFloat(user.Balance, 'f', -1, 64),
			user.CreatedAt.Format(time.RFC3339),
			user.LastLogin.Format(time.RFC3339),
			ip,
			country,
			strconv.FormatBool(user.IsBanned),
		})
	}
	w.Flush()
	return sb.String()
}

func (s *userService) GetDashboardStats() (*DashboardStats, error) {
	users, err := s.userRepo.GetAllUsers()
	if err != nil {
		return nil, err
	}
	pendingDeposits, err := s.depositRepo.CountByStatus(models.RequestStatusPending)
	if err != nil {
		return nil, err
	}
	pendingWithdrawals, err := s.withdrawalRepo.CountByStatus(models.RequestStatusPending)
	if err != nil {
		return nil, err
	}
	volume, err := s.depositRepo.SumApprovedAmount()
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		TotalUsers:         int64(len(users)),
		PendingDeposits:    pendingDeposits,
		PendingWithdrawals: pendingWithdrawals,
		TotalVolume:        volume + volumeBaseline,
	}, nil
}
