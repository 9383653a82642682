package service

import (
	"errors"

	"github.com/roobux/backend/internal/models"
	"github.com/roobux/backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// How much payout history the admin console shows.
const recentReferralLimit = 50

type ReferralSummary struct {
	ReferralCode string                   `json:"referral_code"`
	Referrals    []*models.Referral       `json:"referrals"`
	TotalEarned  float64                  `json:"total_earned"`
	Settings     *models.ReferralSettings `json:"settings"`
}

type ReferralService interface {
	GetUserSummary(userID string) (*ReferralSummary, error)
	GetRecentReferrals() ([]*models.Referral, error)
}

type referralService struct {
	referralRepo repository.ReferralRepository
	userRepo     repository.UserRepository
	contentRepo  repository.ContentRepository
}

func NewReferralService(referralRepo repository.ReferralRepository, userRepo repository.UserRepository, contentRepo repository.ContentRepository) ReferralService {
	return &referralService{
		referralRepo: referralRepo,
		userRepo:     userRepo,
		contentRepo:  contentRepo,
	}
}

func (s *referralService) GetUserSummary(userID string) (*ReferralSummary, error) {
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

	referrals, err := s.referralRepo.GetReferralsByReferrerID(uid)
	if err != nil {
		return nil, err
	}
	var total float64
	for _, ref := range referrals {
		total += ref.BonusPaid
	}

	settings, err := s.contentRepo.GetReferralSettings()
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = &models.ReferralSettings{}
	}

	return &ReferralSummary{
		ReferralCode: user.ReferralCode,
		Referrals:    referrals,
		TotalEarned:  total,
		Settings:     settings,
	}, nil
}

func (s *referralService) GetRecentReferrals() ([]*models.Referral, error) {
	return s.referralRepo.GetRecentReferrals(recentReferralLimit)
}
