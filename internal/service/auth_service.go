package service

import (
	"errors"
	"strings"
	"time"

	"github.com/roobux/backend/internal/config"
	"github.com/roobux/backend/internal/models"
	"github.com/roobux/backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserBanned         = errors.New("account is banned")
	ErrInvalidReferral    = errors.New("invalid referral code")
)

type AuthService interface {
	Signup(email, password, referralCode, clientIP string) (*models.User, error)
	Login(email, password, clientIP string) (*models.User, string, error)
	GenerateToken(user *models.User) (string, error)
}

type authService struct {
	userRepo    repository.UserRepository
	contentRepo repository.ContentRepository
	geo         GeoService
	cfg         *config.Config
	log         *logrus.Logger
}

func NewAuthService(userRepo repository.UserRepository, contentRepo repository.ContentRepository, geo GeoService, cfg *config.Config, log *logrus.Logger) AuthService {
	return &authService{
		userRepo:    userRepo,
		contentRepo: contentRepo,
		geo:         geo,
		cfg:         cfg,
		log:         log,
	}
}

func (s *authService) Signup(email, password, referralCode, clientIP string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	existing, err := s.userRepo.GetUserByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	var referredBy primitive.ObjectID
	if referralCode != "" {
		referrer, err := s.userRepo.GetUserByReferralCode(referralCode)
		if err != nil {
			return nil, err
		}
		if referrer == nil {
			return nil, ErrInvalidReferral
		}
		referredBy = referrer.ID
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	// The new-user signup bonus is credited only to referred users, per the
	// referral settings singleton.
	balance := 0.0
	if !referredBy.IsZero() {
		settings, err := s.contentRepo.GetReferralSettings()
		if err != nil {
			return nil, err
		}
		if settings != nil {
			balance = settings.NewUserBonus
		}
	}

	info := s.lookupInfo(clientIP)

	now := time.Now()
	user := &models.User{
		ID:           primitive.NewObjectID(),
		Email:        email,
		PasswordHash: string(hash),
		Balance:      balance,
		ReferralCode: uuid.New().String()[:8],
		ReferredBy:   referredBy,
		CreatedAt:    now,
		LastLogin:    now,
		UserInfo:     info,
	}

	if err := s.userRepo.SaveUser(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *authService) Login(email, password, clientIP string) (*models.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.GetUserByEmail(email)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}
	if user.IsBanned {
		return nil, "", ErrUserBanned
	}

	// Geolocation is captured once, on the first login without a snapshot.
	var info *models.UserInfo
	if user.UserInfo == nil {
		info = s.lookupInfo(clientIP)
		user.UserInfo = info
	}
	if err := s.userRepo.TouchLogin(user.ID, info); err != nil {
		s.log.WithError(err).Warn("failed to stamp last login")
	}

	token, err := s.GenerateToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *authService) GenerateToken(user *models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  user.ID.Hex(),
		"email":    user.Email,
		"is_admin": user.IsAdmin,
		"exp":      time.Now().Add(s.cfg.TokenTTL).Unix(),
		"iat":      time.Now().Unix(),
	})
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func (s *authService) lookupInfo(clientIP string) *models.UserInfo {
	info, err := s.geo.Lookup(clientIP)
	if err != nil {
		s.log.WithError(err).Warn("geolocation lookup failed")
		return &models.UserInfo{IP: clientIP, Country: "N/A"}
	}
	return info
}
