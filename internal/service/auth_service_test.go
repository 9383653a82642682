package service

import (
	"testing"
	"time"

	"github.com/roobux/backend/internal/config"
	"github.com/roobux/backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeGeo struct{}

func (fakeGeo) Lookup(ip string) (*models.UserInfo, error) {
	return &models.UserInfo{IP: ip, Country: "Testland"}, nil
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret: "test-secret",
		TokenTTL:  time.Hour,
	}
}

func newTestAuthService(users *fakeUserRepo, content *fakeContentRepo) AuthService {
	return NewAuthService(users, content, fakeGeo{}, testConfig(), logrus.New())
}

func TestSignupCreatesUser(t *testing.T) {
	users := newFakeUserRepo()
	svc := newTestAuthService(users, &fakeContentRepo{})

	user, err := svc.Signup("New@Example.COM ", "hunter22", "", "1.2.3.4")
	require.NoError(t, err)

	assert.Equal(t, "new@example.com", user.Email)
	assert.Len(t, user.ReferralCode, 8)
	assert.Zero(t, user.Balance)
	assert.True(t, user.ReferredBy.IsZero())
	require.NotNil(t, user.UserInfo)
	assert.Equal(t, "Testland", user.UserInfo.Country)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("hunter22")))
}

func TestSignupDuplicateEmail(t *testing.T) {
	users := newFakeUserRepo()
	svc := newTestAuthService(users, &fakeContentRepo{})

	_, err := svc.Signup("dup@example.com", "password", "", "1.2.3.4")
	require.NoError(t, err)

	_, err = svc.Signup("dup@example.com", "password", "", "1.2.3.4")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestSignupWithReferralCode(t *testing.T) {
	users := newFakeUserRepo()
	content := &fakeContentRepo{referral: &models.ReferralSettings{NewUserBonus: 25}}
	svc := newTestAuthService(users, content)

	referrer, err := svc.Signup("referrer@example.com", "password", "", "1.2.3.4")
	require.NoError(t, err)

	referred, err := svc.Signup("referred@example.com", "password", referrer.ReferralCode, "1.2.3.4")
	require.NoError(t, err)

	assert.Equal(t, referrer.ID, referred.ReferredBy)
	assert.Equal(t, 25.0, referred.Balance, "referred signups get the new-user bonus")

	_, err = svc.Signup("other@example.com", "password", "nope1234", "1.2.3.4")
	assert.ErrorIs(t, err, ErrInvalidReferral)
}

func TestSignupBonusOnlyWhenReferred(t *testing.T) {
	users := newFakeUserRepo()
	content := &fakeContentRepo{referral: &models.ReferralSettings{NewUserBonus: 25}}
	svc := newTestAuthService(users, content)

	user, err := svc.Signup("solo@example.com", "password", "", "1.2.3.4")
	require.NoError(t, err)
	assert.Zero(t, user.Balance)
}

func TestLogin(t *testing.T) {
	users := newFakeUserRepo()
	svc := newTestAuthService(users, &fakeContentRepo{})

	created, err := svc.Signup("login@example.com", "password", "", "1.2.3.4")
	require.NoError(t, err)

	user, token, err := svc.Login("login@example.com", "password", "5.6.7.8")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
	assert.NotEmpty(t, token)

	parsed, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, created.ID.Hex(), claims["user_id"])
	assert.Equal(t, false, claims["is_admin"])

	_, _, err = svc.Login("login@example.com", "wrong", "5.6.7.8")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login("nobody@example.com", "password", "5.6.7.8")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginBannedUser(t *testing.T) {
	users := newFakeUserRepo()
	svc := newTestAuthService(users, &fakeContentRepo{})

	user, err := svc.Signup("banned@example.com", "password", "", "1.2.3.4")
	require.NoError(t, err)
	require.NoError(t, users.SetBanned(user.ID, true))

	_, _, err = svc.Login("banned@example.com", "password", "1.2.3.4")
	assert.ErrorIs(t, err, ErrUserBanned)
}
