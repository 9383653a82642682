package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/roobux/backend/internal/models"
	"github.com/roobux/backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrDepositNotFound    = errors.New("deposit not found")
	ErrWithdrawalNotFound = errors.New("withdrawal not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrAlreadyReviewed    = errors.New("request already reviewed")
)

// InsufficientFundsNote is the fixed rejection reason stamped on a
// withdrawal whose balance check fails at approval time.
const InsufficientFundsNote = "Insufficient funds."

// DepositApproval reports what a deposit approval actually did.
type DepositApproval struct {
	Deposit    *models.Deposit
	BonusPaid  float64
	ReferrerID primitive.ObjectID
}

// WithdrawalApproval reports the outcome of a withdrawal review. An
// insufficient balance is not an error: the request is auto-rejected and
// AutoRejected is set.
type WithdrawalApproval struct {
	Withdrawal   *models.Withdrawal
	AutoRejected bool
}

// ApprovalService owns the balance-mutating request reviews. Every approval
// runs inside a single Mongo transaction so that concurrent approvals for
// the same user cannot double-pay a referral bonus or overdraw a balance.
type ApprovalService interface {
	ApproveDeposit(depositID string) (*DepositApproval, error)
	RejectDeposit(depositID, reason string) (*models.Deposit, error)
	ApproveWithdrawal(withdrawalID string) (*WithdrawalApproval, error)
	RejectWithdrawal(withdrawalID, reason string) (*models.Withdrawal, error)
}

type approvalService struct {
	depositRepo    repository.DepositRepository
	withdrawalRepo repository.WithdrawalRepository
	userRepo       repository.UserRepository
	referralRepo   repository.ReferralRepository
	contentRepo    repository.ContentRepository
}

func NewApprovalService(
	depositRepo repository.DepositRepository,
	withdrawalRepo repository.WithdrawalRepository,
	userRepo repository.UserRepository,
	referralRepo repository.ReferralRepository,
	contentRepo repository.ContentRepository,
) ApprovalService {
	return &approvalService{
		depositRepo:    depositRepo,
		withdrawalRepo: withdrawalRepo,
		userRepo:       userRepo,
		referralRepo:   referralRepo,
		contentRepo:    contentRepo,
	}
}

// ReferralBonus computes the bonus owed to a referrer for an approved
// deposit. A bonus applies only on the referred user's first approved
// deposit, only when a referrer exists, and only at a positive rate. The
// result is stored unrounded; display rounding happens at render time.
func ReferralBonus(amount, percent float64, hasReferrer, hasPriorApproved bool) float64 {
	if hasPriorApproved || !hasReferrer || percent <= 0 {
		return 0
	}
	return amount * percent / 100
}

// ReferralBonusPaid reconciles the computed bonus with what the referrer
// credit actually touched. When the credit matched no account, the referrer
// was deleted after signup and no bonus is owed.
func ReferralBonusPaid(bonus float64, creditMatched int64) float64 {
	if creditMatched == 0 {
		return 0
	}
	return bonus
}

// CanApproveWithdrawal is the balance re-check performed at approval time,
// independent of the check done when the request was filed.
func CanApproveWithdrawal(balance, amount float64) bool {
	return amount <= balance
}

func (s *approvalService) ApproveDeposit(depositID string) (*DepositApproval, error) {
	objID, err := primitive.ObjectIDFromHex(depositID)
	if err != nil {
		return nil, errors.New("invalid deposit ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	session, err := s.userRepo.Collection().Database().Client().StartSession()
	if err != nil {
		return nil, fmt.Errorf("failed to start session: %w", err)
	}
	defer session.EndSession(ctx)

	callback := func(sessCtx mongo.SessionContext) (interface{}, error) {
		var deposit models.Deposit
		err := s.depositRepo.Collection().FindOne(sessCtx, bson.M{"_id": objID}).Decode(&deposit)
		if err == mongo.ErrNoDocuments {
			return nil, ErrDepositNotFound
		}
		if err != nil {
			return nil, err
		}
		if deposit.Status != models.RequestStatusPending {
			return nil, ErrAlreadyReviewed
		}

		var user models.User
		err = s.userRepo.Collection().FindOne(sessCtx, bson.M{"_id": deposit.UserID}).Decode(&user)
		if err == mongo.ErrNoDocuments {
			return nil, ErrUserNotFound
		}
		if err != nil {
			return nil, err
		}

		var settings models.ReferralSettings
		err = s.contentRepo.Collection().FindOne(sessCtx, bson.M{"_id": "referrals"}).Decode(&settings)
		if err != nil && err != mongo.ErrNoDocuments {
			return nil, err
		}

		prior, err := s.depositRepo.Collection().CountDocuments(sessCtx, bson.M{
			"user_id": deposit.UserID,
			"status":  models.RequestStatusApproved,
			"_id":     bson.M{"$ne": deposit.ID},
		})
		if err != nil {
			return nil, err
		}

		bonus := ReferralBonus(deposit.Amount, settings.ReferrerPercent, !user.ReferredBy.IsZero(), prior > 0)

		result := &DepositApproval{}
		if bonus > 0 {
			credit, err := s.userRepo.Collection().UpdateOne(sessCtx,
				bson.M{"_id": user.ReferredBy},
				bson.M{"$inc": bson.M{"balance": bonus}})
			if err != nil {
				return nil, fmt.Errorf("failed to pay referrer: %w", err)
			}
			bonus = ReferralBonusPaid(bonus, credit.MatchedCount)
		}
		if bonus > 0 {
			result.ReferrerID = user.ReferredBy

			referral := models.Referral{
				ID:            primitive.NewObjectID(),
				ReferrerID:    user.ReferredBy,
				NewUserID:     user.ID,
				NewUserEmail:  user.Email,
				DepositAmount: deposit.Amount,
				BonusPaid:     bonus,
				CreatedAt:     time.Now(),
			}
			if _, err = s.referralRepo.Collection().InsertOne(sessCtx, referral); err != nil {
				return nil, fmt.Errorf("failed to record referral: %w", err)
			}
		}
		result.BonusPaid = bonus

		_, err = s.userRepo.Collection().UpdateOne(sessCtx,
			bson.M{"_id": user.ID},
			bson.M{"$inc": bson.M{"balance": deposit.Amount}})
		if err != nil {
			return nil, fmt.Errorf("failed to credit user: %w", err)
		}

		now := time.Now()
		deposit.Status = models.RequestStatusApproved
		deposit.ApprovedAt = &now
		deposit.BonusPaidToReferrer = bonus
		_, err = s.depositRepo.Collection().UpdateOne(sessCtx,
			bson.M{"_id": deposit.ID},
			bson.M{"$set": bson.M{
				"status":                 deposit.Status,
				"approved_at":            deposit.ApprovedAt,
				"bonus_paid_to_referrer": bonus,
			}})
		if err != nil {
			return nil, fmt.Errorf("failed to update deposit: %w", err)
		}

		result.Deposit = &deposit
		return result, nil
	}

	raw, err := session.WithTransaction(ctx, callback)
	if err != nil {
		return nil, err
	}
	return raw.(*DepositApproval), nil
}

func (s *approvalService) RejectDeposit(depositID, reason string) (*models.Deposit, error) {
	objID, err := primitive.ObjectIDFromHex(depositID)
	if err != nil {
		return nil, errors.New("invalid deposit ID")
	}

	deposit, err := s.depositRepo.GetDepositByID(objID)
	if err != nil {
		return nil, err
	}
	if deposit == nil {
		return nil, ErrDepositNotFound
	}
	if deposit.Status != models.RequestStatusPending {
		return nil, ErrAlreadyReviewed
	}

	if reason == "" {
		reason = "No reason provided"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	now := time.Now()
	_, err = s.depositRepo.Collection().UpdateOne(ctx,
		bson.M{"_id": objID, "status": models.RequestStatusPending},
		bson.M{"$set": bson.M{
			"status":      models.RequestStatusRejected,
			"admin_notes": reason,
			"rejected_at": now,
		}})
	if err != nil {
		return nil, err
	}

	deposit.Status = models.RequestStatusRejected
	deposit.AdminNotes = reason
	deposit.RejectedAt = &now
	return deposit, nil
}

func (s *approvalService) ApproveWithdrawal(withdrawalID string) (*WithdrawalApproval, error) {
	objID, err := primitive.ObjectIDFromHex(withdrawalID)
	if err != nil {
		return nil, errors.New("invalid withdrawal ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	session, err := s.userRepo.Collection().Database().Client().StartSession()
	if err != nil {
		return nil, fmt.Errorf("failed to start session: %w", err)
	}
	defer session.EndSession(ctx)

	callback := func(sessCtx mongo.SessionContext) (interface{}, error) {
		var withdrawal models.Withdrawal
		err := s.withdrawalRepo.Collection().FindOne(sessCtx, bson.M{"_id": objID}).Decode(&withdrawal)
		if err == mongo.ErrNoDocuments {
			return nil, ErrWithdrawalNotFound
		}
		if err != nil {
			return nil, err
		}
		if withdrawal.Status != models.RequestStatusPending {
			return nil, ErrAlreadyReviewed
		}

		var user models.User
		err = s.userRepo.Collection().FindOne(sessCtx, bson.M{"_id": withdrawal.UserID}).Decode(&user)
		if err == mongo.ErrNoDocuments {
			return nil, ErrUserNotFound
		}
		if err != nil {
			return nil, err
		}

		now := time.Now()
		if !CanApproveWithdrawal(user.Balance, withdrawal.Amount) {
			_, err = s.withdrawalRepo.Collection().UpdateOne(sessCtx,
				bson.M{"_id": withdrawal.ID},
				bson.M{"$set": bson.M{
					"status":      models.RequestStatusRejected,
					"admin_notes": InsufficientFundsNote,
					"rejected_at": now,
				}})
			if err != nil {
				return nil, err
			}
			withdrawal.Status = models.RequestStatusRejected
			withdrawal.AdminNotes = InsufficientFundsNote
			withdrawal.RejectedAt = &now
			return &WithdrawalApproval{Withdrawal: &withdrawal, AutoRejected: true}, nil
		}

		_, err = s.userRepo.Collection().UpdateOne(sessCtx,
			bson.M{"_id": user.ID},
			bson.M{"$inc": bson.M{"balance": -withdrawal.Amount}})
		if err != nil {
			return nil, fmt.Errorf("failed to debit user: %w", err)
		}

		_, err = s.withdrawalRepo.Collection().UpdateOne(sessCtx,
			bson.M{"_id": withdrawal.ID},
			bson.M{"$set": bson.M{
				"status":      models.RequestStatusApproved,
				"approved_at": now,
			}})
		if err != nil {
			return nil, fmt.Errorf("failed to update withdrawal: %w", err)
		}

		withdrawal.Status = models.RequestStatusApproved
		withdrawal.ApprovedAt = &now
		return &WithdrawalApproval{Withdrawal: &withdrawal}, nil
	}

	raw, err := session.WithTransaction(ctx, callback)
	if err != nil {
		return nil, err
	}
	return raw.(*WithdrawalApproval), nil
}

func (s *approvalService) RejectWithdrawal(withdrawalID, reason string) (*models.Withdrawal, error) {
	objID, err := primitive.ObjectIDFromHex(withdrawalID)
	if err != nil {
		return nil, errors.New("invalid withdrawal ID")
	}

	withdrawal, err := s.withdrawalRepo.GetWithdrawalByID(objID)
	if err != nil {
		return nil, err
	}
	if withdrawal == nil {
		return nil, ErrWithdrawalNotFound
	}
	if withdrawal.Status != models.RequestStatusPending {
		return nil, ErrAlreadyReviewed
	}

	if reason == "" {
		reason = "No reason provided"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	now := time.Now()
	_, err = s.withdrawalRepo.Collection().UpdateOne(ctx,
		bson.M{"_id": objID, "status": models.RequestStatusPending},
		bson.M{"$set": bson.M{
			"status":      models.RequestStatusRejected,
			"admin_notes": reason,
			"rejected_at": now,
		}})
	if err != nil {
		return nil, err
	}

	withdrawal.Status = models.RequestStatusRejected
	withdrawal.AdminNotes = reason
	withdrawal.RejectedAt = &now
	return withdrawal, nil
}
