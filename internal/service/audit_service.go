package service

import (
	"time"

	"github.com/roobux/backend/internal/models"
	"github.com/roobux/backend/internal/repository"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuditService records admin actions. Logging must never fail the action it
// describes, so errors are logged and swallowed.
type AuditService interface {
	LogAction(adminID, adminEmail, action, ip string, details map[string]interface{})
	GetLogs(page, limit int) ([]*models.AdminLog, error)
}

type auditService struct {
	logRepo repository.AdminLogRepository
}

func NewAuditService(logRepo repository.AdminLogRepository) AuditService {
	return &auditService{logRepo: logRepo}
}

func (s *auditService) LogAction(adminID, adminEmail, action, ip string, details map[string]interface{}) {
	entry := &models.AdminLog{
		AdminEmail: adminEmail,
		Action:     action,
		Details:    details,
		IPAddress:  ip,
		Timestamp:  time.Now().UTC(),
	}
	if oid, err := primitive.ObjectIDFromHex(adminID); err == nil {
		entry.AdminID = oid
	}
	if err := s.logRepo.SaveLog(entry); err != nil {
		logrus.WithError(err).WithField("action", action).Error("failed to write audit log")
	}
}

func (s *auditService) GetLogs(page, limit int) ([]*models.AdminLog, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 200 {
		limit = 50
	}
	return s.logRepo.GetAllLogs(page, limit)
}
