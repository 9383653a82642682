package service

import (
	"github.com/roobux/backend/internal/models"
	"github.com/roobux/backend/internal/repository"
)

type ContentService interface {
	GetSiteContent() (*models.SiteContent, error)
	SetSiteContent(content *models.SiteContent) error
	GetThemeSettings() (*models.ThemeSettings, error)
	SetThemeSettings(theme *models.ThemeSettings) error
	GetReferralSettings() (*models.ReferralSettings, error)
	SetReferralSettings(settings *models.ReferralSettings) error
	IsMaintenance() (bool, error)
	SetMaintenance(on bool) error
}

type contentService struct {
	contentRepo repository.ContentRepository
}

func NewContentService(contentRepo repository.ContentRepository) ContentService {
	return &contentService{contentRepo: contentRepo}
}

func (s *contentService) GetSiteContent() (*models.SiteContent, error) {
	content, err := s.contentRepo.GetSiteContent()
	if err != nil {
		return nil, err
	}
	if content == nil {
		content = &models.SiteContent{}
	}
	return content, nil
}

func (s *contentService) SetSiteContent(content *models.SiteContent) error {
	return s.contentRepo.SetSiteContent(content)
}

func (s *contentService) GetThemeSettings() (*models.ThemeSettings, error) {
	theme, err := s.contentRepo.GetThemeSettings()
	if err != nil {
		return nil, err
	}
	if theme == nil {
		theme = &models.ThemeSettings{Mode: "dark"}
	}
	return theme, nil
}

func (s *contentService) SetThemeSettings(theme *models.ThemeSettings) error {
	return s.contentRepo.SetThemeSettings(theme)
}

func (s *contentService) GetReferralSettings() (*models.ReferralSettings, error) {
	settings, err := s.contentRepo.GetReferralSettings()
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = &models.ReferralSettings{}
	}
	return settings, nil
}

func (s *contentService) SetReferralSettings(settings *models.ReferralSettings) error {
	return s.contentRepo.SetReferralSettings(settings)
}

// IsMaintenance reads the global flag. A missing status document means the
// site is up.
func (s *contentService) IsMaintenance() (bool, error) {
	status, err := s.contentRepo.GetSiteStatus()
	if err != nil {
		return false, err
	}
	if status == nil {
		return false, nil
	}
	return status.IsMaintenance, nil
}

func (s *contentService) SetMaintenance(on bool) error {
	return s.contentRepo.SetSiteStatus(&models.SiteStatus{IsMaintenance: on})
}
