package service

import (
	"errors"
	"time"

	"github.com/roobux/backend/internal/models"
	"github.com/roobux/backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TestimonialService interface {
	CreateTestimonial(testimonial *models.Testimonial) error
	GetVisibleTestimonials(limit int64) ([]*models.Testimonial, error)
	GetAllTestimonials() ([]*models.Testimonial, error)
	UpdateTestimonial(id string, testimonial *models.Testimonial) error
	DeleteTestimonial(id string) error
}

type testimonialService struct {
	testimonialRepo repository.TestimonialRepository
}

func NewTestimonialService(testimonialRepo repository.TestimonialRepository) TestimonialService {
	return &testimonialService{testimonialRepo: testimonialRepo}
}

func (s *testimonialService) CreateTestimonial(testimonial *models.Testimonial) error {
	if testimonial.Name == "" || testimonial.Text == "" {
		return errors.New("name and text are required")
	}
	if testimonial.Rating < 1 || testimonial.Rating > 5 {
		return errors.New("rating must be between 1 and 5")
	}
	testimonial.CreatedAt = time.Now().UTC()
	return s.testimonialRepo.SaveTestimonial(testimonial)
}

func (s *testimonialService) GetVisibleTestimonials(limit int64) ([]*models.Testimonial, error) {
	return s.testimonialRepo.GetVisibleTestimonials(limit)
}

func (s *testimonialService) GetAllTestimonials() ([]*models.Testimonial, error) {
	return s.testimonialRepo.GetAllTestimonials()
}

func (s *testimonialService) UpdateTestimonial(id string, testimonial *models.Testimonial) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid testimonial ID")
	}
	if testimonial.Rating < 1 || testimonial.Rating > 5 {
		return errors.New("rating must be between 1 and 5")
	}
	return s.testimonialRepo.UpdateTestimonial(objID, testimonial)
}

func (s *testimonialService) DeleteTestimonial(id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid testimonial ID")
	}
	return s.testimonialRepo.DeleteTestimonial(objID)
}
