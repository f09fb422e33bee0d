package catalog

import (
	"context"
	"errors"
	"time"

	"github.com/paulmach/orb/geojson"
	"github.com/sirupsen/logrus"

	"realestate/server/internal/database"
	"realestate/server/internal/geometry"
	"realestate/server/internal/models"
)

// Store is the persistence boundary the catalog works against.
// *database.Database satisfies it.
type Store interface {
	FindProperties(ctx context.Context, filter models.PropertyFilter) ([]models.Property, error)
	FindPropertyByID(ctx context.Context, id int64) (*models.Property, error)
	CreateInquiry(ctx context.Context, inquiry *models.ContactInquiry) error
	ListInquiries(ctx context.Context, propertyID int64) ([]models.ContactInquiry, error)
}

// Publisher receives every inquiry after it has been persisted.
type Publisher interface {
	Push(inquiry *models.ContactInquiry) error
}

type Service struct {
	store     Store
	validator *Validator
	publisher Publisher
	logger    *logrus.Logger
	now       func() time.Time
}

// NewService wires the catalog to its store. publisher may be nil.
func NewService(store Store, publisher Publisher, logger *logrus.Logger) *Service {
	if logger == nil {
		logger = logrus.New()
	}
	return &Service{
		store:     store,
		validator: NewValidator(),
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// SearchProperties returns the listings matching every supplied criterion,
// ordered by ascending id.
func (s *Service) SearchProperties(ctx context.Context, filter models.PropertyFilter) ([]models.Property, error) {
	if err := s.validator.ValidateFilter(filter); err != nil {
		return nil, err
	}

	properties, err := s.store.FindProperties(ctx, filter)
	if err != nil {
		return nil, internal("search properties", err)
	}
	return properties, nil
}

// GetProperty returns ErrNotFound when no listing has the given id.
func (s *Service) GetProperty(ctx context.Context, id int64) (*models.Property, error) {
	p, err := s.store.FindPropertyByID(ctx, id)
	if errors.Is(err, database.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, internal("get property", err)
	}
	return p, nil
}

// CreateInquiry validates the payload, then stores it against an existing
// property. Nothing is written on ValidationError or ErrNotFound.
func (s *Service) CreateInquiry(ctx context.Context, in InquiryInput) (*models.ContactInquiry, error) {
	if err := s.validator.ValidateInquiry(in); err != nil {
		return nil, err
	}

	inquiry := &models.ContactInquiry{
		PropertyID: *in.PropertyID,
		Name:       in.Name,
		Email:      in.Email,
		Phone:      in.Phone,
		Message:    in.Message,
		CreatedAt:  s.now().UTC(),
	}

	err := s.store.CreateInquiry(ctx, inquiry)
	if errors.Is(err, database.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, internal("create inquiry", err)
	}

	s.logger.WithFields(logrus.Fields{
		"property_id": inquiry.PropertyID,
		"inquiry_id":  inquiry.ID,
	}).Info("Contact inquiry created")

	if s.publisher != nil {
		if err := s.publisher.Push(inquiry); err != nil {
			s.logger.WithError(err).WithField("inquiry_id", inquiry.ID).Warn("Dropped inquiry notification")
		}
	}

	return inquiry, nil
}

// ListInquiries returns a property's inquiries, oldest first.
func (s *Service) ListInquiries(ctx context.Context, propertyID int64) ([]models.ContactInquiry, error) {
	inquiries, err := s.store.ListInquiries(ctx, propertyID)
	if errors.Is(err, database.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, internal("list inquiries", err)
	}
	return inquiries, nil
}

// MapFeatures runs a search and returns the located results as GeoJSON.
func (s *Service) MapFeatures(ctx context.Context, filter models.PropertyFilter) (*geojson.FeatureCollection, error) {
	properties, err := s.SearchProperties(ctx, filter)
	if err != nil {
		return nil, err
	}
	return geometry.PropertyFeatures(properties), nil
}
