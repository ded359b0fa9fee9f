package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "ledgerbook/internal/errors"
	"ledgerbook/internal/models"
	"ledgerbook/internal/pagination"
)

// actorService handles customer and supplier business logic.
type actorService struct {
	db *gorm.DB
}

// NewActorService creates a new ActorServicer.
func NewActorService(db *gorm.DB) ActorServicer {
	return &actorService{db: db}
}

// CreateActor creates a new customer or supplier.
func (s *actorService) CreateActor(title string, actorType models.ActorType) (*models.Actor, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "title is required")
	}
	if actorType != models.ActorTypeCustomer && actorType != models.ActorTypeSupplier {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid actor type")
	}

	actor := &models.Actor{
		Title: title,
		Type:  actorType,
	}
	if err := s.db.Create(actor).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return actor, nil
}

// GetActorByID retrieves an actor by ID.
func (s *actorService) GetActorByID(id uint) (*models.Actor, error) {
	var actor models.Actor
	if err := s.db.First(&actor, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrActorNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &actor, nil
}

// ListActors retrieves a paginated list of actors, optionally filtered by
// type, ordered by title.
func (s *actorService) ListActors(actorType *models.ActorType, page pagination.PageRequest) (*pagination.PageResponse[models.Actor], error) {
	page.Defaults()

	base := s.db.Model(&models.Actor{})
	if actorType != nil {
		base = base.Where("type = ?", *actorType)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var actors []models.Actor
	if err := base.Scopes(pagination.Paginate(page)).
		Order("title ASC").
		Find(&actors).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(actors, page.Page, page.PageSize, totalItems)
	return &result, nil
}
