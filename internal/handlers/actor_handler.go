package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "ledgerbook/internal/errors"
	"ledgerbook/internal/models"
	"ledgerbook/internal/pagination"
	"ledgerbook/internal/services"
)

// ActorHandler handles customer and supplier requests.
type ActorHandler struct {
	actorService services.ActorServicer
}

// NewActorHandler creates a new ActorHandler.
func NewActorHandler(actorService services.ActorServicer) *ActorHandler {
	return &ActorHandler{actorService: actorService}
}

// CreateActorRequest represents the request payload for creating an actor.
type CreateActorRequest struct {
	Title string           `json:"title" binding:"required,max=200"`
	Type  models.ActorType `json:"type" binding:"required,actor_type"`
}

// CreateActor handles the creation of a new customer or supplier.
func (h *ActorHandler) CreateActor(c *gin.Context) {
	var req CreateActorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	actor, err := h.actorService.CreateActor(req.Title, req.Type)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"actor": actor})
}

// GetActor handles retrieving a single actor.
func (h *ActorHandler) GetActor(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	actor, err := h.actorService.GetActorByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"actor": actor})
}

// listActorsQuery holds the query parameters for listing actors.
type listActorsQuery struct {
	pagination.PageRequest
	Type *models.ActorType `form:"type" binding:"omitempty,actor_type"`
}

// ListActors handles listing actors, optionally filtered by type.
func (h *ActorHandler) ListActors(c *gin.Context) {
	var query listActorsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.actorService.ListActors(query.Type, query.PageRequest)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
