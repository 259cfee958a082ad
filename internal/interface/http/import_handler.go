package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/realtyhub/export-api/internal/domain/entity"
	"github.com/realtyhub/export-api/internal/domain/repository"
	"github.com/realtyhub/export-api/pkg/response"
	"github.com/realtyhub/export-api/pkg/validation"
)

type ImportHandler struct {
	Repo   repository.ImportRepository
	Logger *logrus.Logger
}

func NewImportHandler(repo repository.ImportRepository, logger *logrus.Logger) *ImportHandler {
	return &ImportHandler{Repo: repo, Logger: logger}
}

type emailPayload struct {
	Email string `json:"email" binding:"required,email"`
	Type  string `json:"type"`
}

type phoneNumberPayload struct {
	Number string `json:"number" binding:"required"`
	Type   string `json:"type"`
}

type createBrokerRequest struct {
	FirstName    string               `json:"firstName" binding:"required"`
	LastName     string               `json:"lastName" binding:"required"`
	OfficeID     string               `json:"officeId" binding:"required,uuid"`
	IsPaidUser   *bool                `json:"isPaidUser"`
	DegreeBefore []string             `json:"degreeBefore"`
	Emails       []emailPayload       `json:"emails" binding:"omitempty,dive"`
	PhoneNumbers []phoneNumberPayload `json:"phoneNumbers" binding:"omitempty,dive"`
}

type updateBrokerRequest struct {
	FirstName    string               `json:"firstName" binding:"required"`
	LastName     string               `json:"lastName" binding:"required"`
	IsPaidUser   *bool                `json:"isPaidUser"`
	DegreeBefore []string             `json:"degreeBefore"`
	Emails       []emailPayload       `json:"emails" binding:"omitempty,dive"`
	PhoneNumbers []phoneNumberPayload `json:"phoneNumbers" binding:"omitempty,dive"`
}

func toContactEntities(emails []emailPayload, phones []phoneNumberPayload) ([]entity.Email, []entity.PhoneNumber) {
	var es []entity.Email
	for _, e := range emails {
		es = append(es, entity.Email{Email: e.Email, Type: e.Type})
	}
	var ps []entity.PhoneNumber
	for _, p := range phones {
		ps = append(ps, entity.PhoneNumber{Number: p.Number, Type: p.Type})
	}
	return es, ps
}

// CreateBroker handles POST /export/brokers.
func (h *ImportHandler) CreateBroker(c *gin.Context) {
	var req createBrokerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	officeID, err := uuid.Parse(req.OfficeID)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid office id", nil)
		return
	}

	emails, phones := toContactEntities(req.Emails, req.PhoneNumbers)
	broker := &entity.Broker{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		OfficeID:     officeID,
		IsPaidUser:   req.IsPaidUser,
		DegreeBefore: req.DegreeBefore,
		Emails:       emails,
		PhoneNumbers: phones,
	}

	created, err := h.Repo.CreateBroker(c.Request.Context(), broker)
	if err != nil {
		h.Logger.WithError(err).Error("create broker failed")
		response.Error(c, http.StatusInternalServerError, "failed to create broker", nil)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateBroker handles PUT /export/brokers/:brokerId. The path id always wins
// over anything in the body.
func (h *ImportHandler) UpdateBroker(c *gin.Context) {
	brokerID, err := uuid.Parse(c.Param("brokerId"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid broker id", nil)
		return
	}

	var req updateBrokerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	emails, phones := toContactEntities(req.Emails, req.PhoneNumbers)
	broker := &entity.Broker{
		ID:           brokerID,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		IsPaidUser:   req.IsPaidUser,
		DegreeBefore: req.DegreeBefore,
		Emails:       emails,
		PhoneNumbers: phones,
	}

	updated, err := h.Repo.UpdateBroker(c.Request.Context(), broker)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "broker not found", nil)
			return
		}
		h.Logger.WithError(err).WithField("broker_id", brokerID).Error("update broker failed")
		response.Error(c, http.StatusInternalServerError, "failed to update broker", nil)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteBroker handles DELETE /export/brokers/:brokerId. Dependent rows go
// with the broker via the schema's cascading deletes.
func (h *ImportHandler) DeleteBroker(c *gin.Context) {
	brokerID, err := uuid.Parse(c.Param("brokerId"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid broker id", nil)
		return
	}

	if err := h.Repo.DeleteBroker(c.Request.Context(), brokerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "broker not found", nil)
			return
		}
		h.Logger.WithError(err).WithField("broker_id", brokerID).Error("delete broker failed")
		response.Error(c, http.StatusInternalServerError, "failed to delete broker", nil)
		return
	}
	c.Status(http.StatusNoContent)
}
