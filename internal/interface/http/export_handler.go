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

type ExportHandler struct {
	Repo   repository.ExportRepository
	Logger *logrus.Logger
}

func NewExportHandler(repo repository.ExportRepository, logger *logrus.Logger) *ExportHandler {
	return &ExportHandler{Repo: repo, Logger: logger}
}

type brokerPropertiesQuery struct {
	PageSize   int `form:"pageSize" binding:"required,min=1,max=20"`
	PageNumber int `form:"pageNumber" binding:"min=0"`
}

// GetPropertyByID handles GET /export/offices/:officeId/properties/:propertyId.
// An absent property is an explicit 404 rather than an empty 200 body.
func (h *ExportHandler) GetPropertyByID(c *gin.Context) {
	officeID, err := uuid.Parse(c.Param("officeId"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid office id", nil)
		return
	}
	propertyID, err := uuid.Parse(c.Param("propertyId"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid property id", nil)
		return
	}

	property, err := h.Repo.GetPropertyByID(c.Request.Context(), officeID, propertyID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "property not found", nil)
			return
		}
		h.Logger.WithError(err).WithFields(logrus.Fields{
			"office_id":   officeID,
			"property_id": propertyID,
		}).Error("get property failed")
		response.Error(c, http.StatusInternalServerError, "failed to fetch property", nil)
		return
	}
	c.JSON(http.StatusOK, property)
}

// GetPropertiesForBroker handles
// GET /export/offices/:officeId/brokers/:brokerId/properties.
// Pagination bounds (pageSize 1..20, pageNumber >= 0) are rejected here
// before any query runs.
func (h *ExportHandler) GetPropertiesForBroker(c *gin.Context) {
	officeID, err := uuid.Parse(c.Param("officeId"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid office id", nil)
		return
	}
	brokerID, err := uuid.Parse(c.Param("brokerId"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid broker id", nil)
		return
	}

	var q brokerPropertiesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid pagination parameters", validation.ToDetails(err))
		return
	}

	page, err := h.Repo.GetPropertiesShortInfoForBroker(c.Request.Context(), officeID, brokerID, q.PageSize, q.PageNumber)
	if err != nil {
		h.Logger.WithError(err).WithFields(logrus.Fields{
			"office_id": officeID,
			"broker_id": brokerID,
		}).Error("get broker properties failed")
		response.Error(c, http.StatusInternalServerError, "failed to fetch properties", nil)
		return
	}
	c.JSON(http.StatusOK, page)
}

// GetAllOffices handles GET /export/offices.
func (h *ExportHandler) GetAllOffices(c *gin.Context) {
	offices, err := h.Repo.GetAllOffices(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("list offices failed")
		response.Error(c, http.StatusInternalServerError, "failed to fetch offices", nil)
		return
	}
	if offices == nil {
		offices = []entity.Office{}
	}
	c.JSON(http.StatusOK, offices)
}
