package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	domainerrors "blood-link.backend/internal/domain/errors"
	"blood-link.backend/internal/interfaces/http/middleware"
	"blood-link.backend/internal/interfaces/http/response"
	"blood-link.backend/internal/metrics"
	"blood-link.backend/internal/usecases"
	"blood-link.backend/pkg/logger"
)

// SOSHandler handles SOS request endpoints
type SOSHandler struct {
	sosUsecase *usecases.SOSUsecase
}

// NewSOSHandler creates a new SOS handler
func NewSOSHandler(sosUsecase *usecases.SOSUsecase) *SOSHandler {
	return &SOSHandler{
		sosUsecase: sosUsecase,
	}
}

// Raise creates an SOS request for the logged-in user and fires the alert
// GET /sosrequest
func (h *SOSHandler) Raise(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	req, dispatchErr, err := h.sosUsecase.RaiseRequest(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("user not found"))
			return
		}
		response.Error(c, err)
		return
	}
	metrics.SOSRequestsTotal.Inc()

	body := gin.H{"request": req}
	if dispatchErr != nil {
		metrics.AlertDispatchFailures.Inc()
		logger.Error(c.Request.Context(), "sos alert dispatch failed",
			zap.String("request_id", req.ID.String()),
			zap.Error(dispatchErr),
		)
		body["warning"] = "request created but the alert could not be sent"
	}

	response.Success(c, http.StatusCreated, body)
}

// Accept shows the accept page data for a raised request
// GET /accept/:id
func (h *SOSHandler) Accept(c *gin.Context) {
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid request id"))
		return
	}

	view, err := h.sosUsecase.ViewAccept(c.Request.Context(), requestID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("request not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"request":   view.Request,
		"patient":   profileJSON(view.Patient),
		"donors":    view.Donors,
		"hospitals": view.Hospitals,
	})
}
