package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerrors "blood-link.backend/internal/domain/errors"
	"blood-link.backend/internal/interfaces/http/middleware"
	"blood-link.backend/internal/interfaces/http/response"
	"blood-link.backend/internal/metrics"
	"blood-link.backend/internal/usecases"
)

// ReportHandler handles medical report uploads
type ReportHandler struct {
	reportUsecase *usecases.ReportUsecase
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportUsecase *usecases.ReportUsecase) *ReportHandler {
	return &ReportHandler{
		reportUsecase: reportUsecase,
	}
}

// UploadForm describes the expected upload for clients probing with GET
// GET /upload_report
func (h *ReportHandler) UploadForm(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{
		"message": "POST a multipart form with a '" + ReportFileField + "' file to run the eligibility check",
	})
}

// Upload re-runs the eligibility gate over a fresh report
// POST /upload_report
func (h *ReportHandler) Upload(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	file, header, err := c.Request.FormFile(ReportFileField)
	if err != nil {
		response.Error(c, domainerrors.BadRequest("a '"+ReportFileField+"' file is required"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		response.Error(c, domainerrors.BadRequest("could not read uploaded file"))
		return
	}

	verified, evalErr, err := h.reportUsecase.Evaluate(c.Request.Context(), userID, header.Filename, data)
	if err != nil {
		response.Error(c, err)
		return
	}

	if evalErr != nil {
		metrics.ReportsEvaluated.WithLabelValues("unavailable").Inc()
		// Fails open to unverified; the caller learns why via the warning.
		response.Success(c, http.StatusOK, gin.H{
			"verified": false,
			"warning":  "could not verify medical report; marked unverified",
		})
		return
	}

	if verified {
		metrics.ReportsEvaluated.WithLabelValues("eligible").Inc()
	} else {
		metrics.ReportsEvaluated.WithLabelValues("ineligible").Inc()
	}
	response.Success(c, http.StatusOK, gin.H{"verified": verified})
}
