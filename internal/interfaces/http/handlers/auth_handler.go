package handlers

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"blood-link.backend/internal/domain/entities"
	domainerrors "blood-link.backend/internal/domain/errors"
	"blood-link.backend/internal/interfaces/http/middleware"
	"blood-link.backend/internal/interfaces/http/response"
	"blood-link.backend/internal/metrics"
	"blood-link.backend/internal/usecases"
	"blood-link.backend/pkg/crypto"
	"blood-link.backend/pkg/jwt"
	"blood-link.backend/pkg/logger"
	"blood-link.backend/pkg/redis"
)

// ReportFileField is the multipart field carrying the medical report upload
const ReportFileField = "report"

// AuthHandler handles signup, login, logout and the profile page
type AuthHandler struct {
	authUsecase   *usecases.AuthUsecase
	reportUsecase *usecases.ReportUsecase
	sessions      *redis.SessionStore
	sessionTTL    time.Duration
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(
	authUsecase *usecases.AuthUsecase,
	reportUsecase *usecases.ReportUsecase,
	sessions *redis.SessionStore,
	sessionTTL time.Duration,
) *AuthHandler {
	return &AuthHandler{
		authUsecase:   authUsecase,
		reportUsecase: reportUsecase,
		sessions:      sessions,
		sessionTTL:    sessionTTL,
	}
}

// Signup handles user registration
// POST /signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var input entities.SignupInput
	if err := c.ShouldBind(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	user, pair, err := h.authUsecase.Register(c.Request.Context(), &input)
	if err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			response.Error(c, domainerrors.Conflict("email already registered"))
			return
		}
		response.Error(c, err)
		return
	}
	metrics.SignupsTotal.Inc()

	// The report upload is optional and must never sink the signup: the
	// account is created unverified and the warning rides along.
	var warning string
	if file, header, err := c.Request.FormFile(ReportFileField); err == nil {
		verified, evalErr := h.evaluateReport(c, user, file, header)
		user.Verified = verified
		if evalErr != nil {
			warning = "could not verify medical report; account created unverified"
		}
	}

	if err := h.startSession(c, user, pair); err != nil {
		response.Error(c, err)
		return
	}

	body := gin.H{"user": profileJSON(user)}
	if warning != "" {
		body["warning"] = warning
	}
	response.Success(c, http.StatusCreated, body)
}

// Login handles user login
// POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var input entities.LoginInput
	if err := c.ShouldBind(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	user, pair, err := h.authUsecase.Login(c.Request.Context(), &input)
	if err != nil {
		if errors.Is(err, domainerrors.ErrInvalidCredentials) {
			response.Error(c, domainerrors.NewAppError(http.StatusUnauthorized, "invalid email or password", err))
			return
		}
		response.Error(c, err)
		return
	}

	if err := h.startSession(c, user, pair); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": profileJSON(user)})
}

// Logout clears the session
// GET /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if sessionID, err := c.Cookie(middleware.SessionCookieName); err == nil && sessionID != "" {
		if err := h.sessions.DeleteSession(c.Request.Context(), sessionID); err != nil {
			logger.Warn(c.Request.Context(), "failed to delete session on logout")
		}
	}
	middleware.ClearSessionCookie(c)

	response.Success(c, http.StatusOK, gin.H{"message": "logged out"})
}

// Home returns the authenticated user's profile
// GET /home
func (h *AuthHandler) Home(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	user, err := h.authUsecase.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("user not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": profileJSON(user)})
}

func (h *AuthHandler) evaluateReport(c *gin.Context, user *entities.User, file multipart.File, header *multipart.FileHeader) (bool, error) {
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return false, err
	}

	verified, evalErr, err := h.reportUsecase.Evaluate(c.Request.Context(), user.ID, header.Filename, data)
	if err != nil {
		return false, err
	}
	if evalErr != nil {
		metrics.ReportsEvaluated.WithLabelValues("unavailable").Inc()
		return false, evalErr
	}
	if verified {
		metrics.ReportsEvaluated.WithLabelValues("eligible").Inc()
	} else {
		metrics.ReportsEvaluated.WithLabelValues("ineligible").Inc()
	}
	return verified, nil
}

func (h *AuthHandler) startSession(c *gin.Context, user *entities.User, pair *jwt.TokenPair) error {
	sessionID, err := crypto.GenerateSessionID()
	if err != nil {
		return err
	}

	err = h.sessions.CreateSession(c.Request.Context(), sessionID, &redis.SessionData{
		UserID:       user.ID.String(),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, h.sessionTTL)
	if err != nil {
		return err
	}

	c.SetCookie(middleware.SessionCookieName, sessionID, int(h.sessionTTL.Seconds()), "/", "", false, true)
	return nil
}

func profileJSON(user *entities.User) gin.H {
	return gin.H{
		"id":       user.ID,
		"name":     user.Name,
		"email":    user.Email,
		"bloodGrp": user.BloodGroup,
		"address":  user.Address,
		"age":      user.Age,
		"gender":   user.Gender,
		"liveLoc":  user.LiveLocation,
		"phone":    user.Phone,
		"verified": user.Verified,
	}
}
