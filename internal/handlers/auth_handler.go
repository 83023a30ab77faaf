package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/logger"
	"fintrack/internal/services"
)

// TokenIssuer signs admin tokens.
type TokenIssuer interface {
	Issue() (string, time.Time, error)
}

// AuthHandler exchanges the admin password for a bearer token.
type AuthHandler struct {
	passwordHash []byte
	issuer       TokenIssuer
	auditService services.AuditServicer
}

// NewAuthHandler creates a new AuthHandler. An empty passwordHash disables
// token issuance.
func NewAuthHandler(passwordHash string, issuer TokenIssuer, auditService services.AuditServicer) *AuthHandler {
	return &AuthHandler{passwordHash: []byte(passwordHash), issuer: issuer, auditService: auditService}
}

// TokenRequest represents the admin login payload.
type TokenRequest struct {
	Password string `json:"password" binding:"required,max=128"`
}

// TokenResponse represents an issued admin token.
type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// IssueToken handles admin login
// @Summary     Admin token
// @Description Exchange the admin password for a bearer token used by the backup routes.
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body TokenRequest true "Admin password"
// @Success     200 {object} TokenResponse "Token issued"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Invalid password"
// @Failure     503 {object} ErrorResponse "Admin authentication not configured"
// @Router      /auth/token [post]
func (h *AuthHandler) IssueToken(c *gin.Context) {
	if len(h.passwordHash) == 0 {
		respondWithError(c, apperrors.ErrAuthNotConfigured)
		return
	}

	var req TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if err := bcrypt.CompareHashAndPassword(h.passwordHash, []byte(req.Password)); err != nil {
		logger.Get().Warnw("admin login failed", "client_ip", c.ClientIP())
		h.auditService.Log("LOGIN_FAILED", "admin", "", c.ClientIP(), nil)
		respondWithError(c, apperrors.ErrInvalidCredentials)
		return
	}

	token, expiresAt, err := h.issuer.Issue()
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	h.auditService.Log("LOGIN", "admin", "", c.ClientIP(), nil)

	c.JSON(http.StatusOK, TokenResponse{AccessToken: token, TokenType: "Bearer", ExpiresAt: expiresAt})
}
