package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/pickup-api/internal/dto"
	appErrors "github.com/noah-isme/pickup-api/pkg/errors"
	"github.com/noah-isme/pickup-api/pkg/response"
)

type authService interface {
	VerifyPassword(ctx context.Context, password string) error
}

// AuthHandler exposes the admin password gate.
type AuthHandler struct {
	auth authService
}

// NewAuthHandler constructs AuthHandler.
func NewAuthHandler(auth authService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// VerifyPassword godoc
// @Summary Verify the admin password
// @Tags Admin
// @Accept json
// @Produce json
// @Param payload body dto.VerifyPasswordRequest true "Password payload"
// @Success 200 {object} dto.VerifyPasswordResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /admin/verify-password [post]
func (h *AuthHandler) VerifyPassword(c *gin.Context) {
	var req dto.VerifyPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "Missing password"))
		return
	}
	if err := h.auth.VerifyPassword(c.Request.Context(), req.Password); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dto.VerifyPasswordResponse{Success: true})
}
