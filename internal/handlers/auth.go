package handlers

import (
	"net/http"

	"linkhub/internal/apperr"
	"linkhub/internal/service"

	"github.com/gin-gonic/gin"
)

// LoginRequest is the sign-in payload. Blank fields are rejected by the
// service so the message matches the documented one.
type LoginRequest struct {
	Username string `json:"username" example:"alice"`
	Password string `json:"password" example:"secret1"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" example:"secret1"`
	NewPassword     string `json:"newPassword" example:"secret2"`
}

// @Summary      Sign in
// @Description  Verifies credentials and returns a bearer token with the public user.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input  body      LoginRequest  true  "credentials"
// @Success      200    {object}  service.LoginResult
// @Failure      400    {object}  errorResponse
// @Failure      401    {object}  errorResponse
// @Failure      500    {object}  errorResponse
// @Router       /api/auth/login [post]
func (h *Handler) login(c *gin.Context) {
	var input LoginRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	res, err := h.services.Login(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		h.renderError(c, "auth_login_failed", err, "username", input.Username)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary      Change password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input  body      ChangePasswordRequest  true  "current and new password"
// @Success      200    {object}  messageResponse
// @Failure      400    {object}  errorResponse
// @Failure      401    {object}  errorResponse
// @Failure      404    {object}  errorResponse
// @Router       /api/auth/password [patch]
// @Security     BearerAuth
func (h *Handler) changePassword(c *gin.Context) {
	claims := claimsFrom(c)
	if claims == nil {
		h.renderError(c, "auth_change_password_failed", apperr.Unauthorized(service.MsgNoToken))
		return
	}
	var input ChangePasswordRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	err := h.services.ChangePassword(c.Request.Context(), claims.UserID, input.CurrentPassword, input.NewPassword)
	if err != nil {
		h.renderError(c, "auth_change_password_failed", err, "user_id", claims.UserID)
		return
	}
	c.JSON(http.StatusOK, messageResponse{Message: "Password updated successfully"})
}
