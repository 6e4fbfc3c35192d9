package handlers

import (
	"time"

	"linkhub/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ctxClaims    = "claims"
	ctxRequestID = "requestId"

	headerRequestID = "X-Request-ID"
)

// authenticate validates the bearer token and stores its claims.
func (h *Handler) authenticate(c *gin.Context) {
	claims, err := h.services.Authenticate(c.GetHeader("Authorization"))
	if err != nil {
		h.renderError(c, "auth_authenticate_failed", err, "path", c.FullPath())
		return
	}
	c.Set(ctxClaims, claims)
	c.Next()
}

// requireAdmin must run after authenticate.
func (h *Handler) requireAdmin(c *gin.Context) {
	if err := h.services.RequireAdmin(claimsFrom(c)); err != nil {
		h.renderError(c, "auth_require_admin_failed", err, "path", c.FullPath())
		return
	}
	c.Next()
}

func claimsFrom(c *gin.Context) *service.Claims {
	v, ok := c.Get(ctxClaims)
	if !ok {
		return nil
	}
	claims, _ := v.(*service.Claims)
	return claims
}

// requestLogger tags each request with an id and logs its outcome.
func (h *Handler) requestLogger(c *gin.Context) {
	id := c.GetHeader(headerRequestID)
	if id == "" {
		id = uuid.NewString()
	}
	c.Set(ctxRequestID, id)
	c.Header(headerRequestID, id)

	start := time.Now()
	c.Next()

	if h.log == nil {
		return
	}
	h.log.Infow("http_request",
		"request_id", id,
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", c.Writer.Status(),
		"latency_ms", time.Since(start).Milliseconds(),
	)
}

func requestID(c *gin.Context) string {
	return c.GetString(ctxRequestID)
}
