package handlers

import (
	"net/http"
	"strconv"

	"linkhub/internal/apperr"

	"github.com/gin-gonic/gin"
	goerrors "github.com/goliatone/go-errors"
)

const (
	errInvalidID   = "Invalid id"
	errInvalidBody = "Invalid request body"
)

// errorResponse is the body of every failed request.
type errorResponse struct {
	Error string `json:"error" example:"Link not found"`
	Code  string `json:"code" example:"NOT_FOUND"`
}

type messageResponse struct {
	Message string `json:"message" example:"Link deleted successfully"`
}

// renderError writes err as {"error","code"} with its mapped status.
// Internal errors are logged with their cause and rendered generically.
func (h *Handler) renderError(c *gin.Context, logKey string, err error, kv ...interface{}) {
	rich := apperr.Resolve(err)
	status := rich.Code
	msg := rich.Message
	if rich.Category == goerrors.CategoryInternal {
		msg = apperr.InternalMessage
		if h.log != nil {
			fields := append([]interface{}{"err", err, "request_id", requestID(c)}, kv...)
			h.log.Errorw(logKey, fields...)
		}
	} else if h.log != nil {
		fields := append([]interface{}{"status", status, "reason", rich.Message}, kv...)
		h.log.Debugw(logKey, fields...)
	}
	c.AbortWithStatusJSON(status, errorResponse{Error: msg, Code: rich.TextCode})
}

// bindJSONOrBadRequest tries to bind the request body into dst and writes a 400 JSON on failure.
// Returns false if the request was already handled (aborted), true otherwise.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if h.log != nil {
			h.log.Infow("http_bad_request_body", "path", c.FullPath(), "err", err)
		}
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{Error: errInvalidBody, Code: apperr.TextValidation})
		return false
	}
	return true
}

// idParam parses the :id path parameter, writing a 400 on failure.
func (h *Handler) idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{Error: errInvalidID, Code: apperr.TextValidation})
		return 0, false
	}
	return id, true
}
