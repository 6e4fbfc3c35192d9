package handlers

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"
	"strings"

	"linkhub/internal/service"

	"github.com/gin-gonic/gin"
)

// LinkRequest is the create/update payload for a link. IsActive is kept raw
// because only a JSON true activates a link; categoryId may be a number or a
// numeric string.
type LinkRequest struct {
	Name       string `json:"name" example:"GitHub"`
	URL        string `json:"url" example:"https://github.com"`
	CategoryID any    `json:"categoryId" swaggertype:"integer" example:"1"`
	Order      *int   `json:"order,omitempty" example:"0"`
	IsActive   any    `json:"isActive" swaggertype:"boolean" example:"true"`
	Tag        string `json:"tag,omitempty" example:"SHOPEE"`
}

func (r LinkRequest) toInput() service.LinkInput {
	return service.LinkInput{
		Name:       r.Name,
		URL:        r.URL,
		CategoryID: coerceID(r.CategoryID),
		Order:      r.Order,
		IsActive:   r.IsActive,
		Tag:        r.Tag,
	}
}

// coerceID returns 0 for anything that is not a positive whole number.
func coerceID(v any) int64 {
	switch t := v.(type) {
	case float64:
		if t > 0 && t == math.Trunc(t) && t < math.MaxInt64 {
			return int64(t)
		}
	case json.Number:
		if n, err := t.Int64(); err == nil && n > 0 {
			return n
		}
	case string:
		if n, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64); err == nil && n > 0 {
			return n
		}
	}
	return 0
}

// @Summary      List all links
// @Description  Every link, active or not, with its category.
// @Tags         admin-links
// @Produce      json
// @Success      200  {array}   models.Link
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/admin/links [get]
// @Security     BearerAuth
func (h *Handler) listLinks(c *gin.Context) {
	links, err := h.services.ListAllLinks(c.Request.Context())
	if err != nil {
		h.renderError(c, "catalog_list_links_failed", err)
		return
	}
	c.JSON(http.StatusOK, links)
}

// @Summary      Get link
// @Tags         admin-links
// @Produce      json
// @Param        id   path      int  true  "link id"
// @Success      200  {object}  models.Link
// @Failure      404  {object}  errorResponse
// @Router       /api/admin/links/{id} [get]
// @Security     BearerAuth
func (h *Handler) getLink(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}
	l, err := h.services.GetLink(c.Request.Context(), id)
	if err != nil {
		h.renderError(c, "catalog_get_link_failed", err, "id", id)
		return
	}
	c.JSON(http.StatusOK, l)
}

// @Summary      Create link
// @Tags         admin-links
// @Accept       json
// @Produce      json
// @Param        input  body      LinkRequest  true  "link"
// @Success      201    {object}  models.Link
// @Failure      400    {object}  errorResponse
// @Failure      404    {object}  errorResponse
// @Router       /api/admin/links [post]
// @Security     BearerAuth
func (h *Handler) createLink(c *gin.Context) {
	var input LinkRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}
	l, err := h.services.CreateLink(c.Request.Context(), input.toInput())
	if err != nil {
		h.renderError(c, "catalog_create_link_failed", err)
		return
	}
	c.JSON(http.StatusCreated, l)
}

// @Summary      Update link
// @Tags         admin-links
// @Accept       json
// @Produce      json
// @Param        id     path      int          true  "link id"
// @Param        input  body      LinkRequest  true  "link"
// @Success      200    {object}  models.Link
// @Failure      400    {object}  errorResponse
// @Failure      404    {object}  errorResponse
// @Router       /api/admin/links/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateLink(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}
	var input LinkRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}
	l, err := h.services.UpdateLink(c.Request.Context(), id, input.toInput())
	if err != nil {
		h.renderError(c, "catalog_update_link_failed", err, "id", id)
		return
	}
	c.JSON(http.StatusOK, l)
}

// @Summary      Delete link
// @Tags         admin-links
// @Produce      json
// @Param        id   path      int  true  "link id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/admin/links/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteLink(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}
	if err := h.services.DeleteLink(c.Request.Context(), id); err != nil {
		h.renderError(c, "catalog_delete_link_failed", err, "id", id)
		return
	}
	c.JSON(http.StatusOK, messageResponse{Message: "Link deleted successfully"})
}
