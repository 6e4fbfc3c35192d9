package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// includeEmpty is true only for ?includeEmpty=true, exactly.
func includeEmpty(c *gin.Context) bool {
	return c.Query("includeEmpty") == "true"
}

// @Summary      Public links
// @Description  Categories ordered by order then id, each with its active links. Categories without active links are omitted unless includeEmpty=true.
// @Tags         public
// @Produce      json
// @Param        includeEmpty  query     bool  false  "keep categories without active links"
// @Success      200           {array}   models.PublicCategory
// @Failure      500           {object}  errorResponse
// @Router       /api/links [get]
func (h *Handler) listPublicCategories(c *gin.Context) {
	cats, err := h.services.ListPublicCategories(c.Request.Context(), includeEmpty(c))
	if err != nil {
		h.renderError(c, "catalog_public_categories_failed", err)
		return
	}
	c.JSON(http.StatusOK, cats)
}

// @Summary      Public links by tag
// @Description  Active tagged links partitioned by tag, newest first within each tag.
// @Tags         public
// @Produce      json
// @Success      200  {object}  models.LinksByTag
// @Failure      500  {object}  errorResponse
// @Router       /api/links/grouped [get]
func (h *Handler) listPublicLinksByTag(c *gin.Context) {
	grouped, err := h.services.ListPublicLinksByTag(c.Request.Context())
	if err != nil {
		h.renderError(c, "catalog_public_grouped_failed", err)
		return
	}
	c.JSON(http.StatusOK, grouped)
}
