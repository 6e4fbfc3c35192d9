package handlers

import (
	"net/http"

	"linkhub/internal/service"

	"github.com/gin-gonic/gin"
)

// CategoryRequest is the create/update payload for a category. An absent
// order defaults to 0.
type CategoryRequest struct {
	Name  string `json:"name" example:"Social"`
	Order *int   `json:"order,omitempty" example:"1"`
}

func (r CategoryRequest) toInput() service.CategoryInput {
	return service.CategoryInput{Name: r.Name, Order: r.Order}
}

// @Summary      List categories
// @Tags         admin-categories
// @Produce      json
// @Success      200  {array}   models.Category
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/admin/categories [get]
// @Security     BearerAuth
func (h *Handler) listCategories(c *gin.Context) {
	cats, err := h.services.ListAllCategories(c.Request.Context())
	if err != nil {
		h.renderError(c, "catalog_list_categories_failed", err)
		return
	}
	c.JSON(http.StatusOK, cats)
}

// @Summary      Get category
// @Tags         admin-categories
// @Produce      json
// @Param        id   path      int  true  "category id"
// @Success      200  {object}  models.Category
// @Failure      404  {object}  errorResponse
// @Router       /api/admin/categories/{id} [get]
// @Security     BearerAuth
func (h *Handler) getCategory(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}
	cat, err := h.services.GetCategory(c.Request.Context(), id)
	if err != nil {
		h.renderError(c, "catalog_get_category_failed", err, "id", id)
		return
	}
	c.JSON(http.StatusOK, cat)
}

// @Summary      List links of a category
// @Tags         admin-categories
// @Produce      json
// @Param        id   path      int  true  "category id"
// @Success      200  {array}   models.Link
// @Failure      404  {object}  errorResponse
// @Router       /api/admin/categories/{id}/links [get]
// @Security     BearerAuth
func (h *Handler) listCategoryLinks(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}
	links, err := h.services.ListCategoryLinks(c.Request.Context(), id)
	if err != nil {
		h.renderError(c, "catalog_list_category_links_failed", err, "id", id)
		return
	}
	c.JSON(http.StatusOK, links)
}

// @Summary      Create category
// @Tags         admin-categories
// @Accept       json
// @Produce      json
// @Param        input  body      CategoryRequest  true  "category"
// @Success      201    {object}  models.Category
// @Failure      400    {object}  errorResponse
// @Router       /api/admin/categories [post]
// @Security     BearerAuth
func (h *Handler) createCategory(c *gin.Context) {
	var input CategoryRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}
	cat, err := h.services.CreateCategory(c.Request.Context(), input.toInput())
	if err != nil {
		h.renderError(c, "catalog_create_category_failed", err)
		return
	}
	c.JSON(http.StatusCreated, cat)
}

// @Summary      Update category
// @Tags         admin-categories
// @Accept       json
// @Produce      json
// @Param        id     path      int              true  "category id"
// @Param        input  body      CategoryRequest  true  "category"
// @Success      200    {object}  models.Category
// @Failure      400    {object}  errorResponse
// @Failure      404    {object}  errorResponse
// @Router       /api/admin/categories/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateCategory(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}
	var input CategoryRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}
	cat, err := h.services.UpdateCategory(c.Request.Context(), id, input.toInput())
	if err != nil {
		h.renderError(c, "catalog_update_category_failed", err, "id", id)
		return
	}
	c.JSON(http.StatusOK, cat)
}

// @Summary      Delete category
// @Description  Fails with 400 while the category still has links.
// @Tags         admin-categories
// @Produce      json
// @Param        id   path      int  true  "category id"
// @Success      200  {object}  messageResponse
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/admin/categories/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteCategory(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}
	if err := h.services.DeleteCategory(c.Request.Context(), id); err != nil {
		h.renderError(c, "catalog_delete_category_failed", err, "id", id)
		return
	}
	c.JSON(http.StatusOK, messageResponse{Message: "Category deleted successfully"})
}
