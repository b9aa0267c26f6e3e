package api

import (
	"net/http"

	reqdto "lending-ledger/internal/handler/dto/request"
	resdto "lending-ledger/internal/handler/dto/response"
	"lending-ledger/internal/handler/httperr"
	"lending-ledger/internal/usecase/commands"
	"lending-ledger/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ItemHandler struct {
	cmds commands.CatalogCommands
	q    queries.CatalogQueries
}

func NewItemHandler(cmds commands.CatalogCommands, q queries.CatalogQueries) *ItemHandler {
	return &ItemHandler{cmds: cmds, q: q}
}

// @Summary List items
// @Description List catalog items ordered by name
// @Tags items
// @Produce json
// @Security BearerAuth
// @Param category query string false "Exact category"
// @Param search query string false "Case-insensitive name search"
// @Success 200 {array} resdto.ItemResponse
// @Router /items [get]
func (h *ItemHandler) List(c *gin.Context) {
	filter := queries.ItemFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
	}
	views, err := h.q.ListItems(c.Request.Context(), filter)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromItemViews(views))
}

// @Summary Get item
// @Tags items
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Success 200 {object} resdto.ItemResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /items/{id} [get]
func (h *ItemHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetItem(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromItemView(view))
}

// @Summary Create item
// @Description Add an item; available starts equal to quantity
// @Tags items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateItemRequest true "Create item request"
// @Success 201 {object} resdto.ItemIDResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /items [post]
func (h *ItemHandler) Create(c *gin.Context) {
	var req reqdto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	id, err := h.cmds.CreateItem(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.Header("Location", "/api/items/"+id.String())
	c.JSON(http.StatusCreated, resdto.ItemIDResponse{ID: id})
}

// @Summary Upsert item
// @Description Create the item when no id is given or the id is unknown, otherwise replace its fields
// @Tags items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpsertItemRequest true "Upsert item request"
// @Success 200 {object} resdto.ItemIDResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /items [put]
func (h *ItemHandler) Upsert(c *gin.Context) {
	var req reqdto.UpsertItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	id, err := h.cmds.UpsertItem(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.ItemIDResponse{ID: id})
}

// @Summary Update item
// @Description Partial update; a quantity change moves available by the same amount
// @Tags items
// @Accept json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Param request body reqdto.UpdateItemRequest true "Update item request"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /items/{id} [patch]
func (h *ItemHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.UpdateItemRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	if err := h.cmds.UpdateItem(c.Request.Context(), id, req.ToPatch()); err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete item
// @Description Remove an item; requests that reference it are kept
// @Tags items
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /items/{id} [delete]
func (h *ItemHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err := h.cmds.DeleteItem(c.Request.Context(), id); err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
