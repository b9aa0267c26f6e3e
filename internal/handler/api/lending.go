package api

import (
	"net/http"
	"strconv"

	"lending-ledger/internal/domain/lending"
	reqdto "lending-ledger/internal/handler/dto/request"
	resdto "lending-ledger/internal/handler/dto/response"
	"lending-ledger/internal/handler/httperr"
	"lending-ledger/internal/handler/middleware"
	"lending-ledger/internal/usecase/commands"
	"lending-ledger/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type LendingHandler struct {
	cmds commands.LendingCommands
	q    queries.LendingQueries
}

func NewLendingHandler(cmds commands.LendingCommands, q queries.LendingQueries) *LendingHandler {
	return &LendingHandler{cmds: cmds, q: q}
}

// @Summary Submit lending request
// @Description Ask to borrow one unit of an item
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SubmitLendingRequest true "Submit request"
// @Success 201 {object} resdto.LendingRequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /requests [post]
func (h *LendingHandler) Submit(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.SubmitLendingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	id, err := h.cmds.SubmitRequest(c.Request.Context(), commands.SubmitRequestInput{
		RequesterID:    userID,
		RequesterGroup: req.Group,
		ItemID:         req.ItemID,
		Justification:  req.Justification,
	})
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}

	view, err := h.q.GetRequest(c.Request.Context(), id, viewerOf(c))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load request", nil)
		return
	}
	c.Header("Location", "/api/requests/"+id.String())
	c.JSON(http.StatusCreated, resdto.FromRequestView(view))
}

// @Summary List lending requests
// @Description Newest first with keyset pagination. Requesters only see their own requests.
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param status query string false "pending, approved, rejected or returned"
// @Param itemId query string false "Item ID"
// @Param requesterId query string false "Requester ID (approvers only)"
// @Param limit query int false "Max items (default 20, max 200)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.LendingRequestListResponse
// @Failure 400 {object} httperr.Response
// @Router /requests [get]
func (h *LendingHandler) List(c *gin.Context) {
	var filter queries.RequestFilter
	if v := c.Query("status"); v != "" {
		status := lending.Status(v)
		filter.Status = &status
	}
	if v := c.Query("itemId"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid itemId", nil)
			return
		}
		filter.ItemID = &id
	}
	if v := c.Query("requesterId"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid requesterId", nil)
			return
		}
		filter.RequesterID = &id
	}
	limit := queries.DefaultListLimit
	if v := c.Query("limit"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil {
			limit = queries.ValidateLimit(iv)
		}
	}
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}

	views, next, err := h.q.ListRequests(c.Request.Context(), filter, viewerOf(c), cursor, limit)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRequestPage(views, next))
}

// @Summary Get lending request
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} resdto.LendingRequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /requests/{id} [get]
func (h *LendingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetRequest(c.Request.Context(), id, viewerOf(c))
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRequestView(view))
}

// @Summary Approve lending request
// @Description Approve a pending request and take one unit of the item
// @Tags requests
// @Accept json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Param request body reqdto.ApproveLendingRequest false "Optional due date"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /requests/{id}/approve [post]
func (h *LendingHandler) Approve(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	approverID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.ApproveLendingRequest
	if c.Request.ContentLength > 0 {
		if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
			return
		}
	}

	if err := h.cmds.ApproveRequest(c.Request.Context(), id, approverID, req.DueAt); err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Reject lending request
// @Tags requests
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /requests/{id}/reject [post]
func (h *LendingHandler) Reject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err := h.cmds.RejectRequest(c.Request.Context(), id); err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Return lent item
// @Description Close an approved request and give the unit back to the catalog
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} resdto.ReturnResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /requests/{id}/return [post]
func (h *LendingHandler) Return(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	result, err := h.cmds.ReturnRequest(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.ReturnResponse{Clamped: result.Clamped})
}

// @Summary Amend due date
// @Tags requests
// @Accept json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Param request body reqdto.AmendDueDateRequest true "New due date"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /requests/{id}/due-date [patch]
func (h *LendingHandler) AmendDueDate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.AmendDueDateRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	if err := h.cmds.AmendDueDate(c.Request.Context(), id, req.DueAt); err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func viewerOf(c *gin.Context) queries.Viewer {
	id, _ := middleware.GetUserID(c)
	role, _ := middleware.GetUserRole(c)
	return queries.Viewer{ID: id, Role: role}
}
