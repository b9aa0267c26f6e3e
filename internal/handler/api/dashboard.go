package api

import (
	"net/http"

	resdto "lending-ledger/internal/handler/dto/response"
	"lending-ledger/internal/handler/httperr"
	"lending-ledger/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	q queries.LendingQueries
}

func NewDashboardHandler(q queries.LendingQueries) *DashboardHandler {
	return &DashboardHandler{q: q}
}

// @Summary Approver dashboard summary
// @Description Request counts per status and inventory totals
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.SummaryResponse
// @Failure 403 {object} httperr.Response
// @Router /dashboard/summary [get]
func (h *DashboardHandler) Summary(c *gin.Context) {
	view, err := h.q.Summary(c.Request.Context())
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSummaryView(view))
}
