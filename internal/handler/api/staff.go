package api

import (
	"net/http"

	reqdto "salon-dashboard/internal/handler/dto/request"
	resdto "salon-dashboard/internal/handler/dto/response"
	"salon-dashboard/internal/handler/httperr"
	"salon-dashboard/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type StaffHandler struct {
	q queries.StaffQueries
}

func NewStaffHandler(q queries.StaffQueries) *StaffHandler {
	return &StaffHandler{q: q}
}

// @Summary List staff
// @Description Roster in seed order
// @Tags staff
// @Security BearerAuth
// @Produce json
// @Param active query bool false "Only active members"
// @Success 200 {array} resdto.StaffResponse
// @Router /staff [get]
func (h *StaffHandler) List(c *gin.Context) {
	var q reqdto.StaffQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}

	views, err := h.q.List(c.Request.Context(), q.ActiveOnly)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to list staff")
		return
	}
	res, err := resdto.FromStaffViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
