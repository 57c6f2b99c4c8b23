package api

import (
	"net/http"

	"appointment-engine/internal/domain/civil"
	reqdto "appointment-engine/internal/handler/dto/request"
	resdto "appointment-engine/internal/handler/dto/response"
	"appointment-engine/internal/handler/httperr"
	"appointment-engine/internal/usecase/commands"
	"appointment-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	cmds commands.AvailabilityCommands
	q    queries.ScheduleQueries
}

func NewAvailabilityHandler(cmds commands.AvailabilityCommands, q queries.ScheduleQueries) *AvailabilityHandler {
	return &AvailabilityHandler{cmds: cmds, q: q}
}

// @Summary Materialize availability
// @Description Expands active weekly rules into dated blocks over [from, to]. Re-running only fills gaps.
// @Tags availability
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param businessId path string true "Business ID"
// @Param request body reqdto.MaterializeRequest true "Date range"
// @Success 200 {object} resdto.MaterializeResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /businesses/{businessId}/availability/materialize [post]
func (h *AvailabilityHandler) Materialize(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	businessID, ok := uuidParam(c, "businessId")
	if !ok {
		return
	}
	var req reqdto.MaterializeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	from, to, err := req.Range()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date", nil)
		return
	}
	result, err := h.cmds.Materialize(c.Request.Context(), principal, businessID, from, to)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMaterializeResult(result))
}

// @Summary Create availability block
// @Tags availability
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param businessId path string true "Business ID"
// @Param request body reqdto.CreateBlockRequest true "Block"
// @Success 201 {object} resdto.BlockResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /businesses/{businessId}/availability/blocks [post]
func (h *AvailabilityHandler) CreateBlock(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	businessID, ok := uuidParam(c, "businessId")
	if !ok {
		return
	}
	var req reqdto.CreateBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date or time", nil)
		return
	}
	view, err := h.cmds.CreateBlock(c.Request.Context(), principal, businessID, in)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBlockView(view))
}

// @Summary List availability blocks of a day
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Param businessId path string true "Business ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {array} resdto.BlockResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /businesses/{businessId}/availability/blocks [get]
func (h *AvailabilityHandler) ListBlocks(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	businessID, ok := uuidParam(c, "businessId")
	if !ok {
		return
	}
	date, err := civil.ParseDate(c.Query("date"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date", nil)
		return
	}
	blocks, err := h.q.ListBlocks(c.Request.Context(), principal, businessID, date)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBlockViews(blocks))
}

// @Summary Delete availability block
// @Tags availability
// @Security BearerAuth
// @Param businessId path string true "Business ID"
// @Param id path string true "Block ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /businesses/{businessId}/availability/blocks/{id} [delete]
func (h *AvailabilityHandler) DeleteBlock(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	businessID, ok := uuidParam(c, "businessId")
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.DeleteBlock(c.Request.Context(), principal, businessID, id); err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
