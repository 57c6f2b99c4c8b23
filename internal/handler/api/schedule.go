package api

import (
	"net/http"

	reqdto "appointment-engine/internal/handler/dto/request"
	resdto "appointment-engine/internal/handler/dto/response"
	"appointment-engine/internal/handler/httperr"
	"appointment-engine/internal/usecase/commands"
	"appointment-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ScheduleHandler struct {
	cmds commands.ScheduleCommands
	q    queries.ScheduleQueries
}

func NewScheduleHandler(cmds commands.ScheduleCommands, q queries.ScheduleQueries) *ScheduleHandler {
	return &ScheduleHandler{cmds: cmds, q: q}
}

// @Summary Create schedule rule
// @Description Adds a weekly working window for a staff member. Takes effect once materialized.
// @Tags schedule
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param businessId path string true "Business ID"
// @Param request body reqdto.CreateScheduleRuleRequest true "Rule"
// @Success 201 {object} resdto.ScheduleRuleResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /businesses/{businessId}/schedule-rules [post]
func (h *ScheduleHandler) CreateRule(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	businessID, ok := uuidParam(c, "businessId")
	if !ok {
		return
	}
	var req reqdto.CreateScheduleRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid time of day", nil)
		return
	}
	view, err := h.cmds.CreateRule(c.Request.Context(), principal, businessID, in)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromRuleView(view))
}

// @Summary List schedule rules
// @Tags schedule
// @Produce json
// @Security BearerAuth
// @Param businessId path string true "Business ID"
// @Param staffId query string false "Staff ID"
// @Success 200 {array} resdto.ScheduleRuleResponse
// @Failure 403 {object} httperr.Response
// @Router /businesses/{businessId}/schedule-rules [get]
func (h *ScheduleHandler) ListRules(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	businessID, ok := uuidParam(c, "businessId")
	if !ok {
		return
	}
	staffID, ok := optionalUUIDQuery(c, "staffId")
	if !ok {
		return
	}
	rules, err := h.q.ListRules(c.Request.Context(), principal, businessID, staffID)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRuleViews(rules))
}

// @Summary Deactivate schedule rule
// @Description Existing blocks are kept; the rule stops producing new ones.
// @Tags schedule
// @Security BearerAuth
// @Param businessId path string true "Business ID"
// @Param id path string true "Rule ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /businesses/{businessId}/schedule-rules/{id} [delete]
func (h *ScheduleHandler) DeactivateRule(c *gin.Context) {
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
	if err := h.cmds.DeactivateRule(c.Request.Context(), principal, businessID, id); err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
