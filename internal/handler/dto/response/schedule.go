package response

import (
	"time"

	"appointment-engine/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ScheduleRuleResponse struct {
	ID         uuid.UUID `json:"id"`
	StaffID    uuid.UUID `json:"staffId"`
	Weekday    int       `json:"weekday"`
	WorkStart  string    `json:"workStart"`
	WorkEnd    string    `json:"workEnd"`
	BreakStart *string   `json:"breakStart,omitempty"`
	BreakEnd   *string   `json:"breakEnd,omitempty"`
	IsActive   bool      `json:"isActive"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func FromRuleView(v *queries.RuleView) *ScheduleRuleResponse {
	var res ScheduleRuleResponse
	_ = copier.Copy(&res, v)
	return &res
}

func FromRuleViews(vs []*queries.RuleView) []*ScheduleRuleResponse {
	res := make([]*ScheduleRuleResponse, len(vs))
	for i, v := range vs {
		res[i] = FromRuleView(v)
	}
	return res
}
