package response

import (
	"time"

	"appointment-engine/internal/domain/availability"
	"appointment-engine/internal/usecase/commands"
	"appointment-engine/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BlockResponse struct {
	ID        uuid.UUID  `json:"id"`
	StaffID   *uuid.UUID `json:"staffId,omitempty"`
	Date      string     `json:"date"`
	StartTime string     `json:"startTime"`
	EndTime   string     `json:"endTime"`
	Capacity  int        `json:"capacity"`
	Source    string     `json:"source"`
	CreatedAt time.Time  `json:"createdAt"`
}

func FromBlockView(v *queries.BlockView) *BlockResponse {
	var res BlockResponse
	_ = copier.Copy(&res, v)
	return &res
}

func FromBlockViews(vs []*queries.BlockView) []*BlockResponse {
	res := make([]*BlockResponse, len(vs))
	for i, v := range vs {
		res[i] = FromBlockView(v)
	}
	return res
}

type RejectedCandidateResponse struct {
	RuleID string `json:"ruleId"`
	Date   string `json:"date"`
	Start  string `json:"start"`
	End    string `json:"end"`
}

type MaterializeResponse struct {
	Created  int                         `json:"created"`
	Skipped  int                         `json:"skipped"`
	Rejected []RejectedCandidateResponse `json:"rejected"`
}

func FromMaterializeResult(r *commands.MaterializeResult) *MaterializeResponse {
	res := &MaterializeResponse{
		Created:  r.Created,
		Skipped:  r.Skipped,
		Rejected: make([]RejectedCandidateResponse, 0, len(r.Rejected)),
	}
	for _, c := range r.Rejected {
		res.Rejected = append(res.Rejected, fromRejected(c))
	}
	return res
}

func fromRejected(c availability.RejectedCandidate) RejectedCandidateResponse {
	return RejectedCandidateResponse{
		RuleID: c.RuleID,
		Date:   c.Date.String(),
		Start:  c.Start.String(),
		End:    c.End.String(),
	}
}

type SlotsResponse struct {
	Date            string   `json:"date"`
	DurationMinutes int      `json:"durationMinutes"`
	Slots           []string `json:"slots"`
}
