//go:build unit || e2e

package builder

import (
	"appointment-engine/internal/domain/auth"
	"appointment-engine/internal/domain/user"

	"github.com/google/uuid"
)

type PrincipalBuilder struct {
	UserID     uuid.UUID
	BusinessID uuid.UUID
	Role       user.Role
}

func NewPrincipalBuilder() *PrincipalBuilder {
	return &PrincipalBuilder{
		UserID:     uuid.New(),
		BusinessID: uuid.New(),
		Role:       user.RoleManager,
	}
}

func (p *PrincipalBuilder) WithBusiness(id uuid.UUID) *PrincipalBuilder {
	p.BusinessID = id
	return p
}

func (p *PrincipalBuilder) WithRole(role user.Role) *PrincipalBuilder {
	p.Role = role
	return p
}

func (p *PrincipalBuilder) Build() *auth.Principal {
	return &auth.Principal{
		UserID:     p.UserID,
		BusinessID: p.BusinessID,
		Role:       p.Role,
	}
}
