package shared

import (
	"time"

	"github.com/google/uuid"
)

// Write-side snapshots keep commands independent of the read-side view types.
type BusinessSnapshot struct {
	ID          uuid.UUID
	OwnerUserID uuid.UUID
	Name        string
	Location    *time.Location
}

// BusinessZone is the time zone a business's calendar days are counted in.
type BusinessZone struct {
	ID       uuid.UUID
	Location *time.Location
}

type StaffSnapshot struct {
	ID         uuid.UUID
	BusinessID uuid.UUID
	IsActive   bool
}

const (
	IdempotencyStatusProcessing = "processing"
	IdempotencyStatusCompleted  = "completed"
)

// IdempotencyRecord is scoped by UserID: the staff user, or a business+customer scope for public requests.
type IdempotencyRecord struct {
	Key             uuid.UUID
	UserID          uuid.UUID
	Endpoint        string
	Status          string
	RequestHash     string
	ResultBookingID *uuid.UUID
	ExpiresAt       time.Time
}

// Expired records may be reclaimed by the next request with the same key.
func (r *IdempotencyRecord) Expired(now time.Time) bool {
	return now.After(r.ExpiresAt)
}

func (r *IdempotencyRecord) SameRequest(endpoint, requestHash string) bool {
	return r.Endpoint == endpoint && r.RequestHash == requestHash
}
