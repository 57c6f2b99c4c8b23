package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log/slog"

	"appointment-engine/internal/domain/auth"
	"appointment-engine/internal/domain/availability"
	"appointment-engine/internal/domain/booking"
	"appointment-engine/internal/domain/user"
	"appointment-engine/internal/infra"
	"appointment-engine/internal/pkg/clock"
	"appointment-engine/internal/pkg/config"
	"appointment-engine/internal/pkg/errs"
	"appointment-engine/internal/usecase/queries"
	"appointment-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

const createBookingEndpoint = "POST /businesses/:businessId/bookings"

type CreateBookingResult struct {
	Booking    *queries.BookingView
	IsReplayed bool
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, principal *auth.Principal, businessID uuid.UUID, in CreateBookingInput, idempotencyKey *uuid.UUID) (*CreateBookingResult, error)
	CreatePublicBooking(ctx context.Context, businessID uuid.UUID, in CreateBookingInput, idempotencyKey *uuid.UUID) (*CreateBookingResult, error)
	UpdateBookingStatus(ctx context.Context, principal *auth.Principal, businessID, bookingID uuid.UUID, status booking.Status) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
	cfg   config.SchedulingConfig
}

func NewBookingCommands(uow shared.UnitOfWork, clk clock.Clock, cfg config.SchedulingConfig) BookingCommands {
	return &bookingCommandsImpl{uow: uow, clock: clk, cfg: cfg}
}

type bookingRequest struct {
	businessID uuid.UUID
	// scope partitions idempotency keys: the staff user, or PublicIdempotencyScope on the public surface
	scope          uuid.UUID
	source         booking.Source
	in             CreateBookingInput
	idempotencyKey *uuid.UUID
}

func (uc *bookingCommandsImpl) CreateBooking(ctx context.Context, principal *auth.Principal, businessID uuid.UUID, in CreateBookingInput, idempotencyKey *uuid.UUID) (*CreateBookingResult, error) {
	if err := authorize(principal, businessID, user.RoleStaff); err != nil {
		return nil, err
	}
	return uc.create(ctx, bookingRequest{
		businessID:     businessID,
		scope:          principal.UserID,
		source:         booking.SourceStaff,
		in:             in,
		idempotencyKey: idempotencyKey,
	})
}

func (uc *bookingCommandsImpl) CreatePublicBooking(ctx context.Context, businessID uuid.UUID, in CreateBookingInput, idempotencyKey *uuid.UUID) (*CreateBookingResult, error) {
	return uc.create(ctx, bookingRequest{
		businessID:     businessID,
		scope:          PublicIdempotencyScope(businessID, in.CustomerID),
		source:         booking.SourcePublic,
		in:             in,
		idempotencyKey: idempotencyKey,
	})
}

// PublicIdempotencyScope derives the key scope of an anonymous caller from the business and the
// customer it books for. Customer ids are not secret, so the scope alone is never trusted: a
// replay still needs the caller's own random key and the same request body.
func PublicIdempotencyScope(businessID, customerID uuid.UUID) uuid.UUID {
	return uuid.NewSHA1(businessID, customerID[:])
}

func (uc *bookingCommandsImpl) create(ctx context.Context, req bookingRequest) (*CreateBookingResult, error) {
	business, err := uc.uow.CommandReads().BusinessByID(ctx, req.businessID)
	if err != nil {
		return nil, markRepoErr(err)
	}

	services := &booking.Services{Clock: uc.clock}
	entity, err := booking.NewBooking(services, booking.Params{
		BusinessID:      req.businessID,
		StaffID:         req.in.StaffID,
		CustomerID:      req.in.CustomerID,
		ServiceID:       req.in.ServiceID,
		Date:            req.in.Date,
		Start:           req.in.Start,
		DurationMinutes: req.in.DurationMinutes,
		Source:          req.source,
		Note:            req.in.Note,
		Location:        business.Location,
	})
	if err != nil {
		return nil, markBookingErr(err)
	}

	if req.idempotencyKey == nil {
		view, cerr := uc.commit(ctx, entity, nil, uuid.Nil)
		if cerr != nil {
			return nil, cerr
		}
		return &CreateBookingResult{Booking: view}, nil
	}

	requestHash := calculateRequestHash(req)
	replayed, err := uc.claimIdempotencyKey(ctx, req, requestHash)
	if err != nil {
		return nil, err
	}
	if replayed != nil {
		return &CreateBookingResult{Booking: replayed, IsReplayed: true}, nil
	}

	view, err := uc.commit(ctx, entity, req.idempotencyKey, req.scope)
	if err != nil {
		uc.releaseIdempotencyKey(ctx, *req.idempotencyKey, req.scope)
		return nil, err
	}
	return &CreateBookingResult{Booking: view}, nil
}

// claimIdempotencyKey returns a booking view when the request is a replay of a completed one,
// nil when the caller now owns the key.
func (uc *bookingCommandsImpl) claimIdempotencyKey(ctx context.Context, req bookingRequest, requestHash string) (*queries.BookingView, error) {
	key := *req.idempotencyKey
	now := uc.clock.Now()
	expiresAt := now.Add(uc.cfg.IdempotencyTTL)

	var existing *shared.IdempotencyRecord
	err := uc.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		inserted, ierr := tx.Idempotency().TryInsert(ctx, tx.DB(), key, req.scope, createBookingEndpoint, requestHash, expiresAt)
		if ierr != nil || inserted {
			return ierr
		}
		record, gerr := tx.Reads().IdempotencyByKey(ctx, key, req.scope)
		if gerr != nil {
			return gerr
		}
		existing = record
		return nil
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrIdempotencyCheckFailed)
	}
	if existing == nil {
		return nil, nil
	}

	if existing.Expired(now) {
		var claimed bool
		err = uc.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
			var cerr error
			claimed, cerr = tx.Idempotency().ClaimExpired(ctx, tx.DB(), key, req.scope, requestHash, expiresAt, now)
			return cerr
		})
		if err != nil {
			return nil, errs.Mark(err, errs.ErrIdempotencyCheckFailed)
		}
		if claimed {
			return nil, nil
		}
		return nil, errs.ErrIdempotencyInProgress
	}

	if !existing.SameRequest(createBookingEndpoint, requestHash) {
		return nil, errs.ErrDuplicateRequest
	}

	switch existing.Status {
	case shared.IdempotencyStatusCompleted:
		if existing.ResultBookingID == nil {
			return nil, errs.Reject(errs.ErrIdempotencyCheckFailed, "completed request missing result booking ID")
		}
		b, gerr := uc.uow.CommandReads().BookingByID(ctx, req.businessID, *existing.ResultBookingID)
		if gerr != nil {
			return nil, markRepoErr(gerr)
		}
		return queries.NewBookingView(b), nil
	case shared.IdempotencyStatusProcessing:
		return nil, errs.ErrIdempotencyInProgress
	default:
		return nil, errs.Reject(errs.ErrIdempotencyCheckFailed, "invalid idempotency key status")
	}
}

func (uc *bookingCommandsImpl) releaseIdempotencyKey(ctx context.Context, key, scope uuid.UUID) {
	err := uc.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Idempotency().Release(ctx, tx.DB(), key, scope)
	})
	if err != nil {
		slog.Warn("failed to release idempotency key", "key", key.String(), "error", err.Error())
	}
}

// commit re-validates capacity and inserts under the day's advisory lock, so two requests for
// the last unit of a slot cannot both succeed.
func (uc *bookingCommandsImpl) commit(ctx context.Context, entity *booking.Booking, idempotencyKey *uuid.UUID, scope uuid.UUID) (*queries.BookingView, error) {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if staffID := entity.StaffID(); staffID != nil {
			staff, serr := tx.Reads().StaffByID(ctx, entity.BusinessID(), *staffID)
			if serr != nil {
				return markRepoErr(serr)
			}
			if !staff.IsActive {
				return errs.Reject(errs.ErrNotFound, "staff member is inactive")
			}
		}

		if lerr := tx.Bookings().LockDay(ctx, tx.DB(), entity.BusinessID(), entity.Date()); lerr != nil {
			return markRepoErr(lerr)
		}

		blocks, berr := tx.Reads().BlocksForDate(ctx, entity.BusinessID(), entity.Date())
		if berr != nil {
			return markRepoErr(berr)
		}
		occupants, oerr := tx.Reads().ScheduledOccupants(ctx, entity.BusinessID(), entity.Date())
		if oerr != nil {
			return markRepoErr(oerr)
		}
		admission, aerr := availability.Admit(blocks, occupants, entity.StaffID(), entity.Window())
		if aerr != nil {
			return errs.Mark(aerr, errs.ErrConflict)
		}
		// "any staff" bookings take the staff of the block that admitted them, so they
		// consume that staff's capacity only.
		if staffID := admission.Block.StaffID(); staffID != nil {
			entity.AssignStaff(*staffID)
		}

		id, cerr := tx.Bookings().Create(ctx, tx.DB(), entity)
		if cerr != nil {
			return markRepoErr(cerr)
		}

		if idempotencyKey != nil {
			if uerr := tx.Idempotency().UpdateStatusCompleted(ctx, tx.DB(), *idempotencyKey, scope, calculateIDHash(id), id); uerr != nil {
				return markRepoErr(uerr)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("booking created",
		"booking_id", entity.ID().String(),
		"business_id", entity.BusinessID().String(),
		"date", entity.Date().String(),
		"start", entity.Start().String(),
		"source", entity.Source().String())
	return queries.NewBookingView(entity), nil
}

func (uc *bookingCommandsImpl) UpdateBookingStatus(ctx context.Context, principal *auth.Principal, businessID, bookingID uuid.UUID, status booking.Status) (*queries.BookingView, error) {
	if err := authorize(principal, businessID, user.RoleStaff); err != nil {
		return nil, err
	}

	var updated *booking.Booking
	var event booking.StatusChanged
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, gerr := tx.Reads().BookingByID(ctx, businessID, bookingID)
		if gerr != nil {
			return markRepoErr(gerr)
		}

		ev, terr := b.TransitionTo(status, uc.clock.Now())
		if terr != nil {
			return markBookingErr(terr)
		}

		if uerr := tx.Bookings().UpdateStatus(ctx, tx.DB(), b); uerr != nil {
			// the row left the scheduled state after we read it
			if infra.IsKind(uerr, infra.KindNotFound) {
				return errs.Mark(uerr, errs.ErrInvalidTransition)
			}
			return markRepoErr(uerr)
		}
		if aerr := tx.Events().Append(ctx, tx.DB(), ev); aerr != nil {
			return markRepoErr(aerr)
		}

		updated, event = b, ev
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("booking event recorded",
		"kind", event.Kind().String(),
		"booking_id", event.BookingID.String(),
		"business_id", event.BusinessID.String(),
		"customer_id", event.CustomerID.String())
	return queries.NewBookingView(updated), nil
}

func markBookingErr(err error) error {
	switch {
	case errors.Is(err, booking.ErrInvalidDuration),
		errors.Is(err, booking.ErrInvalidWindow),
		errors.Is(err, booking.ErrStartInPast):
		return errs.Mark(err, errs.ErrInvalidWindow)
	case errors.Is(err, booking.ErrInvalidTransition):
		return errs.Mark(err, errs.ErrInvalidTransition)
	default:
		return errs.Mark(err, errs.ErrInvalidInput)
	}
}

func calculateRequestHash(req bookingRequest) string {
	data, _ := json.Marshal(struct {
		BusinessID uuid.UUID          `json:"business_id"`
		Source     booking.Source     `json:"source"`
		Input      CreateBookingInput `json:"input"`
	}{req.businessID, req.source, req.in})
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

func calculateIDHash(id uuid.UUID) string {
	hash := sha256.Sum256([]byte(id.String()))
	return hex.EncodeToString(hash[:])
}
