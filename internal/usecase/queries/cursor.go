package queries

import (
	"encoding/base64"
	"strconv"
	"strings"
	"time"

	"appointment-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 200

	cursorPrefix = "ev1:"
)

// Cursor points just past the last event of a page.
type Cursor struct {
	After string `json:"after,omitempty"`
}

// EncodeAfterCursor keeps microseconds only, matching timestamptz precision.
func EncodeAfterCursor(occurredAt time.Time, id uuid.UUID) string {
	raw := cursorPrefix + strconv.FormatInt(occurredAt.UnixMicro(), 10) + "/" + id.String()
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

func DecodeAfterCursor(cursor string) (time.Time, uuid.UUID, error) {
	decoded, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return time.Time{}, uuid.Nil, errs.Wrap(err, "decoding cursor")
	}

	payload, ok := strings.CutPrefix(string(decoded), cursorPrefix)
	if !ok {
		return time.Time{}, uuid.Nil, errs.New("unknown cursor version")
	}
	micros, rawID, ok := strings.Cut(payload, "/")
	if !ok {
		return time.Time{}, uuid.Nil, errs.New("cursor must be <micros>/<uuid>")
	}

	ts, err := strconv.ParseInt(micros, 10, 64)
	if err != nil {
		return time.Time{}, uuid.Nil, errs.Wrap(err, "cursor timestamp")
	}
	id, err := uuid.Parse(rawID)
	if err != nil {
		return time.Time{}, uuid.Nil, errs.Wrap(err, "cursor id")
	}
	return time.UnixMicro(ts).UTC(), id, nil
}

func ValidateLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultListLimit
	case limit > MaxListLimit:
		return MaxListLimit
	default:
		return limit
	}
}
