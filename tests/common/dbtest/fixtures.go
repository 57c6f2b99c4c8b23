//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is a pool or a test transaction.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Tenant is one business with the rows a booking needs to reference.
type Tenant struct {
	BusinessID uuid.UUID
	OwnerID    uuid.UUID
	StaffID    uuid.UUID
	CustomerID uuid.UUID
	ServiceID  uuid.UUID
}

func CreateBusiness(t *testing.T, db DBLike, name, timeZone string) (businessID, ownerID uuid.UUID) {
	t.Helper()

	businessID, ownerID = uuid.New(), uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO businesses (id, owner_user_id, name, time_zone) VALUES ($1, $2, $3, $4)",
		businessID, ownerID, name, timeZone)
	require.NoError(t, err)
	return businessID, ownerID
}

func CreateStaff(t *testing.T, db DBLike, businessID uuid.UUID, name string, active bool) uuid.UUID {
	t.Helper()

	staffID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO staff_members (id, business_id, display_name, is_active) VALUES ($1, $2, $3, $4)",
		staffID, businessID, name, active)
	require.NoError(t, err)
	return staffID
}

func CreateCustomer(t *testing.T, db DBLike, businessID uuid.UUID, name string) uuid.UUID {
	t.Helper()

	customerID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO customers (id, business_id, display_name) VALUES ($1, $2, $3)",
		customerID, businessID, name)
	require.NoError(t, err)
	return customerID
}

func CreateService(t *testing.T, db DBLike, businessID uuid.UUID, name string, minutes int) uuid.UUID {
	t.Helper()

	serviceID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO services (id, business_id, name, duration_minutes) VALUES ($1, $2, $3, $4)",
		serviceID, businessID, name, minutes)
	require.NoError(t, err)
	return serviceID
}

// SeedTenant creates a UTC business with one active staff member, a customer and a 30 minute service.
func SeedTenant(t *testing.T, db DBLike, name string) Tenant {
	t.Helper()

	businessID, ownerID := CreateBusiness(t, db, name, "UTC")
	return Tenant{
		BusinessID: businessID,
		OwnerID:    ownerID,
		StaffID:    CreateStaff(t, db, businessID, "Alex", true),
		CustomerID: CreateCustomer(t, db, businessID, "Sam"),
		ServiceID:  CreateService(t, db, businessID, "Haircut", 30),
	}
}

// CountRows counts rows of table owned by businessID.
func CountRows(t *testing.T, db DBLike, table string, businessID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM "+table+" WHERE business_id = $1", businessID).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates every table except atlas bookkeeping.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		truncateSQL.Store(buildTruncateSQL(ctx, pool))
	})
	stmt, _ := truncateSQL.Load().(string)
	if stmt == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, stmt)
	return err
}

func buildTruncateSQL(ctx context.Context, pool *pgxpool.Pool) string {
	rows, err := pool.Query(ctx, `
	  SELECT 'public.' || quote_ident(tablename)
	  FROM pg_tables
	  WHERE schemaname = 'public'
	    AND tablename NOT IN ('atlas_schema_revisions')`)
	if err != nil {
		return ""
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return ""
		}
		tables = append(tables, name)
	}
	if rows.Err() != nil {
		return ""
	}
	if len(tables) == 0 {
		return "SELECT 1"
	}
	return "TRUNCATE " + strings.Join(tables, ", ") + " CASCADE;"
}
