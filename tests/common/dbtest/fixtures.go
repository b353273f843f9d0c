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
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	// bcrypt hash of "password123"
	passwordHash := "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."
	username := strings.SplitN(email, "@", 2)[0] + "-" + userID.String()[:8]
	tag, err := db.Exec(ctx, `INSERT INTO users (id, first_name, last_name, email, username, password_hash, position, role, is_active)
		VALUES ($1, 'Test', 'User', $2, $3, $4, 'Engineer', $5, true)
		ON CONFLICT (email) DO NOTHING`,
		userID, email, username, passwordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func CreateTestEquipment(t *testing.T, db DBLike, name, serialNumber string, quantity int) uuid.UUID {
	t.Helper()

	equipmentID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, `INSERT INTO equipment (id, name, full_name, serial_number, condition, quantity)
		VALUES ($1, $2, $3, $4, true, $5)
		ON CONFLICT (serial_number) DO NOTHING`,
		equipmentID, name, name+" (test unit)", serialNumber, quantity)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM equipment WHERE serial_number = $1", serialNumber).Scan(&equipmentID)
	}

	return equipmentID
}

func CreateTestRequest(t *testing.T, db DBLike, userID, equipmentID uuid.UUID, quantity int, status string, assignDate *time.Time) uuid.UUID {
	t.Helper()

	requestID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `INSERT INTO requests (id, user_id, equipment_id, quantity, request_status, return_status, assign_date)
		VALUES ($1, $2, $3, $4, $5, 'inactive', $6)`,
		requestID, userID, equipmentID, quantity, status, assignDate)
	require.NoError(t, err)

	return requestID
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO equipment (id, name, full_name, serial_number, condition, quantity) VALUES
		    (gen_random_uuid(), 'Laptop', 'Dell Latitude 5420', 'SN-LAPTOP-001', true, 10),
		    (gen_random_uuid(), 'Monitor', 'Dell U2722D 27"', 'SN-MONITOR-001', true, 20)
		ON CONFLICT (serial_number) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
