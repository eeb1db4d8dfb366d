//go:build integration

package integration

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	domslot "tutorhive/internal/domain/slot"
	"tutorhive/internal/infra/uow"
	"tutorhive/internal/usecase/commands"

	"github.com/docker/go-connections/nat"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	testUser     = "test"
	testPassword = "testpass"
	testDBName   = "tutorhive_test"
)

func setupDatabase(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     testUser,
			"POSTGRES_PASSWORD": testPassword,
			"POSTGRES_DB":       testDBName,
		},
		WaitingFor: wait.ForListeningPort("5432/tcp").WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err, "failed to start postgres container")
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, nat.Port("5432/tcp"))
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		testUser, testPassword, host, port.Port(), testDBName)

	sqlDB, err := sql.Open("pgx", dsn)
	require.NoError(t, err)
	defer sqlDB.Close()

	require.NoError(t, goose.SetDialect("postgres"))
	require.NoError(t, goose.Up(sqlDB, "../../migrations"), "migrations failed")

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return pool
}

type fixture struct {
	studentIDs     []uuid.UUID
	tutorProfileID uuid.UUID
	slotID         uuid.UUID
}

func seedSlotFixture(t *testing.T, pool *pgxpool.Pool, studentCount int) fixture {
	t.Helper()
	ctx := context.Background()

	const passwordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMye0eLo0kZhF1FJ0OFXpVp0sJb9eWbC3y6"

	tutorID := uuid.New()
	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, name, email, password_hash, role) VALUES ($1, 'Tutor', $2, $3, 'TUTOR')`,
		tutorID, fmt.Sprintf("tutor-%s@example.com", tutorID), passwordHash)
	require.NoError(t, err)

	tutorProfileID := uuid.New()
	_, err = pool.Exec(ctx,
		`INSERT INTO tutor_profiles (id, user_id, bio) VALUES ($1, $2, 'Experienced tutor')`,
		tutorProfileID, tutorID)
	require.NoError(t, err)

	studentIDs := make([]uuid.UUID, studentCount)
	for i := range studentIDs {
		studentIDs[i] = uuid.New()
		_, err = pool.Exec(ctx,
			`INSERT INTO users (id, name, email, password_hash, role) VALUES ($1, 'Student', $2, $3, 'STUDENT')`,
			studentIDs[i], fmt.Sprintf("student-%s@example.com", studentIDs[i]), passwordHash)
		require.NoError(t, err)
	}

	slotID := uuid.New()
	start := time.Now().Add(24 * time.Hour).Truncate(time.Second)
	_, err = pool.Exec(ctx,
		`INSERT INTO availability_slots (id, tutor_profile_id, start_at, end_at, status) VALUES ($1, $2, $3, $4, 'OPEN')`,
		slotID, tutorProfileID, start, start.Add(time.Hour))
	require.NoError(t, err)

	return fixture{studentIDs: studentIDs, tutorProfileID: tutorProfileID, slotID: slotID}
}

// The critical booking invariant: any number of students may race for
// one OPEN slot, and exactly one wins.
func TestConcurrentBookingOfOneSlot(t *testing.T) {
	pool := setupDatabase(t)

	const contenders = 10
	fx := seedSlotFixture(t, pool, contenders)

	unit := uow.NewPostgresUoW(pool)
	bookingCommands := commands.NewBookingCommands(unit)

	ctx := context.Background()
	results := make([]error, contenders)

	var wg sync.WaitGroup
	for i := range contenders {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = bookingCommands.Create(ctx, fx.slotID, fx.studentIDs[i])
		}(i)
	}
	wg.Wait()

	var wins, conflicts int
	for _, err := range results {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, commands.ErrSlotUnavailable):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, wins, "exactly one contender may win the slot")
	assert.Equal(t, contenders-1, conflicts)

	var slotStatus string
	require.NoError(t, pool.QueryRow(ctx,
		`SELECT status FROM availability_slots WHERE id = $1`, fx.slotID).Scan(&slotStatus))
	assert.Equal(t, domslot.StatusBooked.String(), slotStatus)

	var bookingCount int
	require.NoError(t, pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM bookings WHERE slot_id = $1`, fx.slotID).Scan(&bookingCount))
	assert.Equal(t, 1, bookingCount, "a lost race must leave no booking row behind")
}

func TestCancelReleasesSlotForRebooking(t *testing.T) {
	pool := setupDatabase(t)
	fx := seedSlotFixture(t, pool, 2)

	unit := uow.NewPostgresUoW(pool)
	bookingCommands := commands.NewBookingCommands(unit)
	ctx := context.Background()

	first, err := bookingCommands.Create(ctx, fx.slotID, fx.studentIDs[0])
	require.NoError(t, err)

	// Slot is taken; the second student is turned away.
	_, err = bookingCommands.Create(ctx, fx.slotID, fx.studentIDs[1])
	require.ErrorIs(t, err, commands.ErrSlotUnavailable)

	reason := "found another tutor"
	_, err = bookingCommands.Cancel(ctx, first.BookingID, commands.CancelBookingRequest{Reason: &reason}, fx.studentIDs[0])
	require.NoError(t, err)

	var slotStatus string
	require.NoError(t, pool.QueryRow(ctx,
		`SELECT status FROM availability_slots WHERE id = $1`, fx.slotID).Scan(&slotStatus))
	require.Equal(t, domslot.StatusOpen.String(), slotStatus, "cancellation must release the slot")

	// Released slot is bookable again; the cancelled row stays on record.
	second, err := bookingCommands.Create(ctx, fx.slotID, fx.studentIDs[1])
	require.NoError(t, err)
	require.NotEqual(t, first.BookingID, second.BookingID)

	var total, cancelled int
	require.NoError(t, pool.QueryRow(ctx,
		`SELECT COUNT(*), COUNT(*) FILTER (WHERE status = 'CANCELLED') FROM bookings WHERE slot_id = $1`,
		fx.slotID).Scan(&total, &cancelled))
	require.Equal(t, 2, total)
	require.Equal(t, 1, cancelled)
}

func TestCancelIsIdempotent(t *testing.T) {
	pool := setupDatabase(t)
	fx := seedSlotFixture(t, pool, 1)

	unit := uow.NewPostgresUoW(pool)
	bookingCommands := commands.NewBookingCommands(unit)
	ctx := context.Background()

	created, err := bookingCommands.Create(ctx, fx.slotID, fx.studentIDs[0])
	require.NoError(t, err)

	_, err = bookingCommands.Cancel(ctx, created.BookingID, commands.CancelBookingRequest{}, fx.studentIDs[0])
	require.NoError(t, err)
	_, err = bookingCommands.Cancel(ctx, created.BookingID, commands.CancelBookingRequest{}, fx.studentIDs[0])
	require.NoError(t, err, "second cancel must succeed as a no-op")

	var status string
	require.NoError(t, pool.QueryRow(ctx,
		`SELECT status FROM bookings WHERE id = $1`, created.BookingID).Scan(&status))
	require.Equal(t, "CANCELLED", status)
}
