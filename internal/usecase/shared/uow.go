package shared

import (
	"context"

	"tutorhive/internal/domain/booking"
	"tutorhive/internal/domain/review"
	"tutorhive/internal/domain/slot"
	"tutorhive/internal/domain/user"
	"tutorhive/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Slots() SlotRepository
	Bookings() BookingRepository
	Reviews() ReviewRepository
	Users() UserRepository
	TutorProfiles() TutorProfileRepository
	Categories() CategoryRepository
	Reads() CommandReads
	DB() db.DBTX
}

// CommandReads are the write-side validation reads. When obtained via
// Tx.Reads() they observe the transaction's snapshot, which is what the
// booking state machine depends on.
type CommandReads interface {
	TutorProfileByUserID(ctx context.Context, userID uuid.UUID) (*TutorProfileSnapshot, error)
	SlotByID(ctx context.Context, id uuid.UUID) (*SlotSnapshot, error)
	SlotByIDForTutor(ctx context.Context, slotID, tutorProfileID uuid.UUID) (*SlotSnapshot, error)
	BookingByIDForStudent(ctx context.Context, bookingID, studentID uuid.UUID) (*BookingSnapshot, error)
	BookingByIDForTutor(ctx context.Context, bookingID, tutorProfileID uuid.UUID) (*BookingSnapshot, error)
	ReviewExistsForBooking(ctx context.Context, bookingID uuid.UUID) (bool, error)
}

type SlotRepository interface {
	Create(ctx context.Context, tx db.DBTX, s *slot.AvailabilitySlot) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, s *slot.AvailabilitySlot) error
	Delete(ctx context.Context, tx db.DBTX, slotID uuid.UUID) error
	// ConditionalTransition is the compare-and-swap primitive: the row is
	// updated only if its current status equals expected, and the number
	// of affected rows (0 or 1) is returned for the caller to check
	// before the surrounding transaction commits.
	ConditionalTransition(ctx context.Context, tx db.DBTX, slotID uuid.UUID, expected, next slot.Status) (int64, error)
	// SetStatus updates a slot's status unconditionally.
	SetStatus(ctx context.Context, tx db.DBTX, slotID uuid.UUID, status slot.Status) error
}

type BookingRepository interface {
	Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, b *booking.Booking) error
}

type ReviewRepository interface {
	Create(ctx context.Context, tx db.DBTX, r *review.Review) (uuid.UUID, error)
}

type UserRepository interface {
	Create(ctx context.Context, tx db.DBTX, u *user.User) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID) error
	// SetActive returns the number of rows updated so callers can
	// distinguish a missing user from a no-op.
	SetActive(ctx context.Context, tx db.DBTX, userID uuid.UUID, isActive bool) (int64, error)
}

type TutorProfileRepository interface {
	Create(ctx context.Context, tx db.DBTX, userID uuid.UUID, bio *string) (uuid.UUID, error)
}

type CategoryRepository interface {
	Create(ctx context.Context, tx db.DBTX, name string) (uuid.UUID, error)
}
