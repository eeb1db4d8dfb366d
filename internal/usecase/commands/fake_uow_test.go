//go:build unit

package commands_test

import (
	"context"

	dombooking "tutorhive/internal/domain/booking"
	domreview "tutorhive/internal/domain/review"
	domslot "tutorhive/internal/domain/slot"
	domuser "tutorhive/internal/domain/user"
	"tutorhive/internal/infra/db"
	"tutorhive/internal/usecase/shared"

	"github.com/google/uuid"
)

// Hand-rolled fakes for the unit of work. The command layer only ever
// sees the shared interfaces, so a transcript-recording implementation
// is enough to drive every state-machine path without a database.

type fakeUoW struct {
	tx        *fakeTx
	withinErr error
}

func newFakeUoW() *fakeUoW {
	return &fakeUoW{tx: newFakeTx()}
}

func (f *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if f.withinErr != nil {
		return f.withinErr
	}
	return fn(ctx, f.tx)
}

func (f *fakeUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (f *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (f *fakeUoW) CommandReads() shared.CommandReads {
	return f.tx.reads
}

type fakeTx struct {
	slots    *fakeSlotRepo
	bookings *fakeBookingRepo
	reviews  *fakeReviewRepo
	users    *fakeUserRepo
	reads    *fakeReads
}

func newFakeTx() *fakeTx {
	return &fakeTx{
		slots:    &fakeSlotRepo{transitionAffected: 1},
		bookings: &fakeBookingRepo{createID: uuid.New()},
		reviews:  &fakeReviewRepo{createID: uuid.New()},
		users:    &fakeUserRepo{setActiveAffected: 1},
		reads:    &fakeReads{},
	}
}

func (t *fakeTx) Slots() shared.SlotRepository                 { return t.slots }
func (t *fakeTx) Bookings() shared.BookingRepository           { return t.bookings }
func (t *fakeTx) Reviews() shared.ReviewRepository             { return t.reviews }
func (t *fakeTx) Users() shared.UserRepository                 { return t.users }
func (t *fakeTx) TutorProfiles() shared.TutorProfileRepository { return nil }
func (t *fakeTx) Categories() shared.CategoryRepository        { return nil }
func (t *fakeTx) Reads() shared.CommandReads                   { return t.reads }
func (t *fakeTx) DB() db.DBTX                                  { return nil }

type fakeReads struct {
	profile      *shared.TutorProfileSnapshot
	profileErr   error
	slot         *shared.SlotSnapshot
	slotErr      error
	booking      *shared.BookingSnapshot
	bookingErr   error
	reviewExists bool
	reviewErr    error
}

func (r *fakeReads) TutorProfileByUserID(ctx context.Context, userID uuid.UUID) (*shared.TutorProfileSnapshot, error) {
	return r.profile, r.profileErr
}

func (r *fakeReads) SlotByID(ctx context.Context, id uuid.UUID) (*shared.SlotSnapshot, error) {
	return r.slot, r.slotErr
}

func (r *fakeReads) SlotByIDForTutor(ctx context.Context, slotID, tutorProfileID uuid.UUID) (*shared.SlotSnapshot, error) {
	return r.slot, r.slotErr
}

func (r *fakeReads) BookingByIDForStudent(ctx context.Context, bookingID, studentID uuid.UUID) (*shared.BookingSnapshot, error) {
	return r.booking, r.bookingErr
}

func (r *fakeReads) BookingByIDForTutor(ctx context.Context, bookingID, tutorProfileID uuid.UUID) (*shared.BookingSnapshot, error) {
	return r.booking, r.bookingErr
}

func (r *fakeReads) ReviewExistsForBooking(ctx context.Context, bookingID uuid.UUID) (bool, error) {
	return r.reviewExists, r.reviewErr
}

type fakeSlotRepo struct {
	transitionAffected int64
	transitionErr      error
	transitions        []slotTransition
	setStatusCalls     []slotStatusCall
	setStatusErr       error
}

type slotTransition struct {
	slotID         uuid.UUID
	expected, next domslot.Status
}

type slotStatusCall struct {
	slotID uuid.UUID
	status domslot.Status
}

func (s *fakeSlotRepo) Create(ctx context.Context, tx db.DBTX, slot *domslot.AvailabilitySlot) (uuid.UUID, error) {
	return slot.ID(), nil
}

func (s *fakeSlotRepo) Update(ctx context.Context, tx db.DBTX, slot *domslot.AvailabilitySlot) error {
	return nil
}

func (s *fakeSlotRepo) Delete(ctx context.Context, tx db.DBTX, slotID uuid.UUID) error {
	return nil
}

func (s *fakeSlotRepo) ConditionalTransition(ctx context.Context, tx db.DBTX, slotID uuid.UUID, expected, next domslot.Status) (int64, error) {
	s.transitions = append(s.transitions, slotTransition{slotID: slotID, expected: expected, next: next})
	return s.transitionAffected, s.transitionErr
}

func (s *fakeSlotRepo) SetStatus(ctx context.Context, tx db.DBTX, slotID uuid.UUID, status domslot.Status) error {
	s.setStatusCalls = append(s.setStatusCalls, slotStatusCall{slotID: slotID, status: status})
	return s.setStatusErr
}

type fakeBookingRepo struct {
	createID  uuid.UUID
	createErr error
	created   []*dombooking.Booking
	updated   []*dombooking.Booking
	updateErr error
}

func (b *fakeBookingRepo) Create(ctx context.Context, tx db.DBTX, booking *dombooking.Booking) (uuid.UUID, error) {
	b.created = append(b.created, booking)
	return b.createID, b.createErr
}

func (b *fakeBookingRepo) Update(ctx context.Context, tx db.DBTX, booking *dombooking.Booking) error {
	b.updated = append(b.updated, booking)
	return b.updateErr
}

type fakeReviewRepo struct {
	createID  uuid.UUID
	createErr error
	created   []*domreview.Review
}

func (r *fakeReviewRepo) Create(ctx context.Context, tx db.DBTX, review *domreview.Review) (uuid.UUID, error) {
	r.created = append(r.created, review)
	return r.createID, r.createErr
}

type fakeUserRepo struct {
	setActiveAffected int64
	setActiveErr      error
	setActiveCalls    []userStatusCall
}

type userStatusCall struct {
	userID   uuid.UUID
	isActive bool
}

func (u *fakeUserRepo) Create(ctx context.Context, tx db.DBTX, usr *domuser.User) (uuid.UUID, error) {
	return usr.ID(), nil
}

func (u *fakeUserRepo) UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID) error {
	return nil
}

func (u *fakeUserRepo) SetActive(ctx context.Context, tx db.DBTX, userID uuid.UUID, isActive bool) (int64, error) {
	u.setActiveCalls = append(u.setActiveCalls, userStatusCall{userID: userID, isActive: isActive})
	return u.setActiveAffected, u.setActiveErr
}

var (
	_ shared.UnitOfWork = (*fakeUoW)(nil)
	_ shared.Tx         = (*fakeTx)(nil)
)
