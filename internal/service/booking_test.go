package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Praful-John2409/BookTable/internal/domain"
	"github.com/Praful-John2409/BookTable/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

// futureSlot returns a time safely in the future landing at hour:min.
func futureSlot(hour, min int) time.Time {
	return time.Date(time.Now().Year()+1, time.March, 14, hour, min, 0, 0, time.UTC)
}

// waitNotified blocks until n notifications have been signalled.
func waitNotified(t *testing.T, ch <-chan struct{}, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case <-ch:
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for notification")
		}
	}
}

func TestBookingService_Create_Success(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	restaurantRepo := mocks.NewMockRestaurantRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, restaurantRepo, notifier, log)

	restaurant := &domain.Restaurant{
		ID:             "r1",
		Name:           "Bella Vista",
		AvailableTimes: []string{"18:00", "20:00"},
	}

	notified := make(chan struct{}, 1)
	restaurantRepo.EXPECT().GetByID(mock.Anything, "r1").Return(restaurant, nil)
	bookingRepo.EXPECT().Reserve(mock.Anything, mock.Anything, []string(nil)).
		Run(func(ctx context.Context, b *domain.Booking, preferredTableIDs []string) {
			b.TableIDs = []string{"t2"}
		}).
		Return(nil)
	notifier.EXPECT().NotifyBookingConfirmed(mock.Anything, mock.Anything, restaurant).
		Run(func(ctx context.Context, b *domain.Booking, r *domain.Restaurant) {
			notified <- struct{}{}
		}).
		Return()

	booking, err := svc.Create(context.Background(), domain.CreateBookingInput{
		RestaurantID: "r1",
		PartySize:    3,
		BookingTime:  futureSlot(18, 15),
		Booker:       domain.Booker{Email: "alice@example.com", Name: "Alice"},
	})

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusActive, booking.Status)
	assert.Equal(t, "r1", booking.RestaurantID)
	assert.Equal(t, []string{"t2"}, booking.TableIDs)
	assert.NotEmpty(t, booking.ID)

	waitNotified(t, notified, 1)
}

func TestBookingService_Create_InvalidPartySize(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	restaurantRepo := mocks.NewMockRestaurantRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, restaurantRepo, notifier, log)

	_, err := svc.Create(context.Background(), domain.CreateBookingInput{
		RestaurantID: "r1",
		PartySize:    0,
		BookingTime:  futureSlot(18, 0),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Create_PastTime(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	restaurantRepo := mocks.NewMockRestaurantRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, restaurantRepo, notifier, log)

	_, err := svc.Create(context.Background(), domain.CreateBookingInput{
		RestaurantID: "r1",
		PartySize:    2,
		BookingTime:  time.Now().Add(-time.Hour),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Create_RestaurantNotFound(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	restaurantRepo := mocks.NewMockRestaurantRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, restaurantRepo, notifier, log)

	restaurantRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrRestaurantNotFound)

	_, err := svc.Create(context.Background(), domain.CreateBookingInput{
		RestaurantID: "missing",
		PartySize:    2,
		BookingTime:  futureSlot(18, 0),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRestaurantNotFound)
}

func TestBookingService_Create_SlotNotAllowed(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	restaurantRepo := mocks.NewMockRestaurantRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, restaurantRepo, notifier, log)

	restaurant := &domain.Restaurant{
		ID:             "r1",
		AvailableTimes: []string{"18:00", "20:00"},
	}
	restaurantRepo.EXPECT().GetByID(mock.Anything, "r1").Return(restaurant, nil)

	_, err := svc.Create(context.Background(), domain.CreateBookingInput{
		RestaurantID: "r1",
		PartySize:    2,
		BookingTime:  futureSlot(15, 0),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSlotNotAllowed)
	assert.Contains(t, err.Error(), "18:00, 20:00")
}

func TestBookingService_Create_NoAvailableTables(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	restaurantRepo := mocks.NewMockRestaurantRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, restaurantRepo, notifier, log)

	restaurant := &domain.Restaurant{ID: "r1", AvailableTimes: []string{"18:00"}}
	restaurantRepo.EXPECT().GetByID(mock.Anything, "r1").Return(restaurant, nil)
	bookingRepo.EXPECT().Reserve(mock.Anything, mock.Anything, []string(nil)).Return(domain.ErrNoAvailableTables)

	_, err := svc.Create(context.Background(), domain.CreateBookingInput{
		RestaurantID: "r1",
		PartySize:    6,
		BookingTime:  futureSlot(18, 0),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoAvailableTables)
}

func TestBookingService_Create_PreferredTableTaken(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	restaurantRepo := mocks.NewMockRestaurantRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, restaurantRepo, notifier, log)

	restaurant := &domain.Restaurant{ID: "r1", AvailableTimes: []string{"18:00"}}
	restaurantRepo.EXPECT().GetByID(mock.Anything, "r1").Return(restaurant, nil)
	bookingRepo.EXPECT().Reserve(mock.Anything, mock.Anything, []string{"t1"}).Return(domain.ErrTableUnavailable)

	_, err := svc.Create(context.Background(), domain.CreateBookingInput{
		RestaurantID: "r1",
		PartySize:    2,
		BookingTime:  futureSlot(18, 0),
		TableIDs:     []string{"t1"},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTableUnavailable)
}

func TestBookingService_Cancel_Success(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	restaurantRepo := mocks.NewMockRestaurantRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, restaurantRepo, notifier, log)

	booking := &domain.Booking{
		ID:           "b1",
		RestaurantID: "r1",
		Status:       domain.BookingStatusActive,
		BookerEmail:  "alice@example.com",
	}
	restaurant := &domain.Restaurant{ID: "r1", Name: "Bella Vista"}

	notified := make(chan struct{}, 1)
	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	bookingRepo.EXPECT().Release(mock.Anything, "b1").Return(nil)
	restaurantRepo.EXPECT().GetByID(mock.Anything, "r1").Return(restaurant, nil)
	notifier.EXPECT().NotifyBookingCancelled(mock.Anything, booking, restaurant).
		Run(func(ctx context.Context, b *domain.Booking, r *domain.Restaurant) {
			notified <- struct{}{}
		}).
		Return()

	err := svc.Cancel(context.Background(), "b1", "alice@example.com")

	require.NoError(t, err)
	waitNotified(t, notified, 1)
}

func TestBookingService_Cancel_NotOwner(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	restaurantRepo := mocks.NewMockRestaurantRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, restaurantRepo, notifier, log)

	booking := &domain.Booking{
		ID:          "b1",
		Status:      domain.BookingStatusActive,
		BookerEmail: "alice@example.com",
	}
	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)

	err := svc.Cancel(context.Background(), "b1", "mallory@example.com")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingService_Cancel_AlreadyCancelled(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	restaurantRepo := mocks.NewMockRestaurantRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, restaurantRepo, notifier, log)

	booking := &domain.Booking{
		ID:          "b1",
		Status:      domain.BookingStatusCancelled,
		BookerEmail: "alice@example.com",
	}
	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)

	err := svc.Cancel(context.Background(), "b1", "alice@example.com")

	require.NoError(t, err)
}

func TestBookingService_Cancel_NotFound(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	restaurantRepo := mocks.NewMockRestaurantRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, restaurantRepo, notifier, log)

	bookingRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrBookingNotFound)

	err := svc.Cancel(context.Background(), "missing", "alice@example.com")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingService_ListActiveByRestaurant_RestaurantNotFound(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	restaurantRepo := mocks.NewMockRestaurantRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, restaurantRepo, notifier, log)

	restaurantRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrRestaurantNotFound)

	_, err := svc.ListActiveByRestaurant(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRestaurantNotFound)
}

func TestBookingService_SendDueReminders_Success(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	restaurantRepo := mocks.NewMockRestaurantRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, restaurantRepo, notifier, log)

	due := []*domain.Booking{
		{ID: "b1", RestaurantID: "r1", BookerEmail: "alice@example.com"},
		{ID: "b2", RestaurantID: "r2", BookerEmail: "bob@example.com"},
	}
	r1 := &domain.Restaurant{ID: "r1", Name: "Bella Vista"}
	r2 := &domain.Restaurant{ID: "r2", Name: "Sakura"}

	notified := make(chan struct{}, 2)
	signal := func(ctx context.Context, b *domain.Booking, r *domain.Restaurant) {
		notified <- struct{}{}
	}
	bookingRepo.EXPECT().ClaimDueReminders(mock.Anything, 2*time.Hour).Return(due, nil)
	restaurantRepo.EXPECT().GetByID(mock.Anything, "r1").Return(r1, nil)
	restaurantRepo.EXPECT().GetByID(mock.Anything, "r2").Return(r2, nil)
	notifier.EXPECT().NotifyBookingReminder(mock.Anything, due[0], r1).Run(signal).Return()
	notifier.EXPECT().NotifyBookingReminder(mock.Anything, due[1], r2).Run(signal).Return()

	result, err := svc.SendDueReminders(context.Background(), 2*time.Hour)

	require.NoError(t, err)
	assert.Len(t, result, 2)

	waitNotified(t, notified, 2)
}

func TestBookingService_SendDueReminders_NoneDue(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	restaurantRepo := mocks.NewMockRestaurantRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, restaurantRepo, notifier, log)

	bookingRepo.EXPECT().ClaimDueReminders(mock.Anything, time.Hour).Return(nil, nil)

	result, err := svc.SendDueReminders(context.Background(), time.Hour)

	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestBookingService_SendDueReminders_RepoError(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	restaurantRepo := mocks.NewMockRestaurantRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, restaurantRepo, notifier, log)

	bookingRepo.EXPECT().ClaimDueReminders(mock.Anything, time.Hour).Return(nil, errors.New("db error"))

	_, err := svc.SendDueReminders(context.Background(), time.Hour)

	require.Error(t, err)
}

// memBookingRepo serializes Reserve with a mutex, mirroring the row lock the
// SQL implementation takes, so concurrent Create calls can be raced in-process.
type memBookingRepo struct {
	mu       sync.Mutex
	tables   []domain.Table
	bookings []*domain.Booking

	// reserveErr, when set, simulates a store write failure after table
	// selection. Nothing is persisted for the failed attempt.
	reserveErr error
}

func (m *memBookingRepo) Reserve(_ context.Context, b *domain.Booking, preferredTableIDs []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	from, to := domain.ConflictWindow(b.BookingTime)
	occupied := make(map[string]struct{})
	for _, existing := range m.bookings {
		if existing.Status != domain.BookingStatusActive {
			continue
		}
		if existing.BookingTime.Before(from) || existing.BookingTime.After(to) {
			continue
		}
		for _, id := range existing.TableIDs {
			occupied[id] = struct{}{}
		}
	}

	free := domain.FreeTables(m.tables, occupied)
	if len(preferredTableIDs) > 0 {
		picked, err := domain.SelectPreferred(free, preferredTableIDs, b.PartySize)
		if err != nil {
			return err
		}
		ids := make([]string, 0, len(picked))
		for _, tbl := range picked {
			ids = append(ids, tbl.ID)
		}
		b.TableIDs = ids
	} else {
		fit := domain.FitTables(free, b.PartySize)
		if len(fit) == 0 {
			return domain.ErrNoAvailableTables
		}
		b.TableIDs = []string{fit[0].ID}
	}

	if m.reserveErr != nil {
		return m.reserveErr
	}

	stored := *b
	m.bookings = append(m.bookings, &stored)
	return nil
}

func (m *memBookingRepo) Release(_ context.Context, bookingID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, b := range m.bookings {
		if b.ID == bookingID && b.Status == domain.BookingStatusActive {
			b.Status = domain.BookingStatusCancelled
			b.TableIDs = nil
		}
	}
	return nil
}

func (m *memBookingRepo) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, b := range m.bookings {
		if b.ID == id {
			copied := *b
			return &copied, nil
		}
	}
	return nil, domain.ErrBookingNotFound
}

func (m *memBookingRepo) ListByEmail(context.Context, string) ([]*domain.Booking, error) {
	return nil, nil
}

func (m *memBookingRepo) ListActiveByRestaurant(context.Context, string) ([]*domain.Booking, error) {
	return nil, nil
}

func (m *memBookingRepo) OccupiedTables(context.Context, string, time.Time, time.Time) ([]string, error) {
	return nil, nil
}

func (m *memBookingRepo) ClaimDueReminders(context.Context, time.Duration) ([]*domain.Booking, error) {
	return nil, nil
}

func TestBookingService_Create_ConcurrentSingleWinner(t *testing.T) {
	restaurantRepo := mocks.NewMockRestaurantRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	restaurant := &domain.Restaurant{
		ID:             "r1",
		AvailableTimes: []string{"19:00"},
	}
	notified := make(chan struct{}, 1)
	restaurantRepo.EXPECT().GetByID(mock.Anything, "r1").Return(restaurant, nil)
	notifier.EXPECT().NotifyBookingConfirmed(mock.Anything, mock.Anything, restaurant).
		Run(func(ctx context.Context, b *domain.Booking, r *domain.Restaurant) {
			notified <- struct{}{}
		}).
		Return()

	repo := &memBookingRepo{
		tables: []domain.Table{{ID: "t1", RestaurantID: "r1", Seats: 4}},
	}
	svc := NewBookingService(repo, restaurantRepo, notifier, log)

	const attempts = 16
	errs := make(chan error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Create(context.Background(), domain.CreateBookingInput{
				RestaurantID: "r1",
				PartySize:    4,
				BookingTime:  futureSlot(19, 0),
				Booker:       domain.Booker{Email: "racer@example.com"},
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var wins, conflicts int
	for err := range errs {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, domain.ErrNoAvailableTables):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, wins)
	assert.Equal(t, attempts-1, conflicts)

	waitNotified(t, notified, 1)
}

// A table booked at 19:00 blocks a 19:30 request (30 minutes away, inclusive)
// but not one at 19:31.
func TestBookingService_Create_WindowBoundary(t *testing.T) {
	restaurantRepo := mocks.NewMockRestaurantRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	restaurant := &domain.Restaurant{
		ID:             "r1",
		AvailableTimes: []string{"19:00", "20:00"},
	}
	notified := make(chan struct{}, 2)
	restaurantRepo.EXPECT().GetByID(mock.Anything, "r1").Return(restaurant, nil)
	notifier.EXPECT().NotifyBookingConfirmed(mock.Anything, mock.Anything, restaurant).
		Run(func(ctx context.Context, b *domain.Booking, r *domain.Restaurant) {
			notified <- struct{}{}
		}).
		Return()

	repo := &memBookingRepo{
		tables: []domain.Table{{ID: "t1", RestaurantID: "r1", Seats: 4}},
	}
	svc := NewBookingService(repo, restaurantRepo, notifier, log)

	_, err := svc.Create(context.Background(), domain.CreateBookingInput{
		RestaurantID: "r1",
		PartySize:    2,
		BookingTime:  futureSlot(19, 0),
		Booker:       domain.Booker{Email: "alice@example.com"},
	})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), domain.CreateBookingInput{
		RestaurantID: "r1",
		PartySize:    2,
		BookingTime:  futureSlot(19, 30),
		Booker:       domain.Booker{Email: "bob@example.com"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoAvailableTables)

	_, err = svc.Create(context.Background(), domain.CreateBookingInput{
		RestaurantID: "r1",
		PartySize:    2,
		BookingTime:  futureSlot(19, 31),
		Booker:       domain.Booker{Email: "bob@example.com"},
	})
	require.NoError(t, err)

	waitNotified(t, notified, 2)
}

// Cancelling a booking returns its table to the available set for the same
// restaurant, time and party size.
func TestBookingService_CreateCancel_RoundTrip(t *testing.T) {
	restaurantRepo := mocks.NewMockRestaurantRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	restaurant := &domain.Restaurant{
		ID:             "r1",
		AvailableTimes: []string{"19:00"},
	}
	notified := make(chan struct{}, 3)
	signal := func(ctx context.Context, b *domain.Booking, r *domain.Restaurant) {
		notified <- struct{}{}
	}
	restaurantRepo.EXPECT().GetByID(mock.Anything, "r1").Return(restaurant, nil)
	notifier.EXPECT().NotifyBookingConfirmed(mock.Anything, mock.Anything, restaurant).Run(signal).Return()
	notifier.EXPECT().NotifyBookingCancelled(mock.Anything, mock.Anything, restaurant).Run(signal).Return()

	repo := &memBookingRepo{
		tables: []domain.Table{{ID: "t1", RestaurantID: "r1", Seats: 4}},
	}
	svc := NewBookingService(repo, restaurantRepo, notifier, log)

	input := domain.CreateBookingInput{
		RestaurantID: "r1",
		PartySize:    4,
		BookingTime:  futureSlot(19, 0),
		Booker:       domain.Booker{Email: "alice@example.com"},
	}

	first, err := svc.Create(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, []string{"t1"}, first.TableIDs)

	_, err = svc.Create(context.Background(), input)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoAvailableTables)

	require.NoError(t, svc.Cancel(context.Background(), first.ID, "alice@example.com"))

	second, err := svc.Create(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, []string{"t1"}, second.TableIDs)

	waitNotified(t, notified, 3)
}

// A reserve that fails at the store leaves no booking behind: the table stays
// free and a retry of the same request succeeds.
func TestBookingService_Create_NoPartialStateOnStoreFailure(t *testing.T) {
	restaurantRepo := mocks.NewMockRestaurantRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	restaurant := &domain.Restaurant{
		ID:             "r1",
		AvailableTimes: []string{"19:00"},
	}
	notified := make(chan struct{}, 1)
	restaurantRepo.EXPECT().GetByID(mock.Anything, "r1").Return(restaurant, nil)
	notifier.EXPECT().NotifyBookingConfirmed(mock.Anything, mock.Anything, restaurant).
		Run(func(ctx context.Context, b *domain.Booking, r *domain.Restaurant) {
			notified <- struct{}{}
		}).
		Return()

	repo := &memBookingRepo{
		tables:     []domain.Table{{ID: "t1", RestaurantID: "r1", Seats: 4}},
		reserveErr: errors.New("insert failed"),
	}
	svc := NewBookingService(repo, restaurantRepo, notifier, log)

	input := domain.CreateBookingInput{
		RestaurantID: "r1",
		PartySize:    4,
		BookingTime:  futureSlot(19, 0),
		Booker:       domain.Booker{Email: "alice@example.com"},
	}

	_, err := svc.Create(context.Background(), input)
	require.Error(t, err)

	repo.mu.Lock()
	stored := len(repo.bookings)
	repo.mu.Unlock()
	assert.Zero(t, stored)

	repo.mu.Lock()
	repo.reserveErr = nil
	repo.mu.Unlock()

	booking, err := svc.Create(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, []string{"t1"}, booking.TableIDs)

	waitNotified(t, notified, 1)
}
