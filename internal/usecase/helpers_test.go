package usecase

import (
	"context"
	"sync"
	"testing"

	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/data/repository/mocks"
	"hotel-booking/pkg/utils"
)

var (
	ctx   = context.Background()
	alice = utils.Identity{UserID: 42, Name: "Alice", Email: "alice@example.com"}
)

type repoMocks struct {
	user     *mocks.UserRepository
	room     *mocks.RoomRepository
	booking  *mocks.BookingRepository
	order    *mocks.OrderRepository
	payment  *mocks.PaymentRepository
	feedback *mocks.FeedbackRepository
	support  *mocks.SupportRepository
	catalog  *mocks.CatalogRepository
}

func newRepo(t *testing.T) (*repository.Repository, *repoMocks) {
	m := &repoMocks{
		user:     mocks.NewUserRepository(t),
		room:     mocks.NewRoomRepository(t),
		booking:  mocks.NewBookingRepository(t),
		order:    mocks.NewOrderRepository(t),
		payment:  mocks.NewPaymentRepository(t),
		feedback: mocks.NewFeedbackRepository(t),
		support:  mocks.NewSupportRepository(t),
		catalog:  mocks.NewCatalogRepository(t),
	}

	return &repository.Repository{
		User:     m.user,
		Room:     m.room,
		Booking:  m.booking,
		Order:    m.order,
		Payment:  m.payment,
		Feedback: m.feedback,
		Support:  m.support,
		Catalog:  m.catalog,
	}, m
}

type published struct {
	key   string
	event any
}

type recordingPublisher struct {
	mu   sync.Mutex
	sent []published
	err  error
}

func (p *recordingPublisher) Publish(_ context.Context, key string, event any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.sent = append(p.sent, published{key: key, event: event})
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func ptr[T any](v T) *T { return &v }
