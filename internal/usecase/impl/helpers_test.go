package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/storage"
	mockSvc "storefront/internal/mocks/service"
	mockUC "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newMemoryStorage() *repository.ClientStorage {
	return &repository.ClientStorage{
		Local:   storage.NewMemoryStore(),
		Session: storage.NewMemoryStore(),
	}
}

// sessionStub backs a MockSessionUsecase whose user can change during a test.
type sessionStub struct {
	mu        sync.Mutex
	user      *entity.User
	listeners []usecase.IdentityListener
}

func newSessionMock(t *testing.T, user *entity.User) (*mockUC.MockSessionUsecase, *sessionStub) {
	t.Helper()

	stub := &sessionStub{user: user}
	session := mockUC.NewMockSessionUsecase(t)
	session.EXPECT().User().RunAndReturn(func() *entity.User {
		stub.mu.Lock()
		defer stub.mu.Unlock()

		return stub.user
	}).Maybe()
	session.EXPECT().Current().RunAndReturn(func() entity.Session {
		stub.mu.Lock()
		defer stub.mu.Unlock()

		if stub.user == nil {
			return entity.Session{}
		}

		return entity.Session{User: stub.user, Token: "token-" + stub.user.ID}
	}).Maybe()
	session.EXPECT().Subscribe(mock.Anything).Run(func(listener usecase.IdentityListener) {
		stub.mu.Lock()
		defer stub.mu.Unlock()

		stub.listeners = append(stub.listeners, listener)
	}).Return().Maybe()

	return session, stub
}

// switchUser changes the session user and notifies listeners like the session service does.
func (s *sessionStub) switchUser(ctx context.Context, user *entity.User) {
	s.mu.Lock()
	s.user = user
	listeners := append([]usecase.IdentityListener(nil), s.listeners...)
	s.mu.Unlock()

	for _, l := range listeners {
		l(ctx, user)
	}
}

// noticeRecorder collects every notice sent to a MockNotifier.
type noticeRecorder struct {
	mu      sync.Mutex
	notices []entity.Notice
}

func newNotifierMock(t *testing.T) (*mockSvc.MockNotifier, *noticeRecorder) {
	t.Helper()

	rec := &noticeRecorder{}
	notifier := mockSvc.NewMockNotifier(t)
	notifier.EXPECT().Notify(mock.Anything, mock.Anything).Run(func(_ context.Context, n entity.Notice) {
		rec.mu.Lock()
		defer rec.mu.Unlock()

		rec.notices = append(rec.notices, n)
	}).Return().Maybe()

	return notifier, rec
}

func (r *noticeRecorder) all() []entity.Notice {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]entity.Notice(nil), r.notices...)
}

func (r *noticeRecorder) byLevel(level entity.NoticeLevel) []entity.Notice {
	var out []entity.Notice
	for _, n := range r.all() {
		if n.Level == level {
			out = append(out, n)
		}
	}

	return out
}

func (r *noticeRecorder) titles() []string {
	var out []string
	for _, n := range r.all() {
		out = append(out, n.Title)
	}

	return out
}
