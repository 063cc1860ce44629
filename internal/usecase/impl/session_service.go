// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// persistedSession is the JSON layout stored under repository.SessionKey.
type persistedSession struct {
	User  *entity.User `json:"user"`
	Token string       `json:"token"`
}

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	auth      service.AuthAPI
	storage   *repository.ClientStorage
	tokens    service.TokenStore
	inspector service.TokenInspector
	validate  *validator.Validate
	logger    *slog.Logger
	now       func() time.Time

	// persistMu serializes writes of the session, persisted and in memory.
	persistMu sync.Mutex
	mu        sync.RWMutex
	session   entity.Session
	listeners []usecase.IdentityListener
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	auth service.AuthAPI,
	storage *repository.ClientStorage,
	tokens service.TokenStore,
	inspector service.TokenInspector,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		auth:      auth,
		storage:   storage,
		tokens:    tokens,
		inspector: inspector,
		validate:  newValidator(),
		logger:    logger,
		now:       time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignIn exchanges credentials for a session. State is untouched on failure.
func (srv *sessionService) SignIn(ctx context.Context, email, password string) error {
	srv.log(ctx).Info("Signing in", slog.String("email", email))

	result, err := srv.auth.Login(ctx, strings.TrimSpace(email), password)
	if err != nil {
		srv.log(ctx).Warn("Sign in failed", slog.String("email", email), slog.Any("error", err))

		return errors.Wrap(err, "failed to sign in")
	}
	if result == nil || result.User == nil {
		return errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	srv.establish(ctx, result)
	srv.log(ctx).Info("Signed in", slog.String("user_id", result.User.ID))

	return nil
}

// SignUp registers a shopper and signs them in.
func (srv *sessionService) SignUp(ctx context.Context, input usecase.SignUpInput) error {
	if err := srv.validate.Struct(input); err != nil {
		return validationError(err)
	}

	srv.log(ctx).Info("Signing up", slog.String("email", input.Email))

	result, err := srv.auth.Register(ctx, service.RegisterInput{
		Email:    strings.TrimSpace(input.Email),
		Password: input.Password,
		Name:     FullName(input.FirstName, input.LastName),
	})
	if err != nil {
		srv.log(ctx).Warn("Sign up failed", slog.String("email", input.Email), slog.Any("error", err))

		return errors.Wrap(err, "failed to sign up")
	}
	if result == nil || result.User == nil {
		return errors.WithStack(domainerrors.ErrInternalError.WithDetails("register returned no user"))
	}

	srv.establish(ctx, result)
	srv.log(ctx).Info("Signed up", slog.String("user_id", result.User.ID))

	return nil
}

// SignOut clears the persisted and in-memory session. It never fails.
func (srv *sessionService) SignOut(ctx context.Context) {
	srv.log(ctx).Info("Signing out")

	srv.persistMu.Lock()
	defer srv.persistMu.Unlock()

	if err := srv.storage.Local.Delete(ctx, repository.SessionKey); err != nil {
		srv.log(ctx).Warn("Failed to clear persisted session", slog.Any("error", err))
	}

	srv.replace(ctx, entity.Session{})
}

// Restore reads the persisted session. Anything unreadable or expired counts as no session.
func (srv *sessionService) Restore(ctx context.Context) {
	raw, err := srv.storage.Local.Get(ctx, repository.SessionKey)
	if err != nil {
		if !errors.Is(err, repository.ErrKeyNotFound) {
			srv.log(ctx).Error("Failed to read persisted session", slog.Any("error", err))
		}

		return
	}

	var stored persistedSession
	if err := json.Unmarshal(raw, &stored); err != nil {
		srv.log(ctx).Error("Failed to parse persisted session", slog.Any("error", err))

		return
	}
	if stored.User == nil || stored.Token == "" {
		srv.log(ctx).Warn("Persisted session is incomplete, ignoring it")

		return
	}

	if srv.expired(ctx, stored.Token) {
		srv.log(ctx).Info("Persisted session expired", slog.String("user_id", stored.User.ID))
		if err := srv.storage.Local.Delete(ctx, repository.SessionKey); err != nil {
			srv.log(ctx).Warn("Failed to clear expired session", slog.Any("error", err))
		}

		return
	}

	srv.replace(ctx, entity.Session{User: stored.User, Token: stored.Token})
	srv.log(ctx).Info("Session restored", slog.String("user_id", stored.User.ID))
}

// Refresh reloads the user record and persists it alongside the current token. A result
// arriving after the session changed, e.g. a sign-out during the request, is discarded.
func (srv *sessionService) Refresh(ctx context.Context) (*entity.User, error) {
	current := srv.Current()
	if !current.IsAuthenticated() {
		return nil, errors.WithStack(domainerrors.ErrSignInRequired)
	}

	user, err := srv.auth.Me(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to refresh user")
	}

	srv.persistMu.Lock()
	defer srv.persistMu.Unlock()

	if srv.Current().Token != current.Token {
		srv.log(ctx).Debug("Discarding refreshed user, session changed", slog.String("user_id", user.ID))

		return nil, errors.WithStack(domainerrors.ErrSignInRequired)
	}

	srv.establishLocked(ctx, &service.AuthResult{Token: current.Token, User: user})

	return user, nil
}

// Current returns a copy of the session.
func (srv *sessionService) Current() entity.Session {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return copySession(srv.session)
}

// User returns a copy of the signed-in user, or nil.
func (srv *sessionService) User() *entity.User {
	return srv.Current().User
}

// Subscribe registers a listener for identity changes.
func (srv *sessionService) Subscribe(listener usecase.IdentityListener) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.listeners = append(srv.listeners, listener)
}

func (srv *sessionService) establish(ctx context.Context, result *service.AuthResult) {
	srv.persistMu.Lock()
	defer srv.persistMu.Unlock()

	srv.establishLocked(ctx, result)
}

// establishLocked must be called with srv.persistMu held.
func (srv *sessionService) establishLocked(ctx context.Context, result *service.AuthResult) {
	next := entity.Session{User: result.User, Token: result.Token}

	raw, err := json.Marshal(persistedSession{User: next.User, Token: next.Token})
	if err == nil {
		err = srv.storage.Local.Set(ctx, repository.SessionKey, raw)
	}
	if err != nil {
		srv.log(ctx).Warn("Failed to persist session", slog.Any("error", err))
	}

	srv.replace(ctx, next)
}

// replace swaps the session and, when the user identity changed, notifies listeners
// outside the lock.
func (srv *sessionService) replace(ctx context.Context, next entity.Session) {
	srv.mu.Lock()
	changed := srv.session.UserID() != next.UserID()
	srv.session = copySession(next)
	srv.tokens.SetToken(next.Token)
	listeners := append([]usecase.IdentityListener(nil), srv.listeners...)
	srv.mu.Unlock()

	if !changed {
		return
	}

	user := copySession(next).User
	for _, listener := range listeners {
		listener(ctx, user)
	}
}

func (srv *sessionService) expired(ctx context.Context, token string) bool {
	if srv.inspector == nil {
		return false
	}

	expiresAt, ok, err := srv.inspector.ExpiresAt(token)
	if err != nil {
		srv.log(ctx).Warn("Persisted token is not inspectable", slog.Any("error", err))

		return false
	}

	return ok && !expiresAt.After(srv.now())
}

func copySession(s entity.Session) entity.Session {
	if s.User != nil {
		u := *s.User
		s.User = &u
	}

	return s
}

// FullName joins the non-empty first and last names with a single space.
func FullName(first, last string) string {
	parts := make([]string, 0, 2)
	for _, p := range []string{first, last} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}

	return strings.TrimSpace(strings.Join(parts, " "))
}
