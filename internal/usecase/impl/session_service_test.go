package impl

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type sessionServiceFixture struct {
	service   *sessionService
	auth      *mockSvc.MockAuthAPI
	tokens    *mockSvc.MockTokenStore
	inspector *mockSvc.MockTokenInspector
	storage   *repository.ClientStorage
	changes   []*entity.User
}

func createTestSessionService(t *testing.T) *sessionServiceFixture {
	t.Helper()

	fx := &sessionServiceFixture{
		auth:      mockSvc.NewMockAuthAPI(t),
		tokens:    mockSvc.NewMockTokenStore(t),
		inspector: mockSvc.NewMockTokenInspector(t),
		storage:   newMemoryStorage(),
	}
	fx.tokens.EXPECT().SetToken(mock.Anything).Return().Maybe()

	fx.service = NewSessionService(fx.auth, fx.storage, fx.tokens, fx.inspector, newDiscardLogger()).(*sessionService)
	fx.service.Subscribe(func(_ context.Context, user *entity.User) {
		fx.changes = append(fx.changes, user)
	})

	return fx
}

func (fx *sessionServiceFixture) persisted(t *testing.T) *persistedSession {
	t.Helper()

	raw, err := fx.storage.Local.Get(context.Background(), repository.SessionKey)
	if errors.Is(err, repository.ErrKeyNotFound) {
		return nil
	}
	require.NoError(t, err)

	var stored persistedSession
	require.NoError(t, json.Unmarshal(raw, &stored))

	return &stored
}

func TestSessionService_SignIn(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()
	user := &entity.User{ID: "u1", Email: "ada@example.com"}

	fx.auth.EXPECT().Login(ctx, "ada@example.com", "secret").Return(&service.AuthResult{Token: "tok", User: user}, nil)

	err := fx.service.SignIn(ctx, " ada@example.com ", "secret")

	require.NoError(t, err)
	assert.Equal(t, entity.Session{User: user, Token: "tok"}, fx.service.Current())
	assert.Equal(t, &persistedSession{User: user, Token: "tok"}, fx.persisted(t))
	require.Len(t, fx.changes, 1)
	assert.Equal(t, "u1", fx.changes[0].ID)
}

func TestSessionService_SignIn_FailureLeavesStateUntouched(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	fx.auth.EXPECT().Login(ctx, "ada@example.com", "wrong").Return(nil, domainerrors.NewAPIError(401, "Invalid credentials"))

	err := fx.service.SignIn(ctx, "ada@example.com", "wrong")

	require.Error(t, err)
	assert.Equal(t, "Invalid credentials", domainerrors.UserMessage(err))
	assert.Nil(t, fx.service.User())
	assert.Nil(t, fx.persisted(t))
	assert.Empty(t, fx.changes)
}

func TestSessionService_SignUp(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()
	user := &entity.User{ID: "u2", Email: "bo@example.com", Name: "Bo Diddley"}

	fx.auth.EXPECT().Register(ctx, service.RegisterInput{
		Email:    "bo@example.com",
		Password: "secret1",
		Name:     "Bo Diddley",
	}).Return(&service.AuthResult{Token: "tok2", User: user}, nil)

	err := fx.service.SignUp(ctx, usecase.SignUpInput{
		Email:     "bo@example.com",
		Password:  "secret1",
		FirstName: " Bo ",
		LastName:  "Diddley",
	})

	require.NoError(t, err)
	assert.Equal(t, "u2", fx.service.User().ID)
}

func TestSessionService_SignUp_ValidatesBeforeAnyRequest(t *testing.T) {
	fx := createTestSessionService(t)

	err := fx.service.SignUp(context.Background(), usecase.SignUpInput{Email: "not-an-email", Password: "123"})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	fx.auth.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestSessionService_SignUp_LeavesPasswordPolicyToRemote(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	fx.auth.EXPECT().Register(ctx, service.RegisterInput{Email: "bo@example.com", Password: "abc"}).
		Return(nil, domainerrors.NewAPIError(422, "Password is too short")).Once()

	err := fx.service.SignUp(ctx, usecase.SignUpInput{Email: "bo@example.com", Password: "abc"})

	var apiErr *domainerrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Password is too short", apiErr.Message())
	assert.Nil(t, fx.service.User())
}

func TestSessionService_SignOut_IsIdempotent(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()
	user := &entity.User{ID: "u1"}

	fx.auth.EXPECT().Login(ctx, "a@b.c", "pw").Return(&service.AuthResult{Token: "tok", User: user}, nil)
	require.NoError(t, fx.service.SignIn(ctx, "a@b.c", "pw"))

	fx.service.SignOut(ctx)
	fx.service.SignOut(ctx)

	assert.Equal(t, entity.Session{}, fx.service.Current())
	assert.Nil(t, fx.persisted(t))
	// signed in, then signed out once; the second sign-out changes nothing
	require.Len(t, fx.changes, 2)
	assert.Nil(t, fx.changes[1])
}

func TestSessionService_Restore(t *testing.T) {
	user := &entity.User{ID: "u1", Email: "ada@example.com"}
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		stored    string
		expiresAt time.Time
		hasExp    bool
		wantUser  bool
		wantKept  bool
	}{
		{"valid token", `{"user":{"id":"u1","email":"ada@example.com"},"token":"tok"}`, now.Add(time.Hour), true, true, true},
		{"token without exp", `{"user":{"id":"u1","email":"ada@example.com"},"token":"tok"}`, time.Time{}, false, true, true},
		{"expired token", `{"user":{"id":"u1","email":"ada@example.com"},"token":"tok"}`, now.Add(-time.Minute), true, false, false},
		{"corrupt json", `{"user":`, time.Time{}, false, false, true},
		{"missing token", `{"user":{"id":"u1"}}`, time.Time{}, false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestSessionService(t)
			fx.service.now = func() time.Time { return now }
			ctx := context.Background()

			require.NoError(t, fx.storage.Local.Set(ctx, repository.SessionKey, []byte(tt.stored)))
			fx.inspector.EXPECT().ExpiresAt("tok").Return(tt.expiresAt, tt.hasExp, nil).Maybe()

			fx.service.Restore(ctx)

			if tt.wantUser {
				assert.Equal(t, user, fx.service.User())
				assert.Equal(t, "tok", fx.service.Current().Token)
			} else {
				assert.Nil(t, fx.service.User())
			}

			_, err := fx.storage.Local.Get(ctx, repository.SessionKey)
			assert.Equal(t, tt.wantKept, err == nil)
		})
	}
}

func TestSessionService_Restore_NothingPersisted(t *testing.T) {
	fx := createTestSessionService(t)

	fx.service.Restore(context.Background())

	assert.Nil(t, fx.service.User())
	assert.Empty(t, fx.changes)
}

func TestSessionService_Refresh(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	_, err := fx.service.Refresh(ctx)
	assert.ErrorIs(t, err, domainerrors.ErrSignInRequired)

	fx.auth.EXPECT().Login(ctx, "a@b.c", "pw").Return(&service.AuthResult{Token: "tok", User: &entity.User{ID: "u1"}}, nil)
	require.NoError(t, fx.service.SignIn(ctx, "a@b.c", "pw"))

	updated := &entity.User{ID: "u1", Name: "Ada"}
	fx.auth.EXPECT().Me(ctx).Return(updated, nil)

	got, err := fx.service.Refresh(ctx)

	require.NoError(t, err)
	assert.Equal(t, updated, got)
	assert.Equal(t, "Ada", fx.service.User().Name)
	assert.Equal(t, "tok", fx.persisted(t).Token)
	// same identity, so listeners fire only for the sign-in
	assert.Len(t, fx.changes, 1)
}

func TestSessionService_Refresh_SignOutDuringRequestWins(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	fx.auth.EXPECT().Login(ctx, "a@b.c", "pw").Return(&service.AuthResult{Token: "tok", User: &entity.User{ID: "u1"}}, nil)
	require.NoError(t, fx.service.SignIn(ctx, "a@b.c", "pw"))

	fx.auth.EXPECT().Me(ctx).RunAndReturn(func(ctx context.Context) (*entity.User, error) {
		fx.service.SignOut(ctx)

		return &entity.User{ID: "u1", Name: "Ada"}, nil
	}).Once()

	got, err := fx.service.Refresh(ctx)

	assert.ErrorIs(t, err, domainerrors.ErrSignInRequired)
	assert.Nil(t, got)
	assert.Nil(t, fx.service.User())
	assert.Nil(t, fx.persisted(t))
}

func TestSessionService_Current_ReturnsCopy(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	fx.auth.EXPECT().Login(ctx, "a@b.c", "pw").Return(&service.AuthResult{Token: "tok", User: &entity.User{ID: "u1", Name: "Ada"}}, nil)
	require.NoError(t, fx.service.SignIn(ctx, "a@b.c", "pw"))

	fx.service.User().Name = "Mallory"

	assert.Equal(t, "Ada", fx.service.User().Name)
}

func TestFullName(t *testing.T) {
	assert.Equal(t, "Ada Lovelace", FullName("Ada", "Lovelace"))
	assert.Equal(t, "Ada", FullName(" Ada ", ""))
	assert.Equal(t, "Lovelace", FullName("", "Lovelace"))
	assert.Empty(t, FullName(" ", ""))
}
