package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"
	mockusecase "storefront/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestSessionHandler(t *testing.T) (*SessionHandler, *mockusecase.MockSessionUsecase) {
	sessionUC := mockusecase.NewMockSessionUsecase(t)
	h := NewSessionHandler(SessionHandlerParams{
		SessionUC: sessionUC,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return h, sessionUC
}

func TestSessionHandler_SignIn(t *testing.T) {
	h, sessionUC := createTestSessionHandler(t)
	user := &entity.User{ID: "u1", Email: "ada@example.com", Role: entity.RoleCustomer}

	sessionUC.EXPECT().SignIn(mock.Anything, "ada@example.com", "secret").Return(nil).Once()
	sessionUC.EXPECT().Current().Return(entity.Session{User: user, Token: "jwt"}).Once()

	c, rec := newJSONContext(newTestEcho(), http.MethodPost, "/session/sign-in", `{"email":"ada@example.com","password":"secret"}`)
	require.NoError(t, h.SignIn(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "jwt")

	var view SessionView
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &view))
	assert.True(t, view.Authenticated)
	assert.Equal(t, "u1", view.User.ID)
}

func TestSessionHandler_SignIn_InvalidEmail(t *testing.T) {
	h, _ := createTestSessionHandler(t)

	c, rec := newJSONContext(newTestEcho(), http.MethodPost, "/session/sign-in", `{"email":"nope","password":"secret"}`)
	require.NoError(t, h.SignIn(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Equal(t, "email: email", env.Error.Details)
}

func TestSessionHandler_SignIn_InvalidCredentials(t *testing.T) {
	h, sessionUC := createTestSessionHandler(t)

	sessionUC.EXPECT().SignIn(mock.Anything, "ada@example.com", "wrong").
		Return(errors.WithStack(domainerrors.ErrInvalidCredentials)).Once()

	c, rec := newJSONContext(newTestEcho(), http.MethodPost, "/session/sign-in", `{"email":"ada@example.com","password":"wrong"}`)
	require.NoError(t, h.SignIn(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", decodeEnvelope(t, rec).Error.Code)
}

func TestSessionHandler_SignOut(t *testing.T) {
	h, sessionUC := createTestSessionHandler(t)

	sessionUC.EXPECT().SignOut(mock.Anything).Return().Once()
	sessionUC.EXPECT().Current().Return(entity.Session{}).Once()

	c, rec := newJSONContext(newTestEcho(), http.MethodPost, "/session/sign-out", "")
	require.NoError(t, h.SignOut(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var view SessionView
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &view))
	assert.False(t, view.Authenticated)
	assert.Nil(t, view.User)
}
