package api

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
)

// AuthClient covers /auth and /users/me.
type AuthClient struct {
	client *Client
}

var _ service.AuthAPI = (*AuthClient)(nil)

// NewAuthClient is the constructor for AuthClient.
func NewAuthClient(client *Client) *AuthClient {
	return &AuthClient{client: client}
}

// Login exchanges credentials for a token and the user record.
func (a *AuthClient) Login(ctx context.Context, email, password string) (*service.AuthResult, error) {
	res, err := a.client.Post(ctx, "/auth/login", JSONBody(map[string]string{
		"email":    email,
		"password": password,
	}))
	if err != nil {
		return nil, err
	}

	return authResult(res)
}

// Register creates an account and signs it in.
func (a *AuthClient) Register(ctx context.Context, input service.RegisterInput) (*service.AuthResult, error) {
	body := map[string]string{
		"email":    input.Email,
		"password": input.Password,
	}
	if input.Name != "" {
		body["name"] = input.Name
	}

	res, err := a.client.Post(ctx, "/auth/register", JSONBody(body))
	if err != nil {
		return nil, err
	}

	return authResult(res)
}

// Me returns the record of the token's user.
func (a *AuthClient) Me(ctx context.Context) (*entity.User, error) {
	res, err := a.client.Get(ctx, "/users/me", nil)
	if err != nil {
		return nil, err
	}

	user := parseUser(res.JSON())
	if user == nil || user.ID == "" {
		return nil, errors.WithStack(domainerrors.ErrInternalError.WithDetails("malformed /users/me response"))
	}

	return user, nil
}

func authResult(res *Result) (*service.AuthResult, error) {
	token, user := parseAuth(res.JSON())
	if token == "" || user == nil || user.ID == "" {
		return nil, errors.WithStack(domainerrors.ErrInternalError.WithDetails("malformed auth response"))
	}

	return &service.AuthResult{Token: token, User: user}, nil
}
