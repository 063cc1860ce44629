package api

import (
	"context"
	"net/url"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
)

// UserClient covers /users.
type UserClient struct {
	client *Client
}

var _ service.UserAPI = (*UserClient)(nil)

// NewUserClient is the constructor for UserClient.
func NewUserClient(client *Client) *UserClient {
	return &UserClient{client: client}
}

// List returns every account.
func (u *UserClient) List(ctx context.Context) ([]entity.User, error) {
	res, err := u.client.Get(ctx, "/users", nil)
	if err != nil {
		return nil, err
	}

	return parseUsers(res.JSON()), nil
}

// Delete removes an account.
func (u *UserClient) Delete(ctx context.Context, id string) error {
	_, err := u.client.Delete(ctx, "/users/"+url.PathEscape(id))

	return err
}
