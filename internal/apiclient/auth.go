package apiclient

import (
	"context"

	"github.com/BruksfildServices01/appointme-client/internal/models"
)

func (c *Client) RegisterCustomer(ctx context.Context, in models.CustomerRegistration) (*models.Customer, error) {
	var out models.Customer
	if err := c.post(ctx, "/auth/customer/register", "/auth/customer/register", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) RegisterBusiness(ctx context.Context, in models.BusinessRegistration) (*models.Business, error) {
	var out models.Business
	if err := c.post(ctx, "/auth/business/register", "/auth/business/register", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login posts credentials to the role-specific login endpoint.
func (c *Client) Login(ctx context.Context, role models.Role, email, password string) (*models.LoginResponse, error) {
	path := "/auth/" + role.String() + "/login"

	var out models.LoginResponse
	if err := c.post(ctx, path, path, models.Credentials{Email: email, Password: password}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Profile fetches the profile of the token holder for role.
func (c *Client) Profile(ctx context.Context, role models.Role) (models.Profile, error) {
	if role == models.RoleBusiness {
		b, err := c.BusinessProfile(ctx)
		if err != nil {
			return nil, err
		}
		return b, nil
	}

	cu, err := c.CustomerProfile(ctx)
	if err != nil {
		return nil, err
	}
	return cu, nil
}
