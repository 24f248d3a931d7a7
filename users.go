package printforge

import (
	"context"
	"net/http"
)

// Me fetches the caller's profile.
func (c *Client) Me(ctx context.Context) (*UserProfile, error) {
	profile := new(UserProfile)
	if err := c.get(ctx, "/api/v1/users/me", profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// UpdateMe updates the caller's profile. The backend rejects the change
// unless the current password confirms it.
func (c *Client) UpdateMe(ctx context.Context, req UpdateProfileRequest) (*UserProfile, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	profile := new(UserProfile)
	if err := c.send(ctx, http.MethodPut, "/api/v1/users/me", req, profile); err != nil {
		return nil, err
	}
	return profile, nil
}
