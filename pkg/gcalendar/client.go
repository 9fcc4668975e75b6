package gcalendar

import (
	"context"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	admin "google.golang.org/api/admin/directory/v1"
	"google.golang.org/api/calendar/v3"
	oauth2api "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

// DefaultCustomer addresses the Workspace account of the authenticated user.
const DefaultCustomer = "my_customer"

// Scopes are the OAuth scopes the client needs.
var Scopes = []string{
	calendar.CalendarScope,
	admin.AdminDirectoryResourceCalendarReadonlyScope,
	oauth2api.UserinfoEmailScope,
	oauth2api.UserinfoProfileScope,
}

// Client wraps the Google Calendar, Directory and Userinfo API services.
type Client struct {
	service   *calendar.Service
	directory *admin.Service
	userinfo  *oauth2api.Service
}

// NewClientFromTokenSource creates a client that authenticates as the owner
// of the token source.
func NewClientFromTokenSource(ctx context.Context, ts oauth2.TokenSource) (*Client, error) {
	return newClient(ctx, option.WithTokenSource(ts))
}

// NewClientFromHTTP creates a client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	return newClient(ctx, option.WithHTTPClient(httpClient))
}

func newClient(ctx context.Context, opts ...option.ClientOption) (*Client, error) {
	svc, err := calendar.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	dir, err := admin.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory service: %w", err)
	}
	ui, err := oauth2api.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create userinfo service: %w", err)
	}
	return &Client{service: svc, directory: dir, userinfo: ui}, nil
}

// UserInfo returns the profile of the authenticated account.
func (c *Client) UserInfo(ctx context.Context) (UserInfo, error) {
	info, err := c.userinfo.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		return UserInfo{}, wrap("failed to get user info", err)
	}

	out := UserInfo{
		ID:           info.Id,
		Email:        info.Email,
		Name:         info.Name,
		Picture:      info.Picture,
		HostedDomain: info.Hd,
	}
	if info.VerifiedEmail != nil {
		out.VerifiedEmail = *info.VerifiedEmail
	}
	return out, nil
}
