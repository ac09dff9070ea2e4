package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

const DefaultAPIURL = "https://api.clerk.com"

// ClerkClient resolves identity-provider user ids to display names. Lookups
// never fail the caller: on any error the user id itself is returned as the
// display value and the failure is logged.
type ClerkClient struct {
	baseURL    string
	secretKey  string
	httpClient *http.Client
	cache      NameCache
	logger     *zap.Logger
}

type Option func(*ClerkClient)

func WithHTTPClient(client *http.Client) Option {
	return func(c *ClerkClient) {
		c.httpClient = client
	}
}

func WithBaseURL(baseURL string) Option {
	return func(c *ClerkClient) {
		c.baseURL = baseURL
	}
}

func WithNameCache(cache NameCache) Option {
	return func(c *ClerkClient) {
		c.cache = cache
	}
}

func NewClerkClient(secretKey string, logger *zap.Logger, opts ...Option) *ClerkClient {
	c := &ClerkClient{
		baseURL:   DefaultAPIURL,
		secretKey: secretKey,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
		logger: logger,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

type clerkUser struct {
	FirstName string `json:"first_name"`
}

// ResolveFirstName returns the user's first name, or userID when the
// provider cannot supply one.
func (c *ClerkClient) ResolveFirstName(ctx context.Context, userID string) string {
	if c.cache != nil {
		if name, ok := c.cache.Get(ctx, userID); ok {
			return name
		}
	}

	name, err := c.fetchFirstName(ctx, userID)
	if err != nil {
		c.logger.Warn("identity lookup failed, falling back to user id",
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return userID
	}

	if c.cache != nil {
		c.cache.Set(ctx, userID, name)
	}

	return name
}

func (c *ClerkClient) fetchFirstName(ctx context.Context, userID string) (string, error) {
	endpoint := fmt.Sprintf("%s/v1/users/%s", c.baseURL, url.PathEscape(userID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("identity provider returned status %d", resp.StatusCode)
	}

	var user clerkUser
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return "", err
	}

	if user.FirstName == "" {
		return "", fmt.Errorf("identity provider returned no first name")
	}

	return user.FirstName, nil
}
