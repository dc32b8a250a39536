package hunter

import (
	"context"
	"net/url"
)

// EmailVerifier checks the deliverability of an email address and returns the
// verification details, including a status and a score.
func (c *Client) EmailVerifier(ctx context.Context, email string) (map[string]any, error) {
	q := url.Values{}
	q.Set("email", email)
	return c.get(ctx, "email-verifier", q)
}

// EmailVerifierRaw is EmailVerifier returning the full HTTP response instead
// of the unwrapped data payload.
func (c *Client) EmailVerifierRaw(ctx context.Context, email string) (*Response, error) {
	q := url.Values{}
	q.Set("email", email)
	return c.getRaw(ctx, "email-verifier", q)
}
