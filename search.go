package hunter

import (
	"context"
	"net/url"
	"strconv"
)

// DomainSearchParams are the arguments for Client.DomainSearch. At least one
// of Domain or Company must be set; Domain wins when both are.
type DomainSearchParams struct {
	// Domain to search for email addresses, e.g. "intercom.io".
	Domain string
	// Company name to search for when the domain is unknown.
	Company string

	// Limit is the maximum number of addresses to return. The service
	// defaults to 10.
	Limit *int
	// Offset is the number of addresses to skip.
	Offset *int
	// Seniority filters by seniority level: "junior", "senior", "executive",
	// or a comma-separated combination.
	Seniority string
	// Department filters by department, e.g. "it", "sales", "marketing", or
	// a comma-separated combination.
	Department string
	// Type filters by address type, "personal" or "generic".
	Type string
}

func (p *DomainSearchParams) query() (url.Values, error) {
	if p == nil {
		return nil, ErrMissingCompany
	}

	q := url.Values{}
	switch {
	case p.Domain != "":
		q.Set("domain", p.Domain)
	case p.Company != "":
		q.Set("company", p.Company)
	default:
		return nil, ErrMissingCompany
	}

	if p.Limit != nil {
		q.Set("limit", strconv.Itoa(*p.Limit))
	}
	if p.Offset != nil {
		q.Set("offset", strconv.Itoa(*p.Offset))
	}
	if p.Seniority != "" {
		q.Set("seniority", p.Seniority)
	}
	if p.Department != "" {
		q.Set("department", p.Department)
	}
	if p.Type != "" {
		q.Set("type", p.Type)
	}
	return q, nil
}

// DomainSearch returns the email addresses the service has found for a given
// domain or company.
func (c *Client) DomainSearch(ctx context.Context, params *DomainSearchParams) (map[string]any, error) {
	q, err := params.query()
	if err != nil {
		return nil, err
	}
	return c.get(ctx, "domain-search", q)
}

// DomainSearchRaw is DomainSearch returning the full HTTP response instead of
// the unwrapped data payload.
func (c *Client) DomainSearchRaw(ctx context.Context, params *DomainSearchParams) (*Response, error) {
	q, err := params.query()
	if err != nil {
		return nil, err
	}
	return c.getRaw(ctx, "domain-search", q)
}

// EmailCountParams are the arguments for Client.EmailCount. At least one of
// Domain or Company must be set; Domain wins when both are.
type EmailCountParams struct {
	Domain  string
	Company string
}

func (p *EmailCountParams) query() (url.Values, error) {
	if p == nil {
		return nil, ErrMissingCompany
	}

	q := url.Values{}
	switch {
	case p.Domain != "":
		q.Set("domain", p.Domain)
	case p.Company != "":
		q.Set("company", p.Company)
	default:
		return nil, ErrMissingCompany
	}
	return q, nil
}

// EmailCount returns how many email addresses the service has for a given
// domain or company.
func (c *Client) EmailCount(ctx context.Context, params *EmailCountParams) (map[string]any, error) {
	q, err := params.query()
	if err != nil {
		return nil, err
	}
	return c.get(ctx, "email-count", q)
}

// EmailCountRaw is EmailCount returning the full HTTP response instead of the
// unwrapped data payload.
func (c *Client) EmailCountRaw(ctx context.Context, params *EmailCountParams) (*Response, error) {
	q, err := params.query()
	if err != nil {
		return nil, err
	}
	return c.getRaw(ctx, "email-count", q)
}
