package hunter

import (
	"context"
	"fmt"
	"net/url"
)

// EmailEnrichmentParams are the arguments for Client.EmailEnrichment. At
// least one of Email or LinkedInHandle must be set; both are sent when both
// are.
type EmailEnrichmentParams struct {
	// Email address of the person to look up.
	Email string
	// LinkedInHandle is the person's LinkedIn username.
	LinkedInHandle string
	// ClearbitFormat asks the service to shape the response like the
	// Clearbit Person API.
	ClearbitFormat bool
}

func (p *EmailEnrichmentParams) query() (url.Values, error) {
	if p == nil || (p.Email == "" && p.LinkedInHandle == "") {
		return nil, fmt.Errorf("%w: email or linkedin_handle", ErrMissingArgument)
	}

	q := url.Values{}
	if p.Email != "" {
		q.Set("email", p.Email)
	}
	if p.LinkedInHandle != "" {
		q.Set("linkedin_handle", p.LinkedInHandle)
	}
	if p.ClearbitFormat {
		q.Set("clearbit_format", "true")
	}
	return q, nil
}

// EmailEnrichment returns everything the service knows about the person
// behind an email address or LinkedIn handle.
func (c *Client) EmailEnrichment(ctx context.Context, params *EmailEnrichmentParams) (map[string]any, error) {
	q, err := params.query()
	if err != nil {
		return nil, err
	}
	return c.get(ctx, "people/find", q)
}

// EmailEnrichmentRaw is EmailEnrichment returning the full HTTP response
// instead of the unwrapped data payload.
func (c *Client) EmailEnrichmentRaw(ctx context.Context, params *EmailEnrichmentParams) (*Response, error) {
	q, err := params.query()
	if err != nil {
		return nil, err
	}
	return c.getRaw(ctx, "people/find", q)
}

// CompanyEnrichmentParams are the arguments for Client.CompanyEnrichment.
type CompanyEnrichmentParams struct {
	// Domain of the company to look up, e.g. "stripe.com". Required.
	Domain string
	// ClearbitFormat asks the service to shape the response like the
	// Clearbit Company API.
	ClearbitFormat bool
}

func (p *CompanyEnrichmentParams) query() (url.Values, error) {
	if p == nil || p.Domain == "" {
		return nil, ErrMissingCompany
	}

	q := url.Values{}
	q.Set("domain", p.Domain)
	if p.ClearbitFormat {
		q.Set("clearbit_format", "true")
	}
	return q, nil
}

// CompanyEnrichment returns everything the service knows about the company
// behind a domain.
func (c *Client) CompanyEnrichment(ctx context.Context, params *CompanyEnrichmentParams) (map[string]any, error) {
	q, err := params.query()
	if err != nil {
		return nil, err
	}
	return c.get(ctx, "companies/find", q)
}

// CompanyEnrichmentRaw is CompanyEnrichment returning the full HTTP response
// instead of the unwrapped data payload.
func (c *Client) CompanyEnrichmentRaw(ctx context.Context, params *CompanyEnrichmentParams) (*Response, error) {
	q, err := params.query()
	if err != nil {
		return nil, err
	}
	return c.getRaw(ctx, "companies/find", q)
}

// CombinedEnrichmentParams are the arguments for Client.CombinedEnrichment.
type CombinedEnrichmentParams struct {
	// Email address to look up. The service reports the error when it is
	// missing or unknown.
	Email string
	// ClearbitFormat asks the service to shape the response like the
	// Clearbit APIs.
	ClearbitFormat bool
}

func (p *CombinedEnrichmentParams) query() url.Values {
	q := url.Values{}
	if p == nil {
		return q
	}
	q.Set("email", p.Email)
	if p.ClearbitFormat {
		q.Set("clearbit_format", "true")
	}
	return q
}

// CombinedEnrichment returns everything the service knows about both the
// person behind an email address and the company they work for.
func (c *Client) CombinedEnrichment(ctx context.Context, params *CombinedEnrichmentParams) (map[string]any, error) {
	return c.get(ctx, "combined/find", params.query())
}

// CombinedEnrichmentRaw is CombinedEnrichment returning the full HTTP
// response instead of the unwrapped data payload.
func (c *Client) CombinedEnrichmentRaw(ctx context.Context, params *CombinedEnrichmentParams) (*Response, error) {
	return c.getRaw(ctx, "combined/find", params.query())
}
