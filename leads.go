package hunter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// LeadsFilter narrows the leads returned by Client.Leads. All fields are
// optional; the zero value lists every lead.
type LeadsFilter struct {
	Offset     *int
	Limit      *int
	LeadListID *int

	FirstName   string
	LastName    string
	Email       string
	Company     string
	PhoneNumber string
	Twitter     string
}

func (f *LeadsFilter) query() url.Values {
	q := url.Values{}
	if f == nil {
		return q
	}

	if f.Offset != nil {
		q.Set("offset", strconv.Itoa(*f.Offset))
	}
	if f.Limit != nil {
		q.Set("limit", strconv.Itoa(*f.Limit))
	}
	if f.LeadListID != nil {
		q.Set("lead_list_id", strconv.Itoa(*f.LeadListID))
	}
	if f.FirstName != "" {
		q.Set("first_name", f.FirstName)
	}
	if f.LastName != "" {
		q.Set("last_name", f.LastName)
	}
	if f.Email != "" {
		q.Set("email", f.Email)
	}
	if f.Company != "" {
		q.Set("company", f.Company)
	}
	if f.PhoneNumber != "" {
		q.Set("phone_number", f.PhoneNumber)
	}
	if f.Twitter != "" {
		q.Set("twitter", f.Twitter)
	}
	return q
}

// LeadAttributes describes a lead for Client.CreateLead and
// Client.UpdateLead. Only the fields that are set are sent.
type LeadAttributes struct {
	FirstName       string `json:"first_name,omitempty"`
	LastName        string `json:"last_name,omitempty"`
	Email           string `json:"email,omitempty"`
	Position        string `json:"position,omitempty"`
	Company         string `json:"company,omitempty"`
	CompanyIndustry string `json:"company_industry,omitempty"`
	CompanySize     string `json:"company_size,omitempty"`
	ConfidenceScore *int   `json:"confidence_score,omitempty"`
	Website         string `json:"website,omitempty"`
	CountryCode     string `json:"country_code,omitempty"`
	PostalCode      string `json:"postal_code,omitempty"`
	Source          string `json:"source,omitempty"`
	LinkedInURL     string `json:"linkedin_url,omitempty"`
	PhoneNumber     string `json:"phone_number,omitempty"`
	Twitter         string `json:"twitter,omitempty"`
	LeadsListID     *int   `json:"leads_list_id,omitempty"`
}

// Leads returns the leads saved in the account, optionally narrowed by
// filter.
func (c *Client) Leads(ctx context.Context, filter *LeadsFilter) (map[string]any, error) {
	return c.get(ctx, "leads", filter.query())
}

// Lead returns a single lead by id.
func (c *Client) Lead(ctx context.Context, id int) (map[string]any, error) {
	return c.get(ctx, fmt.Sprintf("leads/%d", id), nil)
}

// CreateLead saves a new lead and returns it as the service stored it.
func (c *Client) CreateLead(ctx context.Context, attrs *LeadAttributes) (map[string]any, error) {
	if attrs == nil {
		attrs = &LeadAttributes{}
	}
	return c.post(ctx, "leads", attrs)
}

// UpdateLead changes the attributes of an existing lead.
func (c *Client) UpdateLead(ctx context.Context, id int, attrs *LeadAttributes) error {
	if attrs == nil {
		attrs = &LeadAttributes{}
	}
	return c.put(ctx, fmt.Sprintf("leads/%d", id), attrs)
}

// DeleteLead removes a lead by id.
func (c *Client) DeleteLead(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("leads/%d", id))
}
