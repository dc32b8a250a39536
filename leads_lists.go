package hunter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// LeadsListsFilter narrows the lists returned by Client.LeadsLists.
type LeadsListsFilter struct {
	Offset *int
	Limit  *int
}

func (f *LeadsListsFilter) query() url.Values {
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
	return q
}

// LeadsListParams describes a leads list for Client.CreateLeadsList and
// Client.UpdateLeadsList.
type LeadsListParams struct {
	// Name of the list. Required.
	Name string `json:"name"`
	// TeamID shares the list with a team.
	TeamID *int `json:"team_id,omitempty"`
}

func (p *LeadsListParams) validate() error {
	if p == nil || p.Name == "" {
		return fmt.Errorf("%w: name", ErrMissingArgument)
	}
	return nil
}

// LeadsLists returns the leads lists saved in the account.
func (c *Client) LeadsLists(ctx context.Context, filter *LeadsListsFilter) (map[string]any, error) {
	return c.get(ctx, "leads_lists", filter.query())
}

// LeadsList returns a single leads list by id, including its leads.
func (c *Client) LeadsList(ctx context.Context, id int) (map[string]any, error) {
	return c.get(ctx, fmt.Sprintf("leads_lists/%d", id), nil)
}

// CreateLeadsList saves a new leads list and returns it as the service
// stored it.
func (c *Client) CreateLeadsList(ctx context.Context, params *LeadsListParams) (map[string]any, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}
	return c.post(ctx, "leads_lists", params)
}

// UpdateLeadsList changes the name or team of an existing leads list.
func (c *Client) UpdateLeadsList(ctx context.Context, id int, params *LeadsListParams) error {
	if err := params.validate(); err != nil {
		return err
	}
	return c.put(ctx, fmt.Sprintf("leads_lists/%d", id), params)
}

// DeleteLeadsList removes a leads list by id.
func (c *Client) DeleteLeadsList(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("leads_lists/%d", id))
}
