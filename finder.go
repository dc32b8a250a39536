package hunter

import (
	"context"
	"net/url"
)

// EmailFinderParams are the arguments for Client.EmailFinder. The target
// company is identified by Domain or Company (Domain wins when both are set),
// and the person by FirstName plus LastName, or by FullName. When both name
// forms are present, the split form wins.
type EmailFinderParams struct {
	Domain  string
	Company string

	FirstName string
	LastName  string
	FullName  string
}

func (p *EmailFinderParams) query() (url.Values, error) {
	if p == nil {
		return nil, ErrMissingCompany
	}
	if p.Domain == "" && p.Company == "" {
		return nil, ErrMissingCompany
	}
	if (p.FirstName == "" || p.LastName == "") && p.FullName == "" {
		return nil, ErrMissingName
	}

	q := url.Values{}
	if p.Domain != "" {
		q.Set("domain", p.Domain)
	} else {
		q.Set("company", p.Company)
	}
	if p.FirstName != "" && p.LastName != "" {
		q.Set("first_name", p.FirstName)
		q.Set("last_name", p.LastName)
	} else {
		q.Set("full_name", p.FullName)
	}
	return q, nil
}

// EmailFinder guesses the most likely email address of a person from their
// name and the domain or name of the company they work for. It returns the
// address together with a confidence score between 0 and 100.
func (c *Client) EmailFinder(ctx context.Context, params *EmailFinderParams) (string, int, error) {
	q, err := params.query()
	if err != nil {
		return "", 0, err
	}

	data, err := c.get(ctx, "email-finder", q)
	if err != nil {
		return "", 0, err
	}

	email, _ := data["email"].(string)
	score, _ := data["score"].(float64)
	return email, int(score), nil
}

// EmailFinderRaw is EmailFinder returning the full HTTP response instead of
// the extracted address and score.
func (c *Client) EmailFinderRaw(ctx context.Context, params *EmailFinderParams) (*Response, error) {
	q, err := params.query()
	if err != nil {
		return nil, err
	}
	return c.getRaw(ctx, "email-finder", q)
}
