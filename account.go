package hunter

import "context"

// Account returns information about the account tied to the API key,
// including plan details and request quotas. The "calls" section gains a
// computed "left" field, the number of requests still available in the
// current period.
func (c *Client) Account(ctx context.Context) (map[string]any, error) {
	data, err := c.get(ctx, "account", nil)
	if err != nil {
		return nil, err
	}

	if calls, ok := data["calls"].(map[string]any); ok {
		available, okAvail := calls["available"].(float64)
		used, okUsed := calls["used"].(float64)
		if okAvail && okUsed {
			calls["left"] = available - used
		}
	}
	return data, nil
}

// AccountRaw is Account returning the full HTTP response. The body is exactly
// what the service sent, without the computed calls.left field.
func (c *Client) AccountRaw(ctx context.Context) (*Response, error) {
	return c.getRaw(ctx, "account", nil)
}
