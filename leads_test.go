package hunter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"testing"
)

func TestLeads_NoFilter(t *testing.T) {
	var got url.Values
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method = %s, want GET", r.Method)
		}
		if r.URL.Path != "/leads" {
			t.Errorf("path = %s, want /leads", r.URL.Path)
		}
		got = r.URL.Query()
		w.Write([]byte(`{"data": {"leads": []}}`))
	})

	data, err := client.Leads(context.Background(), nil)
	if err != nil {
		t.Fatalf("Leads() error = %v", err)
	}

	if len(got) != 1 { // api_key only
		t.Errorf("query = %v, want api_key only", got)
	}
	if _, ok := data["leads"]; !ok {
		t.Error("data.leads missing")
	}
}

func TestLeads_Filter(t *testing.T) {
	var got url.Values
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		w.Write([]byte(`{"data": {"leads": []}}`))
	})

	_, err := client.Leads(context.Background(), &LeadsFilter{
		Offset:      Int(0),
		Limit:       Int(20),
		LeadListID:  Int(7),
		FirstName:   "Jane",
		LastName:    "Doe",
		Email:       "jane.doe@stripe.com",
		Company:     "Stripe",
		PhoneNumber: "+15550100",
		Twitter:     "janedoe",
	})
	if err != nil {
		t.Fatalf("Leads() error = %v", err)
	}

	checks := map[string]string{
		"offset":       "0",
		"limit":        "20",
		"lead_list_id": "7",
		"first_name":   "Jane",
		"last_name":    "Doe",
		"email":        "jane.doe@stripe.com",
		"company":      "Stripe",
		"phone_number": "+15550100",
		"twitter":      "janedoe",
	}
	for key, want := range checks {
		if got.Get(key) != want {
			t.Errorf("%s = %s, want %s", key, got.Get(key), want)
		}
	}
}

func TestLead(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/leads/42" {
			t.Errorf("path = %s, want /leads/42", r.URL.Path)
		}
		w.Write([]byte(`{"data": {"id": 42, "email": "jane.doe@stripe.com"}}`))
	})

	data, err := client.Lead(context.Background(), 42)
	if err != nil {
		t.Fatalf("Lead() error = %v", err)
	}
	if data["id"] != float64(42) {
		t.Errorf("data.id = %v, want 42", data["id"])
	}
}

func TestCreateLead(t *testing.T) {
	var body map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if r.URL.Path != "/leads" {
			t.Errorf("path = %s, want /leads", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("failed to decode body: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"data": {"id": 43, "email": "jane.doe@stripe.com"}}`))
	})

	data, err := client.CreateLead(context.Background(), &LeadAttributes{
		FirstName:       "Jane",
		LastName:        "Doe",
		Email:           "jane.doe@stripe.com",
		Company:         "Stripe",
		ConfidenceScore: Int(0),
		Source:          "conference",
	})
	if err != nil {
		t.Fatalf("CreateLead() error = %v", err)
	}

	if body["first_name"] != "Jane" {
		t.Errorf("body.first_name = %v, want Jane", body["first_name"])
	}
	if body["confidence_score"] != float64(0) {
		t.Errorf("body.confidence_score = %v, want 0", body["confidence_score"])
	}
	if _, ok := body["position"]; ok {
		t.Error("body carries the unset position field")
	}
	if _, ok := body["leads_list_id"]; ok {
		t.Error("body carries the unset leads_list_id field")
	}
	if data["id"] != float64(43) {
		t.Errorf("data.id = %v, want 43", data["id"])
	}
}

func TestCreateLead_NilAttributes(t *testing.T) {
	var body map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("failed to decode body: %v", err)
		}
		w.Write([]byte(`{"data": {"id": 44}}`))
	})

	// The service decides what an empty lead means.
	_, err := client.CreateLead(context.Background(), nil)
	if err != nil {
		t.Fatalf("CreateLead() error = %v", err)
	}
	if len(body) != 0 {
		t.Errorf("body = %v, want empty object", body)
	}
}

func TestUpdateLead(t *testing.T) {
	var body map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("method = %s, want PUT", r.Method)
		}
		if r.URL.Path != "/leads/42" {
			t.Errorf("path = %s, want /leads/42", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("failed to decode body: %v", err)
		}
		w.WriteHeader(http.StatusNoContent)
	})

	err := client.UpdateLead(context.Background(), 42, &LeadAttributes{Company: "Stripe"})
	if err != nil {
		t.Fatalf("UpdateLead() error = %v", err)
	}

	if body["company"] != "Stripe" {
		t.Errorf("body.company = %v, want Stripe", body["company"])
	}
	if _, ok := body["id"]; ok {
		t.Error("body carries the lead id, want it in the path only")
	}
}

func TestUpdateLead_EnvelopeError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"errors": [{"id": "wrong_params", "code": 200, "details": "email is invalid"}]}`))
	})

	err := client.UpdateLead(context.Background(), 42, &LeadAttributes{Email: "broken"})

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %T, want *APIError", err)
	}
	if apiErr.Message != "email is invalid" {
		t.Errorf("Message = %q", apiErr.Message)
	}
}

func TestDeleteLead(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("method = %s, want DELETE", r.Method)
		}
		if r.URL.Path != "/leads/42" {
			t.Errorf("path = %s, want /leads/42", r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	})

	if err := client.DeleteLead(context.Background(), 42); err != nil {
		t.Fatalf("DeleteLead() error = %v", err)
	}
}

func TestDeleteLead_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"errors": [{"id": "not_found", "code": 404, "details": "Lead not found"}]}`))
	})

	err := client.DeleteLead(context.Background(), 42)

	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("error = %T, want *HTTPError", err)
	}
	if httpErr.StatusCode != 404 {
		t.Errorf("StatusCode = %d, want 404", httpErr.StatusCode)
	}
}
