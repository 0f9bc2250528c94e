package project

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// RemoteStore is an HTTP client for the plan server's REST API.
type RemoteStore struct {
	BaseURL string
	Client  *http.Client
}

// NewRemoteStore creates a client for the given server base URL,
// e.g. "http://localhost:3000".
func NewRemoteStore(baseURL string) *RemoteStore {
	return &RemoteStore{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// PlanSummary is one entry from the server's plan listing.
type PlanSummary struct {
	ID        string    `json:"uuid"`
	Name      string    `json:"name"`
	UpdatedAt time.Time `json:"updated_at"`
}

type savePayload struct {
	Name string    `json:"name"`
	Data *Document `json:"data"`
}

// Create stores a new plan on the server and returns its id.
func (r *RemoteStore) Create(ctx context.Context, doc *Document) (string, error) {
	var resp struct {
		ID string `json:"uuid"`
	}
	err := r.do(ctx, http.MethodPost, "/api/v1/plans", savePayload{Name: doc.Name, Data: doc}, &resp)
	if err != nil {
		return "", err
	}
	return resp.ID, nil
}

// Update overwrites an existing plan on the server.
func (r *RemoteStore) Update(ctx context.Context, id string, doc *Document) error {
	path := "/api/v1/plans/" + id
	return r.do(ctx, http.MethodPut, path, savePayload{Name: doc.Name, Data: doc}, nil)
}

// Load fetches a plan document by id.
func (r *RemoteStore) Load(ctx context.Context, id string) (*Document, error) {
	var resp struct {
		Plan struct {
			Name string          `json:"name"`
			Data json.RawMessage `json:"data"`
		} `json:"plan"`
	}
	if err := r.do(ctx, http.MethodGet, "/api/v1/plans/"+id, nil, &resp); err != nil {
		return nil, err
	}

	var doc Document
	if err := json.Unmarshal(resp.Plan.Data, &doc); err != nil {
		return nil, fmt.Errorf("parse plan data: %w", err)
	}
	if doc.Name == "" {
		doc.Name = resp.Plan.Name
	}
	return &doc, nil
}

// List fetches summaries of all stored plans.
func (r *RemoteStore) List(ctx context.Context) ([]PlanSummary, error) {
	var resp struct {
		Plans []PlanSummary `json:"plans"`
	}
	if err := r.do(ctx, http.MethodGet, "/api/v1/plans", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Plans, nil
}

// Delete removes a plan from the server.
func (r *RemoteStore) Delete(ctx context.Context, id string) error {
	return r.do(ctx, http.MethodDelete, "/api/v1/plans/"+id, nil, nil)
}

func (r *RemoteStore) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, r.BaseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	client := r.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr struct {
			Error string `json:"error"`
		}
		data, _ := io.ReadAll(resp.Body)
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("plan server: %s (%s)", apiErr.Error, resp.Status)
		}
		return fmt.Errorf("plan server: %s", resp.Status)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
