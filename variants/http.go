package variants

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// HTTPStore is a Store that talks to a remote variant store server.
// Connection errors are wrapped with "variant store unreachable" so callers
// can detect and surface them gracefully.
type HTTPStore struct {
	baseURL string
	client  *http.Client
}

// NewHTTPStore creates a client pointing at baseURL. The underlying
// http.Client has a 5-second timeout.
func NewHTTPStore(baseURL string) *HTTPStore {
	return &HTTPStore{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

func (s *HTTPStore) profilesURL(library string) string {
	return fmt.Sprintf("%s/v1/libraries/%s/profiles", s.baseURL, url.PathEscape(library))
}

func (s *HTTPStore) profileURL(library, icon string) string {
	return s.profilesURL(library) + "/" + url.PathEscape(icon)
}

// do executes a request, wrapping connection errors.
func (s *HTTPStore) do(req *http.Request) (*http.Response, error) {
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("variant store unreachable: %w", err)
	}
	return resp, nil
}

// decodeError reads an error response body and returns a formatted error.
func decodeError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	var errResp struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(body, &errResp) == nil && errResp.Error != "" {
		return fmt.Errorf("variant store: %s (status %d)", errResp.Error, resp.StatusCode)
	}
	return fmt.Errorf("variant store: unexpected status %d", resp.StatusCode)
}

func (s *HTTPStore) List(library string) ([]Profile, error) {
	resp, err := s.do(mustRequest(http.MethodGet, s.profilesURL(library), nil))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, decodeError(resp)
	}
	var profiles []Profile
	if err := json.NewDecoder(resp.Body).Decode(&profiles); err != nil {
		return nil, fmt.Errorf("variant store: decode list: %w", err)
	}
	return profiles, nil
}

func (s *HTTPStore) Get(library, icon string) (Profile, error) {
	resp, err := s.do(mustRequest(http.MethodGet, s.profileURL(library, icon), nil))
	if err != nil {
		return Profile{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return Profile{}, fmt.Errorf("%w: %s", ErrNotFound, icon)
	}
	if resp.StatusCode != http.StatusOK {
		return Profile{}, decodeError(resp)
	}
	var p Profile
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return Profile{}, fmt.Errorf("variant store: decode profile: %w", err)
	}
	return p, nil
}

func (s *HTTPStore) Put(library string, p Profile) error {
	body, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("variant store: marshal profile: %w", err)
	}
	resp, err := s.do(mustRequest(http.MethodPut, s.profileURL(library, p.Icon), bytes.NewReader(body)))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return decodeError(resp)
	}
	return nil
}

func (s *HTTPStore) Delete(library, icon string) error {
	resp, err := s.do(mustRequest(http.MethodDelete, s.profileURL(library, icon), nil))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		return decodeError(resp)
	}
	return nil
}

func (s *HTTPStore) Ping() error {
	resp, err := s.do(mustRequest(http.MethodGet, s.baseURL+"/v1/ping", nil))
	if err != nil {
		return err
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("variant store: ping status %d", resp.StatusCode)
	}
	return nil
}

func (s *HTTPStore) Close() error { return nil }

// mustRequest builds a request for a URL the store itself constructed;
// construction cannot fail for escaped paths.
func mustRequest(method, u string, body io.Reader) *http.Request {
	req, err := http.NewRequest(method, u, body)
	if err != nil {
		panic(err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}
