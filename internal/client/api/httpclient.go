package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"strconv"
	"strings"
	"time"

	"github.com/daynu/herejpg/internal/client/models"
)

// HTTPClient talks JSON to the herejpg server. The session cookie set at
// login lives in the jar; every later request carries it automatically.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

func NewHTTPClient(baseURL string, timeout time.Duration) (*HTTPClient, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Jar: jar, Timeout: timeout},
	}, nil
}

// doJSON performs one request/response cycle. A non-2xx response becomes a
// RejectedError wrapping the class sentinel; transport failures become
// ErrUnavailable.
func (c *HTTPClient) doJSON(ctx context.Context, method, path string, body any, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil {
			return nil
		}
		return json.NewDecoder(resp.Body).Decode(out)
	}

	var payload struct {
		Message string `json:"message"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&payload)

	kind := classify(resp.StatusCode)
	return &RejectedError{Kind: kind, Message: payload.Message}
}

func classify(status int) error {
	switch status {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	default:
		return errors.New("request rejected: " + strconv.Itoa(status))
	}
}

func (c *HTTPClient) Register(ctx context.Context, name, email, password string) error {
	body := map[string]string{"name": name, "email": email, "password": password}
	return c.doJSON(ctx, http.MethodPost, "/api/users", body, nil)
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) error {
	body := map[string]string{"email": email, "password": password}
	return c.doJSON(ctx, http.MethodPost, "/api/login", body, nil)
}

func (c *HTTPClient) Logout(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodPost, "/api/logout", nil, nil)
}

func (c *HTTPClient) CurrentUser(ctx context.Context) (*models.Identity, error) {
	var id models.Identity
	if err := c.doJSON(ctx, http.MethodGet, "/api/currentuser", nil, &id); err != nil {
		return nil, err
	}
	return &id, nil
}

// ListPhotos returns the public feed. The server answers 404 when nothing
// resolves; the client treats that as an empty feed, not a failure.
func (c *HTTPClient) ListPhotos(ctx context.Context) ([]models.Photo, error) {
	var out struct {
		Success bool           `json:"success"`
		Posts   []models.Photo `json:"posts"`
	}
	err := c.doJSON(ctx, http.MethodGet, "/api/photos", nil, &out)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return []models.Photo{}, nil
		}
		return nil, err
	}
	return out.Posts, nil
}

func (c *HTTPClient) CreatePhoto(ctx context.Context, caption, image string, lat, lng float64) (*models.Photo, error) {
	body := map[string]string{
		"image":   image,
		"caption": caption,
		"lat":     strconv.FormatFloat(lat, 'f', -1, 64),
		"lng":     strconv.FormatFloat(lng, 'f', -1, 64),
	}
	var out struct {
		Success bool         `json:"success"`
		Post    models.Photo `json:"post"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/api/photos", body, &out); err != nil {
		return nil, err
	}
	return &out.Post, nil
}

func (c *HTTPClient) UpdatePhoto(ctx context.Context, id, caption, image string) (*models.Photo, error) {
	body := map[string]string{"id": id, "caption": caption, "image": image}
	var out struct {
		Success bool         `json:"success"`
		Post    models.Photo `json:"post"`
	}
	if err := c.doJSON(ctx, http.MethodPut, "/api/photos", body, &out); err != nil {
		return nil, err
	}
	return &out.Post, nil
}

func (c *HTTPClient) DeletePhoto(ctx context.Context, id string) error {
	body := map[string]string{"id": id}
	return c.doJSON(ctx, http.MethodDelete, "/api/photos", body, nil)
}
