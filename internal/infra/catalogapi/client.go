package catalogapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"venue-admin/internal/domain/pricing"
	"venue-admin/internal/domain/reservation"
	"venue-admin/internal/pkg/config"
	"venue-admin/internal/pkg/errs"
	"venue-admin/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

const (
	addOnsPath       = "/admin/addons"
	reservationsPath = "/reservations"
	usersPath        = "/users"

	// Error bodies are only kept for the log line.
	maxErrorBody = 4 << 10
)

// Client talks to the venue REST API. It serves both the add-ons catalog and
// the reservation endpoints.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

var (
	_ shared.CatalogClient      = (*Client)(nil)
	_ shared.ReservationGateway = (*Client)(nil)
)

func NewClient(cfg config.CatalogConfig) *Client {
	return NewClientWithHTTP(cfg, &http.Client{Timeout: cfg.Timeout})
}

func NewClientWithHTTP(cfg config.CatalogConfig, hc *http.Client) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   cfg.Token,
		http:    hc,
	}
}

type addOnItem struct {
	ID    json.RawMessage `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

type addOnPage struct {
	Content []addOnItem `json:"content"`
}

// ListAddOns fetches the whole catalog in one page.
func (c *Client) ListAddOns(ctx context.Context) ([]pricing.AddOn, error) {
	q := url.Values{}
	q.Set("pageSize", "All")
	q.Set("page", "0")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+addOnsPath+"?"+q.Encode(), nil)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build add-ons request")
	}
	req.Header.Set("Accept", "application/json")
	c.authorize(req, c.token)

	raw, err := c.do(req, http.StatusOK)
	if err != nil {
		return nil, err
	}

	var page addOnPage
	if err := json.Unmarshal(raw, &page); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to decode add-ons page"), errs.ErrUpstreamUnavailable)
	}

	items := make([]pricing.AddOn, 0, len(page.Content))
	for _, it := range page.Content {
		items = append(items, pricing.AddOn{
			ID:    rawID(it.ID),
			Name:  it.Name,
			Price: it.Price,
		})
	}
	return items, nil
}

// Create posts the reservation as the "reservation" part of a multipart form.
func (c *Client) Create(ctx context.Context, token string, payload shared.ReservationPayload) (*shared.ForwardedReservation, error) {
	blob, err := json.Marshal(payload)
	if err != nil {
		return nil, errs.Wrap(err, "failed to encode reservation")
	}

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	if err := w.WriteField("reservation", string(blob)); err != nil {
		return nil, errs.Wrap(err, "failed to write reservation field")
	}
	if err := w.Close(); err != nil {
		return nil, errs.Wrap(err, "failed to close multipart body")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+reservationsPath, &body)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build create request")
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Accept", "application/json")
	c.authorize(req, token)

	raw, err := c.do(req, http.StatusCreated, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return forwarded(raw), nil
}

func (c *Client) Update(ctx context.Context, token string, payload shared.ReservationPayload) (*shared.ForwardedReservation, error) {
	if payload.ID == nil {
		return nil, errs.Mark(errs.New("reservation id required for update"), errs.ErrUpstreamRejected)
	}
	blob, err := json.Marshal(payload)
	if err != nil {
		return nil, errs.Wrap(err, "failed to encode reservation")
	}

	endpoint := fmt.Sprintf("%s%s/%s%s/%d",
		c.baseURL, usersPath, url.PathEscape(payload.UserID), reservationsPath, *payload.ID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, endpoint, bytes.NewReader(blob))
	if err != nil {
		return nil, errs.Wrap(err, "failed to build update request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	c.authorize(req, token)

	raw, err := c.do(req, http.StatusOK)
	if err != nil {
		return nil, err
	}
	out := forwarded(raw)
	if out.ID == nil {
		out.ID = payload.ID
	}
	return out, nil
}

// UpdateStatus sends the action key as a form field; the venue API answers 204.
func (c *Client) UpdateStatus(ctx context.Context, token, userID string, reservationID int64, action reservation.Action) error {
	form := url.Values{}
	form.Set("action", action.String())

	endpoint := fmt.Sprintf("%s%s/%s%s/action/%d",
		c.baseURL, usersPath, url.PathEscape(userID), reservationsPath, reservationID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return errs.Wrap(err, "failed to build action request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	c.authorize(req, token)

	_, err = c.do(req, http.StatusNoContent, http.StatusOK)
	return err
}

func (c *Client) authorize(req *http.Request, token string) {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

func (c *Client) do(req *http.Request, expected ...int) ([]byte, error) {
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "venue api request failed"), errs.ErrUpstreamUnavailable)
	}
	defer resp.Body.Close()

	slog.Debug("venue api call",
		"method", req.Method,
		"path", req.URL.Path,
		"status", resp.StatusCode,
		"latency_ms", time.Since(start).Milliseconds())

	for _, code := range expected {
		if resp.StatusCode == code {
			raw, err := io.ReadAll(resp.Body)
			if err != nil {
				return nil, errs.Mark(errs.Wrap(err, "failed to read venue api response"), errs.ErrUpstreamUnavailable)
			}
			return raw, nil
		}
	}

	snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	slog.Warn("venue api returned an error",
		"method", req.Method,
		"path", req.URL.Path,
		"status", resp.StatusCode,
		"body", string(snippet))
	return nil, statusError(resp.StatusCode)
}

func statusError(code int) error {
	err := errs.New("venue api responded " + strconv.Itoa(code))
	switch {
	case code == http.StatusBadRequest || code == http.StatusUnprocessableEntity:
		return errs.Mark(err, errs.ErrUpstreamRejected)
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return errs.Mark(err, errs.ErrUpstreamUnauthorized)
	case code == http.StatusNotFound:
		return errs.Mark(err, errs.ErrUpstreamNotFound)
	case code == http.StatusConflict:
		return errs.Mark(err, errs.ErrUpstreamConflict)
	default:
		return errs.Mark(err, errs.ErrUpstreamUnavailable)
	}
}

type echo struct {
	ID     json.RawMessage `json:"id"`
	Status string          `json:"status"`
}

// forwarded keeps the raw body even when the echo carries no usable id.
func forwarded(raw []byte) *shared.ForwardedReservation {
	out := &shared.ForwardedReservation{Body: raw}
	if len(bytes.TrimSpace(raw)) == 0 {
		return out
	}

	var e echo
	if err := json.Unmarshal(raw, &e); err != nil {
		slog.Warn("venue api echoed a non-object body", "error", err.Error())
		return out
	}
	out.Status = e.Status
	if id, err := strconv.ParseInt(rawID(e.ID), 10, 64); err == nil {
		out.ID = &id
	}
	return out
}

// rawID accepts both numeric and string ids.
func rawID(raw json.RawMessage) string {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return ""
	}
	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		return str
	}
	return s
}
