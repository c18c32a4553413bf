package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/szabodaniel/boardgame-collection/internal/errs"
)

const (
	authorizationHeader = "Authorization"
	bearer              = "Bearer "
)

type Config struct {
	BaseURL   string        `envconfig:"BACKEND_BASE_URL" default:"http://localhost:8001"`
	Timeout   time.Duration `envconfig:"BACKEND_HTTP_TIMEOUT" default:"1m"`
	SearchRPS float64       `envconfig:"BACKEND_SEARCH_RPS" default:"2"`
}

// Client talks to the collection backend. The bearer credential is passed
// explicitly on every call; there is no ambient default header.
type Client struct {
	log           *zap.Logger
	client        *http.Client
	baseURL       string
	searchLimiter *rate.Limiter
}

func NewClient(log *zap.Logger, cfg Config) *Client {
	return &Client{
		log:           log.Named("backend"),
		client:        &http.Client{Timeout: cfg.Timeout},
		baseURL:       strings.TrimRight(cfg.BaseURL, "/"),
		searchLimiter: rate.NewLimiter(rate.Limit(cfg.SearchRPS), 1),
	}
}

// do issues one request and decodes the JSON response into out (skipped when
// out is nil). Non-2xx statuses map onto the errs sentinels.
func (c *Client) do(ctx context.Context, method, path, token string, body, out interface{}) error {
	var reader io.Reader = http.NoBody
	if body != nil {
		b := bytes.NewBuffer(nil)
		if err := json.NewEncoder(b).Encode(body); err != nil {
			return errors.Wrap(err, "encode request")
		}
		reader = b
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(authorizationHeader, bearer+token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	if err := statusError(resp); err != nil {
		c.log.Debug("request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode))
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "decode %s %s response", method, path)
	}
	return nil
}

func statusError(resp *http.Response) error {
	if resp.StatusCode < http.StatusMultipleChoices {
		return nil
	}
	detail := readDetail(resp.Body)
	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return errs.ErrUnauthorized
	case http.StatusNotFound:
		if detail != "" {
			return errors.Wrap(errs.ErrNotFound, detail)
		}
		return errs.ErrNotFound
	case http.StatusConflict:
		if detail != "" {
			return errors.Wrap(errs.ErrConflict, detail)
		}
		return errs.ErrConflict
	default:
		return &errs.APIError{StatusCode: resp.StatusCode, Detail: detail}
	}
}

// readDetail pulls the error text out of either error body shape the
// backend produces ({"detail": ...} or {"message": ...}).
func readDetail(body io.Reader) string {
	var payload struct {
		Detail  string `json:"detail"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return ""
	}
	if payload.Detail != "" {
		return payload.Detail
	}
	return payload.Message
}
