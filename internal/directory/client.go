// Package directory is the client side of the provider directory service:
// the server-request search strategy, branding fetch with fallback, and the
// admin branding upload.
package directory

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/krvjanand/physician-directory/internal/branding"
	"github.com/krvjanand/physician-directory/internal/models"
	"github.com/krvjanand/physician-directory/internal/query"
)

// ErrBrandNameRequired is returned before any request is made when an admin
// tries to update branding without a brand name.
var ErrBrandNameRequired = errors.New("brand name is required")

// Branding is the resolved brand identity. Logo is nil when the service has
// no logo or its payload could not be decoded.
type Branding struct {
	BrandName string
	Logo      *branding.Logo
}

// Client talks to a remote directory service.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

func NewClient(baseURL string, logger zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		log:     logger,
	}
}

// Search is the server-request strategy: the spec is serialized into query
// parameters and the service does the filtering, sorting, and pagination.
func (c *Client) Search(ctx context.Context, spec query.FilterSpec, page, perPage int) (query.Result, error) {
	u := c.baseURL + "/api/providers?" + spec.Values(page, perPage).Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return query.Result{}, fmt.Errorf("build search request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return query.Result{}, fmt.Errorf("search providers: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return query.Result{}, fmt.Errorf("search providers: unexpected status %s", resp.Status)
	}

	var result query.Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return query.Result{}, fmt.Errorf("decode search response: %w", err)
	}
	if result.Providers == nil {
		result.Providers = []models.Provider{}
	}
	return result, nil
}

type brandingResponse struct {
	BrandName string `json:"brand_name"`
	Logo      string `json:"logo"`
}

// FetchBranding resolves the brand name and logo from the config endpoint.
// Every failure mode, network, parse, or malformed logo, falls back to the
// caller-supplied default name with no logo; nothing escapes to the caller.
func (c *Client) FetchBranding(ctx context.Context, defaultName string) Branding {
	fallback := Branding{BrandName: defaultName}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/config", nil)
	if err != nil {
		c.log.Warn().Err(err).Msg("branding: building config request failed")
		return fallback
	}
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Msg("branding: config fetch failed, using defaults")
		return fallback
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		c.log.Warn().Str("status", resp.Status).Msg("branding: config fetch failed, using defaults")
		return fallback
	}

	var payload brandingResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.log.Warn().Err(err).Msg("branding: malformed config response, using defaults")
		return fallback
	}

	resolved := Branding{BrandName: payload.BrandName}
	if resolved.BrandName == "" {
		resolved.BrandName = defaultName
	}
	logo, err := branding.DecodeLogo(payload.Logo)
	if err != nil {
		c.log.Warn().Err(err).Msg("branding: logo decode failed, showing no logo")
		return resolved
	}
	resolved.Logo = logo
	return resolved
}

// UpdateBranding uploads a new brand name and optional logo file as a
// multipart form. A missing brand name fails validation locally.
func (c *Client) UpdateBranding(ctx context.Context, brandName string, logo []byte, filename string) error {
	if strings.TrimSpace(brandName) == "" {
		return ErrBrandNameRequired
	}

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	if err := form.WriteField("brand_name", brandName); err != nil {
		return fmt.Errorf("build branding form: %w", err)
	}
	if len(logo) > 0 {
		part, err := form.CreateFormFile("logo", filename)
		if err != nil {
			return fmt.Errorf("build branding form: %w", err)
		}
		if _, err := part.Write(logo); err != nil {
			return fmt.Errorf("build branding form: %w", err)
		}
	}
	if err := form.Close(); err != nil {
		return fmt.Errorf("build branding form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/config", &body)
	if err != nil {
		return fmt.Errorf("build branding request: %w", err)
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("update branding: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		var errBody struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&errBody); err == nil && errBody.Error != "" {
			return fmt.Errorf("update branding: %s", errBody.Error)
		}
		return fmt.Errorf("update branding: unexpected status %s", resp.Status)
	}
	return nil
}
