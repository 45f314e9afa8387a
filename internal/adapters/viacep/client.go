// Package viacep looks up Brazilian postal codes using the public ViaCEP directory.
package viacep

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/SscSPs/abase_form_kit/internal/apperrors"
	"github.com/SscSPs/abase_form_kit/internal/core/domain"
	portsrepo "github.com/SscSPs/abase_form_kit/internal/core/ports/repositories"
	"github.com/SscSPs/abase_form_kit/internal/utils/brdocs"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"
)

const (
	DefaultBaseURL   = "https://viacep.com.br"
	DefaultTimeout   = 5 * time.Second
	DefaultCacheSize = 1024
)

// Config holds the client settings. Zero values fall back to the defaults.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	CacheSize  int
	HTTPClient *http.Client
}

// Client resolves CEPs. Successful lookups are cached and concurrent lookups
// of the same CEP share one request.
type Client struct {
	baseURL string
	http    *http.Client
	timeout time.Duration
	cache   *lru.Cache[string, domain.Address]
	group   singleflight.Group
	logger  *slog.Logger
}

// Ensure implementation matches interface
var _ portsrepo.AddressDirectory = (*Client)(nil)

// NewClient creates a ViaCEP client.
func NewClient(cfg Config, logger *slog.Logger) (*Client, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = DefaultCacheSize
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}
	if logger == nil {
		logger = slog.Default()
	}

	cache, err := lru.New[string, domain.Address](cfg.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create CEP cache: %w", err)
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    cfg.HTTPClient,
		timeout: cfg.Timeout,
		cache:   cache,
		logger:  logger.With(slog.String("component", "viacep")),
	}, nil
}

type viaCEPResponse struct {
	CEP         string   `json:"cep"`
	Logradouro  string   `json:"logradouro"`
	Complemento string   `json:"complemento"`
	Bairro      string   `json:"bairro"`
	Localidade  string   `json:"localidade"`
	UF          string   `json:"uf"`
	Erro        flexBool `json:"erro"`
}

// flexBool accepts both true and "true"; ViaCEP has used each over time.
type flexBool bool

func (b *flexBool) UnmarshalJSON(data []byte) error {
	*b = flexBool(strings.Trim(string(data), `"`) == "true")
	return nil
}

// LookupCEP returns the address registered for cep.
func (c *Client) LookupCEP(ctx context.Context, cep string) (domain.Address, error) {
	digits := brdocs.Digits(cep)
	if len(digits) != brdocs.CEPLength {
		return domain.Address{}, fmt.Errorf("%w: CEP must have %d digits", apperrors.ErrValidation, brdocs.CEPLength)
	}

	if addr, ok := c.cache.Get(digits); ok {
		return addr, nil
	}

	// The fetch is shared, so it runs on a context no single caller cancels.
	ch := c.group.DoChan(digits, func() (any, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.timeout)
		defer cancel()
		addr, err := c.fetch(fetchCtx, digits)
		if err == nil {
			c.cache.Add(digits, addr)
		}
		return addr, err
	})

	select {
	case <-ctx.Done():
		return domain.Address{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return domain.Address{}, res.Err
		}
		return res.Val.(domain.Address), nil
	}
}

func (c *Client) fetch(ctx context.Context, digits string) (domain.Address, error) {
	url := fmt.Sprintf("%s/ws/%s/json/", c.baseURL, digits)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return domain.Address{}, fmt.Errorf("failed to build CEP request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return domain.Address{}, err
		}
		c.logger.Warn("CEP lookup failed", slog.String("cep", digits), slog.String("error", err.Error()))
		return domain.Address{}, fmt.Errorf("%w: CEP lookup: %v", apperrors.ErrUpstream, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("CEP lookup completed",
		slog.String("cep", digits),
		slog.Int("status", resp.StatusCode),
		slog.Duration("latency", time.Since(start)),
	)

	switch {
	case resp.StatusCode == http.StatusBadRequest:
		return domain.Address{}, fmt.Errorf("%w: CEP %s rejected by directory", apperrors.ErrValidation, digits)
	case resp.StatusCode != http.StatusOK:
		return domain.Address{}, fmt.Errorf("%w: CEP directory returned status %d", apperrors.ErrUpstream, resp.StatusCode)
	}

	var body viaCEPResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return domain.Address{}, fmt.Errorf("%w: failed to decode CEP response: %v", apperrors.ErrUpstream, err)
	}
	if body.Erro {
		return domain.Address{}, fmt.Errorf("CEP %s: %w", digits, apperrors.ErrNotFound)
	}

	return domain.Address{
		CEP:          brdocs.MaskCEP(digits),
		Street:       body.Logradouro,
		Complement:   body.Complemento,
		Neighborhood: body.Bairro,
		City:         body.Localidade,
		State:        body.UF,
	}, nil
}
