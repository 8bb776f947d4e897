// Package foodapi is the client for the remote PHP food API: catalog listing and the
// server-side cart (blind insert, list, delete by id). It never retries.
package foodapi

import (
	"context"
	"fmt"
	"html"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/aaravmahajanofficial/food-cart/internal/api/middleware"
	appErrors "github.com/aaravmahajanofficial/food-cart/internal/errors"
	"github.com/aaravmahajanofficial/food-cart/internal/metrics"
	"github.com/aaravmahajanofficial/food-cart/internal/models"
	"github.com/microcosm-cc/bluemonday"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	pathListFoods      = "/yemekler/tumYemekleriGetir.php"
	pathAddToCart      = "/yemekler/sepeteYemekEkle.php"
	pathListCart       = "/yemekler/sepettekiYemekleriGetir.php"
	pathRemoveFromCart = "/yemekler/sepettenYemekSil.php"
	pathImages         = "/yemekler/resimler/"

	maxResponseBytes = 8 << 20
)

// Operation labels used for metrics and logs.
const (
	OpListFoods      = "list_foods"
	OpAddToCart      = "add_to_cart"
	OpListCart       = "list_cart"
	OpRemoveFromCart = "remove_from_cart"
)

// defines the calls the food API supports. There is no update or upsert.
type Client interface {
	ListFoods(ctx context.Context) ([]models.Food, error)
	AddToCart(ctx context.Context, item models.CartItemInput) (string, error)
	ListCart(ctx context.Context) ([]models.CartEntry, error)
	RemoveFromCart(ctx context.Context, entryID int) (string, error)
	ImageURL(filename string) string
}

type Config struct {
	BaseURL        string
	Username       string
	ConnectTimeout time.Duration
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration

	// optional, replaces the default transport stack (used by tests)
	HTTPClient *http.Client
}

type client struct {
	httpClient *http.Client
	baseURL    string
	username   string
	sanitizer  *bluemonday.Policy
}

func NewClient(cfg Config) Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = newHTTPClient(cfg)
	}

	return &client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		username:   cfg.Username,
		sanitizer:  bluemonday.StrictPolicy(),
	}
}

// connect timeout -> dialer, read timeout -> waiting for response headers,
// write timeout -> ceiling for the whole exchange.
func newHTTPClient(cfg Config) *http.Client {
	dialer := &net.Dialer{
		Timeout:   cfg.ConnectTimeout,
		KeepAlive: 30 * time.Second,
	}

	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           dialer.DialContext,
		TLSHandshakeTimeout:   cfg.ConnectTimeout,
		ResponseHeaderTimeout: cfg.ReadTimeout,
		MaxIdleConns:          10,
		IdleConnTimeout:       90 * time.Second,
	}

	return &http.Client{
		Timeout:   cfg.WriteTimeout,
		Transport: otelhttp.NewTransport(transport),
	}
}

func (c *client) ImageURL(filename string) string {
	return c.baseURL + pathImages + filename
}

func (c *client) ListFoods(ctx context.Context) ([]models.Food, error) {
	start := time.Now()

	body, err := c.do(ctx, OpListFoods, http.MethodGet, pathListFoods, nil)
	if err != nil {
		c.observe(ctx, OpListFoods, start, err)
		return nil, err
	}

	foods, err := decodeFoods(body)
	c.observe(ctx, OpListFoods, start, err)
	if err != nil {
		return nil, err
	}

	return foods, nil
}

func (c *client) AddToCart(ctx context.Context, item models.CartItemInput) (string, error) {
	start := time.Now()

	form := url.Values{}
	form.Set("yemek_adi", item.Name)
	form.Set("yemek_resim_adi", item.Image)
	form.Set("yemek_fiyat", strconv.Itoa(item.Price))
	form.Set("yemek_siparis_adet", strconv.Itoa(item.Quantity))
	form.Set("kullanici_adi", c.username)

	message, err := c.crud(ctx, OpAddToCart, pathAddToCart, form)
	c.observe(ctx, OpAddToCart, start, err)

	return message, err
}

// ListCart treats an empty or malformed body as an empty cart: the food API answers
// an empty cart with a non-JSON body.
func (c *client) ListCart(ctx context.Context) ([]models.CartEntry, error) {
	start := time.Now()

	form := url.Values{}
	form.Set("kullanici_adi", c.username)

	body, err := c.do(ctx, OpListCart, http.MethodPost, pathListCart, form)
	c.observe(ctx, OpListCart, start, err)
	if err != nil {
		return nil, err
	}

	entries := decodeCart(body)
	if entries == nil {
		middleware.LoggerFromContext(ctx).Debug("Cart listing empty or unparseable, treating as empty cart",
			slog.Int("body_bytes", len(body)))
		return []models.CartEntry{}, nil
	}

	return entries, nil
}

func (c *client) RemoveFromCart(ctx context.Context, entryID int) (string, error) {
	start := time.Now()

	form := url.Values{}
	form.Set("sepet_yemek_id", strconv.Itoa(entryID))
	form.Set("kullanici_adi", c.username)

	message, err := c.crud(ctx, OpRemoveFromCart, pathRemoveFromCart, form)
	c.observe(ctx, OpRemoveFromCart, start, err)

	return message, err
}

func (c *client) crud(ctx context.Context, op, path string, form url.Values) (string, error) {
	body, err := c.do(ctx, op, http.MethodPost, path, form)
	if err != nil {
		return "", err
	}

	success, message, ok := decodeCrud(body)
	if !ok {
		return "", appErrors.ServerError("Response body is null")
	}

	message = c.sanitize(message)
	if success != 1 {
		if message == "" {
			message = "Request rejected by server"
		}
		return "", appErrors.ServerError(message)
	}

	return message, nil
}

// do sends the request and returns the raw body. Transport failures are NETWORK_ERROR,
// non-2xx statuses are SERVER_ERROR.
func (c *client) do(ctx context.Context, op, method, path string, form url.Values) ([]byte, error) {
	logger := middleware.LoggerFromContext(ctx)

	var bodyReader io.Reader
	if form != nil {
		bodyReader = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, appErrors.InternalError("failed to create request").WithError(err)
	}

	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error("Food API request failed", slog.String("operation", op), slog.String("error", err.Error()))
		return nil, appErrors.NetworkError(fmt.Sprintf("Network Error: %s", err.Error())).WithError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		logger.Error("Failed to read food API response", slog.String("operation", op), slog.String("error", err.Error()))
		return nil, appErrors.NetworkError(fmt.Sprintf("Network Error: %s", err.Error())).WithError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Warn("Food API returned error status", slog.String("operation", op), slog.Int("status", resp.StatusCode))
		return nil, appErrors.ServerError(fmt.Sprintf("API Error: %s", http.StatusText(resp.StatusCode))).
			WithDetail(strconv.Itoa(resp.StatusCode))
	}

	return body, nil
}

func (c *client) sanitize(message string) string {
	return strings.TrimSpace(html.UnescapeString(c.sanitizer.Sanitize(message)))
}

func (c *client) observe(ctx context.Context, op string, start time.Time, err error) {
	outcome := metrics.OutcomeSuccess
	if err != nil {
		outcome = metrics.OutcomeFromError(err)
	}

	metrics.ObserveFoodAPICall(op, outcome, time.Since(start))
	middleware.LoggerFromContext(ctx).Debug("Food API call finished",
		slog.String("operation", op),
		slog.String("outcome", outcome),
		slog.Duration("duration", time.Since(start)))
}
