package distance

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"service/internal/service/quote"
	retrierconfig "service/pkg/retrier"
	"service/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "distance-api"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 1 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

type DistanceGateway struct {
	httpClient httpDoer
	retrier    retrier
	baseURL    string
	apiKey     string
}

func New(httpClient httpDoer, baseURL, apiKey string) *DistanceGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryableStatus,
	}

	return &DistanceGateway{
		httpClient: httpClient,
		retrier:    backoff_adapter.New(retryConfig),
		baseURL:    baseURL,
		apiKey:     apiKey,
	}
}

type distanceResponse struct {
	DistanceKm float64 `json:"distance_km"`
}

// statusError сохраняет HTTP код ответа для ретраев и метрик.
type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("distance api responded with status %d", e.code)
}

func (g *DistanceGateway) Distance(ctx context.Context, fromPostalCode, toPostalCode string) (float64, error) {
	query := url.Values{}
	query.Set("from", fromPostalCode)
	query.Set("to", toPostalCode)
	requestURL := g.baseURL + "/distance?" + query.Encode()

	var resp distanceResponse

	err := g.executeWithMetrics(ctx, "Distance", func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
		if err != nil {
			return err
		}
		req.Header.Set("X-Api-Key", g.apiKey)

		httpResp, err := g.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer func() {
			_, _ = io.Copy(io.Discard, httpResp.Body)
			_ = httpResp.Body.Close()
		}()

		if httpResp.StatusCode != http.StatusOK {
			return &statusError{code: httpResp.StatusCode}
		}

		return json.NewDecoder(httpResp.Body).Decode(&resp)
	})
	if err != nil {
		var stErr *statusError
		if errors.As(err, &stErr) && stErr.code == http.StatusNotFound {
			return 0, quote.ErrDistanceUnavailable
		}
		return 0, fmt.Errorf("gateway distance, get distance: %w", err)
	}

	if resp.DistanceKm < 0 {
		return 0, quote.ErrDistanceUnavailable
	}

	return resp.DistanceKm, nil
}

func isRetryableStatus(err error) bool {
	if err == nil {
		return false
	}

	var stErr *statusError
	if !errors.As(err, &stErr) {
		// сетевые ошибки и таймауты ретраим
		return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
	}

	switch stErr.code {
	case http.StatusTooManyRequests,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}

func (g *DistanceGateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	httpCode := getHTTPCode(err)
	// Метрики Prometheus
	GatewayRequestDuration.WithLabelValues(serviceName, method, httpCode).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		// Метрики Prometheus
		GatewayRetriesTotal.WithLabelValues(serviceName, method, httpCode).Inc()
	}

	return err
}

func getHTTPCode(err error) string {
	if err == nil {
		return "200"
	}
	var stErr *statusError
	if errors.As(err, &stErr) {
		return strconv.Itoa(stErr.code)
	}
	return "UNKNOWN"
}
