package api

import (
	"net/http"
	"strings"
	"time"

	"brewpoint/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Client-side politeness limits, tiered the same way the backend limits
// inbound traffic: auth actions are strict, everything else is general.
const (
	limitStrict  = rate.Limit(2)
	burstStrict  = 5
	limitGeneral = rate.Limit(20)
	burstGeneral = 40
)

// rateLimitTransport throttles outbound requests before they leave the
// process. Login attempts share the strict bucket.
type rateLimitTransport struct {
	base    http.RoundTripper
	strict  *rate.Limiter
	general *rate.Limiter
}

func newRateLimitTransport(base http.RoundTripper) *rateLimitTransport {
	return &rateLimitTransport{
		base:    base,
		strict:  rate.NewLimiter(limitStrict, burstStrict),
		general: rate.NewLimiter(limitGeneral, burstGeneral),
	}
}

func (t *rateLimitTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	limiter := t.general
	if strings.HasSuffix(req.URL.Path, "/admin/login") {
		limiter = t.strict
	}
	if err := limiter.Wait(req.Context()); err != nil {
		return nil, err
	}
	return t.base.RoundTrip(req)
}

// loggingTransport logs every outbound request with its status and duration.
type loggingTransport struct {
	base http.RoundTripper
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	log := logger.FromCtx(req.Context())

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		log.Warn("outbound request failed",
			zap.String("method", req.Method),
			zap.String("path", req.URL.Path),
			zap.Duration("duration", time.Since(start)),
			zap.Error(err),
		)
		return nil, err
	}

	log.Info("outbound request",
		zap.String("method", req.Method),
		zap.String("path", req.URL.Path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)
	return resp, nil
}
