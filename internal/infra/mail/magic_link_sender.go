// Package mail provides outbound mail delivery for login links.
package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"folio/config"
	"folio/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultSendTimeout = 10 * time.Second

// httpMagicLinkSender implements MagicLinkSender by POSTing a delivery request
// to the mail service endpoint. The mail service renders the message and owns
// the one-time token.
type httpMagicLinkSender struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// noopMagicLinkSender is used when no endpoint is configured. Sending a link
// is best effort everywhere it is called, so disabling it is safe.
type noopMagicLinkSender struct {
	logger *slog.Logger
}

func (s *noopMagicLinkSender) SendLoginLink(_ context.Context, email string) error {
	s.logger.Debug("[MagicLink] Delivery disabled, skipping",
		slog.String("email", email),
	)

	return nil
}

// NewMagicLinkSender creates a MagicLinkSender based on configuration.
func NewMagicLinkSender(cfg *config.Config, logger *slog.Logger) service.MagicLinkSender {
	if cfg.MagicLink == nil || cfg.MagicLink.Endpoint == "" {
		logger.Info("Magic link delivery not configured, using no-op sender")

		return &noopMagicLinkSender{logger: logger}
	}

	timeout := defaultSendTimeout
	if cfg.MagicLink.Timeout > 0 {
		timeout = cfg.MagicLink.Timeout
	}

	return &httpMagicLinkSender{
		endpoint: cfg.MagicLink.Endpoint,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// SendLoginLink asks the mail service to deliver a one-time login link.
func (s *httpMagicLinkSender) SendLoginLink(ctx context.Context, email string) error {
	body, err := json.Marshal(map[string]string{
		"email":    email,
		"template": "magic_link",
	})
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("mail service returned non-success status: %d", resp.StatusCode)
	}

	s.logger.Info("[MagicLink] Login link queued",
		slog.String("email", email),
	)

	return nil
}
