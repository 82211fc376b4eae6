// Package notifier delivers ticket confirmations to an external HTTP gateway.
// An empty gateway URL disables delivery so local setups run without one.
package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"acacia-booking/internal/pkg/config"
	"acacia-booking/internal/pkg/errs"
)

type TicketIssuedNotice struct {
	TicketNumber string `json:"ticket_number"`
	Kind         string `json:"kind"`
	Email        string `json:"email"`
	CustomerName string `json:"customer_name"`
	Summary      string `json:"summary"`
	PDFPath      string `json:"pdf_path,omitempty"`
}

type GatewayNotifier struct {
	cfg    config.NotifierConfig
	client *http.Client
}

func NewGatewayNotifier(cfg config.NotifierConfig) *GatewayNotifier {
	return &GatewayNotifier{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

func (n *GatewayNotifier) NotifyTicketIssued(ctx context.Context, notice TicketIssuedNotice) error {
	if n.cfg.GatewayURL == "" {
		slog.Debug("notification skipped (gateway disabled)", "ticket_number", notice.TicketNumber)
		return nil
	}

	body, err := json.Marshal(notice)
	if err != nil {
		return errs.Wrap(err, "failed to marshal ticket notice")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.cfg.GatewayURL, bytes.NewReader(body))
	if err != nil {
		return errs.Wrap(err, "failed to build notify request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return errs.Wrap(err, "failed to call notification gateway")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 300 {
		return errs.New(fmt.Sprintf("notification gateway returned status %d", resp.StatusCode))
	}

	return nil
}
