// Package emailjs sends contact form messages through the EmailJS REST API.
package emailjs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"termfolio/internal/config"
	"termfolio/internal/contact"
	"termfolio/internal/domain"
)

const sendPath = "/api/v1.0/email/send"

// maxBodyBytes caps how much of a response we keep for diagnostics
const maxBodyBytes = 4 << 10

// ErrNotConfigured is returned when deployment credentials are missing
var ErrNotConfigured = errors.New("emailjs: service, template and public key must be configured")

// DispatchError is a non-200 answer from the provider
type DispatchError struct {
	StatusCode int
	Body       string
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("emailjs: status %d: %s", e.StatusCode, e.Body)
}

type sendRequest struct {
	ServiceID      string         `json:"service_id"`
	TemplateID     string         `json:"template_id"`
	UserID         string         `json:"user_id"`
	TemplateParams templateParams `json:"template_params"`
}

type templateParams struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Client is the EmailJS dispatch service
type Client struct {
	cfg    config.DispatchConfig
	http   *http.Client
	tracer trace.Tracer
	logger *zap.Logger
}

// NewClient creates a client. A nil httpClient gets one bounded by cfg.Timeout.
func NewClient(cfg config.DispatchConfig, httpClient *http.Client, logger *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		cfg:    cfg,
		http:   httpClient,
		tracer: otel.Tracer("termfolio/emailjs"),
		logger: logger.Named("emailjs"),
	}
}

// Configured reports whether all credentials are present
func (c *Client) Configured() bool {
	return c.cfg.ServiceID != "" && c.cfg.TemplateID != "" && c.cfg.PublicKey != ""
}

// Send posts the message to EmailJS
func (c *Client) Send(ctx context.Context, data domain.ContactFormData) (contact.Acknowledgement, error) {
	ctx, span := c.tracer.Start(ctx, "emailjs.send",
		trace.WithAttributes(attribute.String("emailjs.service_id", c.cfg.ServiceID)))
	defer span.End()

	ack, err := c.send(ctx, data)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "dispatch failed")
		return contact.Acknowledgement{}, err
	}
	return ack, nil
}

func (c *Client) send(ctx context.Context, data domain.ContactFormData) (contact.Acknowledgement, error) {
	if !c.Configured() {
		return contact.Acknowledgement{}, ErrNotConfigured
	}

	payload, err := json.Marshal(sendRequest{
		ServiceID:  c.cfg.ServiceID,
		TemplateID: c.cfg.TemplateID,
		UserID:     c.cfg.PublicKey,
		TemplateParams: templateParams{
			Name:    data.Name,
			Email:   data.Email,
			Message: data.Message,
		},
	})
	if err != nil {
		return contact.Acknowledgement{}, fmt.Errorf("emailjs: encode request: %w", err)
	}

	url := strings.TrimRight(c.cfg.Endpoint, "/") + sendPath
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return contact.Acknowledgement{}, fmt.Errorf("emailjs: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return contact.Acknowledgement{}, fmt.Errorf("emailjs: post: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return contact.Acknowledgement{}, fmt.Errorf("emailjs: read response: %w", err)
	}
	text := strings.TrimSpace(string(body))

	c.logger.Debug("emailjs responded",
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	if resp.StatusCode != http.StatusOK {
		return contact.Acknowledgement{}, &DispatchError{StatusCode: resp.StatusCode, Body: text}
	}
	return contact.Acknowledgement{Text: text}, nil
}
