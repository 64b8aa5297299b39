// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package crm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v5"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/oauth2"

	"github.com/canonical/crm-gateway/internal/logging"
	"github.com/canonical/crm-gateway/internal/monitoring"
	"github.com/canonical/crm-gateway/internal/tracing"
)

const defaultExchangeTimeout = 5 * time.Second

type Config struct {
	ClientID        string
	ClientSecret    string
	AuthURL         string
	TokenURL        string
	RedirectURL     string
	ExchangeTimeout time.Duration
	MaxRetries      uint
}

// TokenResult is the outcome of a code exchange or token refresh.
type TokenResult struct {
	AccessToken  string
	RefreshToken string
	Expiry       time.Time
	LocationID   string
	CompanyID    string
}

type ClientInterface interface {
	// AuthCodeURL builds the CRM authorization URL carrying the given
	// CSRF state parameter.
	AuthCodeURL(state string) string
	// ExchangeCode swaps an authorization code for tokens. Transient
	// upstream failures are retried a bounded number of times with
	// backoff; 4xx responses are returned immediately.
	ExchangeCode(ctx context.Context, code string) (*TokenResult, error)
	// RefreshToken obtains a fresh access token from a refresh token.
	RefreshToken(ctx context.Context, refreshToken string) (*TokenResult, error)
}

var _ ClientInterface = (*Client)(nil)

type Client struct {
	conf       *oauth2.Config
	httpClient *http.Client
	timeout    time.Duration
	maxRetries uint

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewClient(cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	timeout := cfg.ExchangeTimeout
	if timeout <= 0 {
		timeout = defaultExchangeTimeout
	}

	return &Client{
		conf: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Endpoint: oauth2.Endpoint{
				AuthURL:   cfg.AuthURL,
				TokenURL:  cfg.TokenURL,
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		timeout:    timeout,
		maxRetries: cfg.MaxRetries,
		tracer:     tracer,
		monitor:    monitor,
		logger:     logger,
	}
}

func (c *Client) AuthCodeURL(state string) string {
	return c.conf.AuthCodeURL(state)
}

func (c *Client) ExchangeCode(ctx context.Context, code string) (*TokenResult, error) {
	ctx, span := c.tracer.Start(ctx, "crm.Client.ExchangeCode")
	defer span.End()

	return c.retrieve(ctx, func(ctx context.Context) (*oauth2.Token, error) {
		return c.conf.Exchange(ctx, code)
	})
}

func (c *Client) RefreshToken(ctx context.Context, refreshToken string) (*TokenResult, error) {
	ctx, span := c.tracer.Start(ctx, "crm.Client.RefreshToken")
	defer span.End()

	return c.retrieve(ctx, func(ctx context.Context) (*oauth2.Token, error) {
		return c.conf.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken}).Token()
	})
}

// retrieve runs the token endpoint call with bounded retries. Only network
// failures and 5xx responses are retried; a 4xx means a configuration or
// consent problem and retrying cannot help.
func (c *Client) retrieve(ctx context.Context, fn func(context.Context) (*oauth2.Token, error)) (*TokenResult, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)

	operation := func() (*oauth2.Token, error) {
		callCtx, cancel := context.WithTimeout(ctx, c.timeout)
		defer cancel()

		token, err := fn(callCtx)
		if err != nil {
			if !isTransient(err) {
				return nil, backoff.Permanent(err)
			}
			c.logger.Debugf("transient CRM token endpoint failure: %v", err)
			return nil, err
		}
		return token, nil
	}

	token, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxTries(c.maxRetries+1),
	)
	if err != nil {
		return nil, fmt.Errorf("CRM token endpoint request failed: %w", err)
	}

	result := &TokenResult{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		Expiry:       token.Expiry,
	}
	if v, ok := token.Extra("location_id").(string); ok {
		result.LocationID = v
	}
	if v, ok := token.Extra("company_id").(string); ok {
		result.CompanyID = v
	}

	return result, nil
}

func isTransient(err error) bool {
	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) {
		if retrieveErr.Response == nil {
			return true
		}
		return retrieveErr.Response.StatusCode >= http.StatusInternalServerError
	}

	// no structured upstream response: treat as a network-level failure
	return true
}
