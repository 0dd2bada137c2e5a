// Package client is the REST wrapper used by campaign front ends. It
// presents the four campaign operations against the HTTP service and
// carries an explicitly configured account instead of process-wide
// state; call SetAccount to switch identities.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"questbets/keystore"
	"questbets/models"
)

// Client calls the campaign REST API
type Client struct {
	baseURL string
	http    *http.Client

	mu      sync.RWMutex
	account keystore.Credential
}

// New creates a client for the service at base
func New(base string) *Client {
	return &Client{
		baseURL: strings.TrimRight(base, "/"),
		http:    &http.Client{Timeout: 5 * time.Second},
	}
}

// SetAccount reconfigures the account submissions are placed under
func (c *Client) SetAccount(account keystore.Credential) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.account = account
}

// Account returns the currently configured account
func (c *Client) Account() keystore.Credential {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.account
}

// ListBets returns the bet catalog
func (c *Client) ListBets(ctx context.Context) ([]*models.Bet, error) {
	var bets []*models.Bet
	if err := c.get(ctx, "/bets", &bets); err != nil {
		return nil, err
	}
	return bets, nil
}

// GetLeaderboard returns all users ordered by points descending
func (c *Client) GetLeaderboard(ctx context.Context) ([]*models.LeaderboardEntry, error) {
	var entries []*models.LeaderboardEntry
	if err := c.get(ctx, "/leaderboard", &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// GetPlayerPoints returns the points of one address, or 0 when the
// address is not on the leaderboard
func (c *Client) GetPlayerPoints(ctx context.Context, address string) (int64, error) {
	if address == "" {
		return 0, nil
	}

	entries, err := c.GetLeaderboard(ctx)
	if err != nil {
		return 0, err
	}

	address = strings.ToLower(address)
	for _, entry := range entries {
		if strings.ToLower(entry.Address) == address {
			return entry.Points, nil
		}
	}
	return 0, nil
}

// GetUserBets returns the global view when address is empty, or the
// single-user snapshot otherwise. The result is the same tagged union
// the service produces; callers type-switch on it.
func (c *Client) GetUserBets(ctx context.Context, address string) (models.UserBetsView, error) {
	path := "/user-bets"
	if address != "" {
		path += "?address=" + url.QueryEscape(address)
	}

	raw := json.RawMessage{}
	if err := c.get(ctx, path, &raw); err != nil {
		return nil, err
	}

	if address == "" {
		var view models.GlobalUserBetsView
		if err := json.Unmarshal(raw, &view); err != nil {
			return nil, fmt.Errorf("failed to decode user bets: %w", err)
		}
		return view, nil
	}

	var view models.SingleUserBetsView
	if err := json.Unmarshal(raw, &view); err != nil {
		return nil, fmt.Errorf("failed to decode user bets: %w", err)
	}
	return view, nil
}

type placeBetsRequest struct {
	Address       string            `json:"address"`
	DiscordHandle string            `json:"discordHandle,omitempty"`
	XHandle       string            `json:"xHandle,omitempty"`
	BetOutcomes   map[string]string `json:"betOutcomes"`
}

type placeBetsResponse struct {
	ConsensusData struct {
		LeaderReceipt []struct {
			ExecutionResult string `json:"execution_result"`
		} `json:"leader_receipt"`
	} `json:"consensus_data"`
	UserID string `json:"user_id"`
}

// PlaceBets submits the configured account's picks with optional
// social handles
func (c *Client) PlaceBets(ctx context.Context, discordHandle, xHandle string, betOutcomes map[string]string) (*models.SubmissionResult, error) {
	account := c.Account()
	if account.Address == "" {
		return nil, fmt.Errorf("no account configured")
	}

	body, err := json.Marshal(placeBetsRequest{
		Address:       account.Address,
		DiscordHandle: discordHandle,
		XHandle:       xHandle,
		BetOutcomes:   betOutcomes,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/user-bets", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode >= 300 {
		return nil, apiError(res)
	}

	var out placeBetsResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode place bets response: %w", err)
	}

	result := &models.SubmissionResult{UserID: out.UserID}
	if len(out.ConsensusData.LeaderReceipt) > 0 {
		result.ExecutionResult = out.ConsensusData.LeaderReceipt[0].ExecutionResult
	}
	return result, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode >= 300 {
		return apiError(res)
	}

	return json.NewDecoder(res.Body).Decode(out)
}

// apiError surfaces the service's error envelope with its status code
func apiError(res *http.Response) error {
	var envelope struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(res.Body).Decode(&envelope); err == nil && envelope.Error != "" {
		return fmt.Errorf("http %d: %s", res.StatusCode, envelope.Error)
	}
	return fmt.Errorf("http %d", res.StatusCode)
}
