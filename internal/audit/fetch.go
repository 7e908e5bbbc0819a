// Package audit resolves "who did this" from the platform's own audit trail.
// Lookups are best-effort: valid only at the moment of handling, never cached,
// never retried.
package audit

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/valyala/fasthttp"
)

// Audit log action kinds this system correlates on.
const (
	ActionBotAdd        = 28
	ActionRoleUpdate    = 31
	ActionWebhookCreate = 50
)

// Entry is one audit log line as Discord returns it.
type Entry struct {
	ID         string `json:"id"`
	ActionType int    `json:"action_type"`
	UserID     string `json:"user_id"`
	TargetID   string `json:"target_id"`
	Reason     string `json:"reason"`
}

// Result separates "no matching entry" (expected, Found=false with nil error)
// from a failed lookup, which comes back as a non-nil error from the Source.
type Result struct {
	Entry Entry
	Found bool
}

// Source is the lookup boundary the reactors depend on.
type Source interface {
	LatestByAction(guildID string, action int) (Result, error)
}

// RESTFetcher queries the audit log endpoint directly over REST.
type RESTFetcher struct {
	token   string
	client  *fasthttp.Client
	BaseURL string
}

func NewRESTFetcher(token string) *RESTFetcher {
	return &RESTFetcher{
		token:   token,
		BaseURL: "https://discord.com/api/v10",
		client: &fasthttp.Client{
			MaxConnsPerHost:     16,
			MaxIdleConnDuration: 90 * time.Second,
			ReadTimeout:         10 * time.Second,
			WriteTimeout:        10 * time.Second,
		},
	}
}

// LatestByAction fetches the most recent entry of the given action kind,
// lookback window of one.
func (f *RESTFetcher) LatestByAction(guildID string, action int) (Result, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(fmt.Sprintf("%s/guilds/%s/audit-logs?action_type=%d&limit=1",
		f.BaseURL, guildID, action))
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Authorization", "Bot "+f.token)

	if err := f.client.Do(req, resp); err != nil {
		return Result{}, fmt.Errorf("audit log fetch failed: %w", err)
	}
	if resp.StatusCode() != fasthttp.StatusOK {
		return Result{}, fmt.Errorf("audit log fetch failed: status %d", resp.StatusCode())
	}

	var page struct {
		AuditLogEntries []Entry `json:"audit_log_entries"`
	}
	if err := json.Unmarshal(resp.Body(), &page); err != nil {
		return Result{}, fmt.Errorf("audit log decode failed: %w", err)
	}

	if len(page.AuditLogEntries) == 0 {
		return Result{}, nil
	}
	return Result{Entry: page.AuditLogEntries[0], Found: true}, nil
}
