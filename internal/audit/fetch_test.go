package audit

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFetcherFor(t *testing.T, handler http.HandlerFunc) *RESTFetcher {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	f := NewRESTFetcher("test-token")
	f.BaseURL = srv.URL
	return f
}

func TestLatestByActionFound(t *testing.T) {
	var gotPath, gotQuery, gotAuth string
	f := newFetcherFor(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotAuth = r.Header.Get("Authorization")
		fmt.Fprint(w, `{"audit_log_entries":[{"id":"e1","action_type":50,"user_id":"u1","target_id":"w1"}]}`)
	})

	res, err := f.LatestByAction("g1", ActionWebhookCreate)
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, "u1", res.Entry.UserID)
	assert.Equal(t, "/guilds/g1/audit-logs", gotPath)
	assert.Equal(t, "action_type=50&limit=1", gotQuery)
	assert.Equal(t, "Bot test-token", gotAuth)
}

func TestLatestByActionEmptyPageIsNotAnError(t *testing.T) {
	f := newFetcherFor(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"audit_log_entries":[]}`)
	})

	res, err := f.LatestByAction("g1", ActionBotAdd)
	require.NoError(t, err)
	assert.False(t, res.Found)
}

func TestLatestByActionHTTPError(t *testing.T) {
	f := newFetcherFor(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	_, err := f.LatestByAction("g1", ActionRoleUpdate)
	assert.Error(t, err)
}
