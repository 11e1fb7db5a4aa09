package contract

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadValidates(t *testing.T) {
	doc, err := Load()
	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.Equal(t, "AI Risk Council API", doc.Info.Title)
}

func TestEndpointsSorted(t *testing.T) {
	doc, err := Load()
	require.NoError(t, err)

	eps := Endpoints(doc)
	require.NotEmpty(t, eps)
	for i := 1; i < len(eps); i++ {
		prev, cur := eps[i-1], eps[i]
		ordered := prev.Path < cur.Path || (prev.Path == cur.Path && prev.Method < cur.Method)
		assert.True(t, ordered, "endpoints out of order at %d: %v then %v", i, prev, cur)
	}
}

func TestClientPathsDocumented(t *testing.T) {
	doc, err := Load()
	require.NoError(t, err)

	// Every operation the typed client calls must appear in the contract.
	calls := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/auth/login"},
		{http.MethodPost, "/auth/register"},
		{http.MethodPost, "/auth/logout"},
		{http.MethodGet, "/auth/me"},
		{http.MethodGet, "/events"},
		{http.MethodGet, "/events/{id}"},
		{http.MethodPost, "/events/{id}/register"},
		{http.MethodDelete, "/events/{id}/register"},
		{http.MethodGet, "/news"},
		{http.MethodGet, "/news/{id}"},
		{http.MethodGet, "/qna"},
		{http.MethodPost, "/qna"},
		{http.MethodGet, "/qna/{id}"},
		{http.MethodPost, "/qna/{id}/answers"},
		{http.MethodPost, "/qna/{id}/vote"},
		{http.MethodPost, "/qna/{id}/answers/{answerId}/vote"},
		{http.MethodGet, "/resources"},
		{http.MethodPost, "/resources"},
		{http.MethodGet, "/resources/{id}"},
		{http.MethodGet, "/resources/{id}/download"},
		{http.MethodGet, "/team"},
		{http.MethodGet, "/profile"},
		{http.MethodPut, "/profile"},
		{http.MethodGet, "/admin/users"},
		{http.MethodPut, "/admin/users/{id}/approve"},
		{http.MethodPut, "/admin/users/{id}/role"},
		{http.MethodDelete, "/admin/users/{id}"},
		{http.MethodPost, "/admin/events"},
		{http.MethodPut, "/admin/events/{id}"},
		{http.MethodDelete, "/admin/events/{id}"},
		{http.MethodPost, "/admin/news"},
		{http.MethodPut, "/admin/news/{id}"},
		{http.MethodDelete, "/admin/news/{id}"},
		{http.MethodDelete, "/admin/resources/{id}"},
		{http.MethodPost, "/admin/team"},
		{http.MethodPut, "/admin/team/{id}"},
		{http.MethodDelete, "/admin/team/{id}"},
	}
	for _, c := range calls {
		assert.True(t, HasOperation(doc, c.method, c.path), "%s %s missing from contract", c.method, c.path)
	}
}

func TestHasOperationRejectsUnknown(t *testing.T) {
	doc, err := Load()
	require.NoError(t, err)

	assert.False(t, HasOperation(doc, http.MethodGet, "/nope"))
	assert.False(t, HasOperation(doc, http.MethodPatch, "/events"))
}
