package api

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airiskcouncil/arcctl/internal/query"
)

func TestListResourcesFilterByType(t *testing.T) {
	server := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/resources", r.URL.Path)
		require.Equal(t, "whitepaper", r.URL.Query().Get("type"))
		writeListEnvelope(w, []map[string]any{
			{"id": "r1", "title": "Risk Taxonomy", "type": "whitepaper"},
		}, 1, 1, 10, 1)
	}))

	client := newTestClient(t, server)
	page, err := client.ListResources(context.Background(),
		query.DefaultParams().WithFilter(FilterType, ResourceTypeWhitepaper))
	require.NoError(t, err)

	require.Len(t, page.Items, 1)
	assert.Equal(t, "Risk Taxonomy", page.Items[0].Title)
}

func TestUploadResourceMultipart(t *testing.T) {
	const fileBody = "PDF-ish bytes"

	server := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data"))

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "AI Audit Checklist", r.FormValue("title"))
		assert.Equal(t, ResourceTypeWhitepaper, r.FormValue("type"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "checklist.pdf", header.Filename)

		content, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, fileBody, string(content))

		writeEnvelope(w, map[string]any{"id": "r9", "title": "AI Audit Checklist"})
	}))

	client := newTestClient(t, server)
	resource, err := client.UploadResource(context.Background(), UploadResourceInput{
		Title:    "AI Audit Checklist",
		Type:     ResourceTypeWhitepaper,
		FileName: "checklist.pdf",
		File:     strings.NewReader(fileBody),
	})
	require.NoError(t, err)
	assert.Equal(t, "r9", resource.ID)
}

func TestUploadResourceValidation(t *testing.T) {
	server := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, nil)
	}))
	client := newTestClient(t, server)

	_, err := client.UploadResource(context.Background(), UploadResourceInput{
		Title: "No file attached",
	})
	require.Error(t, err)
	assert.Equal(t, "A file is required.", ErrorMessage(err))
}

func TestDownloadResource(t *testing.T) {
	payload := []byte("framework document body")

	server := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/resources/r1/download", r.URL.Path)
		w.Header().Set("Content-Type", "application/octet-stream")
		_, _ = w.Write(payload)
	}))

	client := newTestClient(t, server)

	var buf bytes.Buffer
	info, err := client.DownloadResource(context.Background(), "r1", &buf)
	require.NoError(t, err)

	assert.Equal(t, payload, buf.Bytes())
	assert.Equal(t, int64(len(payload)), info.Size)
	assert.Len(t, info.Digest, 64, "BLAKE3 digest is 32 bytes hex-encoded")
}

func TestDownloadResourceForbidden(t *testing.T) {
	server := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))

	client := newTestClient(t, server)

	var buf bytes.Buffer
	_, err := client.DownloadResource(context.Background(), "r1", &buf)
	require.Error(t, err)
	assert.True(t, IsForbidden(err), "403 on download surfaces as an upgrade prompt")
	assert.Zero(t, buf.Len())
}
