package api

import (
	"context"
	"io"
	"net/http"
	"strings"

	cerrors "github.com/airiskcouncil/arcctl/internal/errors"
	"github.com/airiskcouncil/arcctl/internal/query"
)

// UploadResourceInput describes a resource upload. File is streamed into
// the multipart body.
type UploadResourceInput struct {
	Title       string
	Description string
	Type        string
	FileName    string
	File        io.Reader
}

// ListResources returns one page of resources. Supported filter: type
// (framework/whitepaper/product).
func (c *Client) ListResources(ctx context.Context, p query.Params) (query.Page[Resource], error) {
	return list[Resource](ctx, c, "/resources", p)
}

// GetResource returns a single resource by id.
func (c *Client) GetResource(ctx context.Context, id string) (*Resource, error) {
	var resource Resource
	if err := c.doJSON(ctx, http.MethodGet, "/resources/"+id, nil, nil, &resource); err != nil {
		return nil, err
	}
	return &resource, nil
}

// UploadResource uploads a new resource via multipart form encoding.
// Whitepaper and product uploads are role-gated server-side; a 403 here
// means the member's tier does not allow the upload.
func (c *Client) UploadResource(ctx context.Context, in UploadResourceInput) (*Resource, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, cerrors.NewValidationError("title", "Title is required.")
	}
	if in.File == nil || in.FileName == "" {
		return nil, cerrors.NewValidationError("file", "A file is required.")
	}

	fields := map[string]string{
		"title":       in.Title,
		"description": in.Description,
		"type":        in.Type,
	}

	var resource Resource
	if err := c.doMultipart(ctx, http.MethodPost, "/resources", fields, "file", in.FileName, in.File, &resource); err != nil {
		return nil, err
	}
	return &resource, nil
}

// DownloadResource streams a resource's file to w and reports its size
// and BLAKE3 digest. Framework downloads are role-gated server-side; a
// 403 surfaces as an upgrade prompt in the UI.
func (c *Client) DownloadResource(ctx context.Context, id string, w io.Writer) (*DownloadInfo, error) {
	return c.download(ctx, "/resources/"+id+"/download", w)
}
