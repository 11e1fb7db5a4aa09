package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/zeebo/blake3"

	cerrors "github.com/airiskcouncil/arcctl/internal/errors"
)

// doMultipart sends a multipart/form-data request: text fields plus one
// file part. Used by the file-bearing endpoints (resource upload, team
// member photo).
func (c *Client) doMultipart(ctx context.Context, method, path string, fields map[string]string, fileField, fileName string, file io.Reader, out any) error {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for key, value := range fields {
		if value == "" {
			continue
		}
		if err := writer.WriteField(key, value); err != nil {
			return cerrors.Wrap(cerrors.ErrCodeRequestFailed, "failed to write form field", err)
		}
	}

	if file != nil {
		part, err := writer.CreateFormFile(fileField, fileName)
		if err != nil {
			return cerrors.Wrap(cerrors.ErrCodeRequestFailed, "failed to create form file", err)
		}
		if _, err := io.Copy(part, file); err != nil {
			return cerrors.Wrap(cerrors.ErrCodeFileReadFailed, "failed to read upload file", err)
		}
	}

	if err := writer.Close(); err != nil {
		return cerrors.Wrap(cerrors.ErrCodeRequestFailed, "failed to finalize multipart body", err)
	}

	env, err := c.do(ctx, method, path, nil, body, writer.FormDataContentType())
	if err != nil {
		return err
	}

	if out != nil && len(env.Data) > 0 {
		if err := decodeData(env.Data, out); err != nil {
			return err
		}
	}
	return nil
}

// DownloadInfo describes a completed binary download.
type DownloadInfo struct {
	Size   int64
	Digest string
}

// download streams a binary endpoint to w and returns the payload size and
// BLAKE3 digest. Binary endpoints do not use the JSON envelope.
func (c *Client) download(ctx context.Context, path string, w io.Writer) (*DownloadInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, cerrors.Wrap(cerrors.ErrCodeRequestFailed, "failed to create request", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() == context.Canceled {
			return nil, cerrors.Wrap(cerrors.ErrCodeRequestCancelled, "request cancelled", err)
		}
		return nil, cerrors.NewNetworkError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		if c.onSessionInvalid != nil {
			c.onSessionInvalid()
		}
		return nil, cerrors.NewSessionExpiredError()
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &Error{Status: resp.StatusCode}
	}

	hasher := blake3.New()
	size, err := io.Copy(io.MultiWriter(w, hasher), resp.Body)
	if err != nil {
		return nil, cerrors.Wrap(cerrors.ErrCodeFileWriteFailed, "failed to write download", err)
	}

	return &DownloadInfo{
		Size:   size,
		Digest: fmt.Sprintf("%x", hasher.Sum(nil)),
	}, nil
}
