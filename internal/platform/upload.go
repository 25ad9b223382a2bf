package platform

import (
	"bytes"
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/zeebo/blake3"

	"github.com/refineryiq/riq/internal/errors"
)

// ProgressFunc receives upload progress as bytes sent out of the total
// payload size
type ProgressFunc func(sent, total int64)

// UploadDataset submits a CSV dataset file as a multipart upload. The filename
// is validated locally before any network call: anything that does not end in
// .csv is rejected without a round-trip. Progress is reported through
// onProgress when non-nil.
func (c *Client) UploadDataset(ctx context.Context, path string, onProgress ProgressFunc) error {
	filename := filepath.Base(path)
	if !strings.EqualFold(filepath.Ext(filename), ".csv") {
		return errors.NewUploadNotCSVError(filename)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeUploadReadFile, fmt.Sprintf("read dataset file: %s", path), err)
	}

	digest := blake3.Sum256(data)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return fmt.Errorf("create multipart field: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return fmt.Errorf("write multipart payload: %w", err)
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("finalize multipart payload: %w", err)
	}

	total := int64(buf.Len())
	var body io.Reader = &buf
	if onProgress != nil {
		body = &progressReader{r: &buf, total: total, fn: onProgress}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/api/upload-dataset", body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	// The multipart writer owns the Content-Type so the boundary is set.
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("X-Content-Digest", "blake3:"+hex.EncodeToString(digest[:]))
	req.Header.Set("X-Request-ID", uuid.NewString())
	if token := c.Tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.logger.Debug("uploading dataset", "file", filename, "bytes", total)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("POST /api/upload-dataset: %w", err)
	}

	return decode(resp, nil)
}

// progressReader reports cumulative bytes read from the wrapped reader
type progressReader struct {
	r     io.Reader
	total int64
	sent  int64
	fn    ProgressFunc
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 {
		p.sent += int64(n)
		p.fn(p.sent, p.total)
	}
	return n, err
}
