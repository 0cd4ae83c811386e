package gateway

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	apperrors "snadaily/internal/errors"
)

// ObjectStorage uploads and deletes contest media by bucket path. Deletes
// are best-effort on the caller side: a storage failure is logged, never
// allowed to block record deletion.
type ObjectStorage interface {
	Upload(ctx context.Context, path, contentType string, body io.Reader) (publicURL string, err error)
	Delete(ctx context.Context, path string) error
}

type supabaseStorage struct {
	baseURL    string
	serviceKey string
	bucket     string
	client     *http.Client
}

// NewSupabaseStorage builds a client for the Supabase storage REST API.
func NewSupabaseStorage(baseURL, serviceKey, bucket string) ObjectStorage {
	return &supabaseStorage{
		baseURL:    strings.TrimRight(baseURL, "/"),
		serviceKey: serviceKey,
		bucket:     bucket,
		client:     &http.Client{Timeout: 60 * time.Second},
	}
}

// Upload writes an object and returns its public URL.
func (s *supabaseStorage) Upload(ctx context.Context, path, contentType string, body io.Reader) (string, error) {
	endpoint := fmt.Sprintf("%s/storage/v1/object/%s/%s", s.baseURL, s.bucket, path)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return "", apperrors.NewUpstreamError("storage", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.serviceKey)
	req.Header.Set("Content-Type", contentType)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", apperrors.NewUpstreamError("storage", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", apperrors.NewUpstreamError("storage", fmt.Errorf("upload %s: status %d: %s", path, resp.StatusCode, detail))
	}

	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.baseURL, s.bucket, path), nil
}

// Delete removes an object by path.
func (s *supabaseStorage) Delete(ctx context.Context, path string) error {
	endpoint := fmt.Sprintf("%s/storage/v1/object/%s/%s", s.baseURL, s.bucket, path)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return apperrors.NewUpstreamError("storage", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.serviceKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return apperrors.NewUpstreamError("storage", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return apperrors.NewUpstreamError("storage", fmt.Errorf("delete %s: status %d", path, resp.StatusCode))
	}
	return nil
}
