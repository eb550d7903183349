package supabase

import (
	"bytes"
	"fmt"
	"net/url"
	"strings"

	storage "github.com/supabase-community/storage-go"
)

type StorageClient struct {
	client  *storage.Client
	bucket  string
	baseURL string
}

func NewStorageClient(supabaseURL, apiKey, bucket string) (*StorageClient, error) {
	baseURL := strings.TrimSuffix(supabaseURL, "/")
	client := storage.NewClient(baseURL+"/storage/v1", apiKey, nil)

	return &StorageClient{
		client:  client,
		bucket:  bucket,
		baseURL: baseURL,
	}, nil
}

// UploadFile stores an object under the given name and returns its storage
// path together with the public URL customers and admins use to fetch it.
func (s *StorageClient) UploadFile(objectName string, data []byte, contentType string) (string, string, error) {
	cacheControl := "3600"
	upsert := false
	_, err := s.client.UploadFile(s.bucket, objectName, bytes.NewReader(data), storage.FileOptions{
		ContentType:  &contentType,
		CacheControl: &cacheControl,
		Upsert:       &upsert,
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to upload file: %w", err)
	}

	return objectName, s.GetPublicURL(objectName), nil
}

func (s *StorageClient) GetPublicURL(storagePath string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s",
		s.baseURL, s.bucket, storagePath)
}

func (s *StorageClient) DeleteFile(storagePath string) error {
	_, err := s.client.RemoveFile(s.bucket, []string{storagePath})
	return err
}

// ResolvePath prefers the stored storage path and falls back to parsing the
// public URL. Older rows only recorded the URL.
func (s *StorageClient) ResolvePath(storagePath, publicURL string) string {
	if storagePath != "" {
		return storagePath
	}
	return PathFromPublicURL(publicURL, s.bucket)
}

// PathFromPublicURL extracts the object path from a Supabase public URL,
// e.g. https://x.supabase.co/storage/v1/object/public/documents/a%20b.pdf
// yields "a b.pdf" for bucket "documents". Returns "" when the URL does not
// reference the bucket.
func PathFromPublicURL(publicURL, bucket string) string {
	if publicURL == "" {
		return ""
	}
	u, err := url.Parse(publicURL)
	if err != nil {
		return ""
	}
	// u.Path is already percent-decoded by url.Parse.
	marker := "/" + bucket + "/"
	idx := strings.Index(u.Path, marker)
	if idx < 0 {
		return ""
	}
	return u.Path[idx+len(marker):]
}
