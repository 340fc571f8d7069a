package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	gcs "cloud.google.com/go/storage"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// GCSStore keeps files as objects of one Google Cloud Storage bucket.
type GCSStore struct {
	client *gcs.Client
	bucket string
}

// NewGCSClient builds a storage client from a service account file, or from the
// application default credentials when credentialsFile is empty.
func NewGCSClient(ctx context.Context, credentialsFile string) (*gcs.Client, error) {
	if credentialsFile == "" {
		return gcs.NewClient(ctx)
	}
	data, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("read gcs credentials: %w", err)
	}
	creds, err := google.CredentialsFromJSON(ctx, data, gcs.ScopeReadWrite)
	if err != nil {
		return nil, fmt.Errorf("parse gcs credentials: %w", err)
	}
	return gcs.NewClient(ctx, option.WithCredentials(creds))
}

func NewGCSStore(client *gcs.Client, bucket string) *GCSStore {
	if client == nil {
		panic("gcs store requires client")
	}
	if bucket == "" {
		panic("gcs store requires bucket")
	}
	return &GCSStore{client: client, bucket: bucket}
}

var _ FileStore = (*GCSStore)(nil)

func (s *GCSStore) object(key string) (*gcs.ObjectHandle, error) {
	cleaned, err := CleanKey(key)
	if err != nil {
		return nil, err
	}
	return s.client.Bucket(s.bucket).Object(cleaned), nil
}

func (s *GCSStore) Save(ctx context.Context, key string, r io.Reader, contentType string) error {
	obj, err := s.object(key)
	if err != nil {
		return err
	}
	w := obj.NewWriter(ctx)
	w.ContentType = contentType
	if _, err := io.Copy(w, r); err != nil {
		w.Close()
		return fmt.Errorf("upload object: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("finalize object: %w", err)
	}
	return nil
}

func (s *GCSStore) Open(ctx context.Context, key string) (*Object, error) {
	obj, err := s.object(key)
	if err != nil {
		return nil, err
	}
	r, err := obj.NewReader(ctx)
	if err != nil {
		if errors.Is(err, gcs.ErrObjectNotExist) {
			return nil, ErrNotExist
		}
		return nil, fmt.Errorf("open object: %w", err)
	}
	return &Object{Body: r, ContentType: r.Attrs.ContentType, Size: r.Attrs.Size}, nil
}

func (s *GCSStore) Delete(ctx context.Context, key string) error {
	obj, err := s.object(key)
	if err != nil {
		return err
	}
	if err := obj.Delete(ctx); err != nil && !errors.Is(err, gcs.ErrObjectNotExist) {
		return fmt.Errorf("delete object: %w", err)
	}
	return nil
}

func (s *GCSStore) DeletePrefix(ctx context.Context, prefix string) error {
	cleaned, err := CleanKey(prefix)
	if err != nil {
		return err
	}
	bkt := s.client.Bucket(s.bucket)
	it := bkt.Objects(ctx, &gcs.Query{Prefix: cleaned + "/"})
	for {
		attrs, err := it.Next()
		if errors.Is(err, iterator.Done) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("list prefix: %w", err)
		}
		if err := bkt.Object(attrs.Name).Delete(ctx); err != nil && !errors.Is(err, gcs.ErrObjectNotExist) {
			return fmt.Errorf("delete object %s: %w", attrs.Name, err)
		}
	}
}

// Check verifies the bucket exists and is readable.
func (s *GCSStore) Check(ctx context.Context) error {
	bkt := s.client.Bucket(s.bucket)
	if _, err := bkt.Attrs(ctx); err != nil {
		return fmt.Errorf("bucket attrs: %w", err)
	}
	it := bkt.Objects(ctx, &gcs.Query{Prefix: "clients/"})
	if _, err := it.Next(); err != nil && !errors.Is(err, iterator.Done) {
		return fmt.Errorf("list bucket: %w", err)
	}
	return nil
}
