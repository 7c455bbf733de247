package objectstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"
	"time"

	gcs "cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"github.com/jhoicas/onboarding-api/internal/application/ports"
	"github.com/jhoicas/onboarding-api/internal/domain"
	"github.com/jhoicas/onboarding-api/pkg/config"
	"github.com/jhoicas/onboarding-api/pkg/logger"
)

var _ ports.ObjectStorage = (*GCSStore)(nil)

const (
	writeTimeout = 2 * time.Minute
	readTimeout  = 2 * time.Minute
	metaTimeout  = 30 * time.Second
)

// GCSStore almacenamiento sobre un bucket de Google Cloud Storage.
// Con STORAGE_EMULATOR_HOST el cliente apunta a fake-gcs-server sin autenticación.
type GCSStore struct {
	client        *gcs.Client
	bucket        string
	emulatorHost  string
	publicBaseURL string
	log           *logger.Logger
}

// NewGCSStore crea el cliente de GCS según la configuración.
func NewGCSStore(ctx context.Context, cfg config.StorageConfig, log *logger.Logger) (*GCSStore, error) {
	client, err := newGCSClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("objectstore: crear cliente GCS: %w", err)
	}
	s := &GCSStore{
		client:        client,
		bucket:        cfg.Bucket,
		emulatorHost:  strings.TrimRight(strings.TrimSpace(cfg.EmulatorHost), "/"),
		publicBaseURL: cfg.PublicBaseURL,
		log:           log.Component("objectstore"),
	}
	s.log.Info().
		Str("bucket", s.bucket).
		Str("emulator_host", s.emulatorHost).
		Str("public_base_url", s.publicBaseURL).
		Msg("almacenamiento GCS inicializado")
	return s, nil
}

func newGCSClient(ctx context.Context, cfg config.StorageConfig) (*gcs.Client, error) {
	if host := strings.TrimSpace(cfg.EmulatorHost); host != "" {
		// El cliente lee el endpoint del emulador de esta variable.
		if err := os.Setenv("STORAGE_EMULATOR_HOST", strings.TrimRight(host, "/")); err != nil {
			return nil, err
		}
		return gcs.NewClient(ctx, option.WithoutAuthentication())
	}
	opts := []option.ClientOption{option.WithScopes(gcs.ScopeReadWrite)}
	if creds := strings.TrimSpace(cfg.CredentialsFile); creds != "" {
		if strings.HasPrefix(creds, "{") {
			opts = append(opts, option.WithCredentialsJSON([]byte(creds)))
		} else {
			opts = append(opts, option.WithCredentialsFile(creds))
		}
	}
	return gcs.NewClient(ctx, opts...)
}

// Close libera el cliente.
func (s *GCSStore) Close() error { return s.client.Close() }

func (s *GCSStore) object(key string) *gcs.ObjectHandle {
	return s.client.Bucket(s.bucket).Object(cleanKey(key))
}

// Upload sobrescribe el objeto si existe (upsert).
func (s *GCSStore) Upload(ctx context.Context, key string, data []byte, contentType string) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	w := s.object(key).NewWriter(ctx)
	w.ContentType = contentType
	if w.ContentType == "" {
		w.ContentType = contentTypeForKey(key)
	}
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return fmt.Errorf("objectstore: escribir %s: %w", key, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("objectstore: cerrar escritura de %s: %w", key, err)
	}
	return nil
}

func (s *GCSStore) Download(ctx context.Context, key string) ([]byte, error) {
	rc, err := s.OpenRangeReader(ctx, key, 0, -1)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("objectstore: leer %s: %w", key, err)
	}
	return data, nil
}

// OpenRangeReader el contexto de lectura vive hasta que el caller cierra el lector.
func (s *GCSStore) OpenRangeReader(ctx context.Context, key string, offset, length int64) (io.ReadCloser, error) {
	ctx2, cancel := context.WithTimeout(ctx, readTimeout)
	r, err := s.object(key).NewRangeReader(ctx2, offset, length)
	if err != nil {
		cancel()
		return nil, mapGCSError(key, err)
	}
	return &readCloserWithCancel{ReadCloser: r, cancel: cancel}, nil
}

func (s *GCSStore) Stat(ctx context.Context, key string) (*ports.ObjectAttrs, error) {
	ctx, cancel := context.WithTimeout(ctx, metaTimeout)
	defer cancel()
	attrs, err := s.object(key).Attrs(ctx)
	if err != nil {
		return nil, mapGCSError(key, err)
	}
	return toObjectAttrs(attrs), nil
}

// Delete borra cada clave; las inexistentes se ignoran y el resto de fallos se combinan.
func (s *GCSStore) Delete(ctx context.Context, keys ...string) error {
	ctx, cancel := context.WithTimeout(ctx, metaTimeout)
	defer cancel()
	var errs []error
	for _, k := range keys {
		if err := s.object(k).Delete(ctx); err != nil && !errors.Is(err, gcs.ErrObjectNotExist) {
			errs = append(errs, fmt.Errorf("objectstore: borrar %s del bucket %s: %w", k, s.bucket, err))
		}
	}
	return errors.Join(errs...)
}

func (s *GCSStore) List(ctx context.Context, prefix string) ([]ports.ObjectAttrs, error) {
	ctx, cancel := context.WithTimeout(ctx, metaTimeout)
	defer cancel()
	it := s.client.Bucket(s.bucket).Objects(ctx, &gcs.Query{Prefix: cleanKey(prefix)})
	var out []ports.ObjectAttrs
	for {
		attrs, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("objectstore: listar %s: %w", prefix, err)
		}
		out = append(out, *toObjectAttrs(attrs))
	}
	return out, nil
}

// PublicURL orden: STORAGE_PUBLIC_BASE_URL, emulador, URL pública de GCS.
func (s *GCSStore) PublicURL(key string) string {
	return publicGCSURL(s.publicBaseURL, s.emulatorHost, s.bucket, key)
}

func publicGCSURL(publicBaseURL, emulatorHost, bucket, key string) string {
	key = cleanKey(key)
	switch {
	case publicBaseURL != "":
		return fmt.Sprintf("%s/%s/%s", publicBaseURL, bucket, key)
	case emulatorHost != "":
		return fmt.Sprintf("%s/storage/v1/b/%s/o/%s?alt=media",
			emulatorHost, url.PathEscape(bucket), url.PathEscape(key))
	default:
		return fmt.Sprintf("https://storage.googleapis.com/%s/%s", bucket, key)
	}
}

func toObjectAttrs(a *gcs.ObjectAttrs) *ports.ObjectAttrs {
	return &ports.ObjectAttrs{
		Key:         a.Name,
		Size:        a.Size,
		ContentType: a.ContentType,
		Updated:     a.Updated,
	}
}

func mapGCSError(key string, err error) error {
	if errors.Is(err, gcs.ErrObjectNotExist) {
		return fmt.Errorf("%w: %s", domain.ErrObjectNotFound, key)
	}
	return fmt.Errorf("objectstore: %s: %w", key, err)
}
