package objectstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/spf13/afero"

	"github.com/jhoicas/onboarding-api/internal/application/ports"
	"github.com/jhoicas/onboarding-api/internal/domain"
)

var _ ports.ObjectStorage = (*FSStore)(nil)

// FSStore almacenamiento sobre un afero.Fs. En desarrollo es un BasePathFs sobre STORAGE_LOCAL_DIR;
// en tests un MemMapFs.
type FSStore struct {
	fs            afero.Fs
	publicBaseURL string
}

// NewFSStore construye el store. publicBaseURL vacío desactiva PublicURL.
func NewFSStore(fs afero.Fs, publicBaseURL string) *FSStore {
	return &FSStore{fs: fs, publicBaseURL: publicBaseURL}
}

// Upload escribe en un archivo temporal y lo renombra: un lector nunca ve un PDF a medias.
func (s *FSStore) Upload(_ context.Context, key string, data []byte, _ string) error {
	key = cleanKey(key)
	if key == "" {
		return fmt.Errorf("objectstore: clave vacía")
	}
	if err := s.fs.MkdirAll(path.Dir(key), 0o755); err != nil {
		return fmt.Errorf("objectstore: crear directorio de %s: %w", key, err)
	}
	tmp := key + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, data, 0o644); err != nil {
		return fmt.Errorf("objectstore: escribir %s: %w", key, err)
	}
	if err := s.fs.Rename(tmp, key); err != nil {
		_ = s.fs.Remove(tmp)
		return fmt.Errorf("objectstore: renombrar %s: %w", key, err)
	}
	return nil
}

func (s *FSStore) Download(_ context.Context, key string) ([]byte, error) {
	data, err := afero.ReadFile(s.fs, cleanKey(key))
	if err != nil {
		return nil, mapFSError(key, err)
	}
	return data, nil
}

func (s *FSStore) OpenRangeReader(_ context.Context, key string, offset, length int64) (io.ReadCloser, error) {
	f, err := s.fs.Open(cleanKey(key))
	if err != nil {
		return nil, mapFSError(key, err)
	}
	if _, err := f.Seek(offset, io.SeekStart); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("objectstore: seek %s: %w", key, err)
	}
	if length < 0 {
		return f, nil
	}
	return &limitedFile{Reader: io.LimitReader(f, length), f: f}, nil
}

func (s *FSStore) Stat(_ context.Context, key string) (*ports.ObjectAttrs, error) {
	key = cleanKey(key)
	fi, err := s.fs.Stat(key)
	if err != nil {
		return nil, mapFSError(key, err)
	}
	if fi.IsDir() {
		return nil, fmt.Errorf("%w: %s es un directorio", domain.ErrObjectNotFound, key)
	}
	return &ports.ObjectAttrs{
		Key:         key,
		Size:        fi.Size(),
		ContentType: contentTypeForKey(key),
		Updated:     fi.ModTime(),
	}, nil
}

// Delete borra cada clave; las inexistentes se ignoran.
func (s *FSStore) Delete(_ context.Context, keys ...string) error {
	var errs []error
	for _, k := range keys {
		if err := s.fs.Remove(cleanKey(k)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = append(errs, fmt.Errorf("objectstore: borrar %s: %w", k, err))
		}
	}
	return errors.Join(errs...)
}

func (s *FSStore) List(_ context.Context, prefix string) ([]ports.ObjectAttrs, error) {
	prefix = cleanKey(prefix)
	root := path.Dir(prefix + "x")
	var out []ports.ObjectAttrs
	err := afero.Walk(s.fs, root, func(p string, fi os.FileInfo, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		p = cleanKey(p)
		if fi.IsDir() || !strings.HasPrefix(p, prefix) || path.Ext(p) == ".tmp" {
			return nil
		}
		out = append(out, ports.ObjectAttrs{Key: p, Size: fi.Size(), ContentType: contentTypeForKey(p), Updated: fi.ModTime()})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("objectstore: listar %s: %w", prefix, err)
	}
	return out, nil
}

func (s *FSStore) PublicURL(key string) string {
	if s.publicBaseURL == "" {
		return ""
	}
	return s.publicBaseURL + "/" + cleanKey(key)
}

func mapFSError(key string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", domain.ErrObjectNotFound, key)
	}
	return fmt.Errorf("objectstore: %s: %w", key, err)
}
