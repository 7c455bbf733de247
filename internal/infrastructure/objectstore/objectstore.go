// Package objectstore implementa ports.ObjectStorage sobre Google Cloud Storage (producción o
// emulador fake-gcs) y sobre un sistema de archivos afero (desarrollo local y tests).
package objectstore

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/afero"

	"github.com/jhoicas/onboarding-api/internal/application/ports"
	"github.com/jhoicas/onboarding-api/pkg/config"
	"github.com/jhoicas/onboarding-api/pkg/logger"
)

// New construye el almacenamiento según STORAGE_DRIVER.
func New(ctx context.Context, cfg config.StorageConfig, log *logger.Logger) (ports.ObjectStorage, error) {
	switch cfg.Driver {
	case config.StorageDriverGCS:
		return NewGCSStore(ctx, cfg, log)
	case config.StorageDriverFS:
		fs := afero.NewBasePathFs(afero.NewOsFs(), cfg.LocalDir)
		log.Info().Str("driver", cfg.Driver).Str("dir", cfg.LocalDir).Msg("almacenamiento local inicializado")
		return NewFSStore(fs, cfg.PublicBaseURL), nil
	default:
		return nil, fmt.Errorf("objectstore: driver %q no soportado", cfg.Driver)
	}
}

// cleanKey normaliza la clave: sin espacios ni "/" inicial.
func cleanKey(key string) string {
	return strings.TrimLeft(strings.TrimSpace(key), "/")
}

func contentTypeForKey(key string) string {
	s := strings.ToLower(cleanKey(key))
	switch {
	case strings.HasSuffix(s, ".pdf"):
		return "application/pdf"
	case strings.HasSuffix(s, ".png"):
		return "image/png"
	case strings.HasSuffix(s, ".jpg"), strings.HasSuffix(s, ".jpeg"):
		return "image/jpeg"
	case strings.HasSuffix(s, ".yaml"), strings.HasSuffix(s, ".yml"):
		return "application/yaml"
	default:
		return "application/octet-stream"
	}
}

// readCloserWithCancel cancela el contexto de la lectura al cerrar el lector.
// No cancelar antes de devolverlo: el caller leería 0 bytes.
type readCloserWithCancel struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (r *readCloserWithCancel) Close() error {
	err := r.ReadCloser.Close()
	if r.cancel != nil {
		r.cancel()
	}
	return err
}

// limitedFile lector de rango sobre un archivo abierto.
type limitedFile struct {
	io.Reader
	f afero.File
}

func (l *limitedFile) Close() error { return l.f.Close() }
