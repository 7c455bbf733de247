package ports

import (
	"context"
	"io"
	"time"
)

// ObjectAttrs metadatos de un objeto guardado.
type ObjectAttrs struct {
	Key         string
	Size        int64
	ContentType string
	Updated     time.Time
}

// ObjectStorage define el puerto de salida hacia el almacenamiento de objetos (GCS o disco local).
// Las claves son rutas relativas con "/" como separador (ej: contracts/<id>/Vertrag_....pdf).
type ObjectStorage interface {
	// Upload escribe el objeto sobrescribiendo si ya existe (upsert).
	Upload(ctx context.Context, key string, data []byte, contentType string) error

	// Download lee el objeto completo. Retorna domain.ErrObjectNotFound si no existe.
	Download(ctx context.Context, key string) ([]byte, error)

	// OpenRangeReader abre un lector del rango [offset, offset+length). length < 0 lee hasta el final.
	// El caller debe cerrar el lector.
	OpenRangeReader(ctx context.Context, key string, offset, length int64) (io.ReadCloser, error)

	// Stat retorna los metadatos del objeto o domain.ErrObjectNotFound.
	Stat(ctx context.Context, key string) (*ObjectAttrs, error)

	// Delete elimina las claves indicadas. Una clave inexistente no es error.
	// Los fallos individuales se devuelven combinados con errors.Join.
	Delete(ctx context.Context, keys ...string) error

	// List metadatos de los objetos cuya clave empieza por prefix.
	List(ctx context.Context, prefix string) ([]ObjectAttrs, error)

	// PublicURL URL de acceso al objeto (vacía si el almacenamiento no expone URLs).
	PublicURL(key string) string
}
