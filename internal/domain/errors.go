package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound       = errors.New("recurso no encontrado")
	ErrInvalidInput   = errors.New("entrada inválida")
	ErrUnauthorized   = errors.New("no autorizado")
	ErrForbidden      = errors.New("acceso denegado")
	ErrObjectNotFound = errors.New("objeto no encontrado en el almacenamiento")

	// ErrTemplateUnavailable la plantilla PDF del contrato no existe o no se puede leer.
	ErrTemplateUnavailable = errors.New("plantilla de contrato no disponible")
	// ErrStorageWrite falló la subida del PDF o el registro de sus metadatos.
	ErrStorageWrite = errors.New("error al guardar el contrato")
)
