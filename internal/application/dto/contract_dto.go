package dto

import "time"

// GenerateContractResponse resultado de generar el contrato de un cliente.
type GenerateContractResponse struct {
	Success  bool   `json:"success"`
	FileName string `json:"fileName"`
	FilePath string `json:"filePath"`
	Message  string `json:"message"`
}

// CleanupContractsResponse resultado de la limpieza de contratos obsoletos.
type CleanupContractsResponse struct {
	Success        bool   `json:"success"`
	Deleted        int    `json:"deleted"`
	OrphansDeleted int    `json:"orphansDeleted"` // objetos sin fila de metadatos
	Kept           string `json:"kept,omitempty"` // file_path del contrato conservado
	Message        string `json:"message"`
}

// ContractDocumentResponse fila de metadatos de un contrato generado.
type ContractDocumentResponse struct {
	ID        string    `json:"id"`
	FileName  string    `json:"fileName"`
	FilePath  string    `json:"filePath"`
	FileSize  int64     `json:"fileSize"`
	MimeType  string    `json:"mimeType"`
	CreatedAt time.Time `json:"createdAt"`
	URL       string    `json:"url,omitempty"`
}

// TemplateInfoResponse metadatos de la plantilla PDF del contrato.
type TemplateInfoResponse struct {
	Key       string    `json:"key"`
	Size      int64     `json:"size"`
	Pages     int       `json:"pages"`
	UpdatedAt time.Time `json:"updatedAt"`
	URL       string    `json:"url,omitempty"`
}
