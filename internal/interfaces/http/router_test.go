package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/onboarding-api/internal/application/dto"
	"github.com/jhoicas/onboarding-api/internal/application/ports"
	"github.com/jhoicas/onboarding-api/internal/domain"
	apphttp "github.com/jhoicas/onboarding-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/onboarding-api/pkg/jwt"
	"github.com/jhoicas/onboarding-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Stubs de casos de uso
// ──────────────────────────────────────────────────────────────────────────────

type stubContracts struct {
	genErr      error
	cleanupErr  error
	downloadErr error
	gotID       string
}

func (s *stubContracts) Generate(_ context.Context, id string) (*dto.GenerateContractResponse, error) {
	s.gotID = id
	if s.genErr != nil {
		return nil, s.genErr
	}
	name := "Vertrag_Acme_GmbH_2024-01-15.pdf"
	return &dto.GenerateContractResponse{
		Success:  true,
		FileName: name,
		FilePath: "contracts/" + id + "/" + name,
		Message:  "Vertrag erfolgreich erstellt",
	}, nil
}

func (s *stubContracts) Cleanup(_ context.Context, id string) (*dto.CleanupContractsResponse, error) {
	s.gotID = id
	if s.cleanupErr != nil {
		return nil, s.cleanupErr
	}
	return &dto.CleanupContractsResponse{Success: true, Deleted: 2, Message: "2 alte Verträge gelöscht"}, nil
}

func (s *stubContracts) ListContracts(_ context.Context, id string) ([]*dto.ContractDocumentResponse, error) {
	return []*dto.ContractDocumentResponse{{ID: "d1", FileName: "Vertrag_Acme_GmbH_2024-01-15.pdf"}}, nil
}

func (s *stubContracts) DownloadLatest(_ context.Context, id string) ([]byte, string, error) {
	if s.downloadErr != nil {
		return nil, "", s.downloadErr
	}
	return []byte("%PDF-1.4 contrato"), "Vertrag_Acme_GmbH_2024-01-15.pdf", nil
}

type stubTemplate struct {
	content    []byte
	replaceErr error
	replaced   []byte
}

func (s *stubTemplate) Info(context.Context) (*dto.TemplateInfoResponse, error) {
	if s.content == nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrTemplateUnavailable, domain.ErrObjectNotFound)
	}
	return &dto.TemplateInfoResponse{Key: "templates/contract_template.pdf", Size: int64(len(s.content)), Pages: 4}, nil
}

func (s *stubTemplate) OpenRange(_ context.Context, offset, length int64) (io.ReadCloser, *ports.ObjectAttrs, error) {
	size := int64(len(s.content))
	if offset >= size {
		return nil, nil, domain.ErrInvalidInput
	}
	end := size
	if length >= 0 && offset+length < size {
		end = offset + length
	}
	attrs := &ports.ObjectAttrs{Key: "templates/contract_template.pdf", Size: size, Updated: time.Now()}
	return io.NopCloser(bytes.NewReader(s.content[offset:end])), attrs, nil
}

func (s *stubTemplate) Replace(_ context.Context, pdf []byte) (*dto.TemplateInfoResponse, error) {
	if s.replaceErr != nil {
		return nil, s.replaceErr
	}
	s.replaced = pdf
	return &dto.TemplateInfoResponse{Key: "templates/contract_template.pdf", Size: int64(len(pdf)), Pages: 4}, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func newRouterApp(c *stubContracts, tpl *stubTemplate) *fiber.App {
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		ServiceName: "onboarding-api",
		Generator:   c,
		Cleaner:     c,
		Query:       c,
		Template:    tpl,
		JWTSecret:   testJWTSecret,
		Logger:      logger.Nop(),
	})
	return app
}

func call(t *testing.T, app *fiber.App, method, path, role string, body []byte, headers map[string]string) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		r = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if role != "" {
		req.Header.Set("Authorization", tokenForRole(t, role))
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeError(t *testing.T, resp *http.Response) dto.ErrorResponse {
	t.Helper()
	var out dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestRouter_Health_Publico(t *testing.T) {
	app := newRouterApp(&stubContracts{}, &stubTemplate{})
	resp := call(t, app, http.MethodGet, "/health", "", nil, nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.HealthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "ok", out.Status)
}

func TestRouter_Generate_SinToken_Retorna401(t *testing.T) {
	app := newRouterApp(&stubContracts{}, &stubTemplate{})
	resp := call(t, app, http.MethodPost, "/api/customers/c-1/contract", "", nil, nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRouter_Generate_Exito(t *testing.T) {
	stub := &stubContracts{}
	app := newRouterApp(stub, &stubTemplate{})
	resp := call(t, app, http.MethodPost, "/api/customers/c-1/contract", pkgjwt.RoleSales, nil, nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "c-1", stub.gotID)

	var out dto.GenerateContractResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.True(t, out.Success)
	assert.Equal(t, "contracts/c-1/Vertrag_Acme_GmbH_2024-01-15.pdf", out.FilePath)
}

func TestRouter_Generate_MapeoDeErrores(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"cliente inexistente", fmt.Errorf("contract: %w", domain.ErrNotFound), http.StatusNotFound, "NOT_FOUND"},
		{"plantilla ausente", fmt.Errorf("%w: %w", domain.ErrTemplateUnavailable, domain.ErrObjectNotFound), http.StatusServiceUnavailable, "TEMPLATE_UNAVAILABLE"},
		{"fallo de subida", fmt.Errorf("%w: timeout", domain.ErrStorageWrite), http.StatusBadGateway, "STORAGE_WRITE_FAILED"},
		{"id vacío", fmt.Errorf("%w: customer id vacío", domain.ErrInvalidInput), http.StatusBadRequest, "VALIDATION"},
		{"error de base de datos", fmt.Errorf("contract: obtener cliente: conexión rechazada"), http.StatusInternalServerError, "INTERNAL"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := newRouterApp(&stubContracts{genErr: tc.err}, &stubTemplate{})
			resp := call(t, app, http.MethodPost, "/api/customers/c-1/contract", pkgjwt.RoleAdmin, nil, nil)
			defer resp.Body.Close()

			assert.Equal(t, tc.status, resp.StatusCode)
			assert.Equal(t, tc.code, decodeError(t, resp).Code)
		})
	}
}

func TestRouter_Cleanup_Exito(t *testing.T) {
	stub := &stubContracts{}
	app := newRouterApp(stub, &stubTemplate{})
	resp := call(t, app, http.MethodPost, "/api/customers/c-9/contract/cleanup", pkgjwt.RoleSales, nil, nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "c-9", stub.gotID)
	var out dto.CleanupContractsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, 2, out.Deleted)
}

func TestRouter_ListContracts(t *testing.T) {
	app := newRouterApp(&stubContracts{}, &stubTemplate{})
	resp := call(t, app, http.MethodGet, "/api/customers/c-1/contracts", pkgjwt.RoleSales, nil, nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out []dto.ContractDocumentResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Len(t, out, 1)
	assert.Equal(t, "d1", out[0].ID)
}

func TestRouter_Download_CabecerasPDF(t *testing.T) {
	app := newRouterApp(&stubContracts{}, &stubTemplate{})
	resp := call(t, app, http.MethodGet, "/api/customers/c-1/contract/download", pkgjwt.RoleSales, nil, nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Equal(t, `attachment; filename="Vertrag_Acme_GmbH_2024-01-15.pdf"`, resp.Header.Get("Content-Disposition"))
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "%PDF-1.4 contrato", string(body))
}

func TestRouter_Download_SinContratos_Retorna404(t *testing.T) {
	app := newRouterApp(&stubContracts{downloadErr: domain.ErrNotFound}, &stubTemplate{})
	resp := call(t, app, http.MethodGet, "/api/customers/c-1/contract/download", pkgjwt.RoleSales, nil, nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRouter_TemplateInfo_PlantillaAusente_Retorna503(t *testing.T) {
	app := newRouterApp(&stubContracts{}, &stubTemplate{})
	resp := call(t, app, http.MethodGet, "/api/contract-template", pkgjwt.RoleSales, nil, nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode,
		"una plantilla ausente es 503 aunque envuelva ErrObjectNotFound")
}

func TestRouter_TemplateContent_Completo(t *testing.T) {
	app := newRouterApp(&stubContracts{}, &stubTemplate{content: []byte("0123456789")})
	resp := call(t, app, http.MethodGet, "/api/contract-template/content", pkgjwt.RoleSales, nil, nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "0123456789", string(body))
	assert.Empty(t, resp.Header.Get("Content-Range"))
}

func TestRouter_TemplateContent_Rango(t *testing.T) {
	app := newRouterApp(&stubContracts{}, &stubTemplate{content: []byte("0123456789")})
	resp := call(t, app, http.MethodGet, "/api/contract-template/content", pkgjwt.RoleSales, nil,
		map[string]string{"Range": "bytes=2-5"})
	defer resp.Body.Close()

	require.Equal(t, http.StatusPartialContent, resp.StatusCode)
	assert.Equal(t, "bytes 2-5/10", resp.Header.Get("Content-Range"))
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "2345", string(body))
}

func TestRouter_TemplateContent_RangoAbierto(t *testing.T) {
	app := newRouterApp(&stubContracts{}, &stubTemplate{content: []byte("0123456789")})
	resp := call(t, app, http.MethodGet, "/api/contract-template/content", pkgjwt.RoleSales, nil,
		map[string]string{"Range": "bytes=7-"})
	defer resp.Body.Close()

	require.Equal(t, http.StatusPartialContent, resp.StatusCode)
	assert.Equal(t, "bytes 7-9/10", resp.Header.Get("Content-Range"))
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "789", string(body))
}

func TestRouter_TemplateContent_RangoFuera_Retorna416(t *testing.T) {
	app := newRouterApp(&stubContracts{}, &stubTemplate{content: []byte("0123456789")})
	resp := call(t, app, http.MethodGet, "/api/contract-template/content", pkgjwt.RoleSales, nil,
		map[string]string{"Range": "bytes=50-60"})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusRequestedRangeNotSatisfiable, resp.StatusCode)
}

func TestRouter_TemplateReplace_SoloAdmin(t *testing.T) {
	tpl := &stubTemplate{}
	app := newRouterApp(&stubContracts{}, tpl)

	resp := call(t, app, http.MethodPut, "/api/contract-template", pkgjwt.RoleSales, []byte("%PDF"), nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Nil(t, tpl.replaced)

	resp = call(t, app, http.MethodPut, "/api/contract-template", pkgjwt.RoleAdmin, []byte("%PDF-nuevo"), nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "%PDF-nuevo", string(tpl.replaced))
}

func TestRouter_TemplateReplace_Invalida_Retorna400(t *testing.T) {
	tpl := &stubTemplate{replaceErr: fmt.Errorf("%w: la plantilla tiene 2 páginas, se requieren 4", domain.ErrInvalidInput)}
	app := newRouterApp(&stubContracts{}, tpl)
	resp := call(t, app, http.MethodPut, "/api/contract-template", pkgjwt.RoleAdmin, []byte("%PDF"), nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decodeError(t, resp).Code)
}
