// contract_template genera la plantilla base del contrato (4 páginas A4 con etiquetas en las
// coordenadas del layout) y la sube al almacenamiento configurado.
//
// Uso: go run ./cmd/contract_template [-out plantilla.pdf] [-layout layout.yaml]
// Sin -out sube a CONTRACT_TEMPLATE_KEY usando STORAGE_DRIVER (fs o gcs).
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	contractdomain "github.com/jhoicas/onboarding-api/internal/domain/contract"
	"github.com/jhoicas/onboarding-api/internal/domain/entity"
	"github.com/jhoicas/onboarding-api/internal/infrastructure/objectstore"
	infrapdf "github.com/jhoicas/onboarding-api/internal/infrastructure/pdf"
	"github.com/jhoicas/onboarding-api/pkg/config"
	"github.com/jhoicas/onboarding-api/pkg/logger"
)

func main() {
	out := flag.String("out", "", "escribir la plantilla en este archivo en lugar de subirla")
	layoutPath := flag.String("layout", "", "archivo YAML de coordenadas (por defecto el embebido)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel}).Component("contract_template")

	path := *layoutPath
	if path == "" {
		path = cfg.Contract.LayoutPath
	}
	var layout *contractdomain.Layout
	if path != "" {
		layout, err = contractdomain.LoadLayoutFile(path)
	} else {
		layout, err = contractdomain.DefaultLayout()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer layout: %v\n", err)
		os.Exit(1)
	}

	pdf, err := infrapdf.NewTemplateBuilder().Build(layout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Generar plantilla: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pages, err := infrapdf.NewPDFCPUInspector().PageCount(ctx, pdf)
	if err != nil || pages < layout.Pages {
		fmt.Fprintf(os.Stderr, "Plantilla generada inválida (%d páginas): %v\n", pages, err)
		os.Exit(1)
	}

	if *out != "" {
		if err := os.WriteFile(*out, pdf, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Escribir %s: %v\n", *out, err)
			os.Exit(1)
		}
		fmt.Printf("Escrito: %s (%d páginas, %d bytes)\n", *out, pages, len(pdf))
		return
	}

	store, err := objectstore.New(ctx, cfg.Storage, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Almacenamiento: %v\n", err)
		os.Exit(1)
	}
	if closer, ok := store.(io.Closer); ok {
		defer closer.Close()
	}
	if err := store.Upload(ctx, cfg.Contract.TemplateKey, pdf, entity.MimeTypePDF); err != nil {
		fmt.Fprintf(os.Stderr, "Subir plantilla: %v\n", err)
		os.Exit(1)
	}
	log.Info().Str("template_key", cfg.Contract.TemplateKey).Int("pages", pages).Int("size", len(pdf)).Msg("plantilla subida")
	fmt.Printf("Subido: %s\n", store.PublicURL(cfg.Contract.TemplateKey))
}
