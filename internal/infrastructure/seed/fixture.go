// Package seed carga el snapshot inicial del inventario desde el fixture JSON embebido
// o desde un archivo que lo reemplaza.
package seed

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

//go:embed fixture.json
var embedded []byte

var _ repository.SeedSource = (*FixtureSource)(nil)

// FixtureSource lee el fixture embebido, o el archivo Path si está definido.
type FixtureSource struct {
	Path string
	Log  zerolog.Logger
}

// NewFixtureSource crea la fuente; path vacío usa el fixture embebido.
func NewFixtureSource(path string, log zerolog.Logger) *FixtureSource {
	return &FixtureSource{Path: path, Log: log}
}

// Load decodifica el documento y lo convierte a snapshot de dominio.
func (f *FixtureSource) Load(_ context.Context) (repository.Snapshot, error) {
	doc, err := f.Document()
	if err != nil {
		return repository.Snapshot{}, err
	}
	return doc.Snapshot()
}

// Document devuelve el documento sin convertir (lo usa el generador de SQL).
func (f *FixtureSource) Document() (Document, error) {
	raw := embedded
	origin := "embebido"
	if f.Path != "" {
		b, err := os.ReadFile(f.Path)
		if err != nil {
			return Document{}, fmt.Errorf("leer fixture %s: %w", f.Path, err)
		}
		raw, origin = b, f.Path
	}
	doc, err := Decode(raw)
	if err != nil {
		return Document{}, fmt.Errorf("fixture %s: %w", origin, err)
	}
	f.Log.Debug().Str("origin", origin).Int("products", len(doc.Products)).Msg("fixture cargado")
	return doc, nil
}

// Decode decodifica un documento rechazando campos desconocidos.
func Decode(raw []byte) (Document, error) {
	var doc Document
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("decodificar: %w", err)
	}
	return doc, nil
}
