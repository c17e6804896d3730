// seed_sql genera el script SQL que crea las tablas del snapshot inicial y las
// puebla con el fixture (embebido o el archivo indicado), para SEED_SOURCE=postgres.
//
// Uso: go run ./cmd/seed_sql [ruta/fixture.json]
// Escribe: internal/infrastructure/postgres/migrations/001_seed_inventory.sql
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/estoque-api/internal/infrastructure/postgres"
	"github.com/jhoicas/estoque-api/internal/infrastructure/seed"
)

func main() {
	var path string
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	doc, err := seed.NewFixtureSource(path, zerolog.Nop()).Document()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer fixture: %v\n", err)
		os.Exit(1)
	}

	// Ruta del script de salida (relativa al módulo)
	moduleRoot := findModuleRoot()
	outDir := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Crear directorio: %v\n", err)
		os.Exit(1)
	}
	outPath := filepath.Join(outDir, "001_seed_inventory.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	w := bufio.NewWriter(out)
	if err := writeSQL(w, doc); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
		os.Exit(1)
	}
	if err := w.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Generado %s: %d categorías, %d proveedores, %d productos, %d movimientos, %d alertas\n",
		outPath, len(doc.Categories), len(doc.Suppliers), len(doc.Products), len(doc.Movements), len(doc.Alerts))
}

// writeSQL escribe el esquema y un INSERT por registro, en el orden del documento
// (la columna ordem conserva ese orden al leer).
func writeSQL(w io.Writer, doc seed.Document) error {
	var b strings.Builder
	b.WriteString("-- Snapshot inicial del inventario\n")
	b.WriteString("-- Generado por cmd/seed_sql\n")
	b.WriteString(postgres.Schema)
	b.WriteString("\n")

	b.WriteString("-- 1. Categorías\n")
	for _, c := range doc.Categories {
		fmt.Fprintf(&b, "INSERT INTO categorias (id, nome, descricao, cor) VALUES (%s, %s, %s, %s) ON CONFLICT (id) DO NOTHING;\n",
			quote(c.ID), quote(c.Name), nullable(c.Description), nullable(c.Color))
	}

	b.WriteString("\n-- 2. Proveedores\n")
	for _, s := range doc.Suppliers {
		fmt.Fprintf(&b, "INSERT INTO fornecedores (id, nome, contato, email, telefone, endereco) VALUES (%s, %s, %s, %s, %s, %s) ON CONFLICT (id) DO NOTHING;\n",
			quote(s.ID), quote(s.Name), quote(s.Contact), nullable(s.Email), nullable(s.Phone), nullable(s.Address))
	}

	b.WriteString("\n-- 3. Productos\n")
	for _, p := range doc.Products {
		validade := "NULL"
		if p.ExpiresAt != "" {
			validade = quote(p.ExpiresAt) + "::date"
		}
		fmt.Fprintf(&b, "INSERT INTO produtos (id, nome, descricao, categoria, preco, quantidade_em_estoque, estoque_minimo, unidade, codigo, data_cadastro, fornecedor, local_armazenamento, validade, imagem) VALUES (%s, %s, %s, %s, %s, %d, %d, %s, %s, %s, %s, %s, %s, %s) ON CONFLICT (id) DO NOTHING;\n",
			quote(p.ID), quote(p.Name), nullable(p.Description), quote(p.CategoryID), numeric(p.Price),
			p.Quantity, p.MinStock, quote(p.Unit), quote(p.Code), timestamp(p.RegisteredAt.Format("2006-01-02T15:04:05Z07:00")),
			quote(p.SupplierID), nullable(p.Location), validade, nullable(p.ImageURL))
	}

	b.WriteString("\n-- 4. Movimientos\n")
	for _, m := range doc.Movements {
		fmt.Fprintf(&b, "INSERT INTO movimentacoes (id, produto_id, tipo, quantidade, data, responsavel, observacao) VALUES (%s, %s, %s, %d, %s, %s, %s) ON CONFLICT (id) DO NOTHING;\n",
			quote(m.ID), quote(m.ProductID), quote(m.Type), m.Quantity,
			timestamp(m.Date.Format("2006-01-02T15:04:05Z07:00")), quote(m.Responsible), nullable(m.Note))
	}

	b.WriteString("\n-- 5. Alertas\n")
	for _, a := range doc.Alerts {
		fmt.Fprintf(&b, "INSERT INTO alertas (id, produto_id, tipo, mensagem, data, lido) VALUES (%s, %s, %s, %s, %s, %t) ON CONFLICT (id) DO NOTHING;\n",
			quote(a.ID), quote(a.ProductID), quote(a.Type), quote(a.Message),
			timestamp(a.Date.Format("2006-01-02T15:04:05Z07:00")), a.Read)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func quote(s string) string {
	return "'" + escapeSQL(s) + "'"
}

// nullable NULL para texto opcional vacío (las columnas opcionales admiten NULL).
func nullable(s string) string {
	if s == "" {
		return "NULL"
	}
	return quote(s)
}

func numeric(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func timestamp(s string) string {
	return quote(s) + "::timestamptz"
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
