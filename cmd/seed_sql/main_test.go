package main

import (
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/estoque-api/internal/infrastructure/seed"
)

func TestWriteSQL_FixtureEmbebido(t *testing.T) {
	doc, err := seed.NewFixtureSource("", zerolog.Nop()).Document()
	require.NoError(t, err)

	var b strings.Builder
	require.NoError(t, writeSQL(&b, doc))
	sql := b.String()

	assert.Contains(t, sql, "CREATE TABLE IF NOT EXISTS produtos")
	assert.Equal(t, len(doc.Products), strings.Count(sql, "INSERT INTO produtos"))
	assert.Equal(t, len(doc.Movements), strings.Count(sql, "INSERT INTO movimentacoes"))
	assert.Equal(t, len(doc.Alerts), strings.Count(sql, "INSERT INTO alertas"))
}

func TestWriteSQL_EscapaYNulos(t *testing.T) {
	doc := seed.Document{
		Categories: []seed.CategoryRecord{{ID: "c1", Name: "Copos d'água"}},
		Products: []seed.ProductRecord{{
			ID: "p1", Name: "Copo", CategoryID: "c1", Price: decimal.RequireFromString("3.5"),
			Quantity: 2, MinStock: 1, Unit: "un", Code: "C-1", SupplierID: "s1",
			RegisteredAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC), ExpiresAt: "2027-01-01",
		}},
	}

	var b strings.Builder
	require.NoError(t, writeSQL(&b, doc))
	sql := b.String()

	assert.Contains(t, sql, "'Copos d''água'")
	assert.Contains(t, sql, "('c1', 'Copos d''água', NULL, NULL)")
	assert.Contains(t, sql, "3.50, 2, 1")
	assert.Contains(t, sql, "'2026-01-02T03:04:05Z'::timestamptz")
	assert.Contains(t, sql, "'2027-01-01'::date")
}
