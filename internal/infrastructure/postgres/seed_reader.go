package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

var _ repository.SeedSource = (*SeedReader)(nil)

// Querier subconjunto de pgxpool.Pool / pgx.Tx usado por los adaptadores.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Schema tablas de las que se lee el snapshot inicial. Solo lectura: el servicio nunca escribe.
const Schema = `
CREATE TABLE IF NOT EXISTS categorias (
	id         TEXT PRIMARY KEY,
	nome       TEXT NOT NULL,
	descricao  TEXT,
	cor        TEXT,
	ordem      SERIAL
);

CREATE TABLE IF NOT EXISTS fornecedores (
	id        TEXT PRIMARY KEY,
	nome      TEXT NOT NULL,
	contato   TEXT NOT NULL DEFAULT '',
	email     TEXT,
	telefone  TEXT,
	endereco  TEXT,
	ordem     SERIAL
);

CREATE TABLE IF NOT EXISTS produtos (
	id                    TEXT PRIMARY KEY,
	nome                  TEXT NOT NULL,
	descricao             TEXT,
	categoria             TEXT NOT NULL,
	preco                 NUMERIC(14,2) NOT NULL DEFAULT 0,
	quantidade_em_estoque INTEGER NOT NULL DEFAULT 0,
	estoque_minimo        INTEGER NOT NULL DEFAULT 0,
	unidade               TEXT NOT NULL,
	codigo                TEXT NOT NULL,
	data_cadastro         TIMESTAMPTZ NOT NULL,
	fornecedor            TEXT NOT NULL,
	local_armazenamento   TEXT,
	validade              DATE,
	imagem                TEXT,
	ordem                 SERIAL
);

CREATE TABLE IF NOT EXISTS movimentacoes (
	id          TEXT PRIMARY KEY,
	produto_id  TEXT NOT NULL,
	tipo        TEXT NOT NULL CHECK (tipo IN ('entrada', 'saida')),
	quantidade  INTEGER NOT NULL CHECK (quantidade > 0),
	data        TIMESTAMPTZ NOT NULL,
	responsavel TEXT NOT NULL,
	observacao  TEXT,
	ordem       SERIAL
);

CREATE TABLE IF NOT EXISTS alertas (
	id         TEXT PRIMARY KEY,
	produto_id TEXT NOT NULL,
	tipo       TEXT NOT NULL CHECK (tipo IN ('baixo', 'vencimento')),
	mensagem   TEXT NOT NULL,
	data       TIMESTAMPTZ NOT NULL,
	lido       BOOLEAN NOT NULL DEFAULT FALSE,
	ordem      SERIAL
);
`

// SeedReader lee el snapshot inicial desde PostgreSQL (pool o tx).
type SeedReader struct {
	q Querier
}

// NewSeedReader construye el lector. Requiere el codec decimal registrado (ver NewPool).
func NewSeedReader(q Querier) *SeedReader {
	return &SeedReader{q: q}
}

// Load lee las cinco colecciones preservando el orden de inserción.
func (r *SeedReader) Load(ctx context.Context) (repository.Snapshot, error) {
	var snap repository.Snapshot
	var err error
	if snap.Categories, err = r.categories(ctx); err != nil {
		return repository.Snapshot{}, err
	}
	if snap.Suppliers, err = r.suppliers(ctx); err != nil {
		return repository.Snapshot{}, err
	}
	if snap.Products, err = r.products(ctx); err != nil {
		return repository.Snapshot{}, err
	}
	if snap.Movements, err = r.movements(ctx); err != nil {
		return repository.Snapshot{}, err
	}
	if snap.Alerts, err = r.alerts(ctx); err != nil {
		return repository.Snapshot{}, err
	}
	return snap, nil
}

func (r *SeedReader) categories(ctx context.Context) ([]entity.Category, error) {
	query := `SELECT id, nome, COALESCE(descricao, ''), COALESCE(cor, '') FROM categorias ORDER BY ordem`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query categorias: %w", err)
	}
	defer rows.Close()

	var list []entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Color); err != nil {
			return nil, fmt.Errorf("scan categoria: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (r *SeedReader) suppliers(ctx context.Context) ([]entity.Supplier, error) {
	query := `
		SELECT id, nome, contato, COALESCE(email, ''), COALESCE(telefone, ''), COALESCE(endereco, '')
		FROM fornecedores ORDER BY ordem`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query fornecedores: %w", err)
	}
	defer rows.Close()

	var list []entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.Contact, &s.Email, &s.Phone, &s.Address); err != nil {
			return nil, fmt.Errorf("scan fornecedor: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func (r *SeedReader) products(ctx context.Context) ([]entity.Product, error) {
	query := `
		SELECT id, nome, COALESCE(descricao, ''), categoria, preco, quantidade_em_estoque, estoque_minimo,
		       unidade, codigo, data_cadastro, fornecedor, COALESCE(local_armazenamento, ''), validade,
		       COALESCE(imagem, '')
		FROM produtos ORDER BY ordem`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query produtos: %w", err)
	}
	defer rows.Close()

	var list []entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Description, &p.CategoryID, &p.Price, &p.Quantity, &p.MinStock,
			&p.Unit, &p.Code, &p.RegisteredAt, &p.SupplierID, &p.Location, &p.ExpiresAt, &p.ImageURL,
		); err != nil {
			return nil, fmt.Errorf("scan produto: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (r *SeedReader) movements(ctx context.Context) ([]entity.Movement, error) {
	query := `
		SELECT id, produto_id, tipo, quantidade, data, responsavel, COALESCE(observacao, '')
		FROM movimentacoes ORDER BY ordem`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query movimentacoes: %w", err)
	}
	defer rows.Close()

	var list []entity.Movement
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(&m.ID, &m.ProductID, &m.Type, &m.Quantity, &m.Date, &m.Responsible, &m.Note); err != nil {
			return nil, fmt.Errorf("scan movimentacao: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

func (r *SeedReader) alerts(ctx context.Context) ([]entity.Alert, error) {
	query := `SELECT id, produto_id, tipo, mensagem, data, lido FROM alertas ORDER BY ordem`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query alertas: %w", err)
	}
	defer rows.Close()

	var list []entity.Alert
	for rows.Next() {
		var a entity.Alert
		if err := rows.Scan(&a.ID, &a.ProductID, &a.Type, &a.Message, &a.Date, &a.Read); err != nil {
			return nil, fmt.Errorf("scan alerta: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}
