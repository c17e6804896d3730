package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

// TxBeginner subconjunto de pgxpool.Pool que abre transacciones.
type TxBeginner interface {
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
}

// snapshotTxOptions una sola foto de las cinco tablas, sin escrituras.
var snapshotTxOptions = pgx.TxOptions{
	IsoLevel:   pgx.RepeatableRead,
	AccessMode: pgx.ReadOnly,
}

// ReadSnapshot lee el snapshot inicial dentro de una transacción de solo lectura
// (REPEATABLE READ), así las cinco consultas ven el mismo estado de la base.
func ReadSnapshot(ctx context.Context, db TxBeginner) (repository.Snapshot, error) {
	tx, err := db.BeginTx(ctx, snapshotTxOptions)
	if err != nil {
		return repository.Snapshot{}, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	snap, err := NewSeedReader(tx).Load(ctx)
	if err != nil {
		return repository.Snapshot{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return repository.Snapshot{}, fmt.Errorf("commit transaction: %w", err)
	}
	return snap, nil
}
