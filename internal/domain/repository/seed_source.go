package repository

import "context"

// SeedSource origen de los datos iniciales (fixture embebido, archivo o PostgreSQL de solo lectura).
type SeedSource interface {
	Load(ctx context.Context) (Snapshot, error)
}
