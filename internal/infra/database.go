package infra

import (
	"fmt"

	"github.com/webplotcentersj-hash/stock2/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx, runs AutoMigrate to
// create / update all tables, then applies the idempotent SQL patches that GORM
// cannot express (partial unique indexes).
//
// The connection is constructed once at startup and injected everywhere —
// there is no lazy global handle. cmd/server owns the lifecycle and closes the
// pool on shutdown.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, err
	}

	return db, nil
}

// RunMigrations applies AutoMigrate plus schema patches. Exposed separately so
// integration tests can migrate a fresh database.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Usuario{},
		&model.Articulo{},
		&model.Pedido{},
		&model.PedidoItem{},
		&model.OrdenCompra{},
		&model.MovimientoCaja{},
	); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}
	return applySchemaPatches(db)
}

// applySchemaPatches runs idempotent DDL that AutoMigrate cannot express.
// Each statement is guarded so re-running on an already-patched DB is a no-op.
func applySchemaPatches(db *gorm.DB) error {
	patches := []struct{ descr, sql string }{
		// At most one open (Pendiente / En Proceso) orden de compra per
		// articulo. The application also checks before inserting, but only
		// this index makes the invariant hold under concurrent requests.
		{"partial unique index on open ordenes_compra", `
DO $$ BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'uni_ordenes_compra_abierta') THEN
    CREATE UNIQUE INDEX uni_ordenes_compra_abierta
        ON ordenes_compra (articulo_id)
        WHERE status IN ('Pendiente', 'En Proceso');
  END IF;
END $$`},
		// Covering index for the capped, time-ordered caja listing.
		{"movimientos_caja recency index", `
DO $$ BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_movimientos_caja_recientes') THEN
    CREATE INDEX idx_movimientos_caja_recientes
        ON movimientos_caja (created_at DESC);
  END IF;
END $$`},
	}

	for _, p := range patches {
		if err := db.Exec(p.sql).Error; err != nil {
			return fmt.Errorf("patch %q: %w", p.descr, err)
		}
	}
	return nil
}
