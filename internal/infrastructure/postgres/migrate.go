package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/construstock/internal/domain/entity"
	"golang.org/x/crypto/bcrypt"
)

// schema DDL idempotente de la base. El orden respeta las llaves foráneas.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'user',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS categories (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		description TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS suppliers (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		contact_person TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL DEFAULT '',
		phone TEXT NOT NULL DEFAULT '',
		address TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS projects (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		start_date TIMESTAMPTZ,
		end_date TIMESTAMPTZ,
		status TEXT NOT NULL DEFAULT 'active',
		budget NUMERIC(14,2),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS inventory (
		id BIGSERIAL PRIMARY KEY,
		item_code TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		category_id BIGINT REFERENCES categories(id),
		supplier_id BIGINT REFERENCES suppliers(id),
		unit TEXT NOT NULL,
		current_stock BIGINT NOT NULL DEFAULT 0 CHECK (current_stock >= 0),
		min_stock_level BIGINT NOT NULL DEFAULT 0,
		max_stock_level BIGINT NOT NULL DEFAULT 0,
		unit_cost NUMERIC(14,2) NOT NULL DEFAULT 0,
		location TEXT NOT NULL DEFAULT '',
		barcode TEXT UNIQUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS transactions (
		id BIGSERIAL PRIMARY KEY,
		type TEXT NOT NULL CHECK (type IN ('in', 'out', 'transfer', 'adjustment')),
		inventory_id BIGINT NOT NULL REFERENCES inventory(id),
		quantity BIGINT NOT NULL CHECK (quantity > 0),
		unit_cost NUMERIC(14,2),
		total_cost NUMERIC(14,2),
		reference_number TEXT NOT NULL DEFAULT '',
		notes TEXT NOT NULL DEFAULT '',
		project_id BIGINT REFERENCES projects(id),
		user_id BIGINT REFERENCES users(id),
		transaction_date TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS project_allocations (
		id BIGSERIAL PRIMARY KEY,
		project_id BIGINT NOT NULL REFERENCES projects(id),
		inventory_id BIGINT NOT NULL REFERENCES inventory(id),
		allocated_quantity BIGINT NOT NULL CHECK (allocated_quantity > 0),
		allocated_date TIMESTAMPTZ NOT NULL DEFAULT now(),
		status TEXT NOT NULL DEFAULT 'allocated',
		notes TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS idx_inventory_category ON inventory(category_id)`,
	`CREATE INDEX IF NOT EXISTS idx_inventory_supplier ON inventory(supplier_id)`,
	`CREATE INDEX IF NOT EXISTS idx_transactions_inventory ON transactions(inventory_id)`,
	`CREATE INDEX IF NOT EXISTS idx_transactions_project ON transactions(project_id)`,
	`CREATE INDEX IF NOT EXISTS idx_transactions_date ON transactions(transaction_date)`,
	`CREATE INDEX IF NOT EXISTS idx_allocations_project ON project_allocations(project_id)`,
}

// defaultCategories categorías sembradas en una base vacía.
var defaultCategories = []struct {
	name, description string
}{
	{"Building Materials", "Cemento, ladrillo, arena y agregados"},
	{"Steel & Metal", "Acero de refuerzo, perfiles y láminas"},
	{"Electrical", "Cableado, tableros e iluminación"},
	{"Plumbing", "Tubería, accesorios y griferías"},
	{"Tools & Equipment", "Herramienta menor y equipos"},
	{"Safety Equipment", "Elementos de protección personal"},
}

// Migrate crea el esquema si no existe y siembra datos mínimos:
// categorías por defecto y un usuario admin inicial (admin/admin123)
// solo cuando la tabla de usuarios está vacía.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	if err := seedCategories(ctx, pool); err != nil {
		return err
	}
	return seedAdmin(ctx, pool)
}

func seedCategories(ctx context.Context, pool *pgxpool.Pool) error {
	for _, c := range defaultCategories {
		_, err := pool.Exec(ctx,
			`INSERT INTO categories (name, description) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING`,
			c.name, c.description)
		if err != nil {
			return fmt.Errorf("seed categories: %w", err)
		}
	}
	return nil
}

func seedAdmin(ctx context.Context, pool *pgxpool.Pool) error {
	var count int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	if count > 0 {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	_, err = pool.Exec(ctx,
		`INSERT INTO users (username, email, password_hash, role) VALUES ($1, $2, $3, $4)`,
		"admin", "admin@construstock.local", string(hash), entity.RoleAdmin)
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	return nil
}
