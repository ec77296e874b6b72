package repository

import (
	"context"
	"fmt"

	"github.com/fekuna/omnipos-juicebar-service/internal/snapshot"
	"github.com/jmoiron/sqlx"
)

const Schema = `
CREATE TABLE IF NOT EXISTS products (
    id         TEXT PRIMARY KEY,
    name       TEXT NOT NULL,
    image_url  TEXT,
    markup     NUMERIC NOT NULL,
    is_active  BOOLEAN NOT NULL,
    created_at TIMESTAMPTZ NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL
);
CREATE TABLE IF NOT EXISTS recipes (
    product_id  TEXT PRIMARY KEY,
    ingredients JSONB NOT NULL
);
CREATE TABLE IF NOT EXISTS inventory_items (
    id            TEXT NOT NULL,
    name          TEXT PRIMARY KEY,
    unit          TEXT NOT NULL,
    quantity      NUMERIC NOT NULL CHECK (quantity >= 0),
    reorder_level NUMERIC NOT NULL,
    cost_per_unit NUMERIC NOT NULL,
    updated_at    TIMESTAMPTZ NOT NULL
);
CREATE TABLE IF NOT EXISTS customers (
    id         TEXT PRIMARY KEY,
    name       TEXT NOT NULL,
    phone      TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL
);
CREATE TABLE IF NOT EXISTS sales (
    id           TEXT PRIMARY KEY,
    product_id   TEXT NOT NULL,
    quantity     INTEGER NOT NULL,
    price_each   NUMERIC NOT NULL,
    total        NUMERIC NOT NULL,
    payment_mode TEXT NOT NULL,
    customer_id  TEXT NOT NULL,
    created_at   TIMESTAMPTZ NOT NULL
);
CREATE TABLE IF NOT EXISTS notification_log (
    id          TEXT PRIMARY KEY,
    recipient   TEXT NOT NULL,
    template_id TEXT NOT NULL,
    template    TEXT NOT NULL,
    message     TEXT NOT NULL,
    status      TEXT NOT NULL,
    created_at  TIMESTAMPTZ NOT NULL
);
`

// Child tables first so a future foreign key would not block the wipe.
var tables = []string{"notification_log", "sales", "customers", "inventory_items", "recipes", "products"}

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.DB.ExecContext(ctx, Schema)
	return err
}

func (r *PGRepository) Save(ctx context.Context, snap *snapshot.Snapshot) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range tables {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	inserts := []struct {
		table string
		query string
		rows  []interface{}
	}{
		{"products", `INSERT INTO products (id, name, image_url, markup, is_active, created_at, updated_at)
            VALUES (:id, :name, :image_url, :markup, :is_active, :created_at, :updated_at)`, rowsOf(snap.Products)},
		{"recipes", `INSERT INTO recipes (product_id, ingredients) VALUES (:product_id, :ingredients)`, rowsOf(snap.Recipes)},
		{"inventory_items", `INSERT INTO inventory_items (id, name, unit, quantity, reorder_level, cost_per_unit, updated_at)
            VALUES (:id, :name, :unit, :quantity, :reorder_level, :cost_per_unit, :updated_at)`, rowsOf(snap.Items)},
		{"customers", `INSERT INTO customers (id, name, phone, created_at, updated_at)
            VALUES (:id, :name, :phone, :created_at, :updated_at)`, rowsOf(snap.Customers)},
		{"sales", `INSERT INTO sales (id, product_id, quantity, price_each, total, payment_mode, customer_id, created_at)
            VALUES (:id, :product_id, :quantity, :price_each, :total, :payment_mode, :customer_id, :created_at)`, rowsOf(snap.Sales)},
		{"notification_log", `INSERT INTO notification_log (id, recipient, template_id, template, message, status, created_at)
            VALUES (:id, :recipient, :template_id, :template, :message, :status, :created_at)`, rowsOf(snap.Notifications)},
	}

	for _, ins := range inserts {
		for _, row := range ins.rows {
			if _, err := tx.NamedExecContext(ctx, ins.query, row); err != nil {
				return fmt.Errorf("failed to insert into %s: %w", ins.table, err)
			}
		}
	}

	return tx.Commit()
}

func (r *PGRepository) Load(ctx context.Context) (*snapshot.Snapshot, error) {
	snap := &snapshot.Snapshot{}

	selects := []struct {
		dest  interface{}
		query string
	}{
		{&snap.Products, `SELECT id, name, image_url, markup, is_active, created_at, updated_at FROM products ORDER BY created_at, id`},
		{&snap.Recipes, `SELECT product_id, ingredients FROM recipes ORDER BY product_id`},
		{&snap.Items, `SELECT id, name, unit, quantity, reorder_level, cost_per_unit, updated_at FROM inventory_items ORDER BY id`},
		{&snap.Customers, `SELECT id, name, phone, created_at, updated_at FROM customers ORDER BY created_at, id`},
		{&snap.Sales, `SELECT id, product_id, quantity, price_each, total, payment_mode, customer_id, created_at FROM sales ORDER BY created_at DESC`},
		{&snap.Notifications, `SELECT id, recipient, template_id, template, message, status, created_at FROM notification_log ORDER BY created_at DESC`},
	}

	for _, sel := range selects {
		if err := r.DB.SelectContext(ctx, sel.dest, sel.query); err != nil {
			return nil, err
		}
	}
	return snap, nil
}

func rowsOf[T any](items []T) []interface{} {
	rows := make([]interface{}, len(items))
	for i := range items {
		rows[i] = &items[i]
	}
	return rows
}

var _ snapshot.Repository = (*PGRepository)(nil)
