// Siembra productos de demostración en el catálogo para probar el motor de
// almacén en local. El catálogo es propiedad de otro módulo: este seeder
// simula sus altas, no forma parte del motor.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/soundwave-studio/almacen/internal/infrastructure/postgres"
	"github.com/soundwave-studio/almacen/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		os.Exit(1)
	}

	if err := postgres.RunMigrations(cfg.DB.ConnectionString(), "migrations"); err != nil {
		fmt.Fprintln(os.Stderr, "migraciones:", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintln(os.Stderr, "conexión a PostgreSQL:", err)
		os.Exit(1)
	}
	defer pool.Close()

	type seedProduct struct {
		id       string
		code     string
		name     string
		category string
		price    float64
	}
	// IDs fijos para que re-ejecutar el seeder no duplique productos.
	demo := []seedProduct{
		{"demo-cav-001", "CAV-001", "Cavi XLR 3m", "cavi", 12.50},
		{"demo-cav-002", "CAV-002", "Cavi Jack 6.3mm", "cavi", 9.90},
		{"demo-cuf-001", "CUF-001", "Cuffie da studio", "cuffie", 79.00},
		{"demo-mic-001", "MIC-001", "Microfono dinamico", "microfoni", 99.00},
		{"demo-acc-001", "ACC-001", "Aste microfoniche", "accessori", 24.90},
	}

	now := time.Now()
	for _, p := range demo {
		_, err := pool.Exec(ctx, `
			INSERT INTO catalog_products (id, code, name, category, sell_price, active, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, TRUE, $6, $6)
			ON CONFLICT (id) DO NOTHING`,
			p.id, p.code, p.name, p.category,
			decimal.NewFromFloat(p.price), now,
		)
		if err != nil {
			fmt.Fprintln(os.Stderr, "sembrar producto:", err)
			os.Exit(1)
		}
	}
	fmt.Printf("catálogo sembrado: %d productos\n", len(demo))
}
