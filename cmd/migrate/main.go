package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Empleados-api/pkg/config"
	"github.com/joho/godotenv"
)

// Aplica en orden los .sql de migrations/ contra la DB configurada.
// Uso: go run ./cmd/migrate [directorio]
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("cargar configuración: %v\n", err)
		os.Exit(1)
	}

	dir := "migrations"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil || len(files) == 0 {
		fmt.Printf("no hay migraciones en %s\n", dir)
		os.Exit(1)
	}
	sort.Strings(files)

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.DB.ConnectionString())
	if err != nil {
		fmt.Printf("conexión a la DB: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	for _, f := range files {
		sqlBytes, err := os.ReadFile(f)
		if err != nil {
			fmt.Printf("leer %s: %v\n", f, err)
			os.Exit(1)
		}
		if _, err := pool.Exec(ctx, string(sqlBytes)); err != nil {
			fmt.Printf("aplicar %s: %v\n", f, err)
			os.Exit(1)
		}
		fmt.Printf("aplicada %s\n", f)
	}
	fmt.Println("migraciones completas")
}
