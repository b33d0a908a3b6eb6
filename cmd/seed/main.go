// seed crea (o actualiza) el usuario compartido del dashboard con la
// contraseña hasheada con bcrypt.
//
// Uso: go run ./cmd/seed -username admin -password <secreto>
// También lee SEED_USERNAME / SEED_PASSWORD si no se pasan flags.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/sushiymas/inventario-api/internal/infrastructure/postgres"
	"github.com/sushiymas/inventario-api/pkg/config"
)

func main() {
	username := flag.String("username", os.Getenv("SEED_USERNAME"), "usuario compartido")
	password := flag.String("password", os.Getenv("SEED_PASSWORD"), "contraseña en claro (se almacena el hash)")
	flag.Parse()

	if *username == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "username y password son requeridos")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Hashear contraseña: %v\n", err)
		os.Exit(1)
	}

	// Upsert por username: re-ejecutar el seed rota la contraseña sin
	// duplicar la fila del usuario compartido.
	_, err = pool.Exec(ctx, `
		INSERT INTO users (id, username, password_hash, created_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (username) DO UPDATE SET password_hash = EXCLUDED.password_hash
	`, uuid.New().String(), *username, string(hash))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Insertar usuario: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Usuario %q listo\n", *username)
}
