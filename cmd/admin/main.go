// Command admin creates or updates the administrator account. Idempotent:
// re-running with the same email overwrites credentials, name and birth
// date and forces role ADMIN. This is the only path that assigns ADMIN.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/mkravets/userhub/config"
	"github.com/mkravets/userhub/internal/application"
	pginfra "github.com/mkravets/userhub/internal/infrastructure/postgres"
	"github.com/mkravets/userhub/pkg/validation"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	validation.SetBirthDateBounds(cfg.MinBirthYear, cfg.MinAge)

	email := flag.String("email", cfg.AdminEmail, "admin email (or ADMIN_EMAIL)")
	password := flag.String("password", cfg.AdminPassword, "admin password (or ADMIN_PASSWORD)")
	name := flag.String("name", cfg.AdminName, "admin full name (or ADMIN_NAME)")
	birthDate := flag.String("birth-date", cfg.AdminBirthDate, "admin birth date, YYYY-MM-DD (or ADMIN_BIRTH_DATE)")
	flag.Parse()

	if *email == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "email and password are required")
		flag.Usage()
		os.Exit(1)
	}
	v := validator.New()
	if err := v.Var(*email, "required,email"); err != nil {
		log.Fatalf("invalid email: %s", *email)
	}
	if len(*password) < 6 {
		log.Fatal("password must be at least 6 characters")
	}
	birth, err := validation.ParseBirthDate(*birthDate)
	if err != nil {
		log.Fatalf("invalid birth date %q: %v", *birthDate, err)
	}

	ctx := context.Background()
	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	svc := application.NewAdminService(pginfra.NewUserRepository(pool))
	user, created, err := svc.UpsertAdmin(ctx, application.AdminParams{
		Email:     *email,
		Password:  *password,
		FullName:  *name,
		BirthDate: birth,
	})
	if err != nil {
		log.Fatalf("failed to upsert admin: %v", err)
	}

	if created {
		fmt.Println("admin created")
	} else {
		fmt.Println("admin updated (already existed)")
	}
	fmt.Printf("id=%s email=%s role=%s active=%t\n", user.ID, user.Email, user.Role, user.IsActive)
}
