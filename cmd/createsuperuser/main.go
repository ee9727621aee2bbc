package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/Bobur2828/Technical-assignment/internal/repo/persistent"
	"github.com/Bobur2828/Technical-assignment/internal/usecase"
	"github.com/Bobur2828/Technical-assignment/pkg/config"
	"github.com/Bobur2828/Technical-assignment/pkg/database"
	"github.com/Bobur2828/Technical-assignment/pkg/logger"
)

func main() {
	var (
		email       = flag.String("email", "", "email of the superuser")
		password    = flag.String("password", "", "password of the superuser")
		firstName   = flag.String("first-name", "", "first name of the superuser")
		isStaff     = flag.Bool("staff", true, "staff flag (must stay true)")
		isSuperuser = flag.Bool("superuser", true, "superuser flag (must stay true)")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	userRepo := persistent.NewUserRepository(db)
	userUseCase := usecase.NewUserUseCase(userRepo, logger.New())

	user, err := userUseCase.CreateSuperuser(*firstName, *email, *password, *isStaff, *isSuperuser)
	if err != nil {
		log.Fatalf("Failed to create superuser: %v", err)
	}

	fmt.Printf("Superuser %s created with role %s\n", user.Email, user.Role)
}
