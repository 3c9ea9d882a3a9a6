package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"dsr-service/internal/domain/entity"
	"dsr-service/internal/infrastructure/auth"
	"dsr-service/internal/infrastructure/config"
	"dsr-service/internal/usecase"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Prints an access token for scripting against the API, or a password hash
// for seeding the users collection.
//
//	go run ./cmd/utils -user ops -role Admin
//	go run ./cmd/utils -hash 's3cret'
func main() {
	username := flag.String("user", "", "username to put in the token")
	role := flag.String("role", "User", "role to put in the token")
	userID := flag.String("id", "", "user id (hex ObjectID); random when empty")
	hash := flag.String("hash", "", "print the bcrypt hash of this password and exit")
	flag.Parse()

	if *hash != "" {
		h, err := usecase.HashPassword(*hash)
		if err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}
		fmt.Println(h)
		return
	}

	if *username == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.JWTAccessSecret == "" || cfg.JWTRefreshSecret == "" {
		log.Fatal("JWT_ACCESS_SECRET and JWT_REFRESH_SECRET must be set")
	}

	id := primitive.NewObjectID()
	if *userID != "" {
		if id, err = primitive.ObjectIDFromHex(*userID); err != nil {
			log.Fatalf("Invalid user id: %v", err)
		}
	}

	issuer := auth.NewTokenIssuer(cfg.JWTAccessSecret, cfg.JWTRefreshSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	pair, err := issuer.Issue(&entity.User{ID: id, Username: *username, Role: *role})
	if err != nil {
		log.Fatalf("Failed to issue token: %v", err)
	}

	fmt.Printf("\nAccess Token (valid %s):\n%s\n\n", cfg.AccessTokenTTL, pair.AccessToken)
}
