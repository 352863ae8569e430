// Command mint-token prints a signed access token for the given owner ID.
// Useful for local development and smoke tests against a running server.
//
// Usage: mint-token -owner <id> [-ttl 15m]
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/heartmarshall/mynotes-backend/internal/auth"
	"github.com/heartmarshall/mynotes-backend/internal/config"
)

func main() {
	_ = godotenv.Load()

	owner := flag.String("owner", "", "owner ID to embed as the token subject")
	ttl := flag.Duration("ttl", 0, "token lifetime (defaults to the configured TTL)")
	flag.Parse()

	if *owner == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	lifetime := cfg.Auth.AccessTokenTTL
	if *ttl > 0 {
		lifetime = *ttl
	}

	manager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, lifetime)

	token, err := manager.GenerateAccessToken(*owner)
	if err != nil {
		log.Fatalf("generate token: %v", err)
	}

	fmt.Println(token)
}
