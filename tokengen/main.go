package main

import (
	"flag"
	"fmt"
	"log"
	"time"
	"worker-management/constants"
	"worker-management/infra"
	"worker-management/services"
)

// ローカル確認用にSECRET_KEYで署名したトークンを出力する
//
//	go run ./tokengen -role ADMIN
func main() {
	role := flag.String("role", constants.RoleAdmin, "role claim (ADMIN or USER)")
	userID := flag.Int("user", 0, "subject user id")
	email := flag.String("email", "", "email claim")
	ttl := flag.Duration("ttl", time.Hour, "token lifetime")
	flag.Parse()

	cfg, err := infra.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Auth.SecretKey == "" {
		log.Fatal("SECRET_KEY is not set")
	}

	token, err := services.CreateToken(cfg.Auth.SecretKey, *userID, *email, *role, *ttl)
	if err != nil {
		log.Fatalf("Failed to sign token: %v", err)
	}
	fmt.Println(token)
}
