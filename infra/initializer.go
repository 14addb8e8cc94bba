package infra

import (
	"log"

	"github.com/joho/godotenv"
)

// Initialize zapロガー生成前に呼ばれるため標準のlogを使う
func Initialize() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using environment variables")
	}
}
