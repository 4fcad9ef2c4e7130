// file: main.go
package main

import (
	"log"
	"os"

	"github.com/stansam/EduSafaris-sub001/database"
	"github.com/stansam/EduSafaris-sub001/routes"
)

func main() {
	database.Connect()
	database.InitRedis()

	if os.Getenv("AUTO_MIGRATE") == "1" {
		database.MigrateTables()
	}

	r := routes.SetupRouter()

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	log.Println("Starting server on", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
