package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"sitecms_be/config"
	"sitecms_be/routes"
)

func main() {
	mongoDB, err := config.ConnectMongo()
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	fmt.Println("Successfully connected to MongoDB!")

	pgDB, err := config.ConnectPostgres()
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	fmt.Println("Successfully connected to PostgreSQL!")

	router := routes.InitializeRoutes(mongoDB, pgDB)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	fmt.Printf("Server is running on port %s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
