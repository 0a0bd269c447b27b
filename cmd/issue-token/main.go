// Command issue-token prints a bearer token for the API write endpoints.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"review-requester/config"
	"review-requester/middleware"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	settings := config.LoadSettings()

	var (
		subject string
		name    string
		hours   int
	)

	flag.StringVar(&subject, "subject", "", "token subject, e.g. the calling service (required)")
	flag.StringVar(&name, "name", "", "display name stored in the token")
	flag.IntVar(&hours, "hours", settings.JWTExpireHours, "token lifetime in hours")
	flag.Parse()

	if settings.JWTSecret == "" {
		log.Fatal("API_JWT_SECRET is not set")
	}
	if subject == "" {
		log.Fatal("-subject is required")
	}
	if hours <= 0 {
		log.Fatal("hours must be greater than 0")
	}

	token, err := middleware.GenerateToken(settings.JWTSecret, subject, name, time.Duration(hours)*time.Hour)
	if err != nil {
		log.Fatalf("generate token: %v", err)
	}
	fmt.Println(token)
}
