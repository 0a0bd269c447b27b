// Command seed loads the language list and reviewer roster into the database.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"review-requester/config"
	"review-requester/services"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	settings := config.LoadSettings()

	var (
		file   string
		domain string
		dryRun bool
	)

	flag.StringVar(&file, "file", settings.SeedFile, "YAML seed file (defaults to the embedded roster)")
	flag.StringVar(&domain, "domain", settings.EmailDomain, "email domain for derived reviewer addresses")
	flag.BoolVar(&dryRun, "dry-run", false, "parse and print the seed data without touching the database")
	flag.Parse()

	data, err := config.LoadSeedData(file)
	if err != nil {
		log.Fatalf("load seed data: %v", err)
	}

	if dryRun {
		fmt.Printf("Languages: %d, reviewers: %d\n", len(data.Languages), len(data.Reviewers))
		fmt.Println("Dry run complete. No database changes were made.")
		return
	}

	config.InitDB(settings)

	summary, err := services.NewSeedService(nil, domain).Seed(context.Background(), data)
	if err != nil {
		log.Fatalf("seed failed: %v", err)
	}

	fmt.Printf("Languages created: %d, skipped: %d\n", summary.LanguagesCreated, summary.LanguagesSkipped)
	fmt.Printf("Reviewers created: %d, skipped: %d\n", summary.ReviewersCreated, summary.ReviewersSkipped)
}
