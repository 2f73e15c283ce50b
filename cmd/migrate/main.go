package main

import (
	"context"
	"flag"
	"log"
	"time"

	"fct_backend/internals/configs"
	database "fct_backend/internals/databases"
	"fct_backend/internals/seeds"
)

func main() {
	seedDir := flag.String("seed", "", "directory with families.json, workshops.json, internships.json")
	flag.Parse()

	cfg := configs.Load()
	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("❌ Gagal konek DB: %v", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Printf("db close err: %v", err)
		}
	}()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("❌ Migrasi gagal: %v", err)
	}

	if *seedDir == "" {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	if err := seeds.RunAllSeeds(ctx, db, *seedDir); err != nil {
		log.Fatalf("❌ Seed gagal: %v", err)
	}
	log.Println("✅ Seed selesai")
}
