package main

import (
	"flag"
	"log"

	"BinDay/internal/database"
	"BinDay/internal/server"
	"BinDay/pkg/config"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	configPath := flag.String("config", "config.yml", "Path to config file")
	flag.Parse()

	cfg := config.LoadConfig(*configPath)

	// The server reads the same run journal the pipeline writes.
	repo := database.InitDB(cfg.Database.Path)
	defer repo.Close()

	log.Println("Starting collections API server...")
	server.Start(repo, cfg)
}
