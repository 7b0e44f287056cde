package main

import (
	"flag"
	"log"

	"BinDay/internal/app"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	task := flag.String("task", "run", "Task to run: run or latest")
	configPath := flag.String("config", "config.yml", "Path to config file")
	flag.Parse()

	application := app.New(*configPath)
	defer application.Repo.Close()

	log.Printf("BinDay %s, running task: %s", app.Version, *task)

	switch *task {
	case "run":
		// The nightly job: scrape, extract, normalize, display.
		application.RunPipeline()

	case "latest":
		// Show the last recorded result without touching the council site.
		application.ShowLatest()

	default:
		log.Fatalf("Unknown task: %s.", *task)
	}
}
