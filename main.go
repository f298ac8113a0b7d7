package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"inkwell/app/routes"
	"inkwell/config"

	"github.com/dgraph-io/badger/v4"
)

const cliVersion = "1.0.0"

func main() {
	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	cmd := strings.ToLower(os.Args[1])
	switch cmd {
	case "help":
		printHelp()
	case "version":
		fmt.Printf("inkwell version %s\n", cliVersion)
	case "serve":
		serve()
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	helpText := `Usage: inkwell <command> [options]
Commands:
  help                           Display this help message.
  version                        Show version information.
  serve [--config <path>]        Run the blog service.
`
	fmt.Println(helpText)
}

// serve opens the Badger store and runs the blog service until the process
// is stopped.
func serve() {
	configPath := config.GetConfigPath()
	for i, arg := range os.Args {
		if arg == "--config" && i+1 < len(os.Args) {
			configPath = os.Args[i+1]
			break
		}
	}

	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	opts := badger.DefaultOptions(cfg.Server.DBPath)
	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open Badger DB: %v", err)
	}
	defer db.Close()

	router := routes.SetupRoutes(db, cfg)

	// Serve static assets for the web views.
	router.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))

	log.Printf("Starting blog service on %s", cfg.Server.Addr)
	if err := routes.StartServer(cfg.Server.Addr, router); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
