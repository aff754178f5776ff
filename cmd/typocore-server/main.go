// Command typocore-server provides an HTTP REST API for character-level
// typo analysis.
//
// Usage:
//
//	typocore-server -p 8080
//	typocore-server -p 8080 -config config.yaml
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gotypo/typocore/internal/config"
	"github.com/gotypo/typocore/typocore"
)

func main() {
	port := flag.String("p", envOr("PORT", "8080"), "port to listen on")
	configFile := flag.String("config", envOr("CONFIG_FILE", ""), "YAML config file (compliance thresholds, letter-case policy)")
	flag.Parse()

	cfg := config.Config{}
	if *configFile != "" {
		var err error
		cfg, err = config.LoadYAMLFile(*configFile)
		if err != nil {
			log.Fatalf("config load failed: %v", err)
		}
		log.Printf("   config  : %s\n", *configFile)
	}

	http.HandleFunc("/v1/analyze", typocore.AnalyzeHandler(cfg))
	http.HandleFunc("/health", typocore.HealthHandler)
	http.HandleFunc("/openapi.json", typocore.OpenAPIHandler)
	http.HandleFunc("/", typocore.DocsHandler)

	addr := fmt.Sprintf(":%s", *port)
	log.Printf("typocore server listening on http://localhost:%s\n", *port)
	log.Printf("   POST http://localhost:%s/v1/analyze\n", *port)
	log.Printf("   GET  http://localhost:%s/health\n", *port)
	log.Printf("   GET  http://localhost:%s/       (Redoc UI)\n", *port)
	log.Fatal(http.ListenAndServe(addr, nil))
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
