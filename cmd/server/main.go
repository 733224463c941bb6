// Package main provides the phase-curve API HTTP server.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	httpHandler "github.com/exoclimes/phasecurve-api/internal/http"
	"github.com/exoclimes/phasecurve-api/internal/usecase"
)

const version = "0.1.0"

func main() {
	// Parse command-line flags.
	showHelp := flag.Bool("help", false, "Show usage information")
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *showHelp {
		printUsage()
		return
	}

	if *showVersion {
		fmt.Printf("phasecurve-api version %s\n", version)
		return
	}

	// Load configuration from environment.
	port := getEnv("PORT", "8080")
	smoothingStr := getEnv("RBF_SMOOTHING", "")

	smoothing := 0.0
	if smoothingStr != "" {
		var err error
		smoothing, err = strconv.ParseFloat(smoothingStr, 64)
		if err != nil || smoothing < 0 {
			log.Fatalf("Invalid RBF_SMOOTHING value: %s", smoothingStr)
		}
	}

	log.Printf("Starting phase-curve API server...")
	log.Printf("Port: %s", port)
	if smoothing > 0 {
		log.Printf("RBF smoothing: %g", smoothing)
	}

	// Initialize use case.
	computeUC := usecase.NewComputeUseCase(smoothing)

	// Setup router.
	router := httpHandler.SetupRouter(computeUC)

	// Start server.
	addr := fmt.Sprintf(":%s", port)
	log.Printf("Server listening on %s", addr)
	log.Printf("Health check: http://localhost:%s/health", port)
	log.Printf("API endpoints:")
	log.Printf("  - POST /v1/phasecurve")
	log.Printf("  - GET /v1/quadrature")

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// printUsage prints usage information.
func printUsage() {
	fmt.Printf("Phase-curve API Server v%s\n\n", version)
	fmt.Println("USAGE:")
	fmt.Println("  phasecurve-api [flags]")
	fmt.Println()
	fmt.Println("FLAGS:")
	fmt.Println("  -help          Show this help message")
	fmt.Println("  -version       Show version information")
	fmt.Println()
	fmt.Println("ENVIRONMENT VARIABLES:")
	fmt.Println("  PORT                    Server port (default: 8080)")
	fmt.Println("  RBF_SMOOTHING           Interpolation smoothing parameter (default: 0.1)")
	fmt.Println("  CORS_ALLOWED_ORIGINS    Comma-separated list of allowed origins (default: all origins)")
	fmt.Println()
	fmt.Println("API ENDPOINTS:")
	fmt.Println("  GET  /health            Health check")
	fmt.Println("  GET  /v1/quadrature     Describe the hemisphere quadrature grid")
	fmt.Println("  POST /v1/phasecurve     Compute a phase curve from surface samples")
	fmt.Println()
}
