// Command opticsd runs the HTTP demo server for the ray tracing engine.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/QPG-MIT/optiverse-sub001/internal/httpapi"
)

func main() {
	port := flag.Int("port", 8080, "Port to listen on")
	flag.Parse()

	server := httpapi.NewServer(*port)
	if err := server.Start(); err != nil {
		fmt.Printf("Server error: %v\n", err)
		os.Exit(1)
	}
}
