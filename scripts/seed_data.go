//go:build ignore

// Seeds a data directory with the built-in fixture collections so they can
// be edited as plain JSON files. Usage: go run scripts/seed_data.go -dir ./data
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/nuibaden/tourism-service/internal/fixture"
)

func main() {
	dir := flag.String("dir", "./data", "target data directory")
	flag.Parse()

	if err := os.MkdirAll(*dir, 0o755); err != nil {
		log.Fatalf("create %s: %v", *dir, err)
	}

	set := fixture.Default()
	collections := map[string]interface{}{
		"poi":         set.POIs,
		"activities":  set.Activities,
		"services":    set.Services,
		"events":      set.Events,
		"tours":       set.Tours,
		"restaurants": set.Restaurants,
	}

	for name, data := range collections {
		body, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			log.Fatalf("marshal %s: %v", name, err)
		}
		path := filepath.Join(*dir, name+".json")
		if err := os.WriteFile(path, body, 0o644); err != nil {
			log.Fatalf("write %s: %v", path, err)
		}
		fmt.Printf("wrote %s\n", path)
	}
}
