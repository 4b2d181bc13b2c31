package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"mini-market/internal/model"
)

// Creates sample rule catalogs for local development.
// catalog.json holds the standard price list; promo_catalog.json holds a
// discounted list for trialling rule substitution.
func main() {
	dataDir := "data/rules"

	// Create directory if it doesn't exist
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	catalogs := map[string]model.RuleCatalog{
		"catalog.json": {
			Rules: []model.RuleConfig{
				{Type: model.RuleTypeFlat, Product: "A", UnitCost: 20},
				{Type: model.RuleTypeBundle, Product: "B", LoneCost: 50, BundleSize: 5, BundleCost: 150},
				{Type: model.RuleTypeFlat, Product: "C", UnitCost: 30},
			},
		},
		"promo_catalog.json": {
			Rules: []model.RuleConfig{
				{Type: model.RuleTypeFlat, Product: "A", UnitCost: 20},
				{Type: model.RuleTypeBundle, Product: "B", LoneCost: 40, BundleSize: 3, BundleCost: 100},
				{Type: model.RuleTypeFlat, Product: "C", UnitCost: 25},
			},
		},
	}

	for filename, catalog := range catalogs {
		filePath := filepath.Join(dataDir, filename)

		if err := writeCatalogFile(filePath, catalog); err != nil {
			log.Fatalf("Failed to create %s: %v", filename, err)
		}

		fmt.Printf("Created %s with %d rules\n", filePath, len(catalog.Rules))
	}

	fmt.Println("\nSample rule catalogs created successfully!")
	fmt.Println("\nStandard catalog (catalog.json):")
	fmt.Println("  - A: 20 each")
	fmt.Println("  - B: 50 each, 5 for 150")
	fmt.Println("  - C: 30 each")
	fmt.Println("\nPromotional catalog (promo_catalog.json):")
	fmt.Println("  - A: 20 each")
	fmt.Println("  - B: 40 each, 3 for 100")
	fmt.Println("  - C: 25 each")
}

func writeCatalogFile(filePath string, catalog model.RuleCatalog) error {
	data, err := json.MarshalIndent(catalog, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal catalog: %w", err)
	}

	if err := os.WriteFile(filePath, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}
