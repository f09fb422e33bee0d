package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"realestate/server/internal/models"
)

// LoadSeedProperties reads a JSON array of properties from path
func LoadSeedProperties(path string) ([]models.Property, error) {
	// Get absolute path to seed file
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var properties []models.Property
	if err := json.Unmarshal(data, &properties); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}

	for i := range properties {
		// IDs are assigned by the store
		properties[i].ID = 0
	}
	return properties, nil
}
