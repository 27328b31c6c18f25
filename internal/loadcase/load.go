package loadcase

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadFromFile loads a load case definition from a JSON file
func LoadFromFile(filepath string) (*LoadCase, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes and validates a load case from JSON
func Parse(data []byte) (*LoadCase, error) {
	var lc LoadCase
	if err := json.Unmarshal(data, &lc); err != nil {
		return nil, fmt.Errorf("parsing load case: %w", err)
	}

	if err := lc.Validate(); err != nil {
		return nil, err
	}

	return &lc, nil
}
