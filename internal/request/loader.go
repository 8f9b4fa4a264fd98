package request

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tejusbharadwaj/bemcost/internal/models"
)

// LoadUsage reads a usage record from a YAML or JSON file:
//
//	consumption.electricity: [820, 790, 640]
func LoadUsage(path string) (models.UsageRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading usage file: %w", err)
	}

	var usage models.UsageRecord
	if err := yaml.Unmarshal(data, &usage); err != nil {
		return nil, fmt.Errorf("parsing usage file: %w", err)
	}
	if len(usage) == 0 {
		return nil, fmt.Errorf("%w: usage file %s has no variables", ErrInvalidRequest, path)
	}

	return usage, nil
}
