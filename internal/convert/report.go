// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"
)

// Report is the on-disk summary of a batch run.
type Report struct {
	Dirs      []string    `yaml:"dirs"`
	Result    BatchResult `yaml:"result"`
	Timestamp time.Time   `yaml:"timestamp"`
}

// WriteReport saves a YAML summary of result to path.
func WriteReport(path string, dirs []string, result BatchResult) error {
	rep := Report{
		Dirs:      dirs,
		Result:    result,
		Timestamp: time.Now().UTC(),
	}
	data, err := yaml.Marshal(&rep)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing report %s: %w", path, err)
	}
	return nil
}
