package reporter

import (
	"encoding/json"
	"fmt"
)

// renderJSON renders any report as indented JSON. The models carry their own
// json tags, so no intermediate structs are needed.
func renderJSON(report any) (string, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal report: %w", err)
	}
	return string(data) + "\n", nil
}
