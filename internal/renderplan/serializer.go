package renderplan

import (
	"encoding/json"
	"fmt"

	"github.com/macizomedia/editorBot/pkg/domain"
)

// Document serializes a plan into the self-contained JSON document the
// render engine consumes. Field names are stable; the output is suitable
// for storage and replay.
func Document(plan *domain.RenderPlan) ([]byte, error) {
	if plan == nil {
		return nil, fmt.Errorf("cannot serialize a nil render plan")
	}
	return json.MarshalIndent(plan, "", "  ")
}

// Export validates and serializes in one step. It refuses to produce a
// document for a plan carrying fatal errors, which is the caller's last
// line of defense before the render engine boundary.
func Export(plan *domain.RenderPlan) ([]byte, error) {
	result := Validate(plan)
	if !result.OK {
		return nil, fmt.Errorf("render plan failed validation: %s", result.ErrorSummary())
	}
	return Document(plan)
}

// Parse reads a serialized plan document back into memory, for the dry-run
// validation CLI path.
func Parse(data []byte) (*domain.RenderPlan, error) {
	var plan domain.RenderPlan
	if err := json.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("malformed render plan document: %w", err)
	}
	return &plan, nil
}
