// Package compliance checks a drafted script against a template's declared
// constraints. Every violated rule produces its own message (no
// deduplication); under strict enforcement findings are fatal, under
// flexible enforcement the same findings are warnings and the user may
// proceed regardless.
package compliance

import (
	"fmt"

	"github.com/macizomedia/editorBot/pkg/domain"
)

// Validate runs all template rules against the script. It is a pure
// function: no I/O, no mutation of its inputs.
func Validate(script *domain.Script, template *domain.TemplateSpec) *domain.ValidationResult {
	result := domain.NewValidationResult()

	report := result.AddWarning
	if template.Strict() {
		report = result.AddError
	}

	// 1. Total duration within bounds.
	duration := script.TotalDuration()
	bounds := template.DurationBounds
	switch {
	case duration < bounds.Min:
		report(fmt.Sprintf("duration %.1fs is below the minimum %.1fs", duration, bounds.Min))
	case duration > bounds.Max:
		report(fmt.Sprintf("duration %.1fs exceeds the maximum %.1fs", duration, bounds.Max))
	case bounds.Target > 0 && duration > bounds.Target:
		// Above target but within max is advisory regardless of enforcement.
		result.AddWarning(fmt.Sprintf("duration %.1fs exceeds the target %.1fs", duration, bounds.Target))
	}

	// 2. Structure type, when the template declares one.
	if template.StructureType != "" && script.StructureType != template.StructureType {
		report(fmt.Sprintf("structure type %q does not match template structure %q",
			script.StructureType, template.StructureType))
	}

	// 3. Beat count within bounds.
	count := len(script.Beats)
	if count < template.BeatCount.Min {
		report(fmt.Sprintf("beat count %d is below the minimum %d", count, template.BeatCount.Min))
	} else if count > template.BeatCount.Max {
		report(fmt.Sprintf("beat count %d exceeds the maximum %d", count, template.BeatCount.Max))
	}

	// 4. Required roles all present.
	roles := script.Roles()
	for _, required := range template.RequiredRoles {
		if !roles[required] {
			report(fmt.Sprintf("missing required beat role %q", required))
		}
	}

	// 5. No forbidden roles present.
	for _, forbidden := range template.ForbiddenRoles {
		if roles[forbidden] {
			report(fmt.Sprintf("forbidden beat role %q is present", forbidden))
		}
	}

	return result
}
