package compliance_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macizomedia/editorBot/internal/compliance"
	"github.com/macizomedia/editorBot/pkg/domain"
)

func script(beats ...domain.Beat) *domain.Script {
	return &domain.Script{Beats: beats, StructureType: "explainer"}
}

func beat(role string, seconds float64) domain.Beat {
	return domain.Beat{Text: "t", Role: role, DurationSeconds: seconds}
}

func template(enforcement domain.Enforcement) *domain.TemplateSpec {
	return &domain.TemplateSpec{
		ID:             "tpl",
		DurationBounds: domain.DurationBounds{Min: 10, Target: 20, Max: 30},
		StructureType:  "explainer",
		BeatCount:      domain.BeatCountBounds{Min: 2, Max: 4},
		RequiredRoles:  []string{"hook"},
		ForbiddenRoles: []string{"cta"},
		Enforcement:    enforcement,
	}
}

func TestValidate_CompliantScript(t *testing.T) {
	s := script(beat("hook", 5), beat("argument", 5), beat("conclusion", 5))

	result := compliance.Validate(s, template(domain.EnforcementStrict))

	assert.True(t, result.OK)
	assert.Empty(t, result.FatalErrors)
	assert.Empty(t, result.Warnings)
}

func TestValidate_StrictViolationsAreFatal(t *testing.T) {
	// 8s total (below min), missing hook, forbidden cta, one beat too few.
	s := script(beat("cta", 8))

	result := compliance.Validate(s, template(domain.EnforcementStrict))

	assert.False(t, result.OK)
	assert.Len(t, result.FatalErrors, 4, "every violated rule reports separately: %v", result.FatalErrors)
	assert.Empty(t, result.Warnings)
}

func TestValidate_FlexibleViolationsAreWarnings(t *testing.T) {
	s := script(beat("cta", 8))

	result := compliance.Validate(s, template(domain.EnforcementFlexible))

	assert.True(t, result.OK, "flexible enforcement never blocks")
	assert.Empty(t, result.FatalErrors)
	assert.Len(t, result.Warnings, 4)
}

func TestValidate_TargetExceededIsAdvisoryEvenWhenStrict(t *testing.T) {
	// 25s: above the 20s target, inside the 30s max.
	s := script(beat("hook", 12), beat("conclusion", 13))

	result := compliance.Validate(s, template(domain.EnforcementStrict))

	assert.True(t, result.OK)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "target")
}

func TestValidate_DurationBoundaries(t *testing.T) {
	tpl := template(domain.EnforcementStrict)

	t.Run("exactly at min", func(t *testing.T) {
		s := script(beat("hook", 4), beat("argument", 6))
		assert.True(t, compliance.Validate(s, tpl).OK)
	})

	t.Run("exactly at max", func(t *testing.T) {
		s := script(beat("hook", 15), beat("argument", 15))
		result := compliance.Validate(s, tpl)
		assert.True(t, result.OK)
	})

	t.Run("above max", func(t *testing.T) {
		s := script(beat("hook", 15), beat("argument", 16))
		result := compliance.Validate(s, tpl)
		assert.False(t, result.OK)
		require.NotEmpty(t, result.FatalErrors)
		assert.Contains(t, result.FatalErrors[0], "maximum")
	})
}

func TestValidate_BeatCountBounds(t *testing.T) {
	tpl := template(domain.EnforcementStrict)

	s := script(beat("hook", 3), beat("argument", 3), beat("argument", 3), beat("argument", 3), beat("argument", 3))
	result := compliance.Validate(s, tpl)

	assert.False(t, result.OK)
	found := false
	for _, msg := range result.FatalErrors {
		if strings.HasPrefix(msg, "beat count") {
			found = true
		}
	}
	assert.True(t, found, "expected a beat count finding in %v", result.FatalErrors)
}

func TestValidate_StructureMismatch(t *testing.T) {
	s := script(beat("hook", 5), beat("conclusion", 5))
	s.StructureType = "monologue"

	result := compliance.Validate(s, template(domain.EnforcementStrict))

	assert.False(t, result.OK)
}

func TestValidate_NoStructureDeclaredSkipsCheck(t *testing.T) {
	tpl := template(domain.EnforcementStrict)
	tpl.StructureType = ""

	s := script(beat("hook", 5), beat("conclusion", 5))
	s.StructureType = "monologue"

	assert.True(t, compliance.Validate(s, tpl).OK)
}
