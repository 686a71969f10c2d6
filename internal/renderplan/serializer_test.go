package renderplan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macizomedia/editorBot/internal/renderplan"
)

func TestExport_RoundTrip(t *testing.T) {
	plan := validPlan(t)

	doc, err := renderplan.Export(plan)
	require.NoError(t, err)

	parsed, err := renderplan.Parse(doc)
	require.NoError(t, err)
	assert.Equal(t, plan, parsed)
}

func TestExport_RefusesFatalPlans(t *testing.T) {
	plan := validPlan(t)
	plan.Scenes = nil

	_, err := renderplan.Export(plan)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no_scenes")
}

func TestParse_RejectsMalformedDocuments(t *testing.T) {
	_, err := renderplan.Parse([]byte("{not json"))
	assert.Error(t, err)
}

func TestDocument_NilPlan(t *testing.T) {
	_, err := renderplan.Document(nil)
	assert.Error(t, err)
}
