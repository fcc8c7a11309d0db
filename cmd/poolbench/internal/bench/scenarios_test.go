package bench

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunAll(t *testing.T) {
	results, err := Run("")
	require.NoError(t, err)
	assert.Len(t, results, 4)
	for _, r := range results {
		assert.True(t, r.Passed, "%s: %s", r.Name, r.Detail)
	}
}

func TestRunUnknownScenario(t *testing.T) {
	_, err := Run("nonexistent")
	assert.Error(t, err)
}

func TestRunOnlyFiltersToOneScenario(t *testing.T) {
	results, err := Run("fifo")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "fifo", results[0].Name)
}
