package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyCollectorIsNoError(t *testing.T) {
	t.Parallel()

	verr := NewError("config")
	assert.False(t, verr.HasErrors())
	assert.NoError(t, verr.ToError())
}

func TestSingleFailure(t *testing.T) {
	t.Parallel()

	verr := NewError("config")
	verr.Add("listen is required")

	err := verr.ToError()
	require.Error(t, err)
	assert.Equal(t, "config validation failed: listen is required", err.Error())
}

func TestMultipleFailures(t *testing.T) {
	t.Parallel()

	verr := NewError("precommit")
	verr.Add("first")
	verr.Addf("second %d", 2)

	err := verr.ToError()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "precommit validation failed with 2 errors")
	assert.Contains(t, err.Error(), "  - first")
	assert.Contains(t, err.Error(), "  - second 2")
}
