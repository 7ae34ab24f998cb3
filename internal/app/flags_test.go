package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatValue(t *testing.T) {
	t.Parallel()

	var f formatValue
	require.NoError(t, f.Set("text"))
	assert.Equal(t, "text", f.String())

	require.NoError(t, f.Set("json"))
	assert.Equal(t, "json", f.String())

	err := f.Set("xml")
	require.Error(t, err)
	assert.Equal(t, "json", f.String(), "invalid value must not overwrite")

	assert.Equal(t, "<format>", f.Type())
}

func TestPathValue(t *testing.T) {
	t.Parallel()

	var p pathValue
	require.NoError(t, p.Set("./somewhere"))
	assert.Equal(t, "./somewhere", p.String())
	assert.Equal(t, "<path>", p.Type())
}
