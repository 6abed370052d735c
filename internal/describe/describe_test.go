package describe

import (
	"context"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCannedGenerator_Shape(t *testing.T) {
	gen := NewCannedGenerator(rand.New(rand.NewSource(1)))

	line, err := gen.Describe(context.Background())
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(line, " System"), "got %q", line)
	assert.Contains(t, line, " - ")
}

func TestCannedGenerator_DrawsFromLists(t *testing.T) {
	gen := NewCannedGenerator(rand.New(rand.NewSource(42)))

	line, err := gen.Describe(context.Background())
	require.NoError(t, err)

	parts := strings.SplitN(line, " - ", 2)
	require.Len(t, parts, 2)
	assert.Contains(t, projectDescriptions, parts[0])
	assert.Contains(t, productNames, strings.TrimSuffix(parts[1], " System"))
}

func TestCannedGenerator_NilSource(t *testing.T) {
	gen := NewCannedGenerator(nil)

	line, err := gen.Describe(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, line)
}
