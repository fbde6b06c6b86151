package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-spectro/dsp/window"
)

func TestResolveTypes(t *testing.T) {
	var warn bytes.Buffer

	got := resolveTypes([]string{"hann", "kaiser", "Bartlett-Hann"}, &warn)
	assert.Equal(t, []window.Type{window.TypeHann, window.TypeBartlettHann}, got)
	assert.Contains(t, warn.String(), `unknown window "kaiser"`)

	assert.Equal(t, window.Types(), resolveTypes(nil, &warn))
}

func TestPrintAnalysis(t *testing.T) {
	var out bytes.Buffer

	err := printAnalysis(&out, []window.Type{window.TypeRectangular, window.TypeBlackman}, 256, 0.16)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[2], "rectangular"))
	assert.Contains(t, lines[2], "1.000000")
	assert.Contains(t, lines[2], "0.00")
	assert.True(t, strings.HasPrefix(lines[3], "blackman (a=0.16)"))
}
