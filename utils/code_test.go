package utils

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCode(t *testing.T) {
	code, err := GenerateCode(16)
	require.NoError(t, err)
	assert.Len(t, code, 32)

	_, err = hex.DecodeString(code)
	assert.NoError(t, err)

	other, err := GenerateCode(16)
	require.NoError(t, err)
	assert.NotEqual(t, code, other)
}
