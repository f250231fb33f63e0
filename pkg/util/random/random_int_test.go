package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCode(t *testing.T) {
	for i := 0; i < 50; i++ {
		code, err := GetCode(6)
		require.NoError(t, err)
		assert.Len(t, code, 6)
		assert.NotEqual(t, byte('0'), code[0])
		for _, ch := range code {
			assert.True(t, ch >= '0' && ch <= '9', code)
		}
	}
}

func TestGetCodeRejectsBadLength(t *testing.T) {
	_, err := GetCode(0)
	assert.Error(t, err)
}
