package referral

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCode(t *testing.T) {
	code := NewCode()

	assert.True(t, strings.HasPrefix(code, "BDS"))
	assert.Len(t, code, 11)
	assert.Equal(t, strings.ToUpper(code), code)
}

func TestNewCodeUnique(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		code := NewCode()
		_, ok := seen[code]
		assert.False(t, ok, "duplicate code %s", code)
		seen[code] = struct{}{}
	}
}
