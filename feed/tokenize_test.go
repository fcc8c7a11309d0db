package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	got := tokenize([]byte("Go Channels, and go-routines!"))
	assert.Equal(t, []string{"go", "channels", "and", "go", "routines"}, got)
}
