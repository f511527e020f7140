package dbg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type pair struct{ a, b float64 }

func TestName(t *testing.T) {
	Reset()
	first := Name(pair{1, 2})
	assert.NotEmpty(t, first)
	assert.Equal(t, first, Name(pair{1, 2}), "equal values share a name")

	var nilPointer *pair
	assert.Equal(t, "Ø", Name(nilPointer))
	assert.Equal(t, "Ø", Name(nil))
}

func TestNameIsCapitalized(t *testing.T) {
	Reset()
	name := Name(pair{3, 4})
	assert.Regexp(t, `^[A-Z][a-z]+[A-Z][a-z]+$`, name)
}
