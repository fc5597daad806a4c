package colors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRGB8(t *testing.T) {
	c := RGB8(255, 0, 51)
	assert.Equal(t, float32(1), c.R())
	assert.Equal(t, float32(0), c.G())
	assert.InDelta(t, 0.2, c.B(), 1e-6)
	assert.Equal(t, float32(1), c.A())

	assert.InDelta(t, 124.0/255.0, Fern.R(), 1e-6)
	assert.InDelta(t, 186.0/255.0, Fern.G(), 1e-6)
	assert.InDelta(t, 91.0/255.0, Fern.B(), 1e-6)

	assert.Equal(t, float32(0.5), Orange.G())
}
