package stopwatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRealClockNeverMovesBackwards(t *testing.T) {
	/* setup */
	clock := new(RealClock)

	/* run */
	first, firstErr := clock.Now()
	second, secondErr := clock.Now()

	/* check */
	assert.NoError(t, firstErr)
	assert.NoError(t, secondErr)
	assert.False(t, second.Before(first))
}
