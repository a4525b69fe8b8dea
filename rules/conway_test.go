package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyConwayRules(t *testing.T) {
	for neighbors := 0; neighbors <= 8; neighbors++ {
		assert.Equal(t, neighbors == 3, ApplyConwayRules(neighbors, false), "dead cell, %d neighbors", neighbors)
		assert.Equal(t, neighbors == 2 || neighbors == 3, ApplyConwayRules(neighbors, true), "live cell, %d neighbors", neighbors)
	}
}
