package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortedMarkets(t *testing.T) {
	counts := map[string]int{
		"KOSPI":  120,
		"KONEX":  3,
		"KOSDAQ": 80,
	}

	// map 순회와 달리 항상 같은 순서
	for i := 0; i < 5; i++ {
		assert.Equal(t, []string{"KONEX", "KOSDAQ", "KOSPI"}, sortedMarkets(counts))
	}

	assert.Empty(t, sortedMarkets(nil))
}
