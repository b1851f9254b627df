package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAggregate_AllZero(t *testing.T) {
	assert.Equal(t, 0.0, Aggregate(0, 0, 0, 0))
}

func TestAggregate_AllMax(t *testing.T) {
	assert.Equal(t, 100.0, Aggregate(100, 100, 100, 100))
}

func TestAggregate_Weights(t *testing.T) {
	// 80*0.20 + 60*0.30 + 90*0.25 + 70*0.25 = 16 + 18 + 22.5 + 17.5 = 74
	assert.Equal(t, 74.0, Aggregate(80, 60, 90, 70))
}

func TestAggregate_ClampsOutOfRangeInputs(t *testing.T) {
	assert.Equal(t, 0.0, Aggregate(-500, -500, -500, -500))
	assert.Equal(t, 100.0, Aggregate(1000, 1000, 1000, 1000))
}

func TestAggregate_SingleComponent(t *testing.T) {
	assert.Equal(t, 30.0, Aggregate(0, 100, 0, 0))
	assert.Equal(t, 25.0, Aggregate(0, 0, 100, 0))
}
