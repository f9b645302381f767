package check

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alessandrocasali86-boop/lumen-nidi-tda/constants"
)

func TestMaxPrefixAbsErrorOnExactMatch(t *testing.T) {
	got := make([]float64, len(constants.ExpectedNidiPanel1Eighth))
	copy(got, constants.ExpectedNidiPanel1Eighth)

	assert := assert.New(t)
	assert.Equal(MaxPrefixAbsError(got, constants.ExpectedNidiPanel1Eighth), 0.0)
}

func TestMaxPrefixAbsErrorIsZeroWhenEitherSideEmpty(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(MaxPrefixAbsError(nil, constants.ExpectedNidiPanel1Eighth), 0.0)
	assert.Equal(MaxPrefixAbsError([]float64{1, 2}, nil), 0.0)
}

func TestMaxPrefixAbsErrorUsesCommonPrefixOnly(t *testing.T) {
	got := []float64{3, 2}
	expected := []float64{3, 2.5, 1, 3.5}

	assert := assert.New(t)
	assert.Equal(MaxPrefixAbsError(got, expected), 0.5)
}

func TestReferenceSequenceLength(t *testing.T) {
	assert.New(t).Len(constants.ExpectedNidiPanel1Eighth, 18)
}
