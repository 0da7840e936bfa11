package twostage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAndLookup(t *testing.T) {
	values := map[rune]uint8{}
	Expand(values, 0x41, 0x5A, 1) // A-Z
	Expand(values, 0x1F300, 0x1F3FF, 2)

	stage1, stage2 := Build(values)
	require.NotEmpty(t, stage1)
	require.NotEmpty(t, stage2)

	assert.Equal(t, uint8(1), Lookup(stage1, stage2, 'A'))
	assert.Equal(t, uint8(1), Lookup(stage1, stage2, 'Z'))
	assert.Equal(t, uint8(0), Lookup(stage1, stage2, 'a'))
	assert.Equal(t, uint8(2), Lookup(stage1, stage2, 0x1F300))
	assert.Equal(t, uint8(0), Lookup(stage1, stage2, 0x1F400))
}

func TestBuildDeduplicatesIdenticalBlocks(t *testing.T) {
	values := map[rune]uint8{}
	// Two widely separated ranges, each smaller than one block and with the
	// same content, should collapse to the same stage2 block.
	Expand(values, 0x10, 0x1F, 9)
	Expand(values, 0x10010, 0x1001F, 9)

	stage1, stage2 := Build(values)
	assert.Equal(t, stage1[0x10010>>8], stage1[0x10>>8])
	_ = stage2
}

func TestLookupOutOfRangeDefaultsZero(t *testing.T) {
	values := map[rune]uint8{0x41: 7}
	stage1, stage2 := Build(values)
	assert.Equal(t, uint8(0), Lookup(stage1, stage2, -1))
	assert.Equal(t, uint8(0), Lookup(stage1, stage2, 0x110000))
}
