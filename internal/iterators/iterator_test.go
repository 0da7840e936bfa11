package iterators

import (
	"bufio"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func byWord(data []byte, atEOF bool) (advance int, token []byte, err error) {
	return bufio.ScanWords(data, atEOF)
}

func TestIteratorWalksTokens(t *testing.T) {
	it := New(SplitFunc[[]byte](byWord), []byte("the quick brown fox"))

	var got []string
	for it.Next() {
		got = append(got, string(it.Value()))
	}
	require.NoError(t, it.Err())
	assert.Equal(t, []string{"the", "quick", "brown", "fox"}, got)
}

func TestIteratorSetTextResets(t *testing.T) {
	it := New(SplitFunc[[]byte](byWord), []byte("one two"))
	it.Next()
	assert.Equal(t, "one", string(it.Value()))

	it.SetText([]byte("three"))
	require.True(t, it.Next())
	assert.Equal(t, "three", string(it.Value()))
	assert.False(t, it.Next())
}

func TestIteratorStartEnd(t *testing.T) {
	it := New(SplitFunc[[]byte](byWord), []byte("ab cd"))
	require.True(t, it.Next())
	assert.Equal(t, 0, it.Start())
	assert.Equal(t, 2, it.End())

	require.True(t, it.Next())
	assert.Equal(t, 3, it.Start())
	assert.Equal(t, 5, it.End())
}

func TestIteratorOverString(t *testing.T) {
	split := func(data string, atEOF bool) (advance int, token string, err error) {
		a, tok, err := bufio.ScanWords([]byte(data), atEOF)
		return a, string(tok), err
	}
	it := New(SplitFunc[string](split), "hello world")
	var got []string
	for it.Next() {
		got = append(got, it.Value())
	}
	assert.Equal(t, []string{"hello", "world"}, got)
}
