package cache

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/LeJamon/goTONAddr/internal/codec/addresscodec"
)

const friendly = "EQAOl3l3CEEcKaPLHz-BDvT4P0HZkIOPf5POcILE_5qgJuR2"

func TestParseCacheHitMiss(t *testing.T) {
	c, err := New(4)
	require.NoError(t, err)

	_, found := c.Get(friendly)
	require.False(t, found)

	result, err := addresscodec.FromBase64(friendly, addresscodec.AutoDetect)
	require.NoError(t, err)
	c.Add(friendly, result)

	cached, found := c.Get(friendly)
	require.True(t, found)
	require.Equal(t, result, cached)

	hits, misses := c.Stats()
	require.Equal(t, uint64(1), hits)
	require.Equal(t, uint64(1), misses)
	require.Equal(t, 1, c.Len())
}

func TestParseCacheEviction(t *testing.T) {
	c, err := New(2)
	require.NoError(t, err)

	var result addresscodec.DecodeResult
	c.Add("a", result)
	c.Add("b", result)
	c.Add("c", result)

	require.Equal(t, 2, c.Len())

	_, found := c.Get("a")
	require.False(t, found)
}
