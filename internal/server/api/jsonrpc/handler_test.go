package jsonrpc

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/LeJamon/goTONAddr/internal/codec/addresscodec"
	"github.com/LeJamon/goTONAddr/internal/server/cache"
)

const (
	testRaw      = "0:0e97797708411c29a3cb1f3f810ef4f83f41d990838f7f93ce7082c4ff9aa026"
	testFriendly = "EQAOl3l3CEEcKaPLHz-BDvT4P0HZkIOPf5POcILE_5qgJuR2"
	testStd      = "EQAOl3l3CEEcKaPLHz+BDvT4P0HZkIOPf5POcILE/5qgJuR2"
)

func newTestHandler(t *testing.T) *AddressHandler {
	t.Helper()

	parseCache, err := cache.New(16)
	require.NoError(t, err)

	return NewAddressHandler(parseCache, addresscodec.Base64URLDefault)
}

func TestHandleParseRaw(t *testing.T) {
	h := newTestHandler(t)

	result, rpcErr := h.Handle("address_parse", map[string]interface{}{"address": testRaw})
	require.Nil(t, rpcErr)

	parsed, ok := result.(ParseResult)
	require.True(t, ok)
	require.Equal(t, testRaw, parsed.RawAddress)
	require.Equal(t, 0, parsed.Workchain)
	require.Nil(t, parsed.Friendly)
}

func TestHandleParseFriendly(t *testing.T) {
	h := newTestHandler(t)

	result, rpcErr := h.Handle("address_parse", map[string]interface{}{"address": testFriendly})
	require.Nil(t, rpcErr)

	parsed, ok := result.(ParseResult)
	require.True(t, ok)
	require.Equal(t, testRaw, parsed.RawAddress)
	require.NotNil(t, parsed.Friendly)
	require.True(t, parsed.Friendly.Bounceable)
	require.False(t, parsed.Friendly.Testnet)
	require.Equal(t, "url-safe", parsed.Friendly.Alphabet)
}

func TestHandleParseUsesCache(t *testing.T) {
	h := newTestHandler(t)

	for i := 0; i < 3; i++ {
		_, rpcErr := h.Handle("address_parse", map[string]interface{}{"address": testFriendly})
		require.Nil(t, rpcErr)
	}

	hits, misses := h.parseCache.Stats()
	require.Equal(t, uint64(2), hits)
	require.Equal(t, uint64(1), misses)
}

func TestHandleParseStrictAlphabetBypassesCache(t *testing.T) {
	h := newTestHandler(t)

	// Strict decode with the wrong alphabet must fail even though the
	// string is cacheable under auto-detection.
	_, rpcErr := h.Handle("address_parse", map[string]interface{}{
		"address":  testFriendly,
		"alphabet": "std",
	})
	require.NotNil(t, rpcErr)
	require.Equal(t, CodeInvalidParams, rpcErr.Code)
	require.Equal(t, 0, h.parseCache.Len())
}

func TestHandleEncode(t *testing.T) {
	h := newTestHandler(t)

	testcases := []struct {
		name     string
		params   map[string]interface{}
		expected string
	}{
		{
			name:     "defaults render url-safe bounceable",
			params:   map[string]interface{}{"address": testRaw},
			expected: testFriendly,
		},
		{
			name: "explicit standard alphabet",
			params: map[string]interface{}{
				"address":  testRaw,
				"alphabet": "std",
			},
			expected: testStd,
		},
		{
			name: "friendly input re-encoded with new flags",
			params: map[string]interface{}{
				"address":    testStd,
				"alphabet":   "url",
				"bounceable": false,
			},
			expected: "UQAOl3l3CEEcKaPLHz-BDvT4P0HZkIOPf5POcILE_5qgJrmz",
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			result, rpcErr := h.Handle("address_encode", tc.params)
			require.Nil(t, rpcErr)

			encoded, ok := result.(EncodeResult)
			require.True(t, ok)
			require.Equal(t, tc.expected, encoded.Address)
			require.Equal(t, testRaw, encoded.RawAddress)
		})
	}
}

func TestHandleValidate(t *testing.T) {
	h := newTestHandler(t)

	result, rpcErr := h.Handle("address_validate", map[string]interface{}{"address": testFriendly})
	require.Nil(t, rpcErr)
	require.Equal(t, ValidateResult{Valid: true}, result)

	result, rpcErr = h.Handle("address_validate", map[string]interface{}{"address": "0:abcd"})
	require.Nil(t, rpcErr)

	validated, ok := result.(ValidateResult)
	require.True(t, ok)
	require.False(t, validated.Valid)
	require.NotEmpty(t, validated.Error)
}

func TestHandleErrors(t *testing.T) {
	h := newTestHandler(t)

	testcases := []struct {
		name     string
		method   string
		params   interface{}
		wantCode int
	}{
		{
			name:     "unknown method",
			method:   "account_info",
			params:   map[string]interface{}{},
			wantCode: CodeMethodNotFound,
		},
		{
			name:     "missing params",
			method:   "address_parse",
			params:   nil,
			wantCode: CodeInvalidParams,
		},
		{
			name:     "missing address parameter",
			method:   "address_parse",
			params:   map[string]interface{}{},
			wantCode: CodeInvalidParams,
		},
		{
			name:     "address parameter not a string",
			method:   "address_parse",
			params:   map[string]interface{}{"address": 42.0},
			wantCode: CodeInvalidParams,
		},
		{
			name:     "unknown alphabet",
			method:   "address_encode",
			params:   map[string]interface{}{"address": testRaw, "alphabet": "base32"},
			wantCode: CodeInvalidParams,
		},
		{
			name:     "corrupt address",
			method:   "address_parse",
			params:   map[string]interface{}{"address": "EQDkqlTvn04SUKJrW7rXahzdF8_Qi6utb0wj43InCu9vdjrR"},
			wantCode: CodeInvalidParams,
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			_, rpcErr := h.Handle(tc.method, tc.params)
			require.NotNil(t, rpcErr)
			require.Equal(t, tc.wantCode, rpcErr.Code)
		})
	}
}

func TestHandleCacheStats(t *testing.T) {
	h := newTestHandler(t)

	_, rpcErr := h.Handle("address_parse", map[string]interface{}{"address": testFriendly})
	require.Nil(t, rpcErr)

	result, rpcErr := h.Handle("cache_stats", nil)
	require.Nil(t, rpcErr)
	require.Equal(t, CacheStatsResult{Hits: 0, Misses: 1, Entries: 1}, result)
}

func TestServerServeHTTP(t *testing.T) {
	server := NewServer(newTestHandler(t))

	body, err := json.Marshal(Request{
		JSONRPC: "2.0",
		Method:  "address_parse",
		Params:  map[string]interface{}{"address": testRaw},
		ID:      1,
	})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		JSONRPC string      `json:"jsonrpc"`
		Result  ParseResult `json:"result"`
		Error   *Error      `json:"error"`
		ID      interface{} `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Nil(t, resp.Error)
	require.Equal(t, testRaw, resp.Result.RawAddress)
}

func TestServerRejectsGet(t *testing.T) {
	server := NewServer(newTestHandler(t))

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestServerMalformedBody(t *testing.T) {
	server := NewServer(newTestHandler(t))

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte("{not json"))))

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	require.Equal(t, CodeParseError, resp.Error.Code)
}
