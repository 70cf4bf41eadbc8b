package jsonrpc

// Request represents a JSON-RPC request.
type Request struct {
	JSONRPC string      `json:"jsonrpc"`
	Method  string      `json:"method"`
	Params  interface{} `json:"params,omitempty"`
	ID      interface{} `json:"id"`
}

// Response represents a JSON-RPC response.
type Response struct {
	JSONRPC string      `json:"jsonrpc"`
	Result  interface{} `json:"result,omitempty"`
	Error   *Error      `json:"error,omitempty"`
	ID      interface{} `json:"id"`
}

// Error represents a JSON-RPC error object.
type Error struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// JSON-RPC 2.0 error codes.
const (
	CodeParseError     = -32700
	CodeInvalidRequest = -32600
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeInternalError  = -32603
)

func resultResponse(id, result interface{}) Response {
	return Response{JSONRPC: "2.0", Result: result, ID: id}
}

func errorResponse(id interface{}, code int, message string) Response {
	return Response{JSONRPC: "2.0", Error: &Error{Code: code, Message: message}, ID: id}
}

// ParseResult is the address_parse result payload.
type ParseResult struct {
	RawAddress string `json:"raw_address"`
	Workchain  int    `json:"workchain"`
	AccountID  string `json:"account_id"`

	// Friendly is set when the input was a friendly-form address and carries
	// the metadata recovered from its flag byte.
	Friendly *FriendlyInfo `json:"friendly,omitempty"`
}

// FriendlyInfo describes the flag byte and alphabet of a friendly address.
type FriendlyInfo struct {
	Bounceable bool   `json:"bounceable"`
	Testnet    bool   `json:"testnet"`
	Alphabet   string `json:"alphabet"`
}

// EncodeResult is the address_encode result payload.
type EncodeResult struct {
	Address    string `json:"address"`
	RawAddress string `json:"raw_address"`
}

// ValidateResult is the address_validate result payload.
type ValidateResult struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

// CacheStatsResult is the cache_stats result payload.
type CacheStatsResult struct {
	Hits    uint64 `json:"hits"`
	Misses  uint64 `json:"misses"`
	Entries int    `json:"entries"`
}
