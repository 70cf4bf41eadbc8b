package jsonrpc

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/LeJamon/goTONAddr/internal/codec/addresscodec"
	"github.com/LeJamon/goTONAddr/internal/server/cache"
)

// AddressHandler dispatches the address_* JSON-RPC methods.
type AddressHandler struct {
	methods map[string]func(interface{}) (interface{}, error)

	// parseCache memoizes auto-detected friendly decodes; nil disables it.
	parseCache *cache.ParseCache

	// defaults applied when an encode request leaves flags unspecified.
	defaults addresscodec.Encoder
}

// NewAddressHandler initializes a handler with the given parse cache (may be
// nil) and default encoder configuration.
func NewAddressHandler(parseCache *cache.ParseCache, defaults addresscodec.Encoder) *AddressHandler {
	h := &AddressHandler{
		methods:    make(map[string]func(interface{}) (interface{}, error)),
		parseCache: parseCache,
		defaults:   defaults,
	}

	// Register available methods.
	h.methods["address_parse"] = h.handleParse
	h.methods["address_encode"] = h.handleEncode
	h.methods["address_validate"] = h.handleValidate
	h.methods["cache_stats"] = h.handleCacheStats

	return h
}

// Handle dispatches a JSON-RPC method to the appropriate handler.
func (h *AddressHandler) Handle(method string, params interface{}) (interface{}, *Error) {
	handler, exists := h.methods[method]
	if !exists {
		return nil, &Error{Code: CodeMethodNotFound, Message: fmt.Sprintf("method %s not found", method)}
	}

	result, err := handler(params)
	if err != nil {
		return nil, rpcError(err)
	}
	return result, nil
}

// dispatch runs one request and produces the matching response. Shared by
// the HTTP and WebSocket transports.
func (h *AddressHandler) dispatch(req Request) Response {
	result, rpcErr := h.Handle(req.Method, req.Params)
	if rpcErr != nil {
		return Response{JSONRPC: "2.0", Error: rpcErr, ID: req.ID}
	}
	return resultResponse(req.ID, result)
}

func (h *AddressHandler) handleParse(params interface{}) (interface{}, error) {
	input, err := stringParam(params, "address")
	if err != nil {
		return nil, err
	}

	if strings.Contains(input, ":") {
		addr, err := addresscodec.ParseRawAddress(input)
		if err != nil {
			return nil, err
		}
		return parseResult(addr, nil), nil
	}

	alphabet, err := alphabetParam(params)
	if err != nil {
		return nil, err
	}

	result, err := h.decodeFriendly(input, alphabet)
	if err != nil {
		return nil, err
	}

	return parseResult(result.Address, &FriendlyInfo{
		Bounceable: result.Bounceable,
		Testnet:    result.Testnet,
		Alphabet:   result.Alphabet.String(),
	}), nil
}

func (h *AddressHandler) handleEncode(params interface{}) (interface{}, error) {
	input, err := stringParam(params, "address")
	if err != nil {
		return nil, err
	}

	addr, err := addresscodec.Parse(input)
	if err != nil {
		return nil, err
	}

	enc := h.defaults
	if alphabet, err := alphabetParam(params); err != nil {
		return nil, err
	} else if alphabet != addresscodec.AutoDetect {
		enc.Alphabet = alphabet
	}
	if bounceable, ok, err := boolParam(params, "bounceable"); err != nil {
		return nil, err
	} else if ok {
		enc.Bounceable = bounceable
	}
	if testnet, ok, err := boolParam(params, "testnet"); err != nil {
		return nil, err
	} else if ok {
		enc.Testnet = testnet
	}

	return EncodeResult{
		Address:    addr.ToBase64(enc),
		RawAddress: addr.ToRawAddress(),
	}, nil
}

func (h *AddressHandler) handleValidate(params interface{}) (interface{}, error) {
	input, err := stringParam(params, "address")
	if err != nil {
		return nil, err
	}

	if _, err := addresscodec.Parse(input); err != nil {
		return ValidateResult{Valid: false, Error: err.Error()}, nil
	}
	return ValidateResult{Valid: true}, nil
}

func (h *AddressHandler) handleCacheStats(interface{}) (interface{}, error) {
	if h.parseCache == nil {
		return CacheStatsResult{}, nil
	}

	hits, misses := h.parseCache.Stats()
	return CacheStatsResult{
		Hits:    hits,
		Misses:  misses,
		Entries: h.parseCache.Len(),
	}, nil
}

// decodeFriendly goes through the parse cache for auto-detected decodes.
// Explicit-alphabet requests bypass it: the same string can be valid under
// one alphabet and rejected under the other, so they must not share entries.
func (h *AddressHandler) decodeFriendly(input string, alphabet addresscodec.Alphabet) (addresscodec.DecodeResult, error) {
	if h.parseCache == nil || alphabet != addresscodec.AutoDetect {
		return addresscodec.FromBase64(input, alphabet)
	}

	if cached, found := h.parseCache.Get(input); found {
		return cached, nil
	}

	result, err := addresscodec.FromBase64(input, addresscodec.AutoDetect)
	if err != nil {
		return addresscodec.DecodeResult{}, err
	}
	h.parseCache.Add(input, result)
	return result, nil
}

func parseResult(addr addresscodec.Address, friendly *FriendlyInfo) ParseResult {
	accountID := addr.AccountID()
	return ParseResult{
		RawAddress: addr.ToRawAddress(),
		Workchain:  int(addr.Workchain()),
		AccountID:  hex.EncodeToString(accountID[:]),
		Friendly:   friendly,
	}
}

// rpcError maps handler errors onto JSON-RPC error objects: bad addresses
// and bad parameters are both caller mistakes, so everything surfaces as
// invalid params.
func rpcError(err error) *Error {
	return &Error{Code: CodeInvalidParams, Message: err.Error()}
}

func paramsMap(params interface{}) (map[string]interface{}, error) {
	if params == nil {
		return nil, fmt.Errorf("missing params object")
	}
	m, ok := params.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("params must be an object")
	}
	return m, nil
}

func stringParam(params interface{}, key string) (string, error) {
	m, err := paramsMap(params)
	if err != nil {
		return "", err
	}
	value, ok := m[key]
	if !ok {
		return "", fmt.Errorf("missing %q parameter", key)
	}
	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("%q parameter must be a string", key)
	}
	return s, nil
}

func boolParam(params interface{}, key string) (bool, bool, error) {
	m, err := paramsMap(params)
	if err != nil {
		return false, false, err
	}
	value, ok := m[key]
	if !ok {
		return false, false, nil
	}
	b, ok := value.(bool)
	if !ok {
		return false, false, fmt.Errorf("%q parameter must be a boolean", key)
	}
	return b, true, nil
}

// alphabetParam reads the optional "alphabet" parameter ("std" or "url");
// absence means auto-detection.
func alphabetParam(params interface{}) (addresscodec.Alphabet, error) {
	m, err := paramsMap(params)
	if err != nil {
		return addresscodec.AutoDetect, err
	}
	value, ok := m["alphabet"]
	if !ok {
		return addresscodec.AutoDetect, nil
	}
	s, ok := value.(string)
	if !ok {
		return addresscodec.AutoDetect, fmt.Errorf("\"alphabet\" parameter must be a string")
	}

	switch s {
	case "std":
		return addresscodec.Standard, nil
	case "url":
		return addresscodec.URLSafe, nil
	default:
		return addresscodec.AutoDetect, fmt.Errorf("unknown alphabet %q (want \"std\" or \"url\")", s)
	}
}
