package jsonrpc

import (
	"encoding/json"
	"net/http"
)

// Server serves the address methods over HTTP POST as JSON-RPC 2.0.
type Server struct {
	handler *AddressHandler
}

// NewServer creates a new JSON-RPC server instance.
func NewServer(handler *AddressHandler) *Server {
	return &Server{handler: handler}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeResponse(w, errorResponse(nil, CodeParseError, "Parse error"))
		return
	}

	writeResponse(w, s.handler.dispatch(req))
}

func writeResponse(w http.ResponseWriter, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
