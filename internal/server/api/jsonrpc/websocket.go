package jsonrpc

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/websocket"
)

// maxMessageSize bounds incoming WebSocket frames; requests are a single
// address plus options, so anything larger is garbage.
const maxMessageSize = 4096

// WebSocketServer serves the same JSON-RPC methods over a WebSocket, one
// request per message.
type WebSocketServer struct {
	upgrader websocket.Upgrader
	handler  *AddressHandler
}

// NewWebSocketServer creates a new WebSocket server.
func NewWebSocketServer(handler *AddressHandler) *WebSocketServer {
	return &WebSocketServer{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				// The daemon binds locally and serves public data only.
				return true
			},
		},
		handler: handler,
	}
}

// ServeHTTP handles WebSocket upgrade requests.
func (ws *WebSocketServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := ws.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	conn.SetReadLimit(maxMessageSize)

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("WebSocket read failed: %v", err)
			}
			return
		}

		var req Request
		if err := json.Unmarshal(message, &req); err != nil {
			if err := conn.WriteJSON(errorResponse(nil, CodeParseError, "Parse error")); err != nil {
				return
			}
			continue
		}

		if err := conn.WriteJSON(ws.handler.dispatch(req)); err != nil {
			return
		}
	}
}
