package inspect

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// handleWebSocket streams every mutation recorded after the connection
// opens. The subscription is taken before the upgrade, so a client that
// has completed the handshake sees every later mutation.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	mutations, cancel := s.doc.Subscribe()
	defer cancel()

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Debug("websocket upgrade failed", "error", err)
		return
	}

	id := uuid.NewString()
	logger := s.logger.With("client", id)

	s.cmu.Lock()
	s.clients[conn] = id
	s.cmu.Unlock()
	logger.Debug("websocket client connected")

	defer func() {
		logger.Debug("websocket client disconnected")
		s.cmu.Lock()
		delete(s.clients, conn)
		s.cmu.Unlock()
		conn.Close()
	}()

	// Keep reading until the client disconnects.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-closed:
			return
		case m, ok := <-mutations:
			if !ok {
				return
			}
			data, err := json.Marshal(m)
			if err != nil {
				continue
			}
			if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
				logger.Debug("websocket write failed", "error", err)
				return
			}
		}
	}
}

// ClientCount returns the number of connected websocket clients.
func (s *Server) ClientCount() int {
	s.cmu.RLock()
	defer s.cmu.RUnlock()
	return len(s.clients)
}

// Close closes all websocket connections.
func (s *Server) Close() {
	s.cmu.Lock()
	defer s.cmu.Unlock()

	for client := range s.clients {
		client.Close()
		delete(s.clients, client)
	}
}
