package websocket

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

type stream struct {
	conn *websocket.Conn
	// gorilla connections allow one concurrent writer
	writeMu sync.Mutex
}

// ConnectionManager tracks open replay streams
type ConnectionManager struct {
	streams map[string]*stream
	mu      sync.RWMutex
}

func NewConnectionManager() *ConnectionManager {
	return &ConnectionManager{streams: make(map[string]*stream)}
}

func (cm *ConnectionManager) AddConnection(id string, conn *websocket.Conn) {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	cm.streams[id] = &stream{conn: conn}
}

// RemoveConnection closes and forgets a stream
func (cm *ConnectionManager) RemoveConnection(id string) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if s, exists := cm.streams[id]; exists {
		s.conn.Close()
		delete(cm.streams, id)
	}
}

// SendMessage writes a JSON message to one stream
func (cm *ConnectionManager) SendMessage(id string, message ServerMessage) error {
	cm.mu.RLock()
	s, exists := cm.streams[id]
	cm.mu.RUnlock()

	if !exists {
		return nil // stream already closed
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
	return s.conn.WriteJSON(message)
}

// Count returns the number of open streams
func (cm *ConnectionManager) Count() int {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return len(cm.streams)
}

// CloseAll sends a going-away close frame to every stream, used on shutdown
func (cm *ConnectionManager) CloseAll() {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	deadline := time.Now().Add(time.Second)
	for id, s := range cm.streams {
		s.writeMu.Lock()
		s.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"), deadline)
		s.writeMu.Unlock()
		s.conn.Close()
		delete(cm.streams, id)
	}
}
