package websocket

import (
	"encoding/json"
	"sync"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"

	"venturedesk/pkg/logger"
)

// Manager tracks websocket clients grouped into per-business rooms. Room IDs
// are business IDs; a dashboard joins the room of its selected business.
type Manager struct {
	clients         map[*websocket.Conn]Client
	userConnections map[uuid.UUID]*websocket.Conn // 1 user = 1 connection (prevent duplicates)
	rooms           map[string]map[*websocket.Conn]bool
	register        chan Client
	unregister      chan *websocket.Conn
	broadcast       chan BroadcastMessage
	mutex           sync.RWMutex
}

type Client struct {
	Conn   *websocket.Conn
	UserID uuid.UUID
	RoomID string
}

type Message struct {
	Type   string      `json:"type"`
	Data   interface{} `json:"data"`
	UserID string      `json:"userId,omitempty"`
	RoomID string      `json:"roomId,omitempty"`
}

type BroadcastMessage struct {
	Message Message
	RoomID  string
	UserID  *uuid.UUID
}

func NewManager() *Manager {
	m := &Manager{
		clients:         make(map[*websocket.Conn]Client),
		userConnections: make(map[uuid.UUID]*websocket.Conn),
		rooms:           make(map[string]map[*websocket.Conn]bool),
		register:        make(chan Client),
		unregister:      make(chan *websocket.Conn),
		broadcast:       make(chan BroadcastMessage),
	}
	go m.run()
	return m
}

func (m *Manager) run() {
	for {
		select {
		case client := <-m.register:
			m.mutex.Lock()

			// Close old connection if user already has one
			if oldConn, exists := m.userConnections[client.UserID]; exists {
				logger.Debug("Closing old websocket connection", "user_id", client.UserID)
				if oldClient, ok := m.clients[oldConn]; ok {
					m.leaveRoomLocked(oldConn, oldClient.RoomID)
					delete(m.clients, oldConn)
				}
				oldConn.Close()
			}

			m.clients[client.Conn] = client
			m.userConnections[client.UserID] = client.Conn

			if client.RoomID != "" {
				m.joinRoomLocked(client.Conn, client.RoomID)
			}
			m.mutex.Unlock()

			logger.Debug("Websocket client connected", "user_id", client.UserID, "room_id", client.RoomID)

		case conn := <-m.unregister:
			m.mutex.Lock()
			if client, ok := m.clients[conn]; ok {
				delete(m.clients, conn)

				if currentConn, exists := m.userConnections[client.UserID]; exists && currentConn == conn {
					delete(m.userConnections, client.UserID)
				}

				m.leaveRoomLocked(conn, client.RoomID)
				conn.Close()
				logger.Debug("Websocket client disconnected", "user_id", client.UserID, "room_id", client.RoomID)
			}
			m.mutex.Unlock()

		case message := <-m.broadcast:
			m.mutex.RLock()
			if message.RoomID != "" {
				if clients, ok := m.rooms[message.RoomID]; ok {
					for conn := range clients {
						m.sendMessage(conn, message.Message)
					}
				}
			} else if message.UserID != nil {
				if conn, exists := m.userConnections[*message.UserID]; exists {
					m.sendMessage(conn, message.Message)
				}
			} else {
				for conn := range m.clients {
					m.sendMessage(conn, message.Message)
				}
			}
			m.mutex.RUnlock()
		}
	}
}

func (m *Manager) joinRoomLocked(conn *websocket.Conn, roomID string) {
	if m.rooms[roomID] == nil {
		m.rooms[roomID] = make(map[*websocket.Conn]bool)
	}
	m.rooms[roomID][conn] = true
}

func (m *Manager) leaveRoomLocked(conn *websocket.Conn, roomID string) {
	if roomID == "" || m.rooms[roomID] == nil {
		return
	}
	delete(m.rooms[roomID], conn)
	if len(m.rooms[roomID]) == 0 {
		delete(m.rooms, roomID)
	}
}

func (m *Manager) sendMessage(conn *websocket.Conn, message Message) {
	if err := conn.WriteJSON(message); err != nil {
		logger.Warn("Websocket send failed", "error", err)
		go func() { m.unregister <- conn }()
	}
}

func (m *Manager) RegisterClient(conn *websocket.Conn, userID uuid.UUID, roomID string) {
	m.register <- Client{Conn: conn, UserID: userID, RoomID: roomID}
}

func (m *Manager) UnregisterClient(conn *websocket.Conn) {
	m.unregister <- conn
}

func (m *Manager) BroadcastToRoom(roomID string, messageType string, data interface{}) {
	m.broadcast <- BroadcastMessage{
		Message: Message{Type: messageType, Data: data},
		RoomID:  roomID,
	}
}

func (m *Manager) BroadcastToUser(userID uuid.UUID, messageType string, data interface{}) {
	m.broadcast <- BroadcastMessage{
		Message: Message{Type: messageType, Data: data},
		UserID:  &userID,
	}
}

func (m *Manager) BroadcastToAll(messageType string, data interface{}) {
	m.broadcast <- BroadcastMessage{
		Message: Message{Type: messageType, Data: data},
	}
}

func (m *Manager) GetRoomClients(roomID string) int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	if clients, ok := m.rooms[roomID]; ok {
		return len(clients)
	}
	return 0
}

func (m *Manager) GetTotalClients() int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	return len(m.clients)
}

// HandleMessage processes inbound client messages: ping and room switching.
func (m *Manager) HandleMessage(conn *websocket.Conn, data []byte) {
	var message Message
	if err := json.Unmarshal(data, &message); err != nil {
		logger.Warn("Malformed websocket message", "error", err)
		return
	}

	switch message.Type {
	case "ping":
		conn.WriteJSON(Message{Type: "pong", Data: "pong"})

	case "join_room":
		roomData, ok := message.Data.(map[string]interface{})
		if !ok {
			return
		}
		roomID, ok := roomData["roomId"].(string)
		if !ok {
			return
		}

		m.mutex.Lock()
		if client, exists := m.clients[conn]; exists {
			m.leaveRoomLocked(conn, client.RoomID)
			client.RoomID = roomID
			m.clients[conn] = client
			m.joinRoomLocked(conn, roomID)
		}
		m.mutex.Unlock()

		conn.WriteJSON(Message{
			Type: "room_joined",
			Data: map[string]interface{}{"roomId": roomID},
		})

	case "leave_room":
		m.mutex.Lock()
		if client, exists := m.clients[conn]; exists {
			m.leaveRoomLocked(conn, client.RoomID)
			client.RoomID = ""
			m.clients[conn] = client
		}
		m.mutex.Unlock()

		conn.WriteJSON(Message{Type: "room_left", Data: "Left room successfully"})

	default:
		logger.Debug("Unknown websocket message type", "type", message.Type)
	}
}
