package ws

import (
	"sync"

	"github.com/profinder-dev/profinder/utils"

	"github.com/gorilla/websocket"
)

// Event is a push message sent to connected super admins
type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data,omitempty"`
}

// Client is one connected super-admin session
type Client struct {
	AdminID uint
	Conn    *websocket.Conn
}

// Hub fans verification events out to connected super admins.
// Only the super-admin role joins this channel.
type Hub struct {
	mu         sync.RWMutex
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan Event
}

// NewHub creates a hub; call Run in a goroutine before use
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan Event, 16),
	}
}

// Run processes register/unregister/broadcast events until the process exits
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			utils.LogInfo("Super admin %d joined push channel", client.AdminID)
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
		case client := <-h.unregister:
			utils.LogInfo("Super admin %d left push channel", client.AdminID)
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				client.Conn.Close()
			}
			h.mu.Unlock()
		case event := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				if err := client.Conn.WriteJSON(event); err != nil {
					utils.LogError("Failed to push event to super admin %d: %v", client.AdminID, err)
					client.Conn.Close()
					delete(h.clients, client)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Register adds a client to the hub
func (h *Hub) Register(client *Client) {
	h.register <- client
}

// Unregister removes a client and closes its connection
func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

// Broadcast queues an event for all connected super admins
func (h *Hub) Broadcast(event Event) {
	select {
	case h.broadcast <- event:
	default:
		utils.LogError("Push channel backlogged, dropping event type %s", event.Type)
	}
}

// SuperAdminHub is the process-wide hub instance
var SuperAdminHub = NewHub()

func init() {
	go SuperAdminHub.Run()
}
