package websocket

import (
	"log"
	"sync"

	"github.com/google/uuid"
)

type UnicastMessage struct {
	UserID  uuid.UUID
	Message []byte
}

// Hub owns the set of live notification subscribers and fans messages out
// to them. Each connected client owns its receiving end (a buffered send
// channel); the hub never shares one across connections, so every client
// sees each message addressed to it exactly once, in send order.
type Hub struct {
	// Clients keyed by user id; one user may hold several connections.
	clients map[uuid.UUID]map[*Client]bool

	// Unicast messages addressed to a single user.
	unicast chan UnicastMessage

	// Register requests from the clients.
	register chan *Client

	// Unregister requests from clients.
	unregister chan *Client

	// Channel to signal termination
	stop     chan struct{}
	stopOnce sync.Once
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[uuid.UUID]map[*Client]bool),
		unicast:    make(chan UnicastMessage),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		stop:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			conns := h.clients[client.userID]
			if conns == nil {
				conns = make(map[*Client]bool)
				h.clients[client.userID] = conns
			}
			conns[client] = true
			log.Printf("[Notification Hub] Client registered (user: %s)", client.userID)
		case client := <-h.unregister:
			if conns, ok := h.clients[client.userID]; ok && conns[client] {
				delete(conns, client)
				if len(conns) == 0 {
					delete(h.clients, client.userID)
				}
				close(client.send)
				log.Printf("[Notification Hub] Client unregistered (user: %s)", client.userID)
			}
		case msg := <-h.unicast:
			for client := range h.clients[msg.UserID] {
				select {
				case client.send <- msg.Message:
				default:
					// Slow consumer; drop the connection rather than block.
					close(client.send)
					delete(h.clients[msg.UserID], client)
					if len(h.clients[msg.UserID]) == 0 {
						delete(h.clients, msg.UserID)
					}
				}
			}
		case <-h.stop:
			log.Println("[Notification Hub] Stopping hub")
			for _, conns := range h.clients {
				for client := range conns {
					close(client.send)
				}
			}
			h.clients = make(map[uuid.UUID]map[*Client]bool)
			return
		}
	}
}

// SendToUser delivers a message to every live connection the user holds.
func (h *Hub) SendToUser(userID uuid.UUID, message []byte) {
	select {
	case h.unicast <- UnicastMessage{UserID: userID, Message: message}:
	case <-h.stop:
	}
}

func (h *Hub) Stop() {
	h.stopOnce.Do(func() {
		close(h.stop)
	})
}
