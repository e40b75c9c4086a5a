package ws

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

type Client struct {
	Conn *websocket.Conn
	Send chan []byte
}

// Hub kullanıcı bazında websocket bağlantılarını tutar.
// Bir kullanıcı birden fazla sekme/cihaz ile bağlı olabilir.
type Hub struct {
	Clients map[string]map[*websocket.Conn]*Client
	Mutex   sync.RWMutex
}

var H = Hub{
	Clients: make(map[string]map[*websocket.Conn]*Client),
}

// Okunmamış bildirim sayısı güncellemesi
type BadgeUpdate struct {
	Type        string `json:"type"`
	UnreadCount int64  `json:"unread_count"`
}

func (h *Hub) Register(userID string, conn *websocket.Conn) {
	h.Mutex.Lock()
	defer h.Mutex.Unlock()

	if _, ok := h.Clients[userID]; !ok {
		h.Clients[userID] = make(map[*websocket.Conn]*Client)
	}

	client := &Client{
		Conn: conn,
		Send: make(chan []byte, 256),
	}
	h.Clients[userID][conn] = client

	go h.writePump(userID, conn)
}

func (h *Hub) Unregister(userID string, conn *websocket.Conn) {
	h.Mutex.Lock()
	defer h.Mutex.Unlock()

	if clients, ok := h.Clients[userID]; ok {
		if client, ok := clients[conn]; ok {
			close(client.Send)
			delete(clients, conn)
		}
		if len(clients) == 0 {
			delete(h.Clients, userID)
		}
	}
	conn.Close()
}

func (h *Hub) writePump(userID string, conn *websocket.Conn) {
	h.Mutex.RLock()
	client, ok := h.Clients[userID][conn]
	h.Mutex.RUnlock()
	if !ok {
		return
	}

	for msg := range client.Send {
		if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			log.Println("WebSocket yazma hatası:", err)
			return
		}
	}
}

// SendBadgeUpdate kullanıcının tüm bağlantılarına güncel okunmamış sayısını iletir
func SendBadgeUpdate(userID string, unreadCount int64) {
	msg, err := json.Marshal(BadgeUpdate{
		Type:        "badge_update",
		UnreadCount: unreadCount,
	})
	if err != nil {
		log.Println("Badge update marshal hatası:", err)
		return
	}

	H.Mutex.RLock()
	defer H.Mutex.RUnlock()

	if clients, ok := H.Clients[userID]; ok {
		for _, client := range clients {
			select {
			case client.Send <- msg:
			default:
				// Kanal doluysa mesajı at, bağlantı zaten sorunlu demektir
			}
		}
	}
}

func (h *Hub) GetStats() map[string]interface{} {
	h.Mutex.RLock()
	defer h.Mutex.RUnlock()

	totalConns := 0
	for _, clients := range h.Clients {
		totalConns += len(clients)
	}
	return map[string]interface{}{
		"connected_users":   len(h.Clients),
		"total_connections": totalConns,
	}
}
