package events

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/danuartha/warung-pos/models"
	"github.com/danuartha/warung-pos/utils"
)

// Event types
const (
	EventOrderCreated   = "order_created"
	EventOrderUpdate    = "order_update"
	EventMenuUpdate     = "menu_update"
	EventShopClosed     = "shop_closed"
	EventBackupImported = "backup_imported"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Hub menampung koneksi websocket dari layer presentasi (kasir/dapur)
// dan menyiarkan perubahan state ke semuanya.
type Hub struct {
	clients map[*websocket.Conn]struct{}
	mutex   sync.Mutex
}

var hub = Hub{
	clients: make(map[*websocket.Conn]struct{}),
}

// RegisterClient menambahkan connection ke set
func RegisterClient(conn *websocket.Conn) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	hub.clients[conn] = struct{}{}
}

// UnregisterClient melepaskan connection
func UnregisterClient(conn *websocket.Conn) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	delete(hub.clients, conn)
	conn.Close()
}

// BroadcastOrderCreated -> order baru masuk
func BroadcastOrderCreated(order models.Order) {
	broadcast(Message{Event: EventOrderCreated, Data: order})
}

// BroadcastOrderUpdate -> status order berubah
func BroadcastOrderUpdate(order models.Order) {
	broadcast(Message{Event: EventOrderUpdate, Data: order})
}

// BroadcastMenuUpdate -> katalog berubah (create/edit/hide/favorite)
func BroadcastMenuUpdate(item models.MenuItem) {
	broadcast(Message{Event: EventMenuUpdate, Data: item})
}

// BroadcastShopClosed -> rollover harian atau tutup toko manual
func BroadcastShopClosed(archivedCount int) {
	broadcast(Message{
		Event: EventShopClosed,
		Data:  map[string]interface{}{"archived": archivedCount},
	})
}

// BroadcastBackupImported -> dataset diganti lewat import
func BroadcastBackupImported(menuCount, orderCount int) {
	broadcast(Message{
		Event: EventBackupImported,
		Data: map[string]interface{}{
			"menu_items": menuCount,
			"orders":     orderCount,
		},
	})
}

func broadcast(msg Message) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()

	data, err := json.Marshal(msg)
	if err != nil {
		utils.ErrorLogger.Errorf("Error marshaling event: %v", err)
		return
	}

	for conn := range hub.clients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			utils.ErrorLogger.Warnf("Error sending event to client: %v", err)
			continue
		}
	}
}
