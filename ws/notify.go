package ws

import (
	"log"
	"net/http"
	"sync"

	"qrmenu/entity"
	"qrmenu/pkg/resp"
	"qrmenu/services"
	"qrmenu/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// NotificationHub fans tenant events out to the owner's connected dashboards.
// One subscription set per restaurant.
type NotificationHub struct {
	clients    map[uint]map[*websocket.Conn]bool // restaurantID -> set of clients
	broadcast  chan broadcastEvent
	register   chan subscription
	unregister chan subscription
	mu         sync.Mutex
	restaurant *services.RestaurantService
}

type subscription struct {
	Conn         *websocket.Conn
	RestaurantID uint
}

type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

type broadcastEvent struct {
	RestaurantID uint
	Event        Event
}

func NewNotificationHub(restaurant *services.RestaurantService) *NotificationHub {
	return &NotificationHub{
		clients:    make(map[uint]map[*websocket.Conn]bool),
		broadcast:  make(chan broadcastEvent),
		register:   make(chan subscription),
		unregister: make(chan subscription),
		restaurant: restaurant,
	}
}

func (h *NotificationHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.RestaurantID] == nil {
				h.clients[sub.RestaurantID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.RestaurantID][sub.Conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.RestaurantID][sub.Conn]; ok {
				delete(h.clients[sub.RestaurantID], sub.Conn)
				sub.Conn.Close()
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients[msg.RestaurantID] {
				if err := conn.WriteJSON(msg.Event); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients[msg.RestaurantID], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// OrderCreated / WaiterCallCreated satisfy services.Notifier.

func (h *NotificationHub) OrderCreated(restaurantID uint, order *entity.Order) {
	h.broadcast <- broadcastEvent{RestaurantID: restaurantID, Event: Event{Type: "order.created", Data: order}}
}

func (h *NotificationHub) WaiterCallCreated(restaurantID uint, call *entity.WaiterCall) {
	h.broadcast <- broadcastEvent{RestaurantID: restaurantID, Event: Event{Type: "waiter_call.created", Data: call}}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/notifications
func (h *NotificationHub) HandleWebSocket(c *gin.Context) {
	userID := utils.CurrentUserID(c)

	rest, err := h.restaurant.GetForUser(userID)
	if err != nil {
		resp.Error(c, err)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	sub := subscription{Conn: conn, RestaurantID: rest.ID}
	h.register <- sub

	// reader loop exists only to notice the close
	go func() {
		defer func() { h.unregister <- sub }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
