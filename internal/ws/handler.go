package ws

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/roobux/backend/internal/config"
	"github.com/roobux/backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const (
	writeWait = 10 * time.Second

	pongWait = 60 * time.Second

	pingPeriod = (pongWait * 9) / 10

	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type WebSocketHandler struct {
	hub *Hub
	cfg *config.Config
}

func NewWebSocketHandler(hub *Hub, cfg *config.Config) *WebSocketHandler {
	return &WebSocketHandler{hub: hub, cfg: cfg}
}

// HandleConnection upgrades the request and starts the pumps. A token is
// optional; anonymous clients can watch prices but cannot join chat rooms.
func (h *WebSocketHandler) HandleConnection(c *gin.Context) {
	userID, isAdmin := h.identify(c.Query("token"))

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	client := h.hub.RegisterClient(conn, userID, isAdmin)

	go h.readPump(client)
	go h.writePump(client)
}

func (h *WebSocketHandler) identify(tokenStr string) (string, bool) {
	if tokenStr == "" {
		return "", false
	}
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(h.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return "", false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", false
	}
	userID, _ := claims["user_id"].(string)
	isAdmin, _ := claims["is_admin"].(bool)
	return userID, isAdmin
}

// canSubscribe enforces chat-room access: the prices feed is open, a chat
// room admits its owner and admins only.
func canSubscribe(client *models.Client, topic string) bool {
	if !strings.HasPrefix(topic, "chat:") {
		return true
	}
	if client.IsAdmin {
		return true
	}
	return client.UserID != "" && topic == "chat:"+client.UserID
}

func (h *WebSocketHandler) readPump(client *models.Client) {
	defer func() {
		h.hub.UnregisterClient(client)
	}()

	client.Conn.SetReadLimit(maxMessageSize)
	client.Conn.SetReadDeadline(time.Now().Add(pongWait))
	client.Conn.SetPongHandler(func(string) error {
		client.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := client.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logrus.WithError(err).Debug("websocket read error")
			}
			break
		}

		var socketMsg models.SocketMessage
		if err := json.Unmarshal(message, &socketMsg); err != nil {
			client.Conn.WriteJSON(models.ErrorResponse{Error: "Invalid message format"})
			continue
		}

		switch socketMsg.Action {
		case "subscribe":
			if !canSubscribe(client, socketMsg.Topic) {
				client.Conn.WriteJSON(models.ErrorResponse{Error: "Not allowed to subscribe to " + socketMsg.Topic})
				continue
			}
			client.Subscribe(socketMsg.Topic)
			client.Conn.WriteJSON(models.SubscriptionResponse{
				Status:  "success",
				Message: "Subscribed to " + socketMsg.Topic,
				Topics:  client.TopicList(),
			})

		case "unsubscribe":
			client.Unsubscribe(socketMsg.Topic)
			client.Conn.WriteJSON(models.SubscriptionResponse{
				Status:  "success",
				Message: "Unsubscribed from " + socketMsg.Topic,
				Topics:  client.TopicList(),
			})

		default:
			client.Conn.WriteJSON(models.ErrorResponse{Error: "Unknown action"})
		}
	}
}

func (h *WebSocketHandler) writePump(client *models.Client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		client.Conn.Close()
	}()

	for {
		select {
		case payload, ok := <-client.Send:
			client.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				client.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := client.Conn.WriteJSON(payload); err != nil {
				return
			}

		case <-ticker.C:
			client.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := client.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
