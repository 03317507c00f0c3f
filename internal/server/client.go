package server

import (
	"net/http"
	"time"

	"tlb-server/internal/engine"
	"tlb-server/pkg/api"
	"tlb-server/pkg/logger"
	"tlb-server/pkg/utils"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Настройки WebSocket
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client - посредник между Websocket и Service. Наблюдатель не владеет
// персонажем: команды без токена уходят активному персонажу.
type Client struct {
	Game      *engine.Service
	Conn      *websocket.Conn
	Codec     api.Codec
	SessionID string

	updates <-chan *api.Snapshot
}

func NewClient(game *engine.Service, conn *websocket.Conn, codec api.Codec) *Client {
	id := utils.GenerateID()
	return &Client{
		Game:      game,
		Conn:      conn,
		Codec:     codec,
		SessionID: id,
		updates:   game.Subscribe(id),
	}
}

func (c *Client) log() *logrus.Entry {
	return logger.Log.WithFields(logrus.Fields{
		"component":  "ws_client",
		"session_id": c.SessionID,
	})
}

// readPump читает команды от клиента
func (c *Client) readPump() {
	defer func() {
		c.Game.Unsubscribe(c.SessionID)
		if err := c.Conn.Close(); err != nil {
			c.log().WithError(err).Warn("failed to close websocket connection")
		}
		c.log().Info("Client disconnected")
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		c.log().WithError(err).Warn("failed to set read deadline")
	}
	c.Conn.SetPongHandler(func(string) error {
		if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			c.log().WithError(err).Warn("failed to set pong read deadline")
		}
		return nil
	})

	c.log().WithField("codec", c.Codec.String()).Info("Client connected")

	for {
		var cmd api.ClientCommand
		err := c.Conn.ReadJSON(&cmd)
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.log().Errorf("WS Error: %v", err)
			}
			break
		}
		if err := c.Game.ProcessCommand(cmd); err != nil {
			c.log().WithError(err).WithField("action", cmd.Action).Warn("Command rejected")
		}
	}
}

// writePump отправляет снимки клиенту + Ping
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		if err := c.Conn.Close(); err != nil {
			c.log().WithError(err).Debug("failed to close websocket connection in writePump")
		}
	}()

	frameType := websocket.TextMessage
	if c.Codec.IsBinary() {
		frameType = websocket.BinaryMessage
	}

	for {
		select {
		case snap, ok := <-c.updates:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				c.log().WithError(err).Warn("failed to set write deadline")
			}
			if !ok {
				if err := c.Conn.WriteMessage(websocket.CloseMessage, []byte{}); err != nil {
					c.log().WithError(err).Debug("write close message failed")
				}
				return
			}
			data, err := api.EncodeSnapshot(snap, c.Codec)
			if err != nil {
				c.log().WithError(err).Error("encode snapshot failed")
				continue
			}
			if err := c.Conn.WriteMessage(frameType, data); err != nil {
				c.log().WithError(err).Debug("write snapshot failed")
				return
			}

		case <-ticker.C:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				c.log().WithError(err).Warn("failed to set ping write deadline")
			}
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.log().WithError(err).Debug("ping failed")
				return
			}
		}
	}
}
