package websocket

import (
	"context"

	"github.com/gofiber/websocket/v2"
)

// ServeChat registers the connection and blocks until it closes.
func ServeChat(hub *Hub, conn *websocket.Conn, respond Responder) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client := &Client{Hub: hub, Conn: conn, Send: make(chan []byte, sendBuffer), respond: respond}
	if !hub.join(client) {
		return
	}

	go client.writePump()
	client.readPump(ctx)
}
