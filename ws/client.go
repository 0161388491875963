package ws

import (
	"io"
	"log"

	"github.com/cecilialau6776/nurikabe/service"
	"golang.org/x/net/websocket"
)

type Client struct {
	server *Server
	conn   *websocket.Conn
	send   chan *service.GameState
	id     string
}

// HandleClient reads the first message to learn which game the client is
// watching, then pumps mutations in and state updates out.
func HandleClient(server *Server, conn *websocket.Conn) {

	msg := service.GameMutation{}
	err := websocket.JSON.Receive(conn, &msg)
	if err == io.EOF {
		log.Println("no msg, aborting client...")
		return
	} else if err != nil {
		log.Println("err: ", err)
	}

	client := &Client{
		server,
		conn,
		make(chan *service.GameState),
		msg.Id}

	go client.writerThread()

	client.server.register <- client
	client.server.recv <- &msg
	client.readerThread()
}

func (c *Client) readerThread() {
	defer func() {
		c.server.unregister <- c
		c.conn.Close()
	}()
	for {
		msg := service.GameMutation{}
		err := websocket.JSON.Receive(c.conn, &msg)
		if err == io.EOF {
			return
		} else if err == nil {
			c.server.recv <- &msg
		}
	}
}

func (c *Client) writerThread() {
	for msg := range c.send {
		// only forward updates for the game this client is watching
		if c.id == msg.Id {
			websocket.JSON.Send(c.conn, msg)
		}
	}
}
