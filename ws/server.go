package ws

import (
	"log"

	"github.com/cecilialau6776/nurikabe/service"
	"golang.org/x/net/websocket"
)

type Server struct {
	service    *service.GameService
	clients    map[*Client]bool
	recv       chan *service.GameMutation
	register   chan *Client
	unregister chan *Client
}

func NewServer(gameService *service.GameService) *Server {
	return &Server{
		gameService,
		make(map[*Client]bool),
		make(chan *service.GameMutation),
		make(chan *Client),
		make(chan *Client),
	}
}

func (s *Server) OnConnected(conn *websocket.Conn) {
	log.Println("New client connected")
	HandleClient(s, conn)
}

func (s *Server) Listen() {

	log.Println("Starting WS server thread")
	for {
		select {
		case c := <-s.register:
			s.clients[c] = true
			log.Println("Added client, count: ", len(s.clients))

		case c := <-s.unregister:
			log.Println("Unregistered client, count: ", len(s.clients))
			if _, ok := s.clients[c]; ok {
				delete(s.clients, c)
				close(c.send)
			}

		case m := <-s.recv:
			out, err := s.service.Apply(m)
			if err != nil {
				log.Println("mutation rejected: ", err)
				continue
			}
			for client := range s.clients {
				client.send <- out
			}
		}
	}
}
