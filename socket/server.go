package socket

import (
	"log"

	socketio "github.com/googollee/go-socket.io"
)

// NewSocketServer initializes the Socket.IO server that powers live match
// chat. Clients join a room per match ID and receive newMessage broadcasts.
func NewSocketServer() *socketio.Server {
	server := socketio.NewServer(nil)

	server.OnConnect("/", func(s socketio.Conn) error {
		log.Println("✅ Socket connected:", s.ID())
		return nil
	})

	server.OnEvent("/", "join", func(s socketio.Conn, matchID string) {
		if matchID == "" {
			log.Println("❌ Invalid matchId in join request")
			return
		}
		log.Printf("👥 Socket %s joined match %s\n", s.ID(), matchID)
		s.Join(matchID)
	})

	server.OnEvent("/", "sendMessage", func(s socketio.Conn, message map[string]interface{}) {
		matchID, ok := message["matchId"].(string)
		if !ok || matchID == "" {
			log.Println("❌ Invalid matchId in sendMessage")
			return
		}
		log.Printf("📩 New message for match %s\n", matchID)
		server.BroadcastToRoom("/", matchID, "newMessage", message)
	})

	server.OnDisconnect("/", func(s socketio.Conn, reason string) {
		log.Println("❌ Socket disconnected:", s.ID(), reason)
	})

	return server
}
