package routes

import (
	"teamup_server/controllers"
	"teamup_server/services"

	"github.com/gorilla/mux"
)

// RegisterChatRoutes sets up routes for match chat under /api/chat
func RegisterChatRoutes(r *mux.Router, chatService *services.ChatService) {
	controller := controllers.NewChatController(chatService)

	chatRouter := r.PathPrefix("/api/chat").Subrouter()
	chatRouter.HandleFunc("/message", controller.HandleSendMessage).Methods("POST")
	chatRouter.HandleFunc("/message/read", controller.HandleMarkRead).Methods("POST")
	chatRouter.HandleFunc("/{matchId}", controller.HandleGetMessages).Methods("GET")
}
