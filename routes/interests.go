package routes

import (
	"teamup_server/controllers"
	"teamup_server/services"

	"github.com/gorilla/mux"
)

// RegisterInterestRoutes sets up routes for interest-ledger operations under /api/interests
func RegisterInterestRoutes(r *mux.Router, interestService *services.InterestService) {
	controller := controllers.NewInterestController(interestService)

	interestRouter := r.PathPrefix("/api/interests").Subrouter()
	interestRouter.HandleFunc("", controller.HandleRecordInterest).Methods("POST")
	interestRouter.HandleFunc("/mutual", controller.HandleCheckMutual).Methods("GET")
}
