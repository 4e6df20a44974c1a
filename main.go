package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"teamup_server/config"
	"teamup_server/routes"
	"teamup_server/services"
	"teamup_server/socket"
	"teamup_server/storage"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize DynamoDB client and storage
	log.Println("Initializing DynamoDB client...")
	dynamoClient := storage.NewDynamoDBClient(cfg.AWSRegion)
	log.Println("DynamoDB client initialized.")

	teamStorage := &storage.DynamoTeamStorage{Client: dynamoClient, TableName: cfg.TeamsTable}
	interestStorage := &storage.DynamoInterestStorage{Client: dynamoClient, TableName: cfg.InterestsTable}
	sessionStorage := &storage.DynamoSessionStorage{Client: dynamoClient, TableName: cfg.SessionsTable}
	matchStorage := &storage.DynamoMatchStorage{Client: dynamoClient, TableName: cfg.MatchesTable}
	messageStorage := &storage.DynamoMessageStorage{Client: dynamoClient, TableName: cfg.MatchMessagesTable}

	// Initialize Services
	teamService := &services.TeamService{Teams: teamStorage}
	discoveryService := &services.DiscoveryService{Teams: teamStorage}
	matchService := &services.MatchService{Matches: matchStorage, Sessions: sessionStorage, Teams: teamStorage}
	votingService := &services.VotingService{
		Sessions: sessionStorage,
		Promoter: matchService,
		Window:   time.Duration(cfg.VotingWindowHours) * time.Hour,
	}
	interestService := &services.InterestService{
		Interests: interestStorage,
		Sessions:  sessionStorage,
		Teams:     teamStorage,
		Voting:    votingService,
	}
	chatService := &services.ChatService{Messages: messageStorage, Matches: matchService}

	// Initialize the router
	r := mux.NewRouter()

	// Register a welcome route
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "Welcome to TeamUp")
	}).Methods("GET")

	// Register a health check endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		response := map[string]string{"status": "healthy"}
		json.NewEncoder(w).Encode(response)
	}).Methods("GET")

	// Register routes
	routes.RegisterTeamRoutes(r, teamService)
	routes.RegisterDiscoveryRoutes(r, discoveryService)
	routes.RegisterInterestRoutes(r, interestService)
	routes.RegisterVotingRoutes(r, votingService)
	routes.RegisterMatchRoutes(r, matchService)
	routes.RegisterChatRoutes(r, chatService)

	// Media routes need an S3 client; skip them when no bucket is configured
	if cfg.S3Bucket != "" {
		awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO(), awsconfig.WithRegion(cfg.AWSRegion))
		if err != nil {
			log.Fatalf("Failed to load AWS config for S3: %v", err)
		}
		mediaService := &services.MediaService{Client: s3.NewFromConfig(awsCfg), Bucket: cfg.S3Bucket}
		routes.RegisterMediaRoutes(r, mediaService)
	}

	// Socket.IO server for live match chat
	socketServer := socket.NewSocketServer()
	go func() {
		if err := socketServer.Serve(); err != nil {
			log.Printf("Socket server error: %v", err)
		}
	}()
	defer socketServer.Close()
	r.Handle("/socket.io/", socketServer)

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // Adjust for specific domains if needed
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	// Start the HTTP server
	log.Printf("Starting server on port %s...\n", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, corsHandler))
}
