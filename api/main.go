package main

import (
	"context"
	"log"
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/talentbase/ats-backend/auth"
	"github.com/talentbase/ats-backend/config"
	"github.com/talentbase/ats-backend/logger"
	"github.com/talentbase/ats-backend/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	if err := logger.Setup(cfg.LogDir); err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("mongo connect: %v", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("mongo ping: %v", err)
	}
	log.Println("MongoDB connected")

	users := client.Database(cfg.DBName).Collection("users")
	if err := auth.EnsureIndexes(ctx, users); err != nil {
		log.Fatalf("creating indexes: %v", err)
	}

	svc := auth.NewService(auth.NewMongoAccountRepository(users), auth.PrometheusEvents{})

	router := httprouter.New()
	router.Handler(http.MethodPost, "/api/auth/register", auth.RegisterHandler(svc))
	router.Handler(http.MethodPost, "/api/auth/login", auth.LoginHandler(svc))
	router.Handler(http.MethodGet, "/metrics", promhttp.Handler())
	router.HandleMethodNotAllowed = false
	router.NotFound = web.NotFound()

	handler := web.CORS(web.Logging(web.Metrics(router)))

	log.Printf("Server running on port %s", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, handler))
}
