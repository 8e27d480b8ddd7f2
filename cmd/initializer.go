package main

import (
	"database/sql"
	"log"
	"net/http"

	"marketBack/internal/config"
	"marketBack/internal/handlers"
	"marketBack/internal/repositories"
	"marketBack/internal/services"
	"marketBack/utils"

	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"
)

type application struct {
	errorLog   *log.Logger
	infoLog    *log.Logger
	db         *sql.DB
	signingKey string

	userRepo *repositories.UserRepository

	userHandler           *handlers.UserHandler
	listingHandler        *handlers.ListingHandler
	categoryHandler       *handlers.CategoryHandler
	messageHandler        *handlers.MessageHandler
	offerHandler          *handlers.OfferHandler
	recommendationHandler *handlers.RecommendationHandler
	reviewHandler         *handlers.ReviewHandler
	favoriteHandler       *handlers.FavoriteHandler
	supportHandler        *handlers.SupportHandler
	aiHandler             *handlers.AIHandler
	adminHandler          *handlers.AdminHandler
}

func initializeApp(db *sql.DB, cfg config.Config, errorLog, infoLog *log.Logger) *application {
	// Repositories
	userRepo := repositories.UserRepository{DB: db}
	listingRepo := repositories.ListingRepository{DB: db}
	messageRepo := repositories.MessageRepository{DB: db}
	offerRepo := repositories.OfferRepository{DB: db}
	reviewRepo := repositories.ReviewRepository{DB: db}
	favoriteRepo := repositories.FavoriteRepository{DB: db}
	supportRepo := repositories.SupportRepository{DB: db}

	var cache *redis.Client
	if cfg.Redis.Addr != "" {
		cache = redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
	}

	storage, err := utils.NewMediaStorage(cfg.Storage.Endpoint, cfg.Storage.Region, cfg.Storage.Bucket, cfg.Storage.AccessKey, cfg.Storage.SecretKey)
	if err != nil {
		infoLog.Printf("Media storage disabled: %v", err)
	}

	tokenManager, err := utils.NewManager(cfg.Auth.SigningKey)
	if err != nil {
		errorLog.Fatal(err)
	}

	// Services
	userService := &services.UserService{UserRepo: &userRepo, TokenManager: tokenManager, SigningKey: cfg.Auth.SigningKey}
	listingService := &services.ListingService{ListingRepo: &listingRepo, UserRepo: &userRepo, Storage: storage}
	conversationService := &services.ConversationService{Messages: &messageRepo, Users: &userRepo, Listings: &listingRepo}
	offerService := &services.OfferService{Offers: &offerRepo, Messages: &messageRepo, Users: &userRepo, Listings: &listingRepo}
	recommendationService := &services.RecommendationService{Listings: &listingRepo, Favorites: &favoriteRepo, Cache: cache}
	reviewService := &services.ReviewService{Reviews: &reviewRepo, Users: &userRepo}
	favoriteService := &services.FavoriteService{Favorites: &favoriteRepo, Listings: &listingRepo, Recommendations: recommendationService}
	supportService := &services.SupportService{SupportRepo: &supportRepo, UserRepo: &userRepo}
	aiService := services.NewAIService(services.NewOpenAIClient(nil, cfg.AI.APIKey), cfg.AI.Model)
	adminService := &services.AdminService{
		UserRepo:     &userRepo,
		ListingRepo:  &listingRepo,
		MessageRepo:  &messageRepo,
		OfferRepo:    &offerRepo,
		ReviewRepo:   &reviewRepo,
		FavoriteRepo: &favoriteRepo,
		SupportRepo:  &supportRepo,
	}

	// Handlers
	return &application{
		errorLog:   errorLog,
		infoLog:    infoLog,
		db:         db,
		signingKey: cfg.Auth.SigningKey,
		userRepo:   &userRepo,

		userHandler:           &handlers.UserHandler{Service: userService},
		listingHandler:        &handlers.ListingHandler{Service: listingService},
		categoryHandler:       &handlers.CategoryHandler{},
		messageHandler:        &handlers.MessageHandler{Service: conversationService},
		offerHandler:          &handlers.OfferHandler{Service: offerService},
		recommendationHandler: &handlers.RecommendationHandler{Service: recommendationService},
		reviewHandler:         &handlers.ReviewHandler{Service: reviewService},
		favoriteHandler:       &handlers.FavoriteHandler{Service: favoriteService},
		supportHandler:        &handlers.SupportHandler{Service: supportService},
		aiHandler:             &handlers.AIHandler{Service: aiService},
		adminHandler:          &handlers.AdminHandler{Service: adminService},
	}
}

func openDB(driver, dsn string) (*sql.DB, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		log.Printf("Failed to open DB: %v", err)
		return nil, err
	}
	if err = db.Ping(); err != nil {
		log.Printf("Failed to ping DB: %v", err)
		return nil, err
	}
	db.SetMaxIdleConns(35)
	log.Println("Successfully connected to database")
	return db, nil
}

func (app *application) serverError(w http.ResponseWriter, err error) {
	app.errorLog.Output(2, err.Error())
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
