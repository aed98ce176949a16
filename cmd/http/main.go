package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"modifications-service/internal/app/config"
	"modifications-service/internal/app/delivery/http/middlewares"
	"modifications-service/internal/app/delivery/http/routers"
	"modifications-service/internal/app/drivers/database"
	"modifications-service/internal/app/drivers/logger"
	"modifications-service/internal/app/drivers/messaging"
	"modifications-service/internal/app/drivers/storage"
	cmsQuestionSets "modifications-service/internal/app/services/cms/questionsets"
	"modifications-service/internal/app/services/core/documents"
	"modifications-service/internal/app/services/core/modifications"
	"modifications-service/internal/app/services/core/navigation"
	"modifications-service/internal/app/services/core/questionnaires"
	"modifications-service/internal/app/services/core/session"
	"modifications-service/internal/app/services/respondent/answers"
	"modifications-service/internal/app/services/shared/notifications"
	"modifications-service/internal/app/services/shared/redis"
	sharedStorage "modifications-service/internal/app/services/shared/storage"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoClient := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	rabbitConn := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoClient:    mongoClient,
		MongoDB:        mongoClient.Database(driverConfig.MongoDB.DbName),
		Redis:          redisClient,
		Minio:          minioClient,
		RabbitMQ:       rabbitConn,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error while closing drivers: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap) {
	requestTimeout := time.Duration(bootstrap.InternalConfig.App.RequestTimeoutInSeconds) * time.Second
	journeyTTL := time.Duration(bootstrap.InternalConfig.App.JourneyContextTTLInMinutes) * time.Minute

	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis, journeyTTL)

	// Middlewares
	mw := &middlewares.Middlewares{
		Log:             bootstrap.Logger,
		AccessLog:       logger.NewLogrusLogger(bootstrap.InternalConfig),
		InternalConfig:  bootstrap.InternalConfig,
		RedisRepository: redisRepository,
	}

	// Remote clients
	questionSetClient := cmsQuestionSets.NewQuestionSetCmsClient(bootstrap.InternalConfig)
	answerStoreClient := answers.NewAnswerStoreClient(bootstrap.InternalConfig)

	// Storage and messaging
	documentStorage := sharedStorage.NewDocumentMinioStorage(bootstrap.Minio, bootstrap.InternalConfig.App.DocumentBucketName)
	statusEventPublisher, err := notifications.NewStatusEventPublisher(bootstrap.RabbitMQ, bootstrap.Logger, bootstrap.InternalConfig.App.StatusEventQueue)
	if err != nil {
		log.Fatalf("Failed to initialise status event publisher: %v", err)
	}

	// Session
	sessionUsecase := session.NewSessionUsecase(redisRepository, bootstrap.InternalConfig)
	sessionController := session.NewSessionController(bootstrap.Logger, sessionUsecase, requestTimeout)

	// Documents
	documentUsecase := documents.NewDocumentUsecase(questionSetClient, answerStoreClient, documentStorage)

	// Modifications
	modificationMongoRepository := modifications.NewModificationMongoRepository(
		bootstrap.MongoClient,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	modificationUsecase := modifications.NewModificationUsecase(
		modificationMongoRepository,
		questionSetClient,
		answerStoreClient,
		documentUsecase,
		statusEventPublisher,
	)
	modificationController := modifications.NewModificationController(bootstrap.Logger, modificationUsecase, requestTimeout)

	// Questionnaires
	questionnaireUsecase := questionnaires.NewQuestionnaireUsecase(questionSetClient, answerStoreClient, modificationMongoRepository)
	questionnaireController := questionnaires.NewQuestionnaireController(bootstrap.Logger, questionnaireUsecase, requestTimeout)

	// Navigation
	navigationUsecase := navigation.NewNavigationUsecase(questionSetClient, redisRepository)
	navigationController := navigation.NewNavigationController(bootstrap.Logger, navigationUsecase, requestTimeout)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		mw,
		sessionController,
		modificationController,
		questionnaireController,
		navigationController,
	)
}
