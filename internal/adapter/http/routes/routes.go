package routes

import (
	_ "corpculture/docs" // This will be auto-generated
	"corpculture/internal/adapter/http/handlers"
	repository2 "corpculture/internal/adapter/persistence/repository"
	"corpculture/internal/infrastructure/remote"
	"corpculture/internal/usecase"
	"log"
	"os"
	"strconv"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(resolvePort()))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	gateway, err := remote.NewCorpcultureGatewayFromEnv()
	if err != nil {
		log.Fatalf("Corpculture API gateway not configured: %v", err)
	}

	draftRepo := repository2.NewMemoryDraftRepository()

	draftUseCase := usecase.NewDraftUseCase(draftRepo, gateway)
	submissionUseCase := usecase.NewSubmissionUseCase(draftRepo, gateway)
	listingUseCase := usecase.NewListingUseCase(gateway)
	sequenceUseCase := usecase.NewSequenceUseCase(gateway)
	dashboardUseCase := usecase.NewDashboardUseCase(gateway)

	draftHandler := handlers.NewDraftHandler(draftUseCase, submissionUseCase)
	listingHandler := handlers.NewListingHandler(listingUseCase)
	sequenceHandler := handlers.NewSequenceHandler(sequenceUseCase)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addBackofficeRoutes(v1, draftHandler, listingHandler, sequenceHandler, dashboardHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))
}

func resolvePort() int {
	if raw := os.Getenv("PORT"); raw != "" {
		if port, err := strconv.Atoi(raw); err == nil {
			return port
		}
	}
	return PORT
}
