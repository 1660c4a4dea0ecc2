package routes

import (
	"log"
	"os"
	"strconv"

	_ "lmnts_studio/docs" // This will be auto-generated
	"lmnts_studio/internal/adapter/http/handlers"
	"lmnts_studio/internal/adapter/persistence/backup"
	repository2 "lmnts_studio/internal/adapter/persistence/repository"
	"lmnts_studio/internal/infrastructure/automation"
	"lmnts_studio/internal/infrastructure/database"
	"lmnts_studio/internal/infrastructure/email"
	"lmnts_studio/internal/infrastructure/qualification"
	"lmnts_studio/internal/usecase"
	"lmnts_studio/internal/usecase/interfaces"
	"lmnts_studio/internal/wizard"

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

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	// Local backup store: the one hard dependency. Without it no submission
	// can be accepted, so failing to open it is fatal.
	backupDB, err := database.ConnectBackupDB()
	if err != nil {
		log.Fatalf("Failed to open the backup store: %v", err)
	}
	backupStore, err := backup.NewStore(backupDB)
	if err != nil {
		log.Fatalf("Failed to migrate the backup store: %v", err)
	}

	ddb := database.ConnectDynamoDB()
	projectRepo := repository2.NewProjectDynamoRepository(ddb)

	var qualifier interfaces.IQualificationClient
	if url := os.Getenv("LOA_API_URL"); url != "" {
		qualifier = qualification.NewClient(url)
	} else {
		log.Printf("[routes] LOA_API_URL not set, qualification runs on the local fallback")
	}

	var notifier interfaces.ILeadNotifier
	if url := os.Getenv("N8N_WEBHOOK_URL"); url != "" {
		notifier = automation.NewClient(url)
	} else {
		log.Printf("[routes] N8N_WEBHOOK_URL not set, automation webhooks disabled")
	}

	var emails interfaces.IEmailSender
	if key := os.Getenv("RESEND_API_KEY"); key != "" {
		emails = email.NewSender(
			key,
			getenvDefault("EMAIL_FROM", "noreply@9lmnts.studio"),
			getenvDefault("AGENCY_EMAIL", "info@9lmnts.studio"),
			backupStore,
		)
	} else {
		log.Printf("[routes] RESEND_API_KEY not set, transactional emails disabled")
	}

	pipeline := usecase.NewSubmissionPipeline(projectRepo, backupStore, qualifier, notifier, emails)
	wizardUseCase := usecase.NewWizardUseCase(wizard.NewStore(), pipeline)
	adminUseCase := usecase.NewAdminUseCase(projectRepo, backupStore, notifier)

	wizardHandler := handlers.NewWizardHandler(wizardUseCase)
	adminHandler := handlers.NewAdminHandler(adminUseCase)
	catalogHandler := handlers.NewCatalogHandler()

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addLeadRoutes(v1, wizardHandler, adminHandler, catalogHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
