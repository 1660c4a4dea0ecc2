package routes

import (
	"net/http"

	"lmnts_studio/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathWizard      = "/wizard"
	PathServices    = "/services"
	PathSubmissions = "/admin/submissions"
)

func addLeadRoutes(rg *gin.RouterGroup, wizardHandler *handlers.WizardHandler, adminHandler *handlers.AdminHandler, catalogHandler *handlers.CatalogHandler) {
	rg.GET(PathServices, catalogHandler.ListServices)

	wiz := rg.Group(PathWizard)
	{
		wiz.POST("", wizardHandler.StartWizard)
		wiz.GET("/:id", wizardHandler.GetWizard)
		wiz.PATCH("/:id", wizardHandler.UpdateWizard)
		wiz.POST("/:id/next", wizardHandler.NextStep)
		wiz.POST("/:id/back", wizardHandler.PrevStep)
		wiz.POST("/:id/upsell", wizardHandler.SelectUpsell)
		wiz.POST("/:id/submit", wizardHandler.SubmitWizard)
	}

	admin := rg.Group(PathSubmissions)
	{
		admin.GET("", adminHandler.ListSubmissions)
		admin.GET("/stats", adminHandler.GetStats)
		admin.PATCH("/:id/status", adminHandler.UpdateStatus)
		admin.POST("/:id/invoice", adminHandler.GenerateInvoice)
		admin.POST("/:id/message", adminHandler.SendMessage)
	}
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}
