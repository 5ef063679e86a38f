package routes

import (
	"freight_portal/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathSession   = "/session"
	PathTrack     = "/track"
	PathQuotes    = "/quotes"
	PathWizard    = "/wizard"
	PathAddresses = "/addresses"
	PathPayments  = "/payments"
)

func addSessionRoutes(rg *gin.RouterGroup, h *handlers.SessionHandler) {
	session := rg.Group(PathSession)
	{
		session.GET("", h.Current)
		session.POST("/dev/disable", h.DisableSandbox)
		session.POST("/dev/enable", h.EnableSandbox)
	}
}

func addTrackingRoutes(rg *gin.RouterGroup, h *handlers.TrackingHandler) {
	rg.GET(PathTrack+"/:code", h.Track)
}

func addQuoteRoutes(rg *gin.RouterGroup, meta *handlers.MetadataHandler, wizard *handlers.WizardHandler) {
	rg.GET(PathQuotes+"/meta", meta.Get)

	drafts := rg.Group(PathWizard)
	{
		drafts.POST("", wizard.Start)
		drafts.GET("/:id", wizard.Get)
		drafts.PUT("/:id/itinerary", wizard.UpdateItinerary)
		drafts.PUT("/:id/cargo", wizard.UpdateCargo)
		drafts.PUT("/:id/contacts", wizard.UpdateContacts)
		drafts.POST("/:id/estimates", wizard.RequestEstimates)
		drafts.POST("/:id/estimates/select", wizard.SelectEstimate)
		drafts.POST("/:id/next", wizard.Next)
		drafts.POST("/:id/back", wizard.Back)
		drafts.POST("/:id/submit", wizard.Submit)
	}
}

func addAddressRoutes(rg *gin.RouterGroup, h *handlers.AddressHandler) {
	addresses := rg.Group(PathAddresses)
	{
		addresses.GET("", h.List)
		addresses.POST("", h.Create)
		addresses.PUT("/:id", h.Update)
		addresses.DELETE("/:id", h.Delete)
	}
}

func addPaymentRoutes(rg *gin.RouterGroup, h *handlers.PaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("/:quote_id", h.Pay)
		payments.GET("/:quote_id", h.Latest)
		payments.GET("/:quote_id/history", h.History)
	}
}
