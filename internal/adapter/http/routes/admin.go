package routes

import (
	"freight_portal/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathAdmin = "/admin"

func addAdminRoutes(rg *gin.RouterGroup, admin *handlers.AdminHandler, catalog *handlers.CatalogHandler) {
	rg.GET("/dashboard", admin.Dashboard)

	quotes := rg.Group(PathQuotes)
	{
		quotes.GET("", admin.ListQuotes)
		quotes.PATCH("/:id/:action", admin.QuoteAction)
		quotes.POST("/:id/shipment", admin.CreateShipment)
	}

	shipments := rg.Group("/shipments")
	{
		shipments.GET("", admin.ListShipments)
		shipments.PATCH("/:id/status", admin.UpdateShipmentStatus)
		shipments.DELETE("/:id", admin.DeleteShipment)
	}

	pricing := rg.Group("/pricing")
	{
		pricing.GET("", catalog.ListPricing)
		pricing.POST("", catalog.SavePricing)
		pricing.DELETE("/:id", catalog.DeletePricing)
	}

	packageTypes := rg.Group("/package-types")
	{
		packageTypes.GET("", catalog.ListPackageTypes)
		packageTypes.POST("", catalog.SavePackageType)
		packageTypes.DELETE("/:id", catalog.DeletePackageType)
	}
}
