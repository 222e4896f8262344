package internal

import (
	"net/http"

	"nli/internal/controllers"
	"nli/internal/providers"
)

func InitRoutes(apiController *controllers.ApiController) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Get("/snapshot", http.HandlerFunc(apiController.GetSnapshot))
	routers.Get("/child", http.HandlerFunc(apiController.GetChild))
	routers.Get("/export/accounts", http.HandlerFunc(apiController.ExportAccounts))
	routers.Get("/export/children", http.HandlerFunc(apiController.ExportChildren))
	routers.Get("/export/events", http.HandlerFunc(apiController.ExportEvents))
	return routers
}
