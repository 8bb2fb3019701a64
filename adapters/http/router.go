package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khoahotran/portfolio-builder/pkg/logger"
)

func NewRouter(h *PortfolioHandler, log logger.Logger) *gin.Engine {
	router := gin.New()
	router.Use(Recovery(log), RequestLogger(log), ErrorMiddleware(log))

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })
		api.GET("/templates", h.ListTemplates)
		api.GET("/facets", h.GetFacets)

		portfolios := api.Group("/portfolios")
		{
			portfolios.GET("", h.ListPortfolios)
			portfolios.POST("", h.CreatePortfolio)
			portfolios.GET("/current", h.GetCurrentPortfolio)
			portfolios.GET("/:id", h.GetPortfolio)
			portfolios.PATCH("/:id", h.UpdatePortfolio)
			portfolios.DELETE("/:id", h.DeletePortfolio)
		}
	}
	return router
}
