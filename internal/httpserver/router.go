package httpserver

import (
	"log"
	"net/http"

	"storefront-core/internal/catalog"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Deps carries the stub CMS collaborators.
type Deps struct {
	Catalog *catalog.Catalog
	Tickets *TicketStore
}

// buildRouter wires the stub CMS routes. The storefront runs in a browser,
// so every route is CORS-open.
func buildRouter(logger *log.Logger, deps Deps) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.Default())

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(deps.Tickets))

	api := router.Group("/api")
	api.GET("/products", listProductsHandler(deps.Catalog))
	api.GET("/products/:slug", productBySlugHandler(deps.Catalog))
	api.POST("/tickets", createTicketHandler(deps.Tickets))
	api.GET("/tickets/:id", ticketByIDHandler(deps.Tickets))
	api.POST("/tickets/:id/replies", appendReplyHandler(deps.Tickets))
	api.POST("/tickets/:id/agent-replies", appendAgentReplyHandler(deps.Tickets))
	api.POST("/tickets/:id/close", closeTicketHandler(deps.Tickets))
	api.POST("/assistant/reply", assistantReplyHandler)

	return router, nil
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func readyHandler(tickets *TicketStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tickets == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "reason": "ticket store not configured"})
			return
		}
		if err := probeBackend(c.Request.Context(), tickets.backend); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "reason": "ticket backend not reachable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	}
}
