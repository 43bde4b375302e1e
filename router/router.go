// router/router.go

package router

import (
	"time"

	"github.com/campushub/campus-api/controller"
	"github.com/campushub/campus-api/middleware"
	"github.com/gin-gonic/gin"
)

func SetupRouter(
	controllers *controller.Controllers,
	rateLimitRequests int,
	rateLimitDuration time.Duration,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.RateLimiter(rateLimitRequests, rateLimitDuration))

	api := router.Group("/api/v1")

	controllers.Menu.RegisterRoutes(api)
	controllers.Chat.RegisterRoutes(api)

	return router
}
