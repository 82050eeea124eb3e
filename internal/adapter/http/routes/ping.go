package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	response "mvz_quote/internal/adapter/http/dto/response"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, response.PingResponse{Message: "pong"})
	})
}
