// controller/chat_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	campus_errors "github.com/campushub/campus-api/errors"
	"github.com/campushub/campus-api/model"
	"github.com/campushub/campus-api/service"
	"github.com/campushub/campus-api/util"
)

type ChatController struct {
	chatService service.IChatService
}

func NewChatController(chatService service.IChatService) *ChatController {
	return &ChatController{
		chatService: chatService,
	}
}

// RegisterRoutes registers the API routes
func (cc *ChatController) RegisterRoutes(r *gin.RouterGroup) {
	chat := r.Group("/chat")
	{
		chat.POST("/messages/verify", cc.VerifyMessage)
	}
}

// VerifyMessage endpoint. Verification never errors; an unverifiable
// signature is a plain {"valid": false}.
func (cc *ChatController) VerifyMessage(c *gin.Context) {
	var message model.ChatMessage
	if err := c.ShouldBindJSON(&message); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid chat message", campus_errors.ErrInternalServer)
		return
	}

	valid := cc.chatService.VerifyMessage(c, message)
	c.JSON(http.StatusOK, gin.H{"valid": valid})
}
