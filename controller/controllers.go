// controller/controllers.go
package controller

import "github.com/campushub/campus-api/service"

type Controllers struct {
	Menu *MenuController
	Chat *ChatController
}

func InitializeControllers(services *service.Services) *Controllers {
	return &Controllers{
		Menu: NewMenuController(services.Menu),
		Chat: NewChatController(services.Chat),
	}
}
