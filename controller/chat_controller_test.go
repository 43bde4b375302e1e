// controller/chat_controller_test.go
package controller_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/campushub/campus-api/controller"
	logger "github.com/campushub/campus-api/logging"
	test_mock "github.com/campushub/campus-api/test/mock"
)

func newChatRouter() (*gin.Engine, *test_mock.MockChatService) {
	gin.SetMode(gin.TestMode)

	chatService := new(test_mock.MockChatService)
	chatController := controller.NewChatController(chatService)

	router := gin.New()
	api := router.Group("/")
	chatController.RegisterRoutes(api)

	return router, chatService
}

func TestChatController(t *testing.T) {
	// Initialize logger
	logger.InitLogger(t.TempDir())
	defer logger.Sync()

	t.Run("VerifyMessage_Valid", func(t *testing.T) {
		router, chatService := newChatRouter()
		chatService.On("VerifyMessage", mock.Anything, mock.Anything).Return(true)

		body := strings.NewReader(`{"text":"hello campus","signature":"c2lnbmF0dXJl"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/chat/messages/verify", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]bool
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&response))
		assert.True(t, response["valid"])
	})

	t.Run("VerifyMessage_Invalid", func(t *testing.T) {
		router, chatService := newChatRouter()
		chatService.On("VerifyMessage", mock.Anything, mock.Anything).Return(false)

		body := strings.NewReader(`{"text":"hello campus","signature":"Zm9yZ2Vk"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/chat/messages/verify", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]bool
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&response))
		assert.False(t, response["valid"])
	})

	t.Run("VerifyMessage_Failure_MissingFields", func(t *testing.T) {
		router, chatService := newChatRouter()

		body := strings.NewReader(`{"text":"hello campus"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/chat/messages/verify", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		chatService.AssertNotCalled(t, "VerifyMessage", mock.Anything, mock.Anything)
	})

	t.Run("VerifyMessage_Failure_MalformedBody", func(t *testing.T) {
		router, _ := newChatRouter()

		body := strings.NewReader(`{"text":`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/chat/messages/verify", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
