// service/chat_service.go
package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/campushub/campus-api/audit"
	logger "github.com/campushub/campus-api/logging"
	"github.com/campushub/campus-api/model"
	"github.com/campushub/campus-api/signature"
)

// IChatService defines the chat message operations
type IChatService interface {
	VerifyMessage(ctx context.Context, message model.ChatMessage) bool
	ReloadKeys(keys []model.ChatPublicKey)
}

// ChatService validates inbound chat messages against the pool of
// known member public keys.
type ChatService struct {
	verifier     *signature.Verifier
	auditService audit.Service
}

var _ IChatService = &ChatService{}

// NewChatService creates a new instance of ChatService
func NewChatService(verifier *signature.Verifier, auditService audit.Service) *ChatService {
	return &ChatService{
		verifier:     verifier,
		auditService: auditService,
	}
}

// VerifyMessage reports whether the message signature matches any
// known public key. Verification failures are plain false results,
// never errors, to keep call sites simple.
func (s *ChatService) VerifyMessage(ctx context.Context, message model.ChatMessage) bool {
	valid := s.verifier.Validate(message)
	if !valid {
		logger.Warn("Rejected chat message with unverifiable signature",
			zap.Int("bodyBytes", len(message.Text)))
	}

	s.logVerification(ctx, valid, len(message.Text))
	return valid
}

// ReloadKeys swaps the trusted key set, e.g. after a key rotation in
// the member registry.
func (s *ChatService) ReloadKeys(keys []model.ChatPublicKey) {
	s.verifier.Reset(keys)
	logger.Info("Chat public key pool reloaded", zap.Int("keys", len(keys)))
}

func (s *ChatService) logVerification(ctx context.Context, valid bool, bodyBytes int) {
	if s.auditService == nil {
		return
	}

	log := audit.VerificationLog{
		Timestamp: time.Now(),
		Valid:     valid,
		BodyBytes: bodyBytes,
	}
	if err := s.auditService.LogVerification(ctx, log); err != nil {
		logger.Warn("Failed to write verification audit log", zap.Error(err))
	}
}
