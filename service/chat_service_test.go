// service/chat_service_test.go
package service_test

import (
	"context"
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha1"
	"crypto/x509"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	logger "github.com/campushub/campus-api/logging"
	"github.com/campushub/campus-api/model"
	"github.com/campushub/campus-api/service"
	"github.com/campushub/campus-api/signature"
)

func signedMessage(t *testing.T, priv *rsa.PrivateKey, text string) model.ChatMessage {
	t.Helper()

	sum := sha1.Sum([]byte(text))
	sig, err := rsa.SignPKCS1v15(rand.Reader, priv, crypto.SHA1, sum[:])
	require.NoError(t, err)

	return model.ChatMessage{Text: text, Signature: base64.StdEncoding.EncodeToString(sig)}
}

func publicKeyOf(t *testing.T, priv *rsa.PrivateKey) model.ChatPublicKey {
	t.Helper()

	der, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(t, err)
	return model.ChatPublicKey{Key: base64.StdEncoding.EncodeToString(der)}
}

func TestChatService(t *testing.T) {
	// Initialize logger
	logger.InitLogger(t.TempDir())
	defer logger.Sync()

	ctx := context.Background()

	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	t.Run("VerifyMessage_ValidSignature", func(t *testing.T) {
		verifier := signature.NewVerifier([]model.ChatPublicKey{publicKeyOf(t, priv)}, signature.SHA1WithRSA)
		chatService := service.NewChatService(verifier, nil)

		assert.True(t, chatService.VerifyMessage(ctx, signedMessage(t, priv, "hello campus")))
	})

	t.Run("VerifyMessage_UnknownSigner", func(t *testing.T) {
		stranger, err := rsa.GenerateKey(rand.Reader, 2048)
		require.NoError(t, err)

		verifier := signature.NewVerifier([]model.ChatPublicKey{publicKeyOf(t, stranger)}, signature.SHA1WithRSA)
		chatService := service.NewChatService(verifier, nil)

		assert.False(t, chatService.VerifyMessage(ctx, signedMessage(t, priv, "hello campus")))
	})

	t.Run("ReloadKeys_SwapsKeyPool", func(t *testing.T) {
		verifier := signature.NewVerifier(nil, signature.SHA1WithRSA)
		chatService := service.NewChatService(verifier, nil)

		message := signedMessage(t, priv, "after rotation")
		assert.False(t, chatService.VerifyMessage(ctx, message))

		chatService.ReloadKeys([]model.ChatPublicKey{publicKeyOf(t, priv)})
		assert.True(t, chatService.VerifyMessage(ctx, message))
	})
}
