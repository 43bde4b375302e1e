// model/chat.go
package model

// ChatMessage is an inbound message with its detached signature. The
// signature is a base64 string over the message text. Messages are
// never persisted here; they only pass through verification.
type ChatMessage struct {
	Text      string `json:"text" binding:"required"`
	Signature string `json:"signature" binding:"required"`
}

// ChatPublicKey is the raw key material of one trusted sender, as the
// member registry publishes it: a base64 X.509 SubjectPublicKeyInfo
// encoding.
type ChatPublicKey struct {
	Key string `json:"key"`
}
