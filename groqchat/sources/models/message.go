// groqchat/sources/models/message.go
package models

import (
	"time"

	"github.com/google/uuid"
)

type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

// Message is one turn of a conversation. It is never updated once stored.
type Message struct {
	ID             string    `json:"id" bson:"_id" gorm:"type:varchar(36);primaryKey"`
	ConversationID string    `json:"conversation_id" bson:"conversation_id" gorm:"type:varchar(255);not null;index:idx_messages_conversation_timestamp,priority:1"`
	Sender         Sender    `json:"sender" bson:"sender" gorm:"type:varchar(50);not null"`
	Content        string    `json:"content" bson:"content" gorm:"type:text;not null"`
	Timestamp      time.Time `json:"timestamp" bson:"timestamp" gorm:"not null;index:idx_messages_conversation_timestamp,priority:2;index:idx_messages_timestamp"`
}

func (Message) TableName() string {
	return "messages"
}

// NewMessage stamps a fresh id and the given creation time.
func NewMessage(conversationID string, sender Sender, content string, at time.Time) Message {
	return Message{
		ID:             uuid.New().String(),
		ConversationID: conversationID,
		Sender:         sender,
		Content:        content,
		Timestamp:      at.UTC(),
	}
}
