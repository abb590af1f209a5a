package models

import (
	"time"
)

// Message senders in an order's comment thread.
const (
	SenderUser    = "user"
	SenderManager = "manager"
)

// Attachment points at a locally stored comment file
type Attachment struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// ChatMessage is one entry in an order's comment thread
type ChatMessage struct {
	Text   string      `json:"text"`
	Sender string      `json:"sender"`
	File   *Attachment `json:"file,omitempty"`
}

// Order records a completed checkout. It is created exactly once at payment,
// appended to the user's history and never deleted; only the comment history
// and the awaiting flag mutate afterwards.
type Order struct {
	ID                   string        `json:"id"`
	Date                 time.Time     `json:"date"`
	Items                []CartItem    `json:"items"`
	Comment              string        `json:"comment,omitempty"`
	ReceiptAttached      bool          `json:"receipt_attached"`
	History              []ChatMessage `json:"history"`
	AwaitingManagerReply bool          `json:"awaiting_manager_reply"`
	Address              string        `json:"address,omitempty"`
	Phone                string        `json:"phone,omitempty"`
	Total                int           `json:"total"`
}

// CheckoutStage identifies a step of the linear checkout flow
type CheckoutStage string

// Checkout stages, in order.
const (
	StageBrowsing     CheckoutStage = "browsing"
	StageForm         CheckoutStage = "form"
	StagePayment      CheckoutStage = "payment"
	StageConfirmation CheckoutStage = "confirmation"
)

// DetailsInput holds the delivery details collected on the checkout form
type DetailsInput struct {
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// CommentInput holds data for posting a comment on an order
type CommentInput struct {
	Text string      `json:"text"`
	File *Attachment `json:"file,omitempty"`
}
