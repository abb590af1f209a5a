package store

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"scentshop/models"
)

const managerReplyText = "Thanks for reaching out! A manager has picked up " +
	"your order and will reply here shortly."

// SendComment posts a comment on an order, or, when an edit is in progress,
// replaces the entry being edited. A comment with blank text and no file is
// rejected. A fresh comment schedules the simulated manager reply on a
// cancellable timer.
func (s *Session) SendComment(orderIndex int, text string, file *models.Attachment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if orderIndex < 0 || orderIndex >= len(s.user.Orders) {
		return ErrNoSuchOrder
	}
	if strings.TrimSpace(text) == "" && file == nil {
		return ErrEmptyComment
	}

	order := &s.user.Orders[orderIndex]

	// Edit in progress: replace in place, no reply is scheduled
	if s.editOrder == orderIndex && s.editEntry >= 0 && s.editEntry < len(order.History) {
		order.History[s.editEntry].Text = text
		order.History[s.editEntry].File = file
		s.clearDraftLocked()
		return nil
	}

	order.History = append(order.History, models.ChatMessage{
		Text:   text,
		Sender: models.SenderUser,
		File:   file,
	})
	order.AwaitingManagerReply = true
	s.scheduleReplyLocked(orderIndex)
	return nil
}

// StartEdit marks a previously sent user comment for in-place replacement
func (s *Session) StartEdit(orderIndex, entry int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if orderIndex < 0 || orderIndex >= len(s.user.Orders) {
		return ErrNoSuchOrder
	}
	history := s.user.Orders[orderIndex].History
	if entry < 0 || entry >= len(history) || history[entry].Sender != models.SenderUser {
		return ErrNoSuchEntry
	}

	s.editOrder = orderIndex
	s.editEntry = entry
	s.draftText = history[entry].Text
	s.draftFile = history[entry].File
	return nil
}

// CancelEdit clears the editing state and draft without touching history
func (s *Session) CancelEdit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearDraftLocked()
}

// CloseThread cancels any pending manager reply for the order and drops the
// draft. The reply timer must not outlive the thread view it belongs to.
func (s *Session) CloseThread(orderIndex int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.replyTimers[orderIndex]; ok {
		t.Stop()
		delete(s.replyTimers, orderIndex)
	}
	s.clearDraftLocked()
}

// scheduleReplyLocked arms the manager reply timer for the order. Re-sending
// before the timer fires re-arms it, so a burst of comments still yields a
// single reply.
func (s *Session) scheduleReplyLocked(orderIndex int) {
	if t, ok := s.replyTimers[orderIndex]; ok {
		t.Stop()
	}
	s.replyTimers[orderIndex] = time.AfterFunc(s.replyDelay, func() {
		s.managerReply(orderIndex)
	})
}

// managerReply appends the canned counterpart entry. It re-reads the order
// at fire time rather than capturing a snapshot, and skips appending when
// the latest entry is already from the manager.
func (s *Session) managerReply(orderIndex int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.replyTimers, orderIndex)

	if orderIndex < 0 || orderIndex >= len(s.user.Orders) {
		return
	}
	order := &s.user.Orders[orderIndex]

	if n := len(order.History); n > 0 && order.History[n-1].Sender == models.SenderManager {
		order.AwaitingManagerReply = false
		return
	}

	order.History = append(order.History, models.ChatMessage{
		Text:   managerReplyText,
		Sender: models.SenderManager,
	})
	order.AwaitingManagerReply = false

	s.logger.Debug("manager reply appended", zap.String("order_id", order.ID))
}

func (s *Session) clearDraftLocked() {
	s.editOrder = -1
	s.editEntry = -1
	s.draftText = ""
	s.draftFile = nil
}
