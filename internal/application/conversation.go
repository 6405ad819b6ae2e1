package application

import (
	"fmt"
	"unicode/utf8"

	"wedding-line-bot/internal/domain"

	"github.com/sirupsen/logrus"
)

// Validation thresholds. Name length and guest count are configurable; the
// defaults apply when the config leaves them unset.
const (
	DefaultMinNameLength = 2
	DefaultMaxGuests     = 20
	minBlessingLength    = 2
)

// FlowLimits carries the configurable validation thresholds for the
// confirmation flow
type FlowLimits struct {
	MinNameLength int
	MaxGuests     int
}

// transition is what one flow step produces: the reply to send and whether
// the flow is finished. An empty message list means stay silent.
type transition struct {
	messages []domain.LineOutgoingMessage
	done     bool
}

// stepHandler advances one flow step. It may mutate the session in place;
// the caller persists or discards the session according to the transition.
// A non-nil error means nothing was persisted and the session must stay
// untouched so the user's next message retries the same step.
type stepHandler func(session *domain.FlowSession, in messageInput) (transition, error)

func textTransition(text string) transition {
	return transition{messages: []domain.LineOutgoingMessage{textMessage(text)}}
}

func textMessage(text string) domain.LineOutgoingMessage {
	return domain.LineOutgoingMessage{
		Type: domain.LineMessageTypeText,
		Text: text,
	}
}

// stepAskName - waiting for the guest's full name
func (s *LineWebhookService) stepAskName(session *domain.FlowSession, in messageInput) (transition, error) {
	if in.Class != classText {
		return transition{}, nil
	}

	if utf8.RuneCountInString(in.Text) < s.limits.MinNameLength {
		return textTransition(msgNameTooShort), nil
	}

	session.SetTemp(domain.TempFullName, in.Text)
	session.Step = domain.StepAskGuests
	return textTransition(fmt.Sprintf(msgAskGuests, s.limits.MaxGuests)), nil
}

// stepAskGuests - waiting for the attendee count, then persisting the record
func (s *LineWebhookService) stepAskGuests(session *domain.FlowSession, in messageInput) (transition, error) {
	if in.Class != classText {
		return transition{}, nil
	}

	count, ok := firstInt(in.Text)
	if !ok || count < 1 || count > s.limits.MaxGuests {
		return textTransition(fmt.Sprintf(msgGuestsInvalid, s.limits.MaxGuests)), nil
	}

	fullName, _ := session.GetTemp(domain.TempFullName)
	record, err := s.guestRepo.UpsertConfirmation(session.UserID, fullName, count)
	if err != nil {
		return transition{}, fmt.Errorf("failed to upsert confirmation: %w", err)
	}

	return transition{
		messages: []domain.LineOutgoingMessage{
			textMessage(fmt.Sprintf(msgConfirmed, record.FullName, record.GuestsCount)),
		},
		done: true,
	}, nil
}

// stepAskBlessing - waiting for a free-text well-wish
func (s *LineWebhookService) stepAskBlessing(session *domain.FlowSession, in messageInput) (transition, error) {
	if in.Class != classText {
		return transition{}, nil
	}

	if utf8.RuneCountInString(in.Text) < minBlessingLength {
		return textTransition(msgBlessingTooShort), nil
	}

	if _, err := s.guestRepo.AppendWellWish(session.UserID, in.Text); err != nil {
		return transition{}, fmt.Errorf("failed to append well-wish: %w", err)
	}

	return transition{
		messages: []domain.LineOutgoingMessage{textMessage(msgBlessingSaved)},
		done:     true,
	}, nil
}

// stepAskGiftSlip - waiting for a transfer-slip image or file
func (s *LineWebhookService) stepAskGiftSlip(session *domain.FlowSession, in messageInput) (transition, error) {
	switch in.Class {
	case classAttachment:
		// The slip content is not downloaded; the message ID is enough to
		// fetch it later for manual reconciliation.
		logrus.Infof("Gift slip received: userID=%s, messageID=%s", session.UserID, in.MessageID)
		return transition{
			messages: []domain.LineOutgoingMessage{textMessage(msgGiftSlipSaved)},
			done:     true,
		}, nil
	case classText:
		return textTransition(msgGiftSlipWaiting), nil
	default:
		return transition{}, nil
	}
}
