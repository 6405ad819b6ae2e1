package application

import (
	"fmt"
	"sync"

	"wedding-line-bot/internal/domain"
	"wedding-line-bot/internal/ports/output"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
)

// LineWebhookService struct - Application service implementing LINE webhook use cases
type LineWebhookService struct {
	lineClient output.LineClient
	guestRepo  output.GuestRepository
	sessions   output.SessionStore
	cards      output.CardSource
	limits     FlowLimits
	steps      map[domain.FlowStep]stepHandler
}

// NewLineWebhookService func - Creates new LINE webhook service
func NewLineWebhookService(lineClient output.LineClient, guestRepo output.GuestRepository,
	sessions output.SessionStore, cards output.CardSource, limits FlowLimits) *LineWebhookService {
	if limits.MinNameLength <= 0 {
		limits.MinNameLength = DefaultMinNameLength
	}
	if limits.MaxGuests <= 0 {
		limits.MaxGuests = DefaultMaxGuests
	}

	s := &LineWebhookService{
		lineClient: lineClient,
		guestRepo:  guestRepo,
		sessions:   sessions,
		cards:      cards,
		limits:     limits,
	}

	// Dispatch table of the flow state machine. Adding a step means adding
	// a handler here and a FlowStep constant in the domain.
	s.steps = map[domain.FlowStep]stepHandler{
		domain.StepAskName:     s.stepAskName,
		domain.StepAskGuests:   s.stepAskGuests,
		domain.StepAskBlessing: s.stepAskBlessing,
		domain.StepAskGiftSlip: s.stepAskGiftSlip,
	}

	return s
}

// HandleWebhook func - Use case: Handle incoming webhook events from LINE.
// Events in one batch are independent and processed concurrently; per-user
// ordering is preserved by the session store's user lock.
func (s *LineWebhookService) HandleWebhook(request domain.LineWebhookRequest) error {
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs *multierror.Error
	)

	for _, event := range request.Events {
		wg.Add(1)
		go func(event domain.LineWebhookEvent) {
			defer wg.Done()
			if err := s.handleEvent(event); err != nil {
				logrus.Errorf("Failed to handle %s event: %v", event.Type, err)
				mu.Lock()
				errs = multierror.Append(errs, err)
				mu.Unlock()
			}
		}(event)
	}
	wg.Wait()

	return errs.ErrorOrNil()
}

// handleEvent - Routes one webhook event by type
func (s *LineWebhookService) handleEvent(event domain.LineWebhookEvent) error {
	logrus.Infof("Received LINE event: type=%s, source=%s, userID=%s",
		event.Type, event.Source.Type, event.Source.UserID)

	switch event.Type {
	case domain.LineEventTypeMessage:
		return s.handleMessageEvent(event)

	case domain.LineEventTypeFollow:
		return s.handleFollowEvent(event)

	case domain.LineEventTypeUnfollow:
		return s.handleUnfollowEvent(event)

	default:
		logrus.Infof("Unhandled event type: %s", event.Type)
		return nil
	}
}

// handleMessageEvent - Business logic for message events.
// A flow in progress strictly wins over command routing: whatever the user
// sends while mid-flow is interpreted by the pending step, never as a new
// command. The user lock is held for the whole read-modify-write so two
// rapid messages from one user cannot interleave.
func (s *LineWebhookService) handleMessageEvent(event domain.LineWebhookEvent) error {
	if event.Message == nil {
		return nil
	}

	in := normalizeMessage(event.Message)
	userID := event.Source.UserID

	if userID != "" {
		unlock := s.sessions.LockUser(userID)
		defer unlock()

		session, err := s.sessions.GetSession(userID)
		if err != nil {
			logrus.Errorf("Failed to load session for %s: %v", userID, err)
			return s.replyText(event.ReplyToken, msgSystemFailure)
		}
		if session != nil {
			return s.continueFlow(session, in, event.ReplyToken)
		}
	}

	if in.Class != classText {
		logrus.Infof("Ignoring non-text message outside a flow: type=%s", event.Message.Type)
		return nil
	}

	return s.dispatchCommand(routeCommand(in.Text), event)
}

// continueFlow - Advances the pending flow step and persists the outcome
func (s *LineWebhookService) continueFlow(session *domain.FlowSession, in messageInput, replyToken string) error {
	handler, ok := s.steps[session.Step]
	if !ok {
		// A step no longer in the vocabulary means a stale session from an
		// older build; drop it and fall back to the menu.
		logrus.Warnf("Unknown flow step %q for user %s, clearing session", session.Step, session.UserID)
		if err := s.sessions.DeleteSession(session.UserID); err != nil {
			logrus.Errorf("Failed to delete session for %s: %v", session.UserID, err)
		}
		return s.replyText(replyToken, msgMenu)
	}

	tr, err := handler(session, in)
	if err != nil {
		// Persisting failed: leave the session untouched so the user's next
		// message retries the same step.
		logrus.Errorf("Flow step %s failed for user %s: %v", session.Step, session.UserID, err)
		return s.replyText(replyToken, msgSystemFailure)
	}

	if tr.done {
		if err := s.sessions.DeleteSession(session.UserID); err != nil {
			logrus.Errorf("Failed to delete session for %s: %v", session.UserID, err)
		}
	} else {
		if err := s.sessions.UpdateSession(session); err != nil {
			logrus.Errorf("Failed to update session for %s: %v", session.UserID, err)
			return s.replyText(replyToken, msgSystemFailure)
		}
	}

	if len(tr.messages) == 0 {
		return nil
	}
	return s.reply(replyToken, tr.messages)
}

// dispatchCommand - Business logic for routed commands
func (s *LineWebhookService) dispatchCommand(cmd command, event domain.LineWebhookEvent) error {
	switch cmd {
	case cmdShowWedding:
		return s.replyCard(event.ReplyToken, altWedding, weddingCardKeys...)

	case cmdShowTravel:
		return s.replyCard(event.ReplyToken, altTravel, cardKeyTravel)

	case cmdShowBlessingCard:
		return s.replyCard(event.ReplyToken, altBlessing, cardKeyBlessing)

	case cmdShowConfirmCard:
		return s.replyCard(event.ReplyToken, altConfirm, cardKeyConfirm)

	case cmdShowGiftCard:
		return s.replyCard(event.ReplyToken, altGift, cardKeyGift)

	case cmdStartConfirm:
		return s.startConfirmFlow(event)

	case cmdStartBlessing:
		return s.startFlow(event, domain.StepAskBlessing, msgAskBlessing)

	case cmdStartGiftSlip:
		return s.startFlow(event, domain.StepAskGiftSlip, msgAskGiftSlip)

	case cmdEditConfirm:
		// Editing restarts the questions from the top and overwrites the
		// stored record on completion.
		return s.startFlow(event, domain.StepAskName, msgAskName)

	default:
		// Unmatched text and the explicit menu command get the same answer
		return s.replyText(event.ReplyToken, msgMenu)
	}
}

// startConfirmFlow - Begins the attendance confirmation flow unless the user
// already has a stored confirmation
func (s *LineWebhookService) startConfirmFlow(event domain.LineWebhookEvent) error {
	userID := event.Source.UserID
	if userID == "" {
		return s.replyText(event.ReplyToken, msgUnidentifiableUser)
	}

	existing, err := s.guestRepo.GetConfirmation(userID)
	if err != nil {
		logrus.Errorf("Failed to look up confirmation for %s: %v", userID, err)
		return s.replyText(event.ReplyToken, msgSystemFailure)
	}
	if existing != nil {
		return s.replyText(event.ReplyToken, fmt.Sprintf(msgAlreadyConfirmed,
			existing.FullName, existing.GuestsCount, domain.FormatBangkok(existing.UpdatedAt)))
	}

	return s.startFlow(event, domain.StepAskName, msgAskName)
}

// startFlow - Creates a fresh session at the given step and sends the prompt.
// Any previous session for the user is overwritten, temp data included.
func (s *LineWebhookService) startFlow(event domain.LineWebhookEvent, step domain.FlowStep, prompt string) error {
	userID := event.Source.UserID
	if userID == "" {
		return s.replyText(event.ReplyToken, msgUnidentifiableUser)
	}

	if err := s.sessions.UpdateSession(domain.NewFlowSession(userID, step)); err != nil {
		logrus.Errorf("Failed to create session for %s: %v", userID, err)
		return s.replyText(event.ReplyToken, msgSystemFailure)
	}

	return s.replyText(event.ReplyToken, prompt)
}

// replyCard - Sends a flex card, falling back to an apology text when the
// payload cannot be loaded
func (s *LineWebhookService) replyCard(replyToken, altText string, keys ...string) error {
	contents, err := s.cards.Card(keys...)
	if err != nil {
		logrus.Errorf("Card lookup failed for keys %v: %v", keys, err)
		return s.replyText(replyToken, msgContentUnavailable)
	}

	return s.reply(replyToken, []domain.LineOutgoingMessage{
		{
			Type:     domain.LineMessageTypeFlex,
			AltText:  altText,
			Contents: contents,
		},
	})
}

func (s *LineWebhookService) replyText(replyToken, text string) error {
	return s.reply(replyToken, []domain.LineOutgoingMessage{textMessage(text)})
}

func (s *LineWebhookService) reply(replyToken string, messages []domain.LineOutgoingMessage) error {
	if replyToken == "" {
		return nil
	}

	replyReq := domain.LineReplyMessageRequest{
		ReplyToken: replyToken,
		Messages:   messages,
	}
	if _, err := s.lineClient.ReplyMessage(replyReq); err != nil {
		return fmt.Errorf("failed to send reply: %w", err)
	}
	return nil
}

// handleFollowEvent - Business logic for follow events
func (s *LineWebhookService) handleFollowEvent(event domain.LineWebhookEvent) error {
	userID := event.Source.UserID
	logrus.Infof("User followed: userID=%s", userID)
	if userID == "" {
		return nil
	}

	greeting := msgWelcome
	profile, err := s.lineClient.GetProfile(userID)
	if err != nil {
		logrus.Warnf("Failed to fetch profile for %s: %v", userID, err)
	} else if profile != nil && profile.DisplayName != "" {
		greeting = fmt.Sprintf(msgWelcomeNamed, profile.DisplayName)
	}

	welcomeMsg := domain.LinePushMessageRequest{
		To: userID,
		Messages: []domain.LineOutgoingMessage{
			textMessage(greeting),
			textMessage(msgMenu),
		},
	}
	if _, err := s.lineClient.PushMessage(welcomeMsg); err != nil {
		return fmt.Errorf("failed to send welcome message: %w", err)
	}

	return nil
}

// handleUnfollowEvent - Business logic for unfollow events.
// The user can no longer be messaged, so any pending flow is dropped.
func (s *LineWebhookService) handleUnfollowEvent(event domain.LineWebhookEvent) error {
	userID := event.Source.UserID
	logrus.Infof("User unfollowed: userID=%s", userID)
	if userID == "" {
		return nil
	}

	if err := s.sessions.DeleteSession(userID); err != nil {
		logrus.Errorf("Failed to delete session for %s: %v", userID, err)
	}
	return nil
}
