package application

import (
	"strconv"
	"strings"

	"wedding-line-bot/internal/domain"
)

// inputClass buckets an inbound message for the flow state machine: free
// text, a binary attachment (image or file), or anything else
type inputClass int

const (
	classText inputClass = iota
	classAttachment
	classOther
)

// messageInput is the normalized form of one inbound message
type messageInput struct {
	Class     inputClass
	MessageID string
	Text      string // trimmed, set only for classText
}

// normalizeMessage trims and classifies an inbound LINE message
func normalizeMessage(message *domain.LineMessage) messageInput {
	switch message.Type {
	case domain.LineMessageTypeText:
		return messageInput{Class: classText, MessageID: message.ID, Text: strings.TrimSpace(message.Text)}
	case domain.LineMessageTypeImage, domain.LineMessageTypeFile:
		return messageInput{Class: classAttachment, MessageID: message.ID}
	default:
		return messageInput{Class: classOther, MessageID: message.ID}
	}
}

// firstInt extracts the first contiguous run of ASCII digits from s, so
// answers like "2 คน" still parse. Thai numerals are not accepted.
func firstInt(s string) (int, bool) {
	start := -1
	for i, r := range s {
		if r >= '0' && r <= '9' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			n, err := strconv.Atoi(s[start:i])
			return n, err == nil
		}
	}
	if start >= 0 {
		n, err := strconv.Atoi(s[start:])
		return n, err == nil
	}
	return 0, false
}
