package notification

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/orgball2608/story-studio/pkg/errors"
)

type Type string

const (
	ProfileVisitType          Type = "profile_visit"
	FriendRequestType         Type = "friend_request"
	FriendRequestAcceptedType Type = "friend_request_accepted"
	PostCommentType           Type = "post_comment"
	PostLikeType              Type = "post_like"
	PostShareType             Type = "post_share"
	MessageType               Type = "message"
	CommentReactionType       Type = "comment_reaction"
	PostReactionType          Type = "post_reaction"
)

var ErrUnknownEvent = errors.New("unknown notification event")

// Types lists every event the server can push.
func Types() []Type {
	return []Type{
		ProfileVisitType,
		FriendRequestType,
		FriendRequestAcceptedType,
		PostCommentType,
		PostLikeType,
		PostShareType,
		MessageType,
		CommentReactionType,
		PostReactionType,
	}
}

type Actor struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

type Related struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}

// Envelope holds the fields shared by every event.
type Envelope struct {
	Type      Type      `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	UserID    int       `json:"user_id"`
	Actor     Actor     `json:"actor"`
	Message   string    `json:"message"`
	Related   *Related  `json:"related,omitempty"`
}

func (e Envelope) Meta() Envelope { return e }

func (Envelope) event() {}

type Event interface {
	Meta() Envelope
	event()
}

type (
	ProfileVisit          struct{ Envelope }
	FriendRequest         struct{ Envelope }
	FriendRequestAccepted struct{ Envelope }
	PostComment           struct{ Envelope }
	PostLike              struct{ Envelope }
	PostShare             struct{ Envelope }
	Message               struct{ Envelope }
	CommentReaction       struct{ Envelope }
	PostReaction          struct{ Envelope }
)

type wireEnvelope struct {
	Type      Type     `json:"type"`
	Timestamp string   `json:"timestamp"`
	UserID    int      `json:"user_id"`
	Actor     *Actor   `json:"actor"`
	Message   string   `json:"message"`
	Related   *Related `json:"related"`
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
}

// Decode validates a raw payload received for eventType and returns the
// matching typed event.
func Decode(eventType Type, data []byte) (Event, error) {
	var raw wireEnvelope
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.WrapWithCode(errors.ErrInvalidInput, "notification_payload", err.Error())
	}

	if raw.Type != "" && raw.Type != eventType {
		return nil, errors.WrapWithCode(errors.ErrInvalidInput, "notification_payload",
			fmt.Sprintf("payload type %q does not match event %q", raw.Type, eventType))
	}
	if raw.Actor == nil || strings.TrimSpace(raw.Actor.Name) == "" {
		return nil, errors.WrapWithCode(errors.ErrInvalidInput, "notification_payload", "missing actor")
	}
	ts, err := parseTimestamp(raw.Timestamp)
	if err != nil {
		return nil, errors.WrapWithCode(errors.ErrInvalidInput, "notification_payload", err.Error())
	}

	env := Envelope{
		Type:      eventType,
		Timestamp: ts,
		UserID:    raw.UserID,
		Actor:     *raw.Actor,
		Message:   raw.Message,
		Related:   raw.Related,
	}

	switch eventType {
	case ProfileVisitType:
		return ProfileVisit{env}, nil
	case FriendRequestType:
		return FriendRequest{env}, nil
	case FriendRequestAcceptedType:
		return FriendRequestAccepted{env}, nil
	case PostCommentType:
		return PostComment{env}, nil
	case PostLikeType:
		return PostLike{env}, nil
	case PostShareType:
		return PostShare{env}, nil
	case MessageType:
		return Message{env}, nil
	case CommentReactionType:
		return CommentReaction{env}, nil
	case PostReactionType:
		return PostReaction{env}, nil
	}
	return nil, errors.WrapWithCode(ErrUnknownEvent, "notification_type", string(eventType))
}

func parseTimestamp(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("missing timestamp")
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", s)
}
