package notification

import (
	"testing"
	"time"

	"github.com/orgball2608/story-studio/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const likePayload = `{
	"type": "post_like",
	"timestamp": "2024-05-10T18:30:00.123456",
	"user_id": 7,
	"actor": {"id": 3, "name": "Bruno", "avatar": null},
	"message": "Bruno liked your post",
	"related": {"id": 42, "type": "post"}
}`

func TestDecode_TypedEvent(t *testing.T) {
	ev, err := Decode(PostLikeType, []byte(likePayload))
	require.NoError(t, err)

	like, ok := ev.(PostLike)
	require.True(t, ok)
	assert.Equal(t, PostLikeType, like.Type)
	assert.Equal(t, 7, like.UserID)
	assert.Equal(t, "Bruno", like.Actor.Name)
	assert.Equal(t, 42, like.Related.ID)
	assert.Equal(t, time.Date(2024, 5, 10, 18, 30, 0, 123456000, time.UTC), like.Timestamp)
	assert.Equal(t, like.Envelope, ev.Meta())
}

func TestDecode_EveryTypeHasAVariant(t *testing.T) {
	for _, typ := range Types() {
		payload := `{"timestamp":"2024-05-10T18:30:00Z","actor":{"id":1,"name":"A"},"message":"m"}`
		ev, err := Decode(typ, []byte(payload))
		require.NoError(t, err, typ)
		assert.Equal(t, typ, ev.Meta().Type)
	}
}

func TestDecode_Rejects(t *testing.T) {
	cases := map[string]struct {
		typ     Type
		payload string
		target  error
	}{
		"unknown type":      {"poke", `{"timestamp":"2024-05-10T18:30:00Z","actor":{"id":1,"name":"A"}}`, ErrUnknownEvent},
		"missing actor":     {MessageType, `{"timestamp":"2024-05-10T18:30:00Z"}`, errors.ErrInvalidInput},
		"blank actor name":  {MessageType, `{"timestamp":"2024-05-10T18:30:00Z","actor":{"id":1,"name":" "}}`, errors.ErrInvalidInput},
		"bad timestamp":     {MessageType, `{"timestamp":"yesterday","actor":{"id":1,"name":"A"}}`, errors.ErrInvalidInput},
		"missing timestamp": {MessageType, `{"actor":{"id":1,"name":"A"}}`, errors.ErrInvalidInput},
		"type mismatch":     {MessageType, `{"type":"post_like","timestamp":"2024-05-10T18:30:00Z","actor":{"id":1,"name":"A"}}`, errors.ErrInvalidInput},
		"not json":          {MessageType, `nope`, errors.ErrInvalidInput},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(tc.typ, []byte(tc.payload))
			assert.ErrorIs(t, err, tc.target)
		})
	}
}
