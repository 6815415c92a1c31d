package notifier

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"autogiro-backend/internal/usecase/notification"

	"firebase.google.com/go/v4/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type fakeMulticast struct {
	msgs []*messaging.MulticastMessage
	fail map[string]bool
	err  error
}

func (f *fakeMulticast) SendEachForMulticast(ctx context.Context, m *messaging.MulticastMessage) (*messaging.BatchResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.msgs = append(f.msgs, m)
	br := &messaging.BatchResponse{}
	for _, tok := range m.Tokens {
		if f.fail[tok] {
			br.FailureCount++
			br.Responses = append(br.Responses, &messaging.SendResponse{Success: false, Error: errors.New("unavailable")})
			continue
		}
		br.SuccessCount++
		br.Responses = append(br.Responses, &messaging.SendResponse{Success: true, MessageID: "m-" + tok})
	}
	return br, nil
}

func TestBuildMulticast_PlatformSettings(t *testing.T) {
	m := buildMulticast([]string{"t1"}, notification.Message{Title: "T", Body: "B", Data: map[string]string{"k": "v"}})

	assert.Equal(t, []string{"t1"}, m.Tokens)
	assert.Equal(t, "T", m.Notification.Title)
	assert.Equal(t, "v", m.Data["k"])
	assert.Equal(t, "high", m.Android.Priority)
	assert.Equal(t, "default", m.Android.Notification.Sound)
	assert.Equal(t, "high_importance_channel", m.Android.Notification.ChannelID)
	assert.Equal(t, "default", m.APNS.Payload.Aps.Sound)
	require.NotNil(t, m.APNS.Payload.Aps.Badge)
	assert.Equal(t, 1, *m.APNS.Payload.Aps.Badge)
}

func TestFCMSender_BatchesAndCounts(t *testing.T) {
	tokens := make([]string, 0, 501)
	for i := 0; i < 501; i++ {
		tokens = append(tokens, fmt.Sprintf("tok-%d", i))
	}
	fake := &fakeMulticast{fail: map[string]bool{"tok-3": true}}
	s := &FCMSender{client: fake}

	res, err := s.Send(context.Background(), tokens, notification.Message{Title: "x"})
	require.NoError(t, err)
	require.Len(t, fake.msgs, 2)
	assert.Len(t, fake.msgs[0].Tokens, 500)
	assert.Len(t, fake.msgs[1].Tokens, 1)
	assert.Equal(t, 500, res.Success)
	assert.Equal(t, 1, res.Failure)
	assert.Empty(t, res.InvalidTokens, "generic failures do not prune")
}

func TestFCMSender_AllFailed(t *testing.T) {
	s := &FCMSender{client: &fakeMulticast{fail: map[string]bool{"a": true}}}
	res, err := s.Send(context.Background(), []string{"a"}, notification.Message{})
	assert.Error(t, err)
	assert.Equal(t, 1, res.Failure)
}

func TestFCMSender_TransportError(t *testing.T) {
	s := &FCMSender{client: &fakeMulticast{err: errors.New("dial")}}
	_, err := s.Send(context.Background(), []string{"a"}, notification.Message{})
	assert.Error(t, err)
}

func TestNewFCMSender_NoCredentials(t *testing.T) {
	_, err := NewFCMSender(context.Background(), nil)
	assert.ErrorIs(t, err, notification.ErrNotConfigured)
}

func TestLogSender(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	s := NewLogSender(zap.New(core))

	_, err := s.Send(context.Background(), []string{"a", "b"}, notification.Message{Title: "hello"})
	assert.ErrorIs(t, err, notification.ErrNotConfigured)
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "hello", logs.All()[0].ContextMap()["title"])
}
