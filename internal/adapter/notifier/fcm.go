package notifier

import (
	"context"
	"errors"

	"autogiro-backend/internal/usecase/notification"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// FCM caps a multicast at 500 tokens.
const maxMulticast = 500

const androidChannel = "high_importance_channel"

type multicaster interface {
	SendEachForMulticast(ctx context.Context, m *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

type FCMSender struct{ client multicaster }

var _ notification.Sender = (*FCMSender)(nil)

func NewFCMSender(ctx context.Context, credentialsJSON []byte) (*FCMSender, error) {
	if len(credentialsJSON) == 0 {
		return nil, notification.ErrNotConfigured
	}
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsJSON(credentialsJSON))
	if err != nil {
		return nil, err
	}
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, err
	}
	return &FCMSender{client: client}, nil
}

func (s *FCMSender) Send(ctx context.Context, tokens []string, m notification.Message) (*notification.Result, error) {
	out := &notification.Result{}
	for start := 0; start < len(tokens); start += maxMulticast {
		end := min(start+maxMulticast, len(tokens))
		batch := tokens[start:end]
		resp, err := s.client.SendEachForMulticast(ctx, buildMulticast(batch, m))
		if err != nil {
			return nil, err
		}
		out.Success += resp.SuccessCount
		out.Failure += resp.FailureCount
		for i, r := range resp.Responses {
			if r.Success || r.Error == nil {
				continue
			}
			if messaging.IsUnregistered(r.Error) {
				out.InvalidTokens = append(out.InvalidTokens, batch[i])
			}
		}
	}
	if out.Success == 0 && out.Failure > 0 {
		return out, errors.New("fcm: every token failed")
	}
	return out, nil
}

func buildMulticast(tokens []string, m notification.Message) *messaging.MulticastMessage {
	badge := 1
	return &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: m.Title,
			Body:  m.Body,
		},
		Data: m.Data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				Sound:     "default",
				ChannelID: androidChannel,
			},
		},
		APNS: &messaging.APNSConfig{
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{
					Sound: "default",
					Badge: &badge,
				},
			},
		},
	}
}
