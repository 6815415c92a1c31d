package notification

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"autogiro-backend/internal/domain/device"
	"autogiro-backend/internal/infrastructure/metrics"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Sender delivers one message to a set of device tokens.
type Sender interface {
	Send(ctx context.Context, tokens []string, m Message) (*Result, error)
}

// Dispatcher owns device tokens and best-effort delivery. Failures are logged
// and counted, never returned to the operation that triggered them.
type Dispatcher struct {
	devices device.Repository
	sender  Sender
	log     *zap.Logger
	timeout time.Duration
	wg      sync.WaitGroup
}

func NewDispatcher(devices device.Repository, sender Sender, log *zap.Logger, timeout time.Duration) *Dispatcher {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Dispatcher{devices: devices, sender: sender, log: log, timeout: timeout}
}

// NotifyUser sends in the background. The request context only contributes
// its values; its cancellation does not abort delivery.
func (d *Dispatcher) NotifyUser(ctx context.Context, userID uint64, title, body string, data map[string]string) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), d.timeout)
		defer cancel()
		if _, err := d.SendToUser(ctx, userID, Message{Title: title, Body: body, Data: data}); err != nil {
			if errors.Is(err, ErrNoDevices) || errors.Is(err, ErrNotConfigured) {
				d.log.Debug("notification skipped", zap.Uint64("user_id", userID), zap.Error(err))
				return
			}
			d.log.Warn("notification failed", zap.Uint64("user_id", userID), zap.Error(err))
		}
	}()
}

// Wait blocks until in-flight background sends finish.
func (d *Dispatcher) Wait() { d.wg.Wait() }

func (d *Dispatcher) SendToUser(ctx context.Context, userID uint64, m Message) (*Result, error) {
	tokens, err := d.devices.ListTokensByUser(ctx, userID)
	if err != nil {
		metrics.Notifications("error", 1)
		return nil, err
	}
	if len(tokens) == 0 {
		metrics.Notifications("no_devices", 1)
		return nil, ErrNoDevices
	}
	res, err := d.sender.Send(ctx, tokens, m)
	if err != nil {
		if errors.Is(err, ErrNotConfigured) {
			metrics.Notifications("disabled", 1)
		} else {
			metrics.Notifications("error", 1)
		}
		return nil, err
	}
	metrics.Notifications("sent", res.Success)
	metrics.Notifications("failed", res.Failure)
	for _, tok := range res.InvalidTokens {
		if err := d.devices.Delete(ctx, userID, tok); err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			d.log.Warn("prune device token failed", zap.Uint64("user_id", userID), zap.Error(err))
		}
	}
	d.log.Info("notification sent",
		zap.Uint64("user_id", userID),
		zap.String("title", m.Title),
		zap.Int("success", res.Success),
		zap.Int("failure", res.Failure))
	return res, nil
}

func (d *Dispatcher) SaveToken(ctx context.Context, in SaveTokenInput) error {
	tok := strings.TrimSpace(in.Token)
	if tok == "" {
		return ErrInvalidToken
	}
	p := device.Platform(strings.ToLower(in.Platform))
	switch p {
	case device.PlatformAndroid, device.PlatformIOS, device.PlatformWeb:
	default:
		p = device.PlatformAndroid
	}
	return d.devices.Upsert(ctx, &device.DeviceToken{UserID: in.UserID, FCMToken: tok, Platform: p})
}

func (d *Dispatcher) RemoveToken(ctx context.Context, userID uint64, token string) error {
	err := d.devices.Delete(ctx, userID, strings.TrimSpace(token))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return device.ErrNotFound
	}
	return err
}

// SendTest delivers synchronously so the caller sees the outcome.
func (d *Dispatcher) SendTest(ctx context.Context, userID uint64) (*TestResultDTO, error) {
	res, err := d.SendToUser(ctx, userID, Message{
		Title: "Notificação de teste",
		Body:  "As notificações push estão funcionando.",
		Data:  map[string]string{"type": "test"},
	})
	if err != nil {
		return nil, err
	}
	return &TestResultDTO{Sent: res.Success, Failed: res.Failure}, nil
}
