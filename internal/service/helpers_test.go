package service

import (
	"context"
	"sync"
	"time"

	"github.com/dailydoit/dailydoit/internal/config"
	"github.com/dailydoit/dailydoit/models"
)

func testAppConfig() config.App {
	return config.App{
		BaseURL:            "https://dailydoit.app/",
		ActivationTokenTTL: 48 * time.Hour,
		NotificationEmail:  "ops@dailydoit.app",
		NotifyTimeout:      time.Second,
	}
}

// ─────────────────────────────────────────────
// Fakes
// ─────────────────────────────────────────────

type fakeMailSender struct {
	mu     sync.Mutex
	html   []models.Mail
	plain  []models.PlainMail
	sendFn func(ctx context.Context) error
}

func (f *fakeMailSender) Send(ctx context.Context, mail models.Mail) error {
	if f.sendFn != nil {
		if err := f.sendFn(ctx); err != nil {
			return err
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.html = append(f.html, mail)
	return nil
}

func (f *fakeMailSender) SendPlain(ctx context.Context, mail models.PlainMail) error {
	if f.sendFn != nil {
		if err := f.sendFn(ctx); err != nil {
			return err
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.plain = append(f.plain, mail)
	return nil
}

type fakeReporter struct {
	mu   sync.Mutex
	errs []error
}

func (f *fakeReporter) Report(_ context.Context, err error, _ string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errs = append(f.errs, err)
}

func (f *fakeReporter) reported() []error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]error(nil), f.errs...)
}

type fakePinger struct {
	err error
}

func (f fakePinger) Ping(context.Context) error {
	return f.err
}
