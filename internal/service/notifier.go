package service

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"strings"
	"sync"
	"time"

	"github.com/dailydoit/dailydoit/internal/adapter"
	"github.com/dailydoit/dailydoit/internal/config"
	"github.com/dailydoit/dailydoit/internal/logger"
	"github.com/dailydoit/dailydoit/internal/metrics"
	"github.com/dailydoit/dailydoit/models"
)

//go:embed templates/*.html
var mailTemplatesFS embed.FS

var mailTemplates = template.Must(template.ParseFS(mailTemplatesFS, "templates/*.html"))

// Subjects of outgoing emails.
const (
	SubjectConfirmAccount = "Confirm your Daily Do It account"
	SubjectAccountExists  = "Sign up attempt for your Daily Do It account"
	SubjectNewSignup      = "New Signup!"
)

// Notification kinds used as metric labels.
const (
	kindActivation    = "activation"
	kindAccountExists = "account_exists"
	kindSignup        = "signup"
)

// MailNotifier implements [Notifier] on top of an [adapter.MailSender].
type MailNotifier struct {
	sender   adapter.MailSender
	reporter logger.Reporter

	baseURL           string
	notificationEmail string
	tokenTTL          time.Duration
	timeout           time.Duration

	wg sync.WaitGroup

	logger *logger.Logger
}

// NewNotifier constructs a [MailNotifier]. Links in emails are built from
// cfg.BaseURL; signup notifications go to cfg.NotificationEmail and are
// skipped when it is empty.
func NewNotifier(sender adapter.MailSender, reporter logger.Reporter, cfg config.App, logger *logger.Logger) *MailNotifier {
	return &MailNotifier{
		sender:            sender,
		reporter:          reporter,
		baseURL:           strings.TrimRight(cfg.BaseURL, "/"),
		notificationEmail: cfg.NotificationEmail,
		tokenTTL:          cfg.ActivationTokenTTL,
		timeout:           cfg.NotifyTimeout,
		logger:            logger,
	}
}

// SendActivation emails the activation link for token to email.
func (n *MailNotifier) SendActivation(ctx context.Context, email, token string) {
	n.dispatch(ctx, kindActivation, func(ctx context.Context) error {
		html, err := render("confirm_account.html", map[string]any{
			"Subject":     SubjectConfirmAccount,
			"ActivateURL": n.baseURL + "/activate/" + token,
			"ExpiresIn":   humanizeDuration(n.tokenTTL),
		})
		if err != nil {
			return err
		}
		return n.sender.Send(ctx, models.Mail{To: email, Subject: SubjectConfirmAccount, HTML: html})
	})
}

// SendAccountExists tells the owner of email that someone tried to sign up
// with it.
func (n *MailNotifier) SendAccountExists(ctx context.Context, email string) {
	n.dispatch(ctx, kindAccountExists, func(ctx context.Context) error {
		html, err := render("account_exists.html", map[string]any{
			"Subject":   SubjectAccountExists,
			"SignInURL": n.baseURL + "/signin",
		})
		if err != nil {
			return err
		}
		return n.sender.Send(ctx, models.Mail{To: email, Subject: SubjectAccountExists, HTML: html})
	})
}

// NotifySignup tells the operator that a new account was created.
func (n *MailNotifier) NotifySignup(ctx context.Context) {
	if n.notificationEmail == "" {
		return
	}

	n.dispatch(ctx, kindSignup, func(ctx context.Context) error {
		return n.sender.SendPlain(ctx, models.PlainMail{
			To:      n.notificationEmail,
			Subject: SubjectNewSignup,
			Text:    "A new user has signed up for Daily Do It!",
		})
	})
}

// Wait blocks until every pending delivery has finished.
func (n *MailNotifier) Wait() {
	n.wg.Wait()
}

// dispatch runs send in its own goroutine. The context keeps the values of
// ctx (trace id, logger) but not its cancellation, and is bounded by the
// notify timeout.
func (n *MailNotifier) dispatch(ctx context.Context, kind string, send func(ctx context.Context) error) {
	ctx = context.WithoutCancel(ctx)

	n.wg.Add(1)
	go func() {
		defer n.wg.Done()

		ctx, cancel := context.WithTimeout(ctx, n.timeout)
		defer cancel()

		if err := send(ctx); err != nil {
			metrics.NotificationsTotal.WithLabelValues(kind, metrics.ResultFailure).Inc()
			n.reporter.Report(ctx, fmt.Errorf("%s email: %w", kind, err), "notification delivery failed")
			return
		}

		metrics.NotificationsTotal.WithLabelValues(kind, metrics.ResultSuccess).Inc()
	}()
}

func render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := mailTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("rendering %s: %w", name, err)
	}
	return buf.String(), nil
}

// humanizeDuration renders whole days or hours ("2 days", "1 hour").
func humanizeDuration(d time.Duration) string {
	plural := func(n int, unit string) string {
		if n == 1 {
			return "1 " + unit
		}
		return fmt.Sprintf("%d %ss", n, unit)
	}

	if d >= 24*time.Hour && d%(24*time.Hour) == 0 {
		return plural(int(d/(24*time.Hour)), "day")
	}
	if d >= time.Hour {
		return plural(int(d/time.Hour), "hour")
	}
	return plural(int(d/time.Minute), "minute")
}
