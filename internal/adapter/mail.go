package adapter

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/dailydoit/dailydoit/internal/config"
	"github.com/dailydoit/dailydoit/internal/logger"
	"github.com/dailydoit/dailydoit/models"
	"github.com/wneessen/go-mail"
)

type smtpMailSender struct {
	client *mail.Client
	from   string
	now    func() time.Time

	logger *logger.Logger
}

// NewMailSender returns the SMTP sender for cfg. Only a development server
// may run without a relay host; it gets the log sender instead.
func NewMailSender(cfg config.Mail, dev bool, logger *logger.Logger) (MailSender, error) {
	if cfg.Host == "" {
		if !dev {
			return nil, ErrNoMailHost
		}
		logger.Warn().Msg("no mail host configured, outgoing mail will be logged")
		return NewLogMailSender(logger), nil
	}

	return NewSMTPMailSender(cfg, !dev, logger)
}

// NewSMTPMailSender constructs a [MailSender] delivering through the relay
// in cfg. A secure sender speaks implicit TLS (port 465 unless cfg.Port is
// set); otherwise STARTTLS is used when the relay offers it (port 587).
// Authentication is skipped when cfg.User is empty.
func NewSMTPMailSender(cfg config.Mail, secure bool, logger *logger.Logger) (MailSender, error) {
	if strings.ContainsAny(cfg.From, "\r\n") {
		return nil, fmt.Errorf("invalid mail sender address %q: %w", cfg.From, ErrInvalidMailInput)
	}
	if err := mail.NewMsg().From(cfg.From); err != nil {
		return nil, fmt.Errorf("invalid mail sender address %q: %w", cfg.From, err)
	}

	port := cfg.Port
	if port == 0 {
		port = mail.DefaultPortTLS
		if secure {
			port = mail.DefaultPortSSL
		}
	}

	opts := []mail.Option{
		mail.WithPort(port),
		mail.WithDialContextFunc(deadlineDialer(cfg.Host, secure)),
	}
	if cfg.Timeout > 0 {
		opts = append(opts, mail.WithTimeout(cfg.Timeout))
	}
	if secure {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}
	if cfg.User != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.User),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("error creating smtp client: %w", err)
	}

	logger.Debug().Str("host", cfg.Host).Int("port", port).Bool("implicit_tls", secure).Msg("creating smtp mail sender")

	return &smtpMailSender{
		client: client,
		from:   cfg.From,
		now:    time.Now,
		logger: logger,
	}, nil
}

// deadlineDialer dials the relay and carries the dial context deadline over
// to the connection. go-mail derives that deadline from ctx and the client
// timeout but reads the greeting before setting deadlines of its own.
func deadlineDialer(host string, secure bool) mail.DialContextFunc {
	netDialer := &net.Dialer{}
	dial := netDialer.DialContext
	if secure {
		tlsDialer := &tls.Dialer{
			NetDialer: netDialer,
			Config:    &tls.Config{ServerName: host, MinVersion: tls.VersionTLS12},
		}
		dial = tlsDialer.DialContext
	}

	return func(ctx context.Context, network, address string) (net.Conn, error) {
		conn, err := dial(ctx, network, address)
		if err != nil {
			return nil, err
		}
		if deadline, ok := ctx.Deadline(); ok {
			if err = conn.SetDeadline(deadline); err != nil {
				_ = conn.Close()
				return nil, err
			}
		}
		return conn, nil
	}
}

// Send implements [MailSender].
func (s *smtpMailSender) Send(ctx context.Context, m models.Mail) error {
	return s.deliver(ctx, m.To, m.Subject, mail.TypeTextHTML, m.HTML)
}

// SendPlain implements [MailSender].
func (s *smtpMailSender) SendPlain(ctx context.Context, m models.PlainMail) error {
	return s.deliver(ctx, m.To, m.Subject, mail.TypeTextPlain, m.Text)
}

// deliver runs the SMTP exchange on the calling goroutine. Connecting is
// bounded by ctx, every later step by the client timeout.
func (s *smtpMailSender) deliver(ctx context.Context, to, subject string, contentType mail.ContentType, body string) error {
	log := logger.FromContext(ctx)

	if to == "" {
		return ErrEmptyRecipient
	}

	msg, err := s.buildMessage(to, subject, contentType, body)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMailNotSent, err)
	}

	if err = s.client.DialAndSendWithContext(ctx, msg); err != nil {
		log.Err(err).Str("func", "*smtpMailSender.deliver").Str("subject", subject).Msg("smtp delivery failed")
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("%w: %w: %w", ErrMailNotSent, ctxErr, err)
		}
		return fmt.Errorf("%w: %w", ErrMailNotSent, err)
	}

	log.Debug().Str("subject", subject).Msg("mail sent")
	return nil
}

func (s *smtpMailSender) buildMessage(to, subject string, contentType mail.ContentType, body string) (*mail.Msg, error) {
	if strings.ContainsAny(to+subject, "\r\n") {
		return nil, ErrInvalidMailInput
	}

	msg := mail.NewMsg()
	if err := msg.From(s.from); err != nil {
		return nil, err
	}
	if err := msg.To(to); err != nil {
		return nil, err
	}
	msg.Subject(subject)
	msg.SetDateWithValue(s.now())
	msg.SetMessageID()
	msg.SetBodyString(contentType, body)

	return msg, nil
}

type logMailSender struct {
	logger *logger.Logger
}

// NewLogMailSender returns a [MailSender] that writes every message to the
// log instead of delivering it. Used in development.
func NewLogMailSender(logger *logger.Logger) MailSender {
	return &logMailSender{logger: logger}
}

// Send implements [MailSender].
func (l *logMailSender) Send(ctx context.Context, m models.Mail) error {
	if m.To == "" {
		return ErrEmptyRecipient
	}
	l.logger.Info().Str("to", m.To).Str("subject", m.Subject).Str("body", m.HTML).Msg("mail")
	return nil
}

// SendPlain implements [MailSender].
func (l *logMailSender) SendPlain(ctx context.Context, m models.PlainMail) error {
	if m.To == "" {
		return ErrEmptyRecipient
	}
	l.logger.Info().Str("to", m.To).Str("subject", m.Subject).Str("body", m.Text).Msg("mail")
	return nil
}
