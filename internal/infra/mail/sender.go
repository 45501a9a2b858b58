// Package mail delivers outbound mail, either directly over SMTP or through
// the mail event queue.
package mail

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"recruit/config"
	"recruit/internal/domain/service"
	"recruit/internal/errors"
	"recruit/internal/util"
)

// NewMailSender returns the last-hop sender for the configured transport. The
// "log" transport only writes the message to the log. The "queue" transport
// still needs SMTP settings because the mail worker delivers with them.
func NewMailSender(cfg *config.Config, logger *slog.Logger) (service.MailSender, error) {
	mailCfg := cfg.Mail
	if mailCfg == nil {
		return NewLogSender(logger), nil
	}

	switch mailCfg.Transport {
	case config.MailTransportLog:
		return NewLogSender(logger), nil
	case config.MailTransportSMTP, config.MailTransportQueue:
		if mailCfg.SMTP.Host == "" {
			return nil, errors.Errorf("mail.smtp.host is required for %s transport", mailCfg.Transport)
		}

		return NewSMTPSender(mailCfg.From, mailCfg.SMTP)
	default:
		return nil, errors.Errorf("unknown mail transport %q", mailCfg.Transport)
	}
}

type logSender struct {
	logger *slog.Logger
}

// NewLogSender writes mail to the logger. Bodies are logged in full so
// codes and links are usable during local development.
func NewLogSender(logger *slog.Logger) service.MailSender {
	return &logSender{logger: logger}
}

func (s *logSender) Deliver(ctx context.Context, mail *service.Mail) error {
	s.logger.InfoContext(ctx, "Mail delivered to log",
		slog.String("to", util.MaskEmail(mail.To)),
		slog.String("kind", mail.Kind),
		slog.String("subject", mail.Subject),
		slog.String("body", mail.Body),
	)

	return nil
}

// sendMailFunc matches smtp.SendMail.
type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

type smtpSender struct {
	addr     string
	from     string
	auth     smtp.Auth
	sendMail sendMailFunc
	now      func() time.Time
}

// NewSMTPSender sends plain-text mail through an SMTP relay. STARTTLS is used
// whenever the server offers it.
func NewSMTPSender(from string, cfg config.SMTPConfig) (service.MailSender, error) {
	if from == "" {
		return nil, errors.New("mail.from is required for smtp transport")
	}
	port := cfg.Port
	if port == 0 {
		port = 587
	}

	var auth smtp.Auth
	if cfg.Username != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}

	return &smtpSender{
		addr:     net.JoinHostPort(cfg.Host, strconv.Itoa(port)),
		from:     from,
		auth:     auth,
		sendMail: smtp.SendMail,
		now:      time.Now,
	}, nil
}

func (s *smtpSender) Deliver(ctx context.Context, mail *service.Mail) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	msg := buildMessage(s.from, mail, s.now())
	if err := s.sendMail(s.addr, s.auth, s.from, []string{mail.To}, msg); err != nil {
		return errors.Wrapf(err, "failed to send %s mail", mail.Kind)
	}

	return nil
}

func buildMessage(from string, mail *service.Mail, now time.Time) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", mail.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", sanitizeHeader(mail.Subject))
	fmt.Fprintf(&b, "Date: %s\r\n", now.UTC().Format(time.RFC1123Z))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(mail.Body, "\n", "\r\n"))

	return []byte(b.String())
}

func sanitizeHeader(value string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(value)
}
