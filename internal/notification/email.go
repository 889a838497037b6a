package notification

import (
	"context"
	"fmt"
	"strings"

	"github.com/Praful-John2409/BookTable/internal/domain"
	"github.com/wb-go/wbf/logger"
	"github.com/wneessen/go-mail"
)

// SMTPSettings carries the outbound mail configuration. An empty Host
// disables sending entirely.
type SMTPSettings struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type EmailNotifier struct {
	client *mail.Client
	from   string
	logger logger.Logger
}

func NewEmailNotifier(settings SMTPSettings, logger logger.Logger) (*EmailNotifier, error) {
	if settings.Host == "" {
		logger.Warn("smtp host is empty, email notifications disabled")
		return &EmailNotifier{client: nil, logger: logger}, nil
	}

	client, err := mail.NewClient(settings.Host,
		mail.WithPort(settings.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(settings.Username),
		mail.WithPassword(settings.Password),
	)
	if err != nil {
		return nil, fmt.Errorf("create smtp client: %w", err)
	}

	return &EmailNotifier{client: client, from: settings.From, logger: logger}, nil
}

func (n *EmailNotifier) NotifyBookingConfirmed(ctx context.Context, b *domain.Booking, r *domain.Restaurant) {
	subject := fmt.Sprintf("Booking confirmed at %s", r.Name)
	body := fmt.Sprintf(
		"Hi %s,\n\n"+
			"Your table at %s is booked.\n\n"+
			"When: %s\n"+
			"Party size: %d\n"+
			"Tables: %s\n"+
			"Address: %s\n\n"+
			"See you there!",
		b.BookerName, r.Name,
		b.BookingTime.Format("Mon, 02 Jan 2006 15:04 MST"),
		b.PartySize,
		strings.Join(b.TableIDs, ", "),
		r.Address,
	)
	n.send(ctx, b.BookerEmail, subject, body)
}

func (n *EmailNotifier) NotifyBookingCancelled(ctx context.Context, b *domain.Booking, r *domain.Restaurant) {
	subject := fmt.Sprintf("Booking cancelled at %s", r.Name)
	body := fmt.Sprintf(
		"Hi %s,\n\n"+
			"Your booking at %s for %s has been cancelled.\n\n"+
			"If this wasn't you, please contact the restaurant.",
		b.BookerName, r.Name,
		b.BookingTime.Format("Mon, 02 Jan 2006 15:04 MST"),
	)
	n.send(ctx, b.BookerEmail, subject, body)
}

func (n *EmailNotifier) NotifyBookingReminder(ctx context.Context, b *domain.Booking, r *domain.Restaurant) {
	subject := fmt.Sprintf("Reminder: your table at %s", r.Name)
	body := fmt.Sprintf(
		"Hi %s,\n\n"+
			"A reminder that your table at %s is booked for %s.\n\n"+
			"Party size: %d\n"+
			"Address: %s",
		b.BookerName, r.Name,
		b.BookingTime.Format("Mon, 02 Jan 2006 15:04 MST"),
		b.PartySize,
		r.Address,
	)
	n.send(ctx, b.BookerEmail, subject, body)
}

func (n *EmailNotifier) send(ctx context.Context, to, subject, body string) {
	if n.client == nil {
		n.logger.Debug("notification skipped (smtp disabled)", logger.String("subject", subject))
		return
	}

	if to == "" {
		n.logger.Debug("notification skipped (no recipient)", logger.String("subject", subject))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.String("to", to),
		)
		return
	}

	msg := mail.NewMsg()
	if err := msg.From(n.from); err != nil {
		n.logger.Error("failed to set mail sender",
			logger.String("from", n.from),
			logger.String("error", err.Error()),
		)
		return
	}
	if err := msg.To(to); err != nil {
		n.logger.Error("failed to set mail recipient",
			logger.String("to", to),
			logger.String("error", err.Error()),
		)
		return
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	if err := n.client.DialAndSendWithContext(ctx, msg); err != nil {
		n.logger.Error("failed to send email notification",
			logger.String("to", to),
			logger.String("error", err.Error()),
		)
	}
}
