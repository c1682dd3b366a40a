// Package mailer sends transactional email through Amazon SES.
package mailer

import (
	"context"
	"fmt"
	"strings"
	"travel/pkg/domain"
	"travel/pkg/serrors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

const charset = "UTF-8"

// ErrNotConfigured is returned by Send when no sender address is configured.
var ErrNotConfigured = serrors.With(serrors.ErrUnavailable, "mail sender is not configured")

// API is the subset of the SES client used by the mailer.
type API interface {
	SendEmail(ctx context.Context, in *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

type Options struct {
	Region string
	// From is the verified SES sender address.
	From string
	// AccessKeyID and SecretAccessKey are optional static credentials.
	AccessKeyID     string
	SecretAccessKey string
}

// Message is a plain text email.
type Message struct {
	To      []string
	ReplyTo string
	Subject string
	Text    string
}

type Mailer struct {
	api  API
	from string
}

// New builds a mailer from the default AWS configuration. Without a sender
// address every Send fails with ErrNotConfigured.
func New(ctx context.Context, opts Options) (*Mailer, error) {
	if opts.From == "" {
		return &Mailer{}, nil
	}

	loaders := []func(*config.LoadOptions) error{config.WithRegion(opts.Region)}
	if opts.AccessKeyID != "" {
		loaders = append(loaders, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKeyID, opts.SecretAccessKey, "")))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loaders...)
	if err != nil {
		return nil, fmt.Errorf("could not load aws config: %w", err)
	}

	return NewWithAPI(ses.NewFromConfig(cfg), opts.From), nil
}

// NewWithAPI builds a mailer on an existing client.
func NewWithAPI(api API, from string) *Mailer {
	return &Mailer{api: api, from: from}
}

func (m *Mailer) Send(ctx context.Context, msg Message) error {
	if m.api == nil || m.from == "" {
		return ErrNotConfigured
	}
	if len(msg.To) == 0 {
		return serrors.With(serrors.ErrBadRequest, "message has no recipient")
	}

	in := &ses.SendEmailInput{
		Source:      aws.String(m.from),
		Destination: &types.Destination{ToAddresses: msg.To},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(msg.Subject), Charset: aws.String(charset)},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(msg.Text), Charset: aws.String(charset)},
			},
		},
	}
	if msg.ReplyTo != "" {
		in.ReplyToAddresses = []string{msg.ReplyTo}
	}

	if _, err := m.api.SendEmail(ctx, in); err != nil {
		return fmt.Errorf("could not send email: %w", err)
	}

	return nil
}

// ContactNotification tells the site owner about a contact form message.
// Replies go straight to the visitor.
func ContactNotification(c domain.ContactSubmission, siteName, to string) Message {
	subject := c.Subject
	if subject == "" {
		subject = "New message"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s <%s> wrote through the contact form", c.Name, c.Email)
	if c.Phone != "" {
		fmt.Fprintf(&b, " (phone: %s)", c.Phone)
	}
	b.WriteString(":\n\n")
	b.WriteString(c.Message)
	b.WriteString("\n")

	return Message{
		To:      []string{to},
		ReplyTo: c.Email,
		Subject: fmt.Sprintf("[%s] %s", siteName, subject),
		Text:    b.String(),
	}
}
