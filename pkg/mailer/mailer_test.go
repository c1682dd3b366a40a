package mailer_test

import (
	"context"
	"errors"
	"testing"
	"travel/pkg/domain"
	"travel/pkg/mailer"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/stretchr/testify/require"
)

type fakeSES struct {
	sent []*ses.SendEmailInput
	err  error
}

func (f *fakeSES) SendEmail(_ context.Context,
	in *ses.SendEmailInput,
	_ ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.sent = append(f.sent, in)

	return &ses.SendEmailOutput{MessageId: aws.String("1")}, nil
}

func TestSend(t *testing.T) {
	api := &fakeSES{}
	m := mailer.NewWithAPI(api, "noreply@example.com")

	msg := mailer.ContactNotification(domain.ContactSubmission{
		Name:    "Ana",
		Email:   "ana@example.com",
		Phone:   "0812345678",
		Message: "Is July a good time for Komodo?",
	}, "Wanderlust", "owner@example.com")
	require.NoError(t, m.Send(context.Background(), msg))

	require.Len(t, api.sent, 1)
	in := api.sent[0]
	require.Equal(t, "noreply@example.com", aws.ToString(in.Source))
	require.Equal(t, []string{"owner@example.com"}, in.Destination.ToAddresses)
	require.Equal(t, []string{"ana@example.com"}, in.ReplyToAddresses)
	require.Equal(t, "[Wanderlust] New message", aws.ToString(in.Message.Subject.Data))
	require.Contains(t, aws.ToString(in.Message.Body.Text.Data), "Is July a good time for Komodo?")
	require.Contains(t, aws.ToString(in.Message.Body.Text.Data), "phone: 0812345678")
}

func TestSend_Errors(t *testing.T) {
	m, err := mailer.New(context.Background(), mailer.Options{})
	require.NoError(t, err)
	require.ErrorIs(t, m.Send(context.Background(), mailer.Message{To: []string{"a@b.co"}}), mailer.ErrNotConfigured)

	m = mailer.NewWithAPI(&fakeSES{}, "noreply@example.com")
	require.Error(t, m.Send(context.Background(), mailer.Message{}))

	m = mailer.NewWithAPI(&fakeSES{err: errors.New("throttled")}, "noreply@example.com")
	require.ErrorContains(t, m.Send(context.Background(), mailer.Message{To: []string{"a@b.co"}}), "throttled")
}
