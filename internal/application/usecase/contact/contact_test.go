package contact

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mahathirrr/portfolio/internal/application/service"
	"github.com/mahathirrr/portfolio/internal/domain/contact"
	"github.com/mahathirrr/portfolio/internal/testutil"
	"github.com/mahathirrr/portfolio/pkg/apperror"
	"github.com/mahathirrr/portfolio/pkg/logger"
)

type chanPublisher struct {
	published chan *contact.Message
	err       error
}

func (p *chanPublisher) PublishContactMessage(_ context.Context, m *contact.Message) error {
	p.published <- m
	return p.err
}

type recordingMailer struct {
	sent []service.Mail
	err  error
}

func (m *recordingMailer) Send(_ context.Context, mail service.Mail) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, mail)
	return nil
}

func strPtr(s string) *string { return &s }

func TestSubmitMessage_SavesAndPublishes(t *testing.T) {
	repo := &testutil.ContactRepo{}
	pub := &chanPublisher{published: make(chan *contact.Message, 1)}
	uc := NewSubmitMessageUseCase(repo, pub, logger.NewNop())

	out, err := uc.Execute(context.Background(), SubmitMessageInput{
		Name:    "  Ann ",
		Email:   "ann@example.com",
		Subject: strPtr("   "),
		Message: " Hello there ",
	})

	require.NoError(t, err)
	assert.Equal(t, "Ann", out.Message.Name)
	assert.Equal(t, "Hello there", out.Message.Message)
	assert.Nil(t, out.Message.Subject)
	require.Len(t, repo.Rows, 1)

	select {
	case m := <-pub.published:
		assert.Equal(t, out.Message.ID, m.ID)
	case <-time.After(time.Second):
		t.Fatal("contact message was not published")
	}
}

func TestSubmitMessage_PublishFailureDoesNotFailRequest(t *testing.T) {
	pub := &chanPublisher{published: make(chan *contact.Message, 1), err: errors.New("broker down")}
	uc := NewSubmitMessageUseCase(&testutil.ContactRepo{}, pub, logger.NewNop())

	_, err := uc.Execute(context.Background(), SubmitMessageInput{Name: "Ann", Email: "ann@example.com", Message: "hi"})

	require.NoError(t, err)
	<-pub.published
}

func TestSubmitMessage_InvalidInputIsNotSaved(t *testing.T) {
	repo := &testutil.ContactRepo{}
	uc := NewSubmitMessageUseCase(repo, nil, logger.NewNop())

	_, err := uc.Execute(context.Background(), SubmitMessageInput{Name: "Ann", Email: "nope", Message: "hi"})

	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
	assert.Empty(t, repo.Rows)
}

func TestNotifyOwner_BuildsMail(t *testing.T) {
	mailer := &recordingMailer{}
	uc := NewNotifyOwnerUseCase(mailer, "owner@example.com", logger.NewNop())
	m := &contact.Message{
		ID:        uuid.New(),
		Name:      "Ann",
		Email:     "ann@example.com",
		Subject:   strPtr("Project inquiry"),
		Message:   "<script>alert(1)</script>",
		CreatedAt: time.Date(2026, 1, 2, 15, 4, 0, 0, time.UTC),
	}

	require.NoError(t, uc.Execute(context.Background(), m))

	require.Len(t, mailer.sent, 1)
	mail := mailer.sent[0]
	assert.Equal(t, "owner@example.com", mail.To)
	assert.Equal(t, "ann@example.com", mail.ReplyTo)
	assert.Equal(t, "[Contact] Project inquiry", mail.Subject)
	assert.Contains(t, mail.HTMLBody, "02 Jan 2026 15:04 UTC")
	assert.NotContains(t, mail.HTMLBody, "<script>")
}

func TestNotifyOwner_SubjectFallsBackToSender(t *testing.T) {
	mailer := &recordingMailer{}
	uc := NewNotifyOwnerUseCase(mailer, "owner@example.com", logger.NewNop())

	require.NoError(t, uc.Execute(context.Background(), &contact.Message{ID: uuid.New(), Name: "Bob", Email: "bob@example.com", Message: "hi"}))

	assert.Equal(t, "New contact message from Bob", mailer.sent[0].Subject)
}

func TestNotifyOwner_MailerErrorIsReturned(t *testing.T) {
	uc := NewNotifyOwnerUseCase(&recordingMailer{err: errors.New("smtp timeout")}, "owner@example.com", logger.NewNop())

	err := uc.Execute(context.Background(), &contact.Message{ID: uuid.New(), Name: "Bob", Email: "bob@example.com", Message: "hi"})

	assert.Error(t, err)
}

func TestListMessages_Paging(t *testing.T) {
	repo := &testutil.ContactRepo{}
	for i := 0; i < 25; i++ {
		repo.Rows = append(repo.Rows, &contact.Message{ID: uuid.New()})
	}
	uc := NewListMessagesUseCase(repo, logger.NewNop())

	first, err := uc.Execute(context.Background(), ListMessagesInput{})
	require.NoError(t, err)
	assert.Equal(t, 1, first.Page)
	assert.Equal(t, DefaultPageSize, first.Limit)
	assert.Len(t, first.Messages, DefaultPageSize)

	second, err := uc.Execute(context.Background(), ListMessagesInput{Page: 2})
	require.NoError(t, err)
	assert.Len(t, second.Messages, 5)

	capped, err := uc.Execute(context.Background(), ListMessagesInput{Limit: 1000})
	require.NoError(t, err)
	assert.Equal(t, MaxPageSize, capped.Limit)
}
