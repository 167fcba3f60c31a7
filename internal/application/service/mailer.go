package service

import "context"

type Mail struct {
	To       string
	ReplyTo  string
	Subject  string
	HTMLBody string
}

type Mailer interface {
	Send(ctx context.Context, m Mail) error
}
