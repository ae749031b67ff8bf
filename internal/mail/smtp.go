package mail

import (
	"context"
	"fmt"
	"net/smtp"
	"sort"
	"strings"

	"bijoux-be/internal/logger"

	"go.uber.org/zap"
)

// SMTPSender delivers mail over a plain SMTP relay.
type SMTPSender struct {
	Host string
	Port string
	From string
}

func NewSMTPSender(host, port, from string) *SMTPSender {
	return &SMTPSender{Host: host, Port: port, From: from}
}

func (s *SMTPSender) Send(ctx context.Context, to, template string, args TemplateArgs) error {
	body := renderBody(template, args)
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n",
		s.From, to, subjectFor(template), body)

	addr := s.Host + ":" + s.Port
	if err := smtp.SendMail(addr, nil, s.From, []string{to}, []byte(msg)); err != nil {
		logger.FromCtx(ctx).Error("mail send failed",
			zap.String("to", to),
			zap.String("template", template),
			zap.Error(err),
		)
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}

func subjectFor(template string) string {
	switch template {
	case TemplateOrderConfirmed:
		return "Your order is confirmed"
	case TemplateWelcome:
		return "Welcome to Bijoux"
	}
	return "Bijoux notification"
}

func renderBody(template string, args TemplateArgs) string {
	keys := make([]string, 0, len(args))
	for k := range args {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(template)
	b.WriteString("\n")
	for _, k := range keys {
		fmt.Fprintf(&b, "%s: %s\n", k, args[k])
	}
	return b.String()
}

// LogSender is the development stand-in: it logs instead of delivering.
type LogSender struct{}

func (LogSender) Send(ctx context.Context, to, template string, args TemplateArgs) error {
	logger.FromCtx(ctx).Info("mail send (log only)",
		zap.String("to", to),
		zap.String("template", template),
		zap.Any("args", args),
	)
	return nil
}

var (
	_ Sender = (*SMTPSender)(nil)
	_ Sender = LogSender{}
)
