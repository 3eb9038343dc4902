// Package mail delivers match notifications over SMTP.
package mail

import (
	"context"
	"fmt"
	"net/smtp"

	"github.com/sparkmeet/dating-api/internal/core/ports"
)

// Config holds the SMTP relay settings.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SMTPNotifier sends mutual-match emails through a plain SMTP relay.
type SMTPNotifier struct {
	cfg  Config
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewSMTPNotifier(cfg Config) *SMTPNotifier {
	return &SMTPNotifier{cfg: cfg, send: smtp.SendMail}
}

// NotifyMutualMatch emails the recipient that they have a mutual match,
// naming the member who liked them and that member's contact email.
func (n *SMTPNotifier) NotifyMutualMatch(_ context.Context, notification ports.MatchNotification) error {
	var auth smtp.Auth
	if n.cfg.Username != "" {
		auth = smtp.PlainAuth("", n.cfg.Username, n.cfg.Password, n.cfg.Host)
	}

	msg := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: You have a mutual match!\r\n\r\n%s liked you back! Member email: %s\r\n",
		n.cfg.From,
		notification.RecipientEmail,
		notification.LikerName,
		notification.LikerEmail,
	)

	addr := fmt.Sprintf("%s:%d", n.cfg.Host, n.cfg.Port)
	if err := n.send(addr, auth, n.cfg.From, []string{notification.RecipientEmail}, []byte(msg)); err != nil {
		return fmt.Errorf("send match email: %w", err)
	}
	return nil
}
