// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"context"
	"fmt"
	"net/smtp"

	"github.com/canonical/account-service/internal/logging"
	"github.com/canonical/account-service/internal/monitoring"
	"github.com/canonical/account-service/internal/tracing"
)

type SMTPConfig struct {
	Host        string
	Port        string
	Username    string
	Password    string
	SenderEmail string
	SenderName  string
}

var _ DispatcherInterface = (*SMTPDispatcher)(nil)

type SMTPDispatcher struct {
	config SMTPConfig

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (d *SMTPDispatcher) Send(ctx context.Context, to, subject, htmlBody string) error {
	_, span := d.tracer.Start(ctx, "mail.Send")
	defer span.End()

	var auth smtp.Auth
	if d.config.Username != "" && d.config.Password != "" {
		auth = smtp.PlainAuth("", d.config.Username, d.config.Password, d.config.Host)
	}

	addr := fmt.Sprintf("%s:%s", d.config.Host, d.config.Port)
	from := fmt.Sprintf("%s <%s>", d.config.SenderName, d.config.SenderEmail)

	msg := []byte(
		fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n", from, to, subject) +
			"MIME-Version: 1.0\r\n" +
			"Content-Type: text/html; charset=UTF-8\r\n\r\n" +
			htmlBody,
	)

	if err := smtp.SendMail(addr, auth, d.config.SenderEmail, []string{to}, msg); err != nil {
		_ = d.monitor.SetDependencyAvailability(map[string]string{"component": "smtp"}, 0)
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}

	d.logger.Debugf("email sent to %s", to)
	return nil
}

func NewSMTPDispatcher(config SMTPConfig, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *SMTPDispatcher {
	d := new(SMTPDispatcher)

	d.config = config

	d.tracer = tracer
	d.monitor = monitor
	d.logger = logger

	return d
}
