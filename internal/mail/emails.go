// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"

	"github.com/canonical/account-service/internal/logging"
	"github.com/canonical/account-service/internal/monitoring"
	"github.com/canonical/account-service/internal/tracing"
)

//go:embed templates/*.html
var templateFS embed.FS

type InvitationEmailData struct {
	AccountName string
	InviterName string
	Link        string
	Projects    []string
}

type RefusalEmailData struct {
	AccountName string
	InviteeName string
	Message     string
}

type LeavingEmailData struct {
	AccountName string
	UserName    string
	Message     string
}

var _ EmailInterface = (*Emails)(nil)

type Emails struct {
	dispatcher DispatcherInterface
	templates  *template.Template
	appName    string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// SendInvitation renders the invitation email. The subject depends on how
// many projects the invitee was given access to.
func (e *Emails) SendInvitation(ctx context.Context, to string, data InvitationEmailData) error {
	ctx, span := e.tracer.Start(ctx, "mail.SendInvitation")
	defer span.End()

	var subject string
	switch len(data.Projects) {
	case 0:
		subject = fmt.Sprintf("%s invited you to join %s on %s", data.InviterName, data.AccountName, e.appName)
	case 1:
		subject = fmt.Sprintf("%s invited you to a project in %s on %s", data.InviterName, data.AccountName, e.appName)
	default:
		subject = fmt.Sprintf("%s invited you to projects in %s on %s", data.InviterName, data.AccountName, e.appName)
	}

	body, err := e.render("invitation.html", data)
	if err != nil {
		return err
	}

	return e.dispatcher.Send(ctx, to, subject, body)
}

// SendRefusal notifies the inviter that their invitation was declined.
func (e *Emails) SendRefusal(ctx context.Context, to string, data RefusalEmailData) error {
	ctx, span := e.tracer.Start(ctx, "mail.SendRefusal")
	defer span.End()

	subject := fmt.Sprintf("%s declined your invitation to %s", data.InviteeName, data.AccountName)

	body, err := e.render("refusal.html", data)
	if err != nil {
		return err
	}

	return e.dispatcher.Send(ctx, to, subject, body)
}

// SendLeaving notifies the account owner that a member left.
func (e *Emails) SendLeaving(ctx context.Context, to string, data LeavingEmailData) error {
	ctx, span := e.tracer.Start(ctx, "mail.SendLeaving")
	defer span.End()

	subject := fmt.Sprintf("%s left %s", data.UserName, data.AccountName)

	body, err := e.render("leaving.html", data)
	if err != nil {
		return err
	}

	return e.dispatcher.Send(ctx, to, subject, body)
}

func (e *Emails) render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := e.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to render email template %s: %w", name, err)
	}
	return buf.String(), nil
}

func NewEmails(dispatcher DispatcherInterface, appName string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Emails {
	e := new(Emails)

	e.dispatcher = dispatcher
	e.templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))
	e.appName = appName

	e.tracer = tracer
	e.monitor = monitor
	e.logger = logger

	return e
}
