// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"context"
	"strings"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"
)

//go:generate mockgen -build_flags=--mod=mod -package mail -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package mail -destination ./mock_logger.go -source=../logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package mail -destination ./mock_monitor.go -source=../monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package mail -destination ./mock_tracing.go -source=../tracing/interfaces.go

func TestEmails_SendInvitationSubjects(t *testing.T) {
	testCases := []struct {
		name            string
		projects        []string
		expectedSubject string
	}{
		{
			name:            "no projects",
			projects:        nil,
			expectedSubject: "Alice invited you to join Acme on TestApp",
		},
		{
			name:            "one project",
			projects:        []string{"Website"},
			expectedSubject: "Alice invited you to a project in Acme on TestApp",
		},
		{
			name:            "multiple projects",
			projects:        []string{"Website", "Mobile"},
			expectedSubject: "Alice invited you to projects in Acme on TestApp",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockDispatcher := NewMockDispatcherInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			e := NewEmails(mockDispatcher, "TestApp", mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "mail.SendInvitation").Return(context.Background(), trace.SpanFromContext(context.Background()))

			var gotSubject, gotBody string
			mockDispatcher.EXPECT().Send(gomock.Any(), "invitee@example.com", gomock.Any(), gomock.Any()).DoAndReturn(
				func(ctx context.Context, to, subject, htmlBody string) error {
					gotSubject = subject
					gotBody = htmlBody
					return nil
				},
			)

			err := e.SendInvitation(context.Background(), "invitee@example.com", InvitationEmailData{
				AccountName: "Acme",
				InviterName: "Alice",
				Link:        "https://app.example.com/invite/abc",
				Projects:    tc.projects,
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if gotSubject != tc.expectedSubject {
				t.Errorf("expected subject %q, got %q", tc.expectedSubject, gotSubject)
			}
			if !strings.Contains(gotBody, "https://app.example.com/invite/abc") {
				t.Error("expected body to contain the invitation link")
			}
			for _, p := range tc.projects {
				if !strings.Contains(gotBody, p) {
					t.Errorf("expected body to contain project %q", p)
				}
			}
		})
	}
}

func TestEmails_SendRefusal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDispatcher := NewMockDispatcherInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)

	e := NewEmails(mockDispatcher, "TestApp", mockTracer, mockMonitor, mockLogger)

	mockTracer.EXPECT().Start(gomock.Any(), "mail.SendRefusal").Return(context.Background(), trace.SpanFromContext(context.Background()))
	mockDispatcher.EXPECT().Send(gomock.Any(), "inviter@example.com", "Bob declined your invitation to Acme", gomock.Any()).Return(nil)

	err := e.SendRefusal(context.Background(), "inviter@example.com", RefusalEmailData{
		AccountName: "Acme",
		InviteeName: "Bob",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestEmails_SendLeaving(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDispatcher := NewMockDispatcherInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)

	e := NewEmails(mockDispatcher, "TestApp", mockTracer, mockMonitor, mockLogger)

	mockTracer.EXPECT().Start(gomock.Any(), "mail.SendLeaving").Return(context.Background(), trace.SpanFromContext(context.Background()))

	var gotBody string
	mockDispatcher.EXPECT().Send(gomock.Any(), "owner@example.com", "Bob left Acme", gomock.Any()).DoAndReturn(
		func(ctx context.Context, to, subject, htmlBody string) error {
			gotBody = htmlBody
			return nil
		},
	)

	err := e.SendLeaving(context.Background(), "owner@example.com", LeavingEmailData{
		AccountName: "Acme",
		UserName:    "Bob",
		Message:     "moving on to other things",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(gotBody, "moving on to other things") {
		t.Error("expected body to contain the farewell message")
	}
}
