// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package kratos

import (
	"context"
	"fmt"
	"net/http"

	ory "github.com/ory/client-go"

	"github.com/canonical/account-service/internal/logging"
	"github.com/canonical/account-service/internal/monitoring"
	"github.com/canonical/account-service/internal/tracing"
	"github.com/canonical/account-service/internal/types"
)

type ClientInterface interface {
	GetIdentityIDByEmail(ctx context.Context, email string) (string, error)
	CreateGhostIdentity(ctx context.Context, email string) (string, error)
	GetUser(ctx context.Context, id string) (*types.User, error)
	ActivateGhost(ctx context.Context, id, firstName, lastName string) error
}

type Client struct {
	client  *ory.APIClient
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewClient(kratosAdminURL string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	conf := ory.NewConfiguration()
	conf.Servers = ory.ServerConfigurations{{URL: kratosAdminURL}}
	return &Client{
		client:  ory.NewAPIClient(conf),
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// GetIdentityIDByEmail returns the identity id for the email, or the empty
// string when no identity matches.
func (c *Client) GetIdentityIDByEmail(ctx context.Context, email string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.GetIdentityIDByEmail")
	defer span.End()

	// NOTE: we are setting an empty page token because of https://github.com/ory/sdk/issues/461
	ids, r, err := c.client.IdentityAPI.ListIdentities(ctx).CredentialsIdentifier(email).PageToken("").Execute()
	if err != nil {
		if r != nil && r.StatusCode == http.StatusNotFound {
			return "", nil
		}
		return "", fmt.Errorf("failed to list identities: %w", err)
	}

	if len(ids) == 0 {
		return "", nil
	}

	return ids[0].Id, nil
}

// CreateGhostIdentity registers a placeholder identity for an invitee who has
// no user yet. The ghost flag is cleared when the invitee accepts and fills in
// their details.
func (c *Client) CreateGhostIdentity(ctx context.Context, email string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.CreateGhostIdentity")
	defer span.End()

	traits := map[string]interface{}{
		"email": email,
		"ghost": true,
	}

	createIdentityBody := ory.CreateIdentityBody{
		SchemaId: "default",
		Traits:   traits,
	}

	identity, _, err := c.client.IdentityAPI.CreateIdentity(ctx).CreateIdentityBody(createIdentityBody).Execute()
	if err != nil {
		return "", fmt.Errorf("failed to create identity: %w", err)
	}

	return identity.Id, nil
}

func (c *Client) GetUser(ctx context.Context, id string) (*types.User, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.GetUser")
	defer span.End()

	identity, _, err := c.client.IdentityAPI.GetIdentity(ctx, id).Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get identity: %w", err)
	}

	return userFromIdentity(identity), nil
}

// ActivateGhost replaces a ghost identity's traits with the real user details.
func (c *Client) ActivateGhost(ctx context.Context, id, firstName, lastName string) error {
	ctx, span := c.tracer.Start(ctx, "kratos.ActivateGhost")
	defer span.End()

	identity, _, err := c.client.IdentityAPI.GetIdentity(ctx, id).Execute()
	if err != nil {
		return fmt.Errorf("failed to get identity: %w", err)
	}

	traits, _ := identity.Traits.(map[string]interface{})
	if traits == nil {
		traits = map[string]interface{}{}
	}
	traits["first_name"] = firstName
	traits["last_name"] = lastName
	delete(traits, "ghost")

	body := ory.UpdateIdentityBody{
		SchemaId: identity.SchemaId,
		Traits:   traits,
	}

	_, _, err = c.client.IdentityAPI.UpdateIdentity(ctx, id).UpdateIdentityBody(body).Execute()
	if err != nil {
		return fmt.Errorf("failed to update identity: %w", err)
	}

	return nil
}

func userFromIdentity(identity *ory.Identity) *types.User {
	u := &types.User{ID: identity.Id}

	traits, _ := identity.Traits.(map[string]interface{})
	if traits == nil {
		return u
	}

	if email, ok := traits["email"].(string); ok {
		u.Email = email
	}
	if firstName, ok := traits["first_name"].(string); ok {
		u.FirstName = firstName
	}
	if lastName, ok := traits["last_name"].(string); ok {
		u.LastName = lastName
	}
	if ghost, ok := traits["ghost"].(bool); ok {
		u.Ghost = ghost
	}

	return u
}
