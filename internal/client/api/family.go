package api

import (
	"context"
	"net/http"

	"github.com/freshkeep/freshkeep-cli/internal/client/models"
)

type createFamilyRequest struct {
	Name string `json:"name"`
}

type joinFamilyRequest struct {
	InviteCode string `json:"invite_code"`
}

type memberRoleRequest struct {
	Role string `json:"role"`
}

func (c *Client) CreateFamily(ctx context.Context, name string) (*models.FamilyResponse, error) {
	var resp models.FamilyResponse
	err := c.Do(ctx, Request{Method: http.MethodPost, Path: "/api/family", Body: createFamilyRequest{Name: name}}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) JoinFamily(ctx context.Context, inviteCode string) (*models.FamilyResponse, error) {
	var resp models.FamilyResponse
	err := c.Do(ctx, Request{Method: http.MethodPost, Path: "/api/family/join", Body: joinFamilyRequest{InviteCode: inviteCode}}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) FamilyMembers(ctx context.Context) (*models.FamilyMembersResponse, error) {
	var resp models.FamilyMembersResponse
	err := c.Do(ctx, Request{Method: http.MethodGet, Path: "/api/family/members"}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) UpdateMemberRole(ctx context.Context, memberID, role string) (*models.FamilyMembersResponse, error) {
	var resp models.FamilyMembersResponse
	err := c.Do(ctx, Request{Method: http.MethodPut, Path: "/api/family/members/" + memberID, Body: memberRoleRequest{Role: role}}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) RemoveFamilyMember(ctx context.Context, memberID string) error {
	return c.Do(ctx, Request{Method: http.MethodDelete, Path: "/api/family/members/" + memberID}, nil)
}

func (c *Client) LeaveFamily(ctx context.Context) error {
	return c.Do(ctx, Request{Method: http.MethodPost, Path: "/api/family/leave"}, nil)
}

// RefreshInviteCode rotates the family's invite code and returns the new one.
func (c *Client) RefreshInviteCode(ctx context.Context) (*models.InviteCodeResponse, error) {
	var resp models.InviteCodeResponse
	err := c.Do(ctx, Request{Method: http.MethodPost, Path: "/api/family/invite-code"}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}
