package models

type Family struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	InviteCode string `json:"invite_code,omitempty"`
}

type FamilyResponse struct {
	Success bool    `json:"success"`
	Data    *Family `json:"data"`
}

type FamilyMember struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role"`
}

type FamilyMembersResponse struct {
	Success bool           `json:"success"`
	Data    []FamilyMember `json:"data"`
}

type InviteCodeResponse struct {
	Success    bool   `json:"success"`
	InviteCode string `json:"invite_code"`
}
