package entity

import "slices"

type WorkflowStage struct {
	Status       string   `json:"status"`
	Description  string   `json:"description"`
	Color        string   `json:"color"`
	Icon         string   `json:"icon"`
	AllowedRoles []string `json:"allowedRoles"`
}

func (s WorkflowStage) Clone() WorkflowStage {
	c := s
	c.AllowedRoles = slices.Clone(s.AllowedRoles)
	return c
}

func (s WorkflowStage) AllowsRole(role string) bool {
	return slices.Contains(s.AllowedRoles, role)
}
