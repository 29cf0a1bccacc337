package apix

import (
	"context"
	"fmt"
	"net/http"
)

// CreateFamily founds a family and returns it with a fresh invitation code.
func (s *Session) CreateFamily(ctx context.Context, name string) (Family, error) {
	payload := map[string]string{"name": name}

	var out struct {
		FamilyID       string `json:"family_id"`
		Name           string `json:"name"`
		InvitationCode string `json:"invitation_code"`
		CreatedBy      string `json:"created_by"`
	}
	if err := s.doJSON(ctx, http.MethodPost, "/family/create", payload, &out); err != nil {
		return Family{}, err
	}
	return Family{
		ID:             out.FamilyID,
		Name:           out.Name,
		InvitationCode: out.InvitationCode,
		CreatedBy:      out.CreatedBy,
	}, nil
}

// JoinFamily redeems an invitation code for a membership.
func (s *Session) JoinFamily(ctx context.Context, invitationCode string) (Family, error) {
	payload := map[string]string{"invitationCode": invitationCode}

	var out struct {
		FamilyID string `json:"family_id"`
		Name     string `json:"name"`
	}
	if err := s.doJSON(ctx, http.MethodPost, "/family/join", payload, &out); err != nil {
		return Family{}, err
	}
	return Family{ID: out.FamilyID, Name: out.Name}, nil
}

// FamilyInfo fetches the caller's family.
func (s *Session) FamilyInfo(ctx context.Context) (Family, error) {
	var out Family
	if err := s.doJSON(ctx, http.MethodGet, "/family/info", nil, &out); err != nil {
		return Family{}, err
	}
	return out, nil
}

// FamilyMembers lists the caller's family members.
func (s *Session) FamilyMembers(ctx context.Context) ([]FamilyMember, error) {
	var out []FamilyMember
	if err := s.doJSON(ctx, http.MethodGet, "/family/members", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FamilyTasks lists the caller's family tasks.
func (s *Session) FamilyTasks(ctx context.Context) ([]Task, error) {
	var out []Task
	if err := s.doJSON(ctx, http.MethodGet, "/family/tasks", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateFamilyTask creates a task in the caller's family. Leader only.
func (s *Session) CreateFamilyTask(ctx context.Context, req TaskRequest) (Task, error) {
	var out Task
	if err := s.doJSON(ctx, http.MethodPost, "/family/tasks", req, &out); err != nil {
		return Task{}, err
	}
	return out, nil
}

// UpdateFamilyTask updates one family task.
func (s *Session) UpdateFamilyTask(ctx context.Context, taskID string, req TaskRequest) (Task, error) {
	var out Task
	path := fmt.Sprintf("/family/tasks/%s", taskID)
	if err := s.doJSON(ctx, http.MethodPut, path, req, &out); err != nil {
		return Task{}, err
	}
	return out, nil
}

// DeleteFamilyTask removes one family task. Leader only.
func (s *Session) DeleteFamilyTask(ctx context.Context, taskID string) error {
	return s.doJSON(ctx, http.MethodDelete, "/family/tasks/"+taskID, nil, nil)
}
