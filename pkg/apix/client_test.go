package apix

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/famdoapp/famdo/internal/famdo/domain"
)

func TestLogin(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NotEmpty(t, r.Header.Get("X-Request-ID"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "alice@example.com", body["email"])

		json.NewEncoder(w).Encode(AuthResponse{
			User:  User{ID: "u-alice", Username: "alice", Email: "alice@example.com"},
			Token: "tok-123",
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	resp, err := client.Login(context.Background(), "alice@example.com", "hunter2")
	require.NoError(t, err)
	require.Equal(t, "tok-123", resp.Token)
	require.Equal(t, domain.Identity{
		ID: "u-alice", Username: "alice", Email: "alice@example.com",
	}, resp.User.Identity())
}

func TestLoginRejectedCredentials(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "invalid credentials"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.Login(context.Background(), "alice@example.com", "wrong")
	require.Error(t, err)
	require.True(t, IsUnauthorized(err))

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "invalid credentials", apiErr.Message)
}

func TestSessionSendsBearerToken(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		require.Equal(t, "/family/info", r.URL.Path)

		json.NewEncoder(w).Encode(Family{
			ID: "f1", Name: "Smiths", InvitationCode: "AB12CD", CreatedBy: "u-alice",
		})
	}))
	defer srv.Close()

	session := NewClient(srv.URL).WithToken("tok-123")
	family, err := session.FamilyInfo(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Smiths", family.Name)
	require.Equal(t, "AB12CD", family.InvitationCode)
}

func TestCreateFamilyMapsResponse(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/family/create", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]string{
			"family_id":       "f1",
			"name":            "Smiths",
			"invitation_code": "AB12CD",
			"created_by":      "u-alice",
		})
	}))
	defer srv.Close()

	session := NewClient(srv.URL).WithToken("tok-123")
	family, err := session.CreateFamily(context.Background(), "Smiths")
	require.NoError(t, err)
	require.Equal(t, Family{
		ID: "f1", Name: "Smiths", InvitationCode: "AB12CD", CreatedBy: "u-alice",
	}, family)
}

func TestTaskWireMapping(t *testing.T) {
	t.Parallel()

	wire := Task{
		ID:       "t1",
		Title:    "dishes",
		Priority: 3,
		Status:   "pending",
		FamilyID: "f1",
	}

	task := wire.Domain()
	require.Equal(t, domain.PriorityHigh, task.Priority)
	require.Equal(t, domain.StatusPending, task.Status)

	back := TaskFromDomain(task)
	require.Equal(t, 3, back.Priority)
	require.Equal(t, "pending", back.Status)
}

func TestDeleteTaskSurfacesNotFound(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "task not found"})
	}))
	defer srv.Close()

	session := NewClient(srv.URL).WithToken("tok-123")
	err := session.DeleteTask(context.Background(), "missing")
	require.True(t, IsNotFound(err))
}

func TestNonJSONErrorBodyFallsBack(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.Login(context.Background(), "a@b.c", "pw")

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	require.Contains(t, apiErr.Message, "502")
}
