package remote_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orgdash/pkg/domain"
	"orgdash/pkg/repository/remote"
	"orgdash/pkg/serrors"
)

func newClient(t *testing.T, handler http.Handler) *remote.Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := remote.New(srv.Client(), remote.Options{
		BaseURL: srv.URL,
		Token:   "test-token",
	})
	t.Cleanup(func() { _ = client.Close() })

	return client
}

func TestClientSendsBearerToken(t *testing.T) {
	t.Parallel()

	var gotAuth string
	client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode([]domain.Organization{})
	}))

	_, err := client.UserOrganizations(t.Context(), domain.UserID(uuid.New()))
	require.NoError(t, err)
	assert.Equal(t, "Bearer test-token", gotAuth)
}

func TestStoreOrganizationRoundTrip(t *testing.T) {
	t.Parallel()

	owner := domain.UserID(uuid.New())
	stored := domain.Organization{
		ID:        domain.OrganizationID(uuid.New()),
		OwnerID:   owner,
		ShortName: "acme",
		LongName:  "Acme Corp",
		Status:    domain.OrganizationStatusPendingApproval,
	}

	client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/organizations", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "acme", body["shortName"])

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(stored)
	}))

	got, err := client.StoreOrganization(t.Context(), domain.Organization{
		OwnerID:   owner,
		ShortName: "acme",
		LongName:  "Acme Corp",
		Status:    domain.OrganizationStatusPendingApproval,
	})
	require.NoError(t, err)
	assert.Equal(t, stored.ID, got.ID)
}

func TestUserOrganizationsCarriesOwnerFilter(t *testing.T) {
	t.Parallel()

	owner := domain.UserID(uuid.New())
	client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/organizations", r.URL.Path)
		require.Equal(t, owner.String(), r.URL.Query().Get("ownerId"))
		_ = json.NewEncoder(w).Encode([]domain.Organization{})
	}))

	organizations, err := client.UserOrganizations(t.Context(), owner)
	require.NoError(t, err)
	assert.Empty(t, organizations)
}

// TestErrorNormalization covers how non-2xx responses become semantic errors:
// a structured error body wins, otherwise the HTTP status decides.
func TestErrorNormalization(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		status   int
		body     string
		wantKind serrors.Kind
		wantMsg  string
	}{
		{
			name:     "structured not found",
			status:   http.StatusNotFound,
			body:     `{"error":{"code":"NOT_FOUND","message":"organization not found"}}`,
			wantKind: serrors.ErrNotFound,
			wantMsg:  "organization not found",
		},
		{
			name:     "structured validation",
			status:   http.StatusUnprocessableEntity,
			body:     `{"error":{"code":"VALIDATION_FAILED","message":"short name must not be blank"}}`,
			wantKind: serrors.ErrValidation,
			wantMsg:  "short name must not be blank",
		},
		{
			name:     "structured conflict",
			status:   http.StatusConflict,
			body:     `{"error":{"code":"CONFLICT","message":"already exists"}}`,
			wantKind: serrors.ErrConflict,
		},
		{
			name:     "code wins over status",
			status:   http.StatusInternalServerError,
			body:     `{"error":{"code":"FORBIDDEN","message":"nope"}}`,
			wantKind: serrors.ErrForbidden,
		},
		{
			name:     "internal maps to unavailable",
			status:   http.StatusInternalServerError,
			body:     `{"error":{"code":"INTERNAL","message":"internal error"}}`,
			wantKind: serrors.ErrUnavailable,
		},
		{
			name:     "unknown code falls back to status",
			status:   http.StatusNotFound,
			body:     `{"error":{"code":"WHO_KNOWS","message":"gone"}}`,
			wantKind: serrors.ErrNotFound,
		},
		{
			name:     "empty body falls back to status text",
			status:   http.StatusUnauthorized,
			body:     "",
			wantKind: serrors.ErrUnauthorized,
			wantMsg:  http.StatusText(http.StatusUnauthorized),
		},
		{
			name:     "malformed body falls back to status",
			status:   http.StatusBadGateway,
			body:     `<html>bad gateway</html>`,
			wantKind: serrors.ErrUnavailable,
		},
		{
			name:     "gateway timeout",
			status:   http.StatusGatewayTimeout,
			body:     "",
			wantKind: serrors.ErrTimeout,
		},
		{
			name:     "bad request maps to validation",
			status:   http.StatusBadRequest,
			body:     "",
			wantKind: serrors.ErrValidation,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))

			_, err := client.OrganizationByID(t.Context(), domain.OrganizationID(uuid.New()))
			require.Error(t, err)
			require.ErrorIs(t, err, tc.wantKind)
			if tc.wantMsg != "" {
				assert.Contains(t, err.Error(), tc.wantMsg)
			}
		})
	}
}

func TestTransportFailureIsUnavailable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	client := remote.New(srv.Client(), remote.Options{BaseURL: srv.URL})
	srv.Close() // connection refused from here on

	_, err := client.OrganizationByID(t.Context(), domain.OrganizationID(uuid.New()))
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrUnavailable)
}

func TestMalformedSuccessBodyIsUnavailable(t *testing.T) {
	t.Parallel()

	client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"id": not-json`))
	}))

	_, err := client.OrganizationByID(t.Context(), domain.OrganizationID(uuid.New()))
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrUnavailable)
}

func TestDeleteAgencyTargetsScopedPath(t *testing.T) {
	t.Parallel()

	orgID := domain.OrganizationID(uuid.New())
	agencyID := domain.AgencyID(uuid.New())

	client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/v1/organizations/"+orgID.String()+"/agencies/"+agencyID.String(), r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))

	require.NoError(t, client.DeleteAgency(t.Context(), orgID, agencyID))
}
