package repository_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orgdash/internal/api/handler/v1handler"
	"orgdash/internal/directory"
	"orgdash/pkg/domain"
	"orgdash/pkg/repository"
	"orgdash/pkg/repository/localfs"
	"orgdash/pkg/repository/remote"
	"orgdash/pkg/serrors"
)

// repoFactory builds a repository backend whose visible data belongs to owner.
type repoFactory func(t *testing.T, owner domain.UserID) repository.Repository

// backends lists the interchangeable implementations under test. The remote
// backend goes through the real HTTP stack: remote client, v1 handlers,
// directory, local store. Consumers must not be able to tell them apart.
func backends() map[string]repoFactory {
	return map[string]repoFactory{
		"localfs": func(t *testing.T, _ domain.UserID) repository.Repository {
			t.Helper()

			store, err := localfs.New(localfs.Options{DataDir: t.TempDir()})
			require.NoError(t, err)
			t.Cleanup(func() { _ = store.Close() })

			return store
		},
		"remote": func(t *testing.T, owner domain.UserID) repository.Repository {
			t.Helper()

			store, err := localfs.New(localfs.Options{DataDir: t.TempDir()})
			require.NoError(t, err)
			t.Cleanup(func() { _ = store.Close() })

			routes := v1handler.New(v1handler.Deps{Directory: directory.New(store, nil)}).Routes()
			authed := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				ctx := context.WithValue(r.Context(), v1handler.UserIDKey, owner)
				routes.ServeHTTP(w, r.WithContext(ctx))
			})

			mux := http.NewServeMux()
			mux.Handle("/v1/", http.StripPrefix("/v1", authed))
			srv := httptest.NewServer(mux)
			t.Cleanup(srv.Close)

			client := remote.New(srv.Client(), remote.Options{BaseURL: srv.URL, Token: "test"})
			t.Cleanup(func() { _ = client.Close() })

			return client
		},
	}
}

// The scenarios stay inside the intersection both paths guarantee: new
// organizations start in PENDING_APPROVAL, new agencies start active, and
// status changes follow allowed transitions, matching what the service layer
// enforces on the remote path.

func conformanceOrganization(owner domain.UserID) domain.Organization {
	return domain.Organization{
		OwnerID:   owner,
		ShortName: "acme",
		LongName:  "Acme Corp",
		Status:    domain.OrganizationStatusPendingApproval,
	}
}

func conformanceAgency(orgID domain.OrganizationID) domain.Agency {
	return domain.Agency{
		OrganizationID: orgID,
		ShortName:      "north",
		LongName:       "North Branch",
		Active:         true,
		Location:       "Oslo",
	}
}

func TestRepositoryConformance(t *testing.T) {
	t.Parallel()

	for name, factory := range backends() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			t.Run("create and fetch organization", func(t *testing.T) {
				owner := domain.UserID(uuid.New())
				repo := factory(t, owner)

				org, err := repo.StoreOrganization(t.Context(), conformanceOrganization(owner))
				require.NoError(t, err)
				require.False(t, org.ID.IsNil())
				assert.Equal(t, owner, org.OwnerID)
				assert.Equal(t, domain.OrganizationStatusPendingApproval, org.Status)

				got, err := repo.OrganizationByID(t.Context(), org.ID)
				require.NoError(t, err)
				assert.Equal(t, org.ID, got.ID)
				assert.Equal(t, "acme", got.ShortName)
				assert.Equal(t, "Acme Corp", got.LongName)
			})

			t.Run("list user organizations", func(t *testing.T) {
				owner := domain.UserID(uuid.New())
				repo := factory(t, owner)

				first, err := repo.StoreOrganization(t.Context(), conformanceOrganization(owner))
				require.NoError(t, err)
				second, err := repo.StoreOrganization(t.Context(), conformanceOrganization(owner))
				require.NoError(t, err)

				organizations, err := repo.UserOrganizations(t.Context(), owner)
				require.NoError(t, err)
				require.Len(t, organizations, 2)

				ids := []domain.OrganizationID{organizations[0].ID, organizations[1].ID}
				assert.Contains(t, ids, first.ID)
				assert.Contains(t, ids, second.ID)
			})

			t.Run("update organization", func(t *testing.T) {
				owner := domain.UserID(uuid.New())
				repo := factory(t, owner)

				org, err := repo.StoreOrganization(t.Context(), conformanceOrganization(owner))
				require.NoError(t, err)

				short := "acme2"
				updated, err := repo.UpdateOrganizationByID(t.Context(), org.ID, repository.OrganizationUpdates{
					ShortName: &short,
					Status:    domain.OrganizationStatusActive,
				})
				require.NoError(t, err)
				assert.Equal(t, "acme2", updated.ShortName)
				assert.Equal(t, org.LongName, updated.LongName)
				assert.Equal(t, domain.OrganizationStatusActive, updated.Status)
			})

			t.Run("missing organization is not found", func(t *testing.T) {
				repo := factory(t, domain.UserID(uuid.New()))

				_, err := repo.OrganizationByID(t.Context(), domain.OrganizationID(uuid.New()))
				require.Error(t, err)
				require.ErrorIs(t, err, serrors.ErrNotFound)
			})

			t.Run("delete organization hides it and its agencies", func(t *testing.T) {
				owner := domain.UserID(uuid.New())
				repo := factory(t, owner)

				org, err := repo.StoreOrganization(t.Context(), conformanceOrganization(owner))
				require.NoError(t, err)
				agency, err := repo.StoreAgency(t.Context(), conformanceAgency(org.ID))
				require.NoError(t, err)

				require.NoError(t, repo.DeleteOrganization(t.Context(), org.ID))

				_, err = repo.OrganizationByID(t.Context(), org.ID)
				require.ErrorIs(t, err, serrors.ErrNotFound)
				_, err = repo.AgencyByID(t.Context(), org.ID, agency.ID)
				require.ErrorIs(t, err, serrors.ErrNotFound)
			})

			t.Run("agency lifecycle", func(t *testing.T) {
				owner := domain.UserID(uuid.New())
				repo := factory(t, owner)

				org, err := repo.StoreOrganization(t.Context(), conformanceOrganization(owner))
				require.NoError(t, err)

				agency, err := repo.StoreAgency(t.Context(), conformanceAgency(org.ID))
				require.NoError(t, err)
				require.False(t, agency.ID.IsNil())
				assert.True(t, agency.Active)

				got, err := repo.AgencyByID(t.Context(), org.ID, agency.ID)
				require.NoError(t, err)
				assert.Equal(t, "Oslo", got.Location)

				location := "Bergen"
				updated, err := repo.UpdateAgencyByID(t.Context(), org.ID, agency.ID, repository.AgencyUpdates{
					Location: &location,
				})
				require.NoError(t, err)
				assert.Equal(t, "Bergen", updated.Location)
				assert.Equal(t, agency.ShortName, updated.ShortName)

				agencies, err := repo.OrganizationAgencies(t.Context(), org.ID)
				require.NoError(t, err)
				require.Len(t, agencies, 1)

				require.NoError(t, repo.DeleteAgency(t.Context(), org.ID, agency.ID))
				_, err = repo.AgencyByID(t.Context(), org.ID, agency.ID)
				require.ErrorIs(t, err, serrors.ErrNotFound)

				agencies, err = repo.OrganizationAgencies(t.Context(), org.ID)
				require.NoError(t, err)
				assert.Empty(t, agencies)
			})

			t.Run("agency scoped to its organization", func(t *testing.T) {
				owner := domain.UserID(uuid.New())
				repo := factory(t, owner)

				org, err := repo.StoreOrganization(t.Context(), conformanceOrganization(owner))
				require.NoError(t, err)
				other, err := repo.StoreOrganization(t.Context(), conformanceOrganization(owner))
				require.NoError(t, err)
				agency, err := repo.StoreAgency(t.Context(), conformanceAgency(org.ID))
				require.NoError(t, err)

				_, err = repo.AgencyByID(t.Context(), other.ID, agency.ID)
				require.Error(t, err)
				require.ErrorIs(t, err, serrors.ErrNotFound)
			})
		})
	}
}
