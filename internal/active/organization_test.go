package active_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"orgdash/internal/active"
	"orgdash/pkg/domain"
	mockrepository "orgdash/pkg/repository/mock"
	"orgdash/pkg/serrors"
)

type fakeSession struct {
	session domain.Session
}

func (f *fakeSession) Current(context.Context) domain.Session { return f.session }

type fakeRouter struct {
	mu          sync.Mutex
	path        string
	navigations []string
}

func (f *fakeRouter) CurrentPath() string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.path
}

func (f *fakeRouter) Navigate(path string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.path = path
	f.navigations = append(f.navigations, path)
}

func (f *fakeRouter) Navigations() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]string(nil), f.navigations...)
}

type fakeNotifier struct {
	mu       sync.Mutex
	warnings []string
	failures []string
}

func (f *fakeNotifier) Warn(_ context.Context, msg string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.warnings = append(f.warnings, msg)
}

func (f *fakeNotifier) Error(_ context.Context, msg string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.failures = append(f.failures, msg)
}

func (f *fakeNotifier) Warnings() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]string(nil), f.warnings...)
}

func (f *fakeNotifier) Failures() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]string(nil), f.failures...)
}

func authenticatedSession(userID domain.UserID) *fakeSession {
	return &fakeSession{session: domain.Session{Authenticated: true, UserID: userID}}
}

func testOrganization(owner domain.UserID) domain.Organization {
	return domain.Organization{
		ID:        domain.OrganizationID(uuid.New()),
		OwnerID:   owner,
		ShortName: "acme",
		LongName:  "Acme Corp",
		Status:    domain.OrganizationStatusActive,
		CreatedAt: time.Now().UTC(),
	}
}

func newOrganizationContext(t *testing.T) (
	*active.OrganizationContext, *mockrepository.MockRepository, *fakeSession, *fakeRouter, *fakeNotifier,
) {
	t.Helper()

	repo := mockrepository.NewMockRepository(gomock.NewController(t))
	session := authenticatedSession(domain.UserID(uuid.New()))
	router := &fakeRouter{path: "/"}
	notifier := &fakeNotifier{}

	return active.NewOrganizationContext(repo, session, router, notifier), repo, session, router, notifier
}

func TestFetchUserOrganizationsRequiresAuthentication(t *testing.T) {
	t.Parallel()

	orgCtx, _, session, _, _ := newOrganizationContext(t)
	session.session = domain.Session{}

	err := orgCtx.FetchUserOrganizations(t.Context())
	require.Error(t, err)
	assert.ErrorIs(t, err, serrors.ErrUnauthorized)
	assert.False(t, orgCtx.Snapshot().Initialized)
}

func TestFetchUserOrganizations(t *testing.T) {
	t.Parallel()

	orgCtx, repo, session, _, _ := newOrganizationContext(t)
	organizations := []domain.Organization{testOrganization(session.session.UserID)}
	repo.EXPECT().UserOrganizations(gomock.Any(), session.session.UserID).Return(organizations, nil)

	require.NoError(t, orgCtx.FetchUserOrganizations(t.Context()))

	snap := orgCtx.Snapshot()
	assert.Equal(t, organizations, snap.UserOrganizations)
	assert.True(t, snap.Initialized)
	assert.False(t, snap.LoadingList)
}

func TestFetchUserOrganizationsZeroOrgsStillInitializes(t *testing.T) {
	t.Parallel()

	orgCtx, repo, session, _, _ := newOrganizationContext(t)
	repo.EXPECT().UserOrganizations(gomock.Any(), session.session.UserID).Return([]domain.Organization{}, nil)

	require.NoError(t, orgCtx.FetchUserOrganizations(t.Context()))

	snap := orgCtx.Snapshot()
	assert.Empty(t, snap.UserOrganizations)
	assert.True(t, snap.Initialized)
}

func TestFetchUserOrganizationsFailureKeepsState(t *testing.T) {
	t.Parallel()

	orgCtx, repo, _, _, notifier := newOrganizationContext(t)
	repo.EXPECT().UserOrganizations(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))

	err := orgCtx.FetchUserOrganizations(t.Context())
	require.Error(t, err)
	assert.ErrorIs(t, err, serrors.ErrUnavailable)

	snap := orgCtx.Snapshot()
	assert.False(t, snap.Initialized)
	assert.False(t, snap.LoadingList)
	assert.Len(t, notifier.Failures(), 1)
}

func TestSetActiveAdoptsSuppliedDetail(t *testing.T) {
	t.Parallel()

	orgCtx, _, session, _, _ := newOrganizationContext(t)
	org := testOrganization(session.session.UserID)

	// No repository expectation: the adopt path must not fetch.
	require.NoError(t, orgCtx.SetActive(t.Context(), org.ID, &org))

	snap := orgCtx.Snapshot()
	assert.Equal(t, org.ID, snap.ActiveID)
	require.NotNil(t, snap.Details)
	assert.Equal(t, org, *snap.Details)
	assert.False(t, snap.LoadingDetails)
}

func TestSetActiveIgnoresMismatchedDetail(t *testing.T) {
	t.Parallel()

	orgCtx, repo, session, _, _ := newOrganizationContext(t)
	org := testOrganization(session.session.UserID)
	other := testOrganization(session.session.UserID)
	repo.EXPECT().OrganizationByID(gomock.Any(), org.ID).Return(&org, nil)

	require.NoError(t, orgCtx.SetActive(t.Context(), org.ID, &other))

	snap := orgCtx.Snapshot()
	require.NotNil(t, snap.Details)
	assert.Equal(t, org.ID, snap.Details.ID)
}

func TestSetActiveFetchesDetails(t *testing.T) {
	t.Parallel()

	orgCtx, repo, session, _, _ := newOrganizationContext(t)
	org := testOrganization(session.session.UserID)
	repo.EXPECT().OrganizationByID(gomock.Any(), org.ID).Return(&org, nil)

	require.NoError(t, orgCtx.SetActive(t.Context(), org.ID, nil))

	snap := orgCtx.Snapshot()
	assert.Equal(t, org.ID, snap.ActiveID)
	require.NotNil(t, snap.Details)
	assert.Equal(t, org.ID, snap.Details.ID)
	assert.False(t, snap.LoadingDetails)
}

func TestSetActiveZeroClearsSelection(t *testing.T) {
	t.Parallel()

	orgCtx, _, session, _, _ := newOrganizationContext(t)
	org := testOrganization(session.session.UserID)
	require.NoError(t, orgCtx.SetActive(t.Context(), org.ID, &org))

	require.NoError(t, orgCtx.SetActive(t.Context(), domain.NilOrganizationID, nil))

	snap := orgCtx.Snapshot()
	assert.True(t, snap.ActiveID.IsNil())
	assert.Nil(t, snap.Details)
}

func TestSetActiveNotFoundDegradesSelection(t *testing.T) {
	t.Parallel()

	orgCtx, repo, _, _, notifier := newOrganizationContext(t)
	id := domain.OrganizationID(uuid.New())
	repo.EXPECT().OrganizationByID(gomock.Any(), id).Return(nil, serrors.KindOnly(serrors.ErrNotFound))

	require.NoError(t, orgCtx.SetActive(t.Context(), id, nil))

	snap := orgCtx.Snapshot()
	assert.True(t, snap.ActiveID.IsNil())
	assert.Nil(t, snap.Details)
	assert.False(t, snap.LoadingDetails)
	assert.Len(t, notifier.Warnings(), 1)
}

func TestSetActiveUnavailableKeepsConsistentState(t *testing.T) {
	t.Parallel()

	orgCtx, repo, _, _, notifier := newOrganizationContext(t)
	id := domain.OrganizationID(uuid.New())
	repo.EXPECT().OrganizationByID(gomock.Any(), id).Return(nil, serrors.KindOnly(serrors.ErrUnavailable))

	err := orgCtx.SetActive(t.Context(), id, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, serrors.ErrUnavailable)

	snap := orgCtx.Snapshot()
	assert.Equal(t, id, snap.ActiveID)
	assert.Nil(t, snap.Details)
	assert.False(t, snap.LoadingDetails)
	assert.Len(t, notifier.Failures(), 1)
}

// The single correctness-critical ordering property: when selection A's detail
// fetch resolves after the selection has already moved to B, the final state
// must reflect B.
func TestSetActiveStaleResolutionDiscarded(t *testing.T) {
	t.Parallel()

	orgCtx, repo, session, _, _ := newOrganizationContext(t)
	orgA := testOrganization(session.session.UserID)
	orgB := testOrganization(session.session.UserID)

	fetchStarted := make(chan struct{})
	release := make(chan struct{})
	repo.EXPECT().OrganizationByID(gomock.Any(), orgA.ID).DoAndReturn(
		func(context.Context, domain.OrganizationID) (*domain.Organization, error) {
			close(fetchStarted)
			<-release

			return &orgA, nil
		})

	done := make(chan error, 1)
	go func() { done <- orgCtx.SetActive(context.Background(), orgA.ID, nil) }()

	<-fetchStarted
	require.NoError(t, orgCtx.SetActive(t.Context(), orgB.ID, &orgB))

	close(release)
	require.NoError(t, <-done)

	snap := orgCtx.Snapshot()
	assert.Equal(t, orgB.ID, snap.ActiveID)
	require.NotNil(t, snap.Details)
	assert.Equal(t, orgB.ID, snap.Details.ID)
	assert.False(t, snap.LoadingDetails)
}

func TestReconcileURLDeferredUntilListLoads(t *testing.T) {
	t.Parallel()

	orgCtx, _, _, router, _ := newOrganizationContext(t)
	router.path = "/organizations/" + uuid.NewString()

	// List not loaded yet: deferred, not rejected.
	require.NoError(t, orgCtx.ReconcileURL(t.Context()))
	assert.Empty(t, router.Navigations())
	assert.True(t, orgCtx.Snapshot().ActiveID.IsNil())
}

func TestReconcileURLEmptyListRoutesToOnboarding(t *testing.T) {
	t.Parallel()

	orgCtx, repo, session, router, _ := newOrganizationContext(t)
	repo.EXPECT().UserOrganizations(gomock.Any(), session.session.UserID).Return([]domain.Organization{}, nil)
	require.NoError(t, orgCtx.FetchUserOrganizations(t.Context()))

	require.NoError(t, orgCtx.ReconcileURL(t.Context()))
	assert.Equal(t, []string{active.OnboardingPath}, router.Navigations())
}

func TestReconcileURLRejectsForeignOrganization(t *testing.T) {
	t.Parallel()

	orgCtx, repo, session, router, notifier := newOrganizationContext(t)
	org := testOrganization(session.session.UserID)
	repo.EXPECT().UserOrganizations(gomock.Any(), session.session.UserID).Return([]domain.Organization{org}, nil)
	require.NoError(t, orgCtx.FetchUserOrganizations(t.Context()))

	router.path = "/organizations/" + uuid.NewString()
	require.NoError(t, orgCtx.ReconcileURL(t.Context()))

	snap := orgCtx.Snapshot()
	assert.True(t, snap.ActiveID.IsNil())
	assert.Nil(t, snap.Details)
	assert.Equal(t, []string{active.DefaultPath}, router.Navigations())
	assert.Len(t, notifier.Failures(), 1)
}

func TestReconcileURLAdoptsPathOrganization(t *testing.T) {
	t.Parallel()

	orgCtx, repo, session, router, _ := newOrganizationContext(t)
	org := testOrganization(session.session.UserID)
	repo.EXPECT().UserOrganizations(gomock.Any(), session.session.UserID).Return([]domain.Organization{org}, nil)
	repo.EXPECT().OrganizationByID(gomock.Any(), org.ID).Return(&org, nil)
	require.NoError(t, orgCtx.FetchUserOrganizations(t.Context()))

	router.path = "/organizations/" + org.ID.String() + "/agencies"
	require.NoError(t, orgCtx.ReconcileURL(t.Context()))

	snap := orgCtx.Snapshot()
	assert.Equal(t, org.ID, snap.ActiveID)
	require.NotNil(t, snap.Details)
	assert.Empty(t, router.Navigations())
}

func TestReconcileURLNoopWhenAlreadyActive(t *testing.T) {
	t.Parallel()

	orgCtx, repo, session, router, _ := newOrganizationContext(t)
	org := testOrganization(session.session.UserID)
	repo.EXPECT().UserOrganizations(gomock.Any(), session.session.UserID).Return([]domain.Organization{org}, nil)
	require.NoError(t, orgCtx.FetchUserOrganizations(t.Context()))
	require.NoError(t, orgCtx.SetActive(t.Context(), org.ID, &org))

	router.path = "/organizations/" + org.ID.String()

	// No OrganizationByID expectation: the active selection already matches.
	require.NoError(t, orgCtx.ReconcileURL(t.Context()))
	assert.Equal(t, org.ID, orgCtx.Snapshot().ActiveID)
}

func TestReconcileURLFallsBackToFirstOrganization(t *testing.T) {
	t.Parallel()

	orgCtx, repo, session, router, _ := newOrganizationContext(t)
	first := testOrganization(session.session.UserID)
	second := testOrganization(session.session.UserID)
	repo.EXPECT().UserOrganizations(gomock.Any(), session.session.UserID).
		Return([]domain.Organization{first, second}, nil)
	repo.EXPECT().OrganizationByID(gomock.Any(), first.ID).Return(&first, nil)
	require.NoError(t, orgCtx.FetchUserOrganizations(t.Context()))

	router.path = "/dashboard"
	require.NoError(t, orgCtx.ReconcileURL(t.Context()))
	assert.Equal(t, first.ID, orgCtx.Snapshot().ActiveID)
}

func TestReconcileURLHonorsSessionHint(t *testing.T) {
	t.Parallel()

	orgCtx, repo, session, router, _ := newOrganizationContext(t)
	first := testOrganization(session.session.UserID)
	hinted := testOrganization(session.session.UserID)
	session.session.OrganizationHint = hinted.ID
	repo.EXPECT().UserOrganizations(gomock.Any(), session.session.UserID).
		Return([]domain.Organization{first, hinted}, nil)
	repo.EXPECT().OrganizationByID(gomock.Any(), hinted.ID).Return(&hinted, nil)
	require.NoError(t, orgCtx.FetchUserOrganizations(t.Context()))

	router.path = "/dashboard"
	require.NoError(t, orgCtx.ReconcileURL(t.Context()))
	assert.Equal(t, hinted.ID, orgCtx.Snapshot().ActiveID)
}

func TestClearAndReset(t *testing.T) {
	t.Parallel()

	orgCtx, repo, session, _, _ := newOrganizationContext(t)
	org := testOrganization(session.session.UserID)
	repo.EXPECT().UserOrganizations(gomock.Any(), session.session.UserID).Return([]domain.Organization{org}, nil)
	require.NoError(t, orgCtx.FetchUserOrganizations(t.Context()))
	require.NoError(t, orgCtx.SetActive(t.Context(), org.ID, &org))

	orgCtx.Clear(t.Context())
	snap := orgCtx.Snapshot()
	assert.True(t, snap.ActiveID.IsNil())
	assert.Nil(t, snap.Details)
	assert.True(t, snap.Initialized)
	assert.NotEmpty(t, snap.UserOrganizations)

	orgCtx.Reset(t.Context())
	snap = orgCtx.Snapshot()
	assert.False(t, snap.Initialized)
	assert.Empty(t, snap.UserOrganizations)
}

func TestSubscribeReceivesChanges(t *testing.T) {
	t.Parallel()

	orgCtx, _, session, _, _ := newOrganizationContext(t)
	org := testOrganization(session.session.UserID)

	var snapshots []active.OrganizationSnapshot
	orgCtx.Subscribe(func(_ context.Context, snap active.OrganizationSnapshot) {
		snapshots = append(snapshots, snap)
	})

	require.NoError(t, orgCtx.SetActive(t.Context(), org.ID, &org))

	require.NotEmpty(t, snapshots)
	assert.Equal(t, org.ID, snapshots[len(snapshots)-1].ActiveID)
}
