package v1handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"orgdash/internal/api/handler/v1handler"
	"orgdash/internal/directory"
	mockdirectory "orgdash/internal/directory/mock"
	"orgdash/pkg/domain"
	"orgdash/pkg/serrors"
)

// newHandlerForTest wires the route table with a directory mock and a context
// carrying userID, the way the security middleware would.
func newHandlerForTest(t *testing.T, userID domain.UserID) (http.Handler, *mockdirectory.MockDirectory) {
	t.Helper()

	dir := mockdirectory.NewMockDirectory(gomock.NewController(t))
	routes := v1handler.New(v1handler.Deps{Directory: dir}).Routes()

	authed := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), v1handler.UserIDKey, userID)
		routes.ServeHTTP(w, r.WithContext(ctx))
	})

	return authed, dir
}

func doRequest(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody *strings.Reader
	if body != "" {
		reqBody = strings.NewReader(body)
	} else {
		reqBody = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, reqBody)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec
}

func wireOrganization(owner domain.UserID) domain.Organization {
	return domain.Organization{
		ID:        domain.OrganizationID(uuid.New()),
		OwnerID:   owner,
		ShortName: "acme",
		LongName:  "Acme Corp",
		Status:    domain.OrganizationStatusActive,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
}

func TestListOrganizations(t *testing.T) {
	t.Parallel()

	userID := domain.UserID(uuid.New())
	h, dir := newHandlerForTest(t, userID)
	org := wireOrganization(userID)
	dir.EXPECT().Organizations(gomock.Any(), userID).Return([]domain.Organization{org}, nil)

	rec := doRequest(t, h, http.MethodGet, "/organizations", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got []domain.Organization
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, org.ID, got[0].ID)
}

func TestListOrganizationsEmptyIsJSONArray(t *testing.T) {
	t.Parallel()

	userID := domain.UserID(uuid.New())
	h, dir := newHandlerForTest(t, userID)
	dir.EXPECT().Organizations(gomock.Any(), userID).Return(nil, nil)

	rec := doRequest(t, h, http.MethodGet, "/organizations", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestCreateOrganization(t *testing.T) {
	t.Parallel()

	userID := domain.UserID(uuid.New())
	h, dir := newHandlerForTest(t, userID)
	org := wireOrganization(userID)
	dir.EXPECT().CreateOrganization(gomock.Any(), userID, directory.CreateOrganizationInput{
		ShortName: "acme",
		LongName:  "Acme Corp",
	}).Return(&org, nil)

	rec := doRequest(t, h, http.MethodPost, "/organizations",
		`{"shortName":"acme","longName":"Acme Corp"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var got domain.Organization
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, org.ID, got.ID)
}

func TestCreateOrganizationValidationFailure(t *testing.T) {
	t.Parallel()

	userID := domain.UserID(uuid.New())
	h, dir := newHandlerForTest(t, userID)
	dir.EXPECT().CreateOrganization(gomock.Any(), userID, gomock.Any()).
		Return(nil, serrors.With(serrors.ErrValidation, "organization names must not be blank"))

	rec := doRequest(t, h, http.MethodPost, "/organizations", `{"shortName":"","longName":""}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), `"VALIDATION_FAILED"`)
}

func TestGetOrganizationNotFound(t *testing.T) {
	t.Parallel()

	userID := domain.UserID(uuid.New())
	h, dir := newHandlerForTest(t, userID)
	id := domain.OrganizationID(uuid.New())
	dir.EXPECT().Organization(gomock.Any(), userID, id).
		Return(nil, serrors.With(serrors.ErrNotFound, "organization not found"))

	rec := doRequest(t, h, http.MethodGet, "/organizations/"+id.String(), "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"NOT_FOUND"`)
}

func TestGetOrganizationRejectsMalformedID(t *testing.T) {
	t.Parallel()

	h, _ := newHandlerForTest(t, domain.UserID(uuid.New()))

	rec := doRequest(t, h, http.MethodGet, "/organizations/not-a-uuid", "")
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), `"VALIDATION_FAILED"`)
}

func TestUpdateOrganization(t *testing.T) {
	t.Parallel()

	userID := domain.UserID(uuid.New())
	h, dir := newHandlerForTest(t, userID)
	org := wireOrganization(userID)
	short := "acme2"
	dir.EXPECT().UpdateOrganization(gomock.Any(), userID, org.ID, directory.UpdateOrganizationInput{
		ShortName: &short,
		Status:    domain.OrganizationStatusSuspended,
	}).Return(&org, nil)

	rec := doRequest(t, h, http.MethodPatch, "/organizations/"+org.ID.String(),
		`{"shortName":"acme2","status":"SUSPENDED"}`)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestDeleteOrganization(t *testing.T) {
	t.Parallel()

	userID := domain.UserID(uuid.New())
	h, dir := newHandlerForTest(t, userID)
	id := domain.OrganizationID(uuid.New())
	dir.EXPECT().DeleteOrganization(gomock.Any(), userID, id).Return(nil)

	rec := doRequest(t, h, http.MethodDelete, "/organizations/"+id.String(), "")
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestCreateAgency(t *testing.T) {
	t.Parallel()

	userID := domain.UserID(uuid.New())
	h, dir := newHandlerForTest(t, userID)
	orgID := domain.OrganizationID(uuid.New())
	agency := domain.Agency{
		ID:             domain.AgencyID(uuid.New()),
		OrganizationID: orgID,
		ShortName:      "north",
		LongName:       "North Branch",
		Active:         true,
		Location:       "Oslo",
	}
	dir.EXPECT().CreateAgency(gomock.Any(), userID, orgID, directory.CreateAgencyInput{
		ShortName: "north",
		LongName:  "North Branch",
		Location:  "Oslo",
	}).Return(&agency, nil)

	rec := doRequest(t, h, http.MethodPost, "/organizations/"+orgID.String()+"/agencies",
		`{"shortName":"north","longName":"North Branch","location":"Oslo"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var got domain.Agency
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, agency.ID, got.ID)
	assert.Equal(t, orgID, got.OrganizationID)
}

func TestUpdateAgency(t *testing.T) {
	t.Parallel()

	userID := domain.UserID(uuid.New())
	h, dir := newHandlerForTest(t, userID)
	orgID := domain.OrganizationID(uuid.New())
	agencyID := domain.AgencyID(uuid.New())
	active := false
	agency := domain.Agency{ID: agencyID, OrganizationID: orgID, ShortName: "north", Active: active}
	dir.EXPECT().UpdateAgency(gomock.Any(), userID, orgID, agencyID, directory.UpdateAgencyInput{
		Active: &active,
	}).Return(&agency, nil)

	rec := doRequest(t, h, http.MethodPatch,
		"/organizations/"+orgID.String()+"/agencies/"+agencyID.String(), `{"active":false}`)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestDeleteAgencyNotFound(t *testing.T) {
	t.Parallel()

	userID := domain.UserID(uuid.New())
	h, dir := newHandlerForTest(t, userID)
	orgID := domain.OrganizationID(uuid.New())
	agencyID := domain.AgencyID(uuid.New())
	dir.EXPECT().DeleteAgency(gomock.Any(), userID, orgID, agencyID).
		Return(serrors.With(serrors.ErrNotFound, "agency not found"))

	rec := doRequest(t, h, http.MethodDelete,
		"/organizations/"+orgID.String()+"/agencies/"+agencyID.String(), "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUnhandledErrorIsOpaque(t *testing.T) {
	t.Parallel()

	userID := domain.UserID(uuid.New())
	h, dir := newHandlerForTest(t, userID)
	dir.EXPECT().Organizations(gomock.Any(), userID).Return(nil, assert.AnError)

	rec := doRequest(t, h, http.MethodGet, "/organizations", "")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"INTERNAL"`)
	assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
}
