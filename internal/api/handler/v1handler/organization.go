package v1handler

import (
	"encoding/json"
	"net/http"

	"orgdash/internal/directory"
	"orgdash/pkg/domain"
	"orgdash/pkg/serrors"
)

// createOrganizationRequest is the wire shape for POST /organizations.
type createOrganizationRequest struct {
	ShortName string `json:"shortName"`
	LongName  string `json:"longName"`
}

// updateOrganizationRequest is the wire shape for PATCH /organizations/{id}.
// Absent fields stay unchanged.
type updateOrganizationRequest struct {
	ShortName *string                   `json:"shortName"`
	LongName  *string                   `json:"longName"`
	Status    domain.OrganizationStatus `json:"status"`
}

func organizationIDFromRequest(r *http.Request) (domain.OrganizationID, error) {
	id, err := domain.ParseOrganizationID(r.PathValue("id"))
	if err != nil {
		return domain.NilOrganizationID, serrors.Wrap(serrors.ErrValidation, err, "invalid organization id")
	}

	return id, nil
}

func (h *Handler) listOrganizations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	organizations, err := h.deps.Directory.Organizations(ctx, GetUserIDFromContext(ctx))
	if err != nil {
		writeError(ctx, w, err)

		return
	}
	if organizations == nil {
		organizations = []domain.Organization{}
	}

	writeJSON(ctx, w, http.StatusOK, organizations)
}

func (h *Handler) createOrganization(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req createOrganizationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(ctx, w, serrors.Wrap(serrors.ErrValidation, err, "invalid request body"))

		return
	}

	org, err := h.deps.Directory.CreateOrganization(ctx, GetUserIDFromContext(ctx), directory.CreateOrganizationInput{
		ShortName: req.ShortName,
		LongName:  req.LongName,
	})
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusCreated, org)
}

func (h *Handler) getOrganization(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := organizationIDFromRequest(r)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	org, err := h.deps.Directory.Organization(ctx, GetUserIDFromContext(ctx), id)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, org)
}

func (h *Handler) updateOrganization(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := organizationIDFromRequest(r)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	var req updateOrganizationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(ctx, w, serrors.Wrap(serrors.ErrValidation, err, "invalid request body"))

		return
	}

	org, err := h.deps.Directory.UpdateOrganization(ctx, GetUserIDFromContext(ctx), id, directory.UpdateOrganizationInput{
		ShortName: req.ShortName,
		LongName:  req.LongName,
		Status:    req.Status,
	})
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, org)
}

func (h *Handler) deleteOrganization(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := organizationIDFromRequest(r)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	if err := h.deps.Directory.DeleteOrganization(ctx, GetUserIDFromContext(ctx), id); err != nil {
		writeError(ctx, w, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
