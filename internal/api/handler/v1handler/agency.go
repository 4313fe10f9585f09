package v1handler

import (
	"encoding/json"
	"net/http"

	"orgdash/internal/directory"
	"orgdash/pkg/domain"
	"orgdash/pkg/serrors"
)

// createAgencyRequest is the wire shape for POST /organizations/{id}/agencies.
type createAgencyRequest struct {
	ShortName string `json:"shortName"`
	LongName  string `json:"longName"`
	Location  string `json:"location"`
}

// updateAgencyRequest is the wire shape for PATCH agency requests. Absent
// fields stay unchanged.
type updateAgencyRequest struct {
	ShortName *string `json:"shortName"`
	LongName  *string `json:"longName"`
	Location  *string `json:"location"`
	Active    *bool   `json:"active"`
}

func agencyIDFromRequest(r *http.Request) (domain.AgencyID, error) {
	id, err := domain.ParseAgencyID(r.PathValue("agencyID"))
	if err != nil {
		return domain.NilAgencyID, serrors.Wrap(serrors.ErrValidation, err, "invalid agency id")
	}

	return id, nil
}

func (h *Handler) listAgencies(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orgID, err := organizationIDFromRequest(r)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	agencies, err := h.deps.Directory.Agencies(ctx, GetUserIDFromContext(ctx), orgID)
	if err != nil {
		writeError(ctx, w, err)

		return
	}
	if agencies == nil {
		agencies = []domain.Agency{}
	}

	writeJSON(ctx, w, http.StatusOK, agencies)
}

func (h *Handler) createAgency(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orgID, err := organizationIDFromRequest(r)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	var req createAgencyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(ctx, w, serrors.Wrap(serrors.ErrValidation, err, "invalid request body"))

		return
	}

	agency, err := h.deps.Directory.CreateAgency(ctx, GetUserIDFromContext(ctx), orgID, directory.CreateAgencyInput{
		ShortName: req.ShortName,
		LongName:  req.LongName,
		Location:  req.Location,
	})
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusCreated, agency)
}

func (h *Handler) getAgency(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orgID, err := organizationIDFromRequest(r)
	if err != nil {
		writeError(ctx, w, err)

		return
	}
	agencyID, err := agencyIDFromRequest(r)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	agency, err := h.deps.Directory.Agency(ctx, GetUserIDFromContext(ctx), orgID, agencyID)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, agency)
}

func (h *Handler) updateAgency(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orgID, err := organizationIDFromRequest(r)
	if err != nil {
		writeError(ctx, w, err)

		return
	}
	agencyID, err := agencyIDFromRequest(r)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	var req updateAgencyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(ctx, w, serrors.Wrap(serrors.ErrValidation, err, "invalid request body"))

		return
	}

	agency, err := h.deps.Directory.UpdateAgency(ctx, GetUserIDFromContext(ctx), orgID, agencyID,
		directory.UpdateAgencyInput{
			ShortName: req.ShortName,
			LongName:  req.LongName,
			Location:  req.Location,
			Active:    req.Active,
		})
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, agency)
}

func (h *Handler) deleteAgency(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orgID, err := organizationIDFromRequest(r)
	if err != nil {
		writeError(ctx, w, err)

		return
	}
	agencyID, err := agencyIDFromRequest(r)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	if err := h.deps.Directory.DeleteAgency(ctx, GetUserIDFromContext(ctx), orgID, agencyID); err != nil {
		writeError(ctx, w, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
