// Package v1handler implements the v1 REST handlers for organizations and
// agencies. The wire error format ({"error":{"code","message"}}) and the
// status mapping mirror what the remote repository client expects, so an
// instance of this server can back remote mode directly.
package v1handler

import (
	"net/http"

	"orgdash/internal/directory"
)

// Deps bundles the collaborators used by the v1 handlers.
type Deps struct {
	// Directory serves all organization and agency operations.
	Directory directory.Directory
}

// Handler carries the v1 route implementations.
type Handler struct {
	deps Deps
}

// New creates a Handler with the given dependencies.
func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Routes returns the v1 route table. Paths are relative to the /v1 mount
// point; authentication is applied by the caller.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /organizations", h.listOrganizations)
	mux.HandleFunc("POST /organizations", h.createOrganization)
	mux.HandleFunc("GET /organizations/{id}", h.getOrganization)
	mux.HandleFunc("PATCH /organizations/{id}", h.updateOrganization)
	mux.HandleFunc("DELETE /organizations/{id}", h.deleteOrganization)

	mux.HandleFunc("GET /organizations/{id}/agencies", h.listAgencies)
	mux.HandleFunc("POST /organizations/{id}/agencies", h.createAgency)
	mux.HandleFunc("GET /organizations/{id}/agencies/{agencyID}", h.getAgency)
	mux.HandleFunc("PATCH /organizations/{id}/agencies/{agencyID}", h.updateAgency)
	mux.HandleFunc("DELETE /organizations/{id}/agencies/{agencyID}", h.deleteAgency)

	return mux
}
