// Package domain contains the core business entities shared across the
// application: organizations, their agencies and the session identity that
// scopes every data access. The types are free of transport and persistence
// concerns so that repository backends and the coordination layer can share
// them without coupling.
package domain
