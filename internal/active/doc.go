// Package active implements the active-entity coordination layer: a pair of
// nested, session-scoped contexts tracking which organization and, optionally,
// which agency within it are currently selected.
//
// OrganizationContext reconciles its selection across three inputs: explicit
// programmatic switches, the current URL and the authenticated session
// lifecycle. AgencyContext nests under it and refetches its agency list
// whenever the parent selection moves. Both stamp in-flight detail fetches
// with a generation counter so a resolution that arrives after the selection
// has moved on is discarded instead of overwriting newer state.
//
// All state is owned by the contexts and mutated only through their methods.
// Consumers read copies via Snapshot and react to changes via Subscribe.
package active
