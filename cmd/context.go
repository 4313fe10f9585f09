package main

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"orgdash/internal/active"
	"orgdash/internal/config"
	"orgdash/pkg/domain"
	"orgdash/pkg/logger"
)

// staticSession provides a fixed session built from command-line flags.
type staticSession struct {
	session domain.Session
}

func (s staticSession) Current(context.Context) domain.Session { return s.session }

// cliRouter tracks the navigation path in memory. Redirects issued by the
// coordination layer are logged so the operator can see where a browser
// would have landed.
type cliRouter struct {
	mu   sync.Mutex
	path string
}

func (r *cliRouter) CurrentPath() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.path
}

func (r *cliRouter) Navigate(path string) {
	r.mu.Lock()
	r.path = path
	r.mu.Unlock()

	logger.Info(context.Background(), "navigated", zap.String("path", path))
}

// contextState is the JSON document printed by the context command.
type contextState struct {
	Path         string                      `json:"path"`
	Organization active.OrganizationSnapshot `json:"organization"`
	Agency       active.AgencySnapshot       `json:"agency"`
}

// contextCommand constructs the 'context' subcommand: a headless consumer of
// the active-selection layer. It loads the user's organizations, reconciles
// the selection against the given path, optionally switches organization and
// agency, and prints the resulting state as JSON.
func contextCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "context",
		Short: "Resolves the active organization and agency for a user",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			userFlag, _ := cmd.Flags().GetString("user")
			pathFlag, _ := cmd.Flags().GetString("path")
			orgFlag, _ := cmd.Flags().GetString("org")
			agencyFlag, _ := cmd.Flags().GetString("agency")
			hintFlag, _ := cmd.Flags().GetString("org-hint")

			userID, err := domain.ParseUserID(userFlag)
			if err != nil {
				logger.Fatal(ctx, "invalid user id", zap.Error(err))
			}
			session := domain.Session{Authenticated: true, UserID: userID}
			if hintFlag != "" {
				hint, err := domain.ParseOrganizationID(hintFlag)
				if err != nil {
					logger.Fatal(ctx, "invalid organization hint", zap.Error(err))
				}
				session.OrganizationHint = hint
			}

			repo, _, closeRepo := getRepository(ctx, cfg)
			defer closeRepo()

			router := &cliRouter{path: pathFlag}
			orgCtx := active.NewOrganizationContext(repo, staticSession{session: session}, router, active.LogNotifier{})
			agencyCtx := active.NewAgencyContext(repo, orgCtx, active.LogNotifier{})

			if err := orgCtx.FetchUserOrganizations(ctx); err != nil {
				logger.Fatal(ctx, "could not load organizations", zap.Error(err))
			}
			if err := orgCtx.ReconcileURL(ctx); err != nil {
				logger.Error(ctx, "could not reconcile selection with path", zap.Error(err))
			}

			if orgFlag != "" {
				orgID, err := domain.ParseOrganizationID(orgFlag)
				if err != nil {
					logger.Fatal(ctx, "invalid organization id", zap.Error(err))
				}
				if err := orgCtx.SetActive(ctx, orgID, nil); err != nil {
					logger.Error(ctx, "could not switch organization", zap.Error(err))
				}
			}
			if agencyFlag != "" {
				agencyID, err := domain.ParseAgencyID(agencyFlag)
				if err != nil {
					logger.Fatal(ctx, "invalid agency id", zap.Error(err))
				}
				if err := agencyCtx.SetActive(ctx, agencyID, nil); err != nil {
					logger.Error(ctx, "could not switch agency", zap.Error(err))
				}
			}

			state := contextState{
				Path:         router.CurrentPath(),
				Organization: orgCtx.Snapshot(),
				Agency:       agencyCtx.Snapshot(),
			}
			out, err := json.MarshalIndent(state, "", "  ")
			if err != nil {
				logger.Fatal(ctx, "could not encode state", zap.Error(err))
			}

			fmt.Println(string(out)) //nolint: forbidigo
		},
	}

	cmd.Flags().String("user", "", "User ID whose organizations are loaded")
	cmd.Flags().String("path", "/", "Navigation path to reconcile the selection against")
	cmd.Flags().String("org", "", "Organization ID to activate after reconciliation")
	cmd.Flags().String("agency", "", "Agency ID to activate within the organization")
	cmd.Flags().String("org-hint", "", "Organization hint carried by the session")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
