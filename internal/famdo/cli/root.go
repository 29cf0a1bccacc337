// Package cli wires the famdo commands. Commands operate on the local
// replica first and mirror mutations to the backend when one is configured.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/famdoapp/famdo/internal/famdo/app"
	"github.com/famdoapp/famdo/internal/famdo/domain"
	"github.com/famdoapp/famdo/internal/famdo/service"
	"github.com/famdoapp/famdo/pkg/slogx"
)

// New builds the famdo root command.
func New(application *app.Application) *cobra.Command {
	root := &cobra.Command{
		Use:           "famdo",
		Short:         "famdo - family task management from the terminal",
		Version:       app.BuildVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		loginCmd(application),
		registerCmd(application),
		logoutCmd(application),
		whoamiCmd(application),
		forgotPasswordCmd(application),
		resetPasswordCmd(application),
		familyCmd(application),
		taskCmd(application),
		reportCmd(application),
	)
	return root
}

// cmdContext tags the command context with the application logger so the
// services underneath log through it.
func cmdContext(cmd *cobra.Command, application *app.Application) context.Context {
	ctx := slogx.WithContext(cmd.Context(), application.Logger)
	return slogx.WithCommand(ctx, cmd.Name())
}

// requireSession restores the stored session. Every command except the auth
// ones goes through here and refuses to run unauthenticated.
func requireSession(ctx context.Context, application *app.Application) (domain.Session, error) {
	sess, err := application.Sessions.Restore(ctx)
	if errors.Is(err, service.ErrUnauthenticated) {
		return domain.Session{}, errors.New(`not signed in, run "famdo login" first`)
	}
	if err != nil {
		return domain.Session{}, fmt.Errorf("restore session: %w", err)
	}
	return sess, nil
}

// requireAPI rejects commands that cannot work without a backend.
func requireAPI(application *app.Application) error {
	if application.API == nil {
		return errors.New("no backend configured, set FAMDO_API_URL")
	}
	return nil
}
