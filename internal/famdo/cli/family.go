package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/famdoapp/famdo/internal/famdo/app"
	"github.com/famdoapp/famdo/internal/famdo/domain"
)

func familyCmd(application *app.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "family",
		Short: "Create, join, and inspect your family",
	}
	cmd.AddCommand(
		familyCreateCmd(application),
		familyJoinCmd(application),
		familyInfoCmd(application),
		familyMembersCmd(application),
	)
	return cmd
}

func familyCreateCmd(application *app.Application) *cobra.Command {
	return &cobra.Command{
		Use:   "create <name>",
		Short: "Found a new family and become its leader",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmdContext(cmd, application)
			sess, err := requireSession(ctx, application)
			if err != nil {
				return err
			}

			family, err := application.Membership.CreateFamily(ctx, sess.Identity, args[0])
			if err != nil {
				return err
			}

			fmt.Printf("family %q created\n", family.Name)
			fmt.Printf("invitation code: %s (share it with your family)\n", family.InvitationCode)
			return nil
		},
	}
}

func familyJoinCmd(application *app.Application) *cobra.Command {
	return &cobra.Command{
		Use:   "join <invitation-code>",
		Short: "Join a family using its invitation code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmdContext(cmd, application)
			sess, err := requireSession(ctx, application)
			if err != nil {
				return err
			}

			family, err := application.Membership.JoinFamily(ctx, sess.Identity, args[0])
			if err != nil {
				return err
			}

			fmt.Printf("joined family %q\n", family.Name)
			return nil
		},
	}
}

func familyInfoCmd(application *app.Application) *cobra.Command {
	var remote bool

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show your family and your role in it",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmdContext(cmd, application)
			sess, err := requireSession(ctx, application)
			if err != nil {
				return err
			}

			if remote {
				if err := requireAPI(application); err != nil {
					return err
				}
				family, err := application.API.WithToken(sess.Token).FamilyInfo(ctx)
				if err != nil {
					return fmt.Errorf("fetch family: %w", err)
				}
				fmt.Printf("%s (backend)\n", family.Name)
				if family.CreatedBy == sess.Identity.ID {
					fmt.Printf("invitation code: %s\n", family.InvitationCode)
				}
				return nil
			}

			family, membership, err := application.Membership.Info(ctx, sess.Identity.ID)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", family.Name)
			fmt.Printf("role: %s\n", membership.Role)
			if membership.Role == domain.RoleLeader {
				fmt.Printf("invitation code: %s\n", family.InvitationCode)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&remote, "remote", false, "Read from the backend instead of the local replica")
	return cmd
}

func familyMembersCmd(application *app.Application) *cobra.Command {
	var remote bool

	cmd := &cobra.Command{
		Use:   "members",
		Short: "List your family's members",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmdContext(cmd, application)
			sess, err := requireSession(ctx, application)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			defer w.Flush()

			if remote {
				if err := requireAPI(application); err != nil {
					return err
				}
				members, err := application.API.WithToken(sess.Token).FamilyMembers(ctx)
				if err != nil {
					return fmt.Errorf("fetch members: %w", err)
				}
				fmt.Fprintln(w, "USERNAME\tEMAIL\tROLE")
				for _, m := range members {
					fmt.Fprintf(w, "%s\t%s\t%s\n", m.Username, m.Email, m.Role)
				}
				return nil
			}

			family, _, err := application.Membership.Info(ctx, sess.Identity.ID)
			if err != nil {
				return err
			}
			members, err := application.Membership.Members(ctx, family.ID)
			if err != nil {
				return err
			}

			fmt.Fprintln(w, "USERNAME\tEMAIL\tROLE\tJOINED")
			for _, m := range members {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					m.Identity.Username, m.Identity.Email, m.Role,
					m.JoinedAt.Format("2006-01-02"),
				)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&remote, "remote", false, "Read from the backend instead of the local replica")
	return cmd
}
