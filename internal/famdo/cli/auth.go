package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/famdoapp/famdo/internal/famdo/app"
)

func loginCmd(application *app.Application) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the session locally",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAPI(application); err != nil {
				return err
			}
			ctx := cmdContext(cmd, application)

			resp, err := application.API.Login(ctx, email, password)
			if err != nil {
				return fmt.Errorf("login: %w", err)
			}
			if err := application.Sessions.Establish(ctx, resp.User.Identity(), resp.Token); err != nil {
				return fmt.Errorf("store session: %w", err)
			}

			fmt.Printf("signed in as %s\n", resp.User.Username)
			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "Account email address")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func registerCmd(application *app.Application) *cobra.Command {
	var username, email, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and sign in",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAPI(application); err != nil {
				return err
			}
			ctx := cmdContext(cmd, application)

			resp, err := application.API.Register(ctx, username, email, password)
			if err != nil {
				return fmt.Errorf("register: %w", err)
			}
			if err := application.Sessions.Establish(ctx, resp.User.Identity(), resp.Token); err != nil {
				return fmt.Errorf("store session: %w", err)
			}

			fmt.Printf("welcome, %s\n", resp.User.Username)
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "Display name")
	cmd.Flags().StringVarP(&email, "email", "e", "", "Account email address")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Account password")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func logoutCmd(application *app.Application) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmdContext(cmd, application)
			if err := application.Sessions.Clear(ctx); err != nil {
				return fmt.Errorf("clear session: %w", err)
			}
			fmt.Println("signed out")
			return nil
		},
	}
}

func whoamiCmd(application *app.Application) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmdContext(cmd, application)
			sess, err := requireSession(ctx, application)
			if err != nil {
				return err
			}
			fmt.Printf("%s <%s>\n", sess.Identity.Username, sess.Identity.Email)
			return nil
		},
	}
}

func forgotPasswordCmd(application *app.Application) *cobra.Command {
	return &cobra.Command{
		Use:   "forgot-password <email>",
		Short: "Request a password reset email",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAPI(application); err != nil {
				return err
			}
			ctx := cmdContext(cmd, application)

			if err := application.API.RequestPasswordReset(ctx, args[0]); err != nil {
				return fmt.Errorf("request password reset: %w", err)
			}
			fmt.Println("if that address is registered, a reset email is on its way")
			return nil
		},
	}
}

func resetPasswordCmd(application *app.Application) *cobra.Command {
	var token, password string

	cmd := &cobra.Command{
		Use:   "reset-password",
		Short: "Complete a password reset with an emailed token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAPI(application); err != nil {
				return err
			}
			ctx := cmdContext(cmd, application)

			if err := application.API.VerifyResetToken(ctx, token); err != nil {
				return fmt.Errorf("verify reset token: %w", err)
			}
			if err := application.API.ResetPassword(ctx, token, password); err != nil {
				return fmt.Errorf("reset password: %w", err)
			}
			fmt.Println("password updated, sign in with the new one")
			return nil
		},
	}

	cmd.Flags().StringVarP(&token, "token", "t", "", "Reset token from the email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "New password")
	_ = cmd.MarkFlagRequired("token")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}
