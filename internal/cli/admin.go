package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hbagde424/ElectionAT-sub001/internal/app"
	"github.com/hbagde424/ElectionAT-sub001/internal/domain/account"
	"github.com/hbagde424/ElectionAT-sub001/internal/pkg/pointers"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/dbctx"
	"github.com/hbagde424/ElectionAT-sub001/internal/services"
)

const adminPasswordEnv = "ADMIN_PASSWORD"

func createAdminCommand() *cobra.Command {
	var email, username, password, role string
	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create the first privileged user",
		Long:  "Create a user with the given role. The password may come from " + adminPasswordEnv + " instead of a flag.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if password == "" {
				password = os.Getenv(adminPasswordEnv)
			}
			if strings.TrimSpace(email) == "" || password == "" {
				return fmt.Errorf("--email and a password (--password or %s) are required", adminPasswordEnv)
			}
			if username == "" {
				username = strings.SplitN(email, "@", 2)[0]
			}

			return withApp(cmd, func(a *app.App) error {
				ctx := cmd.Context()
				existing, err := a.Repos.User.GetByEmail(dbctx.Of(ctx), strings.ToLower(strings.TrimSpace(email)))
				if err != nil {
					return err
				}
				if existing != nil {
					fmt.Fprintf(cmd.OutOrStdout(), "user %s already exists (role %s)\n", existing.Email, existing.Role)
					return nil
				}
				user, err := a.Services.User.Create(ctx, services.UserInput{
					Username: pointers.String(username),
					Email:    pointers.String(email),
					Password: pointers.String(password),
					Role:     pointers.String(role),
				})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "created %s %s (%s)\n", user.Role, user.Email, user.ID)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "login email")
	cmd.Flags().StringVar(&username, "username", "", "display name (defaults to the email's local part)")
	cmd.Flags().StringVar(&password, "password", "", "initial password")
	cmd.Flags().StringVar(&role, "role", account.RoleSuperAdmin, "one of "+strings.Join(account.Roles, ", "))
	return cmd
}
