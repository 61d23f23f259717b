package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yigit/campusconnect/internal/app/models/dto"
	"github.com/yigit/campusconnect/internal/app/models/dto/enums"
	"github.com/yigit/campusconnect/internal/pkg/validation"
	"github.com/yigit/campusconnect/internal/session"
)

func (c *cli) loginCmd() *cobra.Command {
	var form dto.LoginForm
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the session token",
		Long: `Exchanges email and password for a token and stores it in the token directory.
The password is read from stdin when --password is not given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if !validation.IsEmail(form.Email) {
				return report(out, dto.ErrorToast("Login failed", "Email must be a valid email address"))
			}
			if form.Password == "" {
				pw, err := prompt(cmd.InOrStdin(), out, "Password: ")
				if err != nil {
					return err
				}
				form.Password = pw
			}

			res := c.auth.Login(cmd.Context(), c.sess, form)
			for field, msg := range res.Errors {
				fmt.Fprintf(out, "  %s %s\n", mutedStyle.Render(field+":"), msg)
			}
			if err := report(out, res.Toast); err != nil {
				return err
			}
			if !res.Success {
				return errReported
			}
			if id, ok := session.IdentityFromToken(c.sess.Token(cmd.Context())); ok {
				printField(out, "Signed in as", id.Label())
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&form.Email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&form.Password, "password", "p", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func (c *cli) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res := c.auth.Logout(c.sess)
			return report(cmd.OutOrStdout(), res.Toast)
		},
	}
}

func (c *cli) registerCmd() *cobra.Command {
	form := dto.RegisterForm{Role: string(enums.RoleStudent)}
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a student or alumni account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if !validation.IsEmail(form.Email) {
				return report(out, dto.ErrorToast("Registration failed", "Email must be a valid email address"))
			}
			if form.Password == "" {
				pw, err := prompt(cmd.InOrStdin(), out, "Password: ")
				if err != nil {
					return err
				}
				form.Password = pw
			}

			res := c.auth.Register(cmd.Context(), form)
			for field, msg := range res.Errors {
				fmt.Fprintf(out, "  %s %s\n", mutedStyle.Render(field+":"), msg)
			}
			return report(out, res.Toast)
		},
	}
	cmd.Flags().StringVar(&form.Name, "name", "", "full name")
	cmd.Flags().StringVarP(&form.Email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&form.Password, "password", "p", "", "account password")
	cmd.Flags().StringVar(&form.Role, "role", form.Role, "student or alumni")
	cmd.Flags().IntVar(&form.GraduationYear, "graduation-year", 0, "graduation year")
	cmd.Flags().StringVar(&form.Department, "department", "", "department")
	return cmd
}

func (c *cli) statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show whether a session token is stored",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if !c.sess.IsAuthenticated() {
				fmt.Fprintln(out, mutedStyle.Render("Not signed in"))
				printField(out, "Token file", c.store.Path())
				return nil
			}

			label := "CampusConnect user"
			if id, ok := session.IdentityFromToken(c.sess.Token(cmd.Context())); ok {
				label = id.Label()
			}
			fmt.Fprintln(out, successStyle.Render("Signed in")+" as "+label)
			printField(out, "Token file", c.store.Path())
			printField(out, "Backend", c.cfg.API.BaseURL)
			return nil
		},
	}
}

// prompt reads one line from in after writing label to out
func prompt(in io.Reader, out io.Writer, label string) (string, error) {
	fmt.Fprint(out, label)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
