package auth

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GlebRadaev/acordos/internal/console/ui"
	"github.com/GlebRadaev/acordos/internal/service/authservice"
	"github.com/GlebRadaev/acordos/pkg/format"
)

type Service interface {
	Login(ctx context.Context, email, password string) error
	Register(ctx context.Context, email, password, fullName string) error
	Logout() error
	WhoAmI(ctx context.Context) (*authservice.Identity, error)
}

type AuthHandler struct {
	authService Service
	term        *ui.Terminal
}

func New(authService Service, term *ui.Terminal) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		term:        term,
	}
}

func (h *AuthHandler) Login(cmd *cobra.Command, _ []string) error {
	email, _ := cmd.Flags().GetString("email")
	return h.SignIn(cmd.Context(), email)
}

// SignIn prompts for the missing credentials and opens a session. The login
// screen reached through the guard uses it too.
func (h *AuthHandler) SignIn(ctx context.Context, email string) error {
	var err error
	if email == "" {
		if email, err = h.term.Ask("Email"); err != nil {
			return err
		}
	}
	password, err := h.term.Password("Password")
	if err != nil {
		return err
	}

	if err := h.authService.Login(ctx, email, password); err != nil {
		return err
	}
	h.term.Success("Signed in as " + email)
	return nil
}

func (h *AuthHandler) Register(cmd *cobra.Command, _ []string) error {
	email, _ := cmd.Flags().GetString("email")
	name, _ := cmd.Flags().GetString("name")

	var err error
	if email == "" {
		if email, err = h.term.Ask("Email"); err != nil {
			return err
		}
	}
	if name == "" {
		if name, err = h.term.Ask("Full name"); err != nil {
			return err
		}
	}
	password, err := h.term.Password("Password")
	if err != nil {
		return err
	}

	if err := h.authService.Register(cmd.Context(), email, password, name); err != nil {
		return err
	}
	h.term.Success("Account created, signed in as " + email)
	return nil
}

func (h *AuthHandler) Logout(_ *cobra.Command, _ []string) error {
	if err := h.authService.Logout(); err != nil {
		return err
	}
	h.term.Success("Signed out")
	return nil
}

func (h *AuthHandler) WhoAmI(cmd *cobra.Command, _ []string) error {
	identity, err := h.authService.WhoAmI(cmd.Context())
	if err != nil {
		return err
	}

	fields := []ui.Field{
		{Label: "ID", Value: identity.User.ID},
		{Label: "Name", Value: identity.User.FullName},
		{Label: "Email", Value: identity.User.Email},
	}
	if c := identity.Claims; c != nil && !c.ExpiresAt.IsZero() {
		fields = append(fields, ui.Field{
			Label: "Session expires",
			Value: fmt.Sprintf("%s %s", c.ExpiresAt.Format(format.BRDate), c.ExpiresAt.Format("15:04")),
		})
	}
	return h.term.Fields(fields)
}
