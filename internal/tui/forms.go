package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/airiskcouncil/arcctl/internal/api"
	"github.com/airiskcouncil/arcctl/internal/authz"
)

// loginModel holds the login form and its submission state.
type loginModel struct {
	form       *huh.Form
	email      string
	password   string
	submitting bool
}

func newLoginModel() *loginModel {
	m := &loginModel{}
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("email").
				Title("Email").
				Value(&m.email).
				Validate(requireField("email")),
			huh.NewInput().
				Key("password").
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&m.password).
				Validate(requireField("password")),
		),
	)
	return m
}

// registerModel holds the membership application form.
type registerModel struct {
	form         *huh.Form
	name         string
	email        string
	password     string
	organisation string
	role         string
	submitting   bool
}

func newRegisterModel() *registerModel {
	m := &registerModel{role: string(authz.RoleFreeMember)}
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("name").
				Title("Name").
				Value(&m.name).
				Validate(requireField("name")),
			huh.NewInput().
				Key("email").
				Title("Email").
				Value(&m.email).
				Validate(requireField("email")),
			huh.NewInput().
				Key("password").
				Title("Password").
				Description("At least 8 characters").
				EchoMode(huh.EchoModePassword).
				Value(&m.password).
				Validate(func(s string) error {
					if len(s) < 8 {
						return fmt.Errorf("Password must be at least 8 characters.")
					}
					return nil
				}),
			huh.NewInput().
				Key("organisation").
				Title("Organisation").
				Value(&m.organisation),
			huh.NewSelect[string]().
				Key("role").
				Title("Membership type").
				Options(
					huh.NewOption("Free member", string(authz.RoleFreeMember)),
					huh.NewOption("Paid member", string(authz.RolePaidMember)),
					huh.NewOption("Executive", string(authz.RoleExecutive)),
					huh.NewOption("Product company", string(authz.RoleProductCompany)),
					huh.NewOption("University", string(authz.RoleUniversity)),
				).
				Value(&m.role),
		),
	)
	return m
}

func (m *registerModel) input() api.RegisterInput {
	return api.RegisterInput{
		Name:         m.name,
		Email:        m.email,
		Password:     m.password,
		Organisation: m.organisation,
		Role:         m.role,
	}
}

func requireField(name string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", name)
		}
		return nil
	}
}
