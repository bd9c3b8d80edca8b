package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	mindly "github.com/mindly/mindly-client"
	"github.com/mindly/mindly-client/session"
)

func newLoginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and persist the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			c, err := buildClient(cmd.Context(), store)
			if err != nil {
				return err
			}

			res, err := c.Login(cmd.Context(), mindly.LoginRequest{Email: email, Password: password})
			if err != nil {
				return err
			}

			sess := session.Session{Token: res.Token, Email: res.Email, Role: res.Role}
			if err := store.Save(sess); err != nil {
				return err
			}

			// Patients get their profile cached for the history screen's
			// identity resolution; a failure here does not fail the login.
			if res.Role == mindly.RolePatient {
				if p, perr := c.GetPatientByEmail(cmd.Context(), res.Email); perr == nil {
					sess.Patient = p
					_ = store.Save(sess)
				} else {
					log.Debug().Err(perr).Msg("could not cache patient profile")
				}
			}

			fmt.Printf("Bem-vindo(a), %s (%s)\n", res.Name, res.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newRegisterCmd() *cobra.Command {
	var name, email, password, phone string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a patient account and log in",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			c, err := buildClient(cmd.Context(), store)
			if err != nil {
				return err
			}

			res, err := c.Register(cmd.Context(), mindly.RegisterRequest{
				Name:     name,
				Email:    email,
				Password: password,
				Phone:    phone,
			})
			if err != nil {
				return err
			}
			if err := store.Save(session.Session{Token: res.Token, Email: res.Email, Role: res.Role}); err != nil {
				return err
			}
			fmt.Printf("Conta criada para %s\n", res.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Full name")
	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	cmd.Flags().StringVar(&phone, "phone", "", "Phone number")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the local session",
		Long:  "Removes the locally stored token and profile. There is no server-side logout call; the session is only ever invalidated client-side.",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			if err := store.Clear(); err != nil {
				return err
			}
			fmt.Println("Sessão encerrada.")
			return nil
		},
	}
}
