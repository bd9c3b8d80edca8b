package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mindly/mindly-client/psych"
)

func newPatientsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "patients",
		Short: "List patients, flagging those with open alerts",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			if _, err := requireSession(store); err != nil {
				return err
			}
			c, err := buildClient(cmd.Context(), store)
			if err != nil {
				return err
			}

			roster := psych.NewRoster(c)
			if err := roster.Load(cmd.Context()); err != nil {
				return err
			}

			rows := roster.Rows()
			if len(rows) == 0 {
				fmt.Println("Nenhum paciente encontrado.")
				return nil
			}
			for _, row := range rows {
				badge := "  "
				if row.HasAlert {
					badge = "⚠ "
				}
				fmt.Printf("%s#%d  %s  %s  %s\n", badge, row.ID, row.Name, row.Email, row.Phone)
			}
			return nil
		},
	}
}

func newPatientShowCmd() *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "patient",
		Short: "Show one patient's record history and current observation",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			if _, err := requireSession(store); err != nil {
				return err
			}
			c, err := buildClient(cmd.Context(), store)
			if err != nil {
				return err
			}

			detail := psych.NewDetail(c, email)
			if err := detail.Load(cmd.Context()); err != nil {
				return err
			}

			if obs := detail.Latest(); obs != "" {
				fmt.Printf("Observação atual: %s\n\n", obs)
			}
			records := detail.Records()
			if len(records) == 0 {
				fmt.Println("Este paciente ainda não possui registros.")
				return nil
			}
			for _, r := range records {
				printRecord(r)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Patient email")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newFeedbackCmd() *cobra.Command {
	var email, text string

	cmd := &cobra.Command{
		Use:   "feedback",
		Short: "Write the patient's clinical observation (replaces the stored one)",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			if _, err := requireSession(store); err != nil {
				return err
			}
			c, err := buildClient(cmd.Context(), store)
			if err != nil {
				return err
			}

			detail := psych.NewDetail(c, email)
			detail.Draft = text
			if err := detail.SaveFeedback(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("Feedback registrado para este paciente.")
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Patient email")
	cmd.Flags().StringVar(&text, "text", "", "Observation text")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("text")
	return cmd
}

func newAlertsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "alerts",
		Short: "List current alert signals across patients",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			if _, err := requireSession(store); err != nil {
				return err
			}
			c, err := buildClient(cmd.Context(), store)
			if err != nil {
				return err
			}

			alerts, err := c.ListAlerts(cmd.Context())
			if err != nil {
				return err
			}
			if len(alerts) == 0 {
				fmt.Println("Nenhum alerta no momento.")
				return nil
			}
			for _, a := range alerts {
				fmt.Printf("⚠ #%d %s (%s)\n    %s: %s\n", a.PatientID, a.PatientName, a.Phone, a.Mood, a.Description)
			}
			return nil
		},
	}
}
