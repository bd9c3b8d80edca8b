package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	mindly "github.com/mindly/mindly-client"
	"github.com/mindly/mindly-client/form"
	"github.com/mindly/mindly-client/history"
	"github.com/mindly/mindly-client/internal/wire"
)

func newRecordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "record",
		Short: "Manage daily records",
	}
	cmd.AddCommand(newRecordAddCmd())
	cmd.AddCommand(newRecordListCmd())
	cmd.AddCommand(newRecordUpdateCmd())
	cmd.AddCommand(newRecordDeleteCmd())
	return cmd
}

func newRecordAddCmd() *cobra.Command {
	var (
		date, description, mood, stress, sleep, gratitude string
		activity                                          bool
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Submit a new daily record",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			sess, err := requireSession(store)
			if err != nil {
				return err
			}
			c, err := buildClient(cmd.Context(), store)
			if err != nil {
				return err
			}

			f := form.New(sess.Email)
			f.TypeDate(date)
			f.Description = description
			f.Mood = mood
			f.StressInput = stress
			f.SleepInput = sleep
			f.PhysicalActivity = activity
			f.Gratitude = gratitude

			rec, err := f.Submit(cmd.Context(), c)
			if err != nil {
				return err
			}
			fmt.Printf("Registro salvo (id %d) para %s\n", rec.ID, rec.Date)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Record date, digits or dd/mm/yyyy")
	cmd.Flags().StringVar(&description, "description", "", "How the day went")
	cmd.Flags().StringVar(&mood, "mood", "", "Mood label (see 'mindly record add --help' for the fixed list)")
	cmd.Flags().StringVar(&stress, "stress", "", "Stress level 1-5 (optional)")
	cmd.Flags().StringVar(&sleep, "sleep", "", "Sleep quality 1-5 (optional)")
	cmd.Flags().BoolVar(&activity, "activity", false, "Physical activity done today")
	cmd.Flags().StringVar(&gratitude, "gratitude", "", "Gratitude note (optional)")

	if opts, err := form.MoodOptions(); err == nil {
		var labels []string
		for _, o := range opts {
			labels = append(labels, o.Display())
		}
		cmd.Long = "Submits a daily record. Mood options:\n  " + strings.Join(labels, "\n  ")
	}
	return cmd
}

func newRecordListCmd() *cobra.Command {
	var reloadKey int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the session patient's history",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			sess, err := requireSession(store)
			if err != nil {
				return err
			}
			c, err := buildClient(cmd.Context(), store)
			if err != nil {
				return err
			}

			view := history.NewView(c, sess.Email)
			if err := view.LoadIfChanged(cmd.Context(), reloadKey); err != nil {
				return err
			}

			if view.Empty() {
				fmt.Println("Sem registros por aqui. Que tal adicionar como foi seu dia hoje? (mindly record add)")
				return nil
			}
			if fb := view.Feedback(); fb != "" {
				fmt.Printf("Feedback do psicólogo: %s\n\n", fb)
			}
			for _, r := range view.Records() {
				printRecord(r)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&reloadKey, "reload-key", 0, "Reload signal; a changed value forces a refetch")
	return cmd
}

func newRecordUpdateCmd() *cobra.Command {
	var (
		id                                                int64
		date, description, mood, stress, sleep, gratitude string
		activity                                          bool
	)

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Edit an existing record (only supplied fields change)",
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

			var patch mindly.RecordPatch
			flags := cmd.Flags()
			if flags.Changed("date") {
				display := form.MaskDate(date)
				if len(display) != 10 {
					return fmt.Errorf("informe a data no formato dd/mm/aaaa")
				}
				iso := wire.ToISODate(display)
				patch.Date = &iso
			}
			if flags.Changed("description") {
				patch.Description = &description
			}
			if flags.Changed("mood") {
				patch.Mood = &mood
			}
			if flags.Changed("stress") {
				v := form.CoerceLevel(stress)
				patch.StressLevel = &v
			}
			if flags.Changed("sleep") {
				v := form.CoerceLevel(sleep)
				patch.SleepQuality = &v
			}
			if flags.Changed("activity") {
				patch.PhysicalActivity = &activity
			}
			if flags.Changed("gratitude") {
				patch.Gratitude = &gratitude
			}

			rec, err := c.UpdateRecord(cmd.Context(), id, patch)
			if err != nil {
				return err
			}
			fmt.Printf("Registro %d atualizado.\n", rec.ID)
			return nil
		},
	}

	cmd.Flags().Int64Var(&id, "id", 0, "Record id")
	cmd.Flags().StringVar(&date, "date", "", "Record date, digits or dd/mm/yyyy")
	cmd.Flags().StringVar(&description, "description", "", "How the day went")
	cmd.Flags().StringVar(&mood, "mood", "", "Mood label")
	cmd.Flags().StringVar(&stress, "stress", "", "Stress level 1-5")
	cmd.Flags().StringVar(&sleep, "sleep", "", "Sleep quality 1-5")
	cmd.Flags().BoolVar(&activity, "activity", false, "Physical activity done")
	cmd.Flags().StringVar(&gratitude, "gratitude", "", "Gratitude note")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}

func newRecordDeleteCmd() *cobra.Command {
	var (
		id  int64
		yes bool
	)

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a record permanently",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			sess, err := requireSession(store)
			if err != nil {
				return err
			}
			c, err := buildClient(cmd.Context(), store)
			if err != nil {
				return err
			}

			if !yes && !confirm(fmt.Sprintf("Deseja realmente excluir o registro %d?", id)) {
				fmt.Println("Cancelado.")
				return nil
			}

			view := history.NewView(c, sess.Email)
			if err := view.Load(cmd.Context()); err != nil {
				return err
			}
			if err := view.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Printf("Registro %d excluído. Restam %d registros.\n", id, len(view.Records()))
			return nil
		},
	}

	cmd.Flags().Int64Var(&id, "id", 0, "Record id")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}

func confirm(prompt string) bool {
	fmt.Printf("%s [s/N] ", prompt)
	sc := bufio.NewScanner(os.Stdin)
	if !sc.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(sc.Text()))
	return answer == "s" || answer == "sim" || answer == "y" || answer == "yes"
}

func printRecord(r mindly.DailyRecord) {
	fmt.Printf("#%d  %s  %s\n", r.ID, r.Date, r.Mood)
	fmt.Printf("    %s\n", r.Description)
	if r.StressLevel > 0 || r.SleepQuality > 0 {
		fmt.Printf("    estresse %d/5, sono %d/5\n", r.StressLevel, r.SleepQuality)
	}
	if r.PhysicalActivity {
		fmt.Println("    atividade física: sim")
	}
	if r.Gratitude != "" {
		fmt.Printf("    gratidão: %s\n", r.Gratitude)
	}
	if r.ClinicianNote != "" {
		fmt.Printf("    avaliação: %s\n", r.ClinicianNote)
	}
}
