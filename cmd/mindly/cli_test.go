package main

import "testing"

func TestRootCommandWiring(t *testing.T) {
	root := NewRootCmd()

	want := []string{
		"login", "register", "logout", "record",
		"patients", "patient", "feedback", "alerts", "suggest", "chat",
	}
	have := map[string]bool{}
	for _, c := range root.Commands() {
		have[c.Name()] = true
	}
	for _, name := range want {
		if !have[name] {
			t.Errorf("missing command %q", name)
		}
	}

	for _, flag := range []string{"base-url", "debug", "wait"} {
		if root.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("missing persistent flag %q", flag)
		}
	}
}

func TestAppendTurnStampsUniqueIDs(t *testing.T) {
	transcript := []chatMessage{{ID: "welcome", From: "IA", Text: chatWelcome}}
	transcript = appendTurn(transcript, "USER", "meu dia foi difícil")
	transcript = appendTurn(transcript, "IA", "sinto muito")

	if len(transcript) != 3 {
		t.Fatalf("transcript length = %d", len(transcript))
	}
	user, ia := transcript[1], transcript[2]
	if user.From != "USER" || user.Text != "meu dia foi difícil" {
		t.Fatalf("user turn = %+v", user)
	}
	if user.ID == "" || ia.ID == "" {
		t.Fatal("turns must carry ids")
	}
	if user.ID == ia.ID {
		t.Fatalf("turn ids must be unique, both %q", user.ID)
	}
}

func TestRecordSubcommands(t *testing.T) {
	record := newRecordCmd()
	want := []string{"add", "list", "update", "delete"}
	have := map[string]bool{}
	for _, c := range record.Commands() {
		have[c.Name()] = true
	}
	for _, name := range want {
		if !have[name] {
			t.Errorf("missing record subcommand %q", name)
		}
	}
}
