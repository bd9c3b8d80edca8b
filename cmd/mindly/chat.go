package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	mindly "github.com/mindly/mindly-client"
	"github.com/mindly/mindly-client/form"
)

const chatWelcome = "Oi! 😊 Como foi seu dia? Você pode me contar; estou aqui para ajudar no seu bem-estar."

const chatErrorReply = "Não consegui responder agora 😔. Tente novamente em alguns instantes."

// chatMessage is one turn in the suggestion chat. Ids disambiguate turns in
// debug logs, where replies arrive out of band of what the user typed.
type chatMessage struct {
	ID   string
	From string // "USER" or "IA"
	Text string
}

// appendTurn stamps a turn with a fresh id, logs it, and adds it to the
// transcript.
func appendTurn(transcript []chatMessage, from, text string) []chatMessage {
	msg := chatMessage{ID: uuid.NewString(), From: from, Text: text}
	log.Debug().Str("id", msg.ID).Str("from", msg.From).Int("turn", len(transcript)).Msg("chat turn")
	return append(transcript, msg)
}

func newSuggestCmd() *cobra.Command {
	var mood, stress, description string

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Request one mood-support suggestion",
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

			var req mindly.SuggestionRequest
			if mood != "" {
				req.Mood = &mood
			}
			if stress != "" {
				v := form.CoerceLevel(stress)
				req.StressLevel = &v
			}
			if description != "" {
				req.Description = &description
			}

			s, err := c.Suggest(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Println(s.Text)
			return nil
		},
	}

	cmd.Flags().StringVar(&mood, "mood", "", "Mood label for context (optional)")
	cmd.Flags().StringVar(&stress, "stress", "", "Stress level 1-5 for context (optional)")
	cmd.Flags().StringVar(&description, "description", "", "Free text about the day (optional)")
	return cmd
}

func newChatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Interactive mood-support chat",
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

			transcript := []chatMessage{{ID: "welcome", From: "IA", Text: chatWelcome}}
			fmt.Printf("IA: %s\n", chatWelcome)
			fmt.Println("(linha vazia para sair)")

			sc := bufio.NewScanner(os.Stdin)
			for {
				fmt.Print("> ")
				if !sc.Scan() {
					break
				}
				text := strings.TrimSpace(sc.Text())
				if text == "" {
					break
				}

				transcript = appendTurn(transcript, "USER", text)

				s, err := c.Suggest(cmd.Context(), mindly.SuggestionRequest{Description: &text})
				reply := chatErrorReply
				if err == nil {
					reply = s.Text
				}
				transcript = appendTurn(transcript, "IA", reply)
				fmt.Printf("IA: %s\n", reply)
			}

			fmt.Printf("Até logo! (%d mensagens nesta conversa)\n", len(transcript))
			return nil
		},
	}
}
