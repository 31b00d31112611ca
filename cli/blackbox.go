package cli

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/dugodofficials-cpu/customer-app-sub000/blackbox"
	"github.com/dugodofficials-cpu/customer-app-sub000/config"
	"github.com/dugodofficials-cpu/customer-app-sub000/notify"
)

var (
	blackboxQuestionID string
	blackboxAnswer     string
)

var blackboxCmd = &cobra.Command{
	Use:   "blackbox",
	Short: "Play the BlackBox puzzle",
	RunE:  runBlackbox,
}

func init() {
	blackboxCmd.Flags().StringVar(&blackboxQuestionID, "question", "", "question id to answer")
	blackboxCmd.Flags().StringVar(&blackboxAnswer, "answer", "", "answer to submit")
	rootCmd.AddCommand(blackboxCmd)
}

func runBlackbox(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	client, _, err := newClient(cfg)
	if err != nil {
		return err
	}

	svc := blackbox.NewService(client, notify.Logger{})

	if blackboxQuestionID != "" {
		result, err := svc.Submit(ctx, blackboxQuestionID, blackboxAnswer)
		if err != nil {
			return err
		}
		if result.Correct {
			log.Println("🔓 Secret unlocked:", result.Secret)
		}
		return nil
	}

	state, err := svc.State(ctx)
	if err != nil {
		return err
	}
	log.Printf("🧩 BlackBox: %d answered, %d remaining",
		state.Progress.Answered, state.Progress.Remaining)
	for _, q := range state.Questions {
		marker := " "
		if q.Correct != nil && *q.Correct {
			marker = "✓"
		}
		fmt.Printf("[%s] %s — %s\n", marker, q.ID, q.Prompt)
	}
	return nil
}
