package cli

import (
	"fmt"

	"moneybrief/internal/model"
	"moneybrief/internal/survey"

	"github.com/spf13/cobra"
)

func (a *app) questionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "questions",
		Short: "List the questionnaire with answer values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for i, q := range survey.Questions() {
				fmt.Fprintf(out, "%d. %s (%s)\n   %s\n", i+1, q.Title, q.ID, q.Prompt)
				if q.Conditional != nil {
					fmt.Fprintf(out, "   only when %s=%s\n", q.Conditional.QuestionID, q.Conditional.Value)
				}
				if q.Type == model.QuestionTypeText {
					fmt.Fprintln(out, "   free text")
				}
				for _, o := range q.Options {
					fmt.Fprintf(out, "   %-8s %s\n", o.Value, o.Label)
				}
			}
			return nil
		},
	}
}
