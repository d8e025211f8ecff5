package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"moneybrief/internal/model"
	"moneybrief/internal/survey"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var errInputClosed = errors.New("input closed before the questionnaire was finished")

func (a *app) surveyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "survey",
		Short: "Answer the questionnaire interactively",
		Long:  "Walks through each question. Enter an option number, or b to go back.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			answers, err := a.runSurvey(cmd.InOrStdin(), cmd.OutOrStdout())
			if err != nil {
				return err
			}
			r, err := a.reports.Build(answers)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout())
			return writeText(cmd.OutOrStdout(), r)
		},
	}
}

func (a *app) runSurvey(in io.Reader, out io.Writer) (model.Answers, error) {
	flow := survey.NewFlow(survey.Questions(), &model.Session{})
	scanner := bufio.NewScanner(in)

	for !flow.Completed() {
		q := flow.Current()
		visible := flow.Visible()
		fmt.Fprintf(out, "\n[%d/%d] %s\n%s\n", flow.Index()+1, len(visible), q.Title, q.Prompt)
		for i, o := range q.Options {
			fmt.Fprintf(out, "  %d) %s\n", i+1, o.Label)
		}
		if q.Placeholder != "" {
			fmt.Fprintf(out, "  (%s)\n", q.Placeholder)
		}
		fmt.Fprint(out, "> ")

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, err
			}
			return nil, errInputClosed
		}
		line := strings.TrimSpace(scanner.Text())

		if strings.EqualFold(line, "b") {
			if !flow.Previous() {
				fmt.Fprintln(out, "Already at the first question.")
			}
			continue
		}

		if err := a.answer(flow, q, line); err != nil {
			a.logger.Debug("answer rejected", zap.String("question", q.ID), zap.Error(err))
			fmt.Fprintf(out, "%v\n", err)
		}
	}
	return flow.Answers(), nil
}

func (a *app) answer(flow *survey.Flow, q model.Question, line string) error {
	if q.Type == model.QuestionTypeText {
		if err := flow.Answer(line); err != nil {
			return err
		}
		return flow.Submit()
	}
	if n, err := strconv.Atoi(line); err == nil && n >= 1 && n <= len(q.Options) {
		line = q.Options[n-1].Value
	}
	return flow.Answer(line)
}
