package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"moneybrief/internal/model"
	"moneybrief/internal/report"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *app) scoreCmd() *cobra.Command {
	var (
		pairs   []string
		format  string
		pdfPath string
	)
	cmd := &cobra.Command{
		Use:     "score",
		Short:   "Score answers given as id=value pairs",
		Example: "  profilectl score -a age=25-34 -a riskTolerance=buy --format json",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			answers, err := parseAnswers(pairs)
			if err != nil {
				return err
			}
			r, err := a.reports.Build(answers)
			if err != nil {
				return err
			}
			a.logger.Debug("report built", zap.String("profile", string(r.Profile)), zap.Int("score", r.RiskScore))

			if pdfPath != "" {
				if err := writePDFFile(pdfPath, r); err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", pdfPath)
			}

			out := cmd.OutOrStdout()
			switch format {
			case "text":
				return writeText(out, r)
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(r)
			case "html":
				page, err := report.RenderHTML(r)
				if err != nil {
					return err
				}
				_, err = io.WriteString(out, page)
				return err
			default:
				return fmt.Errorf("unknown format %q (want text, json or html)", format)
			}
		},
	}
	cmd.Flags().StringArrayVarP(&pairs, "answer", "a", nil, "answer as id=value, repeatable")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text, json or html")
	cmd.Flags().StringVar(&pdfPath, "pdf", "", "also write the PDF report to this file")
	return cmd
}

func parseAnswers(pairs []string) (model.Answers, error) {
	answers := make(model.Answers, len(pairs))
	for _, p := range pairs {
		id, value, ok := strings.Cut(p, "=")
		if !ok || id == "" {
			return nil, fmt.Errorf("invalid answer %q, want id=value", p)
		}
		answers[strings.TrimSpace(id)] = strings.TrimSpace(value)
	}
	return answers, nil
}

func writePDFFile(path string, r *model.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := report.RenderPDF(f, r); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeText(w io.Writer, r *model.Report) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Your Investment Profile: %s\n", r.Profile)
	fmt.Fprintf(&b, "Risk Tolerance Score: %d/100\n\n", r.RiskScore)
	fmt.Fprintf(&b, "%s\n\nRecommendations:\n", r.Description)
	for _, rec := range r.Recommendations {
		fmt.Fprintf(&b, "  - %s\n", rec)
	}
	b.WriteString("\nYour Responses:\n")
	for _, resp := range r.Responses {
		fmt.Fprintf(&b, "  %s: %s\n", resp.Question, resp.Answer)
	}
	b.WriteString("\nResources:\n")
	for _, res := range r.Resources {
		fmt.Fprintf(&b, "  - %s %s\n", res.Text, res.Link)
	}
	_, err := io.WriteString(w, b.String())
	return err
}
