package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"planreport/internal/mail"
)

var sendCmd = &cobra.Command{
	Use:       "send {plan|program} <id>",
	Short:     "Render one report and e-mail it to the configured recipient",
	Args:      cobra.MatchAll(cobra.ExactArgs(2), validKind),
	ValidArgs: reportKinds,
	RunE:      runSend,
}

func runSend(cmd *cobra.Command, args []string) error {
	sender, err := mail.New(cfg.SMTP, cfg.Email, logger)
	if err != nil {
		return err
	}

	out, err := buildReport(cmd.Context(), args[0], args[1])
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("Reporte de %s %s", kindTitle(args[0]), args[1])
	return sender.Send(subject, mail.Attachment{Filename: out.Filename, Data: out.Data})
}

func kindTitle(kind string) string {
	if kind == kindProgram {
		return "programa"
	}
	return "plan"
}
