package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/artem13815/folio/pkg/analysis"
	"github.com/artem13815/folio/pkg/resume"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <resume.pdf|resume.docx>",
	Short: "Check an existing PDF or DOCX resume",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		text, err := resume.ParseResumeText(args[0], data)
		if err != nil {
			return fmt.Errorf("read resume: %w", err)
		}
		jd, err := readJob()
		if err != nil {
			return fmt.Errorf("read job description: %w", err)
		}
		return writeJSON(cmd.OutOrStdout(), analysis.AnalyzeText(text, jd))
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}
