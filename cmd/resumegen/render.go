package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/artem13815/folio/pkg/generator"
	"github.com/artem13815/folio/pkg/resume"
)

var (
	inputFile  string
	formatFlag string
	outFile    string
	withReport bool
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a resume from a JSON file",
	Long: `Render a resume from a JSON file shaped like the customData field of
POST /api/resume/generate.

Example:
  resumegen render --input me.json --format markdown
  resumegen render --input me.json --job jd.txt --report`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringVarP(&inputFile, "input", "i", "", "resume JSON file (required)")
	renderCmd.Flags().StringVarP(&formatFlag, "format", "f", "html", "html | markdown | text | all")
	renderCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")
	renderCmd.Flags().BoolVar(&withReport, "report", false, "print the full JSON result instead of the document")
	_ = renderCmd.MarkFlagRequired("input")
}

func runRender(cmd *cobra.Command, _ []string) error {
	raw, err := os.ReadFile(inputFile)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	var in resume.Input
	if err := json.Unmarshal(raw, &in); err != nil {
		return fmt.Errorf("parse input %s: %w", inputFile, err)
	}
	jd, err := readJob()
	if err != nil {
		return fmt.Errorf("read job description: %w", err)
	}
	cls, err := resume.LoadAliases(aliasesFile)
	if err != nil {
		return err
	}

	svc := generator.NewService(nil, cls, nil)
	res, err := svc.Generate(cmd.Context(), generator.Request{
		TargetJobDescription: jd,
		Format:               formatFlag,
		CustomData:           &in,
	})
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if outFile != "" {
		f, err := os.Create(outFile)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		w = f
	}
	if withReport || res.Metadata.Format == generator.FormatAll {
		return writeJSON(w, res)
	}
	_, err = io.WriteString(w, document(res))
	return err
}

// document возвращает единственное заполненное представление.
func document(res generator.Result) string {
	switch res.Metadata.Format {
	case generator.FormatMarkdown:
		return res.FormattedResume.Markdown
	case generator.FormatText:
		return res.FormattedResume.PlainText
	default:
		return res.FormattedResume.HTML
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
