// Команда resumegen запускает пайплайн резюме офлайн: рендер резюме из
// JSON-файла или проверка готового PDF/DOCX.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	aliasesFile string
	jobFile     string
)

var rootCmd = &cobra.Command{
	Use:          "resumegen",
	Short:        "Render and analyze resumes without the HTTP server",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&aliasesFile, "aliases", "", "YAML file with skill category aliases")
	rootCmd.PersistentFlags().StringVar(&jobFile, "job", "", "file with the target job description")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// readJob возвращает текст вакансии или "", если --job не задан.
func readJob() (string, error) {
	if jobFile == "" {
		return "", nil
	}
	b, err := os.ReadFile(jobFile)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
