package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "ithuba",
	Short: "Turn a spoken work story into a professional profile",
	Long: `Ithuba converts an informal spoken or written account of a person's
work into a polished, ATS-ready professional profile document.

Voice notes are transcribed, contact details are redacted, and the
profile is generated and rendered as a downloadable PDF or DOCX.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "config.yaml", "path to config file")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(watchCmd)
}

func main() {
	// Secrets (GROQ_API_KEY, GEMINI_API_KEY) may live in a .env file
	// during development; absence is fine.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
