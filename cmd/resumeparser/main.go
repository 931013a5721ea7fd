// @title         resumeparser API
// @version       1.0
// @description   Извлечение имени, email, телефона и навыков из резюме в формате PDF и DOCX.
// @BasePath      /api/v1
// @schemes       http
// @host          localhost:8080
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

const serviceName = "resumeparser"

// Version is overridden by ldflags at build time
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   serviceName,
	Short: "Extract contact details and skills from PDF/DOCX resumes",
	Long: `resumeparser reads resumes (PDF or DOCX) and extracts the candidate's
name, email, phone number and known skills.

Examples:
  resumeparser batch ./resumes            # parse a folder into parsed_resumes.csv
  resumeparser batch --with-errors        # prompt for the folder, keep failure columns
  resumeparser serve --port 9000          # web UI and JSON API`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
