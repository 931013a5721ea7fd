package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/artem13815/resumeparser/pkg/config"
	"github.com/artem13815/resumeparser/pkg/logger"
	"github.com/artem13815/resumeparser/pkg/resume"
)

const folderPrompt = "Enter folder path of resumes: "

var errNoFolder = errors.New("folder path is required")

var batchCmd = &cobra.Command{
	Use:   "batch [folder]",
	Short: "Parse every resume in a folder into a CSV file",
	Long: `Parse every file of a folder (no recursion) and write one CSV row per file.

The folder is taken from the argument or read from stdin. The output file is
overwritten. Files that cannot be read are reported after the run and keep
their row with empty fields; use --with-errors to add Status and Error columns.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")
		withErrors, _ := cmd.Flags().GetBool("with-errors")

		var folder string
		if len(args) == 1 {
			folder = args[0]
		} else {
			var err error
			if folder, err = promptFolder(cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
				return err
			}
		}

		cfg := config.Load()
		if out == "" {
			out = cfg.OutputFile
		}
		log := logger.New(serviceName, cfg.Environment, cfg.LogLevel)

		a, err := newApp(cmd.Context(), cfg, log, false)
		if err != nil {
			return err
		}
		defer a.Close()

		return runBatch(cmd.Context(), a.svc, folder, out, resume.CSVOptions{IncludeErrors: withErrors}, cmd.OutOrStdout())
	},
}

func init() {
	batchCmd.Flags().StringP("out", "o", "", "CSV output path (default $OUTPUT_FILE or parsed_resumes.csv)")
	batchCmd.Flags().Bool("with-errors", false, "Append Status and Error columns to the CSV")
	rootCmd.AddCommand(batchCmd)
}

func promptFolder(in io.Reader, out io.Writer) (string, error) {
	fmt.Fprint(out, folderPrompt)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read folder path: %w", err)
	}
	folder := strings.TrimSpace(line)
	if folder == "" {
		return "", errNoFolder
	}
	return folder, nil
}

// runBatch parses folder and writes the CSV. Per-file failures are reported, not returned.
func runBatch(ctx context.Context, svc *resume.Service, folder, out string, opts resume.CSVOptions, w io.Writer) error {
	b, parseErr := svc.ParseFolder(ctx, folder)
	if parseErr != nil && b.Records == nil {
		return parseErr
	}

	if err := writeCSVFile(out, b.Records, opts); err != nil {
		return err
	}
	fmt.Fprintf(w, "Results saved to %s\n", out)

	if failures := b.Failures(); len(failures) > 0 {
		fmt.Fprintf(w, "%d of %d files could not be parsed:\n", len(failures), b.Total)
		for _, f := range failures {
			fmt.Fprintf(w, "  %s: %s\n", f.File, f.Error)
		}
	}
	return parseErr
}

func writeCSVFile(path string, records []resume.Record, opts resume.CSVOptions) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close output: %w", cerr)
		}
	}()
	return resume.WriteCSV(f, records, opts)
}
