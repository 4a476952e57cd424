package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pronunciationapp/backend/internal/config"
	"github.com/pronunciationapp/backend/internal/database"
	"github.com/pronunciationapp/backend/internal/importers"
)

// ImportWordsCommand loads vocabulary from a CSV or XLSX file.
type ImportWordsCommand struct {
	FilePath     string
	DatabasePath string
	Sheet        string
	Verbose      bool
	DryRun       bool

	out io.Writer
}

func NewImportWordsCommand() *ImportWordsCommand {
	return &ImportWordsCommand{out: os.Stdout}
}

func (cmd *ImportWordsCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("import-words", flag.ContinueOnError)

	fs.StringVar(&cmd.FilePath, "file", "", "Path to a .csv or .xlsx word list (required)")
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the sqlite database file")
	fs.StringVar(&cmd.Sheet, "sheet", "", "Worksheet to read from an .xlsx file (defaults to the first sheet)")
	fs.BoolVar(&cmd.Verbose, "verbose", false, "List every word read from the file")
	fs.BoolVar(&cmd.DryRun, "dry-run", false, "Show what would be imported without making changes")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s import-words -file <path> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Import words, levels and categories from a spreadsheet.\n\n")
		fmt.Fprintf(os.Stderr, "The first row must name the columns. Recognised columns:\n")
		fmt.Fprintf(os.Stderr, "  word (required), definition, phonetic, sentence, level, category, subcategory\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s import-words -file words.xlsx -sheet Beginner\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s import-words -file words.csv -dry-run -verbose\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.FilePath == "" {
		return fmt.Errorf("required flag -file not provided")
	}

	return nil
}

func (cmd *ImportWordsCommand) Run() error {
	out := cmd.out
	if out == nil {
		out = os.Stdout
	}

	fmt.Fprintln(out, "Word Import")
	fmt.Fprintln(out, "===========")

	if cmd.DryRun {
		fmt.Fprintln(out, "DRY RUN MODE - No changes will be made")
		fmt.Fprintln(out)
	}

	if _, err := os.Stat(cmd.FilePath); os.IsNotExist(err) {
		return fmt.Errorf("word file not found: %s", cmd.FilePath)
	}

	fmt.Fprintf(out, "File: %s\n", cmd.FilePath)

	rows, problems, err := importers.ParseWordsFile(cmd.FilePath, cmd.Sheet)
	if err != nil {
		return fmt.Errorf("failed to parse word file: %w", err)
	}

	for _, problem := range problems {
		fmt.Fprintf(out, "  [SKIP] %s\n", problem)
	}

	if len(rows) == 0 {
		fmt.Fprintln(out, "No words found in file")
		return nil
	}

	fmt.Fprintf(out, "Found %d words\n", len(rows))

	if cmd.Verbose {
		fmt.Fprintln(out, "\n=== Words Found ===")
		for i, row := range rows {
			level := "-"
			if row.Level > 0 {
				level = fmt.Sprintf("%d", row.Level)
			}
			fmt.Fprintf(out, "%d. %s (level %s, category %q)\n", i+1, row.Word, level, row.Category)
		}
	}

	if cmd.DryRun {
		fmt.Fprintln(out, "\nDry run complete. Use without -dry-run to import.")
		return nil
	}

	absDBPath, err := filepath.Abs(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path for database: %w", err)
	}
	cmd.DatabasePath = absDBPath

	fmt.Fprintf(out, "\nSaving to database: %s\n", cmd.DatabasePath)

	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	result, err := importers.NewPipeline(db).Import(rows)
	if err != nil {
		fmt.Fprintf(out, "Import stopped after %d words\n", result.WordsImported)
		return fmt.Errorf("failed to import words: %w", err)
	}

	fmt.Fprintln(out, "\n=== Import Summary ===")
	fmt.Fprintf(out, "Words saved: %d/%d\n", result.WordsImported, len(rows))
	fmt.Fprintf(out, "Levels used: %d\n", result.Levels)
	fmt.Fprintf(out, "Categories used: %d\n", result.Categories)
	if len(problems) > 0 {
		fmt.Fprintf(out, "Lines skipped: %d\n", len(problems))
	}

	fmt.Fprintln(out, "\nImport complete!")
	return nil
}
