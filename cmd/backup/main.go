package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"earthwords/internal/config"
	"earthwords/internal/database"
	"earthwords/internal/service"
)

const usage = `Usage:
  backup export [-output file]        write every learner's saved progress to JSON
  backup import -input file [-clear]  restore learner progress from JSON

Without -clear, imported keys overwrite matching ones and other learners are kept.
The database is chosen by DB_TYPE, DB_PATH and DATABASE_URL as for the server.`

func main() {
	exportCmd := flag.NewFlagSet("export", flag.ExitOnError)
	exportOutput := exportCmd.String("output", "", "output file (default: progress_YYYYMMDD_HHMMSS.json)")

	importCmd := flag.NewFlagSet("import", flag.ExitOnError)
	importInput := importCmd.String("input", "", "input file (required)")
	importClear := importCmd.Bool("clear", false, "delete all learner progress before importing")

	if len(os.Args) < 2 || (os.Args[1] != "export" && os.Args[1] != "import") {
		fmt.Println(usage)
		os.Exit(1)
	}

	cfg := config.Load()
	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	backups := service.NewBackupService(db)

	if os.Args[1] == "export" {
		exportCmd.Parse(os.Args[2:])
		path := *exportOutput
		if path == "" {
			path = defaultOutputPath(time.Now())
		}
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			log.Fatalf("Failed to create output directory: %v", err)
		}
		if err := backups.Export(path); err != nil {
			log.Fatalf("Export failed: %v", err)
		}
		return
	}

	importCmd.Parse(os.Args[2:])
	if *importInput == "" {
		importCmd.Usage()
		os.Exit(1)
	}
	if *importClear && !confirmClear(os.Stdin, os.Stdout) {
		log.Println("Import cancelled")
		return
	}
	if err := backups.Import(*importInput, *importClear); err != nil {
		log.Fatalf("Import failed: %v", err)
	}
}

func defaultOutputPath(now time.Time) string {
	return fmt.Sprintf("progress_%s.json", now.Format("20060102_150405"))
}

// confirmClear asks before an import wipes every learner's progress
func confirmClear(in io.Reader, out io.Writer) bool {
	fmt.Fprint(out, "This deletes all saved learner progress. Type 'yes' to continue: ")
	answer, _ := bufio.NewReader(in).ReadString('\n')
	return strings.TrimSpace(answer) == "yes"
}
