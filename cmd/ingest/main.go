// Command ingest runs the one-shot ETL: it reads the RDTR workbooks, writes
// the canonical JSON datasets and loads the sqlite query store. Malformed
// rows are skipped with a warning; a missing input file is fatal.
package main

import (
	"database/sql"
	"flag"
	"log"
	"os"

	"github.com/jengzang/rdtr-backend-go/internal/database"
	"github.com/jengzang/rdtr-backend-go/internal/dataset"
	"github.com/jengzang/rdtr-backend-go/internal/ingest"
)

func main() {
	var (
		dataDir = flag.String("data-dir", "./data", "data directory (raw workbooks under raw/, outputs at top level)")
		source  = flag.String("source", "all", "permitted-use source to ingest: trikora, bsb, or all")
		dbPath  = flag.String("db", "./data/rdtr.db", "sqlite query store path; empty skips the store")
		preview = flag.Bool("preview", false, "dry run: print the summary without writing output")
	)
	flag.Parse()

	var db *sql.DB
	if *dbPath != "" && !*preview {
		var err error
		db, err = database.Open(*dbPath)
		if err != nil {
			log.Printf("error: %v", err)
			os.Exit(1)
		}
		defer db.Close()
	}

	runner := ingest.NewRunner(dataset.NewStore(*dataDir), db)
	report, err := runner.Run(ingest.Options{
		DataDir: *dataDir,
		Source:  *source,
		Preview: *preview,
	})
	if err != nil {
		log.Printf("error: %v", err)
		os.Exit(1)
	}

	for _, run := range report.Runs {
		mode := "ingested"
		if *preview {
			mode = "preview"
		}
		log.Printf("%s %s: %d activities, %d zones, %d intensity records, %d kepsus records (header fallback: %v)",
			mode, run.Source, run.Activities, run.Zones, run.IntensityRecords, run.KepsusRecords, run.HeaderFallback)
	}
}
