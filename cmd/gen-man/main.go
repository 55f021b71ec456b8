// Command gen-man writes the qv man pages (qv.1 and qv-<command>.1).
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/pflag"

	"github.com/suykerbuyk/qv/internal/help"
)

type page struct {
	name, body string
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("gen-man: ")

	date := pflag.String("date", pageDate(), "page date (YYYY-MM-DD); defaults to SOURCE_DATE_EPOCH or today")
	pflag.Parse()

	dir := "man"
	if pflag.NArg() > 0 {
		dir = pflag.Arg(0)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Fatal(err)
	}

	pages := []page{{"qv.1", help.FormatRoffTopLevel(help.TopLevel, help.Subcommands, *date)}}
	for _, cmd := range help.Subcommands {
		pages = append(pages, page{cmd.ManName() + ".1", help.FormatRoff(cmd, *date)})
	}
	for _, p := range pages {
		path := filepath.Join(dir, p.name)
		if err := os.WriteFile(path, []byte(p.body), 0o644); err != nil {
			log.Fatalf("write %s: %v", path, err)
		}
		fmt.Printf("  %s\n", path)
	}
}

// pageDate honors SOURCE_DATE_EPOCH for reproducible builds.
func pageDate() string {
	if epoch := os.Getenv("SOURCE_DATE_EPOCH"); epoch != "" {
		if secs, err := strconv.ParseInt(epoch, 10, 64); err == nil {
			return time.Unix(secs, 0).UTC().Format("2006-01-02")
		}
	}
	return time.Now().Format("2006-01-02")
}
