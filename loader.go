package main

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/cecilialau6776/nurikabe/db"
)

// importPuzzles loads every name.txt/name.txt.text pair under dir into the
// database. Bad pairs are logged and skipped so one broken file doesn't
// block the rest.
func importPuzzles(session *db.Session, dir string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Println("puzzle dir not readable: ", err)
		return
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".txt") {
			continue
		}
		path := filepath.Join(dir, name)
		pb, err := os.ReadFile(path)
		if err != nil {
			log.Println("skipping ", name, ": ", err)
			continue
		}
		sb, err := os.ReadFile(path + ".text")
		if err != nil {
			log.Println("skipping ", name, ": no solution file")
			continue
		}

		title := strings.TrimSuffix(name, ".txt")
		p, err := loadPuzzle(title, pb, sb)
		if err != nil {
			log.Println("skipping ", name, ": ", err)
			continue
		}
		id, err := session.PuzzleCreate(p)
		if err != nil {
			log.Println("skipping ", name, ": ", err)
			continue
		}
		log.Println("imported ", name, " as ", id[:8])
	}
}
