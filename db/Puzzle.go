package db

import (
	"crypto/sha256"
	"errors"
	"fmt"

	"github.com/cecilialau6776/nurikabe/model"
)

func (session *Session) PuzzleCreate(p *model.Puzzle) (id string, err error) {
	tx, err := session.db.Begin()
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	solstr := p.Solution.GridString()
	cluestr := p.Clues.GridString()

	// id is a hash of the solution raster; this automatically dedupes
	// puzzles with the same topology even if they were uploaded under
	// different titles
	id = fmt.Sprintf("%x", sha256.Sum256([]byte(solstr)))

	stmt, err := tx.Prepare(`
        insert into puzzle (id, title, height, width, clues, solution)
        values (?,?,?,?,?,?) on duplicate key update
        title=VALUES(title), height=VALUES(height), width=VALUES(width),
        clues=VALUES(clues), solution=VALUES(solution)
    `)
	if err != nil {
		return "", err
	}
	_, err = stmt.Exec(
		id,
		p.Title,
		p.Size.Rows,
		p.Size.Cols,
		cluestr,
		solstr)
	if err != nil {
		return "", err
	}

	tx.Commit()
	return id, nil
}

func (session *Session) PuzzleGetById(id string) (p model.Puzzle, err error) {
	tx, err := session.db.Begin()
	if err != nil {
		return p, err
	}
	defer tx.Rollback()

	// allow short id prefixes, like git
	if len(id) < 64 {
		id = id + "%"
	}

	var cluestr, solstr string
	err = tx.QueryRow(
		`select id, title, height, width, clues, solution
         from puzzle where id like ?`, id).Scan(
		&p.Id,
		&p.Title,
		&p.Size.Rows,
		&p.Size.Cols,
		&cluestr,
		&solstr)
	if err != nil {
		return p, err
	}

	if len(cluestr) < p.Size.Rows*p.Size.Cols ||
		len(solstr) < p.Size.Rows*p.Size.Cols {
		return p, errors.New("incomplete grid")
	}
	p.Clues, err = model.GridFromString(p.Size, cluestr)
	if err != nil {
		return p, err
	}
	p.Solution, err = model.GridFromString(p.Size, solstr)
	if err != nil {
		return p, err
	}

	return p, nil
}

func (session *Session) PuzzleFind() (ids []model.PuzzleMetadata, err error) {
	tx, err := session.db.Begin()
	if err != nil {
		return ids, err
	}
	defer tx.Rollback()

	rows, err := tx.Query(`select id, title, height, width from puzzle`)
	if err != nil {
		return ids, err
	}
	defer rows.Close()

	for rows.Next() {
		var metadata model.PuzzleMetadata
		err := rows.Scan(
			&metadata.Id,
			&metadata.Title,
			&metadata.Size.Rows,
			&metadata.Size.Cols)
		if err != nil {
			return ids, err
		}
		ids = append(ids, metadata)
	}
	if err = rows.Err(); err != nil {
		return ids, err
	}

	return ids, nil
}
