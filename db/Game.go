package db

import (
	"strings"

	"github.com/cecilialau6776/nurikabe/model"
)

// Blank cells are stored as "-" rather than a space: mysql strips trailing
// spaces from char values on retrieval, which would turn a stored Blank
// into an empty string and break grid reconstruction.
func encodeCell(r rune) string {
	if r == ' ' {
		return "-"
	}
	return string(r)
}

func decodeCell(value string) string {
	if value == "" || value == "-" {
		return " "
	}
	return value
}

func (session *Session) GameCreate(g *model.Game) (id string, err error) {
	tx, err := session.db.Begin()
	if err != nil {
		return "", err
	}
	defer tx.Rollback()
	stmt, err := tx.Prepare("insert into game (id, puzzle_id, version, won) values (?, ?, ?, ?)")
	if err != nil {
		return "", err
	}

	// try new random ids, abort if we can't get a unique one
	for i := 0; i < 5; i++ {
		id = randId(16)
		_, err = stmt.Exec(id, g.PuzzleId, g.Version, g.Won)
		if err == nil {
			break
		}
	}
	if err != nil {
		return "", err
	}

	// now create the cell entries
	stmt, err = tx.Prepare(`insert into cell (game_id, ordinal, value) values (?,?,?)`)
	if err != nil {
		return "", err
	}
	for i, r := range g.Grid.GridString() {
		_, err = stmt.Exec(id, i, encodeCell(r))
		if err != nil {
			return "", err
		}
	}
	tx.Commit()
	return id, nil
}

func (session *Session) GameGetById(id string) (g model.Game, err error) {
	tx, err := session.db.Begin()
	if err != nil {
		return g, err
	}
	defer tx.Rollback()

	var size model.GridSize
	err = tx.QueryRow(
		`select g.id, g.puzzle_id, g.version, g.won, p.height, p.width
         from game g join puzzle p on g.puzzle_id = p.id where g.id=?`, id).Scan(
		&g.Id, &g.PuzzleId, &g.Version, &g.Won, &size.Rows, &size.Cols)
	if err != nil {
		return g, err
	}

	rows, err := tx.Query(
		`select value from cell where game_id=? order by ordinal`, id)
	if err != nil {
		return g, err
	}
	defer rows.Close()

	var gridstr strings.Builder
	for rows.Next() {
		var value string
		if err := rows.Scan(&value); err != nil {
			return g, err
		}
		gridstr.WriteString(decodeCell(value))
	}
	if err = rows.Err(); err != nil {
		return g, err
	}

	g.Grid, err = model.GridFromString(size, gridstr.String())
	return g, err
}

func (session *Session) GameUpdate(g model.Game) (out model.Game, err error) {
	tx, err := session.db.Begin()
	if err != nil {
		return g, err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
        update game set version=?, won=? where id=?
    `)
	if err != nil {
		return g, err
	}

	_, err = stmt.Exec(g.Version, g.Won, g.Id)
	if err != nil {
		return g, err
	}
	stmt, err = tx.Prepare(
		`update cell set value=? where game_id=? and ordinal=?`)
	if err != nil {
		return g, err
	}
	for i, r := range g.Grid.GridString() {
		_, err = stmt.Exec(encodeCell(r), g.Id, i)
		if err != nil {
			return g, err
		}
	}

	tx.Commit()
	return g, nil
}
