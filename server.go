package main

// version 1:
//  no auth
//  posting /puzzle/ uploads a puzzle + solution text pair
//  fetching /puzzle/id gets the clue layout
//  posting /game starts a fresh working grid for a puzzle
//  posting /game/id/toggle cycles one cell and reports a win
//  /ws streams mutations both ways for a watched game
//
//  puzzles dropped in the configured puzzle_dir (name.txt with the
//  solution at name.txt.text) are imported at startup

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/cecilialau6776/nurikabe/conf"
	"github.com/cecilialau6776/nurikabe/db"
	"github.com/cecilialau6776/nurikabe/formats"
	"github.com/cecilialau6776/nurikabe/model"
	"github.com/cecilialau6776/nurikabe/service"
	"github.com/cecilialau6776/nurikabe/ws"
	_ "github.com/go-sql-driver/mysql"
	"github.com/gocraft/web"
	"golang.org/x/net/websocket"
)

type User struct {
	name string
}

type Context struct {
	user   User
	db     *sql.DB
	origin string
}

type PuzzleUploadResponse struct {
	Id string
}

type ErrorResponse struct {
	Error string
}

func (c *Context) Auth(rw web.ResponseWriter, req *web.Request, next web.NextMiddlewareFunc) {
	c.user.name = "anon"
	next(rw, req)
}

func (c *Context) Headers(rw web.ResponseWriter, req *web.Request, next web.NextMiddlewareFunc) {
	// allow testing with localhost client
	rw.Header().Set("Access-Control-Allow-Origin", c.origin)
	next(rw, req)
}

func writeJson(rw web.ResponseWriter, v interface{}) {
	b, err := json.Marshal(v)
	if err != nil {
		panic("cannot generate json response")
	}
	fmt.Fprint(rw, string(b))
}

// writeLoadError reports a bad puzzle or mutation as a 400 so the client
// falls back to a no-puzzle state instead of seeing a crash.
func writeLoadError(rw web.ResponseWriter, err error) {
	rw.WriteHeader(http.StatusBadRequest)
	writeJson(rw, ErrorResponse{Error: err.Error()})
}

func (c *Context) games() *service.GameService {
	return service.GameServiceNew(db.NewSession(c.db))
}

func (c *Context) PuzzleUpload(rw web.ResponseWriter, req *web.Request) {

	req.ParseMultipartForm(32 << 20)
	pfile, _, err := req.FormFile("puzzle")
	if err != nil {
		writeLoadError(rw, fmt.Errorf("no puzzle file found"))
		return
	}
	sfile, _, err := req.FormFile("solution")
	if err != nil {
		writeLoadError(rw, fmt.Errorf("no solution file found"))
		return
	}
	pb, err := io.ReadAll(pfile)
	if err != nil {
		panic(err)
	}
	sb, err := io.ReadAll(sfile)
	if err != nil {
		panic(err)
	}

	title := req.FormValue("title")
	p, err := loadPuzzle(title, pb, sb)
	if err != nil {
		writeLoadError(rw, err)
		return
	}

	session := db.NewSession(c.db)
	id, err := session.PuzzleCreate(p)
	if err != nil {
		panic(err)
	}

	writeJson(rw, PuzzleUploadResponse{Id: id})
}

func (c *Context) PuzzleGet(rw web.ResponseWriter, req *web.Request) {
	id := req.PathParams["id"]
	session := db.NewSession(c.db)

	p, err := session.PuzzleGetById(id)
	if err != nil {
		writeLoadError(rw, fmt.Errorf("no puzzle available"))
		return
	}

	var response struct {
		Id    string
		Title string
		Rows  int
		Cols  int
		Clues string
	}
	response.Id = p.Id
	response.Title = p.Title
	response.Rows = p.Size.Rows
	response.Cols = p.Size.Cols
	response.Clues = p.Clues.GridString()
	writeJson(rw, response)
}

func (c *Context) PuzzleFind(rw web.ResponseWriter, req *web.Request) {
	session := db.NewSession(c.db)
	ids, err := session.PuzzleFind()
	if err != nil {
		panic(err)
	}
	writeJson(rw, ids)
}

func (c *Context) GameStart(rw web.ResponseWriter, req *web.Request) {
	var request struct {
		PuzzleId string
	}
	decoder := json.NewDecoder(req.Body)
	err := decoder.Decode(&request)
	if err != nil {
		writeLoadError(rw, err)
		return
	}

	state, err := c.games().Start(request.PuzzleId)
	if err != nil {
		writeLoadError(rw, fmt.Errorf("no puzzle available"))
		return
	}
	writeJson(rw, state)
}

func (c *Context) GameGet(rw web.ResponseWriter, req *web.Request) {
	state, err := c.games().Get(req.PathParams["id"])
	if err != nil {
		writeLoadError(rw, fmt.Errorf("no game available"))
		return
	}
	writeJson(rw, state)
}

func (c *Context) GameToggle(rw web.ResponseWriter, req *web.Request) {
	c.gameApply(rw, req, service.OpToggle)
}

func (c *Context) GameReset(rw web.ResponseWriter, req *web.Request) {
	c.gameApply(rw, req, service.OpReset)
}

func (c *Context) gameApply(rw web.ResponseWriter, req *web.Request, op string) {
	var u service.GameMutation
	decoder := json.NewDecoder(req.Body)
	err := decoder.Decode(&u)
	if err != nil && err != io.EOF {
		writeLoadError(rw, err)
		return
	}
	u.Id = req.PathParams["id"]
	u.Op = op

	state, err := c.games().Apply(&u)
	if err != nil {
		writeLoadError(rw, err)
		return
	}
	writeJson(rw, state)
}

func (c *Context) PuzzleUploadGet(rw web.ResponseWriter, req *web.Request) {
	body := "<html><body><form method=\"post\" enctype=\"multipart/form-data\" action=\"/puzzle/\">" +
		"puzzle: <input type=\"file\" name=\"puzzle\"/> " +
		"solution: <input type=\"file\" name=\"solution\"/> " +
		"<input type=\"submit\"/></form></body></html>"
	fmt.Fprint(rw, body)
}

// loadPuzzle parses a puzzle description and its solution raster and pairs
// them up, refusing mismatched dimensions.
func loadPuzzle(title string, puzzleText, solutionText []byte) (*model.Puzzle, error) {
	clues, err := formats.NewDescription().Parse(puzzleText)
	if err != nil {
		return nil, err
	}
	solution, err := formats.NewSolution().Parse(solutionText)
	if err != nil {
		return nil, err
	}
	if clues.Size != solution.Size {
		return nil, model.ErrSizeMismatch
	}
	return &model.Puzzle{
		Title:    title,
		Size:     clues.Size,
		Clues:    clues,
		Solution: solution,
	}, nil
}

func main() {
	config, err := conf.LoadConfig("config")
	if err != nil {
		panic(err)
	}
	dbhandle, err := sql.Open("mysql", config.DBUri)
	if err != nil {
		panic(err)
	}
	defer dbhandle.Close()

	session := db.NewSession(dbhandle)
	if config.PuzzleDir != "" {
		importPuzzles(session, config.PuzzleDir)
	}

	wsServer := ws.NewServer(service.GameServiceNew(session))
	go wsServer.Listen()

	router := web.New(Context{}).
		Middleware(web.LoggerMiddleware).
		Middleware(func(c *Context, rw web.ResponseWriter, req *web.Request, next web.NextMiddlewareFunc) {
			c.db = dbhandle
			c.origin = config.Origin
			next(rw, req)
		}).
		Middleware((*Context).Auth).
		Middleware((*Context).Headers).
		Get("/puzzle/upload", (*Context).PuzzleUploadGet).
		Get("/puzzle/:id", (*Context).PuzzleGet).
		Get("/puzzle/", (*Context).PuzzleFind).
		Get("/game/:id", (*Context).GameGet).
		Get("/ws", func(rw web.ResponseWriter, req *web.Request) {
			websocket.Handler(wsServer.OnConnected).ServeHTTP(rw, req.Request)
		}).
		Post("/puzzle/", (*Context).PuzzleUpload).
		Post("/game", (*Context).GameStart).
		Post("/game/:id/toggle", (*Context).GameToggle).
		Post("/game/:id/reset", (*Context).GameReset)
	http.ListenAndServe(config.Listen, router)
}
