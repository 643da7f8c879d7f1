package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"wellness/backend/config"
	"wellness/backend/models"
	"wellness/backend/router"
	"wellness/backend/routes"
	"wellness/backend/store"
	"wellness/backend/utils"
)

// The portal backend is a simulation: there is no network listener. This
// driver reads requests from stdin, one per line, and prints the response the
// view layer would receive:
//
//	POST /auth/login {"email":"student@wellness.local","password":"Student@123"}
//	GET /programs
//	POST /programs/p3/enroll
//
// A successful login's token is remembered and attached to every following
// request.
func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize logger
	logger := utils.InitLogger()

	// Optional seed override
	var seed *models.Snapshot
	if cfg.SeedFile != "" {
		seed, err = store.LoadSeedFile(cfg.SeedFile)
		if err != nil {
			log.Fatalf("Error loading seed file: %v", err)
		}
	}

	// Initialize stores
	st := store.New(cfg.DataFile, seed)
	sessions := store.NewSessionStore(cfg.SessionFile)

	// Build the route table
	r := router.New(cfg.SimulatedLatency)
	r.SetLogFunc(utils.DispatchLog(logger, true))
	routes.SetupRoutes(r, st, sessions, cfg)

	// Resume a persisted session, if any
	token := ""
	if rec, err := sessions.Current(); err == nil && rec != nil {
		token = rec.Token
		logger.Printf("resumed session for %s", rec.User.Email)
	}

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if line == "exit" || line == "quit" {
			break
		}

		req, err := parseRequest(line, token)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			continue
		}

		resp := r.Dispatch(req)
		if t := loginToken(req, resp); t != "" {
			token = t
		}

		out, err := json.MarshalIndent(router.Map{"status": resp.Status, "body": resp.Body}, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			continue
		}
		fmt.Println(string(out))
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("Error reading input: %v", err)
	}
}

// parseRequest turns a "METHOD /path[?query] [json-body]" line into a request
// tuple.
func parseRequest(line, token string) (router.Request, error) {
	parts := strings.SplitN(line, " ", 3)
	if len(parts) < 2 {
		return router.Request{}, fmt.Errorf("want: METHOD /path [json-body]")
	}

	method := strings.ToUpper(parts[0])
	path := parts[1]

	query := map[string]string{}
	if i := strings.IndexByte(path, '?'); i >= 0 {
		for _, pair := range strings.Split(path[i+1:], "&") {
			if kv := strings.SplitN(pair, "=", 2); len(kv) == 2 {
				query[kv[0]] = kv[1]
			}
		}
		path = path[:i]
	}

	var body []byte
	if len(parts) == 3 && parts[2] != "" {
		body = []byte(parts[2])
	}

	headers := map[string]string{}
	if token != "" {
		headers["Authorization"] = token
	}

	return router.Request{Method: method, Path: path, Query: query, Headers: headers, Body: body}, nil
}

// loginToken pulls the issued token out of a successful login response.
func loginToken(req router.Request, resp router.Response) string {
	if req.Method != "POST" || req.Path != "/auth/login" || resp.Status != 200 {
		return ""
	}
	if body, ok := resp.Body.(router.Map); ok {
		if t, ok := body["token"].(string); ok {
			return t
		}
	}
	return ""
}
