// Command server exposes the particle resolver as a JSON REST API.
//
// Endpoints:
//
//	GET  /api/resolve?word=<word>&tag=<tag>
//	POST /api/format   body: {"template":"...","args":[...]}
//	GET  /api/tags
package main

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	josa "github.com/what-studio/josa"
)

// ---- JSON response types ------------------------------------------------

type resolveResponse struct {
	Word     string `json:"word"`
	Tag      string `json:"tag"`
	Suffix   string `json:"suffix"`
	Combined string `json:"combined"`
}

type formatRequest struct {
	Template string `json:"template"`
	Args     []any  `json:"args"`
}

type formatResponse struct {
	Result string `json:"result"`
}

type tagsResponse struct {
	Tags []string `json:"tags"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := sonic.ConfigDefault.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("encode response")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// statusFor maps resolution errors to HTTP statuses. Every resolver error
// is a caller mistake; nothing the server does can fail transiently.
func statusFor(err error) int {
	switch {
	case errors.Is(err, josa.ErrEmptyWord),
		errors.Is(err, josa.ErrUnknownTag),
		errors.Is(err, josa.ErrUnknownEnding):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// ---- handlers -----------------------------------------------------------

func handleResolve(resolver *josa.Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		word := r.URL.Query().Get("word")
		tag := r.URL.Query().Get("tag")
		if tag == "" {
			writeError(w, http.StatusBadRequest, "missing 'tag' query parameter")
			return
		}
		suffix, err := resolver.Resolve(word, tag)
		if err != nil {
			writeError(w, statusFor(err), err.Error())
			return
		}
		writeJSON(w, http.StatusOK, resolveResponse{
			Word:     word,
			Tag:      tag,
			Suffix:   suffix,
			Combined: word + suffix,
		})
	}
}

func handleFormat(resolver *josa.Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST required")
			return
		}
		var body formatRequest
		if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&body); err != nil || body.Template == "" {
			writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'template' field")
			return
		}
		result, err := resolver.Format(body.Template, body.Args...)
		if err != nil {
			writeError(w, statusFor(err), err.Error())
			return
		}
		writeJSON(w, http.StatusOK, formatResponse{Result: result})
	}
}

func handleTags() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		writeJSON(w, http.StatusOK, tagsResponse{Tags: josa.Tags()})
	}
}

// ---- main ---------------------------------------------------------------

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}

func run() error {
	fs := ff.NewFlagSet("josa-server")
	var (
		addr     = fs.StringLong("addr", ":8080", "listen address")
		style    = fs.Int64Long("tolerance-style", 0, "combined-notation style for unclassifiable words (0-3)")
		origins  = fs.StringLong("allowed-origins", "*", "comma-separated CORS origins")
		logLevel = fs.StringEnumLong("log-level", "log verbosity", "info", "debug", "warn", "error")
	)
	if err := ff.Parse(fs, os.Args[1:], ff.WithEnvVarPrefix("JOSA")); err != nil {
		fmt.Printf("%s\n", ffhelp.Flags(fs))
		return fmt.Errorf("parsing flags: %w", err)
	}

	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		return fmt.Errorf("parsing log level: %w", err)
	}
	zerolog.SetGlobalLevel(level)

	if *style < 0 || *style > 3 {
		return fmt.Errorf("tolerance-style must be 0-3, got %d", *style)
	}
	resolver := josa.New(josa.WithToleranceStyle(josa.ToleranceStyle(*style)))

	mux := http.NewServeMux()
	mux.HandleFunc("/api/resolve", handleResolve(resolver))
	mux.HandleFunc("/api/format", handleFormat(resolver))
	mux.HandleFunc("/api/tags", handleTags())

	allowed := lo.Map(strings.Split(*origins, ","), func(o string, _ int) string {
		return strings.TrimSpace(o)
	})
	handler := cors.New(cors.Options{
		AllowedOrigins: allowed,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	}).Handler(mux)

	log.Info().Str("addr", *addr).Int64("tolerance_style", *style).Msg("listening")
	return http.ListenAndServe(*addr, handler)
}
