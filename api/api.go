// Package api exposes the style checker as a JSON REST API.
//
// Endpoints:
//
//	POST /api/check        body: {"text":"...", "title":"...", "save":false}
//	GET  /api/parse?text=<text>
//	GET  /api/metrics
//	GET  /api/reports
//	GET  /api/reports/{id}
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/rs/cors"

	"github.com/revelaction/strunk/check"
	"github.com/revelaction/strunk/corpus"
	"github.com/revelaction/strunk/render"
	sent "github.com/revelaction/strunk/sentence"
	"github.com/revelaction/strunk/stat"
	"github.com/revelaction/strunk/storage"
)

// maxBodyBytes bounds the size of a text to check.
const maxBodyBytes = 1 << 20

type checkRequest struct {
	Text  string `json:"text"`
	Title string `json:"title"`
	Save  bool   `json:"save"`
}

type checkResponse struct {
	Report  sent.Doc       `json:"report"`
	Graph   []stat.Row     `json:"graph"`
	Summary []stat.Summary `json:"summary"`
	Saved   bool           `json:"saved"`
}

type parsedSentence struct {
	Id   int    `json:"id"`
	Text string `json:"text"`
	Tree string `json:"tree"`
}

type parseResponse struct {
	Sentences []parsedSentence `json:"sentences"`
	Warnings  []string         `json:"warnings,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Server serves the API. Repo may be nil, then reports are neither saved nor
// listed.
type Server struct {
	Checker *check.Checker
	Repo    storage.DocRepository
	Logger  *slog.Logger
}

// Handler returns the API routes wrapped with a permissive CORS policy.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/check", s.handleCheck)
	mux.HandleFunc("/api/parse", s.handleParse)
	mux.HandleFunc("/api/metrics", s.handleMetrics)
	mux.HandleFunc("/api/reports", s.handleReports)
	mux.HandleFunc("/api/reports/{id}", s.handleReport)

	return cors.Default().Handler(mux)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger().Error("encode response", "err", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, errorResponse{Error: msg})
}

func (s *Server) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}

func summaries() ([]stat.Summary, error) {
	out := make([]stat.Summary, 0, len(stat.Metrics))
	for _, m := range stat.Metrics {
		sum, err := stat.Summarize(m)
		if err != nil {
			return nil, err
		}
		out = append(out, sum)
	}
	return out, nil
}

func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}

	var body checkRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Text == "" {
		s.writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'text' field")
		return
	}

	if body.Save && s.Repo == nil {
		s.writeError(w, http.StatusBadRequest, "no report repository configured")
		return
	}

	_, doc, err := s.Checker.Check(r.Context(), body.Title, body.Text)
	if err != nil {
		s.logger().Warn("check", "err", err)
		s.writeError(w, http.StatusServiceUnavailable, err.Error())
		return
	}

	sums, err := summaries()
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	resp := checkResponse{
		Report:  doc,
		Graph:   stat.GraphingData(doc.Metrics),
		Summary: sums,
	}

	if body.Save {
		if err := s.Repo.Write(doc); err != nil {
			s.logger().Error("save report", "id", doc.Id, "err", err)
			s.writeError(w, http.StatusInternalServerError, "could not save the report")
			return
		}
		resp.Saved = true
		s.logger().Info("report saved", "id", doc.Id, "title", doc.Title)
	}

	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}

	text := r.URL.Query().Get("text")
	if text == "" {
		s.writeError(w, http.StatusBadRequest, "missing 'text' query parameter")
		return
	}

	var warnings []string
	opts := []corpus.Option{
		corpus.WithGrammar(s.Checker.Grammar),
		corpus.WithTagger(s.Checker.Tagger),
		corpus.WithReporter(func(err error) { warnings = append(warnings, err.Error()) }),
	}

	c, err := corpus.New(r.Context(), text, opts...)
	if err != nil {
		s.writeError(w, http.StatusServiceUnavailable, err.Error())
		return
	}

	resp := parseResponse{Sentences: []parsedSentence{}, Warnings: warnings}
	trees := c.Trees()
	for i, sen := range c.Sentences() {
		if sen.IsBreak() {
			continue
		}
		resp.Sentences = append(resp.Sentences, parsedSentence{
			Id:   sen.Id,
			Text: plain.SentenceString(sen.Tokens),
			Tree: trees[i],
		})
	}

	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}

	sums, err := summaries()
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.writeJSON(w, http.StatusOK, sums)
}

func (s *Server) handleReports(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	if s.Repo == nil {
		s.writeError(w, http.StatusNotFound, "no report repository configured")
		return
	}

	infos, err := s.Repo.List()
	if err != nil {
		s.logger().Error("list reports", "err", err)
		s.writeError(w, http.StatusInternalServerError, "could not list the reports")
		return
	}
	if infos == nil {
		infos = []storage.DocInfo{}
	}

	s.writeJSON(w, http.StatusOK, infos)
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	if s.Repo == nil {
		s.writeError(w, http.StatusNotFound, "no report repository configured")
		return
	}

	id := r.PathValue("id")
	doc, err := s.Repo.Read(id)
	if errors.Is(err, storage.ErrNotFound) {
		s.writeError(w, http.StatusNotFound, fmt.Sprintf("report %q not found", id))
		return
	}
	if err != nil {
		s.logger().Error("read report", "id", id, "err", err)
		s.writeError(w, http.StatusInternalServerError, "could not read the report")
		return
	}

	s.writeJSON(w, http.StatusOK, doc)
}

// plain renders the sentence text without colors
var plain = &render.TextRenderer{}
