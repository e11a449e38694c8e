package cmd

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/mux"
	"github.com/jsphweid/keysound/bms"
	"github.com/jsphweid/keysound/constants"
	"github.com/jsphweid/keysound/file"
	"github.com/jsphweid/keysound/model"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

var servePort string

func init() {
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "", "port to listen on (default from KEYSOUND_PORT or 8080)")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve <chart>",
	Short: "Serves a chart's keysounds over HTTP",
	Long:  `Serves a chart's keysounds over HTTP`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := openForEdit(cmd.OutOrStdout(), args[0])
		if err != nil {
			return err
		}
		port := servePort
		if port == "" {
			port = constants.GetPort()
		}
		log.Printf("Serving %v on :%v", b.Path, port)
		log.Fatal(http.ListenAndServe(":"+port, NewServer(b).Handler()))
		return nil
	},
}

// Server exposes one chart file. Requests are serialized since the chart
// document is not safe for concurrent use.
type Server struct {
	mu   sync.Mutex
	file *file.BmsFile
}

func NewServer(b *file.BmsFile) *Server {
	return &Server{file: b}
}

func (s *Server) Handler() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/keysounds", s.handleKeysounds).Methods("GET")
	router.HandleFunc("/keysounds/unused", s.handleUnused).Methods("GET")
	router.HandleFunc("/keysounds/{id}", s.handleKeysound).Methods("GET")
	router.HandleFunc("/rewrite", s.handleRewrite).Methods("POST")
	router.HandleFunc("/reload", s.handleReload).Methods("POST")

	c := cors.New(cors.Options{
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	})
	return c.Handler(router)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Could not encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, model.ErrorResponse{Error: err.Error()})
}

func (s *Server) handleKeysounds(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, buildReport(s.file))
}

func (s *Server) handleUnused(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := make([]model.KeysoundReport, 0)
	for _, k := range s.file.Chart.UnusedKeysounds() {
		res = append(res, model.KeysoundReport{ID: bms.Encode(k.ID), File: k.File})
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleKeysound(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	k, ok := s.file.Chart.Keysound(id)
	if !ok {
		writeJSON(w, http.StatusNotFound, model.ErrorResponse{Error: "no keysound exists with id " + id.String()})
		return
	}
	slots := s.file.Chart.Usage()[id]
	writeJSON(w, http.StatusOK, model.KeysoundReport{
		ID:    bms.Encode(k.ID),
		File:  k.File,
		Slots: slots,
		Used:  slots > 0,
	})
}

func (s *Server) handleRewrite(w http.ResponseWriter, r *http.Request) {
	var input model.RewriteRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	newID, err := parseID(input.New)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if len(input.Old) == 0 {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: "no keysound ids given"})
		return
	}
	var oldIDs []bms.ID
	for _, raw := range input.Old {
		id, err := parseID(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		oldIDs = append(oldIDs, id)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	results, err := replaceKeysounds(log.Writer(), s.file, newID, oldIDs)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}

	res := model.RewriteResponse{Results: make([]model.RewriteResult, 0, len(results))}
	for _, rr := range results {
		res.Results = append(res.Results, toModelResult(rr))
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.file.Reload(); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, buildReport(s.file))
}
