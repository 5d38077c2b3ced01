package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ssargent/bptreedb/pkg/registry"
)

// Server holds the dependencies every handler needs.
type Server struct {
	reg *registry.Registry
}

// NewServer constructs a Server backed by reg.
func NewServer(reg *registry.Registry) *Server {
	return &Server{reg: reg}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	sendSuccess(w, map[string]string{"status": "healthy"})
}

func (s *Server) handleListTrees(w http.ResponseWriter, r *http.Request) {
	sendSuccess(w, map[string]interface{}{"trees": s.reg.Names()})
}

func (s *Server) handleCreateTree(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "tree")

	order := 0
	if raw := r.URL.Query().Get("order"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			sendError(w, "order must be an integer", http.StatusBadRequest)
			return
		}
		order = parsed
	}

	if _, err := s.reg.Create(name, order); err != nil {
		sendError(w, err.Error(), http.StatusConflict)
		return
	}
	sendSuccess(w, map[string]string{"message": "created"})
}

func (s *Server) handleTreeStats(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "tree")
	entry, ok := s.reg.Get(name)
	if !ok {
		sendError(w, "tree not found", http.StatusNotFound)
		return
	}
	entry.Lock()
	defer entry.Unlock()
	sendSuccess(w, TreeStats{
		Name:   entry.Name,
		Order:  entry.Tree.Order(),
		Height: entry.Tree.Height(),
		Count:  entry.Tree.Count(),
	})
}

func (s *Server) handleInsert(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "tree")
	key, err := strconv.ParseInt(chi.URLParam(r, "key"), 10, 32)
	if err != nil {
		sendError(w, "key must be a signed 32-bit integer", http.StatusBadRequest)
		return
	}

	var req InsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	rec, err := parseRecordJSON(req)
	if err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	entry, ok := s.reg.Get(name)
	if !ok {
		sendError(w, "tree not found", http.StatusNotFound)
		return
	}
	entry.Lock()
	entry.Tree.Insert(int32(key), rec)
	entry.Unlock()

	sendSuccess(w, map[string]string{"message": "inserted"})
}

func (s *Server) handleFind(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "tree")
	key, err := strconv.ParseInt(chi.URLParam(r, "key"), 10, 32)
	if err != nil {
		sendError(w, "key must be a signed 32-bit integer", http.StatusBadRequest)
		return
	}

	entry, ok := s.reg.Get(name)
	if !ok {
		sendError(w, "tree not found", http.StatusNotFound)
		return
	}
	entry.Lock()
	rec, found := entry.Tree.Find(int32(key))
	entry.Unlock()
	if !found {
		sendError(w, "key not found", http.StatusNotFound)
		return
	}
	sendSuccess(w, recordJSON(rec))
}

func (s *Server) handleRange(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "tree")
	lo, err := strconv.ParseInt(r.URL.Query().Get("lo"), 10, 32)
	if err != nil {
		sendError(w, "lo must be a signed 32-bit integer", http.StatusBadRequest)
		return
	}
	hi, err := strconv.ParseInt(r.URL.Query().Get("hi"), 10, 32)
	if err != nil {
		sendError(w, "hi must be a signed 32-bit integer", http.StatusBadRequest)
		return
	}

	entry, ok := s.reg.Get(name)
	if !ok {
		sendError(w, "tree not found", http.StatusNotFound)
		return
	}
	entry.Lock()
	pairs := entry.Tree.Range(int32(lo), int32(hi))
	entry.Unlock()

	out := make([]map[string]interface{}, 0, len(pairs))
	for _, kr := range pairs {
		out = append(out, map[string]interface{}{"key": kr.Key, "record": recordJSON(kr.Record)})
	}
	sendSuccess(w, map[string]interface{}{"entries": out})
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "tree")
	key, err := strconv.ParseInt(chi.URLParam(r, "key"), 10, 32)
	if err != nil {
		sendError(w, "key must be a signed 32-bit integer", http.StatusBadRequest)
		return
	}

	entry, ok := s.reg.Get(name)
	if !ok {
		sendError(w, "tree not found", http.StatusNotFound)
		return
	}
	entry.Lock()
	found := entry.Tree.Delete(int32(key))
	entry.Unlock()
	if !found {
		sendError(w, "key not found", http.StatusNotFound)
		return
	}
	sendSuccess(w, map[string]string{"message": "deleted"})
}

func (s *Server) handlePurge(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "tree")
	entry, ok := s.reg.Get(name)
	if !ok {
		sendError(w, "tree not found", http.StatusNotFound)
		return
	}
	entry.Lock()
	entry.Tree.Purge()
	entry.Unlock()
	sendSuccess(w, map[string]string{"message": "purged"})
}
