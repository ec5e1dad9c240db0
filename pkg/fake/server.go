/*
Copyright 2024-2025 the Unikorn Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package fake provides an in-memory HTTP server that answers like reqres.in.
// It lets suites run hermetically and is what the reqres-fake command serves.
package fake

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"math"
	"net/http"
	"slices"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/spjmurray/go-util/pkg/set"
	"go.uber.org/zap"
)

const (
	defaultPerPage = 6
	maxDelay       = 10 * time.Second

	// timestampFormat mirrors the millisecond precision reqres emits.
	timestampFormat = "2006-01-02T15:04:05.000Z07:00"
)

var (
	ErrUnknownResource = errors.New("unknown resource")
	ErrEmptyBody       = errors.New("missing request body")
	ErrInvalidBody     = errors.New("request body must be a JSON object")
	ErrInvalidField    = errors.New("invalid field type")
)

// stringFields must be JSON strings whenever a payload carries them.
//
//nolint:gochecknoglobals
var stringFields = []string{
	"name",
	"job",
	"email",
	"first_name",
	"last_name",
	"avatar",
	"color",
	"pantone_value",
}

// Handler serves the reqres API from a store.
type Handler struct {
	store  *Store
	logger *zap.Logger
	now    func() time.Time
}

// NewHandler returns a routed handler serving store.
func NewHandler(store *Store, logger *zap.Logger) http.Handler {
	h := &Handler{
		store:  store,
		logger: logger,
		now:    time.Now,
	}

	metrics := NewCollector()

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(Logger(logger))
	r.Use(metrics.Middleware)
	r.Use(chimiddleware.Recoverer)

	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Group(func(r chi.Router) {
		r.Use(Authorization)

		r.Route("/api/{resource}", func(r chi.Router) {
			r.Get("/", h.list)
			r.Post("/", h.create)
			r.Get("/{id}", h.get)
			r.Put("/{id}", h.replace)
			r.Patch("/{id}", h.update)
			r.Delete("/{id}", h.remove)
		})
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]any{})
	})

	return r
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]any{
		"error": err.Error(),
	})
}

// intQuery returns a positive integer query parameter or def.
func intQuery(r *http.Request, name string, def int) int {
	n, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil || n < 1 {
		return def
	}

	return n
}

// delay holds the response back as reqres does for ?delay=N seconds.
func delay(r *http.Request) {
	seconds, err := strconv.Atoi(r.URL.Query().Get("delay"))
	if err != nil || seconds < 1 {
		return
	}

	d := min(time.Duration(seconds)*time.Second, maxDelay)

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
	case <-r.Context().Done():
	}
}

// resource resolves the collection named in the path or answers 404.
func (h *Handler) resource(w http.ResponseWriter, r *http.Request) (string, bool) {
	resource := chi.URLParam(r, "resource")

	if !h.store.Has(resource) {
		writeJSON(w, http.StatusNotFound, map[string]any{})
		return "", false
	}

	return resource, true
}

// member resolves the collection and member id named in the path.
func (h *Handler) member(w http.ResponseWriter, r *http.Request) (string, int, bool) {
	resource, ok := h.resource(w, r)
	if !ok {
		return "", 0, false
	}

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]any{})
		return "", 0, false
	}

	return resource, id, true
}

// payload decodes a JSON object body and type checks known fields.
func payload(r *http.Request, allowEmpty bool) (Record, error) {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, err
	}

	if len(data) == 0 {
		if allowEmpty {
			return Record{}, nil
		}

		return nil, ErrEmptyBody
	}

	var fields Record
	if err := json.Unmarshal(data, &fields); err != nil || fields == nil {
		return nil, ErrInvalidBody
	}

	if len(fields) == 0 && !allowEmpty {
		return nil, ErrEmptyBody
	}

	present := set.New[string](slices.Collect(maps.Keys(fields))...)

	for name := range present.Intersection(set.New[string](stringFields...)).All() {
		if _, ok := fields[name].(string); !ok {
			return nil, fmt.Errorf("%w: %s must be a string", ErrInvalidField, name)
		}
	}

	// The server owns identifiers and timestamps.
	for name := range present.Intersection(set.New[string]("id", "createdAt", "updatedAt")).All() {
		delete(fields, name)
	}

	return fields, nil
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	resource, ok := h.resource(w, r)
	if !ok {
		return
	}

	delay(r)

	page := intQuery(r, "page", 1)
	perPage := intQuery(r, "per_page", defaultPerPage)

	data, total := h.store.List(resource, page, perPage)

	writeJSON(w, http.StatusOK, map[string]any{
		"page":        page,
		"per_page":    perPage,
		"total":       total,
		"total_pages": int(math.Ceil(float64(total) / float64(perPage))),
		"data":        data,
		"support":     support,
	})
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	resource, id, ok := h.member(w, r)
	if !ok {
		return
	}

	delay(r)

	record, ok := h.store.Get(resource, id)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]any{})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"data":    record,
		"support": support,
	})
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	resource, ok := h.resource(w, r)
	if !ok {
		return
	}

	fields, err := payload(r, false)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	record, err := h.store.Create(resource, fields)
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}

	id, _ := record["id"].(int)

	// reqres answers with the new identifier as a string.
	record["id"] = strconv.Itoa(id)
	record["createdAt"] = h.now().UTC().Format(timestampFormat)

	h.logger.Info("record created", zap.String("resource", resource), zap.Int("id", id))

	writeJSON(w, http.StatusCreated, record)
}

func (h *Handler) modify(w http.ResponseWriter, r *http.Request, replace bool) {
	resource, id, ok := h.member(w, r)
	if !ok {
		return
	}

	fields, err := payload(r, true)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if _, ok := h.store.Update(resource, id, fields, replace); !ok {
		writeJSON(w, http.StatusNotFound, map[string]any{})
		return
	}

	// Only the submitted fields are echoed back.
	fields["updatedAt"] = h.now().UTC().Format(timestampFormat)

	writeJSON(w, http.StatusOK, fields)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	h.modify(w, r, false)
}

func (h *Handler) replace(w http.ResponseWriter, r *http.Request) {
	h.modify(w, r, true)
}

func (h *Handler) remove(w http.ResponseWriter, r *http.Request) {
	resource, id, ok := h.member(w, r)
	if !ok {
		return
	}

	if !h.store.Delete(resource, id) {
		writeJSON(w, http.StatusNotFound, map[string]any{})
		return
	}

	h.logger.Info("record deleted", zap.String("resource", resource), zap.Int("id", id))

	w.WriteHeader(http.StatusNoContent)
}
