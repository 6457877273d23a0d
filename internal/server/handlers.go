package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/ukaji3/exdash-go/pkg/exdash/export"
	"github.com/ukaji3/exdash-go/pkg/exdash/figure"
	"github.com/ukaji3/exdash-go/pkg/exdash/filter"
	"github.com/ukaji3/exdash-go/pkg/exdash/models"
	"github.com/ukaji3/exdash-go/pkg/exdash/output"
	"github.com/ukaji3/exdash-go/pkg/exdash/render"
	"github.com/ukaji3/exdash-go/pkg/exdash/view"
	"go.uber.org/zap"
)

type errorResponse struct {
	Error string `json:"error"`
}

type healthResponse struct {
	Status  string `json:"status"`
	Book    string `json:"book"`
	Sheet   string `json:"sheet"`
	Rows    int    `json:"rows"`
	Columns int    `json:"columns"`
}

// viewResponse carries one page of the derived view and every output
// computed from it.
type viewResponse struct {
	Rows        []map[string]any            `json:"rows"`
	Rendered    []map[string]string         `json:"rendered"`
	Tooltips    []map[string]models.Tooltip `json:"tooltip_data"`
	PageCurrent int                         `json:"page_current"`
	PageCount   int                         `json:"page_count"`
	Total       int                         `json:"total"`
	BarCharts   []models.Graph              `json:"bar_charts"`
	Parcats     models.ParcatsFigure        `json:"parcats"`
	RowStyles   []models.StyleRule          `json:"style_data_conditional"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = output.WriteJSON(w, v, false)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// statusFor maps derivation errors to HTTP status codes.
func statusFor(err error) int {
	var syntaxErr *filter.SyntaxError
	switch {
	case errors.As(err, &syntaxErr), errors.Is(err, view.ErrSortMode):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// decodeState reads the table state from the request body.
func (s *Server) decodeState(w http.ResponseWriter, r *http.Request) (models.TableState, bool) {
	var state models.TableState
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&state); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid table state: %v", err))
		return state, false
	}
	if state.PageSize <= 0 {
		state.PageSize = s.cfg.Table.PageSize
	}
	return state, true
}

// derive decodes the state and computes the derived view. On failure it
// has already written the response.
func (s *Server) derive(w http.ResponseWriter, r *http.Request) (*models.Dataset, models.TableState, *view.View, bool) {
	state, ok := s.decodeState(w, r)
	if !ok {
		return nil, state, nil, false
	}
	ds := s.store.Current()
	v, err := view.Derive(ds, state, s.viewOpts)
	if err != nil {
		status := statusFor(err)
		if status >= http.StatusInternalServerError {
			s.logger.Error("derive view", zap.Error(err))
		}
		writeError(w, status, err.Error())
		return nil, state, nil, false
	}
	return ds, state, v, true
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	ds := s.store.Current()
	var buf bytes.Buffer
	if err := s.page.Execute(&buf, map[string]any{
		"Title":   strings.TrimSuffix(ds.BookName, ".xlsx"),
		"Sheet":   ds.SheetName,
		"TableID": figure.TableID,
	}); err != nil {
		s.logger.Error("render page", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to render page")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ds := s.store.Current()
	writeJSON(w, http.StatusOK, healthResponse{
		Status:  "ok",
		Book:    ds.BookName,
		Sheet:   ds.SheetName,
		Rows:    len(ds.Rows),
		Columns: len(ds.Columns),
	})
}

func (s *Server) handleTable(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.theme.TableSpec(s.store.Current(), s.cfg.TableOptions()))
}

func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	ds, state, v, ok := s.derive(w, r)
	if !ok {
		return
	}

	page := v.ClampPage(state.PageCurrent, state.PageSize)
	rows := v.Page(page, state.PageSize)
	resp := viewResponse{
		Rows:        make([]map[string]any, len(rows)),
		Rendered:    make([]map[string]string, len(rows)),
		Tooltips:    figure.Tooltips(ds.Columns, rows),
		PageCurrent: page,
		PageCount:   v.PageCount(state.PageSize),
		Total:       v.Len(),
		BarCharts:   s.theme.BarCharts(v, state.SelectedColumns),
		Parcats:     s.theme.Parcats(v, state.SelectedColumns, v.Index(state.ActiveCell, page, state.PageSize)),
		RowStyles:   s.theme.RowStyles(state.ActiveCell),
	}
	for i, rec := range rows {
		resp.Rows[i] = rec.Flatten()
		resp.Rendered[i] = s.renderMarkdown(ds.Columns, rec)
	}
	writeJSON(w, http.StatusOK, resp)
}

// renderMarkdown renders the markdown columns of one record.
func (s *Server) renderMarkdown(columns []models.Column, rec models.Record) map[string]string {
	out := make(map[string]string)
	for _, c := range columns {
		if c.Presentation != models.PresentationMarkdown {
			continue
		}
		html, err := s.md.Inline(models.FormatValue(rec.Value(c.ID)))
		if err != nil {
			s.logger.Warn("render markdown", zap.String("column", c.ID), zap.Int("row", rec.ID), zap.Error(err))
			continue
		}
		out[c.ID] = html
	}
	return out
}

func (s *Server) handleBarCharts(w http.ResponseWriter, r *http.Request) {
	_, state, v, ok := s.derive(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, s.theme.BarCharts(v, state.SelectedColumns))
}

func (s *Server) handleParcats(w http.ResponseWriter, r *http.Request) {
	_, state, v, ok := s.derive(w, r)
	if !ok {
		return
	}
	active := v.Index(state.ActiveCell, state.PageCurrent, state.PageSize)
	writeJSON(w, http.StatusOK, s.theme.Parcats(v, state.SelectedColumns, active))
}

func (s *Server) handleRowStyles(w http.ResponseWriter, r *http.Request) {
	state, ok := s.decodeState(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, s.theme.RowStyles(state.ActiveCell))
}

func (s *Server) handleChartPNG(w http.ResponseWriter, r *http.Request) {
	column := r.PathValue("column")
	v, err := view.Derive(s.store.Current(), models.TableState{}, s.viewOpts)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	graphs := s.theme.BarCharts(v, []string{column})
	if len(graphs) == 0 {
		writeError(w, http.StatusNotFound, fmt.Sprintf("unknown column %q", column))
		return
	}

	var buf bytes.Buffer
	if err := render.BarPNG(graphs[0], &buf); err != nil {
		if errors.Is(err, render.ErrNoBars) {
			writeError(w, http.StatusNotFound, fmt.Sprintf("column %q has no values", column))
			return
		}
		s.logger.Error("render chart", zap.String("column", column), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to render chart")
		return
	}
	w.Header().Set("Content-Type", "image/png")
	_, _ = buf.WriteTo(w)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	ds, _, v, ok := s.derive(w, r)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := export.WriteXLSX(ds, v, &buf); err != nil {
		s.logger.Error("export view", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to export")
		return
	}
	name := strings.TrimSuffix(ds.BookName, ".xlsx")
	if name == "" {
		name = "table"
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name+"-export.xlsx"))
	_, _ = buf.WriteTo(w)
}
