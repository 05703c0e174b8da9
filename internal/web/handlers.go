package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	g "maragu.dev/gomponents"

	"github.com/alexisbeaulieu97/datepick/internal/logger"
	"github.com/alexisbeaulieu97/datepick/pkg/calendar"
	dperrors "github.com/alexisbeaulieu97/datepick/pkg/errors"
)

// CalendarPayload is the JSON form of a rendered month.
type CalendarPayload struct {
	Month    string          `json:"month"`
	Title    string          `json:"title"`
	Weekdays []string        `json:"weekdays"`
	Cells    []calendar.Cell `json:"cells"`
	Selected string          `json:"selected,omitempty"`
	Today    string          `json:"today"`
}

// NewCalendarPayload describes view and its grid.
func NewCalendarPayload(view calendar.MonthView, cells []calendar.Cell, selected *calendar.Date, today calendar.Date) CalendarPayload {
	p := CalendarPayload{
		Month:    view.String(),
		Title:    view.Title(),
		Weekdays: calendar.WeekdayLabels(),
		Cells:    cells,
		Today:    today.String(),
	}
	if selected != nil {
		p.Selected = selected.String()
	}
	return p
}

type selectResponse struct {
	Date      string `json:"date"`
	Formatted string `json:"formatted"`
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// calendarQuery is the month and selection a request asks for.
type calendarQuery struct {
	view     calendar.MonthView
	selected *calendar.Date
}

// parseCalendarQuery reads month=YYYY-MM, selected (display layout or
// YYYY-MM-DD), nav=N and page=1..12. page jumps within the year after nav
// is applied; the current page or one outside the year is ignored.
// Without month the view follows the selection, then today. A selection
// outside the bounds is dropped.
func (s *Server) parseCalendarQuery(r *http.Request) (calendarQuery, error) {
	q := r.URL.Query()
	var out calendarQuery

	if raw := q.Get("selected"); raw != "" {
		d, err := calendar.ParseInput(s.opts.Layout, raw)
		if err != nil {
			return out, err
		}
		picked, err := calendar.SelectDate(d.Year, d.Month, d.Day, s.opts.Bounds)
		if err != nil {
			logger.FromContext(r.Context()).With("date", raw).Debug("selection rejected")
		} else {
			out.selected = &picked
		}
	}

	switch {
	case q.Get("month") != "":
		view, err := calendar.ParseMonth(q.Get("month"))
		if err != nil {
			return out, err
		}
		out.view = view
	case out.selected != nil:
		out.view = out.selected.MonthView()
	default:
		out.view = s.today().MonthView()
	}

	if raw := q.Get("nav"); raw != "" {
		delta, err := strconv.Atoi(raw)
		if err != nil {
			return out, fmt.Errorf("nav %q: %w", raw, err)
		}
		out.view = out.view.Add(delta)
	}

	if raw := q.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return out, fmt.Errorf("page %q: %w", raw, err)
		}
		view, ok := out.view.JumpToPage(page)
		if !ok {
			logger.FromContext(r.Context()).WithFields(map[string]any{
				"page":    page,
				"current": out.view.Page(),
			}).Debug("page unchanged")
		}
		out.view = view
	}
	return out, nil
}

func (s *Server) grid(q calendarQuery) ([]calendar.Cell, error) {
	return q.view.Grid(q.selected, s.today(), s.opts.Bounds)
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	q, err := s.parseCalendarQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	cells, err := s.grid(q)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	renderHTML(w, http.StatusOK, pickerPage(pageState{
		view:     q.view,
		cells:    cells,
		selected: q.selected,
		layout:   s.opts.Layout,
		holder:   s.opts.Placeholder,
		siblings: s.opts.PageSiblings,
	}))
}

func (s *Server) handleFragment(w http.ResponseWriter, r *http.Request) {
	q, err := s.parseCalendarQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	cells, err := s.grid(q)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	renderHTML(w, http.StatusOK, CalendarNode(q.view, cells, q.selected, "/"))
}

func (s *Server) handleCalendarJSON(w http.ResponseWriter, r *http.Request) {
	q, err := s.parseCalendarQuery(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error(), Code: "bad_request"})
		return
	}
	cells, err := s.grid(q)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error(), Code: "internal"})
		return
	}

	writeJSON(w, http.StatusOK, NewCalendarPayload(q.view, cells, q.selected, s.today()))
}

// handleSelect exposes SelectDate: year, 0-based month and day in, the
// accepted date out. A rejected date answers 422.
func (s *Server) handleSelect(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var parts [3]int
	for i, name := range []string{"year", "month", "day"} {
		v, err := strconv.Atoi(q.Get(name))
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("%s: %v", name, err), Code: "bad_request"})
			return
		}
		parts[i] = v
	}

	d, err := calendar.SelectDate(parts[0], parts[1], parts[2], s.opts.Bounds)
	switch {
	case errors.Is(err, dperrors.ErrInvalidMonth):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error(), Code: "invalid_month"})
		return
	case errors.Is(err, dperrors.ErrRejected):
		logger.FromContext(r.Context()).Debug(err.Error())
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error(), Code: "rejected"})
		return
	case err != nil:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error(), Code: "internal"})
		return
	}

	writeJSON(w, http.StatusOK, selectResponse{Date: d.String(), Formatted: calendar.Format(d, s.opts.Layout)})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func renderHTML(w http.ResponseWriter, status int, node g.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_ = node.Render(w)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
