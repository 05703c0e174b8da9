package web

import (
	"net/url"
	"strconv"
	"strings"

	g "maragu.dev/gomponents"
	html "maragu.dev/gomponents/html"

	"github.com/alexisbeaulieu97/datepick/pkg/calendar"
	"github.com/alexisbeaulieu97/datepick/pkg/pagination"
)

const (
	dayBaseClass     = "h-8 w-8 rounded-full flex items-center justify-center text-sm"
	daySelectedClass = "bg-brand-green text-white"
	dayTodayClass    = "border border-brand-green text-brand-green"
	dayHoverClass    = "hover:bg-gray-100"
	dayDisabledClass = "text-gray-300 cursor-not-allowed"
)

// CalendarNode renders one month as a seven column grid. Days are submit
// buttons of a GET form targeting action, so picking a day reloads the page
// with ?selected=YYYY-MM-DD. Disabled days carry the disabled attribute.
func CalendarNode(view calendar.MonthView, cells []calendar.Cell, selected *calendar.Date, action string) g.Node {
	return html.Div(
		html.Class("calendar bg-white rounded-md shadow-mild p-4"),
		g.Attr("data-month", view.String()),
		calendarHeader(view, selected, action),
		weekdayHeader(),
		html.Form(
			html.Method("get"),
			html.Action(action),
			html.Input(html.Type("hidden"), html.Name("month"), html.Value(view.String())),
			html.Div(
				html.Class("grid grid-cols-7 gap-1"),
				g.Attr("role", "grid"),
				g.Map(cells, dayNode),
			),
		),
	)
}

func calendarHeader(view calendar.MonthView, selected *calendar.Date, action string) g.Node {
	return html.Div(
		html.Class("flex justify-between items-center mb-4"),
		navLink(action, view.Add(-1), selected, "Previous month", "‹"),
		html.Div(html.Class("font-medium text-brand-blackLight"), g.Text(view.Title())),
		navLink(action, view.Add(1), selected, "Next month", "›"),
	)
}

func navLink(action string, target calendar.MonthView, selected *calendar.Date, label, glyph string) g.Node {
	return html.A(
		html.Class("p-1 rounded-full hover:bg-gray-100"),
		html.Href(calendarURL(action, target, selected)),
		html.Aria("label", label),
		g.Text(glyph),
	)
}

func weekdayHeader() g.Node {
	return html.Div(
		html.Class("grid grid-cols-7 gap-1 mb-2"),
		g.Map(calendar.WeekdayLabels(), func(label string) g.Node {
			return html.Div(
				html.Class("h-8 flex items-center justify-center text-xs font-semibold"),
				g.Text(label),
			)
		}),
	)
}

func dayNode(cell calendar.Cell) g.Node {
	if cell.IsEmpty() {
		return html.Div(html.Class("h-8"))
	}
	d := cell.Date
	return html.Button(
		html.Type("submit"),
		html.Name("selected"),
		html.Value(d.String()),
		html.Class(dayClass(cell)),
		html.Aria("label", calendar.MonthName(d.Month)+" "+strconv.Itoa(d.Day)+", "+strconv.Itoa(d.Year)),
		g.If(cell.Selected, html.Aria("pressed", "true")),
		g.If(cell.Today, html.Aria("current", "date")),
		g.If(cell.Disabled, html.Disabled()),
		g.Text(strconv.Itoa(d.Day)),
	)
}

// dayClass composes the utility classes for a day. The today ring only
// shows when the day is not selected, and hover is reserved for plain days.
func dayClass(cell calendar.Cell) string {
	classes := []string{dayBaseClass}
	if cell.Selected {
		classes = append(classes, daySelectedClass)
	}
	if cell.Today && !cell.Selected {
		classes = append(classes, dayTodayClass)
	}
	if !cell.Selected && !cell.Today && !cell.Disabled {
		classes = append(classes, dayHoverClass)
	}
	if cell.Disabled {
		classes = append(classes, dayDisabledClass)
	}
	return strings.Join(classes, " ")
}

// MonthPagerNode renders the months of view's year as a pager. Each page
// that can be changed to is a link carrying page=N; the current page and
// ellipses are plain text, as are the arrows at either end of the year.
func MonthPagerNode(view calendar.MonthView, selected *calendar.Date, siblings int, action string) g.Node {
	current := view.Page()
	items := pagination.Pages(current, calendar.MonthsPerYear, siblings)
	if len(items) == 0 {
		return nil
	}

	pageLink := func(page int, label, text string) g.Node {
		if !pagination.CanChange(page, current, calendar.MonthsPerYear) {
			return html.Span(html.Aria("disabled", "true"), g.Text(text))
		}
		return html.A(
			html.Href(pageURL(action, view, selected, page)),
			html.Aria("label", label),
			g.Text(text),
		)
	}

	return html.Nav(
		html.Class("pager"),
		html.Aria("label", "Months of "+strconv.Itoa(view.Year)),
		pageLink(current-1, "Previous page", "‹"),
		g.Map(items, func(item pagination.Item) g.Node {
			switch {
			case item.Ellipsis:
				return html.Span(g.Text(item.Label()))
			case item.Current:
				return html.Span(html.Aria("current", "page"), g.Text(item.Label()))
			default:
				return pageLink(item.Page, calendar.MonthName(item.Page-1), item.Label())
			}
		}),
		pageLink(current+1, "Next page", "›"),
	)
}

func pageURL(action string, view calendar.MonthView, selected *calendar.Date, page int) string {
	return calendarURL(action, view, selected) + "&page=" + strconv.Itoa(page)
}

func calendarURL(action string, view calendar.MonthView, selected *calendar.Date) string {
	q := url.Values{}
	q.Set("month", view.String())
	if selected != nil {
		q.Set("selected", selected.String())
	}
	return action + "?" + q.Encode()
}
