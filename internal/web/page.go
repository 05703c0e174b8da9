package web

import (
	g "maragu.dev/gomponents"
	html "maragu.dev/gomponents/html"

	"github.com/alexisbeaulieu97/datepick/pkg/calendar"
)

const stylesheet = `
body{font-family:system-ui,sans-serif;background:#f3f4f6;margin:2rem}
.picker{width:18rem}
.field{display:flex;align-items:center;gap:.5rem;height:36px;border:1px solid #d1d5db;border-radius:.25rem;background:#fff;padding:0 .5rem}
.field.open{border-color:#16a34a}
.field .placeholder{color:#9ca3af}
.calendar{margin-top:.25rem}
.bg-white{background:#fff}.rounded-md{border-radius:.375rem}.shadow-mild{box-shadow:0 1px 3px rgba(0,0,0,.1)}.p-4{padding:1rem}.p-1{padding:.25rem}
.flex{display:flex}.items-center{align-items:center}.justify-between{justify-content:space-between}.justify-center{justify-content:center}
.mb-4{margin-bottom:1rem}.mb-2{margin-bottom:.5rem}
.grid{display:grid}.grid-cols-7{grid-template-columns:repeat(7,minmax(0,1fr))}.gap-1{gap:.25rem}
.h-8{height:2rem}.w-8{width:2rem}.rounded-full{border-radius:9999px}
.text-sm{font-size:.875rem}.text-xs{font-size:.75rem}.font-semibold{font-weight:600}.font-medium{font-weight:500}
button{border:0;background:none;cursor:pointer}
a{color:inherit;text-decoration:none}
.bg-brand-green{background:#16a34a}.text-white{color:#fff}
.border{border:1px solid}.border-brand-green{border-color:#16a34a}.text-brand-green{color:#16a34a}
.hover\:bg-gray-100:hover{background:#f3f4f6}
.text-gray-300{color:#d1d5db}.cursor-not-allowed{cursor:not-allowed}
.pager{display:flex;gap:.25rem;justify-content:center;margin-top:.5rem}
.pager a,.pager span{min-width:1.75rem;text-align:center;padding:.125rem .25rem;border-radius:.25rem}
.pager [aria-current]{background:#16a34a;color:#fff}
`

// pageState is everything a rendered picker page depends on.
type pageState struct {
	view     calendar.MonthView
	cells    []calendar.Cell
	selected *calendar.Date
	layout   string
	holder   string
	siblings int
}

func pickerPage(state pageState) g.Node {
	return html.Doctype(
		html.HTML(
			html.Lang("en"),
			html.Head(
				html.Meta(html.Charset("utf-8")),
				html.Meta(html.Name("viewport"), html.Content("width=device-width, initial-scale=1")),
				html.TitleEl(g.Text(state.view.Title()+" | datepick")),
				html.StyleEl(g.Raw(stylesheet)),
			),
			html.Body(
				html.Main(
					html.Class("picker"),
					fieldNode(state),
					html.Div(
						html.ID("calendar"),
						CalendarNode(state.view, state.cells, state.selected, "/"),
					),
					MonthPagerNode(state.view, state.selected, state.siblings, "/"),
				),
			),
		),
	)
}

// fieldNode mirrors the closed picker: icon, value or placeholder, chevron.
func fieldNode(state pageState) g.Node {
	value := html.Span(html.Class("placeholder"), g.Text(state.holder))
	if state.selected != nil {
		value = html.Span(html.Class("value"), g.Text(calendar.Format(*state.selected, state.layout)))
	}
	return html.Div(
		html.Class("field open"),
		html.Span(html.Aria("hidden", "true"), g.Text("▦")),
		value,
		html.Span(html.Aria("hidden", "true"), g.Text("▴")),
	)
}
