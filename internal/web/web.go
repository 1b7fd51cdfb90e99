// Package web holds the HTML templates and the helpers they call.
package web

import (
	"bytes"
	"embed"
	"html/template"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/yuin/goldmark"

	domain "github.com/BruksfildServices01/appointme-client/internal/domain/appointment"
)

//go:embed templates/*.html
var templateFS embed.FS

type Options struct {
	// FileURL turns a stored image filename into a URL the browser can load.
	FileURL func(filename string) string
}

// Templates parses every page. The entry point is the "base" template,
// which picks the page body from .Page.
func Templates(opts Options) (*template.Template, error) {
	return template.New("").Funcs(Funcs(opts)).ParseFS(templateFS, "templates/*.html")
}

func Funcs(opts Options) template.FuncMap {
	md := goldmark.New()
	fileURL := opts.FileURL
	if fileURL == nil {
		fileURL = func(s string) string { return s }
	}

	return template.FuncMap{
		"markdown":    func(s string) template.HTML { return Markdown(md, s) },
		"money":       Money,
		"clockLabel":  ClockLabel,
		"clockInput":  ClockInput,
		"statusLabel": StatusLabel,
		"statusClass": StatusClass,
		"weekday":     func(d int) string { return time.Weekday(d).String() },
		"weekdays":    Weekdays,
		"statuses":    Statuses,
		"fileURL":     fileURL,
		"initial":     Initial,
		"imageSlot":   NewImageSlot,
		"weekdaySelect": func(selected int) WeekdaySelect {
			return WeekdaySelect{Options: Weekdays(), Selected: selected}
		},
	}
}

// Markdown renders user text. Raw HTML in the source is not passed through.
func Markdown(md goldmark.Markdown, src string) template.HTML {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(buf.String())
}

func Money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

// ClockLabel turns a backend time ("14:30:00") into "2:30 PM".
func ClockLabel(s string) string {
	c, err := domain.ParseClock(s)
	if err != nil {
		return s
	}
	return c.Label()
}

// ClockInput turns a backend time into the value of an <input type=time>.
func ClockInput(s string) string {
	c, err := domain.ParseClock(s)
	if err != nil {
		return s
	}
	return c.String()
}

var statusLabels = map[string]string{
	string(domain.StatusPending):   "Pending",
	string(domain.StatusConfirmed): "Confirmed",
	string(domain.StatusCompleted): "Completed",
	string(domain.StatusCancelled): "Cancelled",
	string(domain.StatusRejected):  "Rejected",
	string(domain.StatusNoShow):    "No-show",
}

func StatusLabel(s string) string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return s
}

func StatusClass(s string) string {
	switch domain.Status(s) {
	case domain.StatusPending:
		return "badge badge-warning"
	case domain.StatusConfirmed:
		return "badge badge-info"
	case domain.StatusCompleted:
		return "badge badge-success"
	case domain.StatusCancelled, domain.StatusRejected:
		return "badge badge-danger"
	case domain.StatusNoShow:
		return "badge badge-muted"
	}
	return "badge"
}

type WeekdayOption struct {
	Value int
	Name  string
}

// Weekdays lists the days in the 0 = Sunday numbering used by the backend
// availability windows.
func Weekdays() []WeekdayOption {
	out := make([]WeekdayOption, 0, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		out = append(out, WeekdayOption{Value: int(d), Name: d.String()})
	}
	return out
}

type WeekdaySelect struct {
	Options  []WeekdayOption
	Selected int
}

// ImageSlot is one of the business image upload widgets.
type ImageSlot struct {
	Kind     string
	Title    string
	Filename string
	CSRF     template.HTML
}

// NewImageSlot builds the widget data, taking the CSRF field from the
// page data.
func NewImageSlot(page map[string]any, kind, title, filename string) ImageSlot {
	csrf, _ := page["CSRF"].(template.HTML)
	return ImageSlot{Kind: kind, Title: title, Filename: filename, CSRF: csrf}
}

func Statuses() []string {
	out := make([]string, 0, len(domain.AllStatuses))
	for _, s := range domain.AllStatuses {
		out = append(out, string(s))
	}
	return out
}

// Initial is the avatar letter for a name.
func Initial(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "?"
	}
	return strings.ToUpper(string([]rune(name)[0]))
}
