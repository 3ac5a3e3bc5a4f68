package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/mcoot/mcmonitor/internal/api/response"
	"github.com/mcoot/mcmonitor/internal/dependencies/clock"
	"github.com/mcoot/mcmonitor/internal/model"
)

var (
	headerColor  = color.New(color.Bold)
	onlineColor  = color.New(color.FgGreen)
	offlineColor = color.New(color.FgRed)
	planColor    = color.New(color.FgYellow)
	lockedColor  = color.New(color.Faint)
)

// Output formats command results as text or JSON
type Output struct {
	w      io.Writer
	format string
	now    func() time.Time
}

// NewOutput creates a new Output writing to w
func NewOutput(w io.Writer, format string) *Output {
	return &Output{w: w, format: format, now: time.Now}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == OutputJSON {
		o.printJSON(data)
		return
	}

	switch v := data.(type) {
	case response.Health:
		fmt.Fprintf(o.w, "Status: %s\n", v.Status)
	case response.ServerList:
		o.printServerList(v)
	case response.Server:
		o.printServer(v)
	case response.GuildList:
		o.printGuildList(v)
	default:
		o.printJSON(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == OutputJSON {
		o.printJSON(map[string]string{"message": msg})
		return
	}
	fmt.Fprintln(o.w, msg)
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printServerList(l response.ServerList) {
	if len(l.Servers) == 0 {
		fmt.Fprintln(o.w, "No servers found.")
		return
	}

	t := newTable("ID", "NAME", "IP", "TYPE", "STATUS", "PLAYERS")
	for _, s := range l.Servers {
		t.addRow(
			[]string{s.ID, s.Name, s.IP, model.Category(s.Type).Label(), s.Status, strconv.Itoa(s.PlayersOnline)},
			nil, nil, nil, nil, statusColor(s.Status), nil,
		)
	}
	t.write(o.w)
	fmt.Fprintf(o.w, "\n%d of %d servers\n", len(l.Servers), l.Total)
}

func (o *Output) printServer(s response.Server) {
	fmt.Fprintf(o.w, "Server: %s (%s)\n", headerColor.Sprint(s.Name), s.ID)
	fmt.Fprintf(o.w, "IP: %s\n", s.IP)
	fmt.Fprintf(o.w, "Type: %s\n", model.Category(s.Type).Label())
	fmt.Fprintf(o.w, "Status: %s\n", statusColor(s.Status).Sprint(s.Status))
	fmt.Fprintf(o.w, "Players: %d\n", s.PlayersOnline)
	fmt.Fprintf(o.w, "Version: %s\n", s.Version)
	fmt.Fprintf(o.w, "Plan: %s\n", planColor.Sprint(model.Plan(s.Plan).Label()))
	fmt.Fprintf(o.w, "Listed: %s\n", clock.Ago(o.now(), s.CreatedAt))
}

func (o *Output) printGuildList(l response.GuildList) {
	if len(l.Guilds) == 0 {
		fmt.Fprintln(o.w, "No servers with MC Monitor found.")
		return
	}

	t := newTable("ID", "NAME", "STATUS", "PLAN", "FEATURES")
	for _, g := range l.Guilds {
		features := featureList(g.Features)
		var featureStyle *color.Color
		if features == "locked" {
			featureStyle = lockedColor
		}
		t.addRow(
			[]string{g.ID, g.Name, g.Status, model.Plan(g.Plan).Label(), features},
			nil, nil, statusColor(g.Status), planColor, featureStyle,
		)
	}
	t.write(o.w)
}

func featureList(f response.Features) string {
	var names []string
	if f.Metrics {
		names = append(names, "metrics")
	}
	if f.Console {
		names = append(names, "console")
	}
	if f.History {
		names = append(names, "history")
	}
	if len(names) == 0 {
		return "locked"
	}
	return strings.Join(names, ",")
}

func statusColor(status string) *color.Color {
	if status == model.ServerOnline {
		return onlineColor
	}
	return offlineColor
}

// table aligns plain cells into columns. Colors are applied after padding so
// escape codes do not count towards the column width.
type table struct {
	headers []string
	rows    [][]string
	colors  [][]*color.Color
}

func newTable(headers ...string) *table {
	return &table{headers: headers}
}

func (t *table) addRow(cells []string, colors ...*color.Color) {
	t.rows = append(t.rows, cells)
	t.colors = append(t.colors, colors)
}

func (t *table) write(w io.Writer) {
	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = len(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	writeLine := func(cells []string, colors []*color.Color) {
		var sb strings.Builder
		for i, cell := range cells {
			padded := cell
			if i < len(cells)-1 {
				padded += strings.Repeat(" ", widths[i]-len(cell)+2)
			}
			if i < len(colors) && colors[i] != nil {
				padded = colors[i].Sprint(padded)
			}
			sb.WriteString(padded)
		}
		fmt.Fprintln(w, strings.TrimRight(sb.String(), " "))
	}

	headerColors := make([]*color.Color, len(t.headers))
	for i := range headerColors {
		headerColors[i] = headerColor
	}
	writeLine(t.headers, headerColors)
	for i, row := range t.rows {
		writeLine(row, t.colors[i])
	}
}
