package printers

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	json "github.com/goccy/go-json"
	"github.com/gosuri/uitable"
	"github.com/muesli/termenv"

	"tableflip.dev/tally/pkg/app"
	"tableflip.dev/tally/pkg/counter"
)

// PrettyPrint renders counters for the terminal.
type PrettyPrint struct {
	Out     io.Writer
	ShowID  bool
	Profile termenv.Profile
}

// NewPrettyPrint writes to color.Output with the colour profile of the
// environment.
func NewPrettyPrint(showID bool) *PrettyPrint {
	return &PrettyPrint{
		Out:     color.Output,
		ShowID:  showID,
		Profile: termenv.EnvColorProfile(),
	}
}

func (pp *PrettyPrint) out() io.Writer {
	return Output(pp.Out)
}

// Output falls back to color.Output when w is nil.
func Output(w io.Writer) io.Writer {
	if w == nil {
		return color.Output
	}
	return w
}

// TitleWithCount prints a heading followed by the row count.
func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %s\n", app.Summary(count))
}

// Board prints one row per counter: a colour swatch, the name and the score.
func (pp *PrettyPrint) Board(counters ...counter.Counter) {
	if len(counters) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), " no counters yet, add one with `tally add`\n\n")
		return
	}

	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	neg := color.New(color.FgRed, color.Bold)
	pos := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, c := range counters {
		score := pos.Sprint(strconv.Itoa(c.Score))
		if c.Negative() {
			score = neg.Sprint(strconv.Itoa(c.Score))
		}
		row := []interface{}{pp.Swatch(c.Color), c.Name, score}
		if pp.ShowID {
			row = append([]interface{}{y.Sprint(c.ID)}, row...)
		}
		tbl.AddRow(row...)
	}
	tbl.RightAlign(len(tbl.Rows[0].Cells) - 1)

	_, _ = fmt.Fprintln(pp.out(), tbl)
	_, _ = fmt.Fprintln(pp.out(), "")
}

// Counter prints a single counter on one line.
func (pp *PrettyPrint) Counter(c counter.Counter) {
	id := ""
	if pp.ShowID {
		id = color.New(color.FgHiYellow, color.Faint).Sprint(c.ID) + " "
	}
	_, _ = fmt.Fprintf(pp.out(), "%s%s %s %d\n", id, pp.Swatch(c.Color), c.Name, c.Score)
}

// Swatch is a two-cell block in the counter's colour. Without colour support
// the hex value is shown instead.
func (pp *PrettyPrint) Swatch(hex string) string {
	if pp.Profile == termenv.Ascii {
		return hex
	}
	return pp.Profile.String("  ").Background(pp.Profile.Color(hex)).String()
}

// JSON writes counters as an indented JSON array.
func JSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(Output(w), string(data))
	return err
}
