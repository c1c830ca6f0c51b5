// Package info reports where the board lives and how it is configured.
package info

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/tally/pkg/app"
	"tableflip.dev/tally/pkg/store"
)

type Info struct {
	Config store.Config
	Slot   store.Slot
	Board  *app.Board
	Out    io.Writer
}

func (n *Info) Do(_ context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if override := os.Getenv("TALLY_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintln(out, "TALLY_CONFIG_PATH found on env, using", override)
	} else {
		_, _ = fmt.Fprintln(out, "TALLY_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		if n.Config, err = store.LoadConfig(); err != nil {
			return err
		}
	}
	s := n.Config.Settings()
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("path"), n.Config.BasePath())
	tbl.AddRow(bold.Sprint("backend"), s.Backend)
	tbl.AddRow(bold.Sprint("key"), store.StorageKey)
	tbl.AddRow(bold.Sprint("schema"), store.SchemaVersion)
	if loc := location(n.Slot); loc != "" {
		tbl.AddRow(bold.Sprint("slot"), loc)
	}
	tbl.AddRow(bold.Sprint("long press"), s.Press.Threshold)
	tbl.AddRow(bold.Sprint("log level"), s.Log.Level)
	if n.Board != nil {
		tbl.AddRow(bold.Sprint("counters"), app.Summary(len(n.Board.Snapshot().Counters)))
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(out, tbl)
	return nil
}

func location(slot store.Slot) string {
	switch s := slot.(type) {
	case *store.DiskvSlot:
		return s.PathFor(store.StorageKey)
	case *store.SQLiteSlot:
		return s.Path()
	case *store.RedisSlot:
		return s.Addr()
	default:
		return ""
	}
}
