package export

import (
	"errors"
	"fmt"

	"github.com/five82/approvals/internal/notify"
	"github.com/five82/approvals/internal/sessions"
)

// Filename is the name given to every export.
const Filename = "approvals.csv"

// ErrNothingToExport is returned when the record set is empty.
var ErrNothingToExport = errors.New("no requests to export")

// Adapter encodes a record set and hands it to an Exporter, reporting the
// outcome through Sink. It never modifies the records it is given.
type Adapter struct {
	Exporter Exporter
	Sink     notify.Sink
}

// Run exports the full record set regardless of any view applied to it.
func (a Adapter) Run(records []sessions.Record) error {
	err := a.run(records)
	if err != nil {
		a.notify(notify.Error("Export failed", err))
		return err
	}
	a.notify(notify.Notice{
		Level:   notify.LevelSuccess,
		Header:  "Export complete",
		Message: fmt.Sprintf("%d requests written to %s", len(records), Filename),
	})
	return nil
}

func (a Adapter) run(records []sessions.Record) error {
	if len(records) == 0 {
		return ErrNothingToExport
	}
	if a.Exporter == nil {
		return errors.New("no exporter configured")
	}
	data, err := Encode(records)
	if err != nil {
		return fmt.Errorf("encode requests: %w", err)
	}
	if err := a.Exporter.Export(data, Filename); err != nil {
		return fmt.Errorf("export %s: %w", Filename, err)
	}
	return nil
}

func (a Adapter) notify(n notify.Notice) {
	if a.Sink != nil {
		a.Sink.Notify([]notify.Notice{n})
	}
}
