package sim

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/hepex/mupair"
)

// RecordSize is the size in bytes of one on-disk event record:
// energy, cos(theta), phi and weight as little-endian float64 bits.
const RecordSize = 4 * 8

// EventWriter encodes events as fixed-size binary records on a
// buffered stream.
type EventWriter struct {
	w   *bufio.Writer
	c   io.Closer
	buf [RecordSize]byte
}

// NewEventWriter returns an EventWriter on w. If w is an io.Closer,
// Close closes it after flushing.
func NewEventWriter(w io.Writer) *EventWriter {
	ew := &EventWriter{w: bufio.NewWriter(w)}
	if c, ok := w.(io.Closer); ok {
		ew.c = c
	}
	return ew
}

// Write appends one event record.
func (ew *EventWriter) Write(ev mupair.Event[float64]) error {
	binary.LittleEndian.PutUint64(ew.buf[0*8:1*8], math.Float64bits(ev.Energy))
	binary.LittleEndian.PutUint64(ew.buf[1*8:2*8], math.Float64bits(ev.CosTheta))
	binary.LittleEndian.PutUint64(ew.buf[2*8:3*8], math.Float64bits(ev.Phi))
	binary.LittleEndian.PutUint64(ew.buf[3*8:4*8], math.Float64bits(ev.Weight))
	if _, err := ew.w.Write(ew.buf[:]); err != nil {
		return fmt.Errorf("sim: write event record: %w", err)
	}
	return nil
}

// Flush writes out any buffered records.
func (ew *EventWriter) Flush() error {
	if err := ew.w.Flush(); err != nil {
		return fmt.Errorf("sim: flush event records: %w", err)
	}
	return nil
}

// Close flushes and, when the underlying writer is closable, closes
// it.
func (ew *EventWriter) Close() error {
	if err := ew.Flush(); err != nil {
		return err
	}
	if ew.c != nil {
		if err := ew.c.Close(); err != nil {
			return fmt.Errorf("sim: close event stream: %w", err)
		}
	}
	return nil
}

// EventReader decodes the records written by EventWriter.
type EventReader struct {
	r   *bufio.Reader
	buf [RecordSize]byte
}

// NewEventReader returns an EventReader on r.
func NewEventReader(r io.Reader) *EventReader {
	return &EventReader{r: bufio.NewReader(r)}
}

// Read decodes the next event record. It returns io.EOF at a clean end
// of stream and an error wrapping io.ErrUnexpectedEOF when the stream
// ends inside a record.
func (er *EventReader) Read() (mupair.Event[float64], error) {
	var ev mupair.Event[float64]
	if _, err := io.ReadFull(er.r, er.buf[:]); err != nil {
		if err == io.EOF {
			return ev, io.EOF
		}
		return ev, fmt.Errorf("sim: read event record: %w", io.ErrUnexpectedEOF)
	}
	ev.Energy = math.Float64frombits(binary.LittleEndian.Uint64(er.buf[0*8 : 1*8]))
	ev.CosTheta = math.Float64frombits(binary.LittleEndian.Uint64(er.buf[1*8 : 2*8]))
	ev.Phi = math.Float64frombits(binary.LittleEndian.Uint64(er.buf[2*8 : 3*8]))
	ev.Weight = math.Float64frombits(binary.LittleEndian.Uint64(er.buf[3*8 : 4*8]))
	return ev, nil
}

// ReadAllEvents decodes every record remaining on r.
func ReadAllEvents(r io.Reader) ([]mupair.Event[float64], error) {
	er := NewEventReader(r)
	var evs []mupair.Event[float64]
	for {
		ev, err := er.Read()
		if err == io.EOF {
			return evs, nil
		}
		if err != nil {
			return evs, err
		}
		evs = append(evs, ev)
	}
}
