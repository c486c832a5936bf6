package design

import (
	"context"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/Neumenon/tydi/tydi"
)

// Wire is one emitted signal: a lowercase hierarchical name and a bit
// width. Names join the port name to the stream path with a single
// underscore and keep the double underscores of internal hierarchy, so
// they stay unambiguous in case-insensitive backends such as VHDL.
type Wire struct {
	Name  string
	Width int
}

// StreamInterface is the wire-level form of one physical stream of a
// port. Path is the stream's hierarchical name within the port's type;
// the root stream has an empty path.
type StreamInterface struct {
	Path   string
	Stream tydi.PhysicalStream
	Wires  []Wire
}

// PortInterface is the wire-level form of one port: its asynchronous
// signal wires plus one entry per physical stream.
type PortInterface struct {
	Name      string
	Direction PortDirection
	Signals   []Wire
	Streams   []StreamInterface
}

// StreamletInterface is the fully lowered interface of a streamlet.
type StreamletInterface struct {
	Name  string
	Ports []PortInterface
}

// LibraryInterface groups the lowered streamlets of one library.
type LibraryInterface struct {
	Name       string
	Streamlets []*StreamletInterface
}

// ProjectInterface is the lowered form of a whole project.
type ProjectInterface struct {
	Name      string
	Libraries []LibraryInterface
}

// SynthesizeStreamlet lowers every port of a streamlet to its physical
// representation and derives the emitted wire names.
func SynthesizeStreamlet(s *Streamlet) (*StreamletInterface, error) {
	out := &StreamletInterface{
		Name:  s.Name(),
		Ports: make([]PortInterface, 0, len(s.Ports())),
	}
	for _, port := range s.Ports() {
		ls, err := tydi.Synthesize(port.Type())
		if err != nil {
			return nil, err
		}

		pi := PortInterface{
			Name:      port.Name(),
			Direction: port.Direction(),
		}
		for _, f := range ls.Signals {
			pi.Signals = append(pi.Signals, Wire{
				Name:  wireName(port.Name(), f.Name.String(), ""),
				Width: f.Width,
			})
		}
		for _, ns := range ls.Streams {
			si := StreamInterface{
				Path:   ns.Name.String(),
				Stream: ns.Stream,
			}
			for _, sig := range ns.Stream.SignalMap().Signals() {
				si.Wires = append(si.Wires, Wire{
					Name:  wireName(port.Name(), ns.Name.String(), sig.Name),
					Width: sig.Width,
				})
			}
			pi.Streams = append(pi.Streams, si)
		}
		out.Ports = append(out.Ports, pi)
	}
	return out, nil
}

// SynthesizeProject lowers every streamlet of every library. Streamlets
// have no data dependency on each other, so they are synthesized in
// parallel; declaration order is preserved in the result. A nil logger
// falls back to slog.Default().
func SynthesizeProject(ctx context.Context, p *Project, logger *slog.Logger) (*ProjectInterface, error) {
	if logger == nil {
		logger = slog.Default()
	}

	out := &ProjectInterface{
		Name:      p.Name(),
		Libraries: make([]LibraryInterface, len(p.Libraries())),
	}
	g, ctx := errgroup.WithContext(ctx)
	for i, lib := range p.Libraries() {
		i, lib := i, lib
		out.Libraries[i] = LibraryInterface{
			Name:       lib.Name(),
			Streamlets: make([]*StreamletInterface, len(lib.Streamlets())),
		}
		for j, sl := range lib.Streamlets() {
			j, sl := j, sl
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				si, err := SynthesizeStreamlet(sl)
				if err != nil {
					logger.Error("streamlet synthesis failed",
						"library", lib.Name(), "streamlet", sl.Name(), "error", err)
					return err
				}
				logger.Debug("streamlet synthesized",
					"library", lib.Name(), "streamlet", sl.Name(), "ports", len(si.Ports))
				out.Libraries[i].Streamlets[j] = si
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	logger.Info("project synthesized", "project", p.Name(), "libraries", len(out.Libraries))
	return out, nil
}

// wireName joins a port name, a stream path, and a signal name into the
// emitted wire name: single underscores between the three levels, the
// double underscores of the path kept intact, everything lowercase.
func wireName(port, path, signal string) string {
	parts := make([]string, 0, 3)
	parts = append(parts, port)
	if path != "" {
		parts = append(parts, path)
	}
	if signal != "" {
		parts = append(parts, signal)
	}
	return strings.ToLower(strings.Join(parts, "_"))
}
