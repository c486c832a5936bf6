package design

import (
	"io"

	"gopkg.in/yaml.v3"
)

// The YAML descriptor layout is the contract with port-list backends:
// every physical stream with its E/N/D/C/U parameters plus the resolved
// wire names and widths. Backends consume this instead of linking the
// core.

type projectDoc struct {
	Project   string       `yaml:"project"`
	Libraries []libraryDoc `yaml:"libraries"`
}

type libraryDoc struct {
	Library    string         `yaml:"library"`
	Streamlets []streamletDoc `yaml:"streamlets"`
}

type streamletDoc struct {
	Streamlet string    `yaml:"streamlet"`
	Ports     []portDoc `yaml:"ports"`
}

type portDoc struct {
	Port      string      `yaml:"port"`
	Direction string      `yaml:"direction"`
	Signals   []wireDoc   `yaml:"signals,omitempty"`
	Streams   []streamDoc `yaml:"streams,omitempty"`
}

type streamDoc struct {
	Path           string    `yaml:"path,omitempty"`
	ElementBits    int       `yaml:"element_bits"`
	Lanes          int       `yaml:"lanes"`
	Dimensionality int       `yaml:"dimensionality"`
	Complexity     string    `yaml:"complexity"`
	UserBits       int       `yaml:"user_bits"`
	Wires          []wireDoc `yaml:"wires"`
}

type wireDoc struct {
	Name  string `yaml:"name"`
	Width int    `yaml:"width"`
}

// ExportYAML writes the lowered project as a YAML descriptor document.
func ExportYAML(w io.Writer, p *ProjectInterface) error {
	doc := projectDoc{Project: p.Name}
	for _, lib := range p.Libraries {
		ld := libraryDoc{Library: lib.Name}
		for _, sl := range lib.Streamlets {
			ld.Streamlets = append(ld.Streamlets, streamletToDoc(sl))
		}
		doc.Libraries = append(doc.Libraries, ld)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}

// ExportStreamletYAML writes one lowered streamlet as a YAML descriptor
// document.
func ExportStreamletYAML(w io.Writer, s *StreamletInterface) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(streamletToDoc(s)); err != nil {
		return err
	}
	return enc.Close()
}

func streamletToDoc(s *StreamletInterface) streamletDoc {
	doc := streamletDoc{Streamlet: s.Name}
	for _, port := range s.Ports {
		pd := portDoc{
			Port:      port.Name,
			Direction: port.Direction.String(),
		}
		for _, w := range port.Signals {
			pd.Signals = append(pd.Signals, wireDoc(w))
		}
		for _, si := range port.Streams {
			sd := streamDoc{
				Path:           si.Path,
				ElementBits:    si.Stream.ElementFields().BitCount(),
				Lanes:          si.Stream.ElementLanes(),
				Dimensionality: si.Stream.Dimensionality(),
				Complexity:     si.Stream.Complexity().String(),
				UserBits:       si.Stream.UserBitCount(),
			}
			for _, w := range si.Wires {
				sd.Wires = append(sd.Wires, wireDoc(w))
			}
			pd.Streams = append(pd.Streams, sd)
		}
		doc.Ports = append(doc.Ports, pd)
	}
	return doc
}
