// Package design models streamlet interfaces: named, documented ports
// carrying logical stream types, grouped into libraries and projects, and
// lowers them to wire-level interface descriptors using the tydi package.
package design

import (
	"strings"

	"github.com/Neumenon/tydi/tydi"
)

// PortDirection is the direction of a streamlet port.
type PortDirection uint8

const (
	// In accepts a stream from outside the streamlet.
	In PortDirection = iota
	// Out drives a stream to the outside.
	Out
)

// String returns the direction name.
func (d PortDirection) String() string {
	if d == Out {
		return "out"
	}
	return "in"
}

// Port is one named interface of a streamlet, carrying a logical stream
// type in one direction.
type Port struct {
	name      string
	direction PortDirection
	typ       *tydi.Type
	doc       string
}

// NewPort constructs a port. The name must follow the identifier rule.
func NewPort(name string, direction PortDirection, typ *tydi.Type) (Port, error) {
	if err := tydi.ValidateName(name); err != nil {
		return Port{}, err
	}
	if typ == nil {
		typ = tydi.Null()
	}
	return Port{name: name, direction: direction, typ: typ}, nil
}

// WithDoc returns a copy of the port with user documentation attached.
func (p Port) WithDoc(doc string) Port {
	p.doc = doc
	return p
}

// Name returns the port name.
func (p Port) Name() string { return p.name }

// Direction returns the port direction.
func (p Port) Direction() PortDirection { return p.direction }

// Type returns the port's logical stream type.
func (p Port) Type() *tydi.Type { return p.typ }

// Doc returns the port documentation, if any.
func (p Port) Doc() string { return p.doc }

// Streamlet is a hardware component interface: a named, ordered set of
// ports.
type Streamlet struct {
	name  string
	doc   string
	ports []Port
}

// NewStreamlet constructs a streamlet. The streamlet name and all port
// names must follow the identifier rule; port names must be unique
// case-insensitively.
func NewStreamlet(name string, ports ...Port) (*Streamlet, error) {
	if err := tydi.ValidateName(name); err != nil {
		return nil, err
	}
	if err := checkUnique(name, portNames(ports)); err != nil {
		return nil, err
	}
	out := make([]Port, len(ports))
	copy(out, ports)
	return &Streamlet{name: name, ports: out}, nil
}

// WithDoc attaches user documentation and returns the streamlet.
func (s *Streamlet) WithDoc(doc string) *Streamlet {
	s.doc = doc
	return s
}

// Name returns the streamlet name.
func (s *Streamlet) Name() string { return s.name }

// Doc returns the streamlet documentation, if any.
func (s *Streamlet) Doc() string { return s.doc }

// Ports returns the ports in declaration order. The returned slice must
// not be modified.
func (s *Streamlet) Ports() []Port { return s.ports }

// Port returns the named port, matching case-sensitively.
func (s *Streamlet) Port(name string) (Port, bool) {
	for _, p := range s.ports {
		if p.name == name {
			return p, true
		}
	}
	return Port{}, false
}

// Library is a named collection of streamlets.
type Library struct {
	name       string
	doc        string
	streamlets []*Streamlet
}

// NewLibrary constructs a library. Streamlet names must be unique
// case-insensitively within the library.
func NewLibrary(name string, streamlets ...*Streamlet) (*Library, error) {
	if err := tydi.ValidateName(name); err != nil {
		return nil, err
	}
	names := make([]string, len(streamlets))
	for i, s := range streamlets {
		names[i] = s.name
	}
	if err := checkUnique(name, names); err != nil {
		return nil, err
	}
	out := make([]*Streamlet, len(streamlets))
	copy(out, streamlets)
	return &Library{name: name, streamlets: out}, nil
}

// WithDoc attaches user documentation and returns the library.
func (l *Library) WithDoc(doc string) *Library {
	l.doc = doc
	return l
}

// Name returns the library name.
func (l *Library) Name() string { return l.name }

// Doc returns the library documentation, if any.
func (l *Library) Doc() string { return l.doc }

// Streamlets returns the streamlets in declaration order.
func (l *Library) Streamlets() []*Streamlet { return l.streamlets }

// Streamlet returns the named streamlet, matching case-sensitively.
func (l *Library) Streamlet(name string) (*Streamlet, bool) {
	for _, s := range l.streamlets {
		if s.name == name {
			return s, true
		}
	}
	return nil, false
}

// Project is a named collection of libraries.
type Project struct {
	name      string
	libraries []*Library
}

// NewProject constructs a project. Library names must be unique
// case-insensitively within the project.
func NewProject(name string, libraries ...*Library) (*Project, error) {
	if err := tydi.ValidateName(name); err != nil {
		return nil, err
	}
	names := make([]string, len(libraries))
	for i, l := range libraries {
		names[i] = l.name
	}
	if err := checkUnique(name, names); err != nil {
		return nil, err
	}
	out := make([]*Library, len(libraries))
	copy(out, libraries)
	return &Project{name: name, libraries: out}, nil
}

// Name returns the project name.
func (p *Project) Name() string { return p.name }

// Libraries returns the libraries in declaration order.
func (p *Project) Libraries() []*Library { return p.libraries }

func portNames(ports []Port) []string {
	names := make([]string, len(ports))
	for i, p := range ports {
		names[i] = p.name
	}
	return names
}

// checkUnique rejects case-insensitive name collisions within one scope.
func checkUnique(scope string, names []string) error {
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		key := strings.ToLower(name)
		if _, ok := seen[key]; ok {
			return &tydi.Error{
				Code:    tydi.CodeDuplicateName,
				Path:    scope + "." + name,
				Message: "name collides case-insensitively with an earlier name",
			}
		}
		seen[key] = struct{}{}
	}
	return nil
}
