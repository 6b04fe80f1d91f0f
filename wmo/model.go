package wmo

import (
	"fmt"

	"github.com/ptolstoi/warcraftassets/strtab"
	"github.com/ptolstoi/warcraftassets/warcraft"
)

// PlaceholderTexture is substituted for a material texture whose offset does
// not resolve in the texture table, and for an empty first texture.
const PlaceholderTexture = "createcrappygreentexture.blp"

// State is the lifecycle state of a Model.
type State int

// States.
const (
	StateUnloaded State = iota
	StateRootLoaded
	StateGroupsAttached
	StateResolved
	StateClosed
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case StateUnloaded:
		return "unloaded"
	case StateRootLoaded:
		return "root loaded"
	case StateGroupsAttached:
		return "groups attached"
	case StateResolved:
		return "resolved"
	case StateClosed:
		return "closed"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Model is a world model object: a root file plus the groups it declares.
//
// A Model is not safe for concurrent use.
type Model struct {
	version warcraft.Version
	state   State
	root    *Root
	groups  []*Group
}

// LoadRoot decodes a root file into a Model.
func LoadRoot(data []byte, version warcraft.Version) (*Model, error) {
	root, err := DecodeRoot(data, version)
	if err != nil {
		return nil, err
	}

	return &Model{
		version: version,
		state:   StateRootLoaded,
		root:    root,
	}, nil
}

func (m *Model) checkAttachable() error {
	switch m.state {
	case StateRootLoaded, StateGroupsAttached:
		return nil

	case StateClosed:
		return ErrClosed
	}

	return fmt.Errorf("%w: cannot attach groups when %v", ErrInvalidState, m.state)
}

// Owns checks whether g can be attached: the root must declare it, it must
// not be attached already, and the declared group count must not be reached.
func (m *Model) Owns(g *Group) error {
	if err := m.checkAttachable(); err != nil {
		return err
	}

	if err := m.root.Owns(g); err != nil {
		return err
	}

	for _, attached := range m.groups {
		if attached.Data.Header.NameOffset == g.Data.Header.NameOffset {
			return fmt.Errorf("%w: group at name offset %d is already attached",
				ErrGroupNotOwned, g.Data.Header.NameOffset)
		}
	}

	if len(m.groups) >= m.DeclaredGroupCount() {
		return fmt.Errorf("%w: all %d declared groups are attached", ErrGroupNotOwned, m.DeclaredGroupCount())
	}

	return nil
}

// Attach appends g to the model and names it from the root's group names.
// It returns false, leaving the model unchanged, if the model does not own g.
func (m *Model) Attach(g *Group) (bool, error) {
	if err := m.checkAttachable(); err != nil {
		return false, err
	}

	if err := m.Owns(g); err != nil {
		return false, nil //nolint:nilerr
	}

	g.Name = m.root.GroupName(g)
	g.DescriptiveName = m.root.DescriptiveGroupName(g)
	m.groups = append(m.groups, g)
	m.state = StateGroupsAttached

	return true, nil
}

// AddGroup decodes a group file and attaches it.
// Decoding errors are returned; a group the model does not own is not an error.
func (m *Model) AddGroup(data []byte) (bool, error) {
	if err := m.checkAttachable(); err != nil {
		return false, err
	}

	g, err := DecodeGroup(data, m.version)
	if err != nil {
		return false, err
	}

	return m.Attach(g)
}

// ResolveReferences fills the display fields of doodad instances and materials
// from the root's string tables. Canonical fields are left untouched.
// It runs once; calls on a resolved model do nothing.
func (m *Model) ResolveReferences() error {
	switch m.state {
	case StateResolved:
		return nil

	case StateClosed:
		return ErrClosed

	case StateUnloaded:
		return fmt.Errorf("%w: cannot resolve when %v", ErrInvalidState, m.state)
	}

	doodadNames := m.root.DoodadNames.Table()
	for _, d := range m.root.DoodadInstances.Instances {
		d.Name, _ = doodadNames.Lookup(d.NameOffset())
	}

	textures := m.root.Textures.Table()
	for _, mat := range m.root.Materials.Materials {
		mat.Texture0 = resolveTexture(textures, mat.FirstTextureOffset, true)
		mat.Texture1 = resolveTexture(textures, mat.SecondTextureOffset, false)
		mat.Texture2 = resolveTexture(textures, mat.ThirdTextureOffset, false)
	}

	m.state = StateResolved
	return nil
}

func resolveTexture(textures *strtab.Table, offset uint32, first bool) string {
	s, ok := textures.Lookup(offset)
	if !ok || (first && s == "") {
		return PlaceholderTexture
	}
	return s
}

// Close releases the decoded chunks and buffers. The model is unusable afterwards.
func (m *Model) Close() {
	m.root = nil
	m.groups = nil
	m.state = StateClosed
}

// State returns the lifecycle state.
func (m *Model) State() State {
	return m.state
}

// Version returns the version the model was decoded with.
func (m *Model) Version() warcraft.Version {
	return m.version
}

// Root returns the decoded root file.
func (m *Model) Root() *Root {
	return m.root
}

// DeclaredGroupCount returns the number of groups declared by the root header.
func (m *Model) DeclaredGroupCount() int {
	if m.root == nil {
		return 0
	}
	return int(m.root.Header.GroupCount)
}

// GroupCount returns the number of attached groups.
func (m *Model) GroupCount() int {
	return len(m.groups)
}

// Groups returns the attached groups in attachment order.
func (m *Model) Groups() []*Group {
	return append([]*Group(nil), m.groups...)
}

// Materials returns the materials of the model.
func (m *Model) Materials() []*Material {
	if m.root == nil {
		return nil
	}
	return append([]*Material(nil), m.root.Materials.Materials...)
}

// Material returns the material at index i.
func (m *Model) Material(i int) (*Material, error) {
	if m.root == nil {
		return nil, ErrClosed
	}

	if i < 0 || i >= len(m.root.Materials.Materials) {
		return nil, fmt.Errorf("%w: %d (have %d)", ErrMaterialIndex, i, len(m.root.Materials.Materials))
	}

	return m.root.Materials.Materials[i], nil
}

// Textures returns the non-empty texture paths of the texture table.
func (m *Model) Textures() []string {
	if m.root == nil {
		return nil
	}
	return m.root.Textures.Table().Strings()
}

// DoodadInstances returns the placed doodads of the model.
func (m *Model) DoodadInstances() []*DoodadInstance {
	if m.root == nil {
		return nil
	}
	return append([]*DoodadInstance(nil), m.root.DoodadInstances.Instances...)
}

// Encode serializes the root file. Resolution never changes its output.
func (m *Model) Encode() ([]byte, error) {
	if m.root == nil {
		return nil, ErrClosed
	}
	return m.root.Encode(m.version)
}
