// Package storage persists the contents of tables as named sections of cells, together with
// exported symbols that name individual cells inside those sections. Images are encoded as
// CBOR with section contents in little-endian byte order, so an image written on one host can
// be read on any other.
package storage

import (
	cerrors "github.com/cockroachdb/errors"
	"github.com/vkngwrapper/relmem/cell"
	"github.com/vkngwrapper/relmem/memref"
	"github.com/vkngwrapper/relmem/space"
)

// Section is a named run of cells. When an image is attached to a space, each section becomes
// one table.
type Section struct {
	Name  string
	Units []cell.Unit
}

// Symbol names a cell inside one of the image's sections
type Symbol struct {
	Name string
	// Section is the index of the owning section in Image.Sections
	Section int
	// Offset is measured in cells from the start of the section
	Offset int
}

// Property is a named opaque value carried alongside the sections
type Property struct {
	Name  string
	Value []byte
}

// Image is the in-memory form of a persisted set of sections
type Image struct {
	// Format is an application-defined tag describing the image's contents
	Format     uint32
	Sections   []Section
	Symbols    []Symbol
	Properties []Property
}

// MatchesFormat reports whether the image's format tag equals magic under mask
func (i *Image) MatchesFormat(mask, magic uint32) bool {
	return i.Format&mask == magic
}

// Validate checks that names are unique within each kind and that every symbol addresses a
// cell that exists
func (i *Image) Validate() error {
	sectionNames := make(map[string]struct{}, len(i.Sections))
	for _, section := range i.Sections {
		if _, exists := sectionNames[section.Name]; exists {
			return cerrors.Wrapf(ErrDuplicateName, "section %q", section.Name)
		}
		sectionNames[section.Name] = struct{}{}
	}

	symbolNames := make(map[string]struct{}, len(i.Symbols))
	for _, symbol := range i.Symbols {
		if _, exists := symbolNames[symbol.Name]; exists {
			return cerrors.Wrapf(ErrDuplicateName, "symbol %q", symbol.Name)
		}
		symbolNames[symbol.Name] = struct{}{}

		if symbol.Section < 0 || symbol.Section >= len(i.Sections) {
			return cerrors.Wrapf(ErrInvalidSymbol, "symbol %q refers to section %d of %d", symbol.Name, symbol.Section, len(i.Sections))
		}

		size := len(i.Sections[symbol.Section].Units)
		if symbol.Offset < 0 || symbol.Offset >= size {
			return cerrors.Wrapf(ErrInvalidSymbol, "symbol %q at offset %d in a section of %d cells", symbol.Name, symbol.Offset, size)
		}
	}

	propertyNames := make(map[string]struct{}, len(i.Properties))
	for _, property := range i.Properties {
		if _, exists := propertyNames[property.Name]; exists {
			return cerrors.Wrapf(ErrDuplicateName, "property %q", property.Name)
		}
		propertyNames[property.Name] = struct{}{}
	}

	return nil
}

// Lookup returns the symbol called name
func (i *Image) Lookup(name string) (Symbol, bool) {
	for _, symbol := range i.Symbols {
		if symbol.Name == name {
			return symbol, true
		}
	}
	return Symbol{}, false
}

// SectionIndex returns the index of the section called name
func (i *Image) SectionIndex(name string) (int, bool) {
	for index, section := range i.Sections {
		if section.Name == name {
			return index, true
		}
	}
	return -1, false
}

// Property returns the value of the property called name
func (i *Image) Property(name string) ([]byte, bool) {
	for _, property := range i.Properties {
		if property.Name == name {
			return property.Value, true
		}
	}
	return nil, false
}

// Attach attaches every section to s as a table, section i at table index firstIndex+i. The
// tables share storage with the image. If any section cannot be attached, the sections already
// attached by this call are detached again.
func (i *Image) Attach(s *space.Space, firstIndex uint64) error {
	for sectionIndex, section := range i.Sections {
		err := s.Attach(firstIndex+uint64(sectionIndex), section.Units)
		if err != nil {
			err = cerrors.Wrapf(err, "could not attach section %q", section.Name)
			return cerrors.CombineErrors(err, detachSections(s, firstIndex, sectionIndex))
		}
	}
	return nil
}

// Detach removes the tables a previous call to Attach with the same firstIndex created. Every
// table is detached even if some are already missing; the failures are combined.
func (i *Image) Detach(s *space.Space, firstIndex uint64) error {
	return detachSections(s, firstIndex, len(i.Sections))
}

func detachSections(s *space.Space, firstIndex uint64, count int) error {
	var result error
	for sectionIndex := 0; sectionIndex < count; sectionIndex++ {
		_, err := s.Detach(firstIndex + uint64(sectionIndex))
		if err != nil {
			result = cerrors.CombineErrors(result, err)
		}
	}
	return result
}

// SymbolRef returns a far reference to the symbol called name, assuming the image was attached
// at firstIndex in a space using format
func (i *Image) SymbolRef(name string, firstIndex uint64, format memref.Format) (memref.Ref, error) {
	symbol, ok := i.Lookup(name)
	if !ok {
		return 0, cerrors.Wrapf(ErrNoSymbol, "%q", name)
	}

	if symbol.Section < 0 || symbol.Section >= len(i.Sections) {
		return 0, cerrors.Wrapf(ErrInvalidSymbol, "symbol %q refers to section %d of %d", symbol.Name, symbol.Section, len(i.Sections))
	}

	return format.Far(uint64(symbol.Offset), firstIndex+uint64(symbol.Section))
}
