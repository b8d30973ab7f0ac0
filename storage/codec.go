package storage

import (
	"fmt"
	"io"

	cerrors "github.com/cockroachdb/errors"
	"github.com/fxamacker/cbor/v2"
	"github.com/vkngwrapper/relmem/cell"
)

// SectionFilter decides whether a section is kept when reading an image
type SectionFilter func(name string) bool

// SymbolFilter decides whether a symbol is kept when reading an image. section is the name of
// the symbol's section.
type SymbolFilter func(name, section string) bool

type imageRecord struct {
	Format     uint32           `cbor:"1,keyasint"`
	Sections   []sectionRecord  `cbor:"2,keyasint,omitempty"`
	Symbols    []symbolRecord   `cbor:"3,keyasint,omitempty"`
	Properties []propertyRecord `cbor:"4,keyasint,omitempty"`
}

type sectionRecord struct {
	Name     string `cbor:"1,keyasint"`
	Contents []byte `cbor:"2,keyasint"` // little-endian cells
}

type symbolRecord struct {
	Name    string `cbor:"1,keyasint"`
	Section uint32 `cbor:"2,keyasint"`
	Value   uint64 `cbor:"3,keyasint"` // byte offset into the section
}

type propertyRecord struct {
	Name  string `cbor:"1,keyasint"`
	Value []byte `cbor:"2,keyasint"`
}

var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("storage: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

// Write validates image and encodes it to w
func Write(w io.Writer, image *Image) error {
	err := image.Validate()
	if err != nil {
		return err
	}

	record := imageRecord{
		Format:     image.Format,
		Sections:   make([]sectionRecord, 0, len(image.Sections)),
		Symbols:    make([]symbolRecord, 0, len(image.Symbols)),
		Properties: make([]propertyRecord, 0, len(image.Properties)),
	}

	for _, section := range image.Sections {
		record.Sections = append(record.Sections, sectionRecord{
			Name:     section.Name,
			Contents: cell.EncodeLE(nil, section.Units),
		})
	}

	for _, symbol := range image.Symbols {
		record.Symbols = append(record.Symbols, symbolRecord{
			Name:    symbol.Name,
			Section: uint32(symbol.Section),
			Value:   uint64(symbol.Offset) * cell.UnitSize,
		})
	}

	for _, property := range image.Properties {
		record.Properties = append(record.Properties, propertyRecord{
			Name:  property.Name,
			Value: property.Value,
		})
	}

	err = cborEncMode.NewEncoder(w).Encode(record)
	if err != nil {
		return cerrors.Wrap(err, "could not encode image")
	}
	return nil
}

// Read decodes an image from r. Either filter may be nil to keep everything. Sections with no
// contents or a length that is not a whole number of cells are skipped, as are symbols that do
// not address the start of a cell inside a kept section. Symbol section indices in the result
// refer to the kept sections. An image whose kept entries reuse a name is rejected with an error
// wrapping ErrDuplicateName.
func Read(r io.Reader, sectionFilter SectionFilter, symbolFilter SymbolFilter) (*Image, error) {
	var record imageRecord
	err := cbor.NewDecoder(r).Decode(&record)
	if err != nil {
		return nil, cerrors.Wrapf(ErrMalformedImage, "could not decode image: %v", err)
	}

	image := &Image{Format: record.Format}

	// Positions of kept sections in image.Sections, -1 for skipped ones
	kept := make([]int, len(record.Sections))
	for index, section := range record.Sections {
		kept[index] = -1

		if len(section.Contents) == 0 || len(section.Contents)%cell.UnitSize != 0 {
			continue
		}
		if sectionFilter != nil && !sectionFilter(section.Name) {
			continue
		}

		units, err := cell.DecodeLE(section.Contents)
		if err != nil {
			return nil, err
		}

		kept[index] = len(image.Sections)
		image.Sections = append(image.Sections, Section{Name: section.Name, Units: units})
	}

	for _, symbol := range record.Symbols {
		if uint64(symbol.Section) >= uint64(len(record.Sections)) {
			continue
		}

		section := record.Sections[symbol.Section]
		if symbol.Value%cell.UnitSize != 0 || symbol.Value >= uint64(len(section.Contents)) {
			continue
		}
		if symbolFilter != nil && !symbolFilter(symbol.Name, section.Name) {
			continue
		}

		owner := kept[symbol.Section]
		if owner < 0 {
			continue
		}

		image.Symbols = append(image.Symbols, Symbol{
			Name:    symbol.Name,
			Section: owner,
			Offset:  int(symbol.Value / cell.UnitSize),
		})
	}

	for _, property := range record.Properties {
		image.Properties = append(image.Properties, Property{Name: property.Name, Value: property.Value})
	}

	// Skipping leaves every symbol addressable, but names are not checked for uniqueness above
	err = image.Validate()
	if err != nil {
		return nil, cerrors.Wrap(err, "decoded image is invalid")
	}
	return image, nil
}
