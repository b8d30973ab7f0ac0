// Package space resolves references against a set of attached tables. A Space does not own the
// memory of its tables: the allocator that created a table attaches it under an index, keeps it
// alive while references to that index exist, and detaches it afterward.
package space

import (
	"context"

	cerrors "github.com/cockroachdb/errors"
	"github.com/dolthub/swiss"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/pkg/errors"
	"github.com/vkngwrapper/relmem/cell"
	"github.com/vkngwrapper/relmem/internal/utils"
	"github.com/vkngwrapper/relmem/memref"
	"golang.org/x/exp/slices"
	"golang.org/x/exp/slog"
)

// Space is a registry of tables sharing one reference format
type Space struct {
	logger *slog.Logger
	format memref.Format

	mutex  utils.OptionalRWMutex
	tables *swiss.Map[uint64, []cell.Unit]
}

// New creates an empty Space. The config is validated and fixed for the life of the Space.
func New(logger *slog.Logger, cfg Config) (*Space, error) {
	err := cfg.Validate()
	if err != nil {
		return nil, err
	}

	if logger == nil {
		logger = slog.Default()
	}

	s := &Space{
		logger: logger,
		format: cfg.Format(),
		tables: swiss.NewMap[uint64, []cell.Unit](42),
	}
	s.mutex.UseMutex = cfg.UseMutex
	utils.DebugValidate(s)

	s.logger.Debug("Space::New",
		slog.Int("TableIndexBits", int(cfg.TableIndexBits)),
		slog.Int("FarOffsetShift", int(cfg.FarOffsetShift)),
		slog.Int("NearOffsetShift", int(cfg.NearOffsetShift)),
	)
	return s, nil
}

// Format returns the reference format shared by all of the space's tables
func (s *Space) Format() memref.Format {
	return s.format
}

func (s *Space) checkIndex(index uint64) error {
	if index >= s.format.TableCount() {
		return cerrors.Wrapf(memref.ErrTableIndexOutOfRange, "table index %d does not fit in %d bits", index, s.format.TableIndexBits)
	}
	return nil
}

// Attach registers table under index. The index must be addressable with the space's table
// index bits and must not already hold a table.
func (s *Space) Attach(index uint64, table []cell.Unit) error {
	err := s.checkIndex(index)
	if err != nil {
		return err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.tables.Has(index) {
		return cerrors.Wrapf(ErrTableInUse, "table index %d", index)
	}

	s.tables.Put(index, table)
	s.logger.Debug("Space::Attach", slog.Uint64("Index", index), slog.Int("Cells", len(table)))
	return nil
}

// Detach removes the table at index and returns it
func (s *Space) Detach(index uint64) ([]cell.Unit, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	table, ok := s.tables.Get(index)
	if !ok {
		return nil, cerrors.Wrapf(ErrNoTable, "table index %d", index)
	}

	s.tables.Delete(index)
	s.logger.Debug("Space::Detach", slog.Uint64("Index", index), slog.Int("Cells", len(table)))
	return table, nil
}

// Table returns the table attached at index, if any
func (s *Space) Table(index uint64) ([]cell.Unit, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.tables.Get(index)
}

// TableCount returns the number of attached tables
func (s *Space) TableCount() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.tables.Count()
}

// Resolve locates the cell ref addresses. Near references are measured from base.
func (s *Space) Resolve(ref memref.Ref, base memref.Location) (memref.Location, error) {
	return s.format.Locate(ref, base)
}

// Cells returns count cells starting at the location ref addresses. The returned slice shares
// storage with the table.
func (s *Space) Cells(ref memref.Ref, base memref.Location, count int) ([]cell.Unit, error) {
	location, err := s.Resolve(ref, base)
	if err != nil {
		return nil, err
	}

	s.mutex.RLock()
	table, ok := s.tables.Get(location.Table)
	s.mutex.RUnlock()

	if !ok {
		return nil, cerrors.Wrapf(ErrNoTable, "resolving %d to %s", ref, location)
	}

	size := uint64(len(table))
	if count < 0 || location.Offset >= size || uint64(count) > size-location.Offset {
		return nil, cerrors.Wrapf(ErrOutOfBounds, "%d cells at %s in a table of %d cells", count, location, size)
	}

	return table[location.Offset : location.Offset+uint64(count)], nil
}

// At returns the cell ref addresses
func (s *Space) At(ref memref.Ref, base memref.Location) (*cell.Unit, error) {
	cells, err := s.Cells(ref, base, 1)
	if err != nil {
		return nil, err
	}
	return &cells[0], nil
}

// Near encodes a near reference to cellOffset with the space's format
func (s *Space) Near(cellOffset uint64) (memref.Ref, error) {
	return s.format.Near(cellOffset)
}

// Far encodes a far reference to cellOffset in table with the space's format
func (s *Space) Far(cellOffset, table uint64) (memref.Ref, error) {
	return s.format.Far(cellOffset, table)
}

// sortedIndices must be called with the mutex held
func (s *Space) sortedIndices() []uint64 {
	indices := make([]uint64, 0, s.tables.Count())
	s.tables.Iter(func(index uint64, table []cell.Unit) bool {
		indices = append(indices, index)
		return false
	})
	slices.Sort(indices)
	return indices
}

// Statistics summarizes the attached tables
func (s *Space) Statistics() Statistics {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	var stats Statistics
	stats.Clear()
	s.tables.Iter(func(index uint64, table []cell.Unit) bool {
		stats.AddTable(len(table))
		return false
	})
	return stats
}

// CombinedStatistics summarizes the tables attached to every space in spaces
func CombinedStatistics(spaces ...*Space) Statistics {
	var combined Statistics
	combined.Clear()
	for _, s := range spaces {
		stats := s.Statistics()
		combined.AddStatistics(&stats)
	}
	return combined
}

// Validate checks the format and that every attached table is addressable
func (s *Space) Validate() error {
	err := s.format.Validate()
	if err != nil {
		return err
	}

	s.mutex.RLock()
	defer s.mutex.RUnlock()

	for _, index := range s.sortedIndices() {
		err = s.checkIndex(index)
		if err != nil {
			return err
		}
	}
	return nil
}

// PrintJSON writes the space's format and a summary of each attached table
func (s *Space) PrintJSON(writer *jwriter.Writer) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	obj := writer.Object()
	defer obj.End()

	format := obj.Name("Format").Object()
	format.Name("TableIndexBits").Int(int(s.format.TableIndexBits))
	format.Name("FarOffsetShift").Int(int(s.format.FarOffsetShift))
	format.Name("NearOffsetShift").Int(int(s.format.NearOffsetShift))
	format.End()

	tables := obj.Name("Tables").Array()
	for _, index := range s.sortedIndices() {
		table, _ := s.tables.Get(index)

		tableObj := tables.Object()
		tableObj.Name("Index").Int(int(index))
		tableObj.Name("Cells").Int(len(table))
		tableObj.End()
	}
	tables.End()
}

// Destroy detaches every table. Tables that are still attached are logged and reported as an
// error, since references into them may still be live.
func (s *Space) Destroy() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.tables.Count() == 0 {
		return nil
	}

	for _, index := range s.sortedIndices() {
		table, _ := s.tables.Get(index)
		s.logger.LogAttrs(context.Background(), slog.LevelError, "[UNRELEASED TABLE] table still attached",
			slog.Uint64("index", index),
			slog.Int("cells", len(table)),
		)
	}

	count := s.tables.Count()
	s.tables = swiss.NewMap[uint64, []cell.Unit](42)
	return errors.Errorf("%d tables were still attached when the space was destroyed", count)
}
