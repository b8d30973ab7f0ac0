package space_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/relmem/cell"
	"github.com/vkngwrapper/relmem/memref"
	"github.com/vkngwrapper/relmem/space"
	"golang.org/x/exp/slog"
)

func newSpace(t *testing.T, cfg space.Config) *space.Space {
	logger := slog.New(slog.NewTextHandler(os.Stdout))
	s, err := space.New(logger, cfg)
	require.NoError(t, err)
	return s
}

func TestNewRejectsInvalidFormat(t *testing.T) {
	_, err := space.New(nil, space.Config{TableIndexBits: 32})
	require.ErrorIs(t, err, memref.ErrInvalidFormat)
}

func TestAttachDetach(t *testing.T) {
	s := newSpace(t, space.Config{TableIndexBits: 2, UseMutex: true})

	require.NoError(t, s.Attach(0, make([]cell.Unit, 4)))
	require.NoError(t, s.Attach(3, make([]cell.Unit, 8)))
	require.Equal(t, 2, s.TableCount())

	err := s.Attach(3, make([]cell.Unit, 1))
	require.ErrorIs(t, err, space.ErrTableInUse)

	err = s.Attach(4, make([]cell.Unit, 1))
	require.ErrorIs(t, err, memref.ErrTableIndexOutOfRange)

	table, ok := s.Table(3)
	require.True(t, ok)
	require.Len(t, table, 8)

	_, ok = s.Table(1)
	require.False(t, ok)

	detached, err := s.Detach(3)
	require.NoError(t, err)
	require.Len(t, detached, 8)

	_, err = s.Detach(3)
	require.ErrorIs(t, err, space.ErrNoTable)

	_, err = s.Detach(0)
	require.NoError(t, err)
	require.NoError(t, s.Destroy())
}

func TestResolveNearAndFar(t *testing.T) {
	s := newSpace(t, space.Config{TableIndexBits: 4, FarOffsetShift: 1})

	first := make([]cell.Unit, 16)
	second := make([]cell.Unit, 16)
	require.NoError(t, s.Attach(1, first))
	require.NoError(t, s.Attach(2, second))

	far, err := s.Far(6, 2)
	require.NoError(t, err)

	unit, err := s.At(far, memref.Location{Table: 1})
	require.NoError(t, err)
	unit.SetUint(99)
	require.Equal(t, uint32(99), second[6].Uint())

	near, err := s.Near(3)
	require.NoError(t, err)

	// A near reference stored in table 1 reaches three cells past the base
	memref.Store(&first[0], near)
	unit, err = s.At(memref.Load(&first[0]), memref.Location{Table: 1, Offset: 4})
	require.NoError(t, err)
	require.Same(t, &first[7], unit)

	location, err := s.Resolve(far, memref.Location{})
	require.NoError(t, err)
	require.Equal(t, memref.Location{Table: 2, Offset: 6}, location)
}

func TestResolveErrors(t *testing.T) {
	s := newSpace(t, space.Config{TableIndexBits: 4})
	require.NoError(t, s.Attach(1, make([]cell.Unit, 4)))

	far, err := s.Far(0, 5)
	require.NoError(t, err)
	_, err = s.At(far, memref.Location{})
	require.ErrorIs(t, err, space.ErrNoTable)

	far, err = s.Far(4, 1)
	require.NoError(t, err)
	_, err = s.At(far, memref.Location{})
	require.ErrorIs(t, err, space.ErrOutOfBounds)

	far, err = s.Far(2, 1)
	require.NoError(t, err)
	cells, err := s.Cells(far, memref.Location{}, 2)
	require.NoError(t, err)
	require.Len(t, cells, 2)

	_, err = s.Cells(far, memref.Location{}, 3)
	require.ErrorIs(t, err, space.ErrOutOfBounds)

	_, err = s.Cells(far, memref.Location{}, -1)
	require.ErrorIs(t, err, space.ErrOutOfBounds)

	_, err = s.Far(0, 16)
	require.ErrorIs(t, err, memref.ErrTableIndexOutOfRange)

	_, err = s.Detach(1)
	require.NoError(t, err)
}

func TestDoubleWidthThroughSpace(t *testing.T) {
	s := newSpace(t, space.DefaultConfig())
	table := make([]cell.Unit, 8)
	require.NoError(t, s.Attach(7, table))

	far, err := s.Far(3, 7)
	require.NoError(t, err)

	cells, err := s.Cells(far, memref.Location{}, 2)
	require.NoError(t, err)
	cell.WriteFloat64(cells, 6.25)
	require.Equal(t, 6.25, cell.ReadFloat64(table[3:]))

	_, err = s.Detach(7)
	require.NoError(t, err)
}

func TestStatisticsAndJSON(t *testing.T) {
	s := newSpace(t, space.Config{TableIndexBits: 3, NearOffsetShift: 2})
	require.NoError(t, s.Attach(5, make([]cell.Unit, 10)))
	require.NoError(t, s.Attach(2, make([]cell.Unit, 3)))
	require.NoError(t, s.Validate())

	stats := s.Statistics()
	require.Equal(t, space.Statistics{
		TableCount:   2,
		CellCount:    13,
		TableSizeMin: 3,
		TableSizeMax: 10,
	}, stats)

	w := jwriter.NewWriter()
	s.PrintJSON(&w)
	require.NoError(t, w.Error())
	require.Equal(t,
		`{"Format":{"TableIndexBits":3,"FarOffsetShift":0,"NearOffsetShift":2},"Tables":[{"Index":2,"Cells":3},{"Index":5,"Cells":10}]}`,
		string(w.Bytes()))

	_, err := s.Detach(5)
	require.NoError(t, err)
	_, err = s.Detach(2)
	require.NoError(t, err)
}

func TestCombinedStatistics(t *testing.T) {
	first := newSpace(t, space.DefaultConfig())
	second := newSpace(t, space.DefaultConfig())
	empty := newSpace(t, space.DefaultConfig())

	require.NoError(t, first.Attach(1, make([]cell.Unit, 4)))
	require.NoError(t, first.Attach(2, make([]cell.Unit, 6)))
	require.NoError(t, second.Attach(1, make([]cell.Unit, 20)))

	require.Equal(t, space.Statistics{
		TableCount:   3,
		CellCount:    30,
		TableSizeMin: 4,
		TableSizeMax: 20,
	}, space.CombinedStatistics(first, second, empty))

	require.Equal(t, empty.Statistics(), space.CombinedStatistics(empty))

	_, err := first.Detach(1)
	require.NoError(t, err)
	_, err = first.Detach(2)
	require.NoError(t, err)
	_, err = second.Detach(1)
	require.NoError(t, err)
}

func TestDestroyReportsAttachedTables(t *testing.T) {
	var logOutput bytes.Buffer
	s, err := space.New(slog.New(slog.NewTextHandler(&logOutput)), space.DefaultConfig())
	require.NoError(t, err)

	require.NoError(t, s.Attach(9, make([]cell.Unit, 2)))
	require.Error(t, s.Destroy())
	require.Contains(t, logOutput.String(), "[UNRELEASED TABLE]")
	require.Contains(t, logOutput.String(), "index=9")
	require.Equal(t, 0, s.TableCount())
	_, ok := s.Table(9)
	require.False(t, ok)

	require.NoError(t, s.Attach(9, make([]cell.Unit, 1)))
	require.Equal(t, 1, s.TableCount())
	_, err = s.Detach(9)
	require.NoError(t, err)

	require.NoError(t, s.Destroy())
}
