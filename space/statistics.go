package space

import "math"

// Statistics summarizes the tables attached to a space
type Statistics struct {
	TableCount   int
	CellCount    int
	TableSizeMin int
	TableSizeMax int
}

func (s *Statistics) Clear() {
	s.TableCount = 0
	s.CellCount = 0
	s.TableSizeMin = math.MaxInt
	s.TableSizeMax = 0
}

func (s *Statistics) AddTable(size int) {
	s.TableCount++
	s.CellCount += size

	if size < s.TableSizeMin {
		s.TableSizeMin = size
	}

	if size > s.TableSizeMax {
		s.TableSizeMax = size
	}
}

func (s *Statistics) AddStatistics(other *Statistics) {
	s.TableCount += other.TableCount
	s.CellCount += other.CellCount

	if other.TableSizeMin < s.TableSizeMin {
		s.TableSizeMin = other.TableSizeMin
	}

	if other.TableSizeMax > s.TableSizeMax {
		s.TableSizeMax = other.TableSizeMax
	}
}
