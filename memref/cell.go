package memref

import "github.com/vkngwrapper/relmem/cell"

// Load reads the single-width reference stored in unit
func Load(unit *cell.Unit) Ref {
	return Ref(unit.Sint())
}

// Store writes ref into unit, replacing its entire contents
func Store(unit *cell.Unit, ref Ref) {
	unit.SetSint(int32(ref))
}

// LoadHalf reads the half-width reference stored in half lane 0 or 1 of unit
func LoadHalf(unit *cell.Unit, lane int) RefHalf {
	return RefHalf(unit.SintHalf()[lane])
}

// StoreHalf writes ref into half lane 0 or 1 of unit. The other lane is untouched.
func StoreHalf(unit *cell.Unit, lane int, ref RefHalf) {
	unit.SintHalf()[lane] = int16(ref)
}

// LoadQuarter reads the quarter-width reference stored in quarter lane 0 through 3 of unit
func LoadQuarter(unit *cell.Unit, lane int) RefQuarter {
	return RefQuarter(unit.SintQuarter()[lane])
}

// StoreQuarter writes ref into quarter lane 0 through 3 of unit. The other lanes are untouched.
func StoreQuarter(unit *cell.Unit, lane int, ref RefQuarter) {
	unit.SintQuarter()[lane] = int8(ref)
}
