package lookup

// Family is Win32_Processor.Family.
type Family int

const (
	FamilyNone    Family = -1
	FamilyOther   Family = 1
	FamilyUnknown Family = 2
)

var familyNames = map[Family]string{
	-1: "NONE", 1: "Other", 2: "Unknown", 3: "8086", 4: "80286", 5: "Intel386", 6: "Intel486",
	7: "8087", 8: "80287", 9: "80387", 10: "80487", 11: "Pentium", 12: "Pentium Pro",
	13: "Pentium II", 14: "Pentium MMX", 15: "Celeron", 16: "Pentium II Xeon",
	17: "Pentium III", 18: "M1", 19: "M2", 24: "K5", 25: "K6", 26: "K6-2", 27: "K6-3",
	28: "AMD Athlon", 29: "AMD Duron", 30: "AMD29000", 31: "K6-2+", 32: "Power PC",
	33: "Power PC 601", 34: "Power PC 603", 35: "Power PC 603+", 36: "Power PC 604",
	37: "Power PC 620", 38: "Power PC X704", 39: "Power PC 750", 48: "Alpha",
	49: "Alpha 21064", 50: "Alpha 21066", 51: "Alpha 21164", 52: "Alpha 21164PC",
	53: "Alpha 21164a", 54: "Alpha 21264", 55: "Alpha 21364", 64: "MIPS",
	65: "MIPS R4000", 66: "MIPS R4200", 67: "MIPS R4400", 68: "MIPS R4600",
	69: "MIPS R10000", 80: "SPARC", 81: "SuperSPARC", 82: "microSPARC II",
	83: "microSPARC IIep", 84: "UltraSPARC", 85: "UltraSPARC II", 86: "UltraSPARC IIi",
	87: "UltraSPARC III", 88: "UltraSPARC IIIi", 96: "68040", 97: "68xxx", 98: "68000",
	99: "68010", 100: "68020", 101: "68030", 112: "Hobbit", 120: "Crusoe TM5000",
	121: "Crusoe TM3000", 122: "Efficeon TM8000", 128: "Weitek", 130: "Itanium",
	131: "AMD Athlon 64", 132: "AMD Opteron", 144: "PA-RISC", 145: "PA-RISC 8500",
	146: "PA-RISC 8000", 147: "PA-RISC 7300LC", 148: "PA-RISC 7200", 149: "PA-RISC 7100LC",
	150: "PA-RISC 7100", 160: "V30", 176: "Pentium III Xeon", 177: "Pentium III SpeedStep",
	178: "Pentium 4", 179: "Intel Xeon", 180: "AS400", 181: "Intel Xeon MP",
	182: "AMD Athlon XP", 183: "AMD Athlon MP", 184: "Intel Itanium 2", 185: "Intel Pentium M",
	190: "K7", 198: "Intel Core i7", 199: "Dual-Core Intel Celeron", 200: "IBM390",
	201: "G4", 202: "G5", 203: "G6", 204: "z/Architecture", 205: "Intel Core i5",
	206: "Intel Core i3", 250: "i860", 251: "i960", 260: "SH-3", 261: "SH-4", 280: "ARM",
	281: "StrongARM", 300: "6x86", 301: "MediaGX", 302: "MII", 320: "WinChip", 350: "DSP",
	500: "Video Processor",
}

// ParseFamily maps a raw code, falling back to FamilyNone.
func ParseFamily(code int64) Family {
	f := Family(code)
	if _, ok := familyNames[f]; !ok || int64(f) != code {
		return FamilyNone
	}
	return f
}

func (f Family) String() string { return name(familyNames, f) }

func (f Family) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

func (f *Family) UnmarshalText(text []byte) (err error) {
	*f, err = unname(familyNames, text)
	return err
}
