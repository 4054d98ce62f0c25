package ornament

import "github.com/hotea/bazi-insights/internal/sexagenary"

// Nayin is the sound/element label traditionally attached to a pillar.
type Nayin struct {
	Name    string
	Element sexagenary.Element
}

// nayinTable is keyed by a pillar's 60-cycle index (0 = 甲子). Every
// consecutive pair of indices shares one label, per the traditional
// 纳音 assignment.
var nayinTable = [60]Nayin{
	{"海中金", sexagenary.Metal}, {"海中金", sexagenary.Metal},
	{"炉中火", sexagenary.Fire}, {"炉中火", sexagenary.Fire},
	{"大林木", sexagenary.Wood}, {"大林木", sexagenary.Wood},
	{"路旁土", sexagenary.Earth}, {"路旁土", sexagenary.Earth},
	{"剑锋金", sexagenary.Metal}, {"剑锋金", sexagenary.Metal},
	{"山头火", sexagenary.Fire}, {"山头火", sexagenary.Fire},
	{"涧下水", sexagenary.Water}, {"涧下水", sexagenary.Water},
	{"城头土", sexagenary.Earth}, {"城头土", sexagenary.Earth},
	{"白蜡金", sexagenary.Metal}, {"白蜡金", sexagenary.Metal},
	{"杨柳木", sexagenary.Wood}, {"杨柳木", sexagenary.Wood},
	{"泉中水", sexagenary.Water}, {"泉中水", sexagenary.Water},
	{"屋上土", sexagenary.Earth}, {"屋上土", sexagenary.Earth},
	{"霹雳火", sexagenary.Fire}, {"霹雳火", sexagenary.Fire},
	{"松柏木", sexagenary.Wood}, {"松柏木", sexagenary.Wood},
	{"长流水", sexagenary.Water}, {"长流水", sexagenary.Water},
	{"沙中金", sexagenary.Metal}, {"沙中金", sexagenary.Metal},
	{"山下火", sexagenary.Fire}, {"山下火", sexagenary.Fire},
	{"平地木", sexagenary.Wood}, {"平地木", sexagenary.Wood},
	{"壁上土", sexagenary.Earth}, {"壁上土", sexagenary.Earth},
	{"金箔金", sexagenary.Metal}, {"金箔金", sexagenary.Metal},
	{"覆灯火", sexagenary.Fire}, {"覆灯火", sexagenary.Fire},
	{"天河水", sexagenary.Water}, {"天河水", sexagenary.Water},
	{"大驿土", sexagenary.Earth}, {"大驿土", sexagenary.Earth},
	{"钗钏金", sexagenary.Metal}, {"钗钏金", sexagenary.Metal},
	{"桑柘木", sexagenary.Wood}, {"桑柘木", sexagenary.Wood},
	{"大溪水", sexagenary.Water}, {"大溪水", sexagenary.Water},
	{"沙中土", sexagenary.Earth}, {"沙中土", sexagenary.Earth},
	{"天上火", sexagenary.Fire}, {"天上火", sexagenary.Fire},
	{"石榴木", sexagenary.Wood}, {"石榴木", sexagenary.Wood},
	{"大海水", sexagenary.Water}, {"大海水", sexagenary.Water},
}

// NayinOf looks up the nayin label for a pillar. The pillar must be a
// valid sexagenary combination; callers should check Pillar.Valid first.
func NayinOf(p sexagenary.Pillar) Nayin {
	idx := p.CycleIndex()
	if idx < 0 {
		return Nayin{}
	}
	return nayinTable[idx]
}
