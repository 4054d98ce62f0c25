package sexagenary

// HiddenStemRole classifies a hidden stem's contribution within its branch.
type HiddenStemRole int

const (
	Primary HiddenStemRole = iota
	Middle
	Residual
)

func (r HiddenStemRole) String() string {
	switch r {
	case Primary:
		return "primary"
	case Middle:
		return "middle"
	default:
		return "residual"
	}
}

// HiddenStem is one stem contained within a Branch, with its role and the
// default (unweighted-scheme) contribution weight from spec.md 4.5/4.7.
type HiddenStem struct {
	Stem   Stem
	Role   HiddenStemRole
	Weight float64
}

// Branch is one of the twelve earthly branches 子丑寅卯辰巳午未申酉戌亥,
// indexed 0..11.
type Branch struct {
	index int
}

// NewBranch builds a Branch from any integer index, reducing it into [0, 12).
func NewBranch(index int) Branch {
	return Branch{index: ((index % 12) + 12) % 12}
}

// Index returns the branch's position in [0, 12).
func (b Branch) Index() int { return b.index }

// Polarity is Yang for even indices, Yin for odd, matching the paired
// stem of any valid Pillar built from this branch.
func (b Branch) Polarity() Polarity {
	if b.index%2 == 0 {
		return Yang
	}
	return Yin
}

// Element is the branch's primary element.
func (b Branch) Element() Element { return branchElements[b.index] }

// Name returns the branch's Han character.
func (b Branch) Name() string { return branchNames[b.index] }

func (b Branch) String() string { return b.Name() }

// HiddenStems returns the branch's 1-3 hidden stems in primary-first
// order, at the default weighting scheme of spec.md 4.7.
func (b Branch) HiddenStems() []HiddenStem {
	table := hiddenStemTable[b.index]
	out := make([]HiddenStem, len(table))
	copy(out, table)
	return out
}

var branchNames = [12]string{
	"子", "丑", "寅", "卯", "辰", "巳", "午", "未", "申", "酉", "戌", "亥",
}

var branchElements = [12]Element{
	Water, Earth, Wood, Wood, Earth, Fire,
	Fire, Earth, Metal, Metal, Earth, Water,
}

// Branches is the full ordered set, index 0..11.
var Branches = [12]Branch{
	{0}, {1}, {2}, {3}, {4}, {5}, {6}, {7}, {8}, {9}, {10}, {11},
}

const (
	defaultPrimaryWeight  = 0.7
	defaultMiddleWeight   = 0.3
	defaultResidualWeight = 0.1
)

// hiddenStemTable is the traditional 藏干 table, keyed by branch index.
// Stem indices are the Stem.Index() values of the contained stems.
var hiddenStemTable = [12][]HiddenStem{
	// 子: 癸
	{{NewStem(9), Primary, defaultPrimaryWeight}},
	// 丑: 己 癸 辛
	{
		{NewStem(5), Primary, defaultPrimaryWeight},
		{NewStem(9), Middle, defaultMiddleWeight},
		{NewStem(7), Residual, defaultResidualWeight},
	},
	// 寅: 甲 丙 戊
	{
		{NewStem(0), Primary, defaultPrimaryWeight},
		{NewStem(2), Middle, defaultMiddleWeight},
		{NewStem(4), Residual, defaultResidualWeight},
	},
	// 卯: 乙
	{{NewStem(1), Primary, defaultPrimaryWeight}},
	// 辰: 戊 乙 癸
	{
		{NewStem(4), Primary, defaultPrimaryWeight},
		{NewStem(1), Middle, defaultMiddleWeight},
		{NewStem(9), Residual, defaultResidualWeight},
	},
	// 巳: 丙 庚 戊
	{
		{NewStem(2), Primary, defaultPrimaryWeight},
		{NewStem(6), Middle, defaultMiddleWeight},
		{NewStem(4), Residual, defaultResidualWeight},
	},
	// 午: 丁 己
	{
		{NewStem(3), Primary, defaultPrimaryWeight},
		{NewStem(5), Middle, defaultMiddleWeight},
	},
	// 未: 己 丁 乙
	{
		{NewStem(5), Primary, defaultPrimaryWeight},
		{NewStem(3), Middle, defaultMiddleWeight},
		{NewStem(1), Residual, defaultResidualWeight},
	},
	// 申: 庚 壬 戊
	{
		{NewStem(6), Primary, defaultPrimaryWeight},
		{NewStem(8), Middle, defaultMiddleWeight},
		{NewStem(4), Residual, defaultResidualWeight},
	},
	// 酉: 辛
	{{NewStem(7), Primary, defaultPrimaryWeight}},
	// 戌: 戊 辛 丁
	{
		{NewStem(4), Primary, defaultPrimaryWeight},
		{NewStem(7), Middle, defaultMiddleWeight},
		{NewStem(3), Residual, defaultResidualWeight},
	},
	// 亥: 壬 甲
	{
		{NewStem(8), Primary, defaultPrimaryWeight},
		{NewStem(0), Middle, defaultMiddleWeight},
	},
}
