package simdsql

import "sort"

// Keyword identifies a reserved SQL word. KwUnknown marks tokens that
// are not keywords.
type Keyword uint8

const (
	KwUnknown Keyword = iota
	KwAll
	KwAnd
	KwAs
	KwAsc
	KwBetween
	KwBy
	KwCase
	KwCast
	KwCreate
	KwCross
	KwDelete
	KwDesc
	KwDistinct
	KwDrop
	KwElse
	KwEnd
	KwExists
	KwFrom
	KwFull
	KwGroup
	KwHaving
	KwIn
	KwIndex
	KwInner
	KwInsert
	KwInto
	KwIs
	KwJoin
	KwLeft
	KwLike
	KwLimit
	KwNot
	KwNull
	KwOffset
	KwOn
	KwOr
	KwOrder
	KwOuter
	KwRight
	KwSelect
	KwSet
	KwTable
	KwThen
	KwUnion
	KwUpdate
	KwUsing
	KwValues
	KwWhen
	KwWhere
	KwWith
)

// maxKeywordLen caps the case-fold buffer; identifiers longer than
// this can never be keywords.
const maxKeywordLen = 32

type keywordEntry struct {
	name string // canonical uppercase spelling
	id   Keyword
}

var keywordList = [...]keywordEntry{
	{"ALL", KwAll},
	{"AND", KwAnd},
	{"AS", KwAs},
	{"ASC", KwAsc},
	{"BETWEEN", KwBetween},
	{"BY", KwBy},
	{"CASE", KwCase},
	{"CAST", KwCast},
	{"CREATE", KwCreate},
	{"CROSS", KwCross},
	{"DELETE", KwDelete},
	{"DESC", KwDesc},
	{"DISTINCT", KwDistinct},
	{"DROP", KwDrop},
	{"ELSE", KwElse},
	{"END", KwEnd},
	{"EXISTS", KwExists},
	{"FROM", KwFrom},
	{"FULL", KwFull},
	{"GROUP", KwGroup},
	{"HAVING", KwHaving},
	{"IN", KwIn},
	{"INDEX", KwIndex},
	{"INNER", KwInner},
	{"INSERT", KwInsert},
	{"INTO", KwInto},
	{"IS", KwIs},
	{"JOIN", KwJoin},
	{"LEFT", KwLeft},
	{"LIKE", KwLike},
	{"LIMIT", KwLimit},
	{"NOT", KwNot},
	{"NULL", KwNull},
	{"OFFSET", KwOffset},
	{"ON", KwOn},
	{"OR", KwOr},
	{"ORDER", KwOrder},
	{"OUTER", KwOuter},
	{"RIGHT", KwRight},
	{"SELECT", KwSelect},
	{"SET", KwSet},
	{"TABLE", KwTable},
	{"THEN", KwThen},
	{"UNION", KwUnion},
	{"UPDATE", KwUpdate},
	{"USING", KwUsing},
	{"VALUES", KwValues},
	{"WHEN", KwWhen},
	{"WHERE", KwWhere},
	{"WITH", KwWith},
}

// keywordBuckets groups entries by byte length; each bucket is sorted
// by uppercase spelling so lookup can binary-search.
var keywordBuckets [maxKeywordLen + 1][]keywordEntry

func init() {
	for _, e := range keywordList {
		n := len(e.name)
		keywordBuckets[n] = append(keywordBuckets[n], e)
	}
	for _, bucket := range keywordBuckets {
		sort.Slice(bucket, func(i, j int) bool {
			return bucket[i].name < bucket[j].name
		})
	}
}

// String returns the canonical uppercase spelling of the keyword.
func (k Keyword) String() string {
	for _, e := range keywordList {
		if e.id == k {
			return e.name
		}
	}
	return "UNKNOWN"
}

// lookupKeyword resolves an identifier-shaped byte run to a keyword id.
// The match is case-insensitive over ASCII: the candidate is folded to
// uppercase into a fixed buffer, then binary-searched in the length
// bucket. Non-ASCII bytes are copied unchanged and cannot match.
func lookupKeyword(s []byte) Keyword {
	n := len(s)
	if n == 0 || n > maxKeywordLen {
		return KwUnknown
	}
	bucket := keywordBuckets[n]
	if len(bucket) == 0 {
		return KwUnknown
	}

	var folded [maxKeywordLen]byte
	for i, c := range s {
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		folded[i] = c
	}
	name := folded[:n]

	lo, hi := 0, len(bucket)
	for lo < hi {
		mid := (lo + hi) / 2
		switch compareEntry(bucket[mid].name, name) {
		case 0:
			return bucket[mid].id
		case -1:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return KwUnknown
}

// compareEntry orders an entry name against a folded candidate of the
// same length without converting the candidate to a string.
func compareEntry(name string, folded []byte) int {
	for i := 0; i < len(name); i++ {
		if name[i] < folded[i] {
			return -1
		}
		if name[i] > folded[i] {
			return 1
		}
	}
	return 0
}
