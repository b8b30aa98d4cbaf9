package factory

import "strings"

// Kind selects the farm variant and its blueprint slot
type Kind uint8

// farm kinds
const (
	KindClassic Kind = 1
	KindBoosted Kind = 2
)

func (k Kind) IsValid() bool {
	return k == KindClassic || k == KindBoosted
}

func (k Kind) String() string {
	switch k {
	case KindClassic:
		return "classic"
	case KindBoosted:
		return "boosted"
	}
	return "unknown"
}

// ParseKind returns the kind of the name, the zero kind is not valid
func ParseKind(name string) Kind {
	switch strings.ToLower(name) {
	case "classic":
		return KindClassic
	case "boosted":
		return KindBoosted
	}
	return 0
}
