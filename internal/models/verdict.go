package models

// VerdictKind categorizes the outcome of validating a drop
type VerdictKind int

const (
	VerdictCorrect VerdictKind = iota
	VerdictWrongComponent
	VerdictWrongLocation
	VerdictOccupied
	VerdictBuildComplete
)

func (k VerdictKind) String() string {
	switch k {
	case VerdictCorrect:
		return "correct"
	case VerdictWrongComponent:
		return "wrong_component"
	case VerdictWrongLocation:
		return "wrong_location"
	case VerdictOccupied:
		return "occupied"
	case VerdictBuildComplete:
		return "build_complete"
	default:
		return "unknown"
	}
}

// Verdict is the answer of the step validator for one drop
type Verdict struct {
	Correct bool
	Kind    VerdictKind
	Reason  string
}
