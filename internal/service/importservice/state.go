package importservice

import "github.com/GlebRadaev/acordos/internal/dto"

type Step int

const (
	StepUpload Step = iota + 1
	StepMapping
	StepValidation
	StepConfirmation
	StepResult
)

func (s Step) String() string {
	switch s {
	case StepUpload:
		return "upload"
	case StepMapping:
		return "mapping"
	case StepValidation:
		return "validation"
	case StepConfirmation:
		return "confirmation"
	case StepResult:
		return "result"
	default:
		return "unknown"
	}
}

// State is one of Upload, Mapping, Validation, Confirmation or Result. Each
// variant carries only the data valid at that step.
type State interface {
	Step() Step
	sealed()
}

type Upload struct{}

type Mapping struct {
	SessionID string
	Filename  string
	Columns   []string
	Preview   []map[string]any
	TotalRows int
	Assigned  dto.Mapping
}

type Validation struct {
	Mapping
	Result dto.ValidationResponseDTO
}

type Confirmation struct {
	Validation
}

type Result struct {
	Filename string
	Commit   dto.CommitResponseDTO
}

func (Upload) Step() Step       { return StepUpload }
func (Mapping) Step() Step      { return StepMapping }
func (Validation) Step() Step   { return StepValidation }
func (Confirmation) Step() Step { return StepConfirmation }
func (Result) Step() Step       { return StepResult }

func (Upload) sealed()       {}
func (Mapping) sealed()      {}
func (Validation) sealed()   {}
func (Confirmation) sealed() {}
func (Result) sealed()       {}

// Blocking reports whether the validation found errors. Warnings never block.
func (v Validation) Blocking() bool {
	return len(v.Result.Errors) > 0
}

func copyMapping(m dto.Mapping) dto.Mapping {
	out := make(dto.Mapping, len(m))
	for sec, fields := range m {
		inner := make(map[string]string, len(fields))
		for f, c := range fields {
			inner[f] = c
		}
		out[sec] = inner
	}
	return out
}
