package timeline

import (
	"fmt"
	"time"

	"github.com/penwyp/go-marks/internal/core/model"
)

// CommandKind names a lifecycle transition.
type CommandKind string

const (
	CommandAdd      CommandKind = "add"
	CommandStop     CommandKind = "stop"
	CommandContinue CommandKind = "continue"
	CommandResume   CommandKind = "resume"
	CommandAmend    CommandKind = "amend"
	CommandDelete   CommandKind = "delete"
)

// Command pairs a transition with its parameters. Params must be the
// matching *Params struct, e.g. AddParams for CommandAdd.
type Command struct {
	Kind   CommandKind
	Params interface{}
}

// Apply dispatches cmd against tl using now as the current time.
func (e *Engine) Apply(tl *model.Timeline, cmd Command, now time.Time) (Result, error) {
	switch cmd.Kind {
	case CommandAdd:
		if p, ok := cmd.Params.(AddParams); ok {
			return e.Add(tl, p, now)
		}
	case CommandStop:
		if p, ok := cmd.Params.(StopParams); ok {
			return e.Stop(tl, p, now)
		}
	case CommandContinue:
		if p, ok := cmd.Params.(ContinueParams); ok {
			return e.Continue(tl, p, now)
		}
	case CommandResume:
		if p, ok := cmd.Params.(ResumeParams); ok {
			return e.Resume(tl, p, now)
		}
	case CommandAmend:
		if p, ok := cmd.Params.(AmendParams); ok {
			return e.Amend(tl, p, now)
		}
	case CommandDelete:
		if p, ok := cmd.Params.(DeleteParams); ok {
			return e.Delete(tl, p, now)
		}
	default:
		return Result{}, &model.ValidationError{Field: "command", Reason: fmt.Sprintf("unknown command %q", cmd.Kind)}
	}
	return Result{}, &model.ValidationError{
		Field:  "command",
		Reason: fmt.Sprintf("%s does not accept %T", cmd.Kind, cmd.Params),
	}
}
