package calendar

import "errors"

var (
	ErrUnknownDay        = errors.New("unknown day list")
	ErrUnknownPlanning   = errors.New("unknown planning")
	ErrDuplicatePlanning = errors.New("planning already on board")
	ErrDragInProgress    = errors.New("another planning is already being dragged")
	ErrUnknownAction     = errors.New("unknown action")
	ErrMissingTaskID     = errors.New("task id not found for this planning")
	ErrMissingID         = errors.New("server response has no planning id")
	ErrEditorClosed      = errors.New("time editor is not open")
)

// userMessager is implemented by errors that carry a message meant for the
// notification toast.
type userMessager interface {
	UserMessage() string
}

func userMessage(err error) string {
	var um userMessager
	if errors.As(err, &um) {
		return um.UserMessage()
	}
	return err.Error()
}
