package state

import "restobot/internal/models"

// Kind identifies what the bot is waiting for from a user.
type Kind int

const (
	// KindNone indicates there is no active conversation with the user.
	KindNone Kind = iota
	// KindSheetText waits for replacement text of an info sheet.
	KindSheetText
	// KindSchedulePhoto waits for a new schedule photo.
	KindSchedulePhoto
	// KindSeatingPhoto waits for a new seating plan photo.
	KindSeatingPhoto
	// KindFeedbackText waits for the guest's feedback message.
	KindFeedbackText
	// KindFeedbackReply waits for an admin's reply to a feedback record.
	KindFeedbackReply
)

// String returns a short name for logging.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindSheetText:
		return "sheet_text"
	case KindSchedulePhoto:
		return "schedule_photo"
	case KindSeatingPhoto:
		return "seating_photo"
	case KindFeedbackText:
		return "feedback_text"
	case KindFeedbackReply:
		return "feedback_reply"
	}
	return "unknown"
}

// Pending describes one awaited input together with the parameters
// captured when the prompt was issued. Only the fields relevant to
// Kind are meaningful.
type Pending struct {
	Kind Kind

	// KindSheetText
	Sheet models.SheetType

	// KindFeedbackText
	Table    int
	Category models.FeedbackCategory

	// KindFeedbackReply
	FeedbackID int64
	TargetChat int64
}

// Manager stores at most one Pending per user. Setting a new value
// replaces any previous one.
type Manager interface {
	Set(userID int64, p Pending)
	Get(userID int64) (Pending, bool)
	Clear(userID int64)
	InProgress(userID int64) bool
}
