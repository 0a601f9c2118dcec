package core

// MeetingStatus tracks whether a meeting still has open candidates or a
// finalized slot.
type MeetingStatus string

const (
	StatusPending   MeetingStatus = "pending"
	StatusConfirmed MeetingStatus = "confirmed"
)

// MeetingType distinguishes remote meetings from in-person ones.
type MeetingType string

const (
	TypeOnline  MeetingType = "online"
	TypeOffline MeetingType = "offline"
)

// MaxPreferredOptions caps how many candidate slots a meeting may carry.
// Position in the list is the priority (first = highest).
const MaxPreferredOptions = 5

// PreferredOption is one candidate (date, slot) pair the invitee offered.
// Either field may be empty while a form is in progress; an option only
// counts once both are set.
type PreferredOption struct {
	Date     string `json:"date"`
	TimeSlot string `json:"timeSlot"`
}

// Complete reports whether both the date and the slot are set.
func (o PreferredOption) Complete() bool {
	return o.Date != "" && o.TimeSlot != ""
}

// Meeting is the central entity. The JSON tags are the persisted wire
// format shared with the backup interchange; renaming a field is a
// breaking change.
type Meeting struct {
	ID               int               `json:"id"`
	Name             string            `json:"name"`
	Image            string            `json:"image"`
	Notes            string            `json:"notes"`
	MeetingType      MeetingType       `json:"meetingType,omitempty"`
	MeetingLocation  string            `json:"meetingLocation,omitempty"`
	PreferredOptions []PreferredOption `json:"preferredOptions"`

	// Set only once a slot is finalized. Status is confirmed exactly when
	// ConfirmedDate and ConfirmedTimeSlot are both non-empty.
	ConfirmedDate      string `json:"confirmedDate"`
	ConfirmedTimeSlot  string `json:"confirmedTimeSlot"`
	ConfirmedStartTime string `json:"confirmedStartTime"`
	ConfirmedEndTime   string `json:"confirmedEndTime"`

	Status        MeetingStatus `json:"status"`
	MeetingResult string        `json:"meetingResult,omitempty"`
}

// Confirmed reports whether the meeting has a finalized date and slot.
func (m Meeting) Confirmed() bool {
	return m.Status == StatusConfirmed && m.ConfirmedDate != "" && m.ConfirmedTimeSlot != ""
}

// FormData is the transient edit buffer used while composing a new or
// edited meeting. It always carries MaxPreferredOptions option rows so
// positional field references stay stable while the user types.
type FormData struct {
	Name             string
	Image            string
	Notes            string
	MeetingType      MeetingType
	MeetingLocation  string
	PreferredOptions []PreferredOption
}

// NewFormData returns an empty form with all option rows present.
func NewFormData() FormData {
	return FormData{
		MeetingType:      TypeOffline,
		PreferredOptions: make([]PreferredOption, MaxPreferredOptions),
	}
}

// FormFromMeeting seeds an edit form from an existing meeting, padding the
// option list back out to MaxPreferredOptions rows.
func FormFromMeeting(m Meeting) FormData {
	form := FormData{
		Name:            m.Name,
		Image:           m.Image,
		Notes:           m.Notes,
		MeetingType:     m.MeetingType,
		MeetingLocation: m.MeetingLocation,
	}
	if form.MeetingType == "" {
		form.MeetingType = TypeOffline
	}
	form.PreferredOptions = make([]PreferredOption, MaxPreferredOptions)
	copy(form.PreferredOptions, m.PreferredOptions)
	return form
}

// completeOptions returns only the fully filled-in option rows, in order.
func (f FormData) completeOptions() []PreferredOption {
	options := make([]PreferredOption, 0, len(f.PreferredOptions))
	for _, o := range f.PreferredOptions {
		if o.Complete() {
			options = append(options, o)
		}
	}
	return options
}

// Schedule is one derived row of the occupancy overview: a single
// (meeting, preferred option) pair. Never persisted; recomputed on read.
type Schedule struct {
	Date            string
	TimeSlot        string
	MeetingName     string
	MeetingImage    string
	Priority        int
	Notes           string
	MeetingType     MeetingType
	MeetingLocation string
}
