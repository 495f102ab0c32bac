package events

import "time"

// Action tags every outbound notification. The catalog is closed:
// services emit through the typed Recorder methods only, so an unknown
// action is a programming error, not a runtime state.
type Action string

const (
	ActionDocumentUploaded      Action = "document_uploaded"
	ActionDocumentViewed        Action = "document_viewed"
	ActionDocumentDownloaded    Action = "document_downloaded"
	ActionDocumentDeleted       Action = "document_deleted"
	ActionDocumentStatusChanged Action = "document_status_changed"
	ActionDocumentShared        Action = "document_shared"
	ActionDocumentEdited        Action = "document_edited"

	ActionTaskCreated   Action = "task_created"
	ActionTaskUpdated   Action = "task_updated"
	ActionTaskCompleted Action = "task_completed"
	ActionTaskDeleted   Action = "task_deleted"

	ActionUserLogin          Action = "user_login"
	ActionUserLogout         Action = "user_logout"
	ActionUserInvited        Action = "user_invited"
	ActionUserRoleChanged    Action = "user_role_changed"
	ActionUserProfileUpdated Action = "user_profile_updated"

	ActionTemplateCreated Action = "template_created"
	ActionTemplateUsed    Action = "template_used"
	ActionTemplateDeleted Action = "template_deleted"

	ActionFolderCreated Action = "folder_created"
	ActionFolderDeleted Action = "folder_deleted"

	ActionProposalUploaded Action = "proposal_uploaded"
)

// Actor is a denormalized snapshot of the acting user at event time.
// Later profile changes never alter envelopes already emitted.
type Actor struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Envelope is the wire shape POSTed to the automation webhook.
// The shape of Data is fixed per action; see Recorder.
type Envelope struct {
	Action    Action         `json:"action"`
	Timestamp time.Time      `json:"timestamp"`
	User      Actor          `json:"user"`
	Data      map[string]any `json:"data"`
}

// NewEnvelope stamps the envelope at build time. Construction is pure
// and synchronous; only delivery is asynchronous and fallible.
func NewEnvelope(action Action, actor Actor, data map[string]any) Envelope {
	return Envelope{
		Action:    action,
		Timestamp: time.Now().UTC(),
		User:      actor,
		Data:      data,
	}
}

// Document is the entity snapshot handed to document-flavored recorder
// methods. Each method selects its own subset of these fields.
type Document struct {
	ID       string
	Name     string
	Type     string
	Size     int64
	FolderID string
	Tags     []string
	URL      string
	Status   string
	Priority string
}

// Task is the entity snapshot handed to task-flavored recorder methods.
type Task struct {
	ID          string
	Title       string
	Description string
	Priority    string
	AssignedTo  string
	DueDate     time.Time
	Status      string
	CompletedAt *time.Time
	ActualHours float64
}

type Template struct {
	ID       string
	Name     string
	Category string
}

type Folder struct {
	ID   string
	Name string
}
