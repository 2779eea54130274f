package models

// Confirmation kinds offered by the confirm dialog.
const (
	ConfirmDeleteUser         = "delete_user"
	ConfirmRejectVerification = "reject_verification"
)

// Confirmation is an action waiting for the operator to confirm or cancel.
type Confirmation struct {
	Type     string `json:"type"`
	TargetID string `json:"target_id"`
	Title    string `json:"title"`
	Message  string `json:"message"`
	// AcceptsInput is set when the dialog takes a free text reason.
	AcceptsInput bool `json:"accepts_input"`
}
