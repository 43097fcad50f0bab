package ws

import (
	"github.com/heartmarshall/moodverse-backend/internal/identity"
	"github.com/heartmarshall/moodverse-backend/internal/tab"
)

// Client to server command types.
const (
	CmdSignIn         = "sign_in"
	CmdSignUp         = "sign_up"
	CmdSignOut        = "sign_out"
	CmdResume         = "resume"
	CmdFrame          = "frame"
	CmdCapture        = "capture"
	CmdReset          = "reset"
	CmdDismissError   = "dismiss_error"
	CmdSelectCategory = "select_category"
	CmdStartQuiz      = "start_quiz"
	CmdAnswer         = "answer"
	CmdCloseQuiz      = "close_quiz"
)

// Server to client message types.
const (
	MsgCamera = "camera"
	MsgView   = "view"
	MsgTokens = "tokens"
	MsgError  = "error"
)

// Command is one message from the browser. Only the fields of its Type are
// read.
type Command struct {
	Type string `json:"type"`
	ID   string `json:"id,omitempty"`

	Email         string `json:"email,omitempty"`
	Password      string `json:"password,omitempty"`
	Name          string `json:"name,omitempty"`
	Gender        string `json:"gender,omitempty"`
	ContactNumber string `json:"contact_number,omitempty"`
	RefreshToken  string `json:"refresh_token,omitempty"`
	Frame         string `json:"frame,omitempty"`
	Category      string `json:"category,omitempty"`
	Option        *int   `json:"option,omitempty"`
}

// Message is one message to the browser.
type Message struct {
	Type   string                 `json:"type"`
	ID     string                 `json:"id,omitempty"`
	Camera *tab.CameraConstraints `json:"camera,omitempty"`
	View   *tab.View              `json:"view,omitempty"`
	Tokens *identity.Tokens       `json:"tokens,omitempty"`
	Error  string                 `json:"error,omitempty"`
}
