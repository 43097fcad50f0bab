package ws

import (
	"context"
	"errors"
	"log/slog"

	"github.com/heartmarshall/moodverse-backend/internal/capture"
	"github.com/heartmarshall/moodverse-backend/internal/domain"
	"github.com/heartmarshall/moodverse-backend/internal/identity"
	"github.com/heartmarshall/moodverse-backend/internal/metrics"
	"github.com/heartmarshall/moodverse-backend/internal/quiz"
	"github.com/heartmarshall/moodverse-backend/internal/session"
	"github.com/heartmarshall/moodverse-backend/internal/tab"
)

var knownCommands = map[string]bool{
	CmdSignIn: true, CmdSignUp: true, CmdSignOut: true, CmdResume: true,
	CmdFrame: true, CmdCapture: true, CmdReset: true, CmdDismissError: true,
	CmdSelectCategory: true, CmdStartQuiz: true, CmdAnswer: true, CmdCloseQuiz: true,
}

// commandLabel bounds the metric label set.
func commandLabel(t string) string {
	if knownCommands[t] {
		return t
	}
	return "unknown"
}

func (c *connection) dispatch(ctx context.Context, cmd Command) {
	var err error
	switch cmd.Type {
	case CmdSignIn:
		err = c.auth(ctx, "sign_in", func(ctx context.Context) error {
			return c.tab.SignIn(ctx, cmd.Email, cmd.Password)
		})
	case CmdSignUp:
		err = c.auth(ctx, "sign_up", func(ctx context.Context) error {
			return c.tab.SignUp(ctx, session.SignUpInput{
				Email:         cmd.Email,
				Password:      cmd.Password,
				Name:          cmd.Name,
				Gender:        domain.Gender(cmd.Gender),
				ContactNumber: cmd.ContactNumber,
			})
		})
	case CmdSignOut:
		err = c.auth(ctx, "sign_out", c.tab.SignOut)
	case CmdResume:
		err = c.auth(ctx, "resume", func(ctx context.Context) error {
			return c.tab.Resume(ctx, cmd.RefreshToken)
		})
	case CmdFrame:
		err = c.tab.PushFrame(cmd.Frame)
	case CmdCapture:
		c.inflight.Add(1)
		go func() {
			defer c.inflight.Done()
			if _, err := c.tab.Capture(ctx); err != nil {
				c.fail(cmd, err)
			}
		}()
	case CmdReset:
		err = c.tab.Reset()
	case CmdDismissError:
		err = c.tab.DismissError()
	case CmdSelectCategory:
		err = c.tab.SelectCategory(domain.Category(cmd.Category))
	case CmdStartQuiz:
		err = c.tab.StartQuiz()
	case CmdAnswer:
		if cmd.Option == nil {
			err = domain.NewValidationError("option", "required")
			break
		}
		err = c.tab.Answer(*cmd.Option)
	case CmdCloseQuiz:
		err = c.tab.CloseQuiz()
	default:
		err = errUnknownCommand
	}

	if err != nil {
		c.log.DebugContext(ctx, "command rejected",
			slog.String("type", cmd.Type),
			slog.String("error", err.Error()))
		c.fail(cmd, err)
	}
}

// auth runs an identity operation under the auth timeout. Its outcome is
// already reflected in the session view, so only the metric is recorded here.
func (c *connection) auth(ctx context.Context, op string, fn func(context.Context) error) error {
	if c.h.authTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.h.authTimeout)
		defer cancel()
	}
	err := fn(ctx)
	metrics.RecordAuth(op, err)
	return err
}

// errorText is the message sent for a rejected command. Provider messages
// pass through; everything else is reduced.
func errorText(err error) string {
	var (
		perr *identity.Error
		verr *domain.ValidationError
	)
	switch {
	case errors.As(err, &perr):
		return perr.Message
	case errors.Is(err, session.ErrProfileNotSaved):
		return session.ProfileSaveFailedMessage
	case errors.Is(err, tab.ErrNotAvailable):
		return "This action is not available right now."
	case errors.Is(err, quiz.ErrCompleted):
		return "The quiz is already completed."
	case errors.Is(err, errUnknownCommand):
		return "Unknown command."
	case errors.As(err, &verr):
		return verr.Error()
	case errors.Is(err, capture.ErrNoFrame):
		return "No camera frame received yet."
	default:
		return "Something went wrong. Please try again."
	}
}
