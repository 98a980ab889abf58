package output

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh/spinner"
)

// RunWithSpinner executes an action with a spinner titled after the stage.
// When stdout is not a TTY (CI logs, redirected output) the action runs
// directly without any animation.
func RunWithSpinner(ctx context.Context, title string, action func() error) error {
	if !IsTTY() {
		return action()
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- action()
	}()

	s := spinner.New().Title(title)
	if spinnerErr := s.Action(func() {
		select {
		case <-ctx.Done():
		case err := <-errCh:
			errCh <- err
		}
	}).Run(); spinnerErr != nil {
		return fmt.Errorf("spinner error: %w", spinnerErr)
	}

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
