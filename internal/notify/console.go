// Package notify shows short messages to the user.
package notify

import (
	"fmt"
	"io"
)

// Console prints each message on its own line.
type Console struct {
	Out io.Writer
}

// Notify writes msg to Out. Write errors are ignored.
func (c Console) Notify(msg string) {
	if c.Out == nil {
		return
	}

	_, _ = fmt.Fprintln(c.Out, msg)
}
