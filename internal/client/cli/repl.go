package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it
// with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs. The
// real App type satisfies this interface; tests can provide a stub.
type execIface interface {
	hasList() bool
	isOwner() bool
	Create(ctx context.Context) error
	Open(ctx context.Context) error
	Show(ctx context.Context) error
	Add(ctx context.Context) error
	Claim(ctx context.Context) error
	Done(ctx context.Context) error
	Note(ctx context.Context) error
	Delete(ctx context.Context) error
	Move(ctx context.Context) error
	Share(ctx context.Context) error
	Auth(ctx context.Context) error
	Reload(ctx context.Context) error
	CloseList(ctx context.Context) error
}

// runREPL drives the interactive loop: read a line, take the first
// token as the command, dispatch. Command handlers report their own
// errors; the loop only cares about I/O. Exits on EOF or "exit"/"quit".
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("sl> %s > ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "help":
			if a.hasList() {
				printlnFn("Available commands: (l)ist, add, claim, done, note, del, move, share, auth, reload, close, exit")
			} else {
				printlnFn("Available commands: create, open, exit")
			}

		case "create":
			_ = a.Create(ctx)

		case "open":
			_ = a.Open(ctx)

		case "l", "list", "show":
			_ = a.Show(ctx)

		case "add":
			_ = a.Add(ctx)

		case "claim":
			_ = a.Claim(ctx)

		case "done":
			_ = a.Done(ctx)

		case "note":
			_ = a.Note(ctx)

		case "del":
			_ = a.Delete(ctx)

		case "move":
			_ = a.Move(ctx)

		case "share":
			_ = a.Share(ctx)

		case "auth":
			_ = a.Auth(ctx)

		case "reload":
			_ = a.Reload(ctx)

		case "close":
			_ = a.CloseList(ctx)

		case "exit", "quit":
			return

		default:
			printlnFn(fmt.Sprintf("Unknown command: %s (type help)", parts[0]))
		}
	}
}
