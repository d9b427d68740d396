package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// Move reorders the list. The user re-enters the displayed item numbers
// in the desired sequence; the service recomputes dense order values
// within each status group.
func (a *App) Move(ctx context.Context) error {
	if err := a.Show(ctx); err != nil {
		return err
	}
	if len(a.lastShown) < 2 {
		printlnFn("Nothing to reorder.")
		return nil
	}

	text, err := getSimpleText(a.reader, "Enter item numbers in the new order (space separated)", os.Stdout)
	if err != nil {
		return err
	}

	shown := make([]string, len(a.lastShown))
	copy(shown, a.lastShown)

	ids := make([]string, 0, len(shown))
	for _, field := range strings.Fields(text) {
		var n int
		if _, err := fmt.Sscanf(field, "%d", &n); err != nil || n < 1 || n > len(shown) {
			printlnFn(fmt.Sprintf("No such item: %q", field))
			return nil
		}
		ids = append(ids, shown[n-1])
	}

	opCtx, cancel := a.opCtx(ctx)
	defer cancel()

	if _, err := a.svc.Reorder(opCtx, ids); err != nil {
		printlnFn(err.Error())
		return err
	}
	return a.Show(ctx)
}
