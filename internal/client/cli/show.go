package cli

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/okuleshov/supportlist/internal/client/models"
)

var statusRank = map[models.Status]int{
	models.StatusPending:  0,
	models.StatusClaimed:  1,
	models.StatusComplete: 2,
}

var statusMark = map[models.Status]string{
	models.StatusPending:  "[ ]",
	models.StatusClaimed:  "[~]",
	models.StatusComplete: "[x]",
}

// Show prints the current state and records the item numbering other
// commands prompt with.
func (a *App) Show(ctx context.Context) error {
	if !a.hasList() {
		printlnFn("No list loaded.")
		return nil
	}

	l := a.svc.Current()
	items := make([]models.Item, len(l.Items))
	copy(items, l.Items)

	// Cross-status order is fixed (pending < claimed < complete);
	// Order only positions items within their group.
	sort.SliceStable(items, func(i, j int) bool {
		if statusRank[items[i].Status] != statusRank[items[j].Status] {
			return statusRank[items[i].Status] < statusRank[items[j].Status]
		}
		return items[i].Order < items[j].Order
	})

	printlnFn(fmt.Sprintf("== %s ==", l.Title))
	a.lastShown = a.lastShown[:0]
	for n, item := range items {
		a.lastShown = append(a.lastShown, item.ID)
		line := fmt.Sprintf("%2d. %s %s", n+1, statusMark[item.Status], item.Title)
		if item.ClaimedBy != "" {
			line += fmt.Sprintf(" (claimed by %s)", item.ClaimedBy)
		}
		if item.Note != "" {
			line += fmt.Sprintf("\n      note: %s", item.Note)
		}
		printlnFn(line)
	}
	if len(items) == 0 {
		printlnFn("(empty)")
	}
	return nil
}

// pickItem prompts for one of the numbers printed by the last Show.
func (a *App) pickItem(prompt string) (string, error) {
	if len(a.lastShown) == 0 {
		if err := a.Show(context.Background()); err != nil {
			return "", err
		}
		if len(a.lastShown) == 0 {
			return "", fmt.Errorf("list is empty")
		}
	}

	var n int
	text, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return "", err
	}
	if _, err := fmt.Sscanf(text, "%d", &n); err != nil || n < 1 || n > len(a.lastShown) {
		return "", fmt.Errorf("no such item: %q", text)
	}
	return a.lastShown[n-1], nil
}
