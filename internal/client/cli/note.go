package cli

import (
	"context"
	"os"

	"github.com/okuleshov/supportlist/internal/client/models"
)

func (a *App) Note(ctx context.Context) error {
	id, err := a.pickItem("Item # to annotate")
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	text, err := GetMultiline(a.reader, "Enter note (empty line to finish):", os.Stdout)
	if err != nil {
		return err
	}

	return a.patchItem(ctx, id, models.ItemPatch{Note: &text})
}
