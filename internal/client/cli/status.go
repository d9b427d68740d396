package cli

import (
	"context"
	"os"

	"github.com/okuleshov/supportlist/internal/client/models"
)

// Claim marks an item as taken by the given helper name. Any party may
// claim; the merge keeps the claim even if the counterparty publishes
// an older-state snapshot afterwards.
func (a *App) Claim(ctx context.Context) error {
	id, err := a.pickItem("Item # to claim")
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	name, err := getSimpleText(a.reader, "Your name", os.Stdout)
	if err != nil {
		return err
	}

	claimed := models.StatusClaimed
	return a.patchItem(ctx, id, models.ItemPatch{Status: &claimed, ClaimedBy: &name})
}

// Done marks an item complete.
func (a *App) Done(ctx context.Context) error {
	id, err := a.pickItem("Item # to complete")
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	complete := models.StatusComplete
	return a.patchItem(ctx, id, models.ItemPatch{Status: &complete})
}

func (a *App) patchItem(ctx context.Context, id string, patch models.ItemPatch) error {
	opCtx, cancel := a.opCtx(ctx)
	defer cancel()

	if _, err := a.svc.UpdateItem(opCtx, id, patch); err != nil {
		printlnFn(err.Error())
		return err
	}
	return a.Show(ctx)
}
