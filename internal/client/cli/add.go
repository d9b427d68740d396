package cli

import (
	"context"
	"os"
)

func (a *App) Add(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Enter item title", os.Stdout)
	if err != nil {
		return err
	}
	if title == "" {
		printlnFn("Nothing to add.")
		return nil
	}

	opCtx, cancel := a.opCtx(ctx)
	defer cancel()

	if _, err := a.svc.AddItem(opCtx, title); err != nil {
		printlnFn(err.Error())
		return err
	}
	return a.Show(ctx)
}
