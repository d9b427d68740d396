package cli

import "context"

func (a *App) Delete(ctx context.Context) error {
	id, err := a.pickItem("Item # to delete")
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	opCtx, cancel := a.opCtx(ctx)
	defer cancel()

	if _, err := a.svc.DeleteItem(opCtx, id); err != nil {
		printlnFn(err.Error())
		return err
	}
	return a.Show(ctx)
}
