package cli

import "context"

// Reload fetches and reconciles the current state from the relays.
func (a *App) Reload(ctx context.Context) error {
	if a.svc == nil {
		printlnFn("No list loaded.")
		return nil
	}

	opCtx, cancel := a.opCtx(ctx)
	defer cancel()

	if _, err := a.svc.Load(opCtx); err != nil {
		printlnFn(err.Error())
		return err
	}
	return a.Show(ctx)
}
