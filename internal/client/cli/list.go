package cli

import (
	"context"
	"fmt"
	"log"
)

// List prints the marker set derived for the current viewer, one line per
// photo, with an asterisk on entries the viewer may edit or delete.
func (a *App) List(ctx context.Context) error {
	markers := a.sync.Markers(a.identity)
	if len(markers) == 0 {
		fmt.Println("No photos yet")
		return nil
	}

	for _, m := range markers {
		editable := " "
		if m.Popup.CanMutate {
			editable = "*"
		}
		fmt.Printf("%s %s (%.4f, %.4f) %s: %s, %s\n",
			editable, m.PhotoID, m.Lat, m.Lng, m.Popup.OwnerName, m.Popup.Caption, m.Popup.PostedOn)
	}
	return nil
}

// Refresh reloads the photo list from the server.
func (a *App) Refresh(ctx context.Context) error {
	if err := a.sync.Load(ctx); err != nil {
		log.Printf("Refresh unsuccessful: %s", err.Error())
		return err
	}
	fmt.Printf("Loaded %d photos\n", len(a.sync.Photos()))
	return nil
}
