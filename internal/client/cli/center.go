package cli

import (
	"context"
	"fmt"
)

// Center prompts for a coordinate and snaps the viewport to it, then prints
// the resulting center and zoom.
func (a *App) Center(ctx context.Context) error {
	lat, err := promptFloat(a, "Enter latitude")
	if err != nil {
		return err
	}
	lng, err := promptFloat(a, "Enter longitude")
	if err != nil {
		return err
	}

	a.sync.SetCenter(lat, lng)

	cLat, cLng, zoom := a.sync.Center()
	fmt.Printf("Viewport centered at (%.4f, %.4f), zoom %d\n", cLat, cLng, zoom)
	return nil
}
