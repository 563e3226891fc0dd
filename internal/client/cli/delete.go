package cli

import (
	"context"
	"fmt"
	"log"
	"os"
)

// Delete prompts for a photo id and deletes it. The local list is patched
// only after the server confirms.
func (a *App) Delete(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter photo id to delete", os.Stdout)
	if err != nil {
		return err
	}

	if _, ok := a.findPhoto(id); !ok {
		log.Printf("No photo with id %q", id)
		return nil
	}

	if err := a.sync.Delete(ctx, id); err != nil {
		log.Printf("Delete unsuccessful: %s", err.Error())
		return err
	}

	fmt.Println("Deleted")
	return nil
}
