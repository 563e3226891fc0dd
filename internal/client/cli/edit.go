package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/daynu/herejpg/internal/client/models"
)

// Edit runs one interactive edit session: prompt for the photo id, seed the
// draft from its current values, accept new ones (empty input keeps the
// current value) and save. A rejected save leaves the local list untouched
// and reports the server's reason.
func (a *App) Edit(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter photo id to edit", os.Stdout)
	if err != nil {
		return err
	}

	photo, ok := a.findPhoto(id)
	if !ok {
		log.Printf("No photo with id %q", id)
		return nil
	}

	if err := a.edit.Begin(photo, a.identity); err != nil {
		log.Printf("Cannot edit: %s", err.Error())
		return err
	}

	caption, image := a.edit.Draft()

	newCaption, err := getSimpleText(a.reader, fmt.Sprintf("Caption [%s] (empty keeps current)", caption), os.Stdout)
	if err != nil {
		a.edit.Cancel()
		return err
	}
	if newCaption != "" {
		a.edit.SetCaption(newCaption)
	}

	newImage, err := getSimpleText(a.reader, fmt.Sprintf("Image [%s] (empty keeps current)", image), os.Stdout)
	if err != nil {
		a.edit.Cancel()
		return err
	}
	if newImage != "" {
		a.edit.SetImage(newImage)
	}

	if err := a.edit.Save(ctx); err != nil {
		log.Printf("Save unsuccessful: %s", err.Error())
		a.edit.Cancel()
		return err
	}

	fmt.Println("Saved")
	return nil
}

func (a *App) findPhoto(id string) (models.Photo, bool) {
	for _, p := range a.sync.Photos() {
		if p.ID == id {
			return p, true
		}
	}
	return models.Photo{}, false
}
