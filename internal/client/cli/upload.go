package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
)

// Upload prompts for the new photo's fields and posts it. The image and the
// coordinates are mandatory; the caption may be left empty. On success the
// created photo is appended to the local view model.
func (a *App) Upload(ctx context.Context) error {
	caption, err := getSimpleText(a.reader, "Enter caption (may be empty)", os.Stdout)
	if err != nil {
		return err
	}

	image, err := getSimpleText(a.reader, "Enter image URL", os.Stdout)
	if err != nil {
		return err
	}

	lat, err := promptFloat(a, "Enter latitude")
	if err != nil {
		return err
	}
	lng, err := promptFloat(a, "Enter longitude")
	if err != nil {
		return err
	}

	created, err := a.client.CreatePhoto(ctx, caption, image, lat, lng)
	if err != nil {
		log.Printf("Upload unsuccessful: %s", err.Error())
		return err
	}

	a.sync.ApplyCreate(*created)
	fmt.Printf("Uploaded photo %s\n", created.ID)
	return nil
}

func promptFloat(a *App, prompt string) (float64, error) {
	text, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		log.Printf("not a number: %q", text)
		return 0, err
	}
	return v, nil
}
