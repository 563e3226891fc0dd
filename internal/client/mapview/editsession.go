package mapview

import (
	"context"
	"errors"

	"github.com/daynu/herejpg/internal/authz"
	"github.com/daynu/herejpg/internal/client/api"
	"github.com/daynu/herejpg/internal/client/models"
)

// State is the edit session's position in its lifecycle.
type State int

const (
	StateIdle State = iota
	StateEditing
	StateSaving
)

var (
	ErrNotEditing   = errors.New("no photo is being edited")
	ErrBusy         = errors.New("a save is already in flight")
	ErrNotPermitted = errors.New("viewer may not edit this photo")
)

// EditSession is the transient "inspecting → editing → saving" state
// machine for one photo at a time. Entering Editing seeds the draft from
// the photo's current values; Cancel discards the draft; a failed save
// keeps the draft intact and surfaces the server's reason.
type EditSession struct {
	client api.Client
	sync   *Synchronizer

	state        State
	photo        models.Photo
	draftCaption string
	draftImage   string
}

func NewEditSession(client api.Client, sync *Synchronizer) *EditSession {
	return &EditSession{client: client, sync: sync, state: StateIdle}
}

func (e *EditSession) State() State { return e.state }

// Begin enters Editing for the given photo. The mirrored policy is checked
// here only to avoid offering an edit the server would reject; the server
// remains the real guard.
func (e *EditSession) Begin(photo models.Photo, viewer *models.Identity) error {
	if viewer == nil || !authz.CanMutate(viewer.ID, viewer.Role, photo.Owner.ID) {
		return ErrNotPermitted
	}
	e.state = StateEditing
	e.photo = photo
	e.draftCaption = photo.Caption
	e.draftImage = photo.Image
	return nil
}

func (e *EditSession) SetCaption(caption string) {
	if e.state == StateEditing {
		e.draftCaption = caption
	}
}

func (e *EditSession) SetImage(image string) {
	if e.state == StateEditing {
		e.draftImage = image
	}
}

func (e *EditSession) Draft() (caption, image string) {
	return e.draftCaption, e.draftImage
}

// Save issues the update request. On success the synchronizer's view model
// is patched and the session returns to Idle. On failure the session stays
// in Editing with the draft intact and the error is returned for display.
func (e *EditSession) Save(ctx context.Context) error {
	switch e.state {
	case StateIdle:
		return ErrNotEditing
	case StateSaving:
		return ErrBusy
	}

	e.state = StateSaving
	updated, err := e.client.UpdatePhoto(ctx, e.photo.ID, e.draftCaption, e.draftImage)
	if err != nil {
		e.state = StateEditing
		return err
	}

	e.sync.ApplyUpdate(*updated)
	e.state = StateIdle
	return nil
}

// Cancel discards the draft and returns to Idle.
func (e *EditSession) Cancel() {
	e.state = StateIdle
	e.photo = models.Photo{}
	e.draftCaption = ""
	e.draftImage = ""
}
