// Package mapview maintains the client's photo view model and derives the
// map's marker set from it. The photo sequence is the single source of
// truth: markers are re-derived on every render, never cached separately,
// so the displayed set cannot drift from the authoritative list.
package mapview

import (
	"context"
	"fmt"

	"github.com/daynu/herejpg/internal/authz"
	"github.com/daynu/herejpg/internal/client/api"
	"github.com/daynu/herejpg/internal/client/models"
)

// Marker geometry, in pixels, matching the map widget's expectations:
// a 50×50 icon anchored bottom-center with the popup opening above it.
const (
	IconSize     = 50
	SnapZoom     = 13
	InitialZoom  = 3
	DefaultLat   = 45.0
	DefaultLng   = 25.0
	timeLayout   = "January 2, 2006 03:04 PM"
	IconAnchorX  = IconSize / 2
	IconAnchorY  = IconSize
	PopupOffsetY = -IconSize
)

// Marker is one renderable map pin, fully derived from a Photo. The anchor
// and popup offsets are part of the widget contract and carried on every
// marker so the renderer needs no other source for them.
type Marker struct {
	PhotoID      string
	Lat          float64
	Lng          float64
	IconImage    string
	IconAnchorX  int
	IconAnchorY  int
	PopupOffsetY int
	Popup        Popup
}

// Popup is the marker's detail card. CanMutate reflects the mirrored
// authorization policy for the current viewer; it only gates whether
// edit/delete controls are shown — the server re-checks on every mutation.
type Popup struct {
	OwnerName string
	Caption   string
	Image     string
	PostedOn  string
	CanMutate bool
}

// Synchronizer keeps the ordered photo sequence consistent with the server
// across load, edit and delete without a full reload per mutation.
type Synchronizer struct {
	client api.Client
	photos []models.Photo

	centerLat float64
	centerLng float64
	zoom      int
}

func NewSynchronizer(client api.Client) *Synchronizer {
	return &Synchronizer{
		client:    client,
		photos:    []models.Photo{},
		centerLat: DefaultLat,
		centerLng: DefaultLng,
		zoom:      InitialZoom,
	}
}

// Load replaces the view model wholesale with a full list fetch.
func (s *Synchronizer) Load(ctx context.Context) error {
	photos, err := s.client.ListPhotos(ctx)
	if err != nil {
		return fmt.Errorf("error loading photos: %w", err)
	}
	s.photos = photos
	return nil
}

// Photos returns a copy of the current view model in store order. Later
// mutations through ApplyUpdate or ApplyDelete do not reach the returned
// slice.
func (s *Synchronizer) Photos() []models.Photo {
	out := make([]models.Photo, len(s.photos))
	copy(out, s.photos)
	return out
}

// ApplyCreate appends a newly created photo to the end of the sequence.
func (s *Synchronizer) ApplyCreate(created models.Photo) {
	s.photos = append(s.photos, created)
}

// ApplyUpdate replaces the entry whose id matches, by value, preserving the
// sequence's existing order. Unknown ids are ignored.
func (s *Synchronizer) ApplyUpdate(updated models.Photo) {
	for i := range s.photos {
		if s.photos[i].ID == updated.ID {
			s.photos[i] = updated
			return
		}
	}
}

// ApplyDelete removes the entry with the matching id.
func (s *Synchronizer) ApplyDelete(id string) {
	for i := range s.photos {
		if s.photos[i].ID == id {
			s.photos = append(s.photos[:i], s.photos[i+1:]...)
			return
		}
	}
}

// Delete is the one-shot delete action: it issues the request and, only on
// server confirmation, patches the view model. On failure the view model is
// unchanged.
func (s *Synchronizer) Delete(ctx context.Context, id string) error {
	if err := s.client.DeletePhoto(ctx, id); err != nil {
		return err
	}
	s.ApplyDelete(id)
	return nil
}

// Markers derives the renderable marker set for the given viewer. A nil
// viewer (not logged in) never sees mutation controls.
func (s *Synchronizer) Markers(viewer *models.Identity) []Marker {
	result := make([]Marker, 0, len(s.photos))
	for _, p := range s.photos {
		canMutate := false
		if viewer != nil {
			canMutate = authz.CanMutate(viewer.ID, viewer.Role, p.Owner.ID)
		}
		result = append(result, Marker{
			PhotoID:      p.ID,
			Lat:          p.Location.Lat,
			Lng:          p.Location.Lng,
			IconImage:    p.Image,
			IconAnchorX:  IconAnchorX,
			IconAnchorY:  IconAnchorY,
			PopupOffsetY: PopupOffsetY,
			Popup: Popup{
				OwnerName: p.Owner.Name,
				Caption:   p.Caption,
				Image:     p.Image,
				PostedOn:  p.CreatedAt.Format(timeLayout),
				CanMutate: canMutate,
			},
		})
	}
	return result
}

// SetCenter snaps the viewport to the given coordinate at the fixed snap
// zoom. Marker updates never touch the viewport.
func (s *Synchronizer) SetCenter(lat, lng float64) {
	s.centerLat = lat
	s.centerLng = lng
	s.zoom = SnapZoom
}

// Center returns the current viewport center and zoom.
func (s *Synchronizer) Center() (lat, lng float64, zoom int) {
	return s.centerLat, s.centerLng, s.zoom
}
