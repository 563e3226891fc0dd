package mapview

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daynu/herejpg/internal/client/models"
)

type fakeClient struct {
	photos    []models.Photo
	listErr   error
	updateErr error
	deleteErr error

	updated   *models.Photo
	deletedID string
}

func (f *fakeClient) Register(ctx context.Context, name, email, password string) error { return nil }
func (f *fakeClient) Login(ctx context.Context, email, password string) error          { return nil }
func (f *fakeClient) Logout(ctx context.Context) error                                 { return nil }
func (f *fakeClient) CurrentUser(ctx context.Context) (*models.Identity, error)        { return nil, nil }

func (f *fakeClient) ListPhotos(ctx context.Context) ([]models.Photo, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.photos, nil
}

func (f *fakeClient) CreatePhoto(ctx context.Context, caption, image string, lat, lng float64) (*models.Photo, error) {
	return nil, nil
}

func (f *fakeClient) UpdatePhoto(ctx context.Context, id, caption, image string) (*models.Photo, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	f.updated = &models.Photo{ID: id, Caption: caption, Image: image}
	return f.updated, nil
}

func (f *fakeClient) DeletePhoto(ctx context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedID = id
	return nil
}

func testPhotos() []models.Photo {
	return []models.Photo{
		{ID: "p1", Owner: models.Owner{ID: "u1", Name: "Ana"}, Caption: "pier", Image: "pier.jpg",
			Location: models.Location{Lat: 44.1, Lng: 28.6}},
		{ID: "p2", Owner: models.Owner{ID: "u2", Name: "Bogdan"}, Caption: "peak", Image: "peak.jpg",
			Location: models.Location{Lat: 45.5, Lng: 25.5}},
		{ID: "p3", Owner: models.Owner{ID: "u1", Name: "Ana"}, Caption: "", Image: "street.jpg",
			Location: models.Location{Lat: 46.7, Lng: 23.5}},
	}
}

func TestSynchronizerLoad(t *testing.T) {
	client := &fakeClient{photos: testPhotos()}
	s := NewSynchronizer(client)

	require.NoError(t, s.Load(context.Background()))
	require.Len(t, s.Photos(), 3)

	client.photos = testPhotos()[:1]
	require.NoError(t, s.Load(context.Background()))
	assert.Len(t, s.Photos(), 1)
	assert.Equal(t, "p1", s.Photos()[0].ID)
}

func TestSynchronizerLoadError(t *testing.T) {
	client := &fakeClient{photos: testPhotos()}
	s := NewSynchronizer(client)
	require.NoError(t, s.Load(context.Background()))

	client.listErr = errors.New("connection refused")
	err := s.Load(context.Background())
	require.Error(t, err)
	assert.Len(t, s.Photos(), 3)
}

func TestSynchronizerApplyCreate(t *testing.T) {
	s := NewSynchronizer(&fakeClient{photos: testPhotos()})
	require.NoError(t, s.Load(context.Background()))

	s.ApplyCreate(models.Photo{ID: "p4", Caption: "harbour", Image: "harbour.jpg"})

	photos := s.Photos()
	require.Len(t, photos, 4)
	assert.Equal(t, "p4", photos[3].ID)
	assert.Equal(t, "p1", photos[0].ID)
}

func TestSynchronizerApplyUpdate(t *testing.T) {
	s := NewSynchronizer(&fakeClient{photos: testPhotos()})
	require.NoError(t, s.Load(context.Background()))

	updated := testPhotos()[1]
	updated.Caption = "summit at dawn"
	updated.Image = "summit.jpg"
	s.ApplyUpdate(updated)

	photos := s.Photos()
	require.Len(t, photos, 3)
	assert.Equal(t, []string{"p1", "p2", "p3"}, []string{photos[0].ID, photos[1].ID, photos[2].ID})
	assert.Equal(t, "summit at dawn", photos[1].Caption)
	assert.Equal(t, "summit.jpg", photos[1].Image)
	assert.Equal(t, "pier", photos[0].Caption)
}

func TestSynchronizerApplyUpdateUnknownID(t *testing.T) {
	s := NewSynchronizer(&fakeClient{photos: testPhotos()})
	require.NoError(t, s.Load(context.Background()))

	s.ApplyUpdate(models.Photo{ID: "nope", Caption: "ghost"})

	require.Len(t, s.Photos(), 3)
	for _, p := range s.Photos() {
		assert.NotEqual(t, "ghost", p.Caption)
	}
}

func TestSynchronizerApplyDelete(t *testing.T) {
	s := NewSynchronizer(&fakeClient{photos: testPhotos()})
	require.NoError(t, s.Load(context.Background()))

	s.ApplyDelete("p2")

	photos := s.Photos()
	require.Len(t, photos, 2)
	assert.Equal(t, "p1", photos[0].ID)
	assert.Equal(t, "p3", photos[1].ID)

	s.ApplyDelete("p2")
	assert.Len(t, s.Photos(), 2)
}

func TestSynchronizerDelete(t *testing.T) {
	client := &fakeClient{photos: testPhotos()}
	s := NewSynchronizer(client)
	require.NoError(t, s.Load(context.Background()))

	require.NoError(t, s.Delete(context.Background(), "p1"))
	assert.Equal(t, "p1", client.deletedID)
	assert.Len(t, s.Photos(), 2)
}

func TestSynchronizerDeleteServerRejection(t *testing.T) {
	client := &fakeClient{photos: testPhotos(), deleteErr: errors.New("forbidden")}
	s := NewSynchronizer(client)
	require.NoError(t, s.Load(context.Background()))

	err := s.Delete(context.Background(), "p1")
	require.Error(t, err)
	assert.Len(t, s.Photos(), 3)
}

func TestSynchronizerMarkers(t *testing.T) {
	client := &fakeClient{photos: testPhotos()}
	client.photos[0].CreatedAt = time.Date(2026, time.March, 14, 15, 9, 0, 0, time.UTC)
	s := NewSynchronizer(client)
	require.NoError(t, s.Load(context.Background()))

	markers := s.Markers(&models.Identity{ID: "u1", Role: "user"})
	require.Len(t, markers, 3)

	m := markers[0]
	assert.Equal(t, "p1", m.PhotoID)
	assert.Equal(t, 44.1, m.Lat)
	assert.Equal(t, 28.6, m.Lng)
	assert.Equal(t, "pier.jpg", m.IconImage)
	assert.Equal(t, 25, m.IconAnchorX)
	assert.Equal(t, 50, m.IconAnchorY)
	assert.Equal(t, -50, m.PopupOffsetY)
	assert.Equal(t, "Ana", m.Popup.OwnerName)
	assert.Equal(t, "pier", m.Popup.Caption)
	assert.Equal(t, "March 14, 2026 03:09 PM", m.Popup.PostedOn)

	assert.True(t, markers[0].Popup.CanMutate)
	assert.False(t, markers[1].Popup.CanMutate)
	assert.True(t, markers[2].Popup.CanMutate)
}

func TestSynchronizerPhotosIsACopy(t *testing.T) {
	s := NewSynchronizer(&fakeClient{photos: testPhotos()})
	require.NoError(t, s.Load(context.Background()))

	held := s.Photos()
	require.Len(t, held, 3)

	updated := testPhotos()[0]
	updated.Caption = "changed"
	s.ApplyUpdate(updated)
	s.ApplyDelete("p3")

	assert.Equal(t, "pier", held[0].Caption)
	assert.Len(t, held, 3)

	held[1].Caption = "scribbled"
	assert.Equal(t, "peak", s.Photos()[1].Caption)
}

func TestSynchronizerMarkersAdminAndAnonymous(t *testing.T) {
	s := NewSynchronizer(&fakeClient{photos: testPhotos()})
	require.NoError(t, s.Load(context.Background()))

	for _, m := range s.Markers(&models.Identity{ID: "u9", Role: "admin"}) {
		assert.True(t, m.Popup.CanMutate)
	}
	for _, m := range s.Markers(nil) {
		assert.False(t, m.Popup.CanMutate)
	}
}

func TestSynchronizerViewport(t *testing.T) {
	s := NewSynchronizer(&fakeClient{photos: testPhotos()})

	lat, lng, zoom := s.Center()
	assert.Equal(t, DefaultLat, lat)
	assert.Equal(t, DefaultLng, lng)
	assert.Equal(t, InitialZoom, zoom)

	s.SetCenter(44.43, 26.10)
	lat, lng, zoom = s.Center()
	assert.Equal(t, 44.43, lat)
	assert.Equal(t, 26.10, lng)
	assert.Equal(t, SnapZoom, zoom)

	require.NoError(t, s.Load(context.Background()))
	s.ApplyDelete("p1")
	lat, lng, zoom = s.Center()
	assert.Equal(t, 44.43, lat)
	assert.Equal(t, 26.10, lng)
	assert.Equal(t, SnapZoom, zoom)
}
