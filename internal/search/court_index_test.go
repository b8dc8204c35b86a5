package search

import (
	"errors"
	"fmt"
	"testing"

	"github.com/court-finder/app/models"
	ms "github.com/meilisearch/meilisearch-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeIndex struct {
	batches  [][]CourtDocument
	settings *ms.Settings
	cleared  int
	addErr   error
	nextUID  int64
}

func (f *fakeIndex) AddDocuments(documentsPtr interface{}, primaryKey ...string) (*ms.TaskInfo, error) {
	if f.addErr != nil {
		return nil, f.addErr
	}
	docs, ok := documentsPtr.([]CourtDocument)
	if !ok {
		return nil, fmt.Errorf("unexpected documents type %T", documentsPtr)
	}
	if len(primaryKey) != 1 || primaryKey[0] != "id" {
		return nil, fmt.Errorf("unexpected primary key %v", primaryKey)
	}
	f.batches = append(f.batches, docs)
	f.nextUID++
	return &ms.TaskInfo{TaskUID: f.nextUID}, nil
}

func (f *fakeIndex) DeleteAllDocuments() (*ms.TaskInfo, error) {
	f.cleared++
	f.nextUID++
	return &ms.TaskInfo{TaskUID: f.nextUID}, nil
}

func (f *fakeIndex) UpdateSettings(request *ms.Settings) (*ms.TaskInfo, error) {
	f.settings = request
	f.nextUID++
	return &ms.TaskInfo{TaskUID: f.nextUID}, nil
}

func makeCourts(n int) ([]string, []models.CourtRecord) {
	ids := make([]string, n)
	courts := make([]models.CourtRecord, n)
	for i := 0; i < n; i++ {
		ids[i] = fmt.Sprintf("%024x", i)
		courts[i] = models.NewCourtRecord(models.TierSmall, fmt.Sprintf("Court %d", i), "Recreation Center, Boise, ID", 43.6, -116.2, 4.0, 8)
	}
	return ids, courts
}

func TestCourtIndex_IndexCourtsInBatches(t *testing.T) {
	fake := &fakeIndex{}
	ci := newCourtIndex(fake, "courts", 2, zap.NewNop())

	ids, courts := makeCourts(5)
	indexed, err := ci.IndexCourts(ids, courts)

	require.NoError(t, err)
	assert.Equal(t, 5, indexed)
	require.Len(t, fake.batches, 3)
	assert.Len(t, fake.batches[0], 2)
	assert.Len(t, fake.batches[2], 1)
	assert.Equal(t, ids[4], fake.batches[2][0].ID)
}

func TestCourtIndex_IndexCourtsMismatch(t *testing.T) {
	ci := newCourtIndex(&fakeIndex{}, "courts", 0, zap.NewNop())

	ids, courts := makeCourts(2)
	_, err := ci.IndexCourts(ids[:1], courts)
	assert.Error(t, err)
}

func TestCourtIndex_IndexCourtsError(t *testing.T) {
	fake := &fakeIndex{addErr: errors.New("meili down")}
	ci := newCourtIndex(fake, "courts", 0, zap.NewNop())

	ids, courts := makeCourts(3)
	indexed, err := ci.IndexCourts(ids, courts)

	require.Error(t, err)
	assert.Equal(t, 0, indexed)
	assert.Contains(t, err.Error(), "meili down")
}

func TestCourtIndex_ConfigureAndClear(t *testing.T) {
	fake := &fakeIndex{}
	ci := newCourtIndex(fake, "courts", 0, zap.NewNop())

	require.NoError(t, ci.Configure())
	require.NotNil(t, fake.settings)
	assert.Contains(t, fake.settings.FilterableAttributes, "_geo")
	assert.Equal(t, []string{"name", "address"}, fake.settings.SearchableAttributes)

	require.NoError(t, ci.Clear())
	assert.Equal(t, 1, fake.cleared)
}

func TestNewCourtDocument(t *testing.T) {
	court := models.NewCourtRecord(models.TierMajor, "Rucker Park - New York", "Rucker Park, New York, NY", 40.8303, -73.9389, 4.0, 12)
	doc := NewCourtDocument("65a1b2c3d4e5f60718293a4b", court)

	assert.Equal(t, "65a1b2c3d4e5f60718293a4b", doc.ID)
	assert.Equal(t, GeoPoint{Lat: 40.8303, Lng: -73.9389}, doc.Geo)
	assert.Equal(t, "555-0100", doc.PhoneNumber)
	assert.Equal(t, 12, doc.AveragePlayers)
}
