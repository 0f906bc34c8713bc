package sqlstore

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBootstrapper_SeedsEveryTable(t *testing.T) {
	db := newTestDB(t)

	report, err := NewBootstrapper(db, nil, nil).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, map[string]int{
		"locations":         3,
		"location_services": 10,
		"photo_gallery":     7,
		"services":          6,
		"doctor_services":   12,
		"doctors":           8,
		"areas":             4,
	}, report.Created)
	assert.Empty(t, report.Existing)
}

func TestBootstrapper_Idempotent(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	_, err := NewBootstrapper(db, nil, nil).Run(ctx)
	require.NoError(t, err)

	report, err := NewBootstrapper(db, nil, nil).Run(ctx)
	require.NoError(t, err)
	assert.Empty(t, report.Created)
	assert.Len(t, report.Existing, len(Tables))

	var count int
	require.NoError(t, db.Get(&count, "SELECT COUNT(*) FROM doctors"))
	assert.Equal(t, 8, count)
}

func TestBootstrapper_LeavesExistingTablesAlone(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	_, err := db.Exec("CREATE TABLE areas (id INTEGER, name TEXT)")
	require.NoError(t, err)
	_, err = db.Exec("INSERT INTO areas (id, name) VALUES (1, 'Pediatria')")
	require.NoError(t, err)

	report, err := NewBootstrapper(db, nil, nil).Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"areas"}, report.Existing)
	assert.NotContains(t, report.Created, "areas")

	var names []string
	require.NoError(t, db.Select(&names, "SELECT name FROM areas"))
	assert.Equal(t, []string{"Pediatria"}, names)
}

func TestBootstrapper_PreservesFixtureOrder(t *testing.T) {
	db := newTestDB(t)
	fixtures := fstest.MapFS{}
	for _, table := range Tables {
		fixtures[table.Fixture] = &fstest.MapFile{Data: []byte("[]")}
	}
	fixtures["photoGallery.json"] = &fstest.MapFile{Data: []byte(`[
		{"id": 2, "img": "b.jpg"},
		{"id": 2, "img": "a.jpg"},
		{"id": 2, "img": "c.jpg"}
	]`)}

	report, err := NewBootstrapper(db, fixtures, nil).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, report.Created["photo_gallery"])
	assert.Equal(t, 0, report.Created["doctors"])

	var imgs []string
	require.NoError(t, db.Select(&imgs, "SELECT img FROM photo_gallery"))
	assert.Equal(t, []string{"b.jpg", "a.jpg", "c.jpg"}, imgs)
}

func TestBootstrapper_BadFixture(t *testing.T) {
	db := newTestDB(t)
	fixtures := fstest.MapFS{
		"locations.json": &fstest.MapFile{Data: []byte(`{"not": "a list"}`)},
	}

	report, err := NewBootstrapper(db, fixtures, nil).Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "locations.json")
	assert.Empty(t, report.Created)

	var exists bool
	require.NoError(t, db.Get(&exists, "SELECT EXISTS (SELECT 1 FROM sqlite_master WHERE name = 'locations')"))
	assert.False(t, exists)
}

func TestTable_Statements(t *testing.T) {
	areas := Tables[len(Tables)-1]

	assert.Equal(t, "CREATE TABLE areas (id INTEGER, name TEXT)", areas.createStatement())
	assert.Equal(t, "INSERT INTO areas (id, name) VALUES (:id, :name)", areas.insertStatement())
}
