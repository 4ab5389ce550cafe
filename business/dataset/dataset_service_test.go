package dataset

import (
	"context"
	"errors"
	"testing"

	"dataMarket/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDatasetRepo struct {
	datasets []domain.Dataset
	err      error
}

func (f *fakeDatasetRepo) FindAll(ctx context.Context) ([]domain.Dataset, error) {
	return f.datasets, f.err
}

func (f *fakeDatasetRepo) FindByID(ctx context.Context, id uint64) (domain.Dataset, bool, error) {
	if f.err != nil {
		return domain.Dataset{}, false, f.err
	}
	for _, d := range f.datasets {
		if d.ID == id {
			return d, true, nil
		}
	}
	return domain.Dataset{}, false, nil
}

var catalog = []domain.Dataset{
	{ID: 1, Name: "Cell voltages", Category: "battery"},
	{ID: 2, Name: "Charger sessions", Category: "charging"},
	{ID: 3, Name: "Cycle life", Category: "Battery"},
}

func TestGetAllDatasets(t *testing.T) {
	svc := NewDatasetService(&fakeDatasetRepo{datasets: catalog})

	all, err := svc.GetAllDatasets(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	battery, err := svc.GetAllDatasets(context.Background(), " battery ")
	require.NoError(t, err)
	require.Len(t, battery, 2)
	assert.Equal(t, uint64(1), battery[0].ID)
	assert.Equal(t, uint64(3), battery[1].ID)
}

func TestGetAllDatasetsError(t *testing.T) {
	svc := NewDatasetService(&fakeDatasetRepo{err: errors.New("db down")})

	_, err := svc.GetAllDatasets(context.Background(), "")
	assert.EqualError(t, err, "db down")
}

func TestGetDatasetByID(t *testing.T) {
	svc := NewDatasetService(&fakeDatasetRepo{datasets: catalog})

	d, err := svc.GetDatasetByID(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Charger sessions", d.Name)

	_, err = svc.GetDatasetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrDatasetNotFound)

	_, err = svc.GetDatasetByID(context.Background(), 0)
	assert.ErrorIs(t, err, ErrDatasetNotFound)
}
