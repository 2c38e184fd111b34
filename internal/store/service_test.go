package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statuspad-dev/statuspad/internal/models"
	"github.com/statuspad-dev/statuspad/internal/store"
)

func TestCreateServiceDefaultsToOperational(t *testing.T) {
	gdb := openTestDB(t)
	services := store.NewServiceStore(gdb)

	service, err := services.Create(context.Background(), store.CreateServiceParams{
		Name:      "API",
		IsVisible: true,
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusOperational, service.Status)

	_, err = services.Create(context.Background(), store.CreateServiceParams{Name: "  "})
	assert.True(t, store.IsValidation(err))
}

func TestUpdateServicePartial(t *testing.T) {
	gdb := openTestDB(t)
	services := store.NewServiceStore(gdb)

	service := createService(t, gdb, "API", models.StatusOperational)

	status := models.StatusDegraded
	updated, err := services.Update(context.Background(), service.ID, store.UpdateServiceParams{
		Status: &status,
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusDegraded, updated.Status)
	// Fields not named in the request keep their stored values.
	assert.Equal(t, "API", updated.Name)
	assert.True(t, updated.IsVisible)
}

func TestListOrdersByOrderThenName(t *testing.T) {
	gdb := openTestDB(t)
	services := store.NewServiceStore(gdb)

	_, err := services.Create(context.Background(), store.CreateServiceParams{Name: "Zeta", Order: 1, IsVisible: true})
	require.NoError(t, err)
	_, err = services.Create(context.Background(), store.CreateServiceParams{Name: "Alpha", Order: 2, IsVisible: true})
	require.NoError(t, err)
	_, err = services.Create(context.Background(), store.CreateServiceParams{Name: "Beta", Order: 1, IsVisible: true})
	require.NoError(t, err)

	list, err := services.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Beta", list[0].Name)
	assert.Equal(t, "Zeta", list[1].Name)
	assert.Equal(t, "Alpha", list[2].Name)
}

func TestListVisibleSkipsHidden(t *testing.T) {
	gdb := openTestDB(t)
	services := store.NewServiceStore(gdb)

	_, err := services.Create(context.Background(), store.CreateServiceParams{Name: "Public", IsVisible: true})
	require.NoError(t, err)
	_, err = services.Create(context.Background(), store.CreateServiceParams{Name: "Internal", IsVisible: false})
	require.NoError(t, err)

	visible, err := services.ListVisible(context.Background())
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, "Public", visible[0].Name)
}

func TestDeleteServiceRemovesLinksAndComponents(t *testing.T) {
	gdb := openTestDB(t)
	services := store.NewServiceStore(gdb)
	incidents := store.NewIncidentStore(gdb)
	maintenances := store.NewMaintenanceStore(gdb)

	service := createService(t, gdb, "API", models.StatusOperational)

	_, err := services.CreateComponent(context.Background(), service.ID, store.CreateComponentParams{
		Name:      "Public endpoint",
		IsVisible: true,
	})
	require.NoError(t, err)

	incident, err := incidents.Create(context.Background(), store.CreateIncidentParams{
		Title:      "API down",
		ServiceIDs: []uint{service.ID},
	})
	require.NoError(t, err)

	start := time.Now().Add(time.Hour)
	maintenance, err := maintenances.Create(context.Background(), store.CreateMaintenanceParams{
		Title:              "API upgrade",
		ScheduledStartTime: start,
		ScheduledEndTime:   start.Add(time.Hour),
		ServiceIDs:         []uint{service.ID},
	})
	require.NoError(t, err)

	require.NoError(t, services.Delete(context.Background(), service.ID))

	_, err = services.Get(context.Background(), service.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	var components, incidentLinks, maintenanceLinks int64
	require.NoError(t, gdb.Model(&models.Component{}).Where("service_id = ?", service.ID).Count(&components).Error)
	require.NoError(t, gdb.Model(&models.IncidentService{}).Where("service_id = ?", service.ID).Count(&incidentLinks).Error)
	require.NoError(t, gdb.Model(&models.MaintenanceService{}).Where("service_id = ?", service.ID).Count(&maintenanceLinks).Error)
	assert.Zero(t, components)
	assert.Zero(t, incidentLinks)
	assert.Zero(t, maintenanceLinks)

	// Incident and maintenance survive, just without the association.
	detail, err := incidents.Get(context.Background(), incident.ID)
	require.NoError(t, err)
	assert.Empty(t, detail.Services)

	mDetail, err := maintenances.Get(context.Background(), maintenance.ID)
	require.NoError(t, err)
	assert.Empty(t, mDetail.Services)
}

func TestComponentScopedToService(t *testing.T) {
	gdb := openTestDB(t)
	services := store.NewServiceStore(gdb)

	api := createService(t, gdb, "API", models.StatusOperational)
	web := createService(t, gdb, "Web", models.StatusOperational)

	component, err := services.CreateComponent(context.Background(), api.ID, store.CreateComponentParams{
		Name:      "Public endpoint",
		IsVisible: true,
	})
	require.NoError(t, err)

	// Reaching the component through the wrong parent is a miss.
	_, err = services.GetComponent(context.Background(), web.ID, component.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	got, err := services.GetComponent(context.Background(), api.ID, component.ID)
	require.NoError(t, err)
	assert.Equal(t, "Public endpoint", got.Name)
}
