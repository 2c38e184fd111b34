package status_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/statuspad-dev/statuspad/internal/models"
	"github.com/statuspad-dev/statuspad/internal/status"
)

func svc(s models.ServiceStatus, visible bool) models.Service {
	return models.Service{Name: "svc", Status: s, IsVisible: visible}
}

func TestOverall(t *testing.T) {
	tests := []struct {
		name        string
		services    []models.Service
		wantStatus  models.ServiceStatus
		wantMessage string
	}{
		{
			name:        "empty set is operational",
			services:    nil,
			wantStatus:  models.StatusOperational,
			wantMessage: status.MessageOperational,
		},
		{
			name: "all operational",
			services: []models.Service{
				svc(models.StatusOperational, true),
				svc(models.StatusOperational, true),
			},
			wantStatus:  models.StatusOperational,
			wantMessage: status.MessageOperational,
		},
		{
			name: "degraded service",
			services: []models.Service{
				svc(models.StatusOperational, true),
				svc(models.StatusDegraded, true),
			},
			wantStatus:  models.StatusDegraded,
			wantMessage: status.MessageDegraded,
		},
		{
			name: "partial outage classifies as outage",
			services: []models.Service{
				svc(models.StatusOperational, true),
				svc(models.StatusPartialOutage, true),
			},
			wantStatus:  models.StatusMajorOutage,
			wantMessage: status.MessageOutage,
		},
		{
			name: "outage beats degraded",
			services: []models.Service{
				svc(models.StatusDegraded, true),
				svc(models.StatusMajorOutage, true),
			},
			wantStatus:  models.StatusMajorOutage,
			wantMessage: status.MessageOutage,
		},
		{
			name: "hidden services are ignored",
			services: []models.Service{
				svc(models.StatusMajorOutage, false),
				svc(models.StatusOperational, true),
			},
			wantStatus:  models.StatusOperational,
			wantMessage: status.MessageOperational,
		},
		{
			name: "only hidden services is operational",
			services: []models.Service{
				svc(models.StatusMajorOutage, false),
			},
			wantStatus:  models.StatusOperational,
			wantMessage: status.MessageOperational,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotStatus, gotMessage := status.Overall(tt.services)
			assert.Equal(t, tt.wantStatus, gotStatus)
			assert.Equal(t, tt.wantMessage, gotMessage)
		})
	}
}

func TestOverallOrderIndependent(t *testing.T) {
	services := []models.Service{
		svc(models.StatusOperational, true),
		svc(models.StatusDegraded, true),
		svc(models.StatusPartialOutage, true),
		svc(models.StatusMajorOutage, false),
	}

	wantStatus, wantMessage := status.Overall(services)

	// Rotate through every ordering of the slice.
	for i := 1; i < len(services); i++ {
		rotated := append(append([]models.Service{}, services[i:]...), services[:i]...)
		gotStatus, gotMessage := status.Overall(rotated)
		assert.Equal(t, wantStatus, gotStatus)
		assert.Equal(t, wantMessage, gotMessage)
	}
}
