// Package status derives the system-wide status banner from the current
// set of services. It holds no state; callers recompute on every read.
package status

import "github.com/statuspad-dev/statuspad/internal/models"

const (
	MessageOperational = "All Systems Operational"
	MessageOutage      = "Some Systems Experiencing Issues"
	MessageDegraded    = "Some Systems Experiencing Degraded Performance"
)

// Overall classifies the visible services by a priority scan: any partial
// or major outage wins, then any degraded service, otherwise operational.
// Ties always resolve to the worse classification; an empty set is
// operational by convention.
func Overall(services []models.Service) (models.ServiceStatus, string) {
	hasOutage := false
	hasDegraded := false

	for _, svc := range services {
		if !svc.IsVisible {
			continue
		}

		switch svc.Status {
		case models.StatusMajorOutage, models.StatusPartialOutage:
			hasOutage = true
		case models.StatusDegraded:
			hasDegraded = true
		}
	}

	if hasOutage {
		return models.StatusMajorOutage, MessageOutage
	}

	if hasDegraded {
		return models.StatusDegraded, MessageDegraded
	}

	return models.StatusOperational, MessageOperational
}
