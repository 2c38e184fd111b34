package models

// ServiceStatus is the operator-set health of a service or component.
type ServiceStatus string

const (
	StatusOperational   ServiceStatus = "operational"
	StatusDegraded      ServiceStatus = "degraded"
	StatusPartialOutage ServiceStatus = "partial_outage"
	StatusMajorOutage   ServiceStatus = "major_outage"
)

func (s ServiceStatus) String() string {
	return string(s)
}

func (s ServiceStatus) IsValid() bool {
	switch s {
	case StatusOperational, StatusDegraded, StatusPartialOutage, StatusMajorOutage:
		return true
	default:
		return false
	}
}

// Severity ranks statuses from healthy to broken. Higher is worse.
func (s ServiceStatus) Severity() int {
	switch s {
	case StatusDegraded:
		return 1
	case StatusPartialOutage:
		return 2
	case StatusMajorOutage:
		return 3
	default:
		return 0
	}
}

// IncidentStatus is the lifecycle state of an incident. Incidents start
// as investigating; resolved is terminal (reopening means a new incident).
type IncidentStatus string

const (
	IncidentInvestigating IncidentStatus = "investigating"
	IncidentIdentified    IncidentStatus = "identified"
	IncidentMonitoring    IncidentStatus = "monitoring"
	IncidentResolved      IncidentStatus = "resolved"
)

func (s IncidentStatus) String() string {
	return string(s)
}

func (s IncidentStatus) IsValid() bool {
	switch s {
	case IncidentInvestigating, IncidentIdentified, IncidentMonitoring, IncidentResolved:
		return true
	default:
		return false
	}
}

// Impact is the severity an incident or maintenance window carries, both
// overall and per affected service.
type Impact string

const (
	ImpactNone     Impact = "none"
	ImpactMinor    Impact = "minor"
	ImpactMajor    Impact = "major"
	ImpactCritical Impact = "critical"
)

func (i Impact) String() string {
	return string(i)
}

func (i Impact) IsValid() bool {
	switch i {
	case ImpactNone, ImpactMinor, ImpactMajor, ImpactCritical:
		return true
	default:
		return false
	}
}

// MaintenanceStatus is the lifecycle state of a maintenance window.
// completed and cancelled are terminal.
type MaintenanceStatus string

const (
	MaintenanceScheduled  MaintenanceStatus = "scheduled"
	MaintenanceInProgress MaintenanceStatus = "in_progress"
	MaintenanceCompleted  MaintenanceStatus = "completed"
	MaintenanceCancelled  MaintenanceStatus = "cancelled"
)

func (s MaintenanceStatus) String() string {
	return string(s)
}

func (s MaintenanceStatus) IsValid() bool {
	switch s {
	case MaintenanceScheduled, MaintenanceInProgress, MaintenanceCompleted, MaintenanceCancelled:
		return true
	default:
		return false
	}
}

func (s MaintenanceStatus) IsTerminal() bool {
	return s == MaintenanceCompleted || s == MaintenanceCancelled
}
