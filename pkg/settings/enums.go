package settings

import "github.com/ThiRaBrTNK/Radarr/pkg/selectoptions"

// SabnzbdPriority is the queue priority SABnzbd assigns to a job.
type SabnzbdPriority int

const (
	SabnzbdPriorityDefault SabnzbdPriority = -100
	SabnzbdPriorityPaused  SabnzbdPriority = -2
	SabnzbdPriorityLow     SabnzbdPriority = -1
	SabnzbdPriorityNormal  SabnzbdPriority = 0
	SabnzbdPriorityHigh    SabnzbdPriority = 1
	SabnzbdPriorityForce   SabnzbdPriority = 2
)

func (p SabnzbdPriority) String() string {
	switch p {
	case SabnzbdPriorityDefault:
		return "Default"
	case SabnzbdPriorityPaused:
		return "Paused"
	case SabnzbdPriorityLow:
		return "Low"
	case SabnzbdPriorityNormal:
		return "Normal"
	case SabnzbdPriorityHigh:
		return "High"
	case SabnzbdPriorityForce:
		return "Force"
	}
	return "Unknown"
}

// SabnzbdPriorities offers every SabnzbdPriority in select fields.
var SabnzbdPriorities = selectoptions.Enum("sabnzbdPriority",
	SabnzbdPriorityDefault,
	SabnzbdPriorityPaused,
	SabnzbdPriorityLow,
	SabnzbdPriorityNormal,
	SabnzbdPriorityHigh,
	SabnzbdPriorityForce,
)

// MovieStatus is the release stage a movie must reach before it is
// considered available.
type MovieStatus int

const (
	MovieStatusTBA MovieStatus = iota
	MovieStatusAnnounced
	MovieStatusInCinemas
	MovieStatusReleased
	MovieStatusPreDB
)

func (s MovieStatus) String() string {
	switch s {
	case MovieStatusTBA:
		return "TBA"
	case MovieStatusAnnounced:
		return "Announced"
	case MovieStatusInCinemas:
		return "In Cinemas"
	case MovieStatusReleased:
		return "Physical / Web"
	case MovieStatusPreDB:
		return "PreDB"
	}
	return "Unknown"
}

// MovieStatuses offers every MovieStatus in select fields.
var MovieStatuses = selectoptions.Enum("movieStatus",
	MovieStatusTBA,
	MovieStatusAnnounced,
	MovieStatusInCinemas,
	MovieStatusReleased,
	MovieStatusPreDB,
)
