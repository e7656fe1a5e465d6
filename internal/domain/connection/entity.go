package connection

import (
	"time"

	"github.com/google/uuid"
)

type RelationshipStrength string

const (
	RelationshipDecisionMaker RelationshipStrength = "decision_maker"
	RelationshipStrongContact RelationshipStrength = "strong_contact"
	RelationshipAcquaintance  RelationshipStrength = "acquaintance"
)

var RelationshipStrengths = []RelationshipStrength{
	RelationshipDecisionMaker,
	RelationshipStrongContact,
	RelationshipAcquaintance,
}

func IsValidRelationship(v string) bool {
	for _, r := range RelationshipStrengths {
		if string(r) == v {
			return true
		}
	}
	return false
}

var Sectors = []string{
	"Corporate",
	"Government",
	"Non-Profit",
	"Education",
	"Healthcare",
	"Faith-Based",
	"Community Organization",
	"Small Business",
	"Media",
	"Sports & Recreation",
	"Arts & Culture",
	"Technology",
	"Finance",
	"Legal",
	"Other",
}

func IsValidSector(v string) bool {
	for _, s := range Sectors {
		if s == v {
			return true
		}
	}
	return false
}

type Connection struct {
	ID                   uuid.UUID
	UserID               uuid.UUID
	Sector               string
	OrganizationName     string
	RelationshipStrength RelationshipStrength
	ContactName          string
	CreatedAt            time.Time
}
