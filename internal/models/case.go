package models

import (
	"strings"
	"time"
)

type LandlordType string

const (
	LandlordSocial  LandlordType = "social"
	LandlordPrivate LandlordType = "private"
	LandlordUnknown LandlordType = "unknown"
)

// ParseLandlordType normalises free input; anything unrecognised is treated
// as unknown rather than rejected.
func ParseLandlordType(s string) LandlordType {
	switch LandlordType(strings.ToLower(strings.TrimSpace(s))) {
	case LandlordSocial:
		return LandlordSocial
	case LandlordPrivate:
		return LandlordPrivate
	default:
		return LandlordUnknown
	}
}

// Document is one piece of case material. ExtractedText is supplied by the
// upstream document store; no extraction happens here.
type Document struct {
	Name          string `json:"name"`
	Type          string `json:"type,omitempty"`
	ExtractedText string `json:"extractedText,omitempty"`
}

// HazardInput is the full set of case material and structured flags for one
// evaluation. All fields except CaseTitle are optional; missing fields read
// as "no evidence".
type HazardInput struct {
	CaseTitle           string       `json:"caseTitle"`
	Documents           []Document   `json:"documents,omitempty"`
	Notes               string       `json:"notes,omitempty"`
	LandlordType        LandlordType `json:"landlordType"`
	FirstComplaintDate  *time.Time   `json:"firstComplaintDate,omitempty"`
	HasChildOccupant    bool         `json:"hasChildOccupant,omitempty"`
	HasElderlyOccupant  bool         `json:"hasElderlyOccupant,omitempty"`
	HasDisabledOccupant bool         `json:"hasDisabledOccupant,omitempty"`
}
