// Package validate evaluates placed assets against the site boundary,
// constraint zones, and each other.
package validate

import (
	"fmt"

	"siteplan/internal/modules/geometry"
	"siteplan/internal/modules/layout"
	"siteplan/internal/types"
)

// Severity of a violation, distinct from a zone's regulatory severity.
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Violation is a detected conflict. Violations are ephemeral: the whole
// list is a pure function of (assets, zones, boundary) at evaluation time
// and is recomputed wholesale on every relevant change, never patched.
type Violation struct {
	AssetID        types.ID        `json:"assetId"`
	ConstraintType layout.ZoneType `json:"constraintType"`
	Severity       Severity        `json:"severity"`
	Message        string          `json:"message"`
	Location       types.Point     `json:"location"`
}

// Validate runs all checks in a fixed order so output is deterministic:
//
//  1. boundary containment, per asset in input order;
//  2. zone intersection, asset-major then zone-minor;
//  3. asset overlap, per unordered pair i<j, emitting two violations —
//     one attributed to each asset.
//
// A nil boundary, no zones, or no assets degrade to fewer checks, never
// to an error.
func Validate(assets []layout.PlacedAsset, zones []layout.ConstraintZone, boundary types.Ring) []Violation {
	violations := []Violation{}

	if len(boundary) > 0 {
		for _, a := range assets {
			if outsideBoundary(a.Footprint, boundary) {
				violations = append(violations, Violation{
					AssetID:        a.ID,
					ConstraintType: layout.ZonePropertyLine,
					Severity:       SeverityError,
					Message:        fmt.Sprintf("%s extends beyond the property boundary", a.Type),
					Location:       a.Pose.Position,
				})
			}
		}
	}

	for _, a := range assets {
		for _, z := range zones {
			if geometry.RingsIntersect(a.Footprint, z.Ring) {
				violations = append(violations, Violation{
					AssetID:        a.ID,
					ConstraintType: z.Type,
					Severity:       zoneSeverity(z.Severity),
					Message:        fmt.Sprintf("%s intersects %s zone %s", a.Type, z.Type, z.ID),
					Location:       a.Pose.Position,
				})
			}
		}
	}

	for i := 0; i < len(assets); i++ {
		for j := i + 1; j < len(assets); j++ {
			if geometry.RingsIntersect(assets[i].Footprint, assets[j].Footprint) {
				violations = append(violations,
					overlapViolation(assets[i], assets[j]),
					overlapViolation(assets[j], assets[i]))
			}
		}
	}

	return violations
}

// outsideBoundary reports whether any footprint corner falls outside the
// boundary ring.
func outsideBoundary(footprint, boundary types.Ring) bool {
	for _, corner := range geometry.OpenRing(footprint) {
		if !geometry.PointInRing(corner, boundary) {
			return true
		}
	}
	return false
}

func overlapViolation(subject, other layout.PlacedAsset) Violation {
	return Violation{
		AssetID:        subject.ID,
		ConstraintType: layout.ZoneExclusion,
		Severity:       SeverityError,
		Message:        fmt.Sprintf("%s overlaps %s %s", subject.Type, other.Type, other.ID),
		Location:       subject.Pose.Position,
	}
}

func zoneSeverity(s layout.ZoneSeverity) Severity {
	if s == layout.SeverityHigh {
		return SeverityError
	}
	return SeverityWarning
}

// ViolatingAssetIDs collapses a violation list to the set of implicated
// asset ids, the shape the renderer consumes for highlighting.
func ViolatingAssetIDs(violations []Violation) map[types.ID]bool {
	ids := make(map[types.ID]bool, len(violations))
	for _, v := range violations {
		ids[v.AssetID] = true
	}
	return ids
}
