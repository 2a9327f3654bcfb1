// Package planning holds the read-only record trees the reports are built
// from. Values are loaded fully by the store before rendering starts.
//
// Numeric display fields (budgets, weights) are kept as the raw stored text
// so that malformed values can be reported instead of failing the load.
package planning

import "time"

// Audit carries record authorship metadata. Any field may be empty.
type Audit struct {
	CreatedBy string
	CreatedAt *time.Time
	UpdatedAt *time.Time
}

// PublicEntity is the institution that owns a plan or program.
type PublicEntity struct {
	ID      int64
	Name    string
	Acronym string
	Sector  string
}

// ---------------------------------------------------------------------------
// Institutional Plan
// ---------------------------------------------------------------------------

// Plan is an institutional plan with its strategic objectives.
type Plan struct {
	ID         int64
	Name       string
	Version    string
	Status     string
	Budget     string
	Start      *time.Time
	End        *time.Time
	Entity     *PublicEntity
	Objectives []StrategicObjective
	Audit      Audit
}

// StrategicObjective is one objective of a plan.
type StrategicObjective struct {
	ID         int64
	Code       string
	Name       string
	Weight     string // percentage
	Start      *time.Time
	End        *time.Time
	Indicators []Indicator
	Alignments []Alignment
}

// Indicator measures progress of a strategic objective.
type Indicator struct {
	ID        int64
	Name      string
	Unit      string
	Baseline  string
	Target    string
	Frequency string
}

// Alignment links a strategic objective to the national development plan
// (PND) and the sustainable development goals (ODS).
type Alignment struct {
	ID           int64
	PNDObjective string
	PNDPolicy    string
	ODSGoal      string
	ODSTarget    string
}

// ---------------------------------------------------------------------------
// Program
// ---------------------------------------------------------------------------

// Program groups projects under a common budget.
type Program struct {
	ID          int64
	Name        string
	Status      string
	Budget      string
	Coordinator string
	Start       *time.Time
	End         *time.Time
	Entity      *PublicEntity
	Projects    []Project
	Audit       Audit
}

// Project is one project of a program.
type Project struct {
	ID         int64
	Code       string
	Name       string
	Status     string
	Budget     string
	Start      *time.Time
	End        *time.Time
	Activities []Activity
}

// Activity is a scheduled unit of work of a project.
type Activity struct {
	ID          int64
	Name        string
	Responsible string
	Status      string
	Budget      string
	Start       *time.Time
	End         *time.Time
}
