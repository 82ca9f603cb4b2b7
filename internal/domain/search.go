package domain

// PriceObjective is the unit basis selected for comparing product prices.
type PriceObjective string

const (
	ObjectiveNone    PriceObjective = "none"
	ObjectiveUnit    PriceObjective = "unit"
	ObjectiveKg      PriceObjective = "kg"
	ObjectiveLiter   PriceObjective = "liter"
	ObjectivePackage PriceObjective = "package"
)

// Valid reports whether the objective is one of the supported values.
func (o PriceObjective) Valid() bool {
	switch o {
	case ObjectiveNone, ObjectiveUnit, ObjectiveKg, ObjectiveLiter, ObjectivePackage:
		return true
	}
	return false
}

// PriceFieldName returns the JSON field name the model is instructed to use
// for the per-basis price (e.g. "price_per_kg"). Empty for ObjectiveNone.
func (o PriceObjective) PriceFieldName() string {
	if o == ObjectiveNone {
		return ""
	}
	return "price_per_" + string(o)
}

// DisplaySuffix returns the suffix appended to a per-basis price when
// rendering (e.g. "/kg"). For ObjectiveUnit a custom unit label takes
// precedence over the generic "/unit".
func (o PriceObjective) DisplaySuffix(unitType string) string {
	switch o {
	case ObjectiveUnit:
		if unitType != "" {
			return "/" + unitType
		}
		return "/unit"
	case ObjectiveKg:
		return "/kg"
	case ObjectiveLiter:
		return "/L"
	case ObjectivePackage:
		return "/pkg"
	}
	return ""
}

// SearchRequest describes one product search. Immutable once constructed.
type SearchRequest struct {
	Category           string         `json:"category" binding:"required"`
	ProductName        string         `json:"product_name" binding:"required"`
	TechSpec           string         `json:"tech_spec"`
	PriceCalcObjective PriceObjective `json:"price_calc_objective"`
	// UnitLabel is only meaningful when PriceCalcObjective is ObjectiveUnit.
	UnitLabel string `json:"unit_label,omitempty"`
}

// Objective returns the requested objective, defaulting to ObjectiveNone
// when the field was omitted from the request body.
func (r *SearchRequest) Objective() PriceObjective {
	if r.PriceCalcObjective == "" {
		return ObjectiveNone
	}
	return r.PriceCalcObjective
}

// SearchStatus distinguishes a search that found products from one that
// genuinely matched nothing and from one that failed in transport or parsing.
type SearchStatus string

const (
	StatusFound  SearchStatus = "found"
	StatusEmpty  SearchStatus = "empty"
	StatusFailed SearchStatus = "failed"
)

// SearchOutcome is the result of one completed orchestration. Products is
// empty for both StatusEmpty and StatusFailed; Diagnostic carries the cause
// only when the search failed.
type SearchOutcome struct {
	Products   []Product    `json:"products"`
	Status     SearchStatus `json:"status"`
	Diagnostic string       `json:"diagnostic,omitempty"`
}

// HistoryTimeFormat is the seconds-resolution, locale-independent timestamp
// format used for history entries.
const HistoryTimeFormat = "2006-01-02 15:04:05"

// HistoryEntry is a stored record of one completed search, its inputs, and
// its results. Entries are never mutated after being appended.
type HistoryEntry struct {
	Timestamp  string        `json:"timestamp"`
	Request    SearchRequest `json:"request"`
	Products   []Product     `json:"products"`
	Status     SearchStatus  `json:"status"`
	Diagnostic string        `json:"diagnostic,omitempty"`
}
