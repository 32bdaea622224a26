package analysis

// RecordID identifier type
type RecordID string

// BiasID enum, closed vocabulary
type BiasID string

const (
	BiasConfirmation   BiasID = "confirmation"
	BiasAnchoring      BiasID = "anchoring"
	BiasAvailability   BiasID = "availability"
	BiasSurvivorship   BiasID = "survivorship"
	BiasBandwagon      BiasID = "bandwagon"
	BiasDunningKruger  BiasID = "dunning_kruger"
	BiasNegativity     BiasID = "negativity"
	BiasSunkCost       BiasID = "sunk_cost"
	BiasHindsight      BiasID = "hindsight"
	BiasActorObserver  BiasID = "actor_observer"
	BiasOptimism       BiasID = "optimism"
	BiasPessimism      BiasID = "pessimism"
	BiasStatusQuo      BiasID = "status_quo"
	BiasFramingEffect  BiasID = "framing_effect"
	BiasHaloEffect     BiasID = "halo_effect"
	BiasFalseConsensus BiasID = "false_consensus_effect"
	BiasReactance      BiasID = "reactance"
)

// Finding is one bias asserted in a composed text with an independent
// confidence percentage (0-100). Percentages across findings are NOT
// required to sum to 100.
type Finding struct {
	ID         BiasID  `json:"id"`
	Percentage float64 `json:"percentage"`
}

// Record is the durable result of one analysis. Immutable after insert.
type Record struct {
	ID        RecordID  `json:"id"`
	Text      string    `json:"text"`
	Results   []Finding `json:"results"`
	Summary   string    `json:"summary"`
	Timestamp int64     `json:"timestamp"` // epoch millis
}

// Question is one clarifying question generated for a thought, with
// 3-5 tappable options. Never persisted.
type Question struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

// Answer pairs a generated question with the option the user chose.
// ChosenOption may be empty when the user skipped the question.
type Answer struct {
	Question     string `json:"question"`
	ChosenOption string `json:"chosenOption"`
}

// BiasInfo is display metadata for one vocabulary entry.
type BiasInfo struct {
	ID            BiasID `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Counteraction string `json:"counteraction"`
}
