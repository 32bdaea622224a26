package analysis

// Vocabulary is the closed set of biases the classifier may emit, in a
// stable display order. Gateway output referencing any other id is
// rejected at the schema boundary.
var Vocabulary = []BiasInfo{
	{
		ID:            BiasConfirmation,
		Name:          "Confirmation Bias",
		Description:   "The tendency to search for, interpret, favor, and recall information in a way that confirms one's preexisting beliefs or hypotheses.",
		Counteraction: "Actively seek out contradictory evidence and alternative viewpoints. Consider what might prove your beliefs wrong.",
	},
	{
		ID:            BiasAnchoring,
		Name:          "Anchoring Bias",
		Description:   "The tendency to rely too heavily on the first piece of information encountered (the 'anchor') when making decisions.",
		Counteraction: "Consider multiple reference points and deliberately challenge your initial impressions before making decisions.",
	},
	{
		ID:            BiasAvailability,
		Name:          "Availability Heuristic",
		Description:   "The tendency to overestimate the likelihood of events with greater 'availability' in memory, which can be influenced by how recent, unusual, or emotionally charged these events are.",
		Counteraction: "Look for objective data rather than relying on examples that come easily to mind. Consider statistical evidence over anecdotes.",
	},
	{
		ID:            BiasSurvivorship,
		Name:          "Survivorship Bias",
		Description:   "The logical error of concentrating on people or things that made it past some selection process and overlooking those that did not, typically because of their lack of visibility.",
		Counteraction: "Consider the 'silent evidence' - look for what you don't see and ask about failures, not just successes.",
	},
	{
		ID:            BiasBandwagon,
		Name:          "Bandwagon Effect",
		Description:   "The tendency to do or believe things because many other people do or believe the same.",
		Counteraction: "Make decisions based on your own research and values, not just because something is popular or trending.",
	},
	{
		ID:            BiasDunningKruger,
		Name:          "Dunning-Kruger Effect",
		Description:   "A cognitive bias in which people with limited knowledge or competence in a given intellectual or social domain greatly overestimate their competence.",
		Counteraction: "Embrace a growth mindset, seek feedback from experts, and be open to recognizing the limits of your knowledge.",
	},
	{
		ID:            BiasNegativity,
		Name:          "Negativity Bias",
		Description:   "The tendency to give more weight to negative experiences or information than positive ones.",
		Counteraction: "Deliberately focus on positive aspects and achievements. Practice gratitude and balanced thinking.",
	},
	{
		ID:            BiasSunkCost,
		Name:          "Sunk Cost Fallacy",
		Description:   "The tendency to continue an endeavor due to previously invested resources (time, money, effort) despite new evidence suggesting that the cost of continuing outweighs the benefits.",
		Counteraction: "Focus on future costs and benefits rather than past investments when making decisions.",
	},
	{
		ID:            BiasHindsight,
		Name:          "Hindsight Bias",
		Description:   "The tendency to see past events as being more predictable than they actually were.",
		Counteraction: "Write down predictions before outcomes are known and review them honestly afterwards.",
	},
	{
		ID:            BiasActorObserver,
		Name:          "Actor-Observer Bias",
		Description:   "The tendency to attribute one's own actions to external causes while attributing other people's behaviors to internal causes.",
		Counteraction: "Before judging someone, imagine the situational pressures that would lead you to act the same way.",
	},
	{
		ID:            BiasOptimism,
		Name:          "Optimism Bias",
		Description:   "The tendency to be overly optimistic, overestimating favorable and pleasing outcomes.",
		Counteraction: "Run a premortem: assume the plan failed and list the reasons why before committing.",
	},
	{
		ID:            BiasPessimism,
		Name:          "Pessimism Bias",
		Description:   "The tendency to overestimate the likelihood of negative outcomes.",
		Counteraction: "List concrete evidence for and against the feared outcome instead of relying on the feeling alone.",
	},
	{
		ID:            BiasStatusQuo,
		Name:          "Status Quo Bias",
		Description:   "The tendency to prefer that things stay the same, seeing any change as a loss.",
		Counteraction: "Evaluate the current state as if it were a new option competing against the alternatives.",
	},
	{
		ID:            BiasFramingEffect,
		Name:          "Framing Effect",
		Description:   "Drawing different conclusions from the same information, depending on how that information is presented.",
		Counteraction: "Restate the problem in at least one opposite frame (gains vs losses) before deciding.",
	},
	{
		ID:            BiasHaloEffect,
		Name:          "Halo Effect",
		Description:   "The tendency for a positive impression of a person, company, brand, or product in one area to positively influence one's opinion or feelings in other areas.",
		Counteraction: "Judge each attribute on its own evidence rather than extending one strong impression to everything else.",
	},
	{
		ID:            BiasFalseConsensus,
		Name:          "False Consensus Effect",
		Description:   "The tendency to overestimate the extent to which one's own opinions, beliefs, preferences, values, and habits are normal and typical of those of others.",
		Counteraction: "Ask people who are unlike you before assuming your view is the common one.",
	},
	{
		ID:            BiasReactance,
		Name:          "Reactance",
		Description:   "The tendency to do the opposite of what you are being told to do, in order to assert your sense of freedom.",
		Counteraction: "Separate the merit of the advice from your feeling about being told; would you choose it if nobody had asked?",
	},
}

var validBiasIDs = func() map[BiasID]struct{} {
	m := make(map[BiasID]struct{}, len(Vocabulary))
	for _, b := range Vocabulary {
		m[b.ID] = struct{}{}
	}
	return m
}()

// ValidBiasID reports whether id belongs to the vocabulary.
func ValidBiasID(id BiasID) bool {
	_, ok := validBiasIDs[id]
	return ok
}
