package screening

import "fmt"

// charWindow is the character-distance window for the OCD compulsion pairs.
// The two concepts must appear within this many characters of each other, in
// either order.
const charWindow = 80

// bidirectional emits two explicit catalog entries covering both orderings of
// a and b within the given character window. Two plain entries are kept
// instead of one combined alternation so each ordering stays auditable.
func bidirectional(a, b string, window, weight int, description string) []Pattern {
	gap := fmt.Sprintf(".{0,%d}", window)
	return []Pattern{
		{Regex: a + gap + b, Weight: weight, Description: description},
		{Regex: b + gap + a, Weight: weight, Description: description},
	}
}

// DefaultCategories returns the standard anxiety category catalogs.
//
// Patterns are written against normalized text. Contractions appear both
// with and without the apostrophe because normalization drops curly quotes
// outright ("can’t" becomes "cant").
func DefaultCategories() []CategoryConfig {
	ocd := []Pattern{
		{Regex: `\bocd\b`, Weight: 3, Description: "ocd mention"},
		{Regex: `compuls(ion|ions|ive)`, Weight: 3, Description: "compulsion language"},
		{Regex: `intrusive thoughts?`, Weight: 3, Description: "intrusive thoughts"},
	}
	ocd = append(ocd, bidirectional(
		`(can'?t|cannot) stop`,
		`(checking|washing|cleaning|counting|rituals?)`,
		charWindow, 3, "unable to stop compulsive behavior")...)
	ocd = append(ocd, bidirectional(
		`(urge|need) to`,
		`(check|wash|clean|count|repeat)`,
		charWindow, 3, "compulsive urge")...)
	ocd = append(ocd, bidirectional(
		`rituals?`,
		`(until it feels right|feels? right|reliev(e|es|ed|ing)( the| my)? anxiety|anxiety goes away)`,
		charWindow, 3, "ritual tied to anxiety relief")...)

	return []CategoryConfig{
		{
			Name:      CategoryGeneralAnxiety,
			Threshold: 2,
			Patterns: []Pattern{
				{Regex: `anxious`, Weight: 2, Description: "anxious"},
				{Regex: `anxiety attacks?`, Weight: 3, Description: "anxiety attack"},
				{Regex: `panic wave`, Weight: 3, Description: "panic wave"},
				{Regex: `constant (worry|fear)`, Weight: 2, Description: "constant worry or fear"},
				{Regex: `overwhelmed`, Weight: 2, Description: "overwhelmed"},
				{Regex: `nervous`, Weight: 2, Description: "nervous"},
				{Regex: `restless`, Weight: 2, Description: "restless"},
				{Regex: `stressed`, Weight: 2, Description: "stressed"},
				{Regex: `worried`, Weight: 2, Description: "worried"},
			},
		},
		{
			Name:      CategoryPanic,
			Threshold: 4,
			Patterns: []Pattern{
				{Regex: `panic attacks?`, Weight: 3, Description: "panic attack"},
				{Regex: `heart (is |was )?(racing|pounding)`, Weight: 2, Description: "racing or pounding heart"},
				{Regex: `(can'?t|cannot) breathe`, Weight: 2, Description: "unable to breathe"},
				{Regex: `chest (pain|tight(ness)?)`, Weight: 2, Description: "chest pain or tightness"},
				{Regex: `feel like (i'?m )?dying`, Weight: 2, Description: "feeling of dying"},
				{Regex: `losing control`, Weight: 2, Description: "losing control"},
				{Regex: `dissociat(e|ing|ion)`, Weight: 2, Description: "dissociation"},
			},
		},
		{
			Name:      CategoryPTSD,
			Threshold: 4,
			Patterns: []Pattern{
				{Regex: `flashbacks?`, Weight: 3, Description: "flashbacks"},
				{Regex: `nightmares?`, Weight: 2, Description: "nightmares"},
				{Regex: `\bptsd\b`, Weight: 3, Description: "ptsd mention"},
				{Regex: `trauma(tic|tized)?`, Weight: 2, Description: "trauma language"},
				{Regex: `triggered`, Weight: 2, Description: "triggered"},
				{Regex: `hypervigilan(t|ce)`, Weight: 3, Description: "hypervigilance"},
			},
		},
		{
			Name:      CategoryOCD,
			Threshold: 5,
			Patterns:  ocd,
		},
		{
			Name:      CategoryDepression,
			Threshold: 3,
			Patterns: []Pattern{
				{Regex: `depress(ed|ion|ing)?`, Weight: 3, Description: "depression language"},
				{Regex: `hopeless(ness)?`, Weight: 2, Description: "hopelessness"},
				{Regex: `worthless`, Weight: 2, Description: "worthlessness"},
				{Regex: `empty inside`, Weight: 2, Description: "emptiness"},
				{Regex: `(can'?t|cannot) get out of bed`, Weight: 3, Description: "unable to get out of bed"},
				{Regex: `no motivation`, Weight: 2, Description: "no motivation"},
				{Regex: `nothing (matters|feels good)`, Weight: 2, Description: "anhedonia"},
			},
		},
		{
			Name:      CategoryCrisis,
			Threshold: 4,
			Patterns: []Pattern{
				{Regex: `hurt(ing)? myself`, Weight: 4, Description: "self-harm language"},
				{Regex: `kill(ing)? myself`, Weight: 5, Description: "suicide language"},
				{Regex: `end(ing)? my life`, Weight: 5, Description: "ending life"},
				{Regex: `tak(e|ing) my (own )?life`, Weight: 5, Description: "taking own life"},
				{Regex: `suicidal thoughts?`, Weight: 4, Description: "suicidal thoughts"},
				{Regex: `(can'?t|cannot) go on`, Weight: 3, Description: "unable to go on"},
				{Regex: `no reason to live`, Weight: 4, Description: "no reason to live"},
			},
		},
		{
			Name:      CategoryPositive,
			Threshold: 3,
			Patterns: []Pattern{
				{Regex: `feeling (calm|better|good|okay)( now)?`, Weight: 2, Description: "feeling calm or better"},
				{Regex: `not anxious anymore`, Weight: 2, Description: "anxiety resolved"},
				{Regex: `managing (well|better)`, Weight: 2, Description: "managing well"},
				{Regex: `finding peace`, Weight: 2, Description: "finding peace"},
			},
		},
	}
}

// DefaultTriggers returns the standard trigger keyword buckets, in reporting
// order.
func DefaultTriggers() []TriggerConfig {
	return []TriggerConfig{
		{
			Tag: TriggerDriving,
			Patterns: []string{
				`driving`, `\btraffic\b`, `intersection`, `highway`,
			},
		},
		{
			Tag: TriggerWork,
			Patterns: []string{
				`\bwork\b`, `\bjob\b`, `\bboss\b`, `office`, `meetings?`, `deadlines?`,
			},
		},
		{
			Tag: TriggerSocial,
			Patterns: []string{
				`social`, `crowds?`, `public speaking`, `part(y|ies)`, `being around people`,
			},
		},
		{
			Tag: TriggerHealth,
			Patterns: []string{
				`doctor`, `hospital`, `medical`, `symptoms?`, `diagnos(is|ed|es)`, `\bhealth\b`,
			},
		},
		{
			Tag: TriggerFinancial,
			Patterns: []string{
				`money`, `\bbills?\b`, `\bdebt\b`, `\brent\b`, `paycheck`, `savings`,
			},
		},
		{
			Tag: TriggerRelationships,
			Patterns: []string{
				`relationship`, `partner`, `husband`, `wife`, `boyfriend`, `girlfriend`,
				`marriage`, `divorce`, `breakup`, `cheat(ing|ed)?`,
			},
		},
		{
			Tag: TriggerPerformance,
			Patterns: []string{
				`\btests?\b`, `\bexams?\b`, `interview`, `grades?`, `audition`, `performance review`,
			},
		},
		{
			Tag: TriggerFuture,
			Patterns: []string{
				`future`, `uncertain(ty)?`, `don'?t know what to do`, `no idea what comes next`,
				`\bplan(s|ning)?\b`, `decisions?`,
			},
		},
	}
}

// DefaultDistortions returns the standard cognitive distortion cues, in
// reporting order.
func DefaultDistortions() []DistortionConfig {
	return []DistortionConfig{
		{
			Label:   DistortionAllOrNothing,
			Pattern: `\b(always|never|everyone|nobody)\b`,
		},
		{
			Label:   DistortionShould,
			Pattern: `\b(should|must|have to)\b`,
		},
		{
			Label:   DistortionCatastrophizing,
			Pattern: `worst case|disaster|catastroph|awful|terrible|ruined`,
		},
	}
}

// DefaultPsychosis returns the standard psychosis indicator catalog.
func DefaultPsychosis() PsychosisConfig {
	return PsychosisConfig{
		Threshold: 3,
		Direct: []Pattern{
			{Regex: `hallucinat(e|ing|ion|ions)`, Weight: 3, Description: "hallucination language"},
			{Regex: `psychosis`, Weight: 3, Description: "psychosis mention"},
			{Regex: `psychotic`, Weight: 3, Description: "psychotic mention"},
			{Regex: `delusio(ns?|nal)`, Weight: 3, Description: "delusion language"},
			{Regex: `paranoi(a|d)`, Weight: 3, Description: "paranoia language"},
			{Regex: `schizophren(ia|ic)`, Weight: 3, Description: "schizophrenia mention"},
		},
		Contextual: []Pattern{
			{Regex: `hearing (voices|things|whispers|someone)`, Weight: 2, Description: "auditory hallucination"},
			{Regex: `voices (in my head|talking to me|telling me)`, Weight: 2, Description: "voices"},
			{Regex: `seeing (things|people|shadows|figures|creatures) (that )?(aren'?t there|no one else sees)`, Weight: 2, Description: "visual hallucination"},
			{Regex: `(someone|people|they)( is| are)? (following|chasing|watching|stalking|hunting) (me|us)`, Weight: 2, Description: "persecution"},
			{Regex: `feel like someone is (watching|following|after) (me|us)`, Weight: 2, Description: "felt surveillance"},
			{Regex: `objects? (moving|shifting|breathing|melting) on (their|its) own`, Weight: 2, Description: "perceptual distortion"},
			{Regex: `things that aren'?t real`, Weight: 2, Description: "unreal perceptions"},
			{Regex: `(shadows|figures) that aren'?t there`, Weight: 2, Description: "shadow figures"},
			{Regex: `(people|voices) (that )?others (can'?t|cannot) hear`, Weight: 2, Description: "private voices"},
		},
		Agency: AgencyConfig{
			Anchor: `cia|fbi|nsa|mi6|mossad|agents?|sp(y|ies)|intelligence|agency`,
			Phrases: []string{
				"following me", "following us",
				"after me", "after us",
				"watching me", "watching us",
				"tracking me", "tracking us",
				"spying on me", "spying on us",
				"bugging me", "bugging us",
			},
			Window:      4,
			Weight:      3,
			Description: "agency+surveillance",
		},
	}
}
