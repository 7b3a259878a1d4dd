package textnorm

// Supported languages.
const (
	LanguageFrench  = "french"
	LanguageEnglish = "english"
)

var frenchStopWords = map[string]struct{}{
	"au": {}, "aux": {}, "avec": {}, "ce": {}, "ces": {}, "cet": {},
	"cette": {}, "dans": {}, "de": {}, "des": {}, "du": {}, "elle": {},
	"elles": {}, "en": {}, "entre": {}, "est": {}, "et": {}, "eux": {},
	"il": {}, "ils": {}, "je": {}, "la": {}, "le": {}, "les": {},
	"leur": {}, "leurs": {}, "lui": {}, "ma": {}, "mais": {}, "me": {},
	"mes": {}, "moi": {}, "mon": {}, "ne": {}, "nos": {}, "notre": {},
	"nous": {}, "on": {}, "ont": {}, "ou": {}, "par": {}, "pas": {},
	"pour": {}, "qu": {}, "que": {}, "qui": {}, "sa": {}, "sans": {},
	"se": {}, "ses": {}, "son": {}, "sont": {}, "sur": {}, "ta": {},
	"tes": {}, "toi": {}, "ton": {}, "tu": {}, "un": {}, "une": {},
	"vos": {}, "votre": {}, "vous": {}, "plus": {}, "tout": {},
	"tous": {}, "toute": {}, "toutes": {}, "comme": {}, "autre": {},
	"autres": {}, "aussi": {}, "donc": {}, "alors": {}, "ainsi": {},
	"avoir": {}, "fait": {}, "faire": {}, "peut": {}, "sous": {},
	"vers": {}, "chez": {}, "car": {}, "quand": {}, "dont": {},
	"cela": {}, "celui": {}, "celle": {}, "ceux": {}, "celles": {},
	"meme": {}, "très": {}, "être": {}, "été": {},
}

var englishStopWords = map[string]struct{}{
	"all": {}, "and": {}, "are": {}, "because": {}, "been": {},
	"before": {}, "being": {}, "both": {}, "but": {}, "can": {},
	"did": {}, "does": {}, "doing": {}, "down": {}, "during": {},
	"each": {}, "few": {}, "for": {}, "from": {}, "had": {},
	"has": {}, "have": {}, "her": {}, "here": {}, "him": {},
	"his": {}, "how": {}, "into": {}, "its": {}, "itself": {},
	"just": {}, "more": {}, "most": {}, "not": {}, "now": {},
	"off": {}, "once": {}, "only": {}, "other": {}, "our": {},
	"out": {}, "over": {}, "own": {}, "same": {}, "she": {},
	"some": {}, "such": {}, "than": {}, "that": {}, "the": {},
	"their": {}, "them": {}, "then": {}, "there": {}, "these": {},
	"they": {}, "this": {}, "those": {}, "through": {}, "too": {},
	"under": {}, "until": {}, "very": {}, "was": {}, "were": {},
	"what": {}, "when": {}, "where": {}, "which": {}, "while": {},
	"who": {}, "whom": {}, "why": {}, "will": {}, "with": {},
	"you": {}, "your": {}, "yours": {},
}
