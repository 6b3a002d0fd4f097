package tagger

// closed word classes and frequent open class words, Penn Treebank tags
var defaultLexicon = map[string]string{
	// determiners
	"the": "DT", "a": "DT", "an": "DT", "this": "DT", "that": "DT",
	"these": "DT", "those": "DT", "every": "DT", "each": "DT", "some": "DT",
	"any": "DT", "no": "DT", "another": "DT", "all": "DT", "both": "DT",
	"either": "DT", "neither": "DT",

	// conjunctions
	"and": "CC", "or": "CC", "but": "CC", "nor": "CC",

	// prepositions and subordinators
	"of": "IN", "in": "IN", "on": "IN", "at": "IN", "by": "IN", "for": "IN",
	"with": "IN", "from": "IN", "into": "IN", "onto": "IN", "upon": "IN",
	"about": "IN", "above": "IN", "below": "IN", "under": "IN", "over": "IN",
	"between": "IN", "among": "IN", "through": "IN", "during": "IN",
	"before": "IN", "after": "IN", "since": "IN", "until": "IN",
	"without": "IN", "within": "IN", "against": "IN", "toward": "IN",
	"towards": "IN", "than": "IN", "as": "IN", "because": "IN",
	"although": "IN", "though": "IN", "while": "IN", "whether": "IN",
	"if": "IN", "unless": "IN", "like": "IN", "near": "IN", "off": "IN",
	"out": "IN", "per": "IN", "via": "IN",

	"to": "TO",

	// pronouns
	"i": "PRP", "me": "PRP", "you": "PRP", "he": "PRP", "him": "PRP",
	"she": "PRP", "her": "PRP", "it": "PRP", "we": "PRP", "us": "PRP",
	"they": "PRP", "them": "PRP", "myself": "PRP", "yourself": "PRP",
	"himself": "PRP", "herself": "PRP", "itself": "PRP",
	"ourselves": "PRP", "themselves": "PRP", "mine": "PRP", "yours": "PRP",
	"ours": "PRP", "theirs": "PRP",
	"my": "PRP$", "your": "PRP$", "his": "PRP$", "its": "PRP$",
	"our": "PRP$", "their": "PRP$",

	"who": "WP", "whom": "WP", "what": "WP", "whose": "WP$", "which": "WDT",
	"when": "WRB", "where": "WRB", "why": "WRB", "how": "WRB",

	// modals and auxiliaries
	"can": "MD", "could": "MD", "may": "MD", "might": "MD", "must": "MD",
	"shall": "MD", "should": "MD", "will": "MD", "would": "MD",
	"is": "VBZ", "has": "VBZ", "does": "VBZ", "keeps": "VBZ", "seems": "VBZ",
	"are": "VBP", "am": "VBP", "have": "VBP", "do": "VBP",
	"was": "VBD", "were": "VBD", "had": "VBD", "did": "VBD", "said": "VBD",
	"made": "VBD", "went": "VBD", "came": "VBD", "took": "VBD", "saw": "VBD",
	"ran": "VBD", "sat": "VBD", "ate": "VBD", "drank": "VBD", "wrote": "VBD",
	"spoke": "VBD", "sang": "VBD", "swam": "VBD", "began": "VBD", "fell": "VBD",
	"flew": "VBD", "grew": "VBD", "threw": "VBD", "knew": "VBD", "drew": "VBD",
	"drove": "VBD", "rode": "VBD", "rose": "VBD", "broke": "VBD", "chose": "VBD",
	"froze": "VBD", "stole": "VBD", "woke": "VBD", "wore": "VBD", "tore": "VBD",
	"forgot": "VBD", "got": "VBD", "gave": "VBD", "became": "VBD", "told": "VBD",
	"sold": "VBD", "held": "VBD", "stood": "VBD", "understood": "VBD",
	"brought": "VBD", "bought": "VBD", "fought": "VBD", "caught": "VBD",
	"taught": "VBD", "sought": "VBD", "found": "VBD", "kept": "VBD",
	"slept": "VBD", "wept": "VBD", "felt": "VBD", "met": "VBD", "fed": "VBD",
	"led": "VBD", "fled": "VBD", "sent": "VBD", "spent": "VBD", "built": "VBD",
	"lost": "VBD", "meant": "VBD", "hid": "VBD", "won": "VBD", "shook": "VBD",
	"paid": "VBD", "laid": "VBD", "hung": "VBD", "struck": "VBD", "sank": "VBD",
	"dug": "VBD", "stuck": "VBD", "spun": "VBD", "slid": "VBD", "swore": "VBD",
	"be": "VB", "take": "VB", "make": "VB", "go": "VB", "get": "VB",
	"arrive": "VB", "give": "VB", "know": "VB", "see": "VB", "come": "VB",
	"been": "VBN", "done": "VBN", "gone": "VBN", "taken": "VBN",
	"known": "VBN", "given": "VBN", "seen": "VBN",
	"being":  "VBG",
	"enters": "VBZ", "reason": "NN", "doubt": "NN", "question": "NN",

	// adverbs
	"not": "RB", "very": "RB", "too": "RB", "also": "RB", "just": "RB",
	"only": "RB", "never": "RB", "always": "RB", "often": "RB",
	"quite": "RB", "rather": "RB", "then": "RB", "there": "RB",
	"here": "RB", "now": "RB", "still": "RB", "even": "RB", "perhaps": "RB",
	"already": "RB", "almost": "RB", "again": "RB", "ever": "RB",
	"yet": "RB", "so": "RB", "doubtless": "RB",

	// adjectives
	"good": "JJ", "bad": "JJ", "new": "JJ", "old": "JJ", "great": "JJ",
	"big": "JJ", "small": "JJ", "large": "JJ", "little": "JJ",
	"long": "JJ", "short": "JJ", "high": "JJ", "low": "JJ", "young": "JJ",
	"fat": "JJ", "fluffy": "JJ", "healthy": "JJ", "civilized": "JJ",
	"valuable": "JJ", "upper": "JJ", "loose": "JJ", "moral": "JJ",
	"happy": "JJ", "sad": "JJ", "true": "JJ", "false": "JJ", "simple": "JJ",
	"better": "JJR", "worse": "JJR", "more": "JJR", "less": "JJR",
	"best": "JJS", "worst": "JJS", "most": "JJS", "least": "JJS",

	// nouns that suffix rules get wrong
	"time": "NN", "breakfast": "NN", "shower": "NN", "news": "NN",
	"class": "NN", "glass": "NN", "process": "NN", "bus": "NN",

	// numbers
	"one": "CD", "two": "CD", "three": "CD", "four": "CD", "five": "CD",
	"six": "CD", "seven": "CD", "eight": "CD", "nine": "CD", "ten": "CD",

	// interjections
	"oh": "UH", "ah": "UH", "alas": "UH", "hello": "UH", "wow": "UH",
	"hey": "UH", "oops": "UH", "yes": "UH", "well": "UH",
}

var punctuation = map[string]string{
	".":  ".",
	"!":  ".",
	"?":  ".",
	",":  ",",
	";":  ":",
	":":  ":",
	"-":  ":",
	"(":  "(",
	")":  ")",
	"[":  "(",
	"]":  ")",
	"\"": "\"",
	"'":  "POS",
	"’":  "POS",
	"$":  "$",
	"#":  "#",
}
