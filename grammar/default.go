package grammar

// Translations of the built-in grammar. The relationship is meant to be
// one-to-many; tags claimed twice (VB, MD, IN, WP) seed a cell with two
// labels.
var defaultTranslations = []Translation{
	{"NP", []string{"NN", "NNS", "NNP", "NNPS", "VBG", "PRP", "WP"}},
	{"VP", []string{"VB", "VBD", "VBN", "VBP", "VBZ", "MD", "IN"}},
	{"VB", []string{"VB"}},
	{"JJ", []string{"JJ", "JJR", "JJS", "MD", "PRP$", "WP$"}},
	{"DT", []string{"DT"}},
	{"RB", []string{"RB", "RBR", "RBS", "WRB"}},
	{"WP", []string{"WP"}},
	{"CC", []string{"CC"}},
	{"IN", []string{"IN"}},
	{".", []string{".", "!"}},
	{"COMMA", []string{","}},
	{"S", []string{"UH"}},
}

var defaultRules = []Rule{
	// Whole sentence
	{"S", ".", Top},
	{"VP", ".", Top},

	// Complex subsentence
	{"COMMA", "CC", "CC_phrase"},
	{"CC_phrase", "S", "compound_piece"},
	{"S", "compound_piece", "S"},

	// Independent clauses
	{"NP", "VP", "S"},
	{"WP", "S", "S"},
	{"S", "NP", "S"},

	// Noun phrase chunking
	{"DT", "NP", "NP"},
	{"JJ", "NP", "NP"},
	{"NP", "NP", "NP"},
	{"PP", "NP", "NP"},
	{"TO", "VB", "NP"},

	// Verb phrase chunking
	{"VP", "NP", "VP"},
	{"VP", "JJ", "VP"},
	{"RB", "VP", "VP"},
	{"VP", "RB", "VP"},
}

// Default returns the built-in grammar.
func Default() *Table {
	t, err := New(defaultTranslations, defaultRules)
	if err != nil {
		panic(err)
	}
	return t
}
