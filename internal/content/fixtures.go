package content

import "training-service/internal/models"

// Built-in fixture sets. These back every pool whose source file is
// missing or whose filtered candidates come up empty, so task
// generation can never fail on content.

var DefaultVocabulary = []Word{
	{
		Word:         "analyze",
		Definition:   "to examine something in detail in order to explain it",
		Examples:     []string{"The researchers analyze the data before drawing conclusions."},
		PartOfSpeech: "verb",
		WordFamily:   []string{"analysis", "analytical", "analytically"},
	},
	{
		Word:         "significant",
		Definition:   "large or important enough to have an effect",
		Examples:     []string{"The study found a significant difference between the two groups."},
		PartOfSpeech: "adjective",
		WordFamily:   []string{"significance", "significantly", "signify"},
	},
	{
		Word:         "hypothesis",
		Definition:   "an idea that is suggested as a possible explanation and has not yet been proved",
		Examples:     []string{"The experiment was designed to test the hypothesis."},
		PartOfSpeech: "noun",
		WordFamily:   []string{"hypothesize", "hypothetical", "hypothetically"},
	},
	{
		Word:         "methodology",
		Definition:   "the set of methods used in a particular area of study",
		Examples:     []string{"The paper describes the methodology in detail."},
		PartOfSpeech: "noun",
		WordFamily:   []string{"method", "methodological", "methodologically"},
	},
	{
		Word:         "demonstrate",
		Definition:   "to show clearly by giving proof or evidence",
		Examples:     []string{"The results demonstrate a clear link between diet and health."},
		PartOfSpeech: "verb",
		WordFamily:   []string{"demonstration", "demonstrable", "demonstrably"},
	},
	{
		Word:         "correlation",
		Definition:   "a connection between two or more things, often statistical",
		Examples:     []string{"There is a strong correlation between study time and performance."},
		PartOfSpeech: "noun",
		WordFamily:   []string{"correlate", "correlated", "correlational"},
	},
	{
		Word:         "empirical",
		Definition:   "based on observation or experiment rather than theory",
		Examples:     []string{"The claim is supported by empirical evidence."},
		PartOfSpeech: "adjective",
		WordFamily:   []string{"empirically", "empiricism"},
	},
	{
		Word:         "variable",
		Definition:   "a factor or quantity that can change in an experiment",
		Examples:     []string{"The researchers controlled for every variable except temperature."},
		PartOfSpeech: "noun",
		WordFamily:   []string{"vary", "variation", "variability"},
	},
	{
		Word:         "derive",
		Definition:   "to obtain something from a specified source",
		Examples:     []string{"The model is derived from longitudinal survey data."},
		PartOfSpeech: "verb",
		WordFamily:   []string{"derivation", "derivative"},
	},
	{
		Word:         "coherent",
		Definition:   "logical and consistent, with parts that fit together well",
		Examples:     []string{"A coherent argument moves clearly from premise to conclusion."},
		PartOfSpeech: "adjective",
		WordFamily:   []string{"coherence", "coherently", "cohere"},
	},
}

var DefaultCollocations = []CollocationError{
	{
		Collocation:  "do a research",
		CorrectForm:  "conduct research / do research",
		ErrorType:    ErrorMisuse,
		GrammarIssue: "'research' is uncountable; use 'conduct research'",
		Examples:     []string{"The team will conduct research on language acquisition."},
		LearnerFreq:  42,
	},
	{
		Collocation:  "make a conclusion",
		CorrectForm:  "draw a conclusion / reach a conclusion",
		ErrorType:    ErrorMisuse,
		GrammarIssue: "conclusions are drawn or reached, not made",
		Examples:     []string{"We can draw a conclusion from these results."},
		LearnerFreq:  38,
	},
	{
		Collocation:  "get knowledge",
		CorrectForm:  "acquire knowledge / gain knowledge",
		ErrorType:    ErrorMisuse,
		GrammarIssue: "academic register prefers 'acquire' or 'gain' with 'knowledge'",
		Examples:     []string{"Students acquire knowledge through structured practice."},
		LearnerFreq:  31,
	},
	{
		Collocation:  "make a photo",
		CorrectForm:  "take a photo",
		ErrorType:    ErrorMisuse,
		GrammarIssue: "photos are taken, not made",
		Examples:     []string{"Participants were asked to take a photo of each stimulus."},
		LearnerFreq:  12,
	},
	{
		Collocation:  "do a mistake",
		CorrectForm:  "make a mistake",
		ErrorType:    ErrorMisuse,
		GrammarIssue: "mistakes are made, not done",
		Examples:     []string{"Learners often make a mistake with verb-noun pairings."},
		LearnerFreq:  54,
	},
	{
		Collocation:  "strong rain",
		CorrectForm:  "heavy rain",
		ErrorType:    ErrorMisuse,
		GrammarIssue: "'rain' collocates with 'heavy', not 'strong'",
		Examples:     []string{"The fieldwork was postponed because of heavy rain."},
		LearnerFreq:  17,
	},
	{
		Collocation:          "very important",
		CorrectForm:          "crucial / essential",
		ErrorType:            ErrorOveruse,
		Issue:                "overused intensifier; academic writing prefers single precise adjectives",
		Examples:             []string{"Sample size is a crucial consideration in study design."},
		LearnerFreq:          96,
		CorpusFreqPerMillion: 14,
	},
	{
		Collocation:          "a lot of",
		CorrectForm:          "a great deal of / numerous",
		ErrorType:            ErrorOveruse,
		Issue:                "informal quantifier overused in learner writing",
		Examples:             []string{"The survey produced a great deal of qualitative data."},
		LearnerFreq:          120,
		CorpusFreqPerMillion: 22,
	},
}

var DefaultHedgingAdd = []HedgingAddItem{
	{
		Sentence:      "The results _____ indicate a positive correlation between study time and performance.",
		CorrectAnswer: "may",
		Options: []models.Option{
			{Text: "may", IsCorrect: true},
			{Text: "definitely", IsCorrect: false},
			{Text: "always", IsCorrect: false},
			{Text: "certainly", IsCorrect: false},
		},
		Category: "modal_verbs",
	},
	{
		Sentence:      "This treatment _____ be effective for patients with mild symptoms.",
		CorrectAnswer: "could",
		Options: []models.Option{
			{Text: "could", IsCorrect: true},
			{Text: "will", IsCorrect: false},
			{Text: "must", IsCorrect: false},
			{Text: "shall", IsCorrect: false},
		},
		Category: "modal_verbs",
	},
	{
		Sentence:      "The data _____ that there is a link between diet and health outcomes.",
		CorrectAnswer: "suggests",
		Options: []models.Option{
			{Text: "suggests", IsCorrect: true},
			{Text: "proves", IsCorrect: false},
			{Text: "confirms", IsCorrect: false},
			{Text: "demonstrates", IsCorrect: false},
		},
		Category: "lexical_verbs",
	},
	{
		Sentence:      "Climate change is _____ the main cause of rising sea levels.",
		CorrectAnswer: "likely",
		Options: []models.Option{
			{Text: "likely", IsCorrect: true},
			{Text: "obviously", IsCorrect: false},
			{Text: "certainly", IsCorrect: false},
			{Text: "definitely", IsCorrect: false},
		},
		Category: "adverbs",
	},
	{
		Sentence:      "The experiment _____ shows that temperature affects reaction rate.",
		CorrectAnswer: "apparently",
		Options: []models.Option{
			{Text: "apparently", IsCorrect: true},
			{Text: "clearly", IsCorrect: false},
			{Text: "obviously", IsCorrect: false},
			{Text: "undoubtedly", IsCorrect: false},
		},
		Category: "adverbs",
	},
	{
		Sentence:      "It _____ that social media influences student behavior.",
		CorrectAnswer: "appears",
		Options: []models.Option{
			{Text: "appears", IsCorrect: true},
			{Text: "is certain", IsCorrect: false},
			{Text: "is obvious", IsCorrect: false},
			{Text: "is clear", IsCorrect: false},
		},
		Category: "lexical_verbs",
	},
	{
		Sentence:      "Further research _____ be needed to confirm these findings.",
		CorrectAnswer: "might",
		Options: []models.Option{
			{Text: "might", IsCorrect: true},
			{Text: "shall", IsCorrect: false},
			{Text: "must", IsCorrect: false},
			{Text: "will", IsCorrect: false},
		},
		Category: "modal_verbs",
	},
	{
		Sentence:      "The study _____ indicates a relationship between sleep and memory.",
		CorrectAnswer: "possibly",
		Options: []models.Option{
			{Text: "possibly", IsCorrect: true},
			{Text: "certainly", IsCorrect: false},
			{Text: "definitely", IsCorrect: false},
			{Text: "absolutely", IsCorrect: false},
		},
		Category: "adverbs",
	},
	{
		Sentence:      "These findings _____ support the original hypothesis.",
		CorrectAnswer: "tend to",
		Options: []models.Option{
			{Text: "tend to", IsCorrect: true},
			{Text: "always", IsCorrect: false},
			{Text: "completely", IsCorrect: false},
			{Text: "definitely", IsCorrect: false},
		},
		Category: "lexical_verbs",
	},
	{
		Sentence:      "The relationship between the variables is _____ significant.",
		CorrectAnswer: "somewhat",
		Options: []models.Option{
			{Text: "somewhat", IsCorrect: true},
			{Text: "absolutely", IsCorrect: false},
			{Text: "completely", IsCorrect: false},
			{Text: "totally", IsCorrect: false},
		},
		Category: "adverbs",
	},
}

var DefaultIntensity = []IntensityItem{
	{Items: []RankItem{
		{Text: "might", Strength: 1},
		{Text: "may", Strength: 2},
		{Text: "should", Strength: 3},
	}},
	{Items: []RankItem{
		{Text: "possibly", Strength: 1},
		{Text: "probably", Strength: 2},
		{Text: "certainly", Strength: 3},
	}},
	{Items: []RankItem{
		{Text: "could indicate", Strength: 1},
		{Text: "suggests", Strength: 2},
		{Text: "demonstrates", Strength: 3},
	}},
	{Items: []RankItem{
		{Text: "It is possible that", Strength: 1},
		{Text: "It appears that", Strength: 2},
		{Text: "It is evident that", Strength: 3},
	}},
	{Items: []RankItem{
		{Text: "seems to", Strength: 1},
		{Text: "tends to", Strength: 2},
		{Text: "is known to", Strength: 3},
	}},
	{Items: []RankItem{
		{Text: "unlikely", Strength: 1},
		{Text: "possible", Strength: 2},
		{Text: "probable", Strength: 3},
	}},
}

var DefaultAppropriateness = []AppropriatenessItem{
	{
		Sentence:     "Water boils at 100 degrees Celsius at sea level.",
		NeedsHedging: false,
		Explanation:  "This is an established scientific fact.",
	},
	{
		Sentence:     "This treatment cures all types of cancer.",
		NeedsHedging: true,
		Explanation:  "Medical claims need hedging as effects vary.",
	},
	{
		Sentence:     "The Earth orbits around the Sun.",
		NeedsHedging: false,
		Explanation:  "This is a verified scientific fact.",
	},
	{
		Sentence:     "Students who study more get better grades.",
		NeedsHedging: true,
		Explanation:  "Correlations are not absolute and need hedging.",
	},
	{
		Sentence:     "The experiment results prove the hypothesis completely.",
		NeedsHedging: true,
		Explanation:  "Scientific findings should be hedged; results support rather than prove.",
	},
	{
		Sentence:     "DNA contains genetic information.",
		NeedsHedging: false,
		Explanation:  "This is an established biological fact.",
	},
	{
		Sentence:     "Social media always improves student learning outcomes.",
		NeedsHedging: true,
		Explanation:  "Absolute claims about complex phenomena need hedging.",
	},
	{
		Sentence:     "The speed of light in vacuum is constant.",
		NeedsHedging: false,
		Explanation:  "This is a fundamental physical constant.",
	},
	{
		Sentence:     "Remote learning is better than classroom teaching.",
		NeedsHedging: true,
		Explanation:  "Comparative educational claims depend on context and need hedging.",
	},
}

var DefaultConnectorMatch = []ConnectorMatchItem{
	{
		Sentence1:     "The sample size was small",
		Sentence2:     "the findings should be interpreted with caution",
		Relation:      "result",
		CorrectAnswer: "therefore",
		Options: []models.Option{
			{Text: "therefore", IsCorrect: true},
			{Text: "however", IsCorrect: false},
			{Text: "similarly", IsCorrect: false},
			{Text: "for instance", IsCorrect: false},
		},
	},
	{
		Sentence1:     "The first experiment supported the hypothesis",
		Sentence2:     "the replication produced mixed results",
		Relation:      "contrast",
		CorrectAnswer: "however",
		Options: []models.Option{
			{Text: "however", IsCorrect: true},
			{Text: "therefore", IsCorrect: false},
			{Text: "moreover", IsCorrect: false},
			{Text: "first", IsCorrect: false},
		},
	},
	{
		Sentence1:     "The intervention improved reading speed",
		Sentence2:     "it increased comprehension scores",
		Relation:      "addition",
		CorrectAnswer: "moreover",
		Options: []models.Option{
			{Text: "moreover", IsCorrect: true},
			{Text: "nevertheless", IsCorrect: false},
			{Text: "thus", IsCorrect: false},
			{Text: "instead", IsCorrect: false},
		},
	},
	{
		Sentence1:     "Several factors influence vocabulary retention",
		Sentence2:     "spaced repetition has a strong effect",
		Relation:      "example",
		CorrectAnswer: "for example",
		Options: []models.Option{
			{Text: "for example", IsCorrect: true},
			{Text: "in contrast", IsCorrect: false},
			{Text: "as a result", IsCorrect: false},
			{Text: "meanwhile", IsCorrect: false},
		},
	},
	{
		Sentence1:     "The questionnaire was piloted with ten students",
		Sentence2:     "it was distributed to the full cohort",
		Relation:      "sequence",
		CorrectAnswer: "then",
		Options: []models.Option{
			{Text: "then", IsCorrect: true},
			{Text: "although", IsCorrect: false},
			{Text: "likewise", IsCorrect: false},
			{Text: "in conclusion", IsCorrect: false},
		},
	},
	{
		Sentence1:     "The evidence across all three studies points the same way",
		Sentence2:     "the effect appears robust",
		Relation:      "conclusion",
		CorrectAnswer: "in conclusion",
		Options: []models.Option{
			{Text: "in conclusion", IsCorrect: true},
			{Text: "for instance", IsCorrect: false},
			{Text: "conversely", IsCorrect: false},
			{Text: "meanwhile", IsCorrect: false},
		},
	},
}

var DefaultReorder = []ReorderItem{
	{Sentences: []OrderedSentence{
		{Text: "First, the researchers collected data from 100 participants.", Order: 1},
		{Text: "Then, they analyzed the results using statistical methods.", Order: 2},
		{Text: "Finally, they drew conclusions based on their findings.", Order: 3},
		{Text: "These conclusions have important implications for future research.", Order: 4},
	}},
	{Sentences: []OrderedSentence{
		{Text: "The study examined the effects of sleep on memory.", Order: 1},
		{Text: "Participants were divided into two groups.", Order: 2},
		{Text: "One group slept normally while the other was sleep-deprived.", Order: 3},
		{Text: "The results showed that sleep significantly improves memory retention.", Order: 4},
	}},
	{Sentences: []OrderedSentence{
		{Text: "Climate change is a pressing global issue.", Order: 1},
		{Text: "It affects ecosystems, weather patterns, and human societies.", Order: 2},
		{Text: "Therefore, immediate action is required to mitigate its effects.", Order: 3},
		{Text: "In conclusion, international cooperation is essential.", Order: 4},
	}},
	{Sentences: []OrderedSentence{
		{Text: "The experiment began with a hypothesis about plant growth.", Order: 1},
		{Text: "Next, seeds were planted in different soil conditions.", Order: 2},
		{Text: "After four weeks, measurements were taken.", Order: 3},
		{Text: "The data confirmed that nutrient-rich soil produced better results.", Order: 4},
	}},
	{Sentences: []OrderedSentence{
		{Text: "Social media has transformed communication.", Order: 1},
		{Text: "However, it also raises concerns about privacy.", Order: 2},
		{Text: "Moreover, it can affect mental health in young users.", Order: 3},
		{Text: "Thus, balanced usage is recommended by experts.", Order: 4},
	}},
}

var DefaultCompletion = []CompletionItem{
	{
		Paragraph: "The study aimed to investigate the relationship between diet and health. [1], 500 participants were recruited. [2], they were divided into three groups. [3], the results showed significant differences between groups.",
		Blanks: []CompletionBlank{
			{ID: 1, Options: []models.Option{
				{Text: "First", IsCorrect: true},
				{Text: "However", IsCorrect: false},
				{Text: "Therefore", IsCorrect: false},
			}},
			{ID: 2, Options: []models.Option{
				{Text: "Then", IsCorrect: true},
				{Text: "Nevertheless", IsCorrect: false},
				{Text: "Instead", IsCorrect: false},
			}},
			{ID: 3, Options: []models.Option{
				{Text: "Finally", IsCorrect: true},
				{Text: "Similarly", IsCorrect: false},
				{Text: "Meanwhile", IsCorrect: false},
			}},
		},
	},
	{
		Paragraph: "Climate change poses serious threats to biodiversity. [1], many species are losing their habitats. [2], some are adapting to new conditions. [3], conservation efforts must be intensified.",
		Blanks: []CompletionBlank{
			{ID: 1, Options: []models.Option{
				{Text: "For example", IsCorrect: true},
				{Text: "Therefore", IsCorrect: false},
				{Text: "Instead", IsCorrect: false},
			}},
			{ID: 2, Options: []models.Option{
				{Text: "However", IsCorrect: true},
				{Text: "Similarly", IsCorrect: false},
				{Text: "Thus", IsCorrect: false},
			}},
			{ID: 3, Options: []models.Option{
				{Text: "Therefore", IsCorrect: true},
				{Text: "Nevertheless", IsCorrect: false},
				{Text: "Meanwhile", IsCorrect: false},
			}},
		},
	},
	{
		Paragraph: "Technology has revolutionized education. [1], students can access resources online. [2], teachers can use interactive tools. [3], some challenges remain, such as the digital divide.",
		Blanks: []CompletionBlank{
			{ID: 1, Options: []models.Option{
				{Text: "For instance", IsCorrect: true},
				{Text: "However", IsCorrect: false},
				{Text: "Therefore", IsCorrect: false},
			}},
			{ID: 2, Options: []models.Option{
				{Text: "Moreover", IsCorrect: true},
				{Text: "Instead", IsCorrect: false},
				{Text: "Thus", IsCorrect: false},
			}},
			{ID: 3, Options: []models.Option{
				{Text: "Nevertheless", IsCorrect: true},
				{Text: "Similarly", IsCorrect: false},
				{Text: "First", IsCorrect: false},
			}},
		},
	},
	{
		Paragraph: "Exercise is beneficial for mental health. [1], it reduces stress hormones. [2], it increases endorphin production. [3], regular physical activity is recommended for overall well-being.",
		Blanks: []CompletionBlank{
			{ID: 1, Options: []models.Option{
				{Text: "First", IsCorrect: true},
				{Text: "However", IsCorrect: false},
				{Text: "Instead", IsCorrect: false},
			}},
			{ID: 2, Options: []models.Option{
				{Text: "Additionally", IsCorrect: true},
				{Text: "Nevertheless", IsCorrect: false},
				{Text: "Thus", IsCorrect: false},
			}},
			{ID: 3, Options: []models.Option{
				{Text: "Therefore", IsCorrect: true},
				{Text: "Meanwhile", IsCorrect: false},
				{Text: "Similarly", IsCorrect: false},
			}},
		},
	},
	{
		Paragraph: "Renewable energy sources are gaining popularity. [1], solar power costs have decreased significantly. [2], wind energy capacity has expanded globally. [3], fossil fuel dependence is gradually decreasing.",
		Blanks: []CompletionBlank{
			{ID: 1, Options: []models.Option{
				{Text: "For example", IsCorrect: true},
				{Text: "However", IsCorrect: false},
				{Text: "Therefore", IsCorrect: false},
			}},
			{ID: 2, Options: []models.Option{
				{Text: "Similarly", IsCorrect: true},
				{Text: "Nevertheless", IsCorrect: false},
				{Text: "Instead", IsCorrect: false},
			}},
			{ID: 3, Options: []models.Option{
				{Text: "As a result", IsCorrect: true},
				{Text: "However", IsCorrect: false},
				{Text: "First", IsCorrect: false},
			}},
		},
	},
}
