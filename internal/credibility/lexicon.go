package credibility

// Vocabularies are matched as lower-case substrings of the lower-cased text.
// Order is significant: red flags and word lists are reported in this order.
var (
	clickbaitPhrases = []string{
		"you won't believe", "shocking", "this will blow your mind", "what happened next",
		"doctors hate", "they don't want you to know", "the truth about", "exposed",
		"revealed", "secret", "breaking:", "urgent:", "alert:", "warning:",
		"miracle", "unbelievable", "incredible", "amazing discovery",
	}

	sensationalWords = []string{
		"devastating", "catastrophic", "unprecedented", "crisis", "disaster",
		"bombshell", "explosive", "scandal", "outrage", "fury", "slammed",
		"blasted", "destroyed", "annihilated", "obliterated", "terrifying", "horrifying",
	}

	vagueSourcingTerms = []string{
		"some people say", "many believe", "sources claim", "it is believed",
		"allegedly", "reportedly", "according to sources", "insiders say",
		"experts claim", "studies show",
	}

	extremeTerms = []string{
		"always", "never", "everyone", "nobody", "all", "none", "completely",
		"totally", "absolutely", "definitely", "certainly", "100%", "guaranteed",
	}

	manipulativePhrases = []string{
		"wake up", "sheeple", "they want you to believe", "mainstream media won't tell you",
		"censored", "banned", "forbidden", "hidden truth", "cover-up",
	}

	leftBiasWords = []string{
		"progressive", "equality", "social justice", "inclusive",
		"welfare", "rights", "discrimination", "liberal",
	}

	rightBiasWords = []string{
		"traditional", "conservative", "national security", "law and order",
		"patriotic", "nationalist", "anti-national",
	}

	positiveWords = []string{
		"good", "great", "excellent", "success", "achievement",
		"positive", "beneficial", "wonderful",
	}

	negativeWords = []string{
		"bad", "poor", "failure", "negative", "harmful",
		"corrupt", "scandal", "terrible", "awful",
	}

	factualIndicators = []string{
		"according to", "data shows", "study found", "research indicates",
		"statistics reveal", "survey shows", "report states", "analysis reveals",
		"the data", "measurements show", "figures indicate",
	}

	opinionIndicators = []string{
		"i think", "i believe", "in my opinion", "it seems", "appears to be",
		"should", "must", "clearly", "obviously", "definitely",
	}

	citationMarkers = []string{"according to", "source:", "cited", "reported by"}

	falseRatingMarkers = []string{"false", "misleading", "incorrect"}
	trueRatingMarkers  = []string{"true", "correct", "accurate"}
)
