package classifier

import (
	"context"
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/youruser/bubblesticker/internal/emotion"
)

// Lexicon is an offline keyword classifier. It is the default backend and needs
// no network access.
type Lexicon struct {
	words   map[string]emotion.Label
	phrases []string
}

var defaultLexicon = map[emotion.Label][]string{
	"love":           {"love", "loved", "loving", "adore", "adorable", "sweetheart", "darling", "xoxo", "❤", "❤️", "😍", "🥰"},
	"joy":            {"happy", "glad", "yay", "great", "awesome", "wonderful", "delighted", "😀", "😄", "😊"},
	"excitement":     {"excited", "exciting", "can't wait", "thrilled", "pumped", "woohoo", "🎉"},
	"amusement":      {"lol", "haha", "hahaha", "lmao", "funny", "hilarious", "😂", "🤣"},
	"gratitude":      {"thanks", "thank", "grateful", "appreciate", "thx", "🙏"},
	"pride":          {"proud", "accomplished", "nailed"},
	"optimism":       {"hope", "hopeful", "optimistic", "hopefully", "soon"},
	"admiration":     {"amazing", "impressive", "brilliant", "beautiful", "incredible"},
	"approval":       {"ok", "okay", "sure", "agree", "yes", "yep", "👍"},
	"caring":         {"care", "hug", "hugs", "take care", "feel better", "🤗"},
	"relief":         {"relieved", "phew", "finally", "whew"},
	"desire":         {"want", "wish", "crave", "need"},
	"anger":          {"angry", "furious", "mad", "hate", "rage", "😡", "🤬"},
	"sadness":        {"sad", "unhappy", "cry", "crying", "depressed", "miss", "😢", "😭"},
	"fear":           {"scared", "afraid", "fear", "terrified", "frightened", "😱"},
	"disgust":        {"gross", "disgusting", "eww", "ew", "yuck", "🤢"},
	"disappointment": {"disappointed", "disappointing", "letdown", "unfortunately"},
	"annoyance":      {"annoyed", "annoying", "ugh", "irritated", "whatever", "🙄"},
	"embarrassment":  {"embarrassed", "awkward", "oops", "😳"},
	"nervousness":    {"nervous", "anxious", "worried", "worry", "stressed"},
	"remorse":        {"sorry", "apologize", "regret", "my bad"},
	"grief":          {"grief", "mourning", "passed away", "funeral", "rip"},
	"disapproval":    {"no", "nope", "wrong", "disagree", "bad"},
	"surprise":       {"wow", "whoa", "omg", "surprised", "unexpected", "😮"},
	"curiosity":      {"why", "how", "wonder", "curious", "what"},
	"confusion":      {"confused", "huh", "unclear", "dunno", "🤔"},
	"realization":    {"oh", "realize", "realized", "understand", "see"},
}

// NewLexicon builds a keyword classifier. A nil map selects the built-in word list.
// Multi-word phrases are matched against the joined lower-case text.
func NewLexicon(words map[emotion.Label][]string) *Lexicon {
	if words == nil {
		words = defaultLexicon
	}
	l := &Lexicon{words: make(map[string]emotion.Label)}
	for label, list := range words {
		for _, w := range list {
			w = strings.ToLower(w)
			l.words[w] = label
			if strings.Contains(w, " ") {
				l.phrases = append(l.phrases, w)
			}
		}
	}
	sort.Strings(l.phrases)
	return l
}

// Name implements Classifier.
func (l *Lexicon) Name() string { return "lexicon" }

// Classify implements Classifier. Labels are ordered by first occurrence in text;
// confidence grows with the number of matched words.
func (l *Lexicon) Classify(_ context.Context, text string) (Result, error) {
	lower := strings.ToLower(text)
	var found emotion.LabelSet
	hits := 0
	add := func(lbl emotion.Label) {
		hits++
		if !found.Contains(lbl) {
			found = append(found, lbl)
		}
	}

	tokens := strings.FieldsFunc(lower, func(r rune) bool {
		return unicode.IsSpace(r) || (unicode.IsPunct(r) && r != '\'')
	})
	for _, tok := range tokens {
		if lbl, ok := l.words[tok]; ok {
			add(lbl)
			continue
		}
		// emoji attached to a word
		for _, r := range tok {
			if r > unicode.MaxASCII {
				if lbl, ok := l.words[string(r)]; ok {
					add(lbl)
				}
			}
		}
	}
	for _, phrase := range l.phrases {
		if strings.Contains(lower, phrase) {
			add(l.words[phrase])
		}
	}

	if len(found) == 0 {
		return Result{Labels: string(emotion.Neutral), Confidence: 0.5}, nil
	}
	conf := math.Min(0.5+0.1*float64(hits), 0.95)
	return Result{Labels: found.Join(), Confidence: conf}, nil
}
