package analysis

import "strings"

// slangWords is a curated set of informal vocabulary common in song lyrics.
// Representative rather than exhaustive; callers can extend it per call.
var slangWords = map[string]struct{}{
	// Contractions and informal spellings
	"ain't": {}, "gonna": {}, "wanna": {}, "gotta": {}, "kinda": {}, "sorta": {},
	"lemme": {}, "gimme": {}, "dunno": {}, "tryna": {}, "finna": {}, "boutta": {},
	"shoulda": {}, "coulda": {}, "woulda": {}, "ima": {}, "imma": {}, "aint": {},
	// Pronouns and addressing
	"ya": {}, "yo": {}, "yall": {}, "y'all": {}, "em": {}, "'em": {}, "da": {},
	"tha": {}, "dat": {}, "dis": {}, "dem": {}, "dey": {}, "wit": {}, "wid": {},
	// People
	"bruh": {}, "bro": {}, "homie": {}, "homies": {}, "dawg": {}, "fam": {},
	"cuz": {}, "playa": {}, "pimp": {}, "shorty": {}, "shawty": {}, "mama": {},
	"mami": {}, "papi": {}, "bae": {}, "boo": {},
	// Actions and states
	"chillin": {}, "trippin": {}, "flexin": {}, "stuntin": {}, "ballin": {},
	"poppin": {}, "rockin": {}, "vibin": {}, "slidin": {}, "drippin": {},
	"sippin": {}, "hittin": {}, "whippin": {},
	// Adjectives and interjections
	"lit": {}, "dope": {}, "sick": {}, "fire": {}, "tight": {}, "wack": {},
	"whack": {}, "sus": {}, "bougie": {}, "boujee": {}, "fly": {}, "fresh": {},
	"cold": {}, "icy": {}, "wavy": {}, "lowkey": {}, "highkey": {}, "deadass": {},
	"hype": {}, "hyped": {},
	// Money and success
	"bands": {}, "racks": {}, "stacks": {}, "guap": {}, "bread": {},
	"cheddar": {}, "dough": {}, "paper": {}, "moolah": {}, "cake": {},
	"gwap": {}, "benjis": {}, "bucks": {}, "hunnids": {},
	// Lifestyle
	"flex": {}, "drip": {}, "swag": {}, "clout": {}, "hustle": {}, "grind": {},
	"trap": {}, "hood": {}, "block": {}, "turf": {}, "whip": {}, "ride": {},
	"crib": {}, "pad": {},
	// Expressions
	"bet": {}, "cap": {}, "nocap": {}, "facts": {}, "word": {}, "aight": {},
	"ight": {}, "iight": {}, "yeet": {}, "slay": {}, "bop": {}, "slap": {},
	"slaps": {}, "bussin": {}, "goat": {}, "goated": {}, "goats": {}, "fye": {},
	// Negatives and criticism
	"hater": {}, "haters": {}, "opps": {}, "ops": {}, "snitch": {}, "fake": {},
	"lame": {}, "corny": {}, "bogus": {},
	// Misc
	"vibe": {}, "vibes": {}, "mood": {}, "wave": {}, "sauce": {}, "drako": {},
	"choppa": {}, "glizzy": {}, "thang": {}, "thangs": {}, "nah": {}, "yuh": {},
	"yeah": {}, "ayy": {}, "aye": {}, "huh": {}, "uh": {}, "uhh": {}, "mmm": {},
	"ooh": {}, "woah": {}, "skrrt": {}, "skrt": {}, "brr": {}, "grr": {},
}

func buildSlangSet(extra []string) map[string]struct{} {
	if len(extra) == 0 {
		return slangWords
	}
	set := make(map[string]struct{}, len(slangWords)+len(extra))
	for w := range slangWords {
		set[w] = struct{}{}
	}
	for _, w := range extra {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			set[w] = struct{}{}
		}
	}
	return set
}

// IsSlang reports whether a word is in the slang set, case-insensitively.
func IsSlang(word string, extra []string) bool {
	_, ok := buildSlangSet(extra)[strings.ToLower(word)]
	return ok
}

// SlangFlags classifies a batch of words, deduplicated case-insensitively.
// Keys are lowercased. Empty input yields an empty map.
func SlangFlags(words []string, extra []string) map[string]bool {
	set := buildSlangSet(extra)
	result := make(map[string]bool, len(words))
	for _, word := range words {
		lower := strings.ToLower(word)
		if _, done := result[lower]; done {
			continue
		}
		_, ok := set[lower]
		result[lower] = ok
	}
	return result
}

// SlangCount counts slang occurrences over a full token stream. Every
// occurrence counts, not just unique words.
func SlangCount(tokens []string, extra []string) int {
	set := buildSlangSet(extra)
	count := 0
	for _, tok := range tokens {
		if _, ok := set[strings.ToLower(tok)]; ok {
			count++
		}
	}
	return count
}
