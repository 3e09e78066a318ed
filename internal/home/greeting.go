package home

import (
	"math/rand/v2"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Greeting is a language label paired with its greeting text.
type Greeting struct {
	Language string `json:"language"`
	Greeting string `json:"greeting"`
}

// restOverride is returned at or after 23:00 regardless of locale set.
var restOverride = Greeting{Language: "Seriously", Greeting: "Get some rest"}

type greetingEntry struct {
	tag  language.Tag
	text string
}

// The locale sets are ordered so that seed-based selection is stable.
var (
	morningGreetings = []greetingEntry{
		{language.English, "Good morning"},
		{language.Spanish, "Buenos días"},
		{language.French, "Bonjour"},
		{language.German, "Guten Morgen"},
		{language.Italian, "Buongiorno"},
		{language.Portuguese, "Bom dia"},
		{language.Dutch, "Goedemorgen"},
		{language.Swedish, "God morgon"},
		{language.Japanese, "おはようございます"},
		{language.Korean, "좋은 아침"},
		{language.Hindi, "सुप्रभात"},
		{language.Swahili, "Habari ya asubuhi"},
	}
	afternoonGreetings = []greetingEntry{
		{language.English, "Good afternoon"},
		{language.Spanish, "Buenas tardes"},
		{language.French, "Bon après-midi"},
		{language.German, "Guten Tag"},
		{language.Italian, "Buon pomeriggio"},
		{language.Portuguese, "Boa tarde"},
		{language.Dutch, "Goedemiddag"},
		{language.Swedish, "God eftermiddag"},
		{language.Japanese, "こんにちは"},
		{language.Korean, "안녕하세요"},
		{language.Hindi, "नमस्कार"},
		{language.Swahili, "Habari ya mchana"},
	}
	eveningGreetings = []greetingEntry{
		{language.English, "Good evening"},
		{language.Spanish, "Buenas noches"},
		{language.French, "Bonsoir"},
		{language.German, "Guten Abend"},
		{language.Italian, "Buonasera"},
		{language.Portuguese, "Boa noite"},
		{language.Dutch, "Goedenavond"},
		{language.Swedish, "God kväll"},
		{language.Japanese, "こんばんは"},
		{language.Korean, "좋은 저녁"},
		{language.Hindi, "शुभ संध्या"},
		{language.Swahili, "Habari ya jioni"},
	}
)

// languageNames renders tag labels in English ("Spanish", "Swahili").
var languageNames = display.English.Languages()

// processSeed is drawn once per process so repeated greetings within a run
// agree on the chosen language.
var processSeed = rand.IntN(1 << 30)

// Greeter selects time-of-day greetings. The selection seed and the clock
// are explicit so callers (and tests) control the outcome.
type Greeter struct {
	seed int
	now  func() time.Time
}

// GreeterOption configures a Greeter.
type GreeterOption func(*Greeter)

// WithSeed fixes the language-selection seed.
func WithSeed(seed int) GreeterOption {
	return func(g *Greeter) {
		g.seed = seed
	}
}

// WithClock fixes the time source.
func WithClock(now func() time.Time) GreeterOption {
	return func(g *Greeter) {
		g.now = now
	}
}

// NewGreeter returns a Greeter using the process seed and the local clock
// unless overridden.
func NewGreeter(opts ...GreeterOption) *Greeter {
	g := &Greeter{
		seed: processSeed,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Greeting picks the greeting for the current local hour: before noon the
// morning set, before 17:00 the afternoon set, otherwise the evening set.
// At or after 23:00 the rest override wins regardless of locale set. Within
// a set, the seed modulo the number of locales picks the language, so every
// call with the same seed agrees.
func (g *Greeter) Greeting() Greeting {
	hour := g.now().Hour()
	if hour >= 23 {
		return restOverride
	}

	var set []greetingEntry
	switch {
	case hour < 12:
		set = morningGreetings
	case hour < 17:
		set = afternoonGreetings
	default:
		set = eveningGreetings
	}

	idx := g.seed % len(set)
	if idx < 0 {
		idx += len(set)
	}
	entry := set[idx]
	return Greeting{
		Language: languageNames.Name(entry.tag),
		Greeting: entry.text,
	}
}

// TimeBasedGreeting is the package-level convenience using the process seed
// and the local clock.
func TimeBasedGreeting() Greeting {
	return NewGreeter().Greeting()
}
