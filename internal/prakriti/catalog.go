// Package prakriti holds the trait catalog, the dosha classifier and the
// recommendation templates. Everything here is pure and safe for
// concurrent use.
package prakriti

import (
	"fmt"
	"strings"
)

// Dosha is one of the three constitutional archetypes.
type Dosha string

const (
	Vata  Dosha = "Vata"
	Pitta Dosha = "Pitta"
	Kapha Dosha = "Kapha"
)

// Order is the declaration order of the doshas. It is also the tie-break
// order of the classifier: on equal scores the earlier dosha ranks higher.
var Order = [3]Dosha{Vata, Pitta, Kapha}

// Valid reports whether d is one of the known doshas.
func (d Dosha) Valid() bool {
	for _, o := range Order {
		if d == o {
			return true
		}
	}
	return false
}

// Trait keys, in questionnaire order.
const (
	Skin              = "skin"
	BodyBuild         = "bodyBuild"
	Hair              = "hair"
	Mindset           = "mindset"
	Memory            = "memory"
	Emotions          = "emotions"
	Diet              = "diet"
	Sleep             = "sleep"
	Energy            = "energy"
	WeatherPreference = "weatherPreference"
	StressResponse    = "stressResponse"
)

// TraitKeys lists every recognized trait key.
var TraitKeys = []string{
	Skin, BodyBuild, Hair, Mindset, Memory, Emotions,
	Diet, Sleep, Energy, WeatherPreference, StressResponse,
}

// Traits is a questionnaire answer set, one categorical value per key.
// An empty string means the key was not answered.
type Traits struct {
	Skin              string `json:"skin"`
	BodyBuild         string `json:"bodyBuild"`
	Hair              string `json:"hair"`
	Mindset           string `json:"mindset"`
	Memory            string `json:"memory"`
	Emotions          string `json:"emotions"`
	Diet              string `json:"diet"`
	Sleep             string `json:"sleep"`
	Energy            string `json:"energy"`
	WeatherPreference string `json:"weatherPreference"`
	StressResponse    string `json:"stressResponse"`
}

// Get returns the value stored under key, or "" for unknown keys.
func (t Traits) Get(key string) string {
	switch key {
	case Skin:
		return t.Skin
	case BodyBuild:
		return t.BodyBuild
	case Hair:
		return t.Hair
	case Mindset:
		return t.Mindset
	case Memory:
		return t.Memory
	case Emotions:
		return t.Emotions
	case Diet:
		return t.Diet
	case Sleep:
		return t.Sleep
	case Energy:
		return t.Energy
	case WeatherPreference:
		return t.WeatherPreference
	case StressResponse:
		return t.StressResponse
	}
	return ""
}

// Missing returns the keys that have no value, in catalog order.
func (t Traits) Missing() []string {
	var missing []string
	for _, key := range TraitKeys {
		if strings.TrimSpace(t.Get(key)) == "" {
			missing = append(missing, key)
		}
	}
	return missing
}

// Validate checks that every key is answered with one of its catalog
// options.
func (t Traits) Validate() error {
	if missing := t.Missing(); len(missing) > 0 {
		return &TraitError{Missing: missing}
	}
	for _, key := range TraitKeys {
		if !IsOption(key, t.Get(key)) {
			return &TraitError{Key: key, Value: t.Get(key)}
		}
	}
	return nil
}

// TraitError describes an incomplete or out-of-catalog selection.
type TraitError struct {
	Missing []string
	Key     string
	Value   string
}

func (e *TraitError) Error() string {
	if len(e.Missing) > 0 {
		return "missing traits: " + strings.Join(e.Missing, ", ")
	}
	return fmt.Sprintf("invalid value %q for trait %s", e.Value, e.Key)
}

// templates maps each dosha to its canonical value for every trait.
var templates = map[Dosha]Traits{
	Vata: {
		Skin:              "Dry",
		BodyBuild:         "Thin",
		Hair:              "Dry, thin",
		Mindset:           "Restless",
		Memory:            "Forgetful",
		Emotions:          "Anxious",
		Diet:              "Warm, dry food",
		Sleep:             "Light",
		Energy:            "Variable",
		WeatherPreference: "Warm",
		StressResponse:    "Anxious",
	},
	Pitta: {
		Skin:              "Oily",
		BodyBuild:         "Muscular",
		Hair:              "Oily, thinning",
		Mindset:           "Intense",
		Memory:            "Sharp",
		Emotions:          "Angry",
		Diet:              "Cold, spicy",
		Sleep:             "Moderate",
		Energy:            "High, bursts",
		WeatherPreference: "Cool",
		StressResponse:    "Irritable",
	},
	Kapha: {
		Skin:              "Balanced",
		BodyBuild:         "Heavier",
		Hair:              "Thick, oily",
		Mindset:           "Calm",
		Memory:            "Slow but long-term",
		Emotions:          "Content",
		Diet:              "Light, sweet",
		Sleep:             "Deep",
		Energy:            "Steady",
		WeatherPreference: "Warm and dry",
		StressResponse:    "Calm",
	},
}

// Template returns the canonical trait selection of d.
func Template(d Dosha) (Traits, bool) {
	t, ok := templates[d]
	return t, ok
}

// Options returns the allowed values for key, in dosha declaration order.
func Options(key string) []string {
	opts := make([]string, 0, len(Order))
	for _, d := range Order {
		if v := templates[d].Get(key); v != "" {
			opts = append(opts, v)
		}
	}
	return opts
}

// IsOption reports whether value is an allowed answer for key.
func IsOption(key, value string) bool {
	for _, opt := range Options(key) {
		if opt == value {
			return true
		}
	}
	return false
}

// Catalog returns every trait key with its options.
func Catalog() map[string][]string {
	catalog := make(map[string][]string, len(TraitKeys))
	for _, key := range TraitKeys {
		catalog[key] = Options(key)
	}
	return catalog
}
