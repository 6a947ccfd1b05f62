package screen

// Text keys
const (
	KeyTitle     = "title"
	KeyLoading   = "loading"
	KeyFailed    = "load_failed"
	KeyThrow     = "throw"
	KeyExhausted = "exhausted"
)

// Localization holds the on-screen strings per language
type Localization struct {
	language string
	texts    map[string]map[string]string
}

// NewLocalization creates a localization in English
func NewLocalization() *Localization {
	return &Localization{
		language: "en",
		texts: map[string]map[string]string{
			"en": {
				KeyTitle:     "PokeApp",
				KeyLoading:   "Loading...",
				KeyFailed:    "Could not load the creature",
				KeyThrow:     "Throw Pokeball",
				KeyExhausted: "No more creatures",
			},
			"ru": {
				KeyTitle:     "PokeApp",
				KeyLoading:   "Загрузка...",
				KeyFailed:    "Не удалось загрузить покемона",
				KeyThrow:     "Бросить Покебол",
				KeyExhausted: "Покемоны закончились",
			},
		},
	}
}

// SetLanguage switches language. Unknown languages are ignored.
func (l *Localization) SetLanguage(lang string) {
	if _, ok := l.texts[lang]; ok {
		l.language = lang
	}
}

// Language returns the active language
func (l *Localization) Language() string {
	return l.language
}

// Text returns the string for key, falling back to English and then the key
func (l *Localization) Text(key string) string {
	if s, ok := l.texts[l.language][key]; ok {
		return s
	}
	if s, ok := l.texts["en"][key]; ok {
		return s
	}
	return key
}
