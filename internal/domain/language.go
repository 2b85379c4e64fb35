package domain

// Language identifies the dominant script of a text.
type Language string

const (
	// LanguageArabic indicates a majority of Arabic-block characters.
	LanguageArabic Language = "arabic"
	// LanguageEnglish indicates a majority of Latin characters.
	LanguageEnglish Language = "english"
	// LanguageUnknown indicates no decision could be made.
	LanguageUnknown Language = "unknown"
)
