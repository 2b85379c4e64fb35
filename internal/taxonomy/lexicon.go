package taxonomy

// Arabic sentiment lexicon. Matching is literal token membership, not the
// whole-word scorer: a word either is in the set or it is not.

// ArabicPositive is the positive-word set.
var ArabicPositive = wordSet(
	"رائع", "ممتاز", "جميل", "مذهل", "رائد", "عظيم", "مفيد", "ملهم",
	"مؤثر", "عميق", "شائق", "مثير", "بديع", "منير", "حكيم", "قوي",
	"مبدع", "فني", "جذاب", "محبوب", "مقنع", "ذكي", "لطيف",
)

// ArabicNegative is the negative-word set.
var ArabicNegative = wordSet(
	"سيء", "ضعيف", "مخيب", "مخبط", "مريع", "فاشل", "غبي", "مملل",
	"سطحي", "متخبط", "مشوش", "معقد", "جاف", "ثقيل", "بطيء", "مكرر",
	"تافه", "فارغ", "منافع", "مبتذل", "عادي", "متوسط",
)

// ArabicStopwords are excluded from frequency tables and content words.
var ArabicStopwords = wordSet(
	"في", "من", "إلى", "على", "عن", "مع", "أن", "كان", "هذا", "هذه",
	"التي", "الذي", "أو", "لا", "لم", "لن", "قد", "كل", "بعض", "جميع",
	"هو", "هي", "هم", "هن", "أنت", "أنا", "نحن", "أنتم", "أنتن",
	"عند", "حول", "خلال", "بعد", "قبل", "تحت", "فوق", "بين", "ضد",
)

// EnglishStopwords are excluded from frequency tables and content words.
var EnglishStopwords = wordSet(
	"the", "a", "an", "and", "or", "but", "in", "on", "at", "to", "for",
	"of", "with", "by", "is", "are", "was", "were", "be", "been", "have",
	"has", "had", "do", "does", "did", "will", "would", "could", "should",
	"this", "that", "these", "those", "i", "you", "he", "she", "it",
	"we", "they", "me", "him", "her", "us", "them",
)

// Stopwords is the union used by the summarizer's frequency table.
var Stopwords = union(ArabicStopwords, EnglishStopwords)

// KeyIndicators are conclusion/purpose markers that boost sentence scores.
// Matching is substring, so the English entries are stems: "conclu" covers
// conclusion, concludes, and concluding.
var KeyIndicators = []string{
	"خلاصة", "نتيجة", "استنتاج", "خاتمة", "الهدف", "الغرض", "أهمية", "يتضح",
	"conclu", "summary", "result", "purpose", "goal", "important", "significant", "key",
}

func wordSet(words ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

func union(sets ...map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{})
	for _, s := range sets {
		for w := range s {
			out[w] = struct{}{}
		}
	}
	return out
}
