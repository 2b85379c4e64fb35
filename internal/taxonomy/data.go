package taxonomy

// Built-in registries. Category order is deliberate: it is the tie-break
// order for arg-max selection.

// Moods is the book mood taxonomy.
var Moods = New("mood", []Category{
	{
		ID:          "uplifting",
		Keywords:    []string{"ملهم", "محفز", "إيجابي", "متفائل", "مشرق", "inspiring", "uplifting", "positive", "optimistic"},
		Description: "محفز ومرفع للمعنويات",
	},
	{
		ID:          "melancholic",
		Keywords:    []string{"حزين", "كئيب", "مؤلم", "مأساوي", "عميق", "sad", "melancholic", "tragic", "sorrowful"},
		Description: "حزين وتأملي",
	},
	{
		ID:          "mysterious",
		Keywords:    []string{"غامض", "مشوق", "مثير", "سري", "معقد", "mysterious", "intriguing", "suspenseful", "enigmatic"},
		Description: "غامض ومشوق",
	},
	{
		ID:          "romantic",
		Keywords:    []string{"رومانسي", "عاطفي", "حب", "غرام", "عشق", "romantic", "passionate", "love", "tender"},
		Description: "رومانسي وعاطفي",
	},
	{
		ID:          "dark",
		Keywords:    []string{"مظلم", "قاتم", "مرعب", "مخيف", "قوطي", "dark", "grim", "horror", "gothic", "sinister"},
		Description: "مظلم وقاتم",
	},
	{
		ID:          "adventurous",
		Keywords:    []string{"مغامرة", "مثير", "شجاع", "جريء", "حماسي", "adventurous", "thrilling", "exciting", "bold"},
		Description: "مليء بالمغامرة والإثارة",
	},
	{
		ID:          "philosophical",
		Keywords:    []string{"فلسفي", "عميق", "تأملي", "حكيم", "معمق", "philosophical", "contemplative", "profound", "thoughtful"},
		Description: "فلسفي وعميق",
	},
	{
		ID:          "humorous",
		Keywords:    []string{"فكاهي", "مضحك", "ساخر", "طريف", "مرح", "funny", "humorous", "witty", "comedic", "amusing"},
		Description: "فكاهي ومرح",
	},
	{
		ID:          "intense",
		Keywords:    []string{"شديد", "قوي", "متوتر", "مكثف", "درامي", "intense", "gripping", "powerful", "dramatic"},
		Description: "مكثف ومؤثر",
	},
	{
		ID:          "peaceful",
		Keywords:    []string{"هادئ", "سلمي", "مريح", "مطمئن", "رزين", "peaceful", "calm", "serene", "tranquil"},
		Description: "هادئ ومطمئن",
	},
})

// Themes is the literary theme taxonomy.
var Themes = New("theme", []Category{
	{
		ID:          "love_relationships",
		Keywords:    []string{"حب", "زواج", "علاقة", "صداقة", "عائلة", "love", "marriage", "relationship", "family", "friendship"},
		Description: "الحب والعلاقات",
	},
	{
		ID:          "coming_of_age",
		Keywords:    []string{"نضج", "شباب", "تطور", "نمو", "بلوغ", "growing", "adolescence", "maturity", "development"},
		Description: "النضج والنمو",
	},
	{
		ID:          "social_issues",
		Keywords:    []string{"مجتمع", "سياسة", "عدالة", "ظلم", "فقر", "society", "politics", "justice", "inequality", "poverty"},
		Description: "القضايا الاجتماعية",
	},
	{
		ID:          "identity_self",
		Keywords:    []string{"هوية", "ذات", "شخصية", "انتماء", "وجود", "identity", "self", "personality", "belonging", "existence"},
		Description: "الهوية والذات",
	},
	{
		ID:          "war_conflict",
		Keywords:    []string{"حرب", "صراع", "نزاع", "قتال", "معركة", "war", "conflict", "battle", "struggle", "violence"},
		Description: "الحرب والصراع",
	},
	{
		ID:          "death_mortality",
		Keywords:    []string{"موت", "وفاة", "فناء", "خلود", "قدر", "death", "mortality", "fate", "destiny", "loss"},
		Description: "الموت والفناء",
	},
	{
		ID:          "power_corruption",
		Keywords:    []string{"سلطة", "فساد", "طغيان", "استبداد", "نفوذ", "power", "corruption", "tyranny", "authority", "control"},
		Description: "السلطة والفساد",
	},
	{
		ID:          "spirituality_religion",
		Keywords:    []string{"روحانية", "دين", "إيمان", "عبادة", "تصوف", "spirituality", "religion", "faith", "worship", "mysticism"},
		Description: "الروحانية والدين",
	},
	{
		ID:          "tradition_modernity",
		Keywords:    []string{"تقاليد", "حداثة", "تغيير", "عصرنة", "تطور", "tradition", "modernity", "change", "evolution", "progress"},
		Description: "التقاليد والحداثة",
	},
	{
		ID:          "survival",
		Keywords:    []string{"بقاء", "صمود", "مقاومة", "تحمل", "كفاح", "survival", "endurance", "resistance", "perseverance", "struggle"},
		Description: "البقاء والصمود",
	},
})

// Emotions is the emotion taxonomy used by mood analysis.
var Emotions = New("emotion", []Category{
	{ID: "joy", Keywords: []string{"فرح", "سعادة", "بهجة", "سرور", "joy", "happiness", "delight"}},
	{ID: "sadness", Keywords: []string{"حزن", "أسى", "كآبة", "sadness", "sorrow", "grief"}},
	{ID: "anger", Keywords: []string{"غضب", "سخط", "انفعال", "anger", "rage", "fury"}},
	{ID: "fear", Keywords: []string{"خوف", "رهبة", "قلق", "fear", "anxiety", "dread"}},
	{ID: "hope", Keywords: []string{"أمل", "رجاء", "تفاؤل", "hope", "optimism", "faith"}},
	{ID: "despair", Keywords: []string{"يأس", "قنوط", "إحباط", "despair", "hopelessness", "desperation"}},
})

// ReviewEmotions is the emotion taxonomy used by review sentiment analysis.
// It deliberately differs from Emotions: reviews surface surprise and love
// rather than hope and despair.
var ReviewEmotions = New("review_emotion", []Category{
	{ID: "joy", Keywords: []string{"سعيد", "فرح", "مبهج", "سرور", "بهجة", "happy", "joy", "delight"}},
	{ID: "sadness", Keywords: []string{"حزين", "كئيب", "مؤلم", "أسى", "حزن", "sad", "sorrow", "melancholy"}},
	{ID: "anger", Keywords: []string{"غضب", "سخط", "احباط", "انفعال", "angry", "frustrated", "annoyed"}},
	{ID: "fear", Keywords: []string{"خوف", "قلق", "رهبة", "ذعر", "fear", "anxiety", "worry"}},
	{ID: "surprise", Keywords: []string{"دهشة", "مفاجأة", "عجب", "تعجب", "surprise", "amazement", "wonder"}},
	{ID: "love", Keywords: []string{"حب", "عشق", "هيام", "غرام", "love", "affection", "passion"}},
})

// ReviewThemes is the coarse theme taxonomy used by review sentiment analysis.
var ReviewThemes = New("review_theme", []Category{
	{ID: "romance", Keywords: []string{"حب", "رومانسية", "عاطفة", "علاقة", "زواج"}},
	{ID: "adventure", Keywords: []string{"مغامرة", "رحلة", "سفر", "استكشاف", "خطر"}},
	{ID: "mystery", Keywords: []string{"غموض", "لغز", "سر", "تحقيق", "جريمة"}},
	{ID: "family", Keywords: []string{"عائلة", "أسرة", "أب", "أم", "أطفال", "أجداد"}},
	{ID: "friendship", Keywords: []string{"صداقة", "أصدقاء", "رفقة", "زمالة"}},
	{ID: "society", Keywords: []string{"مجتمع", "ثقافة", "تقاليد", "عادات", "سياسة"}},
	{ID: "philosophy", Keywords: []string{"فلسفة", "تأمل", "وجود", "معنى", "حكمة"}},
	{ID: "history", Keywords: []string{"تاريخ", "تراث", "حضارة", "عصر", "زمن"}},
})

// QualityIndicators groups the review markers that raise helpfulness.
var QualityIndicators = New("quality_indicator", []Category{
	{ID: "detailed_analysis", Keywords: []string{"تحليل", "يناقش", "يستعرض", "يقارن", "يوضح"}},
	{ID: "personal_experience", Keywords: []string{"شخصيا", "تجربتي", "أعتقد", "رأيي", "شعرت"}},
	{ID: "specific_examples", Keywords: []string{"مثال", "فصل", "صفحة", "حدث", "موقف", "شخصية"}},
	{ID: "balanced_view", Keywords: []string{"لكن", "ومع ذلك", "من ناحية أخرى", "بالرغم", "إلا أن"}},
})

// ConceptBuckets maps frequent content words to named abstractive concepts.
var ConceptBuckets = New("concept", []Category{
	{ID: "الحب والعلاقات", Keywords: []string{"حب", "زواج", "علاقة", "عاطفة", "رومانسية"}},
	{ID: "المجتمع والسياسة", Keywords: []string{"مجتمع", "سياسة", "حكومة", "دولة", "شعب"}},
	{ID: "التاريخ والثقافة", Keywords: []string{"تاريخ", "ثقافة", "حضارة", "تراث", "عصر"}},
	{ID: "الفلسفة والفكر", Keywords: []string{"فلسفة", "فكر", "تأمل", "وجود", "معنى"}},
	{ID: "الأسرة والحياة", Keywords: []string{"أسرة", "عائلة", "حياة", "يومي", "بيت"}},
})
