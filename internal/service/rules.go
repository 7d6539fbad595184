package service

import "regexp"

// Rule tables for the classification and query composition layer. All
// matching is data-driven so individual rules can be tested and
// extended without touching control flow.

// vietnameseCharMap folds Vietnamese tonal variants to base Latin
// letters. The table is the search contract; do not swap it for a
// generic Unicode decomposition.
var vietnameseCharMap = map[rune]rune{
	'à': 'a', 'á': 'a', 'ạ': 'a', 'ả': 'a', 'ã': 'a',
	'â': 'a', 'ầ': 'a', 'ấ': 'a', 'ậ': 'a', 'ẩ': 'a', 'ẫ': 'a',
	'ă': 'a', 'ằ': 'a', 'ắ': 'a', 'ặ': 'a', 'ẳ': 'a', 'ẵ': 'a',
	'è': 'e', 'é': 'e', 'ẹ': 'e', 'ẻ': 'e', 'ẽ': 'e',
	'ê': 'e', 'ề': 'e', 'ế': 'e', 'ệ': 'e', 'ể': 'e', 'ễ': 'e',
	'ì': 'i', 'í': 'i', 'ị': 'i', 'ỉ': 'i', 'ĩ': 'i',
	'ò': 'o', 'ó': 'o', 'ọ': 'o', 'ỏ': 'o', 'õ': 'o',
	'ô': 'o', 'ồ': 'o', 'ố': 'o', 'ộ': 'o', 'ổ': 'o', 'ỗ': 'o',
	'ơ': 'o', 'ờ': 'o', 'ớ': 'o', 'ợ': 'o', 'ở': 'o', 'ỡ': 'o',
	'ù': 'u', 'ú': 'u', 'ụ': 'u', 'ủ': 'u', 'ũ': 'u',
	'ư': 'u', 'ừ': 'u', 'ứ': 'u', 'ự': 'u', 'ử': 'u', 'ữ': 'u',
	'ỳ': 'y', 'ý': 'y', 'ỵ': 'y', 'ỷ': 'y', 'ỹ': 'y',
	'đ': 'd',
}

// gymStopWords are dropped when extracting gym search keywords.
var gymStopWords = map[string]struct{}{
	"tim": {}, "find": {}, "search": {}, "co": {}, "khong": {},
	"nao": {}, "dau": {}, "where": {}, "what": {}, "gi": {},
	"la": {}, "o": {}, "tai": {}, "trong": {}, "cua": {},
	"mot": {}, "vai": {}, "nhung": {}, "cac": {}, "the": {},
	"a": {}, "an": {}, "and": {}, "or": {}, "for": {},
	"gym": {}, "phong": {}, "fitness": {}, "center": {}, "club": {},
	"quan": {}, "district": {},
}

// trainerStopWords are dropped when extracting trainer name keywords.
// Goal and gender vocabulary is stripped here because those cues are
// consumed by dedicated filters, not by name matching.
var trainerStopWords = map[string]struct{}{
	"tim": {}, "find": {}, "search": {}, "cho": {}, "giup": {},
	"help": {}, "me": {}, "toi": {}, "minh": {}, "cua": {},
	"my": {}, "i": {}, "we": {}, "us": {}, "muon": {}, "can": {},
	"need": {}, "want": {}, "hay": {}, "please": {}, "voi": {},
	"va": {}, "or": {}, "and": {}, "with": {},
	"pt": {}, "trainer": {}, "hlv": {}, "personal": {}, "coach": {},
	"huan": {}, "luyen": {}, "vien": {}, "giao": {}, "duc": {},
	"chuyen": {}, "giam": {}, "tang": {}, "co": {}, "the": {},
	"hinh": {}, "suc": {}, "manh": {}, "ben": {},
	"nu": {}, "nam": {}, "male": {}, "female": {}, "girl": {},
	"boy": {}, "woman": {}, "man": {}, "dan": {}, "ong": {},
	"ba": {}, "phu": {},
	"gan": {}, "day": {}, "xung": {}, "quanh": {}, "lan": {},
	"near": {}, "nearby": {}, "vong": {},
	"it": {}, "nhat": {}, "kinh": {}, "nghiem": {},
}

// goalMapping maps free-text synonyms to the canonical specialty tags
// stored in GoalTrainings. Order of map iteration does not matter; all
// matching tags are collected.
var goalMapping = map[string][]string{
	"Giảm cân":           {"giảm cân", "lose weight", "weight loss", "fat loss", "giam can"},
	"Tăng cơ":            {"tăng cơ", "build muscle", "muscle gain", "bulk", "tang co"},
	"Thể hình":           {"thể hình", "bodybuilding", "physique", "the hinh"},
	"Sức mạnh":           {"sức mạnh", "strength", "power", "suc manh"},
	"Sức bền":            {"sức bền", "endurance", "stamina", "cardio", "suc ben"},
	"Linh hoạt":          {"linh hoạt", "flexibility", "yoga", "stretching", "linh hoat"},
	"Phục hồi chức năng": {"phục hồi", "rehabilitation", "recovery", "injury", "phuc hoi"},
	"Thể lực tổng hợp":   {"thể lực", "fitness", "general fitness", "the luc"},
}

// radiusBucket maps categorical distance phrasing to a radius.
// Buckets are checked in slice order; the first hit wins, so the
// tighter phrasings must stay ahead of the looser ones.
type radiusBucket struct {
	km       int
	patterns []*regexp.Regexp
}

var radiusBuckets = []radiusBucket{
	{2, compileAll(
		`(rất gần|very close|walking distance|đi bộ|đi bộ được)`,
		`(ngay gần|sát bên|cực gần|siêu gần)`,
		`(trong phạm vi \d{1,3}\s*m|dưới 1km|under 1km)`,
	)},
	{5, compileAll(
		`(gần|nearby|close|lân cận|kề bên)`,
		`(quanh đây|xung quanh|around here)`,
		`(không xa|not far|gần nhà|near home)`,
	)},
	{10, compileAll(
		`(khu vực|trong khu|in the area|local)`,
		`(xa một chút|bit farther|hơi xa)`,
		`(trong thành phố|in the city|cùng thành phố)`,
	)},
	{15, compileAll(
		`(xa hơn|farther|more distant)`,
		`(trong tỉnh|in province|cùng tỉnh)`,
		`(mở rộng|expand|extend)`,
	)},
	{25, compileAll(
		`(rất xa|very far|distant)`,
		`(khắp nơi|everywhere|anywhere)`,
		`(toàn bộ|all|entire|whole)`,
	)},
	{50, compileAll(
		`(tất cả|all gyms|mọi|every|bất kỳ đâu)`,
		`(không giới hạn|unlimited|no limit)`,
		`(toàn quốc|nationwide|whole country)`,
	)},
}

type radiusCue struct {
	pattern *regexp.Regexp
	km      int
}

var transportCues = []radiusCue{
	{regexp.MustCompile(`(xe đạp|bicycle|bike)`), 8},
	{regexp.MustCompile(`(xe máy|motorbike|scooter)`), 15},
	{regexp.MustCompile(`(ô tô|car|drive|driving)`), 20},
	{regexp.MustCompile(`(xe bus|bus|public transport)`), 12},
}

// Longer durations first: "15 phút" must not substring-match "5 phút".
var travelTimeCues = []radiusCue{
	{regexp.MustCompile(`(30 phút|30min|nửa giờ|half hour)`), 18},
	{regexp.MustCompile(`(20 phút|20min|hai mươi phút)`), 12},
	{regexp.MustCompile(`(15 phút|15min|mười lăm phút)`), 8},
	{regexp.MustCompile(`(10 phút|10min|mười phút)`), 5},
	{regexp.MustCompile(`(5 phút|5min|năm phút)`), 3},
}

var placeScaleCues = []radiusCue{
	{regexp.MustCompile(`(quận \d+|district \d+)`), 8},
	{regexp.MustCompile(`(thành phố|city|tp\.)`), 15},
	{regexp.MustCompile(`(tỉnh|province|tỉnh thành)`), 25},
	{regexp.MustCompile(`(huyện|county|suburban)`), 20},
}

var explicitKmPattern = regexp.MustCompile(`(\d+)\s*km`)

// experienceFamily maps one phrasing family to a comparison operator.
// Families are tried in order; only the first match is honored. The
// bare "N years of experience" family emits a literal "=", matching
// the platform's documented behavior (callers treat it as a minimum).
type experienceFamily struct {
	op      string
	pattern *regexp.Regexp
}

var experienceFamilies = []experienceFamily{
	{">=", regexp.MustCompile(`(?:ít nhất|it nhat|tối thiểu|toi thieu|at least|minimum|từ|tu|over)\s*(\d+)\s*(?:năm|nam|years?|year)`)},
	{">", regexp.MustCompile(`(?:hơn|hon|trên|tren|more than)\s*(\d+)\s*(?:năm|nam|years?|year)`)},
	{"<", regexp.MustCompile(`(?:dưới|duoi|ít hơn|it hon|under|less than)\s*(\d+)\s*(?:năm|nam|years?|year)`)},
	{"=", regexp.MustCompile(`(\d+)\s*(?:năm|nam|years?|year)\s*(?:kinh nghiệm|kinh nghiem|of experience|experience)`)},
}

// nonGymIndicators short-circuit gym classification to "no query".
// Ambiguous small talk defaults to conversation, not search.
var nonGymIndicators = []string{
	// Greetings and pleasantries
	"xin chào", "hello", "hi", "chào bạn", "hey there",
	"cảm ơn", "thank you", "thanks", "cám ơn", "tks",
	"tạm biệt", "bye", "goodbye", "see you",

	// Personal questions
	"tên tôi", "my name", "lặp lại tên", "nhắc lại tên",
	"tôi là ai", "who am i", "remember me",

	// General health advice that needs no specific gym
	"làm sao để", "how to", "cách để", "how can i",
	"ăn gì để", "what to eat", "what should i eat",
	"bài tập nào", "what exercise", "which workout",
	"tăng cân", "giảm cân", "lose weight", "gain weight",
	"thời tiết", "weather", "nhiệt độ", "temperature",

	// Generic acknowledgements
	"ok", "được rồi", "tốt", "good", "fine", "great",
	"đồng ý", "agree", "yes", "no problem",
}

// gymSearchPatterns are the positive gate: at least one must match for
// gym query construction to proceed.
var gymSearchPatterns = compileAll(
	// Direct search phrasing
	`(tìm|find|search|looking for)\s*(gym|phòng gym|fitness|thể dục)`,
	`(gym|phòng gym|fitness)\s*(nào|what|which|where)`,
	`(có|is there|are there)\s*(gym|phòng gym|fitness)`,

	// Location-qualified phrasing
	`(gym|phòng gym|fitness)\s*(ở|at|in|near|gần)\s*(\S+)`,
	`(quận|district|huyện|thành phố|city)\s*\d*.*?(gym|phòng gym|fitness)`,

	// Quality-qualified phrasing
	`(gym|phòng gym|fitness)\s*(hot|nổi tiếng|phổ biến|tốt|best)`,
	`(hot|nổi tiếng|phổ biến|tốt|best)\s*(gym|phòng gym|fitness)`,

	// Listing phrasing
	`(danh sách|list)\s*(gym|phòng gym|fitness)`,
	`(tất cả|all)\s*(gym|phòng gym|fitness)`,
	`(những|the)\s*(gym|phòng gym|fitness)\s*(nào|what)`,
)

var hotCuePatterns = compileAll(
	`(hot|nổi tiếng|phổ biến|được yêu thích|tốt nhất|best|top)`,
	`(recommend|gợi ý|đề xuất|suggest)`,
)

// locationPatterns extract a district/city/free location token. The
// district patterns are checked first so "quận 7" never degrades into
// a generic location match.
var locationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(quận|district)\s*([\p{L}\p{N}\s]+?)(?:\s|$|,|\.)`),
	regexp.MustCompile(`(huyện|county)\s*([\p{L}\p{N}\s]+?)(?:\s|$|,|\.)`),
	regexp.MustCompile(`(thành phố|city|tp\.?)\s*([\p{L}\p{N}\s]+?)(?:\s|$|,|\.)`),
	regexp.MustCompile(`(ở|tại|in|at)\s*([\p{L}\p{N}\s]+?)(?:\s|$|,|\.)`),
}

var districtNumberPattern = regexp.MustCompile(`^(\d+)$`)
var districtNameTrailerPattern = regexp.MustCompile(`\s*(gym|phòng|phong|fitness|tìm|tim|find).*$`)

// specialGymListCases trigger the unfiltered all-gyms listing when the
// pattern gate produced nothing more specific.
var specialGymListCases = []string{
	"danh sách gym", "list gym", "all gym", "tất cả gym",
	"gym có những gì", "gym nào", "which gym",
}

// Trainer intent vocabulary.
var trainerKeywordPatterns = compileAll(
	`\bpt\b`, `huấn luyện viên`, `personal trainer`, `trainer`,
	`hlv`, `coach`, `giáo viên thể dục`,
	`tìm pt`, `find trainer`, `tìm trainer`,
)

var trainingContextPatterns = compileAll(
	`tập riêng`, `tập cá nhân`, `personal training`,
	`hướng dẫn tập`, `chỉ tập`, `dạy tập`,
	`tư vấn tập`, `lên lịch tập`,
)

var specificGoalCues = []string{
	"giảm cân", "tăng cơ", "thể hình", "sức mạnh", "sức bền",
	"lose weight", "build muscle", "bodybuilding", "strength",
}

// Freelance / gym-only mode cues. Default is mixed.
var freelanceCues = []string{"tự do", "tu do", "freelance", "freelancer"}
var gymOnlyCues = []string{"tại phòng gym", "tai phong gym", "pt gym", "gym trainer", "at the gym", "at a gym"}

// Proximity cue lists. The gym branch accepts the wider list; trainer
// proximity uses the shorter one.
var gymNearCues = []string{"gần", "near", "nearby", "xung quanh", "lân cận", "gần đây", "quanh đây"}
var trainerNearCues = []string{"gần", "near", "nearby", "xung quanh", "lân cận"}

// Context-aware classification: gym names already shown to the user
// plus "something else" phrasing trigger exclusion conditions.
var contextGymNamePattern = regexp.MustCompile(`([\p{L}\p{N}]+\s*(?:gym|fitness|center))`)
var somethingElseCues = []string{"khác", "other", "nào khác", "còn"}

// Gym-context vocabulary for the context-aware gate. Without at least
// one of these the input goes straight to conversation.
var gymContextKeywords = []string{
	"gym", "fitness", "thể dục", "thể hình", "tập luyện",
	"phòng gym", "trung tâm", "center", "club",
	"tìm", "search", "ở đâu", "where", "địa chỉ", "address",
	"gần", "near", "nearby", "quanh", "xung quanh",
	"quận", "district", "thành phố", "city",
}

func compileAll(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		out[i] = regexp.MustCompile(p)
	}
	return out
}
