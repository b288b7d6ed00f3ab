package designer

import (
	"github.com/sumitttt4/glyph/internal/algorithm"
	"github.com/sumitttt4/glyph/internal/icon"
	"github.com/sumitttt4/glyph/internal/params"
)

// industry is one row of the category lookup.
type industry struct {
	name        string
	aliases     []string
	concepts    []string
	personality []Personality
	icon        string
	tags        []string
}

const defaultIndustry = "general"

// industries is scanned in order for fuzzy category matches. The last row is
// the fallback and has no aliases.
var industries = []industry{
	{
		name:        "technology",
		aliases:     []string{"technology", "tech", "software", "saas", "it", "ai", "digital", "startup"},
		concepts:    []string{"innovation", "connection", "data", "future"},
		personality: []Personality{Professional, Innovative},
		icon:        icon.Tech,
		tags:        []string{algorithm.TagTechnical, algorithm.TagGeometric, algorithm.TagInnovative},
	},
	{
		name:        "finance",
		aliases:     []string{"finance", "fintech", "bank", "banking", "money", "payments", "insurance", "investment"},
		concepts:    []string{"trust", "growth", "security", "value"},
		personality: []Personality{Professional, Minimal},
		icon:        icon.Finance,
		tags:        []string{algorithm.TagTrust, algorithm.TagProfessional, algorithm.TagGeometric},
	},
	{
		name:        "health",
		aliases:     []string{"health", "healthcare", "medical", "wellness", "fitness", "pharma", "care"},
		concepts:    []string{"care", "life", "vitality", "balance"},
		personality: []Personality{Friendly, Professional},
		icon:        icon.Health,
		tags:        []string{algorithm.TagFriendly, algorithm.TagOrganic, algorithm.TagTrust},
	},
	{
		name:        "creative",
		aliases:     []string{"creative", "design", "agency", "art", "studio", "media", "entertainment"},
		concepts:    []string{"creativity", "idea", "expression", "vision"},
		personality: []Personality{Playful, Bold},
		icon:        icon.Creative,
		tags:        []string{algorithm.TagPlayful, algorithm.TagAbstract, algorithm.TagOrganic},
	},
	{
		name:        "education",
		aliases:     []string{"education", "edtech", "school", "learning", "university", "academy"},
		concepts:    []string{"knowledge", "growth", "insight", "future"},
		personality: []Personality{Friendly, Professional},
		icon:        icon.Growth,
		tags:        []string{algorithm.TagFriendly, algorithm.TagRefined},
	},
	{
		name:        "food",
		aliases:     []string{"food", "restaurant", "cafe", "coffee", "beverage", "grocery", "bakery"},
		concepts:    []string{"warmth", "nature", "community", "taste"},
		personality: []Personality{Friendly, Playful},
		icon:        icon.Default,
		tags:        []string{algorithm.TagFriendly, algorithm.TagOrganic, algorithm.TagPlayful},
	},
	{
		name:        "retail",
		aliases:     []string{"retail", "ecommerce", "shop", "store", "fashion", "commerce"},
		concepts:    []string{"value", "style", "speed", "community"},
		personality: []Personality{Bold, Elegant},
		icon:        icon.Speed,
		tags:        []string{algorithm.TagBold, algorithm.TagElegant},
	},
	{
		name:        "logistics",
		aliases:     []string{"logistics", "delivery", "transport", "travel", "mobility", "shipping"},
		concepts:    []string{"speed", "movement", "journey", "connection"},
		personality: []Personality{Bold, Friendly},
		icon:        icon.Speed,
		tags:        []string{algorithm.TagDynamic, algorithm.TagBold},
	},
	{
		name:        "energy",
		aliases:     []string{"energy", "climate", "solar", "sustainability", "green", "environment"},
		concepts:    []string{"nature", "power", "growth", "future"},
		personality: []Personality{Innovative, Friendly},
		icon:        icon.Growth,
		tags:        []string{algorithm.TagOrganic, algorithm.TagInnovative},
	},
	{
		name:        "security",
		aliases:     []string{"security", "cybersecurity", "privacy", "defense"},
		concepts:    []string{"protection", "trust", "strength", "security"},
		personality: []Personality{Professional, Bold},
		icon:        icon.Secure,
		tags:        []string{algorithm.TagTrust, algorithm.TagTechnical, algorithm.TagBold},
	},
	{
		name:        "communication",
		aliases:     []string{"communication", "telecom", "social", "messaging", "community"},
		concepts:    []string{"connection", "voice", "community"},
		personality: []Personality{Friendly, Innovative},
		icon:        icon.Communication,
		tags:        []string{algorithm.TagConnection, algorithm.TagFriendly},
	},
	{
		name:        "data",
		aliases:     []string{"data", "analytics", "research", "intelligence"},
		concepts:    []string{"insight", "data", "clarity"},
		personality: []Personality{Technical, Professional},
		icon:        icon.Data,
		tags:        []string{algorithm.TagTechnical, algorithm.TagGeometric},
	},
	{
		name:        defaultIndustry,
		concepts:    []string{"identity", "quality", "vision"},
		personality: []Personality{Professional},
		icon:        icon.Default,
		tags:        []string{algorithm.TagProfessional, algorithm.TagGeometric},
	},
}

// verbs maps a description stem to the concept it implies.
var verbs = []struct{ stem, concept string }{
	{"sell", "value"},
	{"build", "innovation"},
	{"connect", "connection"},
	{"creat", "creativity"},
	{"design", "creativity"},
	{"protect", "protection"},
	{"secur", "security"},
	{"grow", "growth"},
	{"teach", "knowledge"},
	{"learn", "knowledge"},
	{"heal", "care"},
	{"care", "care"},
	{"move", "movement"},
	{"deliver", "speed"},
	{"ship", "speed"},
	{"analy", "insight"},
	{"pay", "value"},
	{"save", "trust"},
	{"share", "community"},
	{"power", "power"},
}

// audiences maps an audience stem to a served group.
var audiences = []struct{ stem, group string }{
	{"business", "businesses"},
	{"enterprise", "businesses"},
	{"b2b", "businesses"},
	{"startup", "startups"},
	{"developer", "developers"},
	{"engineer", "developers"},
	{"consumer", "consumers"},
	{"people", "consumers"},
	{"famil", "families"},
	{"kid", "families"},
	{"child", "families"},
	{"parent", "families"},
	{"student", "students"},
	{"teacher", "educators"},
	{"patient", "patients"},
	{"doctor", "clinicians"},
	{"creator", "creators"},
	{"artist", "creators"},
	{"investor", "investors"},
	{"traveler", "travellers"},
	{"traveller", "travellers"},
}

const defaultAudience = "everyone"

var tones = map[Personality]string{
	Professional: "confident",
	Playful:      "joyful",
	Bold:         "energetic",
	Minimal:      "calm",
	Elegant:      "sophisticated",
	Friendly:     "warm",
	Innovative:   "forward-looking",
	Technical:    "precise",
}

var directions = map[Personality]string{
	Professional: "geometric",
	Playful:      "organic",
	Bold:         "bold",
	Minimal:      "minimal",
	Elegant:      "refined",
	Friendly:     "organic",
	Innovative:   "abstract",
	Technical:    "geometric",
}

// directionTags maps a visual direction to the library tag that expresses it.
var directionTags = map[string]string{
	"geometric": algorithm.TagGeometric,
	"organic":   algorithm.TagOrganic,
	"bold":      algorithm.TagBold,
	"minimal":   algorithm.TagMinimal,
	"refined":   algorithm.TagRefined,
	"abstract":  algorithm.TagAbstract,
}

// personalityOverrides nudges concepts picked for a trait.
var personalityOverrides = map[Personality]params.Overrides{
	Bold:    {params.StrokeWidth: 7},
	Minimal: {params.StrokeWidth: 2, params.ElementCount: 2},
	Elegant: {params.StrokeWidth: 2.5},
	Playful: {params.CornerRadius: 40},
}

type metaphor struct {
	related   []string
	metaphors []string
}

// metaphors is the concept table used by word association. Every industry
// concept and verb concept has a row.
var metaphors = map[string]metaphor{
	"innovation": {[]string{"invention", "progress", "future"}, []string{"spark", "orbit", "prism"}},
	"connection": {[]string{"network", "link", "together"}, []string{"node", "ring", "bridge"}},
	"data":       {[]string{"information", "insight", "pattern"}, []string{"grid", "bars", "pixel"}},
	"future":     {[]string{"forward", "horizon", "progress"}, []string{"arrow", "orbit", "spark"}},
	"trust":      {[]string{"reliability", "loyalty", "safety"}, []string{"shield", "ring", "knot"}},
	"growth":     {[]string{"rise", "expansion", "progress"}, []string{"arrow", "leaf", "steps"}},
	"security":   {[]string{"safety", "defense", "privacy"}, []string{"shield", "lock", "vault"}},
	"value":      {[]string{"worth", "exchange", "quality"}, []string{"coin", "diamond", "stack"}},
	"care":       {[]string{"compassion", "health", "support"}, []string{"heart", "hand", "leaf"}},
	"life":       {[]string{"vitality", "nature", "energy"}, []string{"leaf", "cell", "pulse"}},
	"vitality":   {[]string{"energy", "health", "life"}, []string{"pulse", "sun", "cell"}},
	"balance":    {[]string{"harmony", "calm", "symmetry"}, []string{"circle", "halves", "scale"}},
	"creativity": {[]string{"imagination", "art", "expression"}, []string{"swirl", "brush", "spark"}},
	"idea":       {[]string{"insight", "invention", "thought"}, []string{"spark", "bulb", "prism"}},
	"expression": {[]string{"voice", "art", "style"}, []string{"brush", "wave", "bubble"}},
	"vision":     {[]string{"foresight", "clarity", "goal"}, []string{"eye", "horizon", "prism"}},
	"knowledge":  {[]string{"learning", "wisdom", "insight"}, []string{"book", "steps", "spark"}},
	"insight":    {[]string{"understanding", "clarity", "data"}, []string{"eye", "prism", "bars"}},
	"warmth":     {[]string{"comfort", "home", "welcome"}, []string{"sun", "heart", "circle"}},
	"nature":     {[]string{"earth", "green", "organic"}, []string{"leaf", "wave", "sun"}},
	"community":  {[]string{"people", "together", "belonging"}, []string{"ring", "node", "circle"}},
	"taste":      {[]string{"flavour", "quality", "craft"}, []string{"circle", "leaf", "swirl"}},
	"style":      {[]string{"fashion", "elegance", "design"}, []string{"diamond", "brush", "halves"}},
	"speed":      {[]string{"fast", "motion", "agility"}, []string{"arrow", "chevron", "streak"}},
	"movement":   {[]string{"motion", "flow", "journey"}, []string{"wave", "arrow", "orbit"}},
	"journey":    {[]string{"travel", "path", "adventure"}, []string{"path", "arrow", "horizon"}},
	"power":      {[]string{"energy", "strength", "force"}, []string{"bolt", "sun", "gear"}},
	"protection": {[]string{"safety", "shelter", "defense"}, []string{"shield", "lock", "ring"}},
	"strength":   {[]string{"power", "resilience", "solidity"}, []string{"block", "shield", "gear"}},
	"voice":      {[]string{"speech", "message", "expression"}, []string{"bubble", "wave", "signal"}},
	"clarity":    {[]string{"transparency", "focus", "insight"}, []string{"prism", "eye", "grid"}},
	"identity":   {[]string{"self", "character", "name"}, []string{"initial", "circle", "tile"}},
	"quality":    {[]string{"craft", "excellence", "detail"}, []string{"diamond", "tile", "ring"}},

	"nexus":   {[]string{"connection", "center", "link"}, []string{"node", "hub", "intersection"}},
	"nova":    {[]string{"star", "brightness", "new"}, []string{"spark", "sun", "orbit"}},
	"core":    {[]string{"center", "essence", "strength"}, []string{"circle", "cube", "orbit"}},
	"peak":    {[]string{"summit", "achievement", "growth"}, []string{"mountain", "triangle", "arrow"}},
	"flow":    {[]string{"movement", "ease", "continuity"}, []string{"wave", "swirl", "stream"}},
	"spark":   {[]string{"idea", "energy", "beginning"}, []string{"spark", "star", "bolt"}},
	"orbit":   {[]string{"motion", "space", "cycle"}, []string{"orbit", "ring", "planet"}},
	"pixel":   {[]string{"digital", "detail", "screen"}, []string{"pixel", "grid", "block"}},
	"bridge":  {[]string{"connection", "crossing", "link"}, []string{"bridge", "arc", "node"}},
	"link":    {[]string{"connection", "chain", "bond"}, []string{"chain", "ring", "node"}},
	"wave":    {[]string{"motion", "sound", "ocean"}, []string{"wave", "signal", "stream"}},
	"leaf":    {[]string{"nature", "growth", "fresh"}, []string{"leaf", "sprout", "cell"}},
	"sun":     {[]string{"light", "warmth", "energy"}, []string{"sun", "circle", "rays"}},
	"star":    {[]string{"excellence", "guidance", "light"}, []string{"star", "spark", "orbit"}},
	"bolt":    {[]string{"energy", "speed", "power"}, []string{"bolt", "chevron", "streak"}},
	"block":   {[]string{"building", "solidity", "unit"}, []string{"block", "cube", "grid"}},
	"cloud":   {[]string{"sky", "storage", "lightness"}, []string{"cloud", "bubble", "orbit"}},
	"mind":    {[]string{"thought", "intelligence", "idea"}, []string{"spiral", "prism", "spark"}},
	"path":    {[]string{"journey", "direction", "way"}, []string{"path", "arrow", "chevron"}},
	"light":   {[]string{"clarity", "energy", "brightness"}, []string{"rays", "sun", "prism"}},
	"pay":     {[]string{"payment", "exchange", "value"}, []string{"coin", "arrow", "stack"}},
	"secure":  {[]string{"safety", "protection", "trust"}, []string{"shield", "lock", "vault"}},
	"swift":   {[]string{"speed", "agility", "motion"}, []string{"streak", "chevron", "arrow"}},
	"hub":     {[]string{"center", "network", "meeting"}, []string{"hub", "node", "ring"}},
	"labs":    {[]string{"experiment", "research", "invention"}, []string{"prism", "cell", "grid"}},
	"green":   {[]string{"nature", "sustainability", "fresh"}, []string{"leaf", "sprout", "wave"}},
	"quantum": {[]string{"physics", "future", "precision"}, []string{"orbit", "node", "prism"}},
}

// metaphorTags maps a visual metaphor to the library tag of algorithms that
// can draw it.
var metaphorTags = map[string]string{
	"node":         algorithm.TagConnection,
	"hub":          algorithm.TagConnection,
	"intersection": algorithm.TagConnection,
	"ring":         algorithm.TagConnection,
	"chain":        algorithm.TagConnection,
	"bridge":       algorithm.TagConnection,
	"knot":         algorithm.TagConnection,
	"shield":       algorithm.TagTrust,
	"lock":         algorithm.TagTrust,
	"vault":        algorithm.TagTrust,
	"spark":        algorithm.TagInnovative,
	"prism":        algorithm.TagInnovative,
	"orbit":        algorithm.TagDynamic,
	"arrow":        algorithm.TagDynamic,
	"chevron":      algorithm.TagDynamic,
	"streak":       algorithm.TagDynamic,
	"bolt":         algorithm.TagDynamic,
	"leaf":         algorithm.TagOrganic,
	"cell":         algorithm.TagOrganic,
	"swirl":        algorithm.TagOrganic,
	"wave":         algorithm.TagOrganic,
	"sprout":       algorithm.TagOrganic,
	"grid":         algorithm.TagTechnical,
	"pixel":        algorithm.TagTechnical,
	"gear":         algorithm.TagTechnical,
	"block":        algorithm.TagBold,
	"cube":         algorithm.TagGeometric,
	"triangle":     algorithm.TagGeometric,
	"diamond":      algorithm.TagRefined,
	"circle":       algorithm.TagMinimal,
	"tile":         algorithm.TagProfessional,
	"initial":      algorithm.TagLettermark,
	"brush":        algorithm.TagElegant,
	"heart":        algorithm.TagFriendly,
	"bubble":       algorithm.TagFriendly,
	"sun":          algorithm.TagFriendly,
	"halves":       algorithm.TagNegative,
}

// premiumPicks are sketched for every brand.
var premiumPicks = []string{"Premium Cube", "Premium Orb", "Premium Shield", "Premium Hex"}
