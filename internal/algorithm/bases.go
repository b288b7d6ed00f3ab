package algorithm

import "github.com/sumitttt4/glyph/internal/technique"

// Base generator ids.
const (
	BasePremiumCube   = "premium/cube"
	BasePremiumOrb    = "premium/orb"
	BasePremiumShield = "premium/shield"
	BasePremiumHex    = "premium/hex"

	BaseInterlockRings = "interlock/rings"
	BaseInterlockWeave = "interlock/weave"
	BaseInterlockLinks = "interlock/links"

	BaseFusionEmblem = "fusion/emblem"
	BaseFusionPair   = "fusion/pair"
	BaseFusionOrbit  = "fusion/orbit"

	BaseTrinityTriangles = "trinity/triangles"
	BaseTrinityCircles   = "trinity/circles"
	BaseTrinityPetals    = "trinity/petals"

	BaseCreativeBio        = "creative/bio"
	BaseCreativeIndustrial = "creative/industrial"
	BaseCreativeChunky     = "creative/chunky"

	BaseMonogramRing   = "monogram/ring"
	BaseMonogramTile   = "monogram/tile"
	BaseMonogramSplit  = "monogram/split"
	BaseMonogramStripe = "monogram/stripe"

	BaseWordmarkPlain  = "wordmark/plain"
	BaseWordmarkSpaced = "wordmark/spaced"
	BaseWordmarkSymbol = "wordmark/symbol"
)

// TechniqueBase returns the base id of a skeleton technique.
func TechniqueBase(id string) string {
	return "technique/" + id
}

// defaultBase is used if an entry names a base that does not exist.
var defaultBase = TechniqueBase(technique.Monoline)

var bases = map[string]Generator{
	BasePremiumCube:   premiumCube,
	BasePremiumOrb:    premiumOrb,
	BasePremiumShield: premiumShield,
	BasePremiumHex:    premiumHex,

	BaseInterlockRings: interlockRings,
	BaseInterlockWeave: interlockWeave,
	BaseInterlockLinks: interlockLinks,

	BaseFusionEmblem: fusionEmblem,
	BaseFusionPair:   fusionPair,
	BaseFusionOrbit:  fusionOrbit,

	BaseTrinityTriangles: trinityTriangles,
	BaseTrinityCircles:   trinityCircles,
	BaseTrinityPetals:    trinityPetals,

	BaseCreativeBio:        creativeBio,
	BaseCreativeIndustrial: creativeIndustrial,
	BaseCreativeChunky:     creativeChunky,

	BaseMonogramRing:   monogramRing,
	BaseMonogramTile:   monogramTile,
	BaseMonogramSplit:  monogramSplit,
	BaseMonogramStripe: monogramStripe,

	BaseWordmarkPlain:  wordmarkPlain,
	BaseWordmarkSpaced: wordmarkSpaced,
	BaseWordmarkSymbol: wordmarkSymbol,
}

func init() {
	for _, t := range technique.All() {
		bases[TechniqueBase(t.ID)] = Generator(t.Render)
	}
}

// HasBase reports whether id names a registered base generator.
func HasBase(id string) bool {
	_, ok := bases[id]
	return ok
}
