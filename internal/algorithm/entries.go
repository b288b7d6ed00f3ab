package algorithm

import (
	p "github.com/sumitttt4/glyph/internal/params"
	"github.com/sumitttt4/glyph/internal/technique"
)

// Tags shared by library entries and the designer's matching tables.
const (
	TagLettermark   = "lettermark"
	TagGeometric    = "geometric"
	TagAbstract     = "abstract"
	TagOrganic      = "organic"
	TagBold         = "bold"
	TagMinimal      = "minimal"
	TagRefined      = "refined"
	TagPlayful      = "playful"
	TagTechnical    = "technical"
	TagProfessional = "professional"
	TagInnovative   = "innovative"
	TagElegant      = "elegant"
	TagFriendly     = "friendly"
	TagDynamic      = "dynamic"
	TagTrust        = "trust"
	TagConnection   = "connection"
	TagNegative     = "negative-space"
)

// Seed selection indexes into this slice. Append only.
var library = []Entry{
	// Skeleton techniques and their presets.
	{Name: "Modular", Description: "Geometric units on every anchor of the initial", Type: KindSymbol, Family: FamilyTechnique, Base: TechniqueBase(technique.Modular), Tags: []string{TagLettermark, TagGeometric, TagTechnical}},
	{Name: "Modular Round", Description: "Modular initial built from discs", Type: KindSymbol, Family: FamilyTechnique, Base: TechniqueBase(technique.Modular), Overrides: p.Overrides{p.CornerRadius: 40}, Tags: []string{TagLettermark, TagGeometric, TagFriendly}},
	{Name: "Modular Square", Description: "Modular initial built from hard squares", Type: KindSymbol, Family: FamilyTechnique, Base: TechniqueBase(technique.Modular), Overrides: p.Overrides{p.CornerRadius: 0}, Tags: []string{TagLettermark, TagGeometric, TagTechnical}},
	{Name: "Modular Dense", Description: "Heavy modular units with full fill", Type: KindSymbol, Family: FamilyTechnique, Base: TechniqueBase(technique.Modular), Overrides: p.Overrides{p.StrokeWidth: 7, p.FillOpacity: 1}, Tags: []string{TagLettermark, TagBold}},
	{Name: "Stencil", Description: "Initial with stencil bridges", Type: KindSymbol, Family: FamilyTechnique, Base: TechniqueBase(technique.Stencil), Tags: []string{TagLettermark, TagBold, TagTechnical}},
	{Name: "Stencil Bold", Description: "Heavy stencil initial with wide bridges", Type: KindSymbol, Family: FamilyTechnique, Base: TechniqueBase(technique.Stencil), Overrides: p.Overrides{p.StrokeWidth: 8, p.SpacingRatio: 1.8}, Tags: []string{TagLettermark, TagBold}},
	{Name: "Stencil Fine", Description: "Light stencil initial with hairline bridges", Type: KindSymbol, Family: FamilyTechnique, Base: TechniqueBase(technique.Stencil), Overrides: p.Overrides{p.StrokeWidth: 2, p.SpacingRatio: 0.6}, Tags: []string{TagLettermark, TagRefined}},
	{Name: "Outline", Description: "Echoed outline initial", Type: KindSymbol, Family: FamilyTechnique, Base: TechniqueBase(technique.Outline), Tags: []string{TagLettermark, TagDynamic}},
	{Name: "Outline Echo", Description: "Six widening echoes under a crisp contour", Type: KindSymbol, Family: FamilyTechnique, Base: TechniqueBase(technique.Outline), Overrides: p.Overrides{p.ElementCount: 6, p.SpacingRatio: 1.2}, Tags: []string{TagLettermark, TagDynamic, TagInnovative}},
	{Name: "Outline Tight", Description: "Two close echoes", Type: KindSymbol, Family: FamilyTechnique, Base: TechniqueBase(technique.Outline), Overrides: p.Overrides{p.ElementCount: 2, p.SpacingRatio: 0.5}, Tags: []string{TagLettermark, TagMinimal}},
	{Name: "Geometric Construction", Description: "Initial drawn part by part with construction caps", Type: KindSymbol, Family: FamilyTechnique, Base: TechniqueBase(technique.Construction), Tags: []string{TagLettermark, TagGeometric, TagProfessional}},
	{Name: "Construction Guides", Description: "Construction initial over visible guide circles", Type: KindSymbol, Family: FamilyTechnique, Base: TechniqueBase(technique.Construction), Overrides: p.Overrides{p.FillOpacity: 0.35}, Tags: []string{TagLettermark, TagGeometric, TagTechnical}},
	{Name: "Construction Clean", Description: "Construction initial without guides", Type: KindSymbol, Family: FamilyTechnique, Base: TechniqueBase(technique.Construction), Overrides: p.Overrides{p.FillOpacity: 1}, Tags: []string{TagLettermark, TagGeometric, TagMinimal}},
	{Name: "Calligraphic", Description: "Weighted primary strokes with tapered secondaries", Type: KindSymbol, Family: FamilyTechnique, Base: TechniqueBase(technique.Calligraphic), Tags: []string{TagLettermark, TagElegant}},
	{Name: "Calligraphic Brush", Description: "Heavy brush initial with strong taper", Type: KindSymbol, Family: FamilyTechnique, Base: TechniqueBase(technique.Calligraphic), Overrides: p.Overrides{p.StrokeWidth: 7, p.StrokeTaper: 80}, Tags: []string{TagLettermark, TagOrganic, TagBold}},
	{Name: "Calligraphic Pen", Description: "Light pen initial with subtle taper", Type: KindSymbol, Family: FamilyTechnique, Base: TechniqueBase(technique.Calligraphic), Overrides: p.Overrides{p.StrokeWidth: 3, p.StrokeTaper: 20}, Tags: []string{TagLettermark, TagRefined, TagElegant}},
	{Name: "Monoline", Description: "Single uniform stroke initial", Type: KindSymbol, Family: FamilyTechnique, Base: TechniqueBase(technique.Monoline), Tags: []string{TagLettermark, TagMinimal}},
	{Name: "Monoline Heavy", Description: "Single heavy stroke initial", Type: KindSymbol, Family: FamilyTechnique, Base: TechniqueBase(technique.Monoline), Overrides: p.Overrides{p.StrokeWidth: 8}, Tags: []string{TagLettermark, TagBold}},
	{Name: "Monoline Hairline", Description: "Single hairline initial", Type: KindSymbol, Family: FamilyTechnique, Base: TechniqueBase(technique.Monoline), Overrides: p.Overrides{p.StrokeWidth: 1}, Tags: []string{TagLettermark, TagMinimal, TagRefined}},
	{Name: "Shadow", Description: "Initial with stacked depth copies", Type: KindSymbol, Family: FamilyTechnique, Base: TechniqueBase(technique.Shadow), Tags: []string{TagLettermark, TagBold, TagDynamic}},
	{Name: "Shadow Deep", Description: "Initial with long extrusion", Type: KindSymbol, Family: FamilyTechnique, Base: TechniqueBase(technique.Shadow), Overrides: p.Overrides{p.SpacingRatio: 2}, Tags: []string{TagLettermark, TagBold}},
	{Name: "Shadow Soft", Description: "Light initial with a short shadow", Type: KindSymbol, Family: FamilyTechnique, Base: TechniqueBase(technique.Shadow), Overrides: p.Overrides{p.SpacingRatio: 0.5, p.StrokeWidth: 3}, Tags: []string{TagLettermark, TagFriendly}},
	{Name: "Dotted", Description: "Initial traced in dashes", Type: KindSymbol, Family: FamilyTechnique, Base: TechniqueBase(technique.Dotted), Tags: []string{TagLettermark, TagPlayful}},
	{Name: "Dotted Fine", Description: "Initial traced in fine dots", Type: KindSymbol, Family: FamilyTechnique, Base: TechniqueBase(technique.Dotted), Overrides: p.Overrides{p.SpacingRatio: 0.5, p.StrokeWidth: 2}, Tags: []string{TagLettermark, TagPlayful, TagRefined}},
	{Name: "Dotted Wide", Description: "Initial traced in long dashes", Type: KindSymbol, Family: FamilyTechnique, Base: TechniqueBase(technique.Dotted), Overrides: p.Overrides{p.SpacingRatio: 2}, Tags: []string{TagLettermark, TagDynamic}},

	// Premium masked compositions.
	{Name: "Premium Cube", Description: "Isometric cube with a negative core", Type: KindSymbol, Family: FamilyPremium, Base: BasePremiumCube, Tags: []string{TagGeometric, TagProfessional, TagNegative}},
	{Name: "Premium Cube Core", Description: "Isometric cube with a round core", Type: KindSymbol, Family: FamilyPremium, Base: BasePremiumCube, Overrides: p.Overrides{p.CutoutPosition: 0}, Tags: []string{TagGeometric, TagTechnical, TagNegative}},
	{Name: "Premium Cube Letter", Description: "Isometric cube with the initial cut through", Type: KindSymbol, Family: FamilyPremium, Base: BasePremiumCube, Overrides: p.Overrides{p.CutoutPosition: 1}, Tags: []string{TagGeometric, TagLettermark, TagNegative}},
	{Name: "Premium Cube Diamond", Description: "Isometric cube with a diamond core", Type: KindSymbol, Family: FamilyPremium, Base: BasePremiumCube, Overrides: p.Overrides{p.CutoutPosition: 2}, Tags: []string{TagGeometric, TagRefined, TagNegative}},
	{Name: "Premium Orb", Description: "Solid orb with a negative form", Type: KindSymbol, Family: FamilyPremium, Base: BasePremiumOrb, Tags: []string{TagAbstract, TagInnovative, TagNegative}},
	{Name: "Premium Orb Crescent", Description: "Orb carved into a crescent", Type: KindSymbol, Family: FamilyPremium, Base: BasePremiumOrb, Overrides: p.Overrides{p.CutoutPosition: 0}, Tags: []string{TagAbstract, TagElegant, TagNegative}},
	{Name: "Premium Orb Slit", Description: "Orb sliced by horizontal slits", Type: KindSymbol, Family: FamilyPremium, Base: BasePremiumOrb, Overrides: p.Overrides{p.CutoutPosition: 2, p.ElementCount: 3}, Tags: []string{TagAbstract, TagTechnical, TagNegative}},
	{Name: "Premium Shield", Description: "Shield with a negative emblem", Type: KindSymbol, Family: FamilyPremium, Base: BasePremiumShield, Tags: []string{TagProfessional, TagTrust, TagNegative}},
	{Name: "Premium Shield Chevron", Description: "Shield with a chevron cut", Type: KindSymbol, Family: FamilyPremium, Base: BasePremiumShield, Overrides: p.Overrides{p.CutoutPosition: 0}, Tags: []string{TagTrust, TagBold, TagNegative}},
	{Name: "Premium Shield Crest", Description: "Shield with the initial cut through", Type: KindSymbol, Family: FamilyPremium, Base: BasePremiumShield, Overrides: p.Overrides{p.CutoutPosition: 1}, Tags: []string{TagTrust, TagLettermark, TagNegative}},
	{Name: "Premium Hex", Description: "Solid hexagon with a negative core", Type: KindSymbol, Family: FamilyPremium, Base: BasePremiumHex, Tags: []string{TagGeometric, TagTechnical, TagNegative}},
	{Name: "Premium Hex Core", Description: "Hexagon around a hexagonal void", Type: KindSymbol, Family: FamilyPremium, Base: BasePremiumHex, Overrides: p.Overrides{p.CutoutPosition: 0}, Tags: []string{TagGeometric, TagMinimal, TagNegative}},
	{Name: "Premium Hex Prism", Description: "Hexagon around a triangular void", Type: KindSymbol, Family: FamilyPremium, Base: BasePremiumHex, Overrides: p.Overrides{p.CutoutPosition: 2}, Tags: []string{TagGeometric, TagInnovative, TagNegative}},

	// Interlocking geometry.
	{Name: "Interlock Rings", Description: "Overlapping rings", Type: KindSymbol, Family: FamilyInterlock, Base: BaseInterlockRings, Tags: []string{TagConnection, TagGeometric}},
	{Name: "Interlock Chain", Description: "Five rings in a row", Type: KindSymbol, Family: FamilyInterlock, Base: BaseInterlockRings, Overrides: p.Overrides{p.ElementCount: 5, p.SymmetryIndex: 0}, Tags: []string{TagConnection, TagFriendly}},
	{Name: "Interlock Orbit", Description: "Rings orbiting the centre", Type: KindSymbol, Family: FamilyInterlock, Base: BaseInterlockRings, Overrides: p.Overrides{p.SymmetryIndex: 1, p.ElementCount: 4}, Tags: []string{TagConnection, TagInnovative, TagDynamic}},
	{Name: "Interlock Deep", Description: "Deeply overlapping rings", Type: KindSymbol, Family: FamilyInterlock, Base: BaseInterlockRings, Overrides: p.Overrides{p.InterlockDepth: 80}, Tags: []string{TagConnection, TagRefined}},
	{Name: "Interlock Weave", Description: "Bands woven over and under", Type: KindSymbol, Family: FamilyInterlock, Base: BaseInterlockWeave, Tags: []string{TagConnection, TagTechnical}},
	{Name: "Weave Dense", Description: "Fine dense weave", Type: KindSymbol, Family: FamilyInterlock, Base: BaseInterlockWeave, Overrides: p.Overrides{p.ElementCount: 5, p.StrokeWidth: 3}, Tags: []string{TagConnection, TagTechnical, TagRefined}},
	{Name: "Weave Bold", Description: "Two heavy woven bands each way", Type: KindSymbol, Family: FamilyInterlock, Base: BaseInterlockWeave, Overrides: p.Overrides{p.ElementCount: 2, p.StrokeWidth: 8}, Tags: []string{TagConnection, TagBold}},
	{Name: "Interlock Links", Description: "Two linked chain links", Type: KindSymbol, Family: FamilyInterlock, Base: BaseInterlockLinks, Tags: []string{TagConnection, TagTrust}},
	{Name: "Links Tight", Description: "Chain links with a deep overlap", Type: KindSymbol, Family: FamilyInterlock, Base: BaseInterlockLinks, Overrides: p.Overrides{p.InterlockDepth: 70}, Tags: []string{TagConnection, TagProfessional}},

	// Letter fusion.
	{Name: "Letter Emblem", Description: "Initial knocked out of a solid container", Type: KindSymbol, Family: FamilyFusion, Base: BaseFusionEmblem, Tags: []string{TagLettermark, TagBold, TagNegative}},
	{Name: "Emblem Disc", Description: "Initial knocked out of a disc", Type: KindSymbol, Family: FamilyFusion, Base: BaseFusionEmblem, Overrides: p.Overrides{p.CutoutPosition: 0}, Tags: []string{TagLettermark, TagFriendly, TagNegative}},
	{Name: "Emblem Tile", Description: "Initial knocked out of a rounded tile", Type: KindSymbol, Family: FamilyFusion, Base: BaseFusionEmblem, Overrides: p.Overrides{p.CutoutPosition: 1, p.CornerRadius: 12}, Tags: []string{TagLettermark, TagProfessional, TagNegative}},
	{Name: "Emblem Hex", Description: "Initial knocked out of a hexagon", Type: KindSymbol, Family: FamilyFusion, Base: BaseFusionEmblem, Overrides: p.Overrides{p.CutoutPosition: 2}, Tags: []string{TagLettermark, TagTechnical, TagNegative}},
	{Name: "Letter Pair", Description: "First two initials overlaid", Type: KindSymbol, Family: FamilyFusion, Base: BaseFusionPair, Tags: []string{TagLettermark, TagConnection}},
	{Name: "Letter Pair Overlap", Description: "First two initials fused tightly", Type: KindSymbol, Family: FamilyFusion, Base: BaseFusionPair, Overrides: p.Overrides{p.InterlockDepth: 85}, Tags: []string{TagLettermark, TagConnection, TagRefined}},
	{Name: "Letter Orbit", Description: "Initial inside an open orbit", Type: KindSymbol, Family: FamilyFusion, Base: BaseFusionOrbit, Tags: []string{TagLettermark, TagDynamic, TagInnovative}},
	{Name: "Letter Orbit Fine", Description: "Hairline orbit around the initial", Type: KindSymbol, Family: FamilyFusion, Base: BaseFusionOrbit, Overrides: p.Overrides{p.StrokeWidth: 2, p.Rotation: 45}, Tags: []string{TagLettermark, TagElegant}},

	// Geometric trinity.
	{Name: "Trinity Triangles", Description: "Three triangles turning about a void", Type: KindSymbol, Family: FamilyTrinity, Base: BaseTrinityTriangles, Tags: []string{TagGeometric, TagDynamic, TagNegative}},
	{Name: "Trinity Hollow", Description: "Three triangles around a round void", Type: KindSymbol, Family: FamilyTrinity, Base: BaseTrinityTriangles, Overrides: p.Overrides{p.CutoutPosition: 0}, Tags: []string{TagGeometric, TagMinimal, TagNegative}},
	{Name: "Trinity Delta", Description: "Three triangles around a triangular void", Type: KindSymbol, Family: FamilyTrinity, Base: BaseTrinityTriangles, Overrides: p.Overrides{p.CutoutPosition: 1}, Tags: []string{TagGeometric, TagBold, TagNegative}},
	{Name: "Trinity Circles", Description: "Three overlapping discs", Type: KindSymbol, Family: FamilyTrinity, Base: BaseTrinityCircles, Tags: []string{TagAbstract, TagConnection}},
	{Name: "Trinity Venn", Description: "Translucent three-disc venn", Type: KindSymbol, Family: FamilyTrinity, Base: BaseTrinityCircles, Overrides: p.Overrides{p.FillOpacity: 0.5}, Tags: []string{TagAbstract, TagConnection, TagFriendly}},
	{Name: "Trinity Petals", Description: "Three petals around a void", Type: KindSymbol, Family: FamilyTrinity, Base: BaseTrinityPetals, Tags: []string{TagOrganic, TagElegant}},
	{Name: "Trinity Bloom", Description: "Three dense petals around a round void", Type: KindSymbol, Family: FamilyTrinity, Base: BaseTrinityPetals, Overrides: p.Overrides{p.FillOpacity: 0.7, p.CutoutPosition: 0}, Tags: []string{TagOrganic, TagFriendly}},

	// Creative geometry.
	{Name: "Bio Form", Description: "Organic lobed form with a negative nucleus", Type: KindSymbol, Family: FamilyCreative, Base: BaseCreativeBio, Tags: []string{TagOrganic, TagPlayful, TagNegative}},
	{Name: "Bio Cell", Description: "Six-lobed cell", Type: KindSymbol, Family: FamilyCreative, Base: BaseCreativeBio, Overrides: p.Overrides{p.ElementCount: 6}, Tags: []string{TagOrganic, TagInnovative}},
	{Name: "Bio Pebble", Description: "Smooth two-lobed pebble", Type: KindSymbol, Family: FamilyCreative, Base: BaseCreativeBio, Overrides: p.Overrides{p.ElementCount: 2, p.CurveTension: 0.3}, Tags: []string{TagOrganic, TagMinimal, TagFriendly}},
	{Name: "Industrial Gear", Description: "Toothed wheel with a negative hub", Type: KindSymbol, Family: FamilyCreative, Base: BaseCreativeIndustrial, Tags: []string{TagTechnical, TagBold, TagNegative}},
	{Name: "Industrial Cog", Description: "Fine cog with a hexagonal hub", Type: KindSymbol, Family: FamilyCreative, Base: BaseCreativeIndustrial, Overrides: p.Overrides{p.ElementCount: 6, p.CutoutPosition: 2}, Tags: []string{TagTechnical, TagProfessional}},
	{Name: "Industrial Bolt", Description: "Coarse gear with a square hub", Type: KindSymbol, Family: FamilyCreative, Base: BaseCreativeIndustrial, Overrides: p.Overrides{p.ElementCount: 2, p.CutoutPosition: 1}, Tags: []string{TagTechnical, TagBold}},
	{Name: "Chunky Blocks", Description: "Heavy block grid carrying the initial", Type: KindSymbol, Family: FamilyCreative, Base: BaseCreativeChunky, Tags: []string{TagBold, TagPlayful, TagLettermark}},
	{Name: "Chunky Rounded", Description: "Soft block grid", Type: KindSymbol, Family: FamilyCreative, Base: BaseCreativeChunky, Overrides: p.Overrides{p.CornerRadius: 40}, Tags: []string{TagBold, TagFriendly}},
	{Name: "Chunky Grid", Description: "Three-by-three block grid", Type: KindSymbol, Family: FamilyCreative, Base: BaseCreativeChunky, Overrides: p.Overrides{p.ElementCount: 6}, Tags: []string{TagBold, TagGeometric}},

	// Abstract monograms.
	{Name: "Monogram Ring", Description: "Initial inside a ring", Type: KindSymbol, Family: FamilyMonogram, Base: BaseMonogramRing, Tags: []string{TagLettermark, TagElegant, TagProfessional}},
	{Name: "Monogram Ring Bold", Description: "Heavy initial inside a ring", Type: KindSymbol, Family: FamilyMonogram, Base: BaseMonogramRing, Overrides: p.Overrides{p.StrokeWidth: 8}, Tags: []string{TagLettermark, TagBold}},
	{Name: "Monogram Tile", Description: "Initial inside a rounded frame", Type: KindSymbol, Family: FamilyMonogram, Base: BaseMonogramTile, Tags: []string{TagLettermark, TagProfessional}},
	{Name: "Monogram Split", Description: "Two initials divided by a rule", Type: KindSymbol, Family: FamilyMonogram, Base: BaseMonogramSplit, Tags: []string{TagLettermark, TagRefined}},
	{Name: "Monogram Stripe", Description: "Heavy initial sliced by rules", Type: KindSymbol, Family: FamilyMonogram, Base: BaseMonogramStripe, Tags: []string{TagLettermark, TagDynamic, TagNegative}},
	{Name: "Monogram Stripe Fine", Description: "Heavy initial sliced by hairlines", Type: KindSymbol, Family: FamilyMonogram, Base: BaseMonogramStripe, Overrides: p.Overrides{p.SpacingRatio: 0.5}, Tags: []string{TagLettermark, TagRefined, TagNegative}},

	// Wordmarks.
	{Name: "Wordmark", Description: "The name set in a clean sans", Type: KindWordmark, Family: FamilyWordmark, Base: BaseWordmarkPlain, Tags: []string{TagMinimal, TagProfessional}},
	{Name: "Wordmark Spaced", Description: "The name in tracked capitals over a rule", Type: KindWordmark, Family: FamilyWordmark, Base: BaseWordmarkSpaced, Tags: []string{TagRefined, TagElegant}},
	{Name: "Wordmark Spaced Wide", Description: "The name in widely tracked capitals", Type: KindWordmark, Family: FamilyWordmark, Base: BaseWordmarkSpaced, Overrides: p.Overrides{p.SpacingRatio: 2}, Tags: []string{TagRefined, TagMinimal}},
	{Name: "Wordmark Heavy", Description: "The name in a heavy weight", Type: KindWordmark, Family: FamilyWordmark, Base: BaseWordmarkPlain, Overrides: p.Overrides{p.StrokeWidth: 8}, Tags: []string{TagBold, TagPlayful}},
	{Name: "Wordmark Symbol", Description: "A small lettermark disc above the name", Type: KindWordmark, Family: FamilyWordmark, Base: BaseWordmarkSymbol, Tags: []string{TagProfessional, TagLettermark}},
}
