package game

// Card ids with bespoke support behavior. Using constants avoids typos in
// the engine registries and in data files that reference them.
const (
	HeroShalendra  = "shalendra"
	HeroPiter      = "piter"
	HeroLumalia    = "lumalia"
	HeroScout      = "scout"
	HeroWillis     = "willis"
	HeroBrer       = "brer"
	HeroBjurganmyr = "bjurganmyr"
	HeroMiley      = "miley"
	HeroKiefer     = "kiefer"
)

// Summon ids with bespoke effects.
const (
	SummonGaron      = "garon"
	SummonVolo       = "volo"
	SummonBlackrazor = "blackrazor"
	SummonWhelm      = "whelm"
	SummonWave       = "wave"
)
