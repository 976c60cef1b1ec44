package model

// Bundled posts ship with the binary so the site has content before
// the database holds anything. They are read-only: the repository
// never sees them and admin edits do not apply. Their IDs are
// slug-like by convention, which keeps old bookmarked URLs working
// through the ID fallback in slug resolution.

var staticPosts = []Post{
	{
		ID:      "ai-wars-2025-openai-google-anthropic",
		Title:   "AI Wars 2025: OpenAI vs Google vs Anthropic - Who Will Win the Race?",
		Excerpt: "The battle for AI supremacy intensifies as tech giants pour billions into artificial intelligence. Here's everything you need to know.",
		Content: `# AI Wars 2025: The Battle for Artificial Intelligence Supremacy

The artificial intelligence landscape has never been more competitive. Three major players are locked in an unprecedented race that will define the future of technology.

## The Current State of AI

The AI industry has exploded from a $150 billion market in 2023 to an estimated **$400 billion in 2025**. This growth is driven by breakthroughs in large language models and multimodal AI.

![AI Market Growth](https://images.unsplash.com/photo-1677442136019-21780ecad995?w=800)

## The Contenders

### OpenAI: The Pioneer

- **GPT-5**: Reasoning capabilities approaching human-level thinking
- **ChatGPT**: Over 200 million weekly active users
- **Enterprise**: Powering Copilot across Office 365

### Google DeepMind: The Giant

- **Gemini Ultra 2.0**: Multimodal AI that sees, hears, and reasons
- **Integration**: AI embedded in Search, YouTube, Android, and Workspace

### Anthropic: The Safety-First Challenger

- **Constitutional AI**: Alignment research baked into the product
- **Enterprise trust**: The fastest-growing API business of the three

## What Happens Next

> The companies that win the AI race will shape how billions of people work, learn, and create for decades.

Whoever reaches reliable agentic AI first takes a lead that may be impossible to close.`,
		Category: "tech",
		Image:    "https://images.unsplash.com/photo-1677442136019-21780ecad995?w=800&q=80",
		Author: Author{
			Name:   "Alex Chen",
			Avatar: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=100&auto=format&fit=crop",
		},
		Date:      "2025-01-18",
		ReadTime:  12,
		Trending:  true,
		Views:     89420,
		Reactions: 3421,
	},
	{
		ID:      "bitcoin-halving-2024-crypto-bull-run",
		Title:   "Bitcoin Halving 2024: The Catalyst Behind the Next Crypto Bull Run",
		Excerpt: "The fourth Bitcoin halving has cut miner rewards in half. History says a bull run follows. Here's what the data shows this time.",
		Content: `# Bitcoin Halving 2024: What It Means for the Market

Every four years the Bitcoin protocol cuts the block reward in half, and every previous halving has preceded a major bull run.

## The Numbers

| Halving | Year | Reward | Price a year later |
| --- | --- | --- | --- |
| First | 2012 | 25 BTC | +8000% |
| Second | 2016 | 12.5 BTC | +2800% |
| Third | 2020 | 6.25 BTC | +650% |

## Why This Time Is Different

1. Spot ETFs bring institutional money that simply did not exist before
2. Miner capitulation already happened during the 2023 bear market
3. Supply on exchanges sits at a five-year low

![Bitcoin chart](https://images.unsplash.com/photo-1518546305927-5a555bb7020d?w=800)

## The Risks

*Past performance is not a promise.* Macro conditions, regulation, and leverage cascades can all cut a cycle short.

> Plan for volatility. The halving is a supply story, and demand still has to show up.`,
		Category: "news",
		Image:    "https://images.unsplash.com/photo-1518546305927-5a555bb7020d?w=800&q=80",
		Author: Author{
			Name:   "Marcus Webb",
			Avatar: "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=100&auto=format&fit=crop",
		},
		Date:      "2025-01-17",
		ReadTime:  14,
		Trending:  true,
		Views:     156780,
		Reactions: 5847,
	},
	{
		ID:      "gta6-trailer-record",
		Title:   "GTA 6 Trailer Breaks Every Internet Record in 24 Hours",
		Excerpt: "Rockstar Games shatters internet records with the most anticipated game trailer of all time.",
		Content: `# GTA 6 Trailer Breaks the Internet

Rockstar Games released the first trailer for Grand Theft Auto VI and the internet promptly melted.

## The Records

- 100 million views in 24 hours
- Most-liked game trailer in YouTube history
- #1 trending in 95 countries

## What We Learned

The trailer confirms a return to **Vice City** with the series' first female protagonist, Lucia. The open world looks denser than anything Rockstar has shipped before.

![Vice City](https://images.unsplash.com/photo-1538481199705-c710c4e965fc?w=800)

The gaming community's response has been overwhelmingly positive, with many calling it the best game trailer ever made. Memes, theories, and frame-by-frame analyses flooded social media within minutes.`,
		Category: "gaming",
		Image:    "https://images.unsplash.com/photo-1538481199705-c710c4e965fc?w=800&q=80",
		Author: Author{
			Name:   "Chris Anderson",
			Avatar: "https://i.pravatar.cc/150?img=15",
		},
		Date:      "2024-01-10",
		ReadTime:  4,
		Trending:  true,
		Views:     89400,
		Reactions: 7234,
	},
	{
		ID:      "apple-vision-pro-2",
		Title:   "Apple Vision Pro 2: Everything We Know So Far",
		Excerpt: "Apple's second-generation headset promises to fix the biggest complaints about the original while cutting the price.",
		Content: `# Apple Vision Pro 2: Lighter, Cheaper, Smarter

Apple's second attempt at spatial computing addresses the three complaints that dogged the original: weight, price, and content.

## What Changes

- **Weight**: roughly 30% lighter thanks to a titanium frame
- **Price**: targeting the $1,999 mark
- **Chip**: the M5 brings on-device AI features

## The Content Problem

Hardware was never the whole story. Apple is reportedly paying studios to produce immersive video, and the developer story around volumetric apps is finally maturing.

> Spatial computing only works when there is something worth doing in it.

Expect an announcement at WWDC with availability late in the year.`,
		Category: "tech",
		Image:    "https://images.unsplash.com/photo-1592478411213-6153e4ebc07d?w=800&q=80",
		Author: Author{
			Name:   "Sarah Chen",
			Avatar: "https://i.pravatar.cc/150?img=1",
		},
		Date:      "2024-01-15",
		ReadTime:  6,
		Trending:  true,
		Views:     24500,
		Reactions: 1823,
	},
}

// StaticPosts returns the bundled posts in display order
func StaticPosts() []Post {
	out := make([]Post, len(staticPosts))
	copy(out, staticPosts)
	return out
}
