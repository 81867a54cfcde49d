package post

// Seed is a sample post appended to an empty section at startup.
type Seed struct {
	SectionID string
	Draft     Draft
}

// DefaultSeeds are the starter posts of the staff board.
func DefaultSeeds() []Seed {
	return []Seed{
		{SectionID: "mission-planning", Draft: Draft{
			Author:  "Head DM",
			Content: "Mission seed: **Dockside exchange**. Objective: extract intel without alerting the syndicate.",
			Tags:    []string{"mission", "dockside"},
		}},
		{SectionID: "roleplay-summary", Draft: Draft{
			Author: "DM",
			Content: "Session recap: Players gained access to the office, discovered a hidden ledger, " +
				"and escaped before patrol rotation.",
			Tags: []string{"recap"},
		}},
		{SectionID: "world-lore", Draft: Draft{
			Author:  "Lorewriter",
			Content: "World note: **Territory boundaries** are enforced by faction patrols and bribed city officials.",
			Tags:    []string{"canon", "territory"},
		}},
		{SectionID: "learned-lore", Draft: Draft{
			Author:  "DM",
			Content: "Learned: The rival crew uses a **coded whistle** pattern to signal safe entry.",
			Tags:    []string{"learned"},
		}},
		{SectionID: "artifacts", Draft: Draft{
			Author:  "Lorewriter",
			Content: "Artifact: **Black-ink contract**. Binds the signer to a task until fulfilled.",
			Tags:    []string{"artifact"},
		}},
		{SectionID: "character-goals", Draft: Draft{
			Author: "DM",
			Content: "Goal template: (1) Short-term objective, (2) Conflict driver, (3) Risk you accept, " +
				"(4) Reward you want.",
			Tags: []string{"template"},
		}},
		{SectionID: "npcs", Draft: Draft{
			Author:  "Lorewriter",
			Content: "NPC: **Dockmaster Vance** — takes bribes, fears syndicate retaliation, keeps meticulous shipping notes.",
			Tags:    []string{"npc"},
		}},
		{SectionID: "lore-proposals", Draft: Draft{
			Author:  "Lorewriter",
			Content: "Proposal: Add a **neutral broker** faction that trades information for favors and protection.",
			Tags:    []string{"proposal"},
		}},
	}
}
