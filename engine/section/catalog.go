package section

func channel(id string) Section {
	return Section{ID: id, Name: id}
}

// DefaultCategories is the House Liber Arce staff catalogue.
func DefaultCategories() []Category {
	return []Category{
		{
			Name: "DM Pit of Doom",
			Channels: []Section{
				channel("mission-planning"),
				channel("roleplay-summary"),
				channel("world-repository"),
			},
		},
		{
			Name: "Lorewriter Hellscape",
			Channels: []Section{
				channel("npcs"),
				channel("lore-proposals"),
			},
		},
		{
			Name: "Player Discoveries",
			Channels: []Section{
				channel("world-lore"),
				channel("learned-lore"),
				channel("artifacts"),
				channel("character-goals"),
			},
		},
	}
}

// DefaultRegistry returns a registry over DefaultCategories.
func DefaultRegistry() *Registry {
	return MustNewRegistry(DefaultCategories())
}
