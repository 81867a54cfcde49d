package uc

import "github.com/reikouwu/House-Liber-Arce/engine/post"

// Factory builds post use cases over one repository and section catalogue.
type Factory struct {
	repo     post.Repository
	sections SectionLookup
}

func NewFactory(repo post.Repository, sections SectionLookup) *Factory {
	return &Factory{repo: repo, sections: sections}
}

func (f *Factory) ListPosts(sectionID string) *ListPosts {
	return NewListPosts(f.repo, f.sections, sectionID)
}

func (f *Factory) AppendPost(sectionID string, input *AppendPostInput) *AppendPost {
	return NewAppendPost(f.repo, f.sections, sectionID, input)
}

func (f *Factory) SeedPosts(seeds []post.Seed) *SeedPosts {
	return NewSeedPosts(f.repo, f.sections, seeds)
}
