// Package routes holds the HTTP paths served by the board API.
package routes

// SectionIDParam is the path parameter naming the section.
const SectionIDParam = "section_id"

// Health returns the liveness path.
func Health() string { return "/health" }

// Favicon returns the path browsers request for an icon.
func Favicon() string { return "/favicon.ico" }

// Sections returns the categorized section listing path.
func Sections() string { return "/sections" }

// LoreSections returns the flat section listing path.
func LoreSections() string { return "/lore/sections" }

// SectionPosts returns the gin pattern for one section's posts.
func SectionPosts() string { return Sections() + "/:" + SectionIDParam + "/posts" }

// PublicRaces returns the public races document path.
func PublicRaces() string { return "/public/races" }
