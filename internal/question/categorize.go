package question

import (
	"strings"

	"formbuilder/internal/model"
)

// AddCategory appends a category name, trimmed. Reports false for an empty
// or duplicate name.
func AddCategory(c *model.CategorizeSpec, name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	for _, existing := range c.Categories {
		if existing == name {
			return false
		}
	}
	c.Categories = append(c.Categories, name)
	return true
}

// RemoveCategory deletes the category at index and cascades: any item whose
// correctCategory no longer exists is dropped with it.
func RemoveCategory(c *model.CategorizeSpec, index int) bool {
	if index < 0 || index >= len(c.Categories) {
		return false
	}
	c.Categories = append(c.Categories[:index], c.Categories[index+1:]...)

	kept := c.Items[:0]
	for _, item := range c.Items {
		if item.CorrectCategory == "" || containsString(c.Categories, item.CorrectCategory) {
			kept = append(kept, item)
		}
	}
	c.Items = kept
	return true
}

// AddItem appends an item filed under the first category. Reports false
// when the text is empty or no category exists yet.
func AddItem(c *model.CategorizeSpec, text string) bool {
	text = strings.TrimSpace(text)
	if text == "" || len(c.Categories) == 0 {
		return false
	}
	c.Items = append(c.Items, model.Item{Text: text, CorrectCategory: c.Categories[0]})
	return true
}

// RemoveItem deletes the item at index.
func RemoveItem(c *model.CategorizeSpec, index int) bool {
	if index < 0 || index >= len(c.Items) {
		return false
	}
	c.Items = append(c.Items[:index], c.Items[index+1:]...)
	return true
}

// Normalize re-applies the cascade invariant to a categorize spec as loaded
// or submitted: items referencing a category that no longer exists are
// dropped. Unfiled items (no correctCategory) are kept.
func Normalize(c *model.CategorizeSpec) {
	kept := c.Items[:0]
	for _, item := range c.Items {
		if item.CorrectCategory == "" || containsString(c.Categories, item.CorrectCategory) {
			kept = append(kept, item)
		}
	}
	c.Items = kept
}

// PlaceItem models a respondent dropping an item onto a category: the item
// is first purged from every category, then appended to the target, so it
// can never sit in two categories at once. The updated placement map is
// returned; a nil input map is treated as empty.
func PlaceItem(placements map[string][]model.Item, category string, item model.Item) map[string][]model.Item {
	if placements == nil {
		placements = make(map[string][]model.Item)
	}
	for cat, items := range placements {
		kept := items[:0]
		for _, existing := range items {
			if existing.Text != item.Text {
				kept = append(kept, existing)
			}
		}
		placements[cat] = kept
	}
	placements[category] = append(placements[category], item)
	return placements
}

// UnplaceItem removes an item from a category, dropping the category key
// when it empties.
func UnplaceItem(placements map[string][]model.Item, category, text string) {
	kept := placements[category][:0]
	for _, existing := range placements[category] {
		if existing.Text != text {
			kept = append(kept, existing)
		}
	}
	if len(kept) == 0 {
		delete(placements, category)
		return
	}
	placements[category] = kept
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}
