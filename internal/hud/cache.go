package hud

// Item is a cached drawable together with the text it was built from.
type Item[T any] struct {
	Text  string
	Value T
	Valid bool
}

// Cache keeps one drawable per field and rebuilds it through build only when
// the field's text differs from the cached text. T is whatever the frontend
// draws: a styled string for terminals or a pre-rendered image for windows.
type Cache[T any] struct {
	build  func(f Field, text string) T
	items  [numFields]Item[T]
	builds int
}

// NewCache creates an empty cache. A nil build stores the zero value.
func NewCache[T any](build func(f Field, text string) T) *Cache[T] {
	return &Cache[T]{build: build}
}

// Refresh stores text for f, rebuilding the drawable if the text changed.
// It reports whether a rebuild happened.
func (c *Cache[T]) Refresh(f Field, text string) bool {
	if f < 0 || f >= numFields {
		return false
	}
	it := &c.items[f]
	if it.Valid && it.Text == text {
		return false
	}
	var v T
	if c.build != nil {
		v = c.build(f, text)
	}
	*it = Item[T]{Text: text, Value: v, Valid: true}
	c.builds++
	return true
}

// Update formats every field from v and refreshes those whose text changed.
// It returns the fields that were rebuilt.
func (c *Cache[T]) Update(v Values) []Field {
	var changed []Field
	for _, f := range Fields {
		if c.Refresh(f, Format(f, v)) {
			changed = append(changed, f)
		}
	}
	return changed
}

// Item returns the cached entry for f.
func (c *Cache[T]) Item(f Field) Item[T] {
	if f < 0 || f >= numFields {
		return Item[T]{}
	}
	return c.items[f]
}

// Text returns the cached text for f.
func (c *Cache[T]) Text(f Field) string {
	return c.Item(f).Text
}

// Builds returns the number of rebuilds performed so far.
func (c *Cache[T]) Builds() int {
	return c.builds
}

// Invalidate forces every field to rebuild on its next refresh.
func (c *Cache[T]) Invalidate() {
	for i := range c.items {
		c.items[i].Valid = false
	}
}
