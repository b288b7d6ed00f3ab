package portfolio

import (
	"fmt"
	"strings"
)

// Redis key pattern helpers.
//
// Key pattern: glyph:{workspace}:{entity}:{id}
// Channel pattern: glyph:{workspace}:{event_type}_events

// MarkKey returns the Redis key for a mark.
// Pattern: glyph:{workspace}:mark:{mark_id}
func MarkKey(workspace, markID string) string {
	return fmt.Sprintf("glyph:%s:mark:%s", workspace, markID)
}

// MarkKeyPattern returns the SCAN pattern matching every mark in a workspace.
func MarkKeyPattern(workspace string) string {
	return fmt.Sprintf("glyph:%s:mark:*", workspace)
}

// MarkIDFromKey strips the workspace prefix from a mark key.
func MarkIDFromKey(workspace, key string) string {
	return strings.TrimPrefix(key, MarkKey(workspace, ""))
}

// BrandKey returns the Redis key for a brand's mark index. Brand names are
// lower-cased so lookups are case-insensitive.
// Pattern: glyph:{workspace}:brand:{brand}
func BrandKey(workspace, brand string) string {
	return fmt.Sprintf("glyph:%s:brand:%s", workspace, strings.ToLower(strings.TrimSpace(brand)))
}

// MarkEventsChannel returns the Pub/Sub channel name for mark events.
// Pattern: glyph:{workspace}:mark_events
func MarkEventsChannel(workspace string) string {
	return fmt.Sprintf("glyph:%s:mark_events", workspace)
}
