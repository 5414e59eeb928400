package cache

import (
	"context"
	"fmt"
	"log/slog"
)

// SafeInvalidatePattern safely invalidates cache pattern with logging
func SafeInvalidatePattern(ctx context.Context, helper *CacheHelper, pattern string) {
	if err := helper.InvalidatePattern(ctx, pattern); err != nil {
		slog.ErrorContext(ctx, "Failed to invalidate cache pattern",
			"error", err,
			"pattern", pattern)
	}
}

// SafeDelete safely deletes cache keys with logging
func SafeDelete(ctx context.Context, helper *CacheHelper, keys ...string) {
	if err := helper.Delete(ctx, keys...); err != nil {
		slog.ErrorContext(ctx, "Failed to delete cache keys",
			"error", err,
			"keys", keys)
	}
}

// InvalidateCampusCache drops campus entries plus the aggregate stats
// derived from them.
func InvalidateCampusCache(ctx context.Context, cm *CacheManager, campusID string) {
	SafeDelete(ctx, cm.Campus, fmt.Sprintf("id:%s", campusID))
	SafeInvalidatePattern(ctx, cm.Campus, "list:*")
	SafeInvalidatePattern(ctx, cm.Stats, fmt.Sprintf("campus:%s:*", campusID))
}

// InvalidateCourseCache drops course entries for a campus.
func InvalidateCourseCache(ctx context.Context, cm *CacheManager, courseID, campusID string) {
	SafeDelete(ctx, cm.Course, fmt.Sprintf("id:%s", courseID))
	SafeInvalidatePattern(ctx, cm.Course, fmt.Sprintf("campus:%s:*", campusID))
	SafeInvalidatePattern(ctx, cm.Course, "list:*")
}

// InvalidateUserCache drops a single user entry.
func InvalidateUserCache(ctx context.Context, cm *CacheManager, userID string) {
	SafeDelete(ctx, cm.User, fmt.Sprintf("id:%s", userID))
}
