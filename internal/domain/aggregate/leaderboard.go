// Package aggregate contains read-side projections over activity snapshots.
// Every function is pure: inputs are never reordered or mutated.
package aggregate

import (
	"slices"

	"icebreaker/internal/domain/entity"
)

// DefaultLeaderboardSize is the number of ranked rows shown per board.
const DefaultLeaderboardSize = 10

// TopUsers ranks users by activity score, highest first, and keeps the first n.
// Users with equal scores keep their relative order. A non-positive n uses DefaultLeaderboardSize.
func TopUsers(users []*entity.User, n int) []*entity.User {
	ranked := slices.Clone(users)
	slices.SortStableFunc(ranked, func(a, b *entity.User) int {
		return b.Score() - a.Score()
	})

	return head(ranked, n)
}

// TopIcebreakers ranks icebreakers by interaction count, highest first, and keeps the first n.
// Ties keep their relative order. A non-positive n uses DefaultLeaderboardSize.
func TopIcebreakers(icebreakers []*entity.Icebreaker, n int) []*entity.Icebreaker {
	ranked := slices.Clone(icebreakers)
	slices.SortStableFunc(ranked, func(a, b *entity.Icebreaker) int {
		return b.InteractionCount - a.InteractionCount
	})

	return head(ranked, n)
}

func head[T any](items []T, n int) []T {
	if n <= 0 {
		n = DefaultLeaderboardSize
	}
	if len(items) > n {
		return items[:n]
	}

	return items
}
