package analytics

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/thaisassuncao/community-app/internal/domain"
)

// DefaultMinUsers is the threshold applied when the caller supplies no
// min_users or a non-positive value. Three distinct accounts on one address
// balances catching coordinated abuse against flagging shared office WiFi.
const DefaultMinUsers = 3

// PostReader is the subset of message persistence the detector needs.
type PostReader interface {
	ListPosts(ctx context.Context) ([]domain.PostRecord, error)
}

// Detector surfaces IP addresses shared by many distinct accounts. It is a
// heuristic sockpuppet signal for moderators: detection only, it never
// blocks or mutates anything.
type Detector struct {
	posts PostReader
}

func NewDetector(posts PostReader) *Detector {
	return &Detector{posts: posts}
}

// SuspiciousIPs groups all messages by originating IP and returns the
// addresses used by at least minUsers distinct users, ordered by user count
// descending. Ties break by IP ascending; usernames are the full distinct set
// for the address, sorted. An empty result is a valid outcome.
func (d *Detector) SuspiciousIPs(ctx context.Context, minUsers int) ([]domain.SuspiciousIP, error) {
	if minUsers <= 0 {
		minUsers = DefaultMinUsers
	}

	posts, err := d.posts.ListPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	usersByIP := make(map[string]map[uuid.UUID]string)
	for _, p := range posts {
		users, ok := usersByIP[p.IP]
		if !ok {
			users = make(map[uuid.UUID]string)
			usersByIP[p.IP] = users
		}
		users[p.UserID] = p.Username
	}

	flagged := make([]domain.SuspiciousIP, 0)
	for ip, users := range usersByIP {
		if len(users) < minUsers {
			continue
		}

		usernames := make([]string, 0, len(users))
		for _, name := range users {
			usernames = append(usernames, name)
		}
		sort.Strings(usernames)

		flagged = append(flagged, domain.SuspiciousIP{
			IP:        ip,
			UserCount: len(users),
			Usernames: usernames,
		})
	}

	sort.Slice(flagged, func(i, j int) bool {
		if flagged[i].UserCount != flagged[j].UserCount {
			return flagged[i].UserCount > flagged[j].UserCount
		}
		return flagged[i].IP < flagged[j].IP
	})

	return flagged, nil
}
