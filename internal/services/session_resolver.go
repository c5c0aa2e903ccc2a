package services

import (
	"context"
	"regexp"
	"strings"

	"traininghub/internal/domain"
)

var uuidRegexp = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

// resolveSessionRef resolves a session reference to a session row. A
// UUID-shaped ref is treated as the durable session id; anything else is
// looked up as a human-readable session code. This is the only place the two
// identifier kinds meet.
func resolveSessionRef(ctx context.Context, repo domain.SessionRepository, ref string) (*domain.Session, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, domain.ErrInvalidInput
	}
	if uuidRegexp.MatchString(ref) {
		return repo.GetByID(ctx, ref)
	}
	return repo.GetBySessionCode(ctx, ref)
}
