package redisx

import (
	"fmt"

	"github.com/google/uuid"
)

const ns = "travelease:v1"

func KeyFeaturedTours(n int) string {
	return fmt.Sprintf("%s:tours:featured:%d", ns, n)
}

// KeyCatalogPattern matches every catalog cache key.
func KeyCatalogPattern() string {
	return ns + ":tour*"
}

func KeySession(token string) string {
	return fmt.Sprintf("%s:session:%s", ns, token)
}

func KeyUserSessions(userID uuid.UUID) string {
	return fmt.Sprintf("%s:user:%s:sessions", ns, userID)
}

func KeyNavState(id string) string {
	return fmt.Sprintf("%s:nav:%s", ns, id)
}

func KeyResetToken(token string) string {
	return fmt.Sprintf("%s:reset:%s", ns, token)
}

func KeyRateLimit(scope, id string) string {
	return fmt.Sprintf("%s:rl:%s:%s", ns, scope, id)
}

func ChannelAuthEvents() string {
	return ns + ":auth:events"
}
