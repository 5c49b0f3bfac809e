package cli

import (
	"time"

	"github.com/dmitrijs2005/vaxscheduler/internal/models"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// Session is the login state of one interactive session. At most one
// account is logged in at a time.
type Session struct {
	ID       uuid.UUID
	Role     models.Role
	Username string

	logins *rate.Limiter
}

// NewSession throttles logins to attemptsPerMinute, allowing that many in a
// burst. A non-positive value disables the throttle.
func NewSession(attemptsPerMinute int) *Session {
	limit := rate.Inf
	if attemptsPerMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(attemptsPerMinute))
	}
	return &Session{
		ID:     uuid.New(),
		logins: rate.NewLimiter(limit, max(attemptsPerMinute, 1)),
	}
}

func (s *Session) LoggedIn() bool { return s.Role != models.RoleNone }

func (s *Session) Is(role models.Role) bool { return s.Role == role }

func (s *Session) LogIn(role models.Role, username string) {
	s.Role = role
	s.Username = username
}

func (s *Session) LogOut() {
	s.Role = models.RoleNone
	s.Username = ""
}

// AllowLogin consumes one login attempt.
func (s *Session) AllowLogin() bool {
	return s.logins.Allow()
}
