// internal/app/store/directory/directorystore.go

// Package directory owns the teams and users collections.
//
// Both collections live in memory behind one lock and are mirrored to the
// local store after every mutation, whole collection at a time. Cross-entity
// invariants (deleting a team clears the team reference on its users) are
// applied under the same lock, so callers observe them atomically.
package directory

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/dalemusser/reviewhub/internal/app/store/localstore"
	"github.com/dalemusser/reviewhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Storage keys in the local store.
const (
	teamsKey = "teams"
	usersKey = "users"
)

// bcryptCost matches the cost used for account passwords elsewhere.
const bcryptCost = 12

var (
	ErrTeamNotFound       = errors.New("team not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrDuplicateEmail     = errors.New("a user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Store is the combined teams + users directory.
type Store struct {
	ls  *localstore.Store
	log *zap.Logger

	mu    sync.RWMutex
	teams []models.Team
	users []models.User
}

// New loads the persisted collections (absent or corrupt content yields
// empty collections; see localstore).
func New(ls *localstore.Store, logger *zap.Logger) (*Store, error) {
	s := &Store{ls: ls, log: logger}
	if _, err := ls.Load(teamsKey, &s.teams); err != nil {
		return nil, err
	}
	if _, err := ls.Load(usersKey, &s.users); err != nil {
		return nil, err
	}
	return s, nil
}

/*─────────────────────────────────────────────────────────────────────────────*
| Seeding                                                                     |
*─────────────────────────────────────────────────────────────────────────────*/

// SeedConfig carries the two fixed accounts created on first run.
type SeedConfig struct {
	AdminEmail    string
	AdminPassword string
	UserEmail     string
	UserPassword  string
}

// Seed initializes the default teams and the two default accounts when no
// persisted collections exist. It is a no-op when the directory already has
// any team or user.
func (s *Store) Seed(cfg SeedConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.teams) > 0 || len(s.users) > 0 {
		return nil
	}

	now := time.Now().UTC()
	mk := func(name, desc, instance, color string) models.Team {
		return models.Team{
			ID:          uuid.NewString(),
			Name:        name,
			NameCI:      text.Fold(name),
			Description: desc,
			Instance:    instance,
			Color:       color,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
	}
	creative := mk("Creative Team", "Creative and design professionals", "creative", "bg-blue-500")
	strategy := mk("Strategy Team", "Strategic planning and analysis", "strategy", "bg-green-500")
	tech := mk("Technology Team", "Technical development and innovation", "tech", "bg-purple-500")
	admin := mk("Admin Team", "Administrative and management", "admin", "bg-red-500")
	s.teams = []models.Team{creative, strategy, tech, admin}

	adminHash, err := hashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}
	userHash, err := hashPassword(cfg.UserPassword)
	if err != nil {
		return err
	}
	s.users = []models.User{
		{
			ID:           uuid.NewString(),
			Name:         "Admin User",
			NameCI:       text.Fold("Admin User"),
			Email:        cfg.AdminEmail,
			PasswordHash: adminHash,
			Role:         models.RoleAdmin,
			TeamID:       admin.ID,
			Status:       models.StatusActive,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		{
			ID:           uuid.NewString(),
			Name:         "John Doe",
			NameCI:       text.Fold("John Doe"),
			Email:        cfg.UserEmail,
			PasswordHash: userHash,
			Role:         models.RoleUser,
			TeamID:       creative.ID,
			Status:       models.StatusActive,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
	}

	if err := s.persistTeamsLocked(); err != nil {
		return err
	}
	if err := s.persistUsersLocked(); err != nil {
		return err
	}
	s.log.Info("directory seeded with defaults",
		zap.Int("teams", len(s.teams)),
		zap.Int("users", len(s.users)))
	return nil
}

/*─────────────────────────────────────────────────────────────────────────────*
| Teams                                                                       |
*─────────────────────────────────────────────────────────────────────────────*/

// TeamInput carries the caller-supplied fields for creating or updating a
// team.
type TeamInput struct {
	Name        string
	Description string
	Instance    string
	Color       string
}

// CreateTeam adds a team and returns the created record.
func (s *Store) CreateTeam(in TeamInput) (models.Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	t := models.Team{
		ID:          uuid.NewString(),
		Name:        in.Name,
		NameCI:      text.Fold(in.Name),
		Description: in.Description,
		Instance:    in.Instance,
		Color:       in.Color,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.teams = append(s.teams, t)
	if err := s.persistTeamsLocked(); err != nil {
		return models.Team{}, err
	}
	return t, nil
}

// UpdateTeam overwrites a team's editable fields. Blank Name is ignored so a
// partial update cannot blank out the display name; Description, Instance,
// and Color may be cleared.
func (s *Store) UpdateTeam(id string, in TeamInput) (models.Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.teams {
		if s.teams[i].ID != id {
			continue
		}
		if strings.TrimSpace(in.Name) != "" {
			s.teams[i].Name = in.Name
			s.teams[i].NameCI = text.Fold(in.Name)
		}
		s.teams[i].Description = in.Description
		s.teams[i].Instance = in.Instance
		s.teams[i].Color = in.Color
		s.teams[i].UpdatedAt = time.Now().UTC()
		if err := s.persistTeamsLocked(); err != nil {
			return models.Team{}, err
		}
		return s.teams[i], nil
	}
	return models.Team{}, ErrTeamNotFound
}

// DeleteTeam removes a team and clears the team reference on every user
// that pointed at it. Orphaned users become unassigned, never deleted.
func (s *Store) DeleteTeam(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.teams {
		if s.teams[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrTeamNotFound
	}
	s.teams = append(s.teams[:idx], s.teams[idx+1:]...)

	cleared := 0
	now := time.Now().UTC()
	for i := range s.users {
		if s.users[i].TeamID == id {
			s.users[i].TeamID = ""
			s.users[i].UpdatedAt = now
			cleared++
		}
	}

	if err := s.persistTeamsLocked(); err != nil {
		return err
	}
	if err := s.persistUsersLocked(); err != nil {
		return err
	}
	if cleared > 0 {
		s.log.Info("team deleted; users unassigned",
			zap.String("team_id", id),
			zap.Int("users_cleared", cleared))
	}
	return nil
}

// GetTeamByID returns the team with the given id.
func (s *Store) GetTeamByID(id string) (models.Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.teams {
		if t.ID == id {
			return t, nil
		}
	}
	return models.Team{}, ErrTeamNotFound
}

// Teams returns a copy of the full team collection.
func (s *Store) Teams() []models.Team {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Team, len(s.teams))
	copy(out, s.teams)
	return out
}

/*─────────────────────────────────────────────────────────────────────────────*
| Users                                                                       |
*─────────────────────────────────────────────────────────────────────────────*/

// UserInput carries the caller-supplied fields for creating or updating a
// user. Password is only consulted on create; updates never change the
// stored hash.
type UserInput struct {
	Name     string
	Email    string
	Password string
	Role     string
	TeamID   string
	Status   string
}

// CreateUser adds a user with a generated id and timestamps. Status defaults
// to active and the password is stored as a bcrypt hash.
func (s *Store) CreateUser(in UserInput) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	email := normalizeEmail(in.Email)
	for _, u := range s.users {
		if normalizeEmail(u.Email) == email {
			return models.User{}, ErrDuplicateEmail
		}
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return models.User{}, err
	}

	now := time.Now().UTC()
	u := models.User{
		ID:           uuid.NewString(),
		Name:         in.Name,
		NameCI:       text.Fold(in.Name),
		Email:        email,
		PasswordHash: hash,
		Role:         in.Role,
		TeamID:       in.TeamID,
		Status:       in.Status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if u.Role == "" {
		u.Role = models.RoleUser
	}
	if u.Status == "" {
		u.Status = models.StatusActive
	}

	s.users = append(s.users, u)
	if err := s.persistUsersLocked(); err != nil {
		return models.User{}, err
	}
	return u, nil
}

// UpdateUser overwrites a user's editable fields. Blank Name/Email/Role/
// Status are ignored; TeamID is always applied so callers can clear an
// assignment by passing "".
func (s *Store) UpdateUser(id string, in UserInput) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updateUserLocked(id, in)
}

func (s *Store) updateUserLocked(id string, in UserInput) (models.User, error) {
	for i := range s.users {
		if s.users[i].ID != id {
			continue
		}
		if strings.TrimSpace(in.Name) != "" {
			s.users[i].Name = in.Name
			s.users[i].NameCI = text.Fold(in.Name)
		}
		if email := normalizeEmail(in.Email); email != "" {
			for j := range s.users {
				if j != i && normalizeEmail(s.users[j].Email) == email {
					return models.User{}, ErrDuplicateEmail
				}
			}
			s.users[i].Email = email
		}
		if in.Role != "" {
			s.users[i].Role = in.Role
		}
		if in.Status != "" {
			s.users[i].Status = in.Status
		}
		s.users[i].TeamID = in.TeamID
		s.users[i].UpdatedAt = time.Now().UTC()
		if err := s.persistUsersLocked(); err != nil {
			return models.User{}, err
		}
		return s.users[i], nil
	}
	return models.User{}, ErrUserNotFound
}

// DeleteUser removes a user.
func (s *Store) DeleteUser(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return s.persistUsersLocked()
		}
	}
	return ErrUserNotFound
}

// AssignUserToTeam points a user at a team. The team must exist.
func (s *Store) AssignUserToTeam(userID, teamID string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	for _, t := range s.teams {
		if t.ID == teamID {
			found = true
			break
		}
	}
	if !found {
		return models.User{}, ErrTeamNotFound
	}
	return s.updateUserLocked(userID, UserInput{TeamID: teamID})
}

// RemoveUserFromTeam clears a user's team assignment.
func (s *Store) RemoveUserFromTeam(userID string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updateUserLocked(userID, UserInput{TeamID: ""})
}

// GetUserByID returns the user with the given id.
func (s *Store) GetUserByID(id string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, ErrUserNotFound
}

// GetUserByEmail returns the user with the given email (case-insensitive).
func (s *Store) GetUserByEmail(email string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	email = normalizeEmail(email)
	for _, u := range s.users {
		if normalizeEmail(u.Email) == email {
			return u, nil
		}
	}
	return models.User{}, ErrUserNotFound
}

// GetUsersByTeam returns every user assigned to the given team.
func (s *Store) GetUsersByTeam(teamID string) []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.User
	for _, u := range s.users {
		if u.TeamID == teamID {
			out = append(out, u)
		}
	}
	return out
}

// Users returns a copy of the full user collection.
func (s *Store) Users() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.User, len(s.users))
	copy(out, s.users)
	return out
}

// Authenticate looks up an active account by email and checks the password
// against its bcrypt hash. Inactive accounts cannot sign in. The returned
// error is always ErrInvalidCredentials on a failed check so callers cannot
// distinguish "unknown email" from "wrong password".
func (s *Store) Authenticate(email, password string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	norm := normalizeEmail(email)
	for _, u := range s.users {
		if normalizeEmail(u.Email) != norm || u.Status != models.StatusActive {
			continue
		}
		if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
			return models.User{}, ErrInvalidCredentials
		}
		return u, nil
	}
	return models.User{}, ErrInvalidCredentials
}

/*─────────────────────────────────────────────────────────────────────────────*
| Persistence helpers                                                         |
*─────────────────────────────────────────────────────────────────────────────*/

func (s *Store) persistTeamsLocked() error {
	return s.ls.Save(teamsKey, s.teams)
}

func (s *Store) persistUsersLocked() error {
	return s.ls.Save(usersKey, s.users)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// hashPassword hashes a password using bcrypt with a cost of 12.
func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
