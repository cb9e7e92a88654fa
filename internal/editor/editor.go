// Package editor holds the authoring session for one project: the
// mutable working copy of its blocks and team, upload progress per
// block, and the save handoff. All mutation is in-memory until an
// explicit save; closing the session without saving discards the copy.
package editor

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/newstalgia/backend/internal/block"
	"github.com/newstalgia/backend/pkg/client"
)

// ProjectSaver persists the working copy. *client.Client satisfies it.
type ProjectSaver interface {
	Save(ctx context.Context, p *client.Project) (*client.Project, error)
}

// AssetStore uploads a file and returns its public URL. *client.Client
// satisfies it.
type AssetStore interface {
	Upload(ctx context.Context, filename string, size int64, r io.Reader, progress func(pct int)) (string, error)
}

// Session is one editing session over a project. Field edits arrive from
// UI events one at a time, but uploads for different blocks may run
// concurrently, so state is guarded by a mutex.
type Session struct {
	mu       sync.Mutex
	project  client.Project
	progress map[int]int
	saving   bool

	saver ProjectSaver
	store AssetStore
	log   *logrus.Entry
}

// NewSession opens a session over a working copy of p. Legacy block
// types are normalized on the way in, matching what the admin form did
// when loading an existing project.
func NewSession(p client.Project, saver ProjectSaver, store AssetStore) *Session {
	p.Blocks = p.Blocks.Normalize()
	if p.Blocks == nil {
		p.Blocks = block.List{}
	}
	if p.Team == nil {
		p.Team = []block.TeamMember{}
	}
	return &Session{
		project:  p,
		progress: make(map[int]int),
		saver:    saver,
		store:    store,
		log:      logrus.WithField("component", "editor"),
	}
}

// Project returns a snapshot of the working copy.
func (s *Session) Project() client.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.project
	p.Blocks = append(block.List{}, s.project.Blocks...)
	p.Team = append([]block.TeamMember{}, s.project.Team...)
	return p
}

// Blocks returns a snapshot of the block list.
func (s *Session) Blocks() block.List {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append(block.List{}, s.project.Blocks...)
}

// SetMeta updates the scalar project fields. Slug and type are only
// editable while the project has no id; afterwards they are immutable
// and silently kept.
func (s *Session) SetMeta(title, slug, ptype, description, category, thumbnail string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.project.Title = title
	s.project.Description = description
	s.project.Category = category
	s.project.Thumbnail = thumbnail
	if s.project.ID == "" {
		s.project.Slug = slug
		s.project.Type = ptype
	}
}

// AddBlock appends a default text block.
func (s *Session) AddBlock() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.project.Blocks = append(s.project.Blocks, block.DefaultFor(block.TypeText))
}

// ChangeBlockType replaces the block at idx with the default payload of
// the new type, discarding prior content. Partial migration between the
// heterogeneous payload shapes would risk corrupt hybrid states.
func (s *Session) ChangeBlockType(idx int, t block.Type) error {
	def := block.DefaultFor(t)
	if def == nil {
		return fmt.Errorf("unknown block type %q", t)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if idx < 0 || idx >= len(s.project.Blocks) {
		return fmt.Errorf("block index %d out of range", idx)
	}
	s.project.Blocks = s.project.Blocks.Replace(idx, def)
	return nil
}

// UpdateBlock replaces one slot wholesale; per-type field editors push
// their edits up through this.
func (s *Session) UpdateBlock(idx int, b block.Block) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if idx < 0 || idx >= len(s.project.Blocks) {
		return fmt.Errorf("block index %d out of range", idx)
	}
	s.project.Blocks = s.project.Blocks.Replace(idx, b)
	return nil
}

// RemoveBlock drops one block, shifting later indices down.
func (s *Session) RemoveBlock(idx int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.project.Blocks = s.project.Blocks.Remove(idx)
	delete(s.progress, idx)
}

// MoveBlockUp swaps the block with its predecessor. No-op at index 0.
func (s *Session) MoveBlockUp(idx int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if idx <= 0 || idx >= len(s.project.Blocks) {
		return
	}
	s.project.Blocks = s.project.Blocks.Swap(idx-1, idx)
}

// MoveBlockDown swaps the block with its successor. No-op at the end.
func (s *Session) MoveBlockDown(idx int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if idx < 0 || idx >= len(s.project.Blocks)-1 {
		return
	}
	s.project.Blocks = s.project.Blocks.Swap(idx, idx+1)
}

// Reorder moves the block at src to dst (drag and drop). The result is
// re-validated; if any element fails the schema the reorder is discarded
// so a failed or partial drag cannot leave the list inconsistent.
func (s *Session) Reorder(src, dst int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	reordered := s.project.Blocks.Move(src, dst)
	if err := reordered.Validate(); err != nil {
		s.log.WithError(err).Warn("reorder discarded: invalid block in result")
		return
	}
	s.project.Blocks = reordered
}

// AddTeamMember appends an empty credit line.
func (s *Session) AddTeamMember() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.project.Team = append(s.project.Team, block.TeamMember{})
}

// UpdateTeamMember replaces one credit line by index.
func (s *Session) UpdateTeamMember(idx int, m block.TeamMember) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if idx < 0 || idx >= len(s.project.Team) {
		return fmt.Errorf("team index %d out of range", idx)
	}
	s.project.Team[idx] = m
	return nil
}

// RemoveTeamMember drops one credit line, shifting later indices down.
func (s *Session) RemoveTeamMember(idx int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if idx < 0 || idx >= len(s.project.Team) {
		return
	}
	s.project.Team = append(s.project.Team[:idx:idx], s.project.Team[idx+1:]...)
}

// Progress returns the upload progress (0-100) for the block at idx.
func (s *Session) Progress(idx int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.progress[idx]
}

// Validate checks the working copy's blocks against the schema.
func (s *Session) Validate() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.project.Blocks.Validate()
}

// Save validates locally and hands the working copy to the saver. A
// second save while one is in flight is rejected; the UI disables the
// save control on that error until the first call resolves.
func (s *Session) Save(ctx context.Context) (*client.Project, error) {
	s.mu.Lock()
	if s.saving {
		s.mu.Unlock()
		return nil, fmt.Errorf("save already in progress")
	}
	if err := s.project.Blocks.Validate(); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	s.saving = true
	working := s.project
	working.Blocks = append(block.List{}, s.project.Blocks...)
	working.Team = append([]block.TeamMember{}, s.project.Team...)
	s.mu.Unlock()

	saved, err := s.saver.Save(ctx, &working)

	s.mu.Lock()
	s.saving = false
	if err == nil && saved != nil {
		s.project = *saved
		if s.project.Blocks == nil {
			s.project.Blocks = block.List{}
		}
		if s.project.Team == nil {
			s.project.Team = []block.TeamMember{}
		}
	}
	s.mu.Unlock()

	if err != nil {
		return nil, err
	}
	return saved, nil
}
