// Package mcp provides the Model Context Protocol server integration for tally.
package mcp

import (
	"context"
	"errors"
	"strings"

	"tableflip.dev/tally/pkg/app"
	"tableflip.dev/tally/pkg/counter"
)

// Service adapts board operations for MCP tools and resources.
type Service struct {
	Board *app.Board
}

// CounterDTO is a transport-friendly projection of a counter.
type CounterDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Score    int    `json:"score"`
	Color    string `json:"color"`
	Negative bool   `json:"negative"`
}

// BoardSummary describes the whole board.
type BoardSummary struct {
	Count     int          `json:"count"`
	Summary   string       `json:"summary"`
	NextColor string       `json:"nextColor"`
	Counters  []CounterDTO `json:"counters"`
}

// AddCounterOptions captures the parameters used to create a counter.
type AddCounterOptions struct {
	Name  string
	Score int
	Color string
}

// UpdateCounterOptions captures an edit. Nil fields are unchanged.
type UpdateCounterOptions struct {
	ID    string
	Name  *string
	Score *int
	Color *string
}

// NewService builds a service on the provided board.
func NewService(b *app.Board) *Service {
	return &Service{Board: b}
}

func (s *Service) board() (*app.Board, error) {
	if s.Board == nil {
		return nil, errors.New("board is not configured")
	}
	return s.Board, nil
}

// ListCounters returns every counter in board order.
func (s *Service) ListCounters(_ context.Context) (*BoardSummary, error) {
	b, err := s.board()
	if err != nil {
		return nil, err
	}
	snap := b.Snapshot()
	out := &BoardSummary{
		Count:     len(snap.Counters),
		Summary:   app.Summary(len(snap.Counters)),
		NextColor: snap.NextColor,
		Counters:  make([]CounterDTO, 0, len(snap.Counters)),
	}
	for _, c := range snap.Counters {
		out.Counters = append(out.Counters, toDTO(c))
	}
	return out, nil
}

// CounterByID returns one counter, accepting a unique id prefix.
func (s *Service) CounterByID(_ context.Context, ref string) (*CounterDTO, error) {
	b, err := s.board()
	if err != nil {
		return nil, err
	}
	id, err := b.Resolve(ref)
	if err != nil {
		return nil, err
	}
	c, ok := b.Snapshot().Find(id)
	if !ok {
		return nil, app.ErrNotFound
	}
	dto := toDTO(c)
	return &dto, nil
}

// AddCounter creates a counter.
func (s *Service) AddCounter(_ context.Context, opts AddCounterOptions) (*CounterDTO, error) {
	b, err := s.board()
	if err != nil {
		return nil, err
	}
	c, err := b.Add(opts.Name, opts.Score, strings.TrimSpace(opts.Color))
	if err != nil {
		return nil, err
	}
	dto := toDTO(c)
	return &dto, nil
}

// UpdateCounter edits a counter.
func (s *Service) UpdateCounter(_ context.Context, opts UpdateCounterOptions) (*CounterDTO, error) {
	b, err := s.board()
	if err != nil {
		return nil, err
	}
	id, err := b.Resolve(opts.ID)
	if err != nil {
		return nil, err
	}
	c, err := b.Update(id, opts.Name, opts.Score, opts.Color)
	if err != nil {
		return nil, err
	}
	dto := toDTO(c)
	return &dto, nil
}

// AdjustCounter adds delta to a counter's score.
func (s *Service) AdjustCounter(_ context.Context, ref string, delta int) (*CounterDTO, error) {
	b, err := s.board()
	if err != nil {
		return nil, err
	}
	id, err := b.Resolve(ref)
	if err != nil {
		return nil, err
	}
	c, err := b.Adjust(id, delta)
	if err != nil {
		return nil, err
	}
	dto := toDTO(c)
	return &dto, nil
}

// RemoveCounter deletes a counter and returns its last state.
func (s *Service) RemoveCounter(_ context.Context, ref string) (*CounterDTO, error) {
	b, err := s.board()
	if err != nil {
		return nil, err
	}
	id, err := b.Resolve(ref)
	if err != nil {
		return nil, err
	}
	c, _ := b.Snapshot().Find(id)
	if err := b.Remove(id); err != nil {
		return nil, err
	}
	dto := toDTO(c)
	return &dto, nil
}

func toDTO(c counter.Counter) CounterDTO {
	return CounterDTO{
		ID:       c.ID,
		Name:     c.Name,
		Score:    c.Score,
		Color:    c.Color,
		Negative: c.Negative(),
	}
}
