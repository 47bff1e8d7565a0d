package selector

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/roemer/gomanifest/pkg/common"
	"github.com/roemer/gomanifest/pkg/manifest"
)

// The state of a selection.
type State int

const (
	STATE_CHOOSE_CHANNEL State = iota
	STATE_CHOOSE_ENTRY
	STATE_DONE
	STATE_FAILED
)

func (s State) String() string {
	switch s {
	case STATE_CHOOSE_CHANNEL:
		return "choose-channel"
	case STATE_CHOOSE_ENTRY:
		return "choose-entry"
	case STATE_DONE:
		return "done"
	case STATE_FAILED:
		return "failed"
	}
	return fmt.Sprintf("unknown(%d)", int(s))
}

// Interactively selects one entry from a catalog: first the channel, then the entry in it.
// Invalid input ends the selection in the failed state, there is no retry.
type Selector struct {
	catalog    *manifest.Catalog
	input      common.ILineReader
	output     io.Writer
	logger     *slog.Logger
	state      State
	candidates []common.ReleaseEntry
	result     common.ReleaseEntry
	err        error
}

// Creates a new selector in the channel choosing state.
func New(catalog *manifest.Catalog, input common.ILineReader, output io.Writer, logger *slog.Logger) *Selector {
	if output == nil {
		output = io.Discard
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Selector{
		catalog: catalog,
		input:   input,
		output:  output,
		logger:  logger.With(slog.String("component", "selector")),
		state:   STATE_CHOOSE_CHANNEL,
	}
}

// Gets the current state.
func (s *Selector) State() State {
	return s.state
}

// Gets the selected entry. Only ok in the done state.
func (s *Selector) Result() (common.ReleaseEntry, bool) {
	if s.state != STATE_DONE {
		return common.ReleaseEntry{}, false
	}
	return s.result, true
}

// Gets the error that ended the selection, if any.
func (s *Selector) Err() error {
	return s.err
}

// Steps until the selection is done or failed.
func (s *Selector) Run() (common.ReleaseEntry, error) {
	for !s.isTerminal() {
		s.Step()
	}
	if s.state == STATE_FAILED {
		return common.ReleaseEntry{}, s.err
	}
	return s.result, nil
}

// Performs a single transition: one prompt and one read. Does nothing in a terminal state.
func (s *Selector) Step() {
	switch s.state {
	case STATE_CHOOSE_CHANNEL:
		s.chooseChannel()
	case STATE_CHOOSE_ENTRY:
		s.chooseEntry()
	}
}

////////////////////////////////////////////////////////////
// Internal
////////////////////////////////////////////////////////////

func (s *Selector) isTerminal() bool {
	return s.state == STATE_DONE || s.state == STATE_FAILED
}

func (s *Selector) chooseChannel() {
	fmt.Fprintln(s.output, "Choose release type:")
	for index, channel := range common.AllChannels {
		fmt.Fprintf(s.output, "[%d] %s\n", index, channel)
	}

	index, err := s.readIndex()
	if err != nil {
		s.fail(fmt.Errorf("failed reading the release type: %w", err))
		return
	}
	channel, ok := common.ChannelTypeFromIndex(index)
	if !ok {
		s.fail(fmt.Errorf("%w: %d is not between 0 and %d", common.ErrInvalidChannelChoice, index, len(common.AllChannels)-1))
		return
	}

	s.candidates = s.catalog.ListChannel(channel)
	s.logger.Debug(fmt.Sprintf("Chose channel '%s' with %d entries", channel.Tag(), len(s.candidates)))
	s.transition(STATE_CHOOSE_ENTRY)
}

func (s *Selector) chooseEntry() {
	fmt.Fprintln(s.output, "Choose version:")
	for index, entry := range s.candidates {
		fmt.Fprintf(s.output, "[%d] %s\n", index, entry.Id)
	}

	index, err := s.readIndex()
	if err != nil {
		s.fail(fmt.Errorf("failed reading the version: %w", err))
		return
	}
	if index < 0 || index >= len(s.candidates) {
		s.fail(fmt.Errorf("%w: index %d is out of range for %d entries", common.ErrInvalidEntryChoice, index, len(s.candidates)))
		return
	}

	s.result = s.candidates[index]
	s.logger.Debug(fmt.Sprintf("Chose entry '%s'", s.result.Id))
	s.transition(STATE_DONE)
}

// Reads a line and parses it as index. A parse failure is returned as a choice error of the current state.
func (s *Selector) readIndex() (int, error) {
	line, err := s.input.ReadLine()
	if err != nil {
		return 0, err
	}
	index, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("%w: '%s' is not a number", s.choiceError(), strings.TrimSpace(line))
	}
	return index, nil
}

func (s *Selector) choiceError() error {
	if s.state == STATE_CHOOSE_CHANNEL {
		return common.ErrInvalidChannelChoice
	}
	return common.ErrInvalidEntryChoice
}

func (s *Selector) transition(newState State) {
	s.logger.Debug(fmt.Sprintf("Transition from %s to %s", s.state, newState))
	s.state = newState
}

func (s *Selector) fail(err error) {
	s.err = err
	s.candidates = nil
	s.transition(STATE_FAILED)
}
