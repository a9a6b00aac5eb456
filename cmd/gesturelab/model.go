package main

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/touchlab-io/gesturekit/internal/config"
	"github.com/touchlab-io/gesturekit/internal/trace"
)

const appName = "GestureLab"

// ---------------------------------------------------------------------------
// Recording list item (implements list.Item)
// ---------------------------------------------------------------------------

type recordingItem struct {
	rec trace.Recording
}

func (r recordingItem) Title() string       { return r.rec.Name }
func (r recordingItem) Description() string { return r.rec.Gesture.String() }
func (r recordingItem) FilterValue() string { return r.rec.Name }

type recordingDelegate struct{}

func (d recordingDelegate) Height() int  { return 1 }
func (d recordingDelegate) Spacing() int { return 0 }
func (d recordingDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}
func (d recordingDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	entry, ok := item.(recordingItem)
	if !ok {
		return
	}
	prefix := "  "
	if index == m.Index() {
		prefix = cursorStyle.Render("> ")
	}
	line := fmt.Sprintf("%s%s", prefix, entry.rec.Name)
	fmt.Fprint(w, padRight(line, m.Width()))
}

// ---------------------------------------------------------------------------
// Bubble Tea messages
// ---------------------------------------------------------------------------

type recordingsLoadedMsg struct {
	items []list.Item
	err   error
}

type recordingLoadedMsg struct {
	rec trace.Recording
	err error
}

// ---------------------------------------------------------------------------
// Model
// ---------------------------------------------------------------------------

type model struct {
	cfg   config.Config
	store *trace.Store
	keys  keyMap

	recList   list.Model
	listReady bool
	replay    *replay

	gotoMode  bool
	gotoQuery string

	status string
	width  int
	height int
}

func newModel(cfg config.Config, store *trace.Store) model {
	listModel := list.New([]list.Item{}, recordingDelegate{}, 0, 0)
	listModel.Title = "Recordings"
	listModel.Styles.Title = titleStyle
	listModel.Styles.NoItems = lipgloss.NewStyle()
	listModel.SetShowStatusBar(false)
	listModel.SetFilteringEnabled(false)
	listModel.SetShowHelp(false)
	listModel.DisableQuitKeybindings()

	return model{
		cfg:     cfg,
		store:   store,
		keys:    newKeyMap(),
		recList: listModel,
		status:  "loading recordings...",
	}
}

func (m model) Init() tea.Cmd {
	return loadRecordings(m.store)
}

func loadRecordings(store *trace.Store) tea.Cmd {
	return func() tea.Msg {
		recs, err := store.List(context.Background())
		if err != nil {
			return recordingsLoadedMsg{err: err}
		}
		items := make([]list.Item, len(recs))
		for i, r := range recs {
			items[i] = recordingItem{rec: r}
		}
		return recordingsLoadedMsg{items: items}
	}
}

func loadRecording(store *trace.Store, id string) tea.Cmd {
	return func() tea.Msg {
		rec, err := store.Get(context.Background(), id)
		return recordingLoadedMsg{rec: rec, err: err}
	}
}
